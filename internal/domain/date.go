package domain

import (
	"fmt"
	"time"
)

// ledgerLayout is the date form used by the outage ledger, e.g. "15/Sep/25".
const ledgerLayout = "2/Jan/06"

// Date is a pure calendar date. It carries no time-of-day and no timezone,
// which keeps window arithmetic deterministic regardless of where the
// report is generated.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date, normalizing out-of-range values the same way
// time.Date does (e.g. January 32 becomes February 1).
func NewDate(year int, month time.Month, day int) Date {
	return fromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseLedgerDate parses the ledger's day/abbreviated-month/2-digit-year form.
func ParseLedgerDate(s string) (Date, error) {
	t, err := time.Parse(ledgerLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse ledger date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func fromTime(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

func (d Date) asTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Weekday returns the day of the week.
func (d Date) Weekday() time.Weekday {
	return d.asTime().Weekday()
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return fromTime(d.asTime().AddDate(0, 0, n))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	return d.asTime().Before(other.asTime())
}

// After reports whether d is strictly later than other.
func (d Date) After(other Date) bool {
	return d.asTime().After(other.asTime())
}

// ISOWeek returns the ISO 8601 week number of d.
func (d Date) ISOWeek() int {
	_, week := d.asTime().ISOWeek()
	return week
}

// Format renders d using a time package layout.
func (d Date) Format(layout string) string {
	return d.asTime().Format(layout)
}

// String renders d in the ledger's own form.
func (d Date) String() string {
	return d.asTime().Format(ledgerLayout)
}
