package domain

import "fmt"

// ReportWindow is one closed Sunday-through-Saturday reporting interval.
// Start is always a Sunday and End is always Start+6 days.
type ReportWindow struct {
	Start Date
	End   Date
}

// Contains reports whether d falls inside the window, endpoints included.
func (w ReportWindow) Contains(d Date) bool {
	return !d.Before(w.Start) && !d.After(w.End)
}

// WeekNumber is the ISO week number of the window's Sunday start, matching
// the numbering the report has always used.
func (w ReportWindow) WeekNumber() int {
	return w.Start.ISOWeek()
}

// DateRange renders the human-readable "Month DD - Month DD" span.
func (w ReportWindow) DateRange() string {
	return fmt.Sprintf("%s - %s", w.Start.Format("January 02"), w.End.Format("January 02"))
}
