package domain

import (
	"testing"
	"time"
)

func TestParseLedgerDate(t *testing.T) {
	tests := []struct {
		input   string
		want    Date
		wantErr bool
	}{
		{"15/Sep/25", Date{2025, time.September, 15}, false},
		{"1/Jan/25", Date{2025, time.January, 1}, false},
		{"31/Dec/24", Date{2024, time.December, 31}, false},
		{"29/Feb/24", Date{2024, time.February, 29}, false},
		{"15/Sept/25", Date{}, true},
		{"2025-09-15", Date{}, true},
		{"32/Jan/25", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		got, err := ParseLedgerDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLedgerDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLedgerDate(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestDateArithmetic(t *testing.T) {
	d := Date{2024, time.December, 30}
	if got := d.AddDays(2); got != (Date{2025, time.January, 1}) {
		t.Errorf("AddDays(2) across year end = %v", got)
	}
	if got := d.AddDays(-30); got != (Date{2024, time.November, 30}) {
		t.Errorf("AddDays(-30) = %v", got)
	}

	sunday := Date{2025, time.September, 14}
	if sunday.Weekday() != time.Sunday {
		t.Errorf("Weekday() = %v, want Sunday", sunday.Weekday())
	}

	if !(Date{2025, time.March, 1}).After(Date{2025, time.February, 28}) {
		t.Error("March 1 should be after February 28")
	}
	if !(Date{2025, time.February, 28}).Before(Date{2025, time.March, 1}) {
		t.Error("February 28 should be before March 1")
	}
}

func TestDateFormat(t *testing.T) {
	d := Date{2025, time.September, 5}
	if got := d.Format("January 02"); got != "September 05" {
		t.Errorf("Format = %q, want %q", got, "September 05")
	}
	if got := d.String(); got != "5/Sep/25" {
		t.Errorf("String = %q, want %q", got, "5/Sep/25")
	}
}
