package report

import (
	"strings"
	"testing"
	"time"

	"github.com/mack42/weekly-uptime-status-report/internal/domain"
	"github.com/mack42/weekly-uptime-status-report/internal/format"
)

var testWindow = domain.ReportWindow{
	Start: domain.Date{Year: 2025, Month: time.September, Day: 7},
	End:   domain.Date{Year: 2025, Month: time.September, Day: 13},
}

func TestAssembleStandard(t *testing.T) {
	body := "September 08 (5min) Billing API (Regional)\nDisk filled up. Rotated logs.\n\n"
	got := Assemble(testWindow, body, format.ModeStandard)

	banner := strings.Repeat("=", 80)
	want := banner + "\n" +
		"WEEKLY STABILITY REPORT\n" +
		"Week 36 (September 07 - September 13)\n" +
		"All times UTC\n" +
		banner + "\n\n" +
		body +
		"Regards,\n"

	if got != want {
		t.Errorf("Assemble standard mode:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestAssembleAI(t *testing.T) {
	body := "Sept 8th (10:30 - 10:35 - 5min) Billing API (Regional)\nAll good now.\n\nRegards,\n"
	got := Assemble(testWindow, body, format.ModeAI)

	banner := strings.Repeat("=", 80)
	want := banner + "\n" +
		"WEEKLY STABILITY REPORT (AI-Generated)\n" +
		banner + "\n\n" +
		body

	if got != want {
		t.Errorf("Assemble AI mode:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestAssembleAIAddsTrailingNewline(t *testing.T) {
	got := Assemble(testWindow, "no trailing newline", format.ModeAI)
	if !strings.HasSuffix(got, "no trailing newline\n") {
		t.Errorf("AI assembly must end with a newline, got %q", got)
	}
}

func TestAssembleEmptyWeek(t *testing.T) {
	got := Assemble(testWindow, format.DeterministicBody(nil), format.ModeStandard)

	if !strings.Contains(got, "No outages were recorded this week.") {
		t.Errorf("empty week report must state that explicitly, got:\n%s", got)
	}
	if !strings.Contains(got, "Week 36 (September 07 - September 13)") {
		t.Errorf("empty week report must keep the week header, got:\n%s", got)
	}
	if !strings.Contains(got, "WEEKLY STABILITY REPORT\n") || strings.Contains(got, "AI-Generated") {
		t.Errorf("empty week report must use the plain banner, got:\n%s", got)
	}
}

func TestAssembleDeterministicIdempotent(t *testing.T) {
	records := []domain.OutageRecord{
		{
			Date:            domain.Date{Year: 2025, Month: time.September, Day: 8},
			ServiceName:     "Billing API",
			DurationMinutes: 5,
			Cause:           "Disk filled up",
			Solution:        "Rotated logs",
			Severity:        domain.SeverityRegional,
		},
	}

	first := Assemble(testWindow, format.DeterministicBody(records), format.ModeStandard)
	second := Assemble(testWindow, format.DeterministicBody(records), format.ModeStandard)
	if first != second {
		t.Error("identical inputs must produce byte-identical reports")
	}
}
