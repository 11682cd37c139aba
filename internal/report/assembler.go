package report

import (
	"fmt"
	"strings"

	"github.com/mack42/weekly-uptime-status-report/internal/domain"
	"github.com/mack42/weekly-uptime-status-report/internal/format"
)

// Downstream readers parse this layout; both banner variants must stay
// byte-for-byte stable.
var bannerLine = strings.Repeat("=", 80)

const (
	titleAI       = "WEEKLY STABILITY REPORT (AI-Generated)"
	titleStandard = "WEEKLY STABILITY REPORT"
	timezoneLine  = "All times UTC"
	closingLine   = "Regards,"
)

// Assemble wraps a formatted body with the report frame for the mode that
// produced it. Pure; always succeeds. The AI body carries its own header
// and closing per the prompt contract, so only the standard frame prints
// the week line, timezone annotation and salutation.
func Assemble(window domain.ReportWindow, body string, mode format.Mode) string {
	var b strings.Builder

	b.WriteString(bannerLine)
	b.WriteString("\n")

	if mode == format.ModeAI {
		b.WriteString(titleAI)
		b.WriteString("\n")
		b.WriteString(bannerLine)
		b.WriteString("\n\n")
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteString("\n")
		}
		return b.String()
	}

	b.WriteString(titleStandard)
	b.WriteString("\n")
	fmt.Fprintf(&b, "Week %d (%s)\n", window.WeekNumber(), window.DateRange())
	b.WriteString(timezoneLine)
	b.WriteString("\n")
	b.WriteString(bannerLine)
	b.WriteString("\n\n")
	b.WriteString(body)
	b.WriteString(closingLine)
	b.WriteString("\n")
	return b.String()
}
