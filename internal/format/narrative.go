// Package format turns a filtered batch of outage records into the report
// body, attempting AI formatting first and falling back to the fixed
// deterministic template for the entire batch on any failure.
package format

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/mack42/weekly-uptime-status-report/internal/domain"
	"github.com/mack42/weekly-uptime-status-report/pkg/util"
)

// Mode tags which formatter produced a report body.
type Mode string

const (
	ModeAI       Mode = "ai"
	ModeStandard Mode = "standard"
)

// Outcome is the whole-batch formatting result. A report is rendered
// entirely in one mode; AI and template entries are never mixed.
type Outcome struct {
	Body string
	Mode Mode
}

// Completer is the language-model collaborator.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

const emptyWeekBody = "No outages were recorded this week.\n\n"

// Formatter produces the report body for a batch of records.
type Formatter struct {
	completer Completer
	logger    *zap.Logger
}

// NewFormatter constructs the formatter. A nil completer disables AI mode.
func NewFormatter(completer Completer, logger *zap.Logger) *Formatter {
	return &Formatter{completer: completer, logger: logger}
}

// Format renders the batch. An empty batch skips AI entirely and states
// explicitly that the week had no outages.
func (f *Formatter) Format(ctx context.Context, window domain.ReportWindow, records []domain.OutageRecord) Outcome {
	if len(records) == 0 {
		return Outcome{Body: emptyWeekBody, Mode: ModeStandard}
	}

	if f.completer != nil {
		system, user := BuildPrompt(window, records)
		text, err := f.completer.Complete(ctx, system, user)
		switch {
		case err != nil:
			f.logger.Warn("could not generate AI report, using standard format", zap.Error(util.NewFormattingError(err)))
		case strings.TrimSpace(text) == "":
			f.logger.Warn("AI report came back empty, using standard format")
		default:
			return Outcome{Body: text, Mode: ModeAI}
		}
	}

	return Outcome{Body: DeterministicBody(records), Mode: ModeStandard}
}

// DeterministicBody renders every record with the fixed template,
// separated by blank lines. Pure string formatting; cannot fail.
func DeterministicBody(records []domain.OutageRecord) string {
	if len(records) == 0 {
		return emptyWeekBody
	}
	var b strings.Builder
	for i := range records {
		b.WriteString(Entry(&records[i]))
		b.WriteString("\n\n")
	}
	return b.String()
}

// Entry renders one record as its headline line plus narrative body. A
// time range is only printed when one is extractable from the enriched
// description; the template never invents times.
func Entry(rec *domain.OutageRecord) string {
	date := rec.Date.Format("January 02")

	var timeRange string
	if start, end, ok := ExtractTimeRange(rec.EnrichedDescription); ok {
		timeRange = fmt.Sprintf(" (%s - %s - %dmin)", start, end, rec.DurationMinutes)
	} else if rec.DurationMinutes > 0 {
		timeRange = fmt.Sprintf(" (%dmin)", rec.DurationMinutes)
	}

	var severity string
	if rec.Severity != "" {
		severity = fmt.Sprintf(" (%s)", rec.Severity)
	}

	return fmt.Sprintf("%s%s %s%s\n%s", date, timeRange, rec.ServiceName, severity, narrative(rec.Cause, rec.Solution))
}

// narrative joins cause and solution into one paragraph, ensuring each
// part ends with a period.
func narrative(cause, solution string) string {
	var b strings.Builder

	if cause != "" {
		b.WriteString(cause)
		if !strings.HasSuffix(cause, ".") {
			b.WriteString(".")
		}
	}
	if solution != "" {
		if b.Len() > 0 {
			b.WriteString(" ")
		}
		b.WriteString(solution)
		if !strings.HasSuffix(solution, ".") {
			b.WriteString(".")
		}
	}

	return b.String()
}
