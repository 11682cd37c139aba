package format

import (
	"fmt"
	"strings"

	"github.com/mack42/weekly-uptime-status-report/internal/domain"
	"github.com/mack42/weekly-uptime-status-report/internal/jira"
)

const systemMessage = "You are a technical writer creating executive stability reports. " +
	"Focus heavily on PREVENTION - each incident must clearly explain what we're doing to prevent recurrence. " +
	"Be concise and direct. Include AI recommendations after the email."

const promptTemplate = `Create a concise weekly stability report for week %d (%s to %s).

Format EXACTLY like these examples:

Sept 15th (18:40 - 18:43 - 3min) Sales-I DE API (Regional)
A configuration change by Microsoft Azure caused a temporary disruption to the CDN. As this originated from Azure's platform team, it was outside of our control. No action is required on our side, and service has since stabilized.

Sept 17th (15:07 - 15:12 - 5min) Mail App API (Regional)
The IIS logs initially pointed to a configuration issue, but further review confirmed the root cause is a bug in the mail application, which surfaced as database connectivity symptoms. The owning team has opened a ticket to add more actionable logging and is migrating the remaining functionality to the replacement service.

Raw data:
%s

CRITICAL REQUIREMENTS:
- Each incident MUST clearly explain what we're doing to PREVENT it from happening again
- If preventative measures aren't clear from the data, mention what should be done in the AI Recommendations section
- Keep descriptions to 2-3 sentences maximum
- Use the provided Start Time and End Time in UTC format (HH:MM - HH:MM)
- Use Month day format (Sept 15th, not September 15)
- Format: Sept 15th (18:40 - 18:43 - 3min) Service Name (Severity)
- Combine root cause, immediate resolution, AND prevention steps
- Include severity in parentheses if available
- End the email portion with "Regards,"
- This will be read by the CEO and CTO

AFTER the email content, add a separate section titled "--- AI RECOMMENDATIONS ---" with any additional prevention suggestions you think would be beneficial that weren't mentioned in the incidents.
`

// BuildPrompt assembles the system and user messages for AI formatting of
// the whole batch.
func BuildPrompt(window domain.ReportWindow, records []domain.OutageRecord) (system, user string) {
	summaries := make([]string, 0, len(records))
	for i := range records {
		summaries = append(summaries, recordSummary(&records[i]))
	}

	user = fmt.Sprintf(promptTemplate,
		window.WeekNumber(),
		window.Start.Format("January 02"),
		window.End.Format("January 02"),
		strings.Join(summaries, "\n---\n"),
	)
	return systemMessage, user
}

// recordSummary flattens one record, its enriched RCA text and a computed
// time range into the raw-data block the model is asked to rewrite.
func recordSummary(rec *domain.OutageRecord) string {
	rca := jira.ExtractRCA(rec.EnrichedDescription)
	if rca == "" {
		rca = "N/A"
	}
	start, end := IncidentTimes(rec.Date, rec.DurationMinutes, rec.EnrichedDescription)

	return fmt.Sprintf(
		"Date: %s\nService: %s\nStart Time: %s UTC\nEnd Time: %s UTC\nDuration: %d minutes\nSeverity: %s\nCause: %s\nSolution: %s\nJIRA RCA/Preventative Measures: %s\n",
		rec.Date, rec.ServiceName, start, end, rec.DurationMinutes, rec.Severity,
		rec.Cause, rec.Solution, rca,
	)
}
