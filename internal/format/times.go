package format

import (
	"regexp"
	"time"

	"github.com/mack42/weekly-uptime-status-report/internal/domain"
)

// Postmortem text often carries a range like "18:40 - 18:43".
var timeRangeRE = regexp.MustCompile(`(\d{1,2}:\d{2})\s*[-–]\s*(\d{1,2}:\d{2})`)

// ExtractTimeRange pulls an HH:MM - HH:MM range out of free text.
func ExtractTimeRange(text string) (start, end string, ok bool) {
	m := timeRangeRE.FindStringSubmatch(text)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// IncidentTimes returns a start/end clock pair for a record, preferring a
// range extractable from the enriched description. When nothing is
// extractable it assumes business-hours starts: weekend incidents mid-day,
// short weekday incidents mid-morning, medium ones around midday, long
// ones from the start of the day. Used only to give the language model a
// concrete range to work with.
func IncidentTimes(date domain.Date, durationMinutes int, description string) (string, string) {
	if start, end, ok := ExtractTimeRange(description); ok {
		return start, end
	}

	var hour, minute int
	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		hour, minute = 14, 0
	default:
		switch {
		case durationMinutes <= 30:
			hour, minute = 10, 30
		case durationMinutes <= 120:
			hour, minute = 13, 0
		default:
			hour, minute = 9, 0
		}
	}

	start := time.Date(date.Year, date.Month, date.Day, hour, minute, 0, 0, time.UTC)
	end := start.Add(time.Duration(durationMinutes) * time.Minute)
	return start.Format("15:04"), end.Format("15:04")
}
