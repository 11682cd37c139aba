// Package report owns the reporting window arithmetic, record filtering
// and the final text assembly.
package report

import (
	"sort"

	"github.com/mack42/weekly-uptime-status-report/internal/domain"
)

// PreviousWeek returns the most recently completed Sunday-through-Saturday
// week relative to ref. The week containing ref is always still open and
// never reported, including when ref itself is a Sunday. Pure function of
// the reference date.
func PreviousWeek(ref domain.Date) domain.ReportWindow {
	daysSinceSunday := int(ref.Weekday()) // Sunday == 0
	currentWeekStart := ref.AddDays(-daysSinceSunday)
	start := currentWeekStart.AddDays(-7)
	return domain.ReportWindow{Start: start, End: start.AddDays(6)}
}

// Filter returns the records whose date falls inside the window, both
// endpoints included, preserving original relative order. Records outside
// the window are silently excluded.
func Filter(records []domain.OutageRecord, window domain.ReportWindow) []domain.OutageRecord {
	var out []domain.OutageRecord
	for i := range records {
		if window.Contains(records[i].Date) {
			out = append(out, records[i])
		}
	}
	return out
}

// SortByDate orders records ascending by date. Same-day records keep
// their original input order.
func SortByDate(records []domain.OutageRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date.Before(records[j].Date)
	})
}
