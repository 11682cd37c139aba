package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

// The ledger's duration column is free-form: "90", "600", "4+29"
// (hours+minutes), "4h29m", sometimes with a "min"/"minutes" suffix.
var (
	hoursMinutesRE = regexp.MustCompile(`(\d+)h(\d+)m`)
	firstNumberRE  = regexp.MustCompile(`(\d+)`)
)

const defaultDurationMinutes = 5

// ParseDurationMinutes normalizes a raw duration cell to whole minutes.
// An empty cell is zero; otherwise unparsable input falls back to a nominal
// 5 minutes rather than failing the row.
func ParseDurationMinutes(raw string) int {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0
	}

	if strings.Contains(s, "+") {
		parts := strings.SplitN(s, "+", 2)
		hours, _ := strconv.Atoi(strings.TrimSpace(parts[0]))
		minPart := strings.ReplaceAll(parts[1], "minutes", "")
		minPart = strings.ReplaceAll(minPart, "min", "")
		minutes, _ := strconv.Atoi(strings.TrimSpace(minPart))
		return hours*60 + minutes
	}

	if m := hoursMinutesRE.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		return hours*60 + minutes
	}

	if m := firstNumberRE.FindStringSubmatch(s); m != nil {
		if minutes, err := strconv.Atoi(m[1]); err == nil {
			return minutes
		}
	}

	return defaultDurationMinutes
}
