package jira

import (
	"regexp"
	"strings"
)

// Ticket descriptions follow a loose postmortem convention: an "RCA"
// section and a "Preventative Measures" section, each introduced by a
// header line. Everything else in the description is noise for the report.
var (
	rcaHeaderRE        = regexp.MustCompile(`(?i)^\s*(?:RCA|Root Cause Analysis|Root Cause)\s*:?\s*(.*)$`)
	preventionHeaderRE = regexp.MustCompile(`(?i)^\s*(?:Preventative Measures?|Preventive Measures?|Prevention)\s*:?\s*(.*)$`)
	sectionHeaderRE    = regexp.MustCompile(`^[A-Z][^:]*:`)
)

// ExtractRCA condenses a ticket description to its root-cause and
// prevention content. When neither section exists, the first line
// mentioning a cause is used instead; an empty result means the
// description had nothing usable.
func ExtractRCA(description string) string {
	lines := strings.Split(description, "\n")

	var extracted []string
	if rca := captureSection(lines, rcaHeaderRE); rca != "" {
		extracted = append(extracted, "RCA: "+rca)
	}
	if pm := captureSection(lines, preventionHeaderRE); pm != "" {
		extracted = append(extracted, "Preventative Measures: "+pm)
	}

	if len(extracted) == 0 {
		if line := firstCauseLine(lines); line != "" {
			extracted = append(extracted, line)
		}
	}

	return strings.Join(extracted, "\n")
}

// captureSection returns the text introduced by a header line, up to the
// next section header or blank line.
func captureSection(lines []string, header *regexp.Regexp) string {
	for i, line := range lines {
		m := header.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		parts := []string{}
		if rest := strings.TrimSpace(m[1]); rest != "" {
			parts = append(parts, rest)
		}
		for _, next := range lines[i+1:] {
			trimmed := strings.TrimSpace(next)
			if trimmed == "" || sectionHeaderRE.MatchString(trimmed) {
				break
			}
			parts = append(parts, trimmed)
		}
		return strings.TrimSpace(strings.Join(parts, " "))
	}
	return ""
}

func firstCauseLine(lines []string) string {
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		lower := strings.ToLower(trimmed)
		if strings.Contains(lower, "root cause") ||
			strings.Contains(lower, "caused by") ||
			strings.Contains(lower, "due to") {
			return trimmed
		}
	}
	return ""
}
