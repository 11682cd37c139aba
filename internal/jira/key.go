package jira

import "strings"

// ExtractKey pulls an issue key such as OPS-12345 out of a ticket
// reference, which may be a bare key or a browse URL. Returns false when
// no path segment matches the LETTERS-NUMBERS pattern.
func ExtractKey(ref string) (string, bool) {
	for _, part := range strings.Split(ref, "/") {
		dash := strings.IndexByte(part, '-')
		if dash <= 0 || dash == len(part)-1 {
			continue
		}
		project, number := part[:dash], part[dash+1:]
		if isUppercaseLetters(project) && isDigits(number) {
			return part, true
		}
	}
	return "", false
}

func isUppercaseLetters(s string) bool {
	for _, c := range s {
		if c < 'A' || c > 'Z' {
			return false
		}
	}
	return len(s) > 0
}

func isDigits(s string) bool {
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return len(s) > 0
}
