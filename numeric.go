package wetsplit

import "strings"

// IsNumeric reports whether s, trimmed, is a number-like label such as
// "12", "1.2" or "3 - 4". Used to keep page and article numbers set in
// bold from starting new sections.
func IsNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '.', r == ',', r == '-', r == ' ':
		default:
			return false
		}
	}
	return digits > 0
}
