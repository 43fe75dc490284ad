package domain

import "strings"

// Sanitize removes control characters that break structured text and
// markup. Horizontal tab, line feed, and carriage return are kept; the
// remaining C0 range and DEL are dropped. Sanitize is idempotent and is
// applied to every string before it enters a snapshot or a serialised
// file.
func Sanitize(s string) string {
	if !needsSanitize(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		if isUnsafeControl(r) {
			return -1
		}
		return r
	}, s)
}

// needsSanitize avoids allocating for the common clean case.
func needsSanitize(s string) bool {
	for _, r := range s {
		if isUnsafeControl(r) {
			return true
		}
	}
	return false
}

func isUnsafeControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return r < 0x20 || r == 0x7f
}
