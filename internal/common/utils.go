package common

import (
	"strings"
	"unicode"
)

// HasAny returns true if s contains any of the substrings.
func HasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// HasDigit returns true if s contains at least one decimal digit.
func HasDigit(s string) bool {
	return strings.ContainsFunc(s, unicode.IsDigit)
}
