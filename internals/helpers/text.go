package helper

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Clean trims and NFC-normalises user input. Hangul typed on some platforms
// arrives decomposed (NFD) and would otherwise not match LIKE searches.
func Clean(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// CleanPtr returns nil for nil/blank input.
func CleanPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := Clean(*s)
	if v == "" {
		return nil
	}
	return &v
}

// CleanSet cleans a field that was sent but keeps it when blank, so a required
// field cleared by the client still fails validation.
func CleanSet(s *string) *string {
	if s == nil {
		return nil
	}
	v := Clean(*s)
	return &v
}

func DefaultIfEmpty(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
