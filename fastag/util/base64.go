package util

import (
	"regexp"
	"strings"
)

var (
	dataURLPrefix   = regexp.MustCompile(`^data:[^;]+;base64,`)
	invalidB64Chars = regexp.MustCompile(`[^A-Za-z0-9+/=]`)
)

// EnsureValidBase64 repairs Base64 payloads coming out of mobile image
// pickers before they are embedded in a request: strips a data-URL
// prefix, strips whitespace and any character outside the Base64
// alphabet, drops misplaced padding and re-pads to a multiple of four.
// Returns "" when nothing valid remains.
func EnsureValidBase64(s string) string {
	s = dataURLPrefix.ReplaceAllString(strings.TrimSpace(s), "")
	s = invalidB64Chars.ReplaceAllString(s, "")

	// padding is only meaningful at the very end
	s = strings.ReplaceAll(s, "=", "")
	if s == "" {
		return ""
	}

	switch len(s) % 4 {
	case 1:
		// a single leftover character can never decode; drop it
		return s[:len(s)-1]
	case 2:
		return s + "=="
	case 3:
		return s + "="
	}
	return s
}
