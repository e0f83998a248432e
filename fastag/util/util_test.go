package util

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestID_FormatAndUniqueness(t *testing.T) {

	format := regexp.MustCompile(`^[A-Za-z0-9]{16}$`)
	seen := make(map[string]bool, 10000)

	for i := 0; i < 10000; i++ {
		id := RequestID()
		assert.Regexp(t, format, id)
		assert.False(t, seen[id], "duplicate request id %s after %d draws", id, i)
		seen[id] = true
	}
}

func TestTimestamp_Format(t *testing.T) {
	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}$`), Timestamp())
}

func TestNormalizeDate(t *testing.T) {

	cases := map[string]string{
		"1-2-1990":   "01-02-1990",
		"01-02-1990": "01-02-1990",
		"9/7/2024":   "09-07-2024",
		" 5-12-2001": "05-12-2001",
		"1990":       "1990",   // unparseable passes through
		"1-2-90":     "1-2-90", // two digit year passes through
	}
	for in, want := range cases {
		assert.Equal(t, want, NormalizeDate(in), "input %q", in)
	}
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "short", Redact("short"))
	assert.Equal(t, "aaaaaaaa...(40 chars)", Redact("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
}
