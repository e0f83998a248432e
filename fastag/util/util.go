package util

import (
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

var logger = logrus.WithField("component", "fastag.util")

const requestIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// RequestID returns a 16 character random alphanumeric correlation id.
// It is an identifier, not a security token, so math/rand is enough.
func RequestID() string {
	b := make([]byte, 16)
	for i := range b {
		b[i] = requestIDAlphabet[rand.Intn(len(requestIDAlphabet))]
	}
	return string(b)
}

// Timestamp formats the current local wall clock as the aggregator
// expects it: YYYY-MM-DD HH:mm:ss.SSS, zero padded, millisecond
// precision. Computed fresh on every call.
func Timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05.000")
}

// NormalizeDate converts a date in D-M-YYYY or DD/MM/YYYY style input to
// DD-MM-YYYY with zero padding. Input already in the target shape passes
// through unchanged. Unparseable input is returned as-is; the backend
// performs its own validation.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '/' })
	if len(parts) != 3 {
		return s
	}
	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || len(parts[2]) != 4 {
		return s
	}
	return pad2(day) + "-" + pad2(month) + "-" + parts[2]
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}

// Redact shortens sensitive values (bearer tokens, image Base64) for
// logging. Anything longer than 12 characters is cut to its first 8 plus
// an ellipsis marker.
func Redact(s string) string {
	if len(s) <= 12 {
		return s
	}
	return s[:8] + "...(" + strconv.Itoa(len(s)) + " chars)"
}

func DebugEnabled() bool {
	return etb("FASTAG_DEBUG")
}

func HttpTraceEnabled() bool {
	return etb("FASTAG_HTTP_TRACE")
}

func etb(envName string) bool {
	v, ok := os.LookupEnv(envName)
	if !ok {
		return false
	}

	bv, err := strconv.ParseBool(v)

	return err == nil && bv
}

func GetEnvOrFailed(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		logger.Fatal(key, " environment variable is not set")
	}
	return v
}
