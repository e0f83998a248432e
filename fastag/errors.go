package fastag

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoToken signals that the token generation call succeeded at the
	// transport level but the decrypted response carried no token field.
	ErrNoToken = errors.New("token generation response contains no token")

	// ErrEmptyBody signals an empty response body on an endpoint that
	// contractually requires one (replace FasTag).
	ErrEmptyBody = errors.New("aggregator returned an empty response body")
)

// EncryptionError wraps a failure while encrypting an outbound payload.
type EncryptionError struct {
	Op  string
	Err error
}

func (e *EncryptionError) Error() string {
	return fmt.Sprintf("%s: payload encryption failed: %v", e.Op, e.Err)
}

func (e *EncryptionError) Unwrap() error { return e.Err }

// DecryptionError wraps a failure while decrypting a response body:
// malformed ciphertext, wrong padding or a non-UTF8 result. A key/IV
// mismatch surfaces here rather than as garbage plaintext.
type DecryptionError struct {
	Op  string
	Err error
}

func (e *DecryptionError) Error() string {
	return fmt.Sprintf("%s: response decryption failed: %v", e.Op, e.Err)
}

func (e *DecryptionError) Unwrap() error { return e.Err }

// NetworkError covers transport failures and non-2xx HTTP statuses.
// Message is mined from the error body when the backend provides one,
// otherwise it holds the per-operation fallback text.
type NetworkError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: http %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError means the decrypted response itself signals failure via
// response.status / response.code. Description carries the backend's own
// errorDesc verbatim.
type ProtocolError struct {
	Op          string
	Status      string
	Code        string
	Description string
}

func (e *ProtocolError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Description)
	}
	return fmt.Sprintf("%s: aggregator reported status %q code %q", e.Op, e.Status, e.Code)
}

// RCImage reports whether the backend rejected the registration because
// of the RC images. Callers route these to a re-capture screen instead of
// a generic alert.
func (e *ProtocolError) RCImage() bool {
	return strings.Contains(e.Description, "RCIMAGE")
}

// ValidationError is raised before any network call: malformed Base64
// input, missing required fields.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsRCImageError reports whether err is a ProtocolError carrying an
// RC-image rejection.
func IsRCImageError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe) && pe.RCImage()
}
