// Package session implements the reversible codec for the ht_session cookie
// and the helpers that attach it to HTTP responses.
//
// The cookie value is a base64url rendition of the JSON session payload with
// no padding characters. No message authentication code is applied: decoding
// succeeds for any well-formed payload, including one fabricated by a
// client. That is the historical contract of the application; callers must
// treat the decoded session as a convenience identity snapshot, not proof
// of anything.
package session

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/happytails/happytails/models"
)

// Encode serializes the session payload to compact JSON and maps it to a
// URL-safe base64 text: standard base64 with "+" replaced by "-", "/" by
// "_" and all "=" padding stripped.
func Encode(s models.Session) (string, error) {
	payload, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("error encoding session payload: %w", err)
	}

	b64 := base64.StdEncoding.EncodeToString(payload)
	b64 = strings.ReplaceAll(b64, "+", "-")
	b64 = strings.ReplaceAll(b64, "/", "_")
	b64 = strings.TrimRight(b64, "=")

	return b64, nil
}

// Decode reverses [Encode]: it restores the standard base64 alphabet and
// padding, decodes, and parses the JSON payload.
//
// Malformed or undecodable values return [ErrInvalidSessionCookie]; callers
// must treat that as "not authenticated", never as a fault.
func Decode(value string) (models.Session, error) {
	b64 := strings.ReplaceAll(value, "-", "+")
	b64 = strings.ReplaceAll(b64, "_", "/")
	if padding := len(b64) % 4; padding != 0 {
		b64 += strings.Repeat("=", 4-padding)
	}

	payload, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSessionCookie, err)
	}

	var s models.Session
	if err := json.Unmarshal(payload, &s); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidSessionCookie, err)
	}

	return s, nil
}
