// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

// Package totp implements RFC 6238 time-based one-time passwords as used by
// the MFA login and setup flows: 6 decimal digits, HMAC-SHA1, 30 second
// steps, with a clock-skew tolerance of one step in each direction.
package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base32"
	"errors"
	"math/big"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// Digits is the length of a generated code.
	Digits = 6

	// StepSeconds is the length of one time step.
	StepSeconds = 30

	// SkewSteps is the number of adjacent steps accepted on each side of
	// the current one during verification.
	SkewSteps = 1

	secretSize = 20
)

var (
	// ErrInvalidCodeFormat is returned when the submitted code is not six
	// decimal digits. Checked before the seed is ever touched.
	ErrInvalidCodeFormat = errors.New("code must be a 6-digit string")

	// ErrInvalidCode is returned when a well-formed code does not match any
	// step inside the tolerance window.
	ErrInvalidCode = errors.New("invalid code")

	// ErrInvalidSecret is returned when the seed is not valid base32.
	ErrInvalidSecret = errors.New("invalid totp secret")
)

var codePattern = regexp.MustCompile(`^\d{6}$`)

var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

const modulus = 1000000

// GenerateSecret draws a fresh random seed and returns it base32-encoded
// without padding, ready for an otpauth provisioning URI.
func GenerateSecret() (string, error) {
	raw := make([]byte, secretSize)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}

	return encoding.EncodeToString(raw), nil
}

// ValidFormat reports whether code looks like a TOTP code at all.
func ValidFormat(code string) bool {
	return codePattern.MatchString(code)
}

// GenerateAt computes the code for the given base32 seed at time t.
func GenerateAt(secret string, t time.Time) (string, error) {
	key, err := encoding.DecodeString(strings.ToUpper(strings.TrimRight(secret, "=")))
	if err != nil {
		return "", ErrInvalidSecret
	}

	step := t.UTC().Unix() / StepSeconds
	buf := make([]byte, 8)
	big.NewInt(step).FillBytes(buf)

	mac := hmac.New(sha1.New, key)
	mac.Write(buf)
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0xf
	bin := ((int(sum[offset]) & 0x7f) << 24) |
		((int(sum[offset+1]) & 0xff) << 16) |
		((int(sum[offset+2]) & 0xff) << 8) |
		(int(sum[offset+3]) & 0xff)
	otp := bin % modulus

	code := strconv.Itoa(otp)
	return strings.Repeat("0", Digits-len(code)) + code, nil
}

// VerifyAt checks code against the seed at time t, accepting the previous,
// current and next steps.
//
// The format is validated first: a code that is not six decimal digits
// fails with [ErrInvalidCodeFormat] without the seed being decoded.
func VerifyAt(code, secret string, t time.Time) error {
	if !ValidFormat(code) {
		return ErrInvalidCodeFormat
	}

	for i := -SkewSteps; i <= SkewSteps; i++ {
		stepTime := t.Add(time.Duration(i*StepSeconds) * time.Second)
		expected, err := GenerateAt(secret, stepTime)
		if err != nil {
			return err
		}
		if hmac.Equal([]byte(expected), []byte(code)) {
			return nil
		}
	}

	return ErrInvalidCode
}

// Verify is [VerifyAt] against the current clock.
func Verify(code, secret string) error {
	return VerifyAt(code, secret, time.Now())
}

// ProvisioningURL builds the otpauth:// URI that provisions the seed into an
// authenticator app. The plaintext seed exists only inside this URI.
func ProvisioningURL(secret, issuer, account string) string {
	params := make(url.Values)
	params.Set("secret", secret)
	params.Set("issuer", issuer)
	params.Set("algorithm", "SHA1")
	params.Set("digits", strconv.Itoa(Digits))
	params.Set("period", strconv.Itoa(StepSeconds))

	u := url.URL{
		Scheme:   "otpauth",
		Host:     "totp",
		Path:     url.PathEscape(issuer + ":" + account),
		RawQuery: params.Encode(),
	}

	return u.String()
}
