// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The HappyTails Authors

package session

import (
	"errors"
	"net/http"
	"time"
)

// CookieName is the session cookie of the application.
const CookieName = "ht_session"

// Lifetime is how long an issued session cookie stays valid.
const Lifetime = 7 * 24 * time.Hour

// ErrInvalidSessionCookie is returned by [Decode] when the cookie value is
// not a decodable session payload.
var ErrInvalidSessionCookie = errors.New("invalid session cookie")

// SetCookie writes an ht_session cookie carrying the given encoded payload.
//
// The cookie is deliberately readable by client script (HttpOnly=false),
// scoped to the whole site and expires after [Lifetime].
func SetCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(Lifetime.Seconds()),
		HttpOnly: false,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the ht_session cookie immediately.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest reads and decodes the session cookie of r. A missing cookie
// and an undecodable cookie both yield [ErrInvalidSessionCookie]-class
// failures distinguishable via the second return value.
func FromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}
