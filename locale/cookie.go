// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locale

import "net/http"

const (
	// CookieName is the cookie carrying the visitor's locale choice.
	CookieName = "NEXT_LOCALE"

	// cookieMaxAge is one year in seconds.
	cookieMaxAge = 31536000

	cookiePath = "/"
)

// SetLocale writes the locale cookie to s with the published wire format:
// Path=/, Max-Age one year, SameSite=Lax. The value is stored verbatim;
// locale codes are assumed URL-safe and are not encoded.
//
// A nil Store makes SetLocale a no-op; it never panics.
func SetLocale(s Store, locale string) {
	if s == nil {
		return
	}

	s.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    locale,
		Path:     cookiePath,
		MaxAge:   cookieMaxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// Locale reads the locale cookie from s. It reports ("", false) when s is
// nil, when the cookie is absent, or when it is present but empty — callers
// always get an explicit "no value" rather than an empty locale code.
func Locale(s Store) (string, bool) {
	if s == nil {
		return "", false
	}

	v, ok := s.Cookie(CookieName)
	if !ok || v == "" {
		return "", false
	}

	return v, true
}
