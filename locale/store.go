// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package locale persists and recalls the visitor's locale choice through a
// cookie named NEXT_LOCALE.
//
// The package never senses an ambient cookie store. Callers inject a [Store]
// capability; server-rendered contexts wrap their ResponseWriter/Request
// pair with [NewRequestStore], while contexts that only hold a raw Cookie
// header line use [NewHeaderStore]. Passing a nil Store turns both helpers
// into safe no-ops, which is the expected situation during server-side
// execution with no request in flight.
package locale

import "net/http"

//go:generate mockgen -source=store.go -destination=../internal/mock/cookie_store_mock.go -package=mock

// Store is the cookie-store capability the helpers operate on.
// Implementations decide where cookies actually live.
type Store interface {
	// Cookie returns the value of the named cookie and whether it was
	// present. Absent cookies report ("", false), never an empty-string hit.
	Cookie(name string) (string, bool)

	// SetCookie records c in the store. Implementations backed by an HTTP
	// response emit a Set-Cookie header; others may buffer the write.
	SetCookie(c *http.Cookie)
}
