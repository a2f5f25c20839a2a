// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package locale

import "net/http"

// requestStore is the server-rendered context implementation of [Store]:
// reads come from the inbound request, writes become Set-Cookie headers on
// the response.
type requestStore struct {
	w http.ResponseWriter
	r *http.Request
}

// NewRequestStore wraps an HTTP exchange as a [Store]. Either side may be
// nil: a nil request makes reads miss, a nil writer makes writes no-ops.
func NewRequestStore(w http.ResponseWriter, r *http.Request) Store {
	return &requestStore{w: w, r: r}
}

func (s *requestStore) Cookie(name string) (string, bool) {
	if s.r == nil {
		return "", false
	}

	c, err := s.r.Cookie(name)
	if err != nil {
		return "", false
	}

	return c.Value, true
}

func (s *requestStore) SetCookie(c *http.Cookie) {
	if s.w == nil {
		return
	}

	http.SetCookie(s.w, c)
}
