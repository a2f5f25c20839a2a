package locale

import (
	"net/http"
	"strings"
)

// HeaderStore is a [Store] over a raw Cookie header line, for contexts that
// hold the header string but no *http.Request (e.g. log replay, tests,
// framework layers that strip the request early).
//
// Reads parse the header by splitting on "; " and matching the first entry
// with the requested name. Writes are buffered on the store and can be
// inspected via [HeaderStore.Written]; they do not alter the raw header.
type HeaderStore struct {
	raw     string
	written []*http.Cookie
}

// NewHeaderStore builds a HeaderStore over the raw Cookie header line,
// e.g. "NEXT_LOCALE=fr-FR; session=abc".
func NewHeaderStore(raw string) *HeaderStore {
	return &HeaderStore{raw: raw}
}

func (s *HeaderStore) Cookie(name string) (string, bool) {
	if s.raw == "" {
		return "", false
	}

	for _, entry := range strings.Split(s.raw, "; ") {
		k, v, ok := strings.Cut(entry, "=")
		if ok && k == name {
			return v, true
		}
	}

	return "", false
}

func (s *HeaderStore) SetCookie(c *http.Cookie) {
	s.written = append(s.written, c)
}

// Written returns the cookies buffered by SetCookie, in write order.
func (s *HeaderStore) Written() []*http.Cookie {
	return s.written
}
