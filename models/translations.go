// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TranslationDictionary is an arbitrarily nested message catalogue for a
// single locale, as produced by the caller's translation-file loader.
// Keys are path segments; leaves are display strings. Nested levels are
// represented as map[string]any values, which is what encoding/json and
// the common YAML decoders produce for untyped documents.
//
// The module never loads or parses translation files itself; dictionaries
// arrive fully parsed and are only traversed, never mutated.
type TranslationDictionary map[string]any

// I18nSettings is the computed internationalisation block of a resolved
// configuration.
type I18nSettings struct {
	// Enabled reports whether locale-aware rendering is on. It is always
	// true for assembled configurations; the field exists so clients can
	// feature-gate on it uniformly.
	Enabled bool `json:"enabled"`

	// SupportedLocales is the deduplicated union of dashboard and marketing
	// language codes: dashboard codes first in their given order, followed
	// by marketing-only codes not already present.
	SupportedLocales []string `json:"supportedLocales"`
}
