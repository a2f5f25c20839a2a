// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Language is a single entry of a language picker. Two independent language
// sequences exist in a resolved configuration: the dashboard languages and
// the marketing-site languages; both use this shape.
type Language struct {
	// Code is the locale code (e.g. "en-US") used to key translation
	// dictionaries and the locale cookie.
	Code string `json:"code"`

	// Flag is the emoji glyph rendered next to the language name.
	Flag string `json:"flag"`

	// Name is the language's self-describing display name (e.g. "Español").
	Name string `json:"name"`
}
