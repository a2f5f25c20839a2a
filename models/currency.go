// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Currency is a single entry of the currency picker. The assembler treats
// the currency list as an ordered, opaque sequence: no deduplication and no
// well-formedness checks are applied to entries supplied by the caller.
type Currency struct {
	// Code is the currency code shown to and sent by clients (e.g. "EUR").
	Code string `json:"code"`

	// Flag is the emoji glyph rendered next to the code in pickers.
	Flag string `json:"flag"`

	// Name is the human-readable currency name (e.g. "Euro").
	Name string `json:"name"`

	// Symbol is the display symbol used when rendering prices (e.g. "€").
	Symbol string `json:"symbol"`
}
