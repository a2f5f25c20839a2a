// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegionalSettings holds the region-dependent defaults applied when a
// visitor has not expressed a preference yet (no locale cookie, no explicit
// currency selection).
type RegionalSettings struct {
	// DefaultCurrency is an ISO 4217-style currency code (e.g. "USD").
	// It is stored verbatim; no validation is performed.
	DefaultCurrency string `json:"defaultCurrency"`

	// DefaultLocale is a language-region code (e.g. "en-US") selecting both
	// the UI language and the translation dictionary.
	DefaultLocale string `json:"defaultLocale"`
}
