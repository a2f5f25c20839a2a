// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/akashmahale123/nextjs-brand/internal/logger"
	"github.com/akashmahale123/nextjs-brand/models"
)

// Config is the fully resolved whitelabel configuration. It aggregates the
// brand identity, regional defaults, the currency and language catalogues,
// the pricing map, the translation dictionaries, the computed i18n block and
// any caller-supplied extensions.
//
// Extensions is deliberately a separate map rather than being spread over
// the top level: extension keys can never shadow a built-in field, which was
// a documented hazard of earlier revisions of this configuration format.
type Config struct {
	// Brand is the resolved visual identity.
	Brand models.BrandIdentity `json:"brand"`

	// Regional holds the resolved default currency and locale.
	Regional models.RegionalSettings `json:"regional"`

	// Currencies is the ordered currency catalogue shown in pickers.
	// Caller-supplied sequences are used verbatim; no merging with the
	// built-in defaults, no deduplication.
	Currencies []models.Currency `json:"currencies"`

	// Languages is the dashboard language catalogue.
	Languages []models.Language `json:"languages"`

	// MarketingLanguages is the marketing-site language catalogue.
	// Independent from Languages; the two may overlap.
	MarketingLanguages []models.Language `json:"marketingLanguages"`

	// Pricing maps locale codes to preformatted price entries.
	// Always non-nil after construction.
	Pricing map[string]models.PricePoint `json:"pricing"`

	// Translations maps locale codes to their parsed message catalogues.
	// Always non-nil after construction.
	Translations map[string]models.TranslationDictionary `json:"translations"`

	// I18n is the computed internationalisation block.
	I18n models.I18nSettings `json:"i18n"`

	// Extensions holds arbitrary caller-defined configuration entries.
	Extensions map[string]any `json:"extensions,omitempty"`
}

// New resolves opts into an immutable *Config by layering the explicit
// options, the NEXT_PUBLIC_* environment variables and the built-in defaults
// in that priority order (first non-empty value wins per field).
//
// Construction has no failure mode: a broken environment or a failed merge
// is logged on opts.Logger (if any) and the affected fields fall back to the
// next layer.
func New(opts Options) *Config {
	return newAssembler(opts).
		withOptions().
		withEnv().
		withDefaults().
		build()
}

// log returns the caller-supplied logger or a silent one, so the assembler
// never has to nil-check before logging.
func (o Options) log() *logger.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return logger.Nop()
}
