// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"dario.cat/mergo"

	"github.com/akashmahale123/nextjs-brand/internal/logger"
	"github.com/akashmahale123/nextjs-brand/models"
)

// reservedKeys are the built-in top-level field names of [Config]. Extension
// entries using one of these names are kept under Extensions but flagged,
// since they usually indicate a caller migrating from the old spread-style
// custom config.
var reservedKeys = map[string]struct{}{
	"brand":              {},
	"regional":           {},
	"currencies":         {},
	"languages":          {},
	"marketingLanguages": {},
	"pricing":            {},
	"translations":       {},
	"i18n":               {},
}

// layer is one precedence level of the scalar brand/regional fields.
// Earlier layers win: merging a later layer only fills fields the earlier
// layers left empty.
//
// Logo is carried as a pointer separately from Brand.LogoURL because the
// logo uses strict presence semantics: a non-nil pointer (even to "") is an
// explicit value and must not be overwritten by a later layer. mergo judges
// a pointer to "" empty and would overwrite it, so the merged Logo value is
// never consulted; resolveLogo walks the layers directly instead.
type layer struct {
	Brand    models.BrandIdentity
	Logo     *string
	Regional models.RegionalSettings
}

type assembler struct {
	opts   Options
	layers []*layer
	log    *logger.Logger
}

func newAssembler(opts Options) *assembler {
	return &assembler{
		opts:   opts,
		layers: make([]*layer, 0, 3),
		log:    opts.log(),
	}
}

// withOptions appends the explicit-options layer (highest precedence).
func (a *assembler) withOptions() *assembler {
	a.layers = append(a.layers, &layer{
		Brand: models.BrandIdentity{
			Name:           a.opts.Brand.Name,
			Tagline:        a.opts.Brand.Tagline,
			PrimaryColor:   a.opts.Brand.PrimaryColor,
			SecondaryColor: a.opts.Brand.SecondaryColor,
			TertiaryColor:  a.opts.Brand.TertiaryColor,
		},
		Logo: a.opts.Brand.LogoURL,
		Regional: models.RegionalSettings{
			DefaultCurrency: a.opts.Regional.DefaultCurrency,
			DefaultLocale:   a.opts.Regional.DefaultLocale,
		},
	})

	return a
}

// withEnv appends the environment layer. An unparseable environment is
// logged and the layer is dropped; construction continues with the
// remaining layers.
func (a *assembler) withEnv() *assembler {
	ec := &envConfig{}
	if err := parseEnv(ec); err != nil {
		a.log.Warn().Err(err).Msg("dropping environment layer")
		return a
	}

	l := &layer{
		Brand: models.BrandIdentity{
			Name:           ec.Brand.Name,
			Tagline:        ec.Brand.Tagline,
			PrimaryColor:   ec.Brand.PrimaryColor,
			SecondaryColor: ec.Brand.SecondaryColor,
			TertiaryColor:  ec.Brand.TertiaryColor,
		},
		Regional: models.RegionalSettings{
			DefaultCurrency: ec.Regional.DefaultCurrency,
			DefaultLocale:   ec.Regional.DefaultLocale,
		},
	}
	if ec.Brand.LogoURL != "" {
		l.Logo = &ec.Brand.LogoURL
	}

	a.layers = append(a.layers, l)
	return a
}

// withDefaults appends the built-in defaults layer (lowest precedence).
func (a *assembler) withDefaults() *assembler {
	logo := defaultLogoURL
	a.layers = append(a.layers, &layer{
		Brand:    defaultBrand(),
		Logo:     &logo,
		Regional: defaultRegional(),
	})

	return a
}

// build merges the accumulated layers and attaches the pass-through and
// computed parts of the configuration. It cannot fail: a merge anomaly is
// logged and the field resolves from the layers merged so far.
func (a *assembler) build() *Config {
	resolved := &layer{}
	for _, l := range a.layers {
		if err := mergo.Merge(resolved, l); err != nil {
			a.log.Warn().Err(err).Msg("error merging config layer")
		}
	}

	brand := resolved.Brand
	brand.LogoURL = a.resolveLogo()

	languages := a.opts.Languages
	if languages == nil {
		languages = DefaultLanguages()
	}
	marketing := a.opts.MarketingLanguages
	if marketing == nil {
		marketing = DefaultLanguages()
	}
	currencies := a.opts.Currencies
	if currencies == nil {
		currencies = DefaultCurrencies()
	}

	pricing := a.opts.Pricing
	if pricing == nil {
		pricing = map[string]models.PricePoint{}
	}
	translations := a.opts.Translations
	if translations == nil {
		translations = map[string]models.TranslationDictionary{}
	}

	return &Config{
		Brand:              brand,
		Regional:           resolved.Regional,
		Currencies:         currencies,
		Languages:          languages,
		MarketingLanguages: marketing,
		Pricing:            pricing,
		Translations:       translations,
		I18n: models.I18nSettings{
			Enabled:          true,
			SupportedLocales: supportedLocales(languages, marketing),
		},
		Extensions: a.extensions(),
	}
}

// resolveLogo applies the strict-presence chain for the logo: walking the
// layers in precedence order, the first non-nil pointer wins, even when it
// points at "" (an explicit "no logo"). This deliberately bypasses mergo,
// whose emptiness check dereferences destination pointers and would let a
// later layer overwrite an explicit empty value.
func (a *assembler) resolveLogo() string {
	for _, l := range a.layers {
		if l.Logo != nil {
			return *l.Logo
		}
	}

	return ""
}

// extensions copies the caller-supplied extension map so the returned Config
// does not alias caller-owned state, and flags reserved-key collisions.
func (a *assembler) extensions() map[string]any {
	if len(a.opts.Extensions) == 0 {
		return nil
	}

	ext := make(map[string]any, len(a.opts.Extensions))
	if err := mergo.Merge(&ext, a.opts.Extensions); err != nil {
		a.log.Warn().Err(err).Msg("error copying extensions")
		for k, v := range a.opts.Extensions {
			ext[k] = v
		}
	}

	for k := range ext {
		if _, reserved := reservedKeys[k]; reserved {
			a.log.Warn().Str("key", k).Msg("extension key collides with built-in config field")
		}
	}

	return ext
}

// supportedLocales computes the deduplicated union of the dashboard and
// marketing language codes: dashboard codes first in their given order,
// then marketing-only codes not already present.
func supportedLocales(dashboard, marketing []models.Language) []string {
	seen := make(map[string]struct{}, len(dashboard)+len(marketing))
	locales := make([]string, 0, len(dashboard)+len(marketing))

	for _, l := range dashboard {
		if _, ok := seen[l.Code]; ok {
			continue
		}
		seen[l.Code] = struct{}{}
		locales = append(locales, l.Code)
	}
	for _, l := range marketing {
		if _, ok := seen[l.Code]; ok {
			continue
		}
		seen[l.Code] = struct{}{}
		locales = append(locales, l.Code)
	}

	return locales
}
