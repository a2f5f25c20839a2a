// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"github.com/akashmahale123/nextjs-brand/internal/logger"
	"github.com/akashmahale123/nextjs-brand/models"
)

// Options is the input to [New]. Every field is optional; omitted fields
// fall through to the corresponding environment variable and then to the
// built-in default.
type Options struct {
	// Brand carries the explicit brand-identity values.
	Brand BrandOptions

	// Regional carries the explicit regional defaults.
	Regional RegionalOptions

	// Currencies replaces the built-in currency catalogue when non-nil.
	// The slice is used verbatim: supplying one currency yields a Config
	// with exactly one currency, not one merged with the defaults.
	Currencies []models.Currency

	// Languages replaces the built-in dashboard language catalogue when
	// non-nil. Same verbatim semantics as Currencies.
	Languages []models.Language

	// MarketingLanguages replaces the built-in marketing language catalogue
	// when non-nil. Same verbatim semantics as Currencies.
	MarketingLanguages []models.Language

	// Pricing maps locale codes to preformatted price entries. Passed
	// through untouched; there is no built-in pricing default.
	Pricing map[string]models.PricePoint

	// Translations maps locale codes to already-parsed message catalogues.
	// This package never loads or parses translation files itself.
	Translations map[string]models.TranslationDictionary

	// Extensions holds arbitrary caller-defined entries, surfaced on
	// [Config.Extensions]. Keys that collide with a built-in top-level
	// field name are logged and kept under Extensions; they do not shadow
	// the built-in field.
	Extensions map[string]any

	// Logger receives assembler diagnostics (extension-key collisions,
	// unparseable environment). Nil means no logging.
	Logger *logger.Logger
}

// BrandOptions carries the explicit brand-identity values.
//
// Note the deliberate asymmetry between LogoURL and the other fields: the
// string fields treat "" as absent (falling through to the env variable),
// while LogoURL distinguishes unset (nil) from explicitly empty. Both
// behaviors are part of the published contract.
type BrandOptions struct {
	// Name is the brand display name. "" falls through to
	// NEXT_PUBLIC_APP_NAME and then to the built-in default.
	Name string

	// Tagline is the marketing strapline. Same fallthrough as Name.
	Tagline string

	// LogoURL uses strict presence semantics: nil falls through to
	// NEXT_PUBLIC_LOGO_URL, while a non-nil pointer — including a pointer
	// to "" meaning "this tenant has no logo" — is honored as-is and
	// short-circuits the environment lookup.
	LogoURL *string

	// PrimaryColor, SecondaryColor and TertiaryColor are raw color strings.
	// "" falls through; no format validation is performed.
	PrimaryColor   string
	SecondaryColor string
	TertiaryColor  string
}

// RegionalOptions carries the explicit regional defaults. "" falls through
// to the environment and then to the built-in default.
type RegionalOptions struct {
	DefaultCurrency string
	DefaultLocale   string
}
