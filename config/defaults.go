// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/akashmahale123/nextjs-brand/models"

// Built-in brand and regional defaults. These are the values a completely
// unconfigured process resolves to.
const (
	defaultBrandName      = "NextBrand"
	defaultBrandTagline   = "Launch your branded SaaS in minutes"
	defaultLogoURL        = "/logo.svg"
	defaultPrimaryColor   = "#2563EB"
	defaultSecondaryColor = "#0F172A"
	defaultTertiaryColor  = "#F59E0B"

	defaultCurrencyCode = "USD"
	defaultLocaleCode   = "en-US"
)

// DefaultCurrencies returns the built-in currency catalogue used when the
// caller supplies none. A fresh slice is returned on every call so callers
// cannot mutate the defaults of later configurations.
func DefaultCurrencies() []models.Currency {
	return []models.Currency{
		{Code: "USD", Flag: "🇺🇸", Name: "US Dollar", Symbol: "$"},
		{Code: "EUR", Flag: "🇪🇺", Name: "Euro", Symbol: "€"},
		{Code: "GBP", Flag: "🇬🇧", Name: "British Pound", Symbol: "£"},
		{Code: "INR", Flag: "🇮🇳", Name: "Indian Rupee", Symbol: "₹"},
		{Code: "AUD", Flag: "🇦🇺", Name: "Australian Dollar", Symbol: "A$"},
		{Code: "CAD", Flag: "🇨🇦", Name: "Canadian Dollar", Symbol: "C$"},
		{Code: "SGD", Flag: "🇸🇬", Name: "Singapore Dollar", Symbol: "S$"},
		{Code: "JPY", Flag: "🇯🇵", Name: "Japanese Yen", Symbol: "¥"},
		{Code: "AED", Flag: "🇦🇪", Name: "UAE Dirham", Symbol: "د.إ"},
	}
}

// DefaultLanguages returns the built-in language catalogue used for both
// the dashboard and the marketing set when the caller supplies none.
func DefaultLanguages() []models.Language {
	return []models.Language{
		{Code: "en-US", Flag: "🇺🇸", Name: "English"},
		{Code: "es-ES", Flag: "🇪🇸", Name: "Español"},
		{Code: "fr-FR", Flag: "🇫🇷", Name: "Français"},
	}
}

func defaultBrand() models.BrandIdentity {
	return models.BrandIdentity{
		Name:           defaultBrandName,
		Tagline:        defaultBrandTagline,
		PrimaryColor:   defaultPrimaryColor,
		SecondaryColor: defaultSecondaryColor,
		TertiaryColor:  defaultTertiaryColor,
	}
}

func defaultRegional() models.RegionalSettings {
	return models.RegionalSettings{
		DefaultCurrency: defaultCurrencyCode,
		DefaultLocale:   defaultLocaleCode,
	}
}
