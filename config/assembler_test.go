package config

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmahale123/nextjs-brand/internal/logger"
	"github.com/akashmahale123/nextjs-brand/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

var brandEnvVars = []string{
	"NEXT_PUBLIC_APP_NAME",
	"NEXT_PUBLIC_APP_TAGLINE",
	"NEXT_PUBLIC_LOGO_URL",
	"NEXT_PUBLIC_PRIMARY_COLOR",
	"NEXT_PUBLIC_SECONDARY_COLOR",
	"NEXT_PUBLIC_TERTIARY_COLOR",
	"NEXT_PUBLIC_DEFAULT_CURRENCY",
	"NEXT_PUBLIC_DEFAULT_LOCALE",
}

// clearBrandEnv pins every consumed variable to "" so tests are insulated
// from the ambient environment of the test runner.
func clearBrandEnv(t *testing.T) {
	t.Helper()
	for _, name := range brandEnvVars {
		t.Setenv(name, "")
	}
}

func strPtr(s string) *string { return &s }

// bufLogger returns a *logger.Logger writing to the returned buffer.
func bufLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &logger.Logger{Logger: zerolog.New(&buf)}, &buf
}

// ── precedence chain ──────────────────────────────────────────────────────────

// TestNew_ExplicitBeatsEnv verifies that an explicit option value wins over
// a set environment variable for every scalar brand/regional field.
func TestNew_ExplicitBeatsEnv(t *testing.T) {
	clearBrandEnv(t)
	t.Setenv("NEXT_PUBLIC_APP_NAME", "EnvCo")
	t.Setenv("NEXT_PUBLIC_DEFAULT_LOCALE", "de-DE")

	cfg := New(Options{
		Brand:    BrandOptions{Name: "Acme"},
		Regional: RegionalOptions{DefaultLocale: "es-ES"},
	})

	assert.Equal(t, "Acme", cfg.Brand.Name)
	assert.Equal(t, "es-ES", cfg.Regional.DefaultLocale)
}

// TestNew_EnvBeatsDefault verifies that a set environment variable wins over
// the built-in default when no explicit value is given.
func TestNew_EnvBeatsDefault(t *testing.T) {
	clearBrandEnv(t)
	t.Setenv("NEXT_PUBLIC_APP_TAGLINE", "env tagline")
	t.Setenv("NEXT_PUBLIC_PRIMARY_COLOR", "#ABCDEF")
	t.Setenv("NEXT_PUBLIC_DEFAULT_CURRENCY", "GBP")

	cfg := New(Options{})

	assert.Equal(t, "env tagline", cfg.Brand.Tagline)
	assert.Equal(t, "#ABCDEF", cfg.Brand.PrimaryColor)
	assert.Equal(t, "GBP", cfg.Regional.DefaultCurrency)
}

// TestNew_DefaultsWhenNothingSet verifies the full fallback to built-in
// defaults on a clean environment.
func TestNew_DefaultsWhenNothingSet(t *testing.T) {
	clearBrandEnv(t)

	cfg := New(Options{})

	assert.Equal(t, defaultBrandName, cfg.Brand.Name)
	assert.Equal(t, defaultBrandTagline, cfg.Brand.Tagline)
	assert.Equal(t, defaultLogoURL, cfg.Brand.LogoURL)
	assert.Equal(t, defaultPrimaryColor, cfg.Brand.PrimaryColor)
	assert.Equal(t, defaultCurrencyCode, cfg.Regional.DefaultCurrency)
	assert.Equal(t, defaultLocaleCode, cfg.Regional.DefaultLocale)
}

// TestNew_EmptyStringFallsThrough verifies the truthiness-style contract for
// plain string fields: an explicit "" is treated as absent.
func TestNew_EmptyStringFallsThrough(t *testing.T) {
	clearBrandEnv(t)
	t.Setenv("NEXT_PUBLIC_APP_NAME", "EnvCo")

	cfg := New(Options{Brand: BrandOptions{Name: ""}})

	assert.Equal(t, "EnvCo", cfg.Brand.Name)
}

// ── logo strict presence ──────────────────────────────────────────────────────

// TestNew_LogoExplicitEmptyBeatsEnv verifies that an explicit "no logo"
// (non-nil pointer to "") short-circuits the environment variable, unlike
// the truthiness fields.
func TestNew_LogoExplicitEmptyBeatsEnv(t *testing.T) {
	clearBrandEnv(t)
	t.Setenv("NEXT_PUBLIC_LOGO_URL", "https://cdn.envco.io/logo.png")

	cfg := New(Options{Brand: BrandOptions{LogoURL: strPtr("")}})

	assert.Equal(t, "", cfg.Brand.LogoURL)
}

// TestNew_LogoExplicitEmptyBeatsDefault verifies that explicit "no logo"
// also survives the defaults layer: a clean environment must not resurrect
// the built-in logo.
func TestNew_LogoExplicitEmptyBeatsDefault(t *testing.T) {
	clearBrandEnv(t)

	cfg := New(Options{Brand: BrandOptions{LogoURL: strPtr("")}})

	assert.Equal(t, "", cfg.Brand.LogoURL)
}

// TestNew_LogoExplicitEmptySurvivesAllLayers pins the strict-presence chain
// end to end: with both the env variable and the built-in default carrying
// logo values, a pointer to "" in the options layer still wins. Pointers to
// empty strings are judged empty by mergo's dereferencing emptiness check,
// so the logo must never be resolved from the merged layers.
func TestNew_LogoExplicitEmptySurvivesAllLayers(t *testing.T) {
	clearBrandEnv(t)
	t.Setenv("NEXT_PUBLIC_LOGO_URL", "https://cdn.envco.io/logo.png")

	cfg := New(Options{
		Brand: BrandOptions{Name: "Acme", LogoURL: strPtr("")},
	})

	assert.Equal(t, "", cfg.Brand.LogoURL)
	// neighbouring truthiness fields still resolve through mergo
	assert.Equal(t, "Acme", cfg.Brand.Name)
	assert.Equal(t, defaultBrandTagline, cfg.Brand.Tagline)
}

// TestNew_LogoNilFallsThroughToEnv verifies that an unset logo pointer falls
// through to the environment variable.
func TestNew_LogoNilFallsThroughToEnv(t *testing.T) {
	clearBrandEnv(t)
	t.Setenv("NEXT_PUBLIC_LOGO_URL", "https://cdn.envco.io/logo.png")

	cfg := New(Options{})

	assert.Equal(t, "https://cdn.envco.io/logo.png", cfg.Brand.LogoURL)
}

// TestNew_LogoExplicitValueWins verifies the ordinary explicit case.
func TestNew_LogoExplicitValueWins(t *testing.T) {
	clearBrandEnv(t)
	t.Setenv("NEXT_PUBLIC_LOGO_URL", "https://cdn.envco.io/logo.png")

	cfg := New(Options{Brand: BrandOptions{LogoURL: strPtr("/tenant.svg")}})

	assert.Equal(t, "/tenant.svg", cfg.Brand.LogoURL)
}

// ── sequences ─────────────────────────────────────────────────────────────────

// TestNew_CallerCurrenciesVerbatim verifies that a supplied currency list is
// used as-is: one currency in, exactly one currency out, no default merge.
func TestNew_CallerCurrenciesVerbatim(t *testing.T) {
	clearBrandEnv(t)

	only := models.Currency{Code: "CHF", Flag: "🇨🇭", Name: "Swiss Franc", Symbol: "CHF"}
	cfg := New(Options{Currencies: []models.Currency{only}})

	require.Len(t, cfg.Currencies, 1)
	assert.Equal(t, only, cfg.Currencies[0])
}

// TestNew_NilCurrenciesUseDefaults verifies the nine-entry built-in list.
func TestNew_NilCurrenciesUseDefaults(t *testing.T) {
	clearBrandEnv(t)

	cfg := New(Options{})

	require.Len(t, cfg.Currencies, 9)
	assert.Equal(t, "USD", cfg.Currencies[0].Code)
}

// TestNew_EmptyNonNilSequenceIsVerbatim verifies that an empty (but non-nil)
// sequence counts as supplied and suppresses the defaults.
func TestNew_EmptyNonNilSequenceIsVerbatim(t *testing.T) {
	clearBrandEnv(t)

	cfg := New(Options{Currencies: []models.Currency{}})

	assert.Empty(t, cfg.Currencies)
}

// TestNew_NilLanguagesUseDefaults verifies the three-locale built-in list for
// both the dashboard and marketing sets.
func TestNew_NilLanguagesUseDefaults(t *testing.T) {
	clearBrandEnv(t)

	cfg := New(Options{})

	require.Len(t, cfg.Languages, 3)
	require.Len(t, cfg.MarketingLanguages, 3)
	assert.Equal(t, "en-US", cfg.Languages[0].Code)
}

// ── computed i18n block ───────────────────────────────────────────────────────

// TestNew_SupportedLocalesUnion verifies the dedup-union order: dashboard
// codes first, then marketing-only codes.
func TestNew_SupportedLocalesUnion(t *testing.T) {
	clearBrandEnv(t)

	cfg := New(Options{
		Languages: []models.Language{
			{Code: "en-US"}, {Code: "es-ES"},
		},
		MarketingLanguages: []models.Language{
			{Code: "es-ES"}, {Code: "fr-FR"},
		},
	})

	assert.True(t, cfg.I18n.Enabled)
	assert.Equal(t, []string{"en-US", "es-ES", "fr-FR"}, cfg.I18n.SupportedLocales)
}

// TestNew_SupportedLocalesDefaults verifies the union over the default
// language catalogues (identical sets collapse to three codes).
func TestNew_SupportedLocalesDefaults(t *testing.T) {
	clearBrandEnv(t)

	cfg := New(Options{})

	assert.Equal(t, []string{"en-US", "es-ES", "fr-FR"}, cfg.I18n.SupportedLocales)
}

// ── pass-through maps ─────────────────────────────────────────────────────────

// TestNew_PricingPassThrough verifies the pricing map is carried untouched
// and normalised to non-nil when omitted.
func TestNew_PricingPassThrough(t *testing.T) {
	clearBrandEnv(t)

	pricing := map[string]models.PricePoint{
		"en-US": {Price: "29.99", CurrencySymbol: "$"},
	}
	cfg := New(Options{Pricing: pricing})
	assert.Equal(t, pricing, cfg.Pricing)

	cfg = New(Options{})
	require.NotNil(t, cfg.Pricing)
	assert.Empty(t, cfg.Pricing)
}

// ── extensions ────────────────────────────────────────────────────────────────

// TestNew_ExtensionsKeptSeparate verifies that extension entries live under
// Extensions and never shadow built-in fields.
func TestNew_ExtensionsKeptSeparate(t *testing.T) {
	clearBrandEnv(t)

	cfg := New(Options{
		Brand: BrandOptions{Name: "Acme"},
		Extensions: map[string]any{
			"brand":     "shadow attempt",
			"analytics": map[string]any{"id": "UA-1"},
		},
	})

	assert.Equal(t, "Acme", cfg.Brand.Name)
	assert.Equal(t, "shadow attempt", cfg.Extensions["brand"])
	assert.Contains(t, cfg.Extensions, "analytics")
}

// TestNew_ExtensionCollisionLogged verifies that a reserved-key collision is
// surfaced on the supplied logger.
func TestNew_ExtensionCollisionLogged(t *testing.T) {
	clearBrandEnv(t)

	log, buf := bufLogger()
	New(Options{
		Extensions: map[string]any{"regional": true},
		Logger:     log,
	})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "regional", entry["key"])
}

// TestNew_NoExtensions verifies that Extensions stays nil when none are
// supplied, keeping it out of the JSON encoding.
func TestNew_NoExtensions(t *testing.T) {
	clearBrandEnv(t)

	cfg := New(Options{})

	assert.Nil(t, cfg.Extensions)
}

// TestNew_ExtensionsCopied verifies that mutating the caller's map after
// construction does not leak into the Config.
func TestNew_ExtensionsCopied(t *testing.T) {
	clearBrandEnv(t)

	ext := map[string]any{"plan": "pro"}
	cfg := New(Options{Extensions: ext})
	ext["plan"] = "free"

	assert.Equal(t, "pro", cfg.Extensions["plan"])
}
