package models

// BrandIdentity describes the visual identity of the tenant the application
// is branded for. Every field is a resolved value: by the time a
// BrandIdentity is handed to callers, the explicit/env/default precedence
// chain has already been applied.
type BrandIdentity struct {
	// Name is the display name of the brand (e.g. "Acme").
	// Shown in page titles, headers and transactional copy.
	Name string `json:"name"`

	// Tagline is the short marketing strapline rendered next to the name.
	Tagline string `json:"tagline"`

	// LogoURL points at the brand logo asset. An empty string means the
	// tenant explicitly runs without a logo; renderers must not substitute
	// a default in that case.
	LogoURL string `json:"logoUrl"`

	// PrimaryColor, SecondaryColor and TertiaryColor are raw color strings
	// (typically hex codes). No format validation is performed on them.
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	TertiaryColor  string `json:"tertiaryColor"`
}
