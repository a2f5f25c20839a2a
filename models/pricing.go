package models

// PricePoint is the per-locale price display entry. Values are opaque
// strings; the module performs no currency conversion or arithmetic on them.
type PricePoint struct {
	// Price is the preformatted price string for the locale (e.g. "29.99").
	Price string `json:"price"`

	// CurrencySymbol is the symbol rendered alongside Price (e.g. "$").
	CurrencySymbol string `json:"currencySymbol"`
}
