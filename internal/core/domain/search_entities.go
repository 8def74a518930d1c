package domain

// SearchFilters defines the fixed query configuration for a findAll search.
// The set is decided at startup, never per request.
type SearchFilters struct {
	// OperationID selects buy/rent/etc. on the upstream side.
	OperationID string
	// TypeIDs is the comma separated set of property type ids to include.
	TypeIDs string
	// CurrencyID, MinPrice and MaxPrice form the "pricein" filter.
	CurrencyID string
	MinPrice   int
	MaxPrice   int
	// Neighborhoods are "id@Label" pairs; empty means no location filter.
	Neighborhoods []string
	// SortBy is the upstream sort expression, e.g. "-priceUsd".
	SortBy string
	// PageSize is the number of slugs requested per catalog page.
	PageSize int
}
