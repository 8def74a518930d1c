package domain

// ListingSlug is the opaque identifier Remax assigns to one listing. It is
// only ever used to request the listing's detail record.
type ListingSlug string

// CatalogPage is one page of a paginated findAll query.
type CatalogPage struct {
	Slugs      []ListingSlug
	Page       int
	TotalPages int
	TotalItems int
}

// Location holds the GeoJSON-style point the API returns for a listing.
// Coordinates come in [altitude, latitude] order.
type Location struct {
	Type        string
	Coordinates []float64
}

// Altitude returns the first coordinate, or 0 when the point is absent.
func (l Location) Altitude() float64 {
	if len(l.Coordinates) < 1 {
		return 0
	}
	return l.Coordinates[0]
}

// Latitude returns the second coordinate, or 0 when the point is absent.
func (l Location) Latitude() float64 {
	if len(l.Coordinates) < 2 {
		return 0
	}
	return l.Coordinates[1]
}

// Currency is an id/value pair as exposed by the API, e.g. {1, "USD"}.
type Currency struct {
	ID    int
	Value string
}

// LabeledValue is the generic id/value enumeration the API uses for
// property type, operation, listing status, conditions and so on.
type LabeledValue struct {
	ID    int
	Value string
}

// Photo is one entry of a listing's ordered photo collection.
type Photo struct {
	Value    string
	Position int
}

// ListingDetail is the canonical representation of one catalog entry.
// It is immutable once mapped from an upstream response; persistence only
// ever inserts records that are not stored yet.
type ListingDetail struct {
	ID             string
	InternalID     string
	Title          string
	Slug           string
	Description    string
	DisplayAddress string

	Location Location

	TotalRooms    int
	Bedrooms      int
	Bathrooms     int
	Toilets       int
	Floors        int
	ParkingSpaces int

	Pozo               bool
	ProfessionalUse    bool
	CommercialUse      bool
	InPrivateCommunity bool
	ReducedMobility    bool
	Financing          bool
	AptCredit          bool

	// Price is nil when the upstream exposes a non-numeric placeholder
	// ("consultar precio") instead of a number.
	Price            *float64
	Currency         Currency
	ExpensesPrice    *float64
	ExpensesCurrency *Currency
	PriceExposure    bool
	FeeQuotes        float64

	DimensionLand        float64
	DimensionTotalBuilt  float64
	DimensionCovered     float64
	DimensionSemicovered float64
	DimensionUncovered   float64

	YearBuilt *int
	Quotes    int
	Video     string

	Type          LabeledValue
	Operation     LabeledValue
	ListingStatus LabeledValue
	Opportunity   LabeledValue

	Conditions []LabeledValue
	Features   []LabeledValue
	Photos     []Photo
}

// DedupKey returns the value the store deduplicates on. InternalID is the
// stable upstream identifier and the listing table carries a unique
// constraint on it.
func (d ListingDetail) DedupKey() string {
	return d.InternalID
}
