package constants

// Remax API endpoints.
const (
	DefaultBaseURL   = "https://api-ar.redremax.com/remaxweb-ar/api"
	FindAllPath      = "/listings/findAll"
	FindBySlugPath   = "/listings/findBySlug"
)

// Operations
const (
	OperationBuy  = "1"
	OperationRent = "2"
)

// AllPropertyTypes covers every type id the catalog distinguishes
// (house, apartment, land, office, ...).
const AllPropertyTypes = "1,2,3,4,5,6,7,8,9,10,11,12"

// Price filter. CurrencyUSD is the currency id the "pricein" filter keys on.
const (
	CurrencyUSD     = "1"
	DefaultMinPrice = 1
	DefaultMaxPrice = 999999999
)

const SortByPriceDesc = "-priceUsd"

const DefaultPageSize = 1000

// MaxConcurrentFetches bounds in-flight detail requests per chunk.
const MaxConcurrentFetches = 100

// Neighborhoods of interest, as "id@Label" pairs the locations filter expects.
const (
	Belgrano     = "25006@Belgrano"
	Coghlan      = "25012@Coghlan"
	Colegiales   = "25013@Colegiales"
	ParqueChas   = "25028@Parque%20Chas"
	VillaUrquiza = "25054@Villa%20Urquiza"
)

// DefaultNeighborhoods is the tracked neighborhood set. Empty slice means
// no location filter at all.
var DefaultNeighborhoods = []string{
	Belgrano,
	Coghlan,
	Colegiales,
	ParqueChas,
	VillaUrquiza,
}
