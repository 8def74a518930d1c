package postgres

import (
	"strings"

	"github.com/aravasio/open-remax/internal/core/domain"

	"github.com/mmcloughlin/geohash"
)

const geohashPrecision = 5

// locationGeohash derives a short geohash from the listing coordinates,
// good enough to group listings by neighborhood-sized cells.
func locationGeohash(loc domain.Location) string {
	if len(loc.Coordinates) < 2 {
		return ""
	}
	return geohash.EncodeWithPrecision(loc.Latitude(), loc.Altitude(), geohashPrecision)
}

func joinLabeledValues(values []domain.LabeledValue) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, v.Value)
	}
	return strings.Join(parts, ",")
}

func joinPhotos(photos []domain.Photo) string {
	parts := make([]string, 0, len(photos))
	for _, p := range photos {
		parts = append(parts, p.Value)
	}
	return strings.Join(parts, ",")
}

func currencyValue(c *domain.Currency) interface{} {
	if c == nil {
		return nil
	}
	return c.Value
}

// listingRow flattens a listing into the insert argument list, in the
// column order of insertListingSQL.
func listingRow(d domain.ListingDetail) []interface{} {
	return []interface{}{
		d.ID,
		d.InternalID,
		d.Title,
		d.Slug,
		d.Description,
		d.DisplayAddress,
		d.Location.Altitude(),
		d.Location.Latitude(),
		locationGeohash(d.Location),
		d.TotalRooms,
		d.Bedrooms,
		d.Bathrooms,
		d.Toilets,
		d.Floors,
		d.Pozo,
		d.ParkingSpaces,
		d.ProfessionalUse,
		d.CommercialUse,
		d.InPrivateCommunity,
		d.ReducedMobility,
		d.Financing,
		d.AptCredit,
		d.Price,
		d.Currency.Value,
		d.ExpensesPrice,
		currencyValue(d.ExpensesCurrency),
		d.PriceExposure,
		d.FeeQuotes,
		d.DimensionLand,
		d.DimensionTotalBuilt,
		d.DimensionCovered,
		d.DimensionSemicovered,
		d.DimensionUncovered,
		d.YearBuilt,
		d.Quotes,
		d.Video,
		joinLabeledValues(d.Conditions),
		d.Type.Value,
		d.Operation.Value,
		d.ListingStatus.Value,
		joinPhotos(d.Photos),
		joinLabeledValues(d.Features),
		d.Opportunity.Value,
	}
}
