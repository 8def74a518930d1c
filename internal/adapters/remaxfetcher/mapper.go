package remaxfetcher

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/aravasio/open-remax/internal/contracts"
	"github.com/aravasio/open-remax/internal/core/domain"
)

const (
	listingDetailPayload        = "ListingDetailPayload"
	listingDetailPayloadVersion = "1.0.0"
)

// apiQueryResponse is the envelope of GET /listings/findAll. The errors
// array may be non-null next to a 200-style payload.
type apiQueryResponse struct {
	Data struct {
		Data       []apiSlugItem `json:"data"`
		Page       int           `json:"page"`
		TotalPages int           `json:"totalPages"`
		TotalItems int           `json:"totalItems"`
	} `json:"data"`
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Errors  []string `json:"errors"`
}

type apiSlugItem struct {
	Slug string `json:"slug"`
}

// apiDetailResponse is the envelope of GET /listings/findBySlug/{slug}.
// Data stays raw so an absent payload is distinguishable from a bad one.
type apiDetailResponse struct {
	Data    json.RawMessage `json:"data"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
}

type apiLabeledValue struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

type apiLocation struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type apiPhoto struct {
	Value    string `json:"value"`
	Position int    `json:"position"`
}

type apiListingDetail struct {
	ID             string `json:"id"`
	InternalID     string `json:"internalId"`
	Title          string `json:"title"`
	Slug           string `json:"slug"`
	Description    string `json:"description"`
	DisplayAddress string `json:"displayAddress"`

	Location apiLocation `json:"location"`

	TotalRooms    int `json:"totalRooms"`
	Bedrooms      int `json:"bedrooms"`
	Bathrooms     int `json:"bathrooms"`
	Toilets       int `json:"toilets"`
	Floors        int `json:"floors"`
	ParkingSpaces int `json:"parkingSpaces"`

	Pozo               bool `json:"pozo"`
	ProfessionalUse    bool `json:"professionalUse"`
	CommercialUse      bool `json:"commercialUse"`
	InPrivateCommunity bool `json:"inPrivateCommunity"`
	ReducedMovility    bool `json:"reducedMovility"`
	Financing          bool `json:"financing"`
	AptCredit          bool `json:"aptCredit"`

	Price            *float64         `json:"price"`
	Currency         apiLabeledValue  `json:"currency"`
	ExpensesPrice    *float64         `json:"expensesPrice"`
	ExpensesCurrency *apiLabeledValue `json:"expensesCurrency"`
	PriceExposure    bool             `json:"priceExposure"`
	FeeQuotes        float64          `json:"feeQuotes"`

	DimensionLand        float64 `json:"dimensionLand"`
	DimensionTotalBuilt  float64 `json:"dimensionTotalBuilt"`
	DimensionCovered     float64 `json:"dimensionCovered"`
	DimensionSemicovered float64 `json:"dimensionSemicovered"`
	DimensionUncovered   float64 `json:"dimensionUncovered"`

	YearBuilt *int   `json:"yearBuilt"`
	Quotes    int    `json:"quotes"`
	Video     string `json:"video"`

	Conditions []apiLabeledValue `json:"conditions"`
	Features   []apiLabeledValue `json:"features"`
	Photos     []apiPhoto        `json:"photos"`

	Type          apiLabeledValue `json:"type"`
	Operation     apiLabeledValue `json:"operation"`
	ListingStatus apiLabeledValue `json:"listingStatus"`
	// upstream misspells this key
	Opportunity apiLabeledValue `json:"oportunity"`
}

// toCatalogPage decodes a findAll response body into a domain page.
func toCatalogPage(body []byte) (domain.CatalogPage, error) {
	var resp apiQueryResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.CatalogPage{}, fmt.Errorf("%w: findAll response: %v", domain.ErrParsingFailed, err)
	}

	slugs := make([]domain.ListingSlug, 0, len(resp.Data.Data))
	for _, item := range resp.Data.Data {
		slugs = append(slugs, domain.ListingSlug(item.Slug))
	}

	return domain.CatalogPage{
		Slugs:      slugs,
		Page:       resp.Data.Page,
		TotalPages: resp.Data.TotalPages,
		TotalItems: resp.Data.TotalItems,
	}, nil
}

// toListingDetail decodes a findBySlug response body into a domain
// detail record. An absent data payload maps to ErrElementHasNoData; a
// payload that fails schema validation or decoding maps to
// ErrParsingFailed with the upstream message as context.
func toListingDetail(body []byte) (*domain.ListingDetail, error) {
	var resp apiDetailResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: findBySlug response: %v", domain.ErrParsingFailed, err)
	}

	if len(resp.Data) == 0 || bytes.Equal(resp.Data, []byte("null")) {
		return nil, fmt.Errorf("%w: upstream message %q", domain.ErrElementHasNoData, resp.Message)
	}

	if err := contracts.ValidatePayload(listingDetailPayload, listingDetailPayloadVersion, resp.Data); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrParsingFailed, err)
	}

	var dto apiListingDetail
	if err := json.Unmarshal(resp.Data, &dto); err != nil {
		return nil, fmt.Errorf("%w: listing detail payload: %v", domain.ErrParsingFailed, err)
	}

	return &domain.ListingDetail{
		ID:             dto.ID,
		InternalID:     dto.InternalID,
		Title:          dto.Title,
		Slug:           dto.Slug,
		Description:    dto.Description,
		DisplayAddress: dto.DisplayAddress,

		Location: domain.Location{
			Type:        dto.Location.Type,
			Coordinates: dto.Location.Coordinates,
		},

		TotalRooms:    dto.TotalRooms,
		Bedrooms:      dto.Bedrooms,
		Bathrooms:     dto.Bathrooms,
		Toilets:       dto.Toilets,
		Floors:        dto.Floors,
		ParkingSpaces: dto.ParkingSpaces,

		Pozo:               dto.Pozo,
		ProfessionalUse:    dto.ProfessionalUse,
		CommercialUse:      dto.CommercialUse,
		InPrivateCommunity: dto.InPrivateCommunity,
		ReducedMobility:    dto.ReducedMovility,
		Financing:          dto.Financing,
		AptCredit:          dto.AptCredit,

		Price:            dto.Price,
		Currency:         domain.Currency{ID: dto.Currency.ID, Value: dto.Currency.Value},
		ExpensesPrice:    dto.ExpensesPrice,
		ExpensesCurrency: toCurrencyPtr(dto.ExpensesCurrency),
		PriceExposure:    dto.PriceExposure,
		FeeQuotes:        dto.FeeQuotes,

		DimensionLand:        dto.DimensionLand,
		DimensionTotalBuilt:  dto.DimensionTotalBuilt,
		DimensionCovered:     dto.DimensionCovered,
		DimensionSemicovered: dto.DimensionSemicovered,
		DimensionUncovered:   dto.DimensionUncovered,

		YearBuilt: dto.YearBuilt,
		Quotes:    dto.Quotes,
		Video:     dto.Video,

		Type:          toLabeledValue(dto.Type),
		Operation:     toLabeledValue(dto.Operation),
		ListingStatus: toLabeledValue(dto.ListingStatus),
		Opportunity:   toLabeledValue(dto.Opportunity),

		Conditions: toLabeledValues(dto.Conditions),
		Features:   toLabeledValues(dto.Features),
		Photos:     toPhotos(dto.Photos),
	}, nil
}

func toLabeledValue(v apiLabeledValue) domain.LabeledValue {
	return domain.LabeledValue{ID: v.ID, Value: v.Value}
}

func toLabeledValues(vs []apiLabeledValue) []domain.LabeledValue {
	if vs == nil {
		return nil
	}
	out := make([]domain.LabeledValue, 0, len(vs))
	for _, v := range vs {
		out = append(out, toLabeledValue(v))
	}
	return out
}

func toCurrencyPtr(v *apiLabeledValue) *domain.Currency {
	if v == nil {
		return nil
	}
	return &domain.Currency{ID: v.ID, Value: v.Value}
}

func toPhotos(ps []apiPhoto) []domain.Photo {
	if ps == nil {
		return nil
	}
	out := make([]domain.Photo, 0, len(ps))
	for _, p := range ps {
		out = append(out, domain.Photo{Value: p.Value, Position: p.Position})
	}
	return out
}
