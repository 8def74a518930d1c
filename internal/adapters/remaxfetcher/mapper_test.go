package remaxfetcher

import (
	"errors"
	"testing"

	"github.com/aravasio/open-remax/internal/core/domain"
)

const detailBodyTemplate = `{
	"data": {
		"id": "f3a1",
		"internalId": "381041082-79",
		"title": "Departamento en venta",
		"slug": "departamento-en-venta-belgrano",
		"description": "Luminoso 3 ambientes",
		"displayAddress": "Av. Cabildo 2200",
		"location": {"type": "Point", "coordinates": [-58.45, -34.56]},
		"totalRooms": 3,
		"bedrooms": 2,
		"bathrooms": 1,
		"toilets": 1,
		"floors": 1,
		"parkingSpaces": 1,
		"pozo": false,
		"professionalUse": true,
		"commercialUse": false,
		"inPrivateCommunity": false,
		"reducedMovility": true,
		"financing": false,
		"aptCredit": true,
		"price": 185000,
		"currency": {"id": 1, "value": "USD"},
		"expensesPrice": 95000,
		"expensesCurrency": {"id": 2, "value": "ARS"},
		"priceExposure": true,
		"feeQuotes": 0,
		"dimensionLand": 0,
		"dimensionTotalBuilt": 82.5,
		"dimensionCovered": 75,
		"dimensionSemicovered": 7.5,
		"dimensionUncovered": 0,
		"yearBuilt": 2011,
		"quotes": 0,
		"video": "",
		"conditions": [{"id": 4, "value": "Apto profesional"}],
		"features": [{"id": 9, "value": "Balcón"}],
		"photos": [
			{"value": "photos/f3a1/01.jpg", "position": 1},
			{"value": "photos/f3a1/02.jpg", "position": 2}
		],
		"type": {"id": 2, "value": "Departamento"},
		"operation": {"id": 1, "value": "Venta"},
		"listingStatus": {"id": 1, "value": "Activa"},
		"oportunity": {"id": 0, "value": ""}
	},
	"code": 200,
	"message": "",
	"errors": null
}`

func TestToCatalogPage(t *testing.T) {
	body := []byte(`{
		"data": {
			"data": [{"slug": "casa-uno"}, {"slug": "casa-dos"}],
			"page": 1,
			"totalPages": 4,
			"totalItems": 3512
		},
		"code": 200
	}`)

	page, err := toCatalogPage(body)
	if err != nil {
		t.Fatalf("toCatalogPage() error = %v", err)
	}
	if page.Page != 1 || page.TotalPages != 4 || page.TotalItems != 3512 {
		t.Errorf("pagination = (%d, %d, %d), want (1, 4, 3512)", page.Page, page.TotalPages, page.TotalItems)
	}
	if len(page.Slugs) != 2 || page.Slugs[0] != "casa-uno" || page.Slugs[1] != "casa-dos" {
		t.Errorf("slugs = %v, want [casa-uno casa-dos]", page.Slugs)
	}
}

func TestToCatalogPageMalformedBody(t *testing.T) {
	_, err := toCatalogPage([]byte(`<html>gateway timeout</html>`))
	if !errors.Is(err, domain.ErrParsingFailed) {
		t.Fatalf("error = %v, want ErrParsingFailed", err)
	}
}

func TestToListingDetail(t *testing.T) {
	detail, err := toListingDetail([]byte(detailBodyTemplate))
	if err != nil {
		t.Fatalf("toListingDetail() error = %v", err)
	}

	if detail.InternalID != "381041082-79" {
		t.Errorf("InternalID = %q, want %q", detail.InternalID, "381041082-79")
	}
	if detail.Slug != "departamento-en-venta-belgrano" {
		t.Errorf("Slug = %q", detail.Slug)
	}
	if detail.Price == nil || *detail.Price != 185000 {
		t.Errorf("Price = %v, want 185000", detail.Price)
	}
	if detail.Currency.Value != "USD" {
		t.Errorf("Currency = %+v, want USD", detail.Currency)
	}
	if detail.ExpensesCurrency == nil || detail.ExpensesCurrency.Value != "ARS" {
		t.Errorf("ExpensesCurrency = %+v, want ARS", detail.ExpensesCurrency)
	}
	if detail.Location.Altitude() != -58.45 || detail.Location.Latitude() != -34.56 {
		t.Errorf("coordinates = (%v, %v)", detail.Location.Altitude(), detail.Location.Latitude())
	}
	if !detail.ReducedMobility {
		t.Error("ReducedMobility not mapped from reducedMovility")
	}
	if detail.Opportunity.ID != 0 {
		t.Errorf("Opportunity = %+v, want zero value entry", detail.Opportunity)
	}
	if detail.YearBuilt == nil || *detail.YearBuilt != 2011 {
		t.Errorf("YearBuilt = %v, want 2011", detail.YearBuilt)
	}
	if len(detail.Photos) != 2 || detail.Photos[1].Position != 2 {
		t.Errorf("Photos = %+v", detail.Photos)
	}
	if len(detail.Conditions) != 1 || detail.Conditions[0].Value != "Apto profesional" {
		t.Errorf("Conditions = %+v", detail.Conditions)
	}
}

func TestToListingDetailNullablePrice(t *testing.T) {
	body := []byte(`{
		"data": {
			"id": "a1", "internalId": "i-1", "slug": "terreno-sin-precio",
			"price": null, "yearBuilt": null,
			"currency": {"id": 1, "value": "USD"}
		},
		"code": 200
	}`)

	detail, err := toListingDetail(body)
	if err != nil {
		t.Fatalf("toListingDetail() error = %v", err)
	}
	if detail.Price != nil {
		t.Errorf("Price = %v, want nil for a null upstream price", *detail.Price)
	}
	if detail.YearBuilt != nil {
		t.Errorf("YearBuilt = %v, want nil", *detail.YearBuilt)
	}
	if detail.ExpensesCurrency != nil {
		t.Errorf("ExpensesCurrency = %+v, want nil when absent", detail.ExpensesCurrency)
	}
}

func TestToListingDetailAbsentData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"null data", `{"data": null, "code": 404, "message": "listing not found"}`},
		{"missing data", `{"code": 404, "message": "listing not found"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toListingDetail([]byte(tt.body))
			if !errors.Is(err, domain.ErrElementHasNoData) {
				t.Fatalf("error = %v, want ErrElementHasNoData", err)
			}
		})
	}
}

func TestToListingDetailRejectsInvalidPayload(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed envelope", `{"data": {`},
		{"missing required fields", `{"data": {"title": "sin identificadores"}, "code": 200}`},
		{"wrong field type", `{"data": {"id": 17, "internalId": "i-1", "slug": "s"}, "code": 200}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := toListingDetail([]byte(tt.body))
			if !errors.Is(err, domain.ErrParsingFailed) {
				t.Fatalf("error = %v, want ErrParsingFailed", err)
			}
		})
	}
}
