package remaxfetcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aravasio/open-remax/internal/core/domain"
)

func testFilters() domain.SearchFilters {
	return domain.SearchFilters{
		OperationID:   "1",
		TypeIDs:       "1,2,3",
		CurrencyID:    "1",
		MinPrice:      1,
		MaxPrice:      999999999,
		Neighborhoods: []string{"25006@Belgrano", "25054@Villa%20Urquiza"},
		SortBy:        "-priceUsd",
		PageSize:      500,
	}
}

func TestNewRemaxFetcherAdapterRejectsBadURL(t *testing.T) {
	for _, raw := range []string{"", "::not-a-url", "/relative/only"} {
		if _, err := NewRemaxFetcherAdapter(raw, testFilters(), 4); err == nil {
			t.Errorf("NewRemaxFetcherAdapter(%q) accepted an invalid base URL", raw)
		}
	}
}

func TestBuildFindAllURL(t *testing.T) {
	adapter, err := NewRemaxFetcherAdapter("https://host.example/api", testFilters(), 4)
	if err != nil {
		t.Fatalf("NewRemaxFetcherAdapter() error = %v", err)
	}

	got := adapter.buildFindAllURL(3)

	wantParts := []string{
		"https://host.example/api/listings/findAll?",
		"page=3",
		"pageSize=500",
		"sort=-priceUsd",
		"in:operationId=1",
		"in:typeId=1,2,3",
		"pricein=1:1:999999999",
		"locations=in::::25006@Belgrano,25054@Villa%20Urquiza:::",
	}
	for _, part := range wantParts {
		if !strings.Contains(got, part) {
			t.Errorf("buildFindAllURL(3) = %q, missing %q", got, part)
		}
	}
}

func TestBuildFindAllURLWithoutNeighborhoods(t *testing.T) {
	filters := testFilters()
	filters.Neighborhoods = nil
	adapter, err := NewRemaxFetcherAdapter("https://host.example/api", filters, 4)
	if err != nil {
		t.Fatalf("NewRemaxFetcherAdapter() error = %v", err)
	}

	if got := adapter.buildFindAllURL(0); strings.Contains(got, "locations=") {
		t.Errorf("buildFindAllURL(0) = %q, should carry no locations filter", got)
	}
}

func TestFindAllAgainstServer(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		fmt.Fprint(w, `{
			"data": {
				"data": [{"slug": "casa-uno"}, {"slug": "casa-dos"}],
				"page": 2,
				"totalPages": 7,
				"totalItems": 6500
			},
			"code": 200
		}`)
	}))
	defer server.Close()

	adapter, err := NewRemaxFetcherAdapter(server.URL, testFilters(), 4)
	if err != nil {
		t.Fatalf("NewRemaxFetcherAdapter() error = %v", err)
	}

	page, err := adapter.FindAll(context.Background(), 2)
	if err != nil {
		t.Fatalf("FindAll() error = %v", err)
	}

	if gotPath != "/listings/findAll" {
		t.Errorf("request path = %q, want /listings/findAll", gotPath)
	}
	if !strings.Contains(gotQuery, "page=2") {
		t.Errorf("request query = %q, missing page=2", gotQuery)
	}
	if page.TotalPages != 7 || len(page.Slugs) != 2 {
		t.Errorf("page = %+v, want 2 slugs across 7 pages", page)
	}
}

func TestFindAllServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
	}))
	defer server.Close()

	adapter, err := NewRemaxFetcherAdapter(server.URL, testFilters(), 4)
	if err != nil {
		t.Fatalf("NewRemaxFetcherAdapter() error = %v", err)
	}

	if _, err := adapter.FindAll(context.Background(), 0); err == nil {
		t.Fatal("FindAll() swallowed an upstream 502")
	}
}

func TestFindBySlugAgainstServer(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		fmt.Fprint(w, detailBodyTemplate)
	}))
	defer server.Close()

	adapter, err := NewRemaxFetcherAdapter(server.URL, testFilters(), 4)
	if err != nil {
		t.Fatalf("NewRemaxFetcherAdapter() error = %v", err)
	}

	detail, err := adapter.FindBySlug(context.Background(), "departamento-en-venta-belgrano")
	if err != nil {
		t.Fatalf("FindBySlug() error = %v", err)
	}
	if gotPath != "/listings/findBySlug/departamento-en-venta-belgrano" {
		t.Errorf("request path = %q", gotPath)
	}
	if detail.InternalID != "381041082-79" {
		t.Errorf("InternalID = %q, want 381041082-79", detail.InternalID)
	}
}

func TestFindBySlugNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"data": null, "code": 404, "message": "listing not found"}`)
	}))
	defer server.Close()

	adapter, err := NewRemaxFetcherAdapter(server.URL, testFilters(), 4)
	if err != nil {
		t.Fatalf("NewRemaxFetcherAdapter() error = %v", err)
	}

	_, err = adapter.FindBySlug(context.Background(), "no-such-listing")
	if !errors.Is(err, domain.ErrElementHasNoData) {
		t.Fatalf("error = %v, want ErrElementHasNoData", err)
	}
}
