package port

import (
	"context"

	"github.com/aravasio/open-remax/internal/core/domain"
)

// RemaxFetcherPort groups every operation against the Remax catalog API.
type RemaxFetcherPort interface {
	// FindAll requests one page of the configured findAll query and
	// returns its slugs plus the pagination metadata.
	FindAll(ctx context.Context, page int) (domain.CatalogPage, error)

	// FindBySlug retrieves and parses the full detail record for one
	// listing. Returns domain.ErrElementHasNoData (wrapped) when the
	// upstream answers without a payload.
	FindBySlug(ctx context.Context, slug domain.ListingSlug) (*domain.ListingDetail, error)
}
