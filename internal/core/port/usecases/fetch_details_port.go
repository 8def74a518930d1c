package usecases_port

import (
	"context"

	"github.com/aravasio/open-remax/internal/core/domain"
)

type FetchDetailsPort interface {
	Execute(ctx context.Context, slugs []domain.ListingSlug) ([]domain.ListingDetail, []domain.SkippedListing, error)
}
