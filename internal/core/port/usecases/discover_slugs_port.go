package usecases_port

import (
	"context"

	"github.com/aravasio/open-remax/internal/core/domain"
)

type DiscoverSlugsPort interface {
	Execute(ctx context.Context) ([]domain.ListingSlug, error)
}
