package usecase

import (
	"context"
	"fmt"

	"github.com/aravasio/open-remax/internal/contextkeys"
	"github.com/aravasio/open-remax/internal/core/domain"
	"github.com/aravasio/open-remax/internal/core/port"
)

// DiscoverSlugsUseCase walks the findAll pagination and produces the
// complete slug set for the configured filters.
type DiscoverSlugsUseCase struct {
	fetcherRepo port.RemaxFetcherPort
}

func NewDiscoverSlugsUseCase(fetcher port.RemaxFetcherPort) *DiscoverSlugsUseCase {
	return &DiscoverSlugsUseCase{fetcherRepo: fetcher}
}

// Execute requests page 0, reads totalPages from the response and keeps
// requesting pages until the last index. A page failure aborts the whole
// discovery: without a complete set the result is not usable downstream.
func (uc *DiscoverSlugsUseCase) Execute(ctx context.Context) ([]domain.ListingSlug, error) {
	baseLogger := contextkeys.LoggerFromContext(ctx)
	ucLogger := baseLogger.WithFields(port.Fields{"use_case": "DiscoverSlugs"})

	var slugs []domain.ListingSlug

	for page := 0; ; page++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := uc.fetcherRepo.FindAll(ctx, page)
		if err != nil {
			ucLogger.Error("Failed to fetch catalog page", err, port.Fields{"page": page})
			return nil, fmt.Errorf("use case: fetching catalog page %d: %w", page, err)
		}

		slugs = append(slugs, resp.Slugs...)

		ucLogger.Debug("Fetched catalog page", port.Fields{
			"page":        resp.Page,
			"total_pages": resp.TotalPages,
			"slugs":       len(resp.Slugs),
		})

		// totalPages is authoritative; a totalPages of 0 terminates right
		// after page 0 with an empty, valid result.
		if page+1 >= resp.TotalPages {
			break
		}
	}

	ucLogger.Info("Slug discovery finished", port.Fields{"total_slugs": len(slugs)})
	return slugs, nil
}
