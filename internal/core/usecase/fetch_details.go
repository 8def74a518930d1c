package usecase

import (
	"context"
	"sync"

	"github.com/aravasio/open-remax/internal/contextkeys"
	"github.com/aravasio/open-remax/internal/core/domain"
	"github.com/aravasio/open-remax/internal/core/port"
)

// FetchDetailsUseCase turns a slug set into parsed detail records with a
// concurrency ceiling and per-item failure isolation: one bad listing
// never aborts the batch.
type FetchDetailsUseCase struct {
	fetcherRepo port.RemaxFetcherPort
	chunkSize   int
}

func NewFetchDetailsUseCase(fetcher port.RemaxFetcherPort, chunkSize int) *FetchDetailsUseCase {
	if chunkSize <= 0 {
		chunkSize = 1
	}
	return &FetchDetailsUseCase{
		fetcherRepo: fetcher,
		chunkSize:   chunkSize,
	}
}

type detailResult struct {
	detail *domain.ListingDetail
	slug   domain.ListingSlug
	err    error
}

// Execute processes slugs in consecutive chunks of at most chunkSize,
// one goroutine per slug inside a chunk, draining each chunk before the
// next one starts. In-flight upstream requests therefore never exceed
// chunkSize. Per-item errors are logged with the offending slug and
// collected as skips; only context cancellation fails the whole call.
// Result order is completion order and carries no meaning.
func (uc *FetchDetailsUseCase) Execute(ctx context.Context, slugs []domain.ListingSlug) ([]domain.ListingDetail, []domain.SkippedListing, error) {
	baseLogger := contextkeys.LoggerFromContext(ctx)
	ucLogger := baseLogger.WithFields(port.Fields{"use_case": "FetchDetails"})

	details := make([]domain.ListingDetail, 0, len(slugs))
	var skipped []domain.SkippedListing
	tracker := NewProgressTracker(len(slugs))

	for _, chunk := range chunkSlugs(slugs, uc.chunkSize) {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		results := make(chan detailResult, len(chunk))
		var wg sync.WaitGroup

		for _, slug := range chunk {
			wg.Add(1)
			go func(s domain.ListingSlug) {
				defer wg.Done()
				detail, err := uc.fetcherRepo.FindBySlug(ctx, s)
				results <- detailResult{detail: detail, slug: s, err: err}
			}(slug)
		}

		wg.Wait()
		close(results)

		for res := range results {
			count, total := tracker.Increment()
			if res.err != nil {
				ucLogger.Warn("Skipping listing, detail fetch failed", port.Fields{
					"slug":   string(res.slug),
					"reason": res.err.Error(),
				})
				skipped = append(skipped, domain.SkippedListing{
					Slug:   res.slug,
					Reason: res.err.Error(),
				})
				continue
			}
			details = append(details, *res.detail)
			ucLogger.Debug("Fetched listing detail", port.Fields{
				"slug":     string(res.slug),
				"progress": progressLabel(count, total),
			})
		}
	}

	ucLogger.Info("Detail fetch finished", port.Fields{
		"fetched": len(details),
		"skipped": len(skipped),
		"total":   len(slugs),
	})
	return details, skipped, nil
}

// chunkSlugs splits slugs into consecutive chunks of at most size elements.
func chunkSlugs(slugs []domain.ListingSlug, size int) [][]domain.ListingSlug {
	if size <= 0 || len(slugs) == 0 {
		return nil
	}
	chunks := make([][]domain.ListingSlug, 0, (len(slugs)+size-1)/size)
	for start := 0; start < len(slugs); start += size {
		end := start + size
		if end > len(slugs) {
			end = len(slugs)
		}
		chunks = append(chunks, slugs[start:end])
	}
	return chunks
}
