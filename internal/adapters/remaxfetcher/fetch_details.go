package remaxfetcher

import (
	"context"
	"fmt"

	"github.com/aravasio/open-remax/internal/constants"
	"github.com/aravasio/open-remax/internal/contextkeys"
	"github.com/aravasio/open-remax/internal/core/domain"
	"github.com/aravasio/open-remax/internal/core/port"

	"github.com/gocolly/colly/v2"
)

// FindBySlug retrieves and parses the full detail record of one listing.
func (a *RemaxFetcherAdapter) FindBySlug(ctx context.Context, slug domain.ListingSlug) (*domain.ListingDetail, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	detailLogger := logger.WithFields(port.Fields{"component": "RemaxFetcherAdapter(FindBySlug)"})

	collector := a.collector.Clone()

	var detail *domain.ListingDetail
	var criticalError error

	collector.OnRequest(func(r *colly.Request) {
		detailLogger.Debug("Making request to fetch listing detail", port.Fields{
			"url":  r.URL.String(),
			"slug": string(slug),
		})
	})

	collector.OnResponse(func(r *colly.Response) {
		if criticalError != nil || detail != nil {
			return
		}

		d, err := toListingDetail(r.Body)
		if err != nil {
			criticalError = fmt.Errorf("RemaxFetcherAdapter: slug %s: %w", slug, err)
			return
		}
		detail = d
	})

	collector.OnError(func(r *colly.Response, err error) {
		detailLogger.Error("Failed to fetch listing detail", err, port.Fields{
			"slug":   string(slug),
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
		})
		criticalError = fmt.Errorf("RemaxFetcherAdapter: request for slug %s failed with status %d: %w",
			slug, r.StatusCode, err)
	})

	apiURL := fmt.Sprintf("%s%s/%s", a.baseURL, constants.FindBySlugPath, slug)
	if visitErr := collector.Visit(apiURL); visitErr != nil {
		return nil, fmt.Errorf("RemaxFetcherAdapter: failed to visit %s: %w", apiURL, visitErr)
	}
	collector.Wait()

	if criticalError != nil {
		return nil, criticalError
	}
	return detail, nil
}
