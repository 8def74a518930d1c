package remaxfetcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/aravasio/open-remax/internal/constants"
	"github.com/aravasio/open-remax/internal/contextkeys"
	"github.com/aravasio/open-remax/internal/core/domain"
	"github.com/aravasio/open-remax/internal/core/port"

	"github.com/gocolly/colly/v2"
)

// buildFindAllURL assembles the findAll query for one page. The query is
// built by hand: the API expects literal "in:" prefixed keys and
// pre-encoded neighborhood labels that url.Values would re-encode.
func (a *RemaxFetcherAdapter) buildFindAllURL(page int) string {
	params := []string{
		fmt.Sprintf("page=%d", page),
		fmt.Sprintf("pageSize=%d", a.filters.PageSize),
		fmt.Sprintf("sort=%s", a.filters.SortBy),
		fmt.Sprintf("in:operationId=%s", a.filters.OperationID),
		fmt.Sprintf("in:typeId=%s", a.filters.TypeIDs),
		fmt.Sprintf("pricein=%s:%d:%d", a.filters.CurrencyID, a.filters.MinPrice, a.filters.MaxPrice),
	}
	if len(a.filters.Neighborhoods) > 0 {
		params = append(params,
			fmt.Sprintf("locations=in::::%s:::", strings.Join(a.filters.Neighborhoods, ",")))
	}

	return a.baseURL + constants.FindAllPath + "?" + strings.Join(params, "&")
}

// FindAll requests one catalog page and returns its slugs plus the
// pagination metadata the caller needs to keep walking.
func (a *RemaxFetcherAdapter) FindAll(ctx context.Context, page int) (domain.CatalogPage, error) {
	logger := contextkeys.LoggerFromContext(ctx)
	findAllLogger := logger.WithFields(port.Fields{"component": "RemaxFetcherAdapter(FindAll)"})

	// one-shot clone: inherits limits, owns its callbacks
	collector := a.collector.Clone()

	var result domain.CatalogPage
	var responseErr error

	targetURL := a.buildFindAllURL(page)

	collector.OnRequest(func(r *colly.Request) {
		findAllLogger.Debug("Making request to fetch catalog page", port.Fields{
			"url":  r.URL.String(),
			"page": page,
		})
	})

	collector.OnResponse(func(r *colly.Response) {
		pageData, err := toCatalogPage(r.Body)
		if err != nil {
			responseErr = fmt.Errorf("RemaxFetcherAdapter: page %d: %w", page, err)
			return
		}
		result = pageData
	})

	collector.OnError(func(r *colly.Response, err error) {
		findAllLogger.Error("Failed to fetch catalog page", err, port.Fields{
			"url":    r.Request.URL.String(),
			"status": r.StatusCode,
		})
		responseErr = fmt.Errorf("RemaxFetcherAdapter: request to %s failed with status %d: %w",
			r.Request.URL, r.StatusCode, err)
	})

	if visitErr := collector.Visit(targetURL); visitErr != nil {
		findAllLogger.Error("Failed to initiate catalog page visit", visitErr, port.Fields{"url": targetURL})
		return domain.CatalogPage{}, fmt.Errorf("RemaxFetcherAdapter: failed to visit %s: %w", targetURL, visitErr)
	}
	collector.Wait()

	if responseErr != nil {
		return domain.CatalogPage{}, responseErr
	}

	findAllLogger.Debug("Fetched catalog page", port.Fields{
		"page":        result.Page,
		"total_pages": result.TotalPages,
		"slugs":       len(result.Slugs),
	})
	return result, nil
}
