package remaxfetcher

import (
	"fmt"
	"net/url"
	"time"

	"github.com/aravasio/open-remax/internal/core/domain"

	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

const requestTimeout = 30 * time.Second

// RemaxFetcherAdapter owns all interaction with the Remax catalog API.
type RemaxFetcherAdapter struct {
	// parent collector; request-level limits are shared by all clones
	collector *colly.Collector
	baseURL   string
	filters   domain.SearchFilters
}

// NewRemaxFetcherAdapter builds the adapter. A base URL that does not
// parse is a configuration error and fails construction.
func NewRemaxFetcherAdapter(baseURL string, filters domain.SearchFilters, maxParallel int) (*RemaxFetcherAdapter, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("RemaxFetcherAdapter: %w: %q", domain.ErrInvalidURL, baseURL)
	}

	if maxParallel <= 0 {
		maxParallel = 1
	}

	c := colly.NewCollector(colly.AllowedDomains(parsed.Hostname()), colly.AllowURLRevisit())
	c.SetRequestTimeout(requestTimeout)

	// Inherited by every clone.
	err = c.Limit(&colly.LimitRule{
		DomainGlob:  "*",
		Parallelism: maxParallel,
	})
	if err != nil {
		return nil, fmt.Errorf("RemaxFetcherAdapter: failed to set limit rule: %w", err)
	}

	extensions.RandomUserAgent(c)
	extensions.Referer(c)

	return &RemaxFetcherAdapter{
		collector: c,
		baseURL:   baseURL,
		filters:   filters,
	}, nil
}
