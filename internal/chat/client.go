package chat

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/hyperjump/hondana/internal/models"
)

// CatalogClient queries this service's own category endpoint over HTTP.
// The lookup stays an outbound call rather than an in-process invocation so
// chat answers go through exactly the same validation and formatting as
// direct category requests. A circuit breaker keeps a wedged endpoint from
// piling up chat requests.
type CatalogClient struct {
	baseURL string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker[[]models.Item]
}

// NewCatalogClient creates a client for the category endpoint at baseURL.
func NewCatalogClient(baseURL string, timeout time.Duration) *CatalogClient {
	cb := gobreaker.NewCircuitBreaker[[]models.Item](gobreaker.Settings{
		Name:        "catalog-self",
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.Requests >= 5 && counts.TotalFailures*2 > counts.Requests
		},
	})
	return &CatalogClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		breaker: cb,
	}
}

// CategoryItems fetches every item in the named category.
func (c *CatalogClient) CategoryItems(ctx context.Context, category string) ([]models.Item, error) {
	return c.breaker.Execute(func() ([]models.Item, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/category/"+url.PathEscape(category), nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("category request: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("category endpoint returned %d", resp.StatusCode)
		}
		var items []models.Item
		if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
			return nil, fmt.Errorf("decode category response: %w", err)
		}
		return items, nil
	})
}
