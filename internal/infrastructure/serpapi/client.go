// Package serpapi implements the part price lookup against the SerpApi
// Google Shopping endpoint.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/yourusername/pc-advisor-bot/internal/domain/constants"
	"github.com/yourusername/pc-advisor-bot/internal/domain/entity"
	"github.com/yourusername/pc-advisor-bot/internal/domain/repository"
)

type client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
}

// NewClient creates the production price lookup client.
func NewClient(apiKey string) repository.PriceRepository {
	return NewClientWithBaseURL(apiKey, constants.SerpAPIBaseURL)
}

// NewClientWithBaseURL allows tests to point the client at a fake endpoint.
func NewClientWithBaseURL(apiKey, baseURL string) repository.PriceRepository {
	return &client{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: constants.LookupTimeout * time.Second},
	}
}

type shoppingResponse struct {
	ShoppingResults []struct {
		Title     string `json:"title"`
		Price     string `json:"price"`
		Link      string `json:"link"`
		Thumbnail string `json:"thumbnail"`
	} `json:"shopping_results"`
}

// Lookup searches Amazon listings for a part and returns the first shopping
// result. An empty result set is not an error: it yields the Not Found
// placeholder so the caller can keep assembling the report.
func (c *client) Lookup(ctx context.Context, partName string) (entity.PartListing, error) {
	q := url.Values{}
	q.Set("engine", "google")
	q.Set("q", "amazon.com "+partName)
	q.Set("tbm", "shop")
	q.Set("num", "1")
	q.Set("api_key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return entity.NotFoundListing(partName), fmt.Errorf("failed to build lookup request: %w", err)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return entity.NotFoundListing(partName), fmt.Errorf("price lookup request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return entity.NotFoundListing(partName), fmt.Errorf("price lookup returned status %d", resp.StatusCode)
	}

	var payload shoppingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return entity.NotFoundListing(partName), fmt.Errorf("failed to decode lookup response: %w", err)
	}

	if len(payload.ShoppingResults) == 0 {
		return entity.NotFoundListing(partName), nil
	}

	product := payload.ShoppingResults[0]
	listing := entity.PartListing{
		Name:  product.Title,
		Price: product.Price,
		Link:  product.Link,
		Image: product.Thumbnail,
	}
	if listing.Name == "" {
		listing.Name = partName
	}
	if listing.Price == "" {
		listing.Price = "N/A"
	}
	if listing.Link == "" {
		listing.Link = entity.LinkNotFound
	}
	return listing, nil
}
