package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/storefront/internal/catalog/domain"
)

// maxBodyBytes bounds how much of a backend response is read
const maxBodyBytes = 4 << 20

// LiveProductRepository is a thin fetch wrapper over an external catalog API.
// Paths are appended verbatim to the base, so the base may carry its own prefix.
type LiveProductRepository struct {
	apiBase string
	client  *http.Client
}

// NewLiveProductRepository creates a repository for apiBase, e.g. "https://api.example.com/v1"
func NewLiveProductRepository(apiBase string, client *http.Client) *LiveProductRepository {
	if client == nil {
		client = &http.Client{
			Timeout:   10 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &LiveProductRepository{apiBase: apiBase, client: client}
}

func (r *LiveProductRepository) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	params := url.Values{}
	if filter.Category != "" {
		params.Set("category", filter.Category)
	}
	if filter.Search != "" {
		params.Set("search", filter.Search)
	}

	path := "/products"
	if encoded := params.Encode(); encoded != "" {
		path += "?" + encoded
	}

	body, err := r.get(ctx, path)
	if err != nil {
		return nil, err
	}

	resp, err := domain.DecodeProductList(body)
	if err != nil {
		return nil, err
	}
	return resp.Products, nil
}

func (r *LiveProductRepository) FindProduct(ctx context.Context, id domain.ID) (*domain.Product, error) {
	body, err := r.get(ctx, "/products/"+url.PathEscape(id.String()))
	if err != nil {
		return nil, err
	}

	product, err := domain.DecodeProduct(body)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *LiveProductRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	body, err := r.get(ctx, "/categories")
	if err != nil {
		return nil, err
	}

	resp, err := domain.DecodeCategoryList(body)
	if err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (r *LiveProductRepository) get(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.apiBase+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog backend request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog backend response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrProductNotFound
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("catalog backend returned %d for %s", resp.StatusCode, path)
	}
	return body, nil
}
