package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/mockdata"
)

func TestMockProductRepository(t *testing.T) {
	repo := NewMockProductRepository()
	ctx := context.Background()

	all, err := repo.ListProducts(ctx, domain.ProductFilter{})
	require.NoError(t, err)
	assert.NotEmpty(t, all)

	skincare, err := repo.ListProducts(ctx, domain.ProductFilter{Category: "skincare"})
	require.NoError(t, err)
	for _, p := range skincare {
		assert.Equal(t, "skincare", p.Category)
	}

	solgar, err := repo.ListProducts(ctx, domain.ProductFilter{Search: "SOLGAR"})
	require.NoError(t, err)
	assert.Len(t, solgar, 2)

	p, err := repo.FindProduct(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, "Solgar", p.Brand)

	_, err = repo.FindProduct(ctx, "999")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 8)
}

func TestMockRepositoryReturnsCopies(t *testing.T) {
	repo := NewMockProductRepository()
	ctx := context.Background()

	p, err := repo.FindProduct(ctx, "1")
	require.NoError(t, err)
	p.Name = "changed"

	again, err := repo.FindProduct(ctx, "1")
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Name)
}

func newLiveBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/v1/products", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "skincare", r.URL.Query().Get("category"))
		assert.Equal(t, "cera", r.URL.Query().Get("search"))
		w.Write([]byte(`{"products":[{"id":2,"brand":"CeraVe","name":"Cleanser","price":12.5,"category":"skincare"}],"total":1}`))
	})
	mux.HandleFunc("/v1/products/2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"2","brand":"CeraVe","name":"Cleanser","price":12.5}`))
	})
	mux.HandleFunc("/v1/products/bad", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"bad"}`))
	})
	mux.HandleFunc("/v1/products/404", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	mux.HandleFunc("/v1/categories", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"categories":[{"id":1,"name":"Skincare","slug":"skincare"}]}`))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestLiveProductRepository(t *testing.T) {
	server := newLiveBackend(t)
	repo := NewLiveProductRepository(server.URL+"/v1", server.Client())
	ctx := context.Background()

	products, err := repo.ListProducts(ctx, domain.ProductFilter{Category: "skincare", Search: "cera"})
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, domain.ID("2"), products[0].ID)

	p, err := repo.FindProduct(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "CeraVe", p.Brand)

	_, err = repo.FindProduct(ctx, "404")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, err = repo.FindProduct(ctx, "bad")
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)

	categories, err := repo.ListCategories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestTracingRepositoryPassesThrough(t *testing.T) {
	repo := NewTracingProductRepository(NewMockProductRepository(), "mock")
	ctx := context.Background()

	products, err := repo.ListProducts(ctx, domain.ProductFilter{Category: "vitamins"})
	require.NoError(t, err)
	assert.Len(t, products, 2)

	_, err = repo.FindProduct(ctx, "nope")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
}

func TestSeedPositionsFollowInsertionOrder(t *testing.T) {
	products := withProductPositions(mockdata.Products())
	require.GreaterOrEqual(t, len(products), 10)
	for i, p := range products {
		assert.Equal(t, i, p.Position)
	}
	// "10" sorts before "2" as text; position keeps mock order
	assert.Equal(t, domain.ID("2"), products[1].ID)
	assert.Equal(t, domain.ID("10"), products[9].ID)

	categories := withCategoryPositions(mockdata.Categories())
	for i, c := range categories {
		assert.Equal(t, i, c.Position)
	}

	assert.Zero(t, mockdata.Products()[1].Position)
}
