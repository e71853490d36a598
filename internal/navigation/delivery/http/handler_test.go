package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/brand"
	"github.com/tair/storefront/internal/navigation"
	"github.com/tair/storefront/pkg/metrics"
)

type navBody struct {
	Success bool `json:"success"`
	Data    struct {
		Locale string                    `json:"locale"`
		Items  []navigation.ResolvedItem `json:"items"`
	} `json:"data"`
}

func get(t *testing.T, active, url string) (int, navBody) {
	t.Helper()

	router := mux.NewRouter()
	NewNavigationHandler(
		brand.NewRegistry(brand.NewFS("")),
		active,
		metrics.NewHTTPMetrics(prometheus.NewRegistry(), "test_navigation"),
	).RegisterRoutes(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

	var body navBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func activeRoutes(items []navigation.ResolvedItem) []string {
	var routes []string
	for _, item := range items {
		if item.Active {
			routes = append(routes, item.ResolvedRoute)
		}
	}
	return routes
}

func TestNavigationDefaultLocale(t *testing.T) {
	code, body := get(t, "pharmaplus", "/navigation?path=/shop")
	require.Equal(t, http.StatusOK, code)

	assert.Equal(t, "en", body.Data.Locale)
	require.Len(t, body.Data.Items, 5)
	assert.Equal(t, "Shop", body.Data.Items[1].Label)
	assert.Equal(t, []string{"/shop"}, activeRoutes(body.Data.Items))
}

func TestNavigationNestedPathIsNotActive(t *testing.T) {
	_, body := get(t, "pharmaplus", "/navigation?path=/shop/item/1")
	assert.Empty(t, activeRoutes(body.Data.Items))
}

func TestNavigationGreekLocale(t *testing.T) {
	_, body := get(t, "pharmaplus", "/navigation?path=/el&locale=el")

	assert.Equal(t, "Αρχική", body.Data.Items[0].Label)
	assert.Equal(t, "/el", body.Data.Items[0].ResolvedRoute)
	assert.Equal(t, "/el/cart", body.Data.Items[2].ResolvedRoute)
	assert.Equal(t, []string{"/el"}, activeRoutes(body.Data.Items))
}

func TestNavigationLiteralLabelsAndAccountMenu(t *testing.T) {
	_, body := get(t, "wecare", "/navigation?path=/favorites&locale=el")
	assert.Equal(t, "Favorites", body.Data.Items[3].Label)
	assert.Equal(t, []string{"/el/favorites"}, []string{body.Data.Items[3].ResolvedRoute})
	assert.Empty(t, activeRoutes(body.Data.Items))

	_, body = get(t, "wecare", "/navigation?menu=account&path=/orders")
	assert.Equal(t, "My orders", body.Data.Items[0].Label)
	assert.Equal(t, []string{"/orders"}, activeRoutes(body.Data.Items))
}

func TestNavigationRejectsBadInput(t *testing.T) {
	code, _ := get(t, "wecare", "/navigation?locale=fr")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = get(t, "wecare", "/navigation?menu=footer")
	assert.Equal(t, http.StatusBadRequest, code)
}
