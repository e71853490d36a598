package auth

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/response"
)

// Handler exposes the current session
type Handler struct {
	metrics *metrics.HTTPMetrics
}

func NewHandler(m *metrics.HTTPMetrics) *Handler {
	return &Handler{metrics: m}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/auth/me", h.metrics.Wrap("/auth/me", h.Me)).Methods("GET")
}

// Me handles GET /auth/me
// @Summary Current user
// @Description Returns the user of the bearer token; anonymous sessions get 401
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object{user=object,owner=string}}
// @Failure 401 {object} object{success=bool,error=string}
// @Router /auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		response.Error(w, http.StatusUnauthorized, "Not authenticated")
		return
	}

	owner, _ := OwnerFromContext(r.Context())
	response.JSON(w, http.StatusOK, response.Response{
		Success: true,
		Data: map[string]interface{}{
			"user":  user,
			"owner": owner,
		},
	})
}
