package shell

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/tair/storefront/pkg/metrics"
	"github.com/tair/storefront/pkg/response"
)

// Handler exposes the setup coordinator and the platform bridges
type Handler struct {
	bridge      *Bridge
	biometric   *Biometric
	geolocation *Geolocation
	barcode     *Barcode
	setup       *SetupCoordinator
	productName string
	metrics     *metrics.HTTPMetrics
}

func NewHandler(bridge *Bridge, setup *SetupCoordinator, productName string, m *metrics.HTTPMetrics) *Handler {
	return &Handler{
		bridge:      bridge,
		biometric:   NewBiometric(bridge),
		geolocation: NewGeolocation(bridge),
		barcode:     NewBarcode(bridge),
		setup:       setup,
		productName: productName,
		metrics:     m,
	}
}

func (h *Handler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/shell/setup", h.metrics.Wrap("/shell/setup", h.GetSetup)).Methods("GET")
	router.HandleFunc("/shell/setup/{task}", h.metrics.Wrap("/shell/setup/{task}", h.CompleteTask)).Methods("POST")

	shellOnly := router.NewRoute().Subrouter()
	shellOnly.Use(ShellOnly(h.bridge))
	shellOnly.HandleFunc("/splashscreen", h.metrics.Wrap("/splashscreen", h.Splashscreen)).Methods("GET")
	shellOnly.HandleFunc("/shell/biometric/authenticate", h.metrics.Wrap("/shell/biometric/authenticate", h.Authenticate)).Methods("POST")
	shellOnly.HandleFunc("/shell/biometric/status", h.metrics.Wrap("/shell/biometric/status", h.BiometricStatus)).Methods("GET")
	shellOnly.HandleFunc("/shell/geolocation", h.metrics.Wrap("/shell/geolocation", h.Position)).Methods("GET")
	shellOnly.HandleFunc("/shell/geolocation/permissions", h.metrics.Wrap("/shell/geolocation/permissions", h.RequestPermissions)).Methods("POST")
	shellOnly.HandleFunc("/shell/barcode/scan", h.metrics.Wrap("/shell/barcode/scan", h.Scan)).Methods("POST")
}

// GetSetup handles GET /shell/setup
func (h *Handler) GetSetup(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: h.setup.State()})
}

// CompleteTask handles POST /shell/setup/{task}
func (h *Handler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	state, err := h.setup.Complete(r.Context(), mux.Vars(r)["task"])
	if errors.Is(err, ErrInvalidTask) {
		response.Error(w, http.StatusBadRequest, "Invalid task")
		return
	}

	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: state})
}

// Splashscreen handles GET /splashscreen
func (h *Handler) Splashscreen(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.Response{
		Success: true,
		Data: map[string]interface{}{
			"title": h.productName,
			"setup": h.setup.State(),
		},
	})
}

// Authenticate handles POST /shell/biometric/authenticate
func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ok := h.biometric.Authenticate(r.Context(), req.Reason)
	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: map[string]bool{"authenticated": ok}})
}

// BiometricStatus handles GET /shell/biometric/status
func (h *Handler) BiometricStatus(w http.ResponseWriter, r *http.Request) {
	ok := h.biometric.CheckAvailability(r.Context())
	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: map[string]bool{"isAvailable": ok}})
}

// Position handles GET /shell/geolocation
func (h *Handler) Position(w http.ResponseWriter, r *http.Request) {
	pos := h.geolocation.GetCurrentPosition(r.Context())
	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: map[string]*Position{"position": pos}})
}

// RequestPermissions handles POST /shell/geolocation/permissions
func (h *Handler) RequestPermissions(w http.ResponseWriter, r *http.Request) {
	granted := h.geolocation.RequestPermissions(r.Context())
	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: map[string]bool{"granted": granted}})
}

// Scan handles POST /shell/barcode/scan
func (h *Handler) Scan(w http.ResponseWriter, r *http.Request) {
	content := h.barcode.Scan(r.Context())
	response.JSON(w, http.StatusOK, response.Response{Success: true, Data: map[string]*string{"content": content}})
}
