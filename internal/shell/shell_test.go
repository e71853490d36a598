package shell

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/pkg/metrics"
)

type fakeShell struct {
	server    *httptest.Server
	shown     atomic.Int32
	failAll   bool
	permState string
}

func newFakeShell(t *testing.T) *fakeShell {
	t.Helper()
	f := &fakeShell{permState: "granted"}

	srv := http.NewServeMux()
	fail := func(w http.ResponseWriter) bool {
		if f.failAll {
			http.Error(w, "plugin error", http.StatusInternalServerError)
			return true
		}
		return false
	}
	srv.HandleFunc("/biometric/authenticate", func(w http.ResponseWriter, r *http.Request) {
		if fail(w) {
			return
		}
		var req struct{ Reason string }
		json.NewDecoder(r.Body).Decode(&req)
		if req.Reason == "" {
			http.Error(w, "reason required", http.StatusBadRequest)
		}
	})
	srv.HandleFunc("/biometric/status", func(w http.ResponseWriter, r *http.Request) {
		if fail(w) {
			return
		}
		w.Write([]byte(`{"isAvailable":true}`))
	})
	srv.HandleFunc("/geolocation/position", func(w http.ResponseWriter, r *http.Request) {
		if fail(w) {
			return
		}
		w.Write([]byte(`{"coords":{"latitude":37.98,"longitude":23.72,"accuracy":12}}`))
	})
	srv.HandleFunc("/geolocation/permissions", func(w http.ResponseWriter, r *http.Request) {
		if fail(w) {
			return
		}
		w.Write([]byte(`{"location":"` + f.permState + `"}`))
	})
	srv.HandleFunc("/barcode/scan", func(w http.ResponseWriter, r *http.Request) {
		if fail(w) {
			return
		}
		w.Write([]byte(`{"content":"5201234567890"}`))
	})
	srv.HandleFunc("/window/show-main", func(w http.ResponseWriter, r *http.Request) {
		f.shown.Add(1)
	})

	f.server = httptest.NewServer(srv)
	t.Cleanup(f.server.Close)
	return f
}

func TestBridgesWithoutShellReturnSentinels(t *testing.T) {
	bridge := NewBridge("", nil)
	ctx := context.Background()

	assert.False(t, bridge.Available())
	assert.False(t, NewBiometric(bridge).Authenticate(ctx, "pay"))
	assert.False(t, NewBiometric(bridge).CheckAvailability(ctx))
	assert.Nil(t, NewGeolocation(bridge).GetCurrentPosition(ctx))
	assert.False(t, NewGeolocation(bridge).RequestPermissions(ctx))
	assert.Nil(t, NewBarcode(bridge).Scan(ctx))
}

func TestBridgesWithShell(t *testing.T) {
	shell := newFakeShell(t)
	bridge := NewBridge(shell.server.URL, shell.server.Client())
	ctx := context.Background()

	assert.True(t, NewBiometric(bridge).Authenticate(ctx, "Confirm purchase"))
	assert.False(t, NewBiometric(bridge).Authenticate(ctx, ""))
	assert.True(t, NewBiometric(bridge).CheckAvailability(ctx))

	pos := NewGeolocation(bridge).GetCurrentPosition(ctx)
	require.NotNil(t, pos)
	assert.InDelta(t, 37.98, pos.Latitude, 1e-9)
	assert.InDelta(t, 12.0, pos.Accuracy, 1e-9)

	assert.True(t, NewGeolocation(bridge).RequestPermissions(ctx))
	shell.permState = "prompt"
	assert.False(t, NewGeolocation(bridge).RequestPermissions(ctx))

	code := NewBarcode(bridge).Scan(ctx)
	require.NotNil(t, code)
	assert.Equal(t, "5201234567890", *code)
}

func TestBridgeFailuresReturnSentinels(t *testing.T) {
	shell := newFakeShell(t)
	shell.failAll = true
	bridge := NewBridge(shell.server.URL, shell.server.Client())
	ctx := context.Background()

	assert.False(t, NewBiometric(bridge).Authenticate(ctx, "x"))
	assert.False(t, NewBiometric(bridge).CheckAvailability(ctx))
	assert.Nil(t, NewGeolocation(bridge).GetCurrentPosition(ctx))
	assert.False(t, NewGeolocation(bridge).RequestPermissions(ctx))
	assert.Nil(t, NewBarcode(bridge).Scan(ctx))

	// unreachable shell
	dead := NewBridge("http://127.0.0.1:1", nil)
	assert.Nil(t, NewBarcode(dead).Scan(ctx))
}

func TestSetupCoordinator(t *testing.T) {
	var ready atomic.Int32
	c := NewSetupCoordinator(func(context.Context) { ready.Add(1) })
	ctx := context.Background()

	_, err := c.Complete(ctx, "database")
	assert.ErrorIs(t, err, ErrInvalidTask)

	state, err := c.Complete(ctx, TaskFrontend)
	require.NoError(t, err)
	assert.False(t, state.Ready)
	assert.Zero(t, ready.Load())

	state, err = c.Complete(ctx, TaskBackend)
	require.NoError(t, err)
	assert.True(t, state.Ready)
	assert.EqualValues(t, 1, ready.Load())

	// repeated completion does not show the window again
	_, err = c.Complete(ctx, TaskFrontend)
	require.NoError(t, err)
	assert.EqualValues(t, 1, ready.Load())
}

func TestSetupCoordinatorConcurrentCompletion(t *testing.T) {
	var ready atomic.Int32
	c := NewSetupCoordinator(func(context.Context) { ready.Add(1) })

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		task := TaskFrontend
		if i%2 == 0 {
			task = TaskBackend
		}
		go func() {
			defer wg.Done()
			c.Complete(context.Background(), task)
		}()
	}
	wg.Wait()

	assert.True(t, c.State().Ready)
	assert.EqualValues(t, 1, ready.Load())
}

func newRouter(bridge *Bridge, setup *SetupCoordinator) *mux.Router {
	router := mux.NewRouter()
	NewHandler(bridge, setup, "WeCare", metrics.NewHTTPMetrics(prometheus.NewRegistry(), "test_shell")).RegisterRoutes(router)
	return router
}

func TestShellOnlyRoutesRedirectOutsideShell(t *testing.T) {
	router := newRouter(NewBridge("", nil), NewSetupCoordinator(nil))

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/splashscreen", nil),
		httptest.NewRequest(http.MethodPost, "/shell/barcode/scan", nil),
		httptest.NewRequest(http.MethodGet, "/shell/geolocation", nil),
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusFound, rec.Code, req.URL.Path)
		assert.Equal(t, "/", rec.Header().Get("Location"))
	}
}

func TestSetupRoutesShowMainWindow(t *testing.T) {
	shell := newFakeShell(t)
	bridge := NewBridge(shell.server.URL, shell.server.Client())
	router := newRouter(bridge, NewSetupCoordinator(ShowMainWindow(bridge)))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shell/setup/bogus", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid task")

	for _, task := range []string{TaskFrontend, TaskBackend} {
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shell/setup/"+task, nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.EqualValues(t, 1, shell.shown.Load())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/shell/setup", nil))
	assert.Contains(t, rec.Body.String(), `"ready":true`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/splashscreen", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"WeCare"`)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/shell/biometric/authenticate", strings.NewReader(`{"reason":"Sign in"}`)))
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)
}
