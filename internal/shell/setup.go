package shell

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/tair/storefront/pkg/logger"
)

// ErrInvalidTask is returned for task names other than frontend and backend
var ErrInvalidTask = errors.New("invalid task")

// Setup tasks that must finish before the main window is shown
const (
	TaskFrontend = "frontend"
	TaskBackend  = "backend"
)

// SetupState reports which splashscreen tasks have completed
type SetupState struct {
	FrontendTask bool `json:"frontendTask"`
	BackendTask  bool `json:"backendTask"`
	Ready        bool `json:"ready"`
}

// SetupCoordinator tracks the splashscreen tasks and shows the main window once both are done
type SetupCoordinator struct {
	mu       sync.Mutex
	frontend bool
	backend  bool
	shown    bool
	onReady  func(ctx context.Context)
}

// NewSetupCoordinator creates a coordinator; onReady runs once, when both tasks are complete
func NewSetupCoordinator(onReady func(ctx context.Context)) *SetupCoordinator {
	return &SetupCoordinator{onReady: onReady}
}

// Complete marks task as done. Completing a task twice is harmless.
func (c *SetupCoordinator) Complete(ctx context.Context, task string) (SetupState, error) {
	c.mu.Lock()

	switch task {
	case TaskFrontend:
		c.frontend = true
	case TaskBackend:
		c.backend = true
	default:
		state := c.stateLocked()
		c.mu.Unlock()
		return state, ErrInvalidTask
	}

	logger.Info(ctx).Str("task", task).Msg("Setup task complete")

	fire := c.frontend && c.backend && !c.shown
	if fire {
		c.shown = true
	}
	state := c.stateLocked()
	c.mu.Unlock()

	if fire {
		logger.Info(ctx).Msg("All setup tasks complete, showing main window")
		if c.onReady != nil {
			c.onReady(ctx)
		}
	}
	return state, nil
}

// State returns a snapshot of the setup progress
func (c *SetupCoordinator) State() SetupState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *SetupCoordinator) stateLocked() SetupState {
	return SetupState{
		FrontendTask: c.frontend,
		BackendTask:  c.backend,
		Ready:        c.frontend && c.backend,
	}
}

// ShowMainWindow asks the shell to close the splashscreen and show the main window
func ShowMainWindow(bridge *Bridge) func(ctx context.Context) {
	return func(ctx context.Context) {
		if !bridge.Available() {
			return
		}
		if err := bridge.call(context.WithoutCancel(ctx), http.MethodPost, "/window/show-main", nil, nil); err != nil {
			logger.Warn(ctx).Err(err).Msg("Failed to show main window")
		}
	}
}
