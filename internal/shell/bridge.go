// Package shell talks to the optional desktop/mobile wrapper and coordinates its splashscreen.
package shell

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// ErrUnavailable means no shell is attached
var ErrUnavailable = errors.New("shell bridge unavailable")

// Bridge is an HTTP client for the shell's plugin endpoints
type Bridge struct {
	baseURL string
	client  *http.Client
}

// NewBridge creates a bridge for baseURL; an empty baseURL means the shell is unavailable
func NewBridge(baseURL string, client *http.Client) *Bridge {
	if client == nil {
		client = &http.Client{
			Timeout:   15 * time.Second,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	return &Bridge{baseURL: baseURL, client: client}
}

// Available reports whether a shell is attached
func (b *Bridge) Available() bool {
	return b != nil && b.baseURL != ""
}

// call sends in as JSON and decodes the response into out; either may be nil
func (b *Bridge) call(ctx context.Context, method, path string, in, out interface{}) error {
	if !b.Available() {
		return ErrUnavailable
	}

	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode bridge request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, b.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build bridge request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("bridge request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("bridge %s returned %d: %s", path, resp.StatusCode, bytes.TrimSpace(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode bridge response: %w", err)
	}
	return nil
}
