package shell

import (
	"context"
	"net/http"

	"github.com/tair/storefront/pkg/logger"
)

// Biometric authenticates with fingerprint or face recognition
type Biometric struct {
	bridge *Bridge
}

func NewBiometric(bridge *Bridge) *Biometric {
	return &Biometric{bridge: bridge}
}

// Authenticate prompts the user with reason; any failure yields false
func (b *Biometric) Authenticate(ctx context.Context, reason string) bool {
	if !b.bridge.Available() {
		return false
	}

	err := b.bridge.call(ctx, http.MethodPost, "/biometric/authenticate", map[string]string{"reason": reason}, nil)
	if err != nil {
		logger.Error(ctx).Err(err).Msg("Biometric authentication failed")
		return false
	}
	return true
}

// CheckAvailability reports whether the device can do biometric authentication
func (b *Biometric) CheckAvailability(ctx context.Context) bool {
	if !b.bridge.Available() {
		return false
	}

	var status struct {
		IsAvailable bool `json:"isAvailable"`
	}
	if err := b.bridge.call(ctx, http.MethodGet, "/biometric/status", nil, &status); err != nil {
		logger.Debug(ctx).Err(err).Msg("Biometric status unavailable")
		return false
	}
	return status.IsAvailable
}

// Position is a device location
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Accuracy  float64 `json:"accuracy"`
}

// Geolocation reads the device position
type Geolocation struct {
	bridge *Bridge
}

func NewGeolocation(bridge *Bridge) *Geolocation {
	return &Geolocation{bridge: bridge}
}

// GetCurrentPosition returns nil when the shell is missing or the lookup fails
func (g *Geolocation) GetCurrentPosition(ctx context.Context) *Position {
	if !g.bridge.Available() {
		return nil
	}

	var pos struct {
		Coords Position `json:"coords"`
	}
	if err := g.bridge.call(ctx, http.MethodGet, "/geolocation/position", nil, &pos); err != nil {
		logger.Error(ctx).Err(err).Msg("Geolocation failed")
		return nil
	}
	return &pos.Coords
}

// RequestPermissions is true only when location access is granted
func (g *Geolocation) RequestPermissions(ctx context.Context) bool {
	if !g.bridge.Available() {
		return false
	}

	var result struct {
		Location string `json:"location"`
	}
	if err := g.bridge.call(ctx, http.MethodPost, "/geolocation/permissions", nil, &result); err != nil {
		logger.Debug(ctx).Err(err).Msg("Geolocation permission request failed")
		return false
	}
	return result.Location == "granted"
}

// Barcode scans barcodes and QR codes with the device camera
type Barcode struct {
	bridge *Bridge
}

func NewBarcode(bridge *Bridge) *Barcode {
	return &Barcode{bridge: bridge}
}

// Scan returns the decoded content, or nil when scanning is impossible or fails
func (b *Barcode) Scan(ctx context.Context) *string {
	if !b.bridge.Available() {
		return nil
	}

	var result struct {
		Content string `json:"content"`
	}
	if err := b.bridge.call(ctx, http.MethodPost, "/barcode/scan", nil, &result); err != nil {
		logger.Error(ctx).Err(err).Msg("Barcode scan failed")
		return nil
	}
	return &result.Content
}
