// Package statestore persists small per-owner documents such as carts and favorites.
package statestore

import (
	"context"
	"errors"
)

// ErrConflict is returned when an update keeps losing a concurrent race
var ErrConflict = errors.New("state store: concurrent update conflict")

// UpdateFunc receives the current document (nil when absent) and returns the next one.
// Returning nil deletes the key.
type UpdateFunc func(current []byte) ([]byte, error)

// Store is a keyed document store with atomic read-modify-write
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Update(ctx context.Context, key string, fn UpdateFunc) error
	Delete(ctx context.Context, key string) error
}
