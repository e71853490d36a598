package domain

import (
	"context"
	"errors"

	catalog "github.com/tair/storefront/internal/catalog/domain"
)

var ErrInvalidProductID = errors.New("product id is required")

// Favorites is an ordered set of product ids. Ids are compared in their string
// form, so 1 and "1" name the same product.
type Favorites struct {
	IDs []catalog.ID `json:"ids"`
}

func (f *Favorites) index(id catalog.ID) int {
	for i, existing := range f.IDs {
		if existing.String() == id.String() {
			return i
		}
	}
	return -1
}

// Toggle adds id when absent and removes it when present; it reports the new state
func (f *Favorites) Toggle(id catalog.ID) bool {
	if f.IsFavorite(id) {
		f.Remove(id)
		return false
	}
	f.Add(id)
	return true
}

// Add appends id unless it is already present
func (f *Favorites) Add(id catalog.ID) {
	if f.IsFavorite(id) {
		return
	}
	f.IDs = append(f.IDs, id)
}

func (f *Favorites) Remove(id catalog.ID) {
	i := f.index(id)
	if i < 0 {
		return
	}
	f.IDs = append(f.IDs[:i], f.IDs[i+1:]...)
}

func (f *Favorites) Clear() {
	f.IDs = nil
}

func (f *Favorites) IsFavorite(id catalog.ID) bool {
	return f.index(id) >= 0
}

func (f *Favorites) Count() int {
	return len(f.IDs)
}

// View is the read model returned to clients
type View struct {
	IDs   []catalog.ID `json:"ids"`
	Count int          `json:"count"`
}

func (f *Favorites) View() View {
	ids := f.IDs
	if ids == nil {
		ids = []catalog.ID{}
	}
	return View{IDs: ids, Count: len(ids)}
}

// FavoritesRepository loads and atomically mutates favorites by owner
type FavoritesRepository interface {
	Load(ctx context.Context, owner string) (*Favorites, error)
	Update(ctx context.Context, owner string, fn func(*Favorites) error) (*Favorites, error)
}
