package domain

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidPayload  = errors.New("invalid catalog payload")
)

// ID is a product or category identifier. The wire format allows either a JSON
// string or a JSON number; both are normalized to their string form so that
// 42 and "42" compare equal.
type ID string

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both string and number identifiers
func (id *ID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("id must be a string or a number")
	}
	*id = ID(canonicalNumber(n))
	return nil
}

// canonicalNumber renders integral values without a fraction so 1.0 and 1 match
func canonicalNumber(n json.Number) string {
	if i, err := n.Int64(); err == nil {
		return strconv.FormatInt(i, 10)
	}
	f, err := n.Float64()
	if err != nil {
		return n.String()
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// MarshalJSON writes integer-looking ids as numbers and everything else as strings
func (id ID) MarshalJSON() ([]byte, error) {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(string(id)), nil
	}
	return json.Marshal(string(id))
}

// BadgeColor is one of the UI palette names a badge can use
type BadgeColor string

const (
	BadgePrimary   BadgeColor = "primary"
	BadgeSecondary BadgeColor = "secondary"
	BadgeSuccess   BadgeColor = "success"
	BadgeInfo      BadgeColor = "info"
	BadgeWarning   BadgeColor = "warning"
	BadgeError     BadgeColor = "error"
	BadgeNeutral   BadgeColor = "neutral"
)

// Valid reports whether c belongs to the palette
func (c BadgeColor) Valid() bool {
	switch c {
	case BadgePrimary, BadgeSecondary, BadgeSuccess, BadgeInfo, BadgeWarning, BadgeError, BadgeNeutral:
		return true
	}
	return false
}

type ProductBadge struct {
	Label string     `json:"label"`
	Color BadgeColor `json:"color"`
}

// Product represents a catalog product
type Product struct {
	ID            ID                     `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Brand         string                 `json:"brand" gorm:"not null;index"`
	Name          string                 `json:"name" gorm:"not null"`
	Description   string                 `json:"description,omitempty"`
	Price         float64                `json:"price" gorm:"not null"`
	OriginalPrice *float64               `json:"originalPrice,omitempty"`
	SaveAmount    *float64               `json:"saveAmount,omitempty"`
	Image         string                 `json:"image,omitempty"`
	Images        []string               `json:"images,omitempty" gorm:"serializer:json"`
	Rating        *float64               `json:"rating,omitempty"`
	Reviews       *int                   `json:"reviews,omitempty"`
	Category      string                 `json:"category,omitempty" gorm:"index"`
	Meta          map[string]interface{} `json:"meta,omitempty" gorm:"serializer:json"`
	Badges        []ProductBadge         `json:"badges,omitempty" gorm:"serializer:json"`
	Position      int                    `json:"-" gorm:"not null;default:0;index"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// Savings returns the per-unit saving, zero when the product carries none
func (p *Product) Savings() float64 {
	if p.SaveAmount == nil {
		return 0
	}
	return *p.SaveAmount
}

// Category groups products by slug
type Category struct {
	ID           ID     `json:"id" gorm:"primaryKey;type:varchar(64)"`
	Name         string `json:"name" gorm:"not null"`
	Icon         string `json:"icon,omitempty"`
	Slug         string `json:"slug" gorm:"uniqueIndex;not null"`
	ProductCount *int   `json:"productCount,omitempty"`
	Position     int    `json:"-" gorm:"not null;default:0"`
}

func (Category) TableName() string {
	return "categories"
}

// ProductFilter narrows a product listing. Category matches exactly; Search is a
// case-insensitive substring match on name or brand.
type ProductFilter struct {
	Category string
	Search   string
}

// ProductRepository defines the contract for catalog data access
type ProductRepository interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]Product, error)
	FindProduct(ctx context.Context, id ID) (*Product, error)
	ListCategories(ctx context.Context) ([]Category, error)
}
