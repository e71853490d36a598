package domain

import (
	"context"
	"errors"

	catalog "github.com/tair/storefront/internal/catalog/domain"
)

var ErrInvalidQuantity = errors.New("quantity must be greater than zero")

// Item is one line of a cart; Quantity is always positive
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart is an ordered list of items with at most one line per product id
type Cart struct {
	Items []Item `json:"items"`
}

func (c *Cart) index(id catalog.ID) int {
	for i := range c.Items {
		if c.Items[i].Product.ID == id {
			return i
		}
	}
	return -1
}

// AddItem increments an existing line or appends a new one
func (c *Cart) AddItem(product catalog.Product, quantity int) {
	if quantity <= 0 {
		return
	}
	if i := c.index(product.ID); i >= 0 {
		c.Items[i].Quantity += quantity
		return
	}
	c.Items = append(c.Items, Item{Product: product, Quantity: quantity})
}

// RemoveItem drops the line for id; unknown ids are ignored
func (c *Cart) RemoveItem(id catalog.ID) {
	i := c.index(id)
	if i < 0 {
		return
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
}

// UpdateQuantity sets the quantity of an existing line; zero or less removes it
func (c *Cart) UpdateQuantity(id catalog.ID, quantity int) {
	i := c.index(id)
	if i < 0 {
		return
	}
	if quantity <= 0 {
		c.RemoveItem(id)
		return
	}
	c.Items[i].Quantity = quantity
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsInCart(id catalog.ID) bool {
	return c.index(id) >= 0
}

func (c *Cart) TotalItems() int {
	total := 0
	for _, item := range c.Items {
		total += item.Quantity
	}
	return total
}

func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// TotalSavings sums saveAmount × quantity over items that carry a saveAmount
func (c *Cart) TotalSavings() float64 {
	total := 0.0
	for _, item := range c.Items {
		if item.Product.SaveAmount != nil {
			total += *item.Product.SaveAmount * float64(item.Quantity)
		}
	}
	return total
}

// Summary is the read model returned to clients
type Summary struct {
	Items        []Item  `json:"items"`
	TotalItems   int     `json:"totalItems"`
	TotalPrice   float64 `json:"totalPrice"`
	TotalSavings float64 `json:"totalSavings"`
}

func (c *Cart) Summary() Summary {
	items := c.Items
	if items == nil {
		items = []Item{}
	}
	return Summary{
		Items:        items,
		TotalItems:   c.TotalItems(),
		TotalPrice:   c.TotalPrice(),
		TotalSavings: c.TotalSavings(),
	}
}

// CartRepository loads and atomically mutates carts by owner
type CartRepository interface {
	Load(ctx context.Context, owner string) (*Cart, error)
	Update(ctx context.Context, owner string, fn func(*Cart) error) (*Cart, error)
}
