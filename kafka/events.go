package kafka

import "time"

// CartUpdatedEvent is published after every cart mutation
type CartUpdatedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	Brand      string    `json:"brand"`
	Owner      string    `json:"owner"`
	Action     string    `json:"action"`
	ProductID  string    `json:"product_id,omitempty"`
	Quantity   int       `json:"quantity,omitempty"`
	TotalItems int       `json:"total_items"`
	TotalPrice float64   `json:"total_price"`
	Timestamp  time.Time `json:"timestamp"`
}

// CatalogUpdatedEvent announces that catalog data changed upstream.
// An empty ProductIDs list means the whole catalog.
type CatalogUpdatedEvent struct {
	EventID    string    `json:"event_id"`
	EventType  string    `json:"event_type"`
	ProductIDs []string  `json:"product_ids,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Cart actions
const (
	CartActionAdd    = "add"
	CartActionRemove = "remove"
	CartActionUpdate = "update"
	CartActionClear  = "clear"
)

// Event types
const (
	EventTypeCartUpdated    = "cart.updated"
	EventTypeCatalogUpdated = "catalog.updated"
)

// Kafka topics
const (
	TopicCartUpdated    = "cart-updated"
	TopicCatalogUpdated = "catalog-updated"
)
