package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no inventory item matches the requested id.
var ErrNotFound = errors.New("inventory item not found")

// Item is a tracked inventory record. Quantities are non-negative; "low
// stock" is derived from quantity vs minQuantity, never stored.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	SKU         string    `json:"sku"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	MinQuantity int       `json:"minQuantity"`
	MaxQuantity int       `json:"maxQuantity"`
	LastUpdated time.Time `json:"lastUpdated"`
	Supplier    string    `json:"supplier,omitempty"`
}

// IsLowStock reports whether the item is at or below its reorder threshold.
func (i *Item) IsLowStock() bool {
	return i.Quantity <= i.MinQuantity
}

// CreateItemRequest represents the request to create an inventory item
type CreateItemRequest struct {
	Name        string `json:"name"`
	SKU         string `json:"sku"`
	Quantity    int    `json:"quantity"`
	Unit        string `json:"unit"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	MinQuantity int    `json:"minQuantity"`
	MaxQuantity int    `json:"maxQuantity"`
	Supplier    string `json:"supplier,omitempty"`
}

// UpdateItemRequest carries a partial update; nil fields are left unchanged.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	SKU         *string `json:"sku,omitempty"`
	Quantity    *int    `json:"quantity,omitempty"`
	Unit        *string `json:"unit,omitempty"`
	Category    *string `json:"category,omitempty"`
	Location    *string `json:"location,omitempty"`
	MinQuantity *int    `json:"minQuantity,omitempty"`
	MaxQuantity *int    `json:"maxQuantity,omitempty"`
	Supplier    *string `json:"supplier,omitempty"`
}
