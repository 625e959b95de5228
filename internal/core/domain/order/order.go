package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no order matches the requested id.
var ErrNotFound = errors.New("order not found")

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusOrdered   Status = "ordered"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusOrdered, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// Item is a line item on an order. Name and price are denormalized from the
// inventory item at ordering time; TotalPrice is quantity times unit price.
type Item struct {
	ID              uuid.UUID `json:"id"`
	InventoryItemID uuid.UUID `json:"inventoryItemId"`
	Name            string    `json:"name"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unitPrice"`
	TotalPrice      float64   `json:"totalPrice"`
}

// Order is a purchase request. Status may be set to any value at any time;
// there is deliberately no enforced transition graph.
type Order struct {
	ID          uuid.UUID `json:"id"`
	OrderNumber string    `json:"orderNumber"`
	Status      Status    `json:"status"`
	Items       []Item    `json:"items"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	RequestedBy string    `json:"requestedBy"`
	ApprovedBy  string    `json:"approvedBy,omitempty"`
	Vendor      string    `json:"vendor,omitempty"`
	Notes       string    `json:"notes,omitempty"`
}

// CreateOrderRequest represents the request to create an order
type CreateOrderRequest struct {
	Items       []Item  `json:"items"`
	TotalAmount float64 `json:"totalAmount"`
	RequestedBy string  `json:"requestedBy"`
	ApprovedBy  string  `json:"approvedBy,omitempty"`
	Vendor      string  `json:"vendor,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	Status      Status  `json:"status,omitempty"`
}

// UpdateStatusRequest represents the request to set an order's status
type UpdateStatusRequest struct {
	Status Status `json:"status"`
	Notes  string `json:"notes,omitempty"`
}
