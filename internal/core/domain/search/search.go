package search

import "github.com/google/uuid"

type ResultType string

const (
	TypeInventory ResultType = "inventory"
	TypeOrder     ResultType = "order"
	// Declared for the result shape; these entities have no backing store yet.
	TypeTask    ResultType = "task"
	TypeVisitor ResultType = "visitor"
)

// Result is a single ranked hit from a cross-entity search.
type Result struct {
	ID          uuid.UUID  `json:"id"`
	Type        ResultType `json:"type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Link        string     `json:"link"`
	Relevance   float64    `json:"relevance"`
}

// Weights holds the per-field relevance contributions. A record's score is
// the sum of the weights of every field the query matches.
type Weights struct {
	InventoryName     float64
	InventorySKU      float64
	InventoryCategory float64
	OrderNumber       float64
	OrderVendor       float64
	OrderItemName     float64
}

// DefaultWeights returns the standard field weighting.
func DefaultWeights() Weights {
	return Weights{
		InventoryName:     0.5,
		InventorySKU:      0.3,
		InventoryCategory: 0.2,
		OrderNumber:       0.5,
		OrderVendor:       0.3,
		OrderItemName:     0.2,
	}
}
