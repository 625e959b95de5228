package common

import "errors"

// ErrValidation marks a request rejected before it reaches a store.
// Handlers map it to a 400 response.
var ErrValidation = errors.New("validation failed")

// Pagination describes the slice of a collection returned by a list call.
type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes the page count for a total collection size.
func NewPagination(page, limit, total int) *Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return &Pagination{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
