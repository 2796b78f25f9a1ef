package models

import "math"

// PaginationResult is the envelope returned by every paged list endpoint.
type PaginationResult[T any] struct {
	TotalItems  int  `json:"totalItems"`
	TotalPages  int  `json:"totalPages"`
	CurrentPage int  `json:"currentPage"`
	PageSize    int  `json:"pageSize"`
	Items       []T  `json:"items"`
	HasPrevious bool `json:"hasPrevious"`
	HasNext     bool `json:"hasNext"`
}

// NewPaginationResult fills in the derived fields. Items may be nil when
// the requested page is past the end; callers still get an empty list.
func NewPaginationResult[T any](items []T, totalItems, currentPage, pageSize int) PaginationResult[T] {
	totalPages := 1
	if pageSize > 0 {
		totalPages = int(math.Ceil(float64(totalItems) / float64(pageSize)))
	}
	if items == nil {
		items = []T{}
	}
	return PaginationResult[T]{
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		PageSize:    pageSize,
		Items:       items,
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}
