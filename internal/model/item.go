// Package model defines data structures used throughout the application.
package model

// Item represents a catalog entry identified by a server-assigned id.
// Category and Name are free-form strings stored exactly as given;
// the core applies no trimming or normalization.
type Item struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// ItemPage is one page of a category-filtered listing together with
// its pagination metadata.
type ItemPage struct {
	Items         []Item `json:"items"`
	TotalPages    int    `json:"total_pages"`
	TotalElements int64  `json:"total_elements"`
	Page          int    `json:"page"`
}

// APIResponse is a generic wrapper for API responses.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// NewSuccessResponse creates a successful API response.
func NewSuccessResponse[T any](data T) APIResponse[T] {
	return APIResponse[T]{
		Success: true,
		Data:    data,
	}
}

// ErrorResponse represents an error response structure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
