package models

// Page is the server's pagination envelope for listing endpoints.
type Page[T any] struct {
	Content       []T   `json:"content"`
	CurrentPage   int   `json:"currentPage"`
	PageSize      int   `json:"pageSize"`
	TotalElements int64 `json:"totalElements,omitempty"`
	TotalPages    int   `json:"totalPages,omitempty"`
}
