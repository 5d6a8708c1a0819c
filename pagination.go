package storefront

import (
	"strconv"
)

const (
	defaultPage = 1
	defaultSize = 10
)

// PageRequest is a validated pagination window. Page and Size are both
// one-based and at least 1.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the element offset of the window.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.Size
}

// ParsePageRequest builds a PageRequest from raw query values. Absent
// values fall back to page 1, size 10; anything below 1, or not a
// number, is rejected.
func ParsePageRequest(page, size string) (PageRequest, error) {
	req := PageRequest{Page: defaultPage, Size: defaultSize}

	if page != "" {
		n, err := strconv.Atoi(page)
		if err != nil || n < 1 {
			return PageRequest{}, ErrInvalidPagination
		}
		req.Page = n
	}

	if size != "" {
		n, err := strconv.Atoi(size)
		if err != nil || n < 1 {
			return PageRequest{}, ErrInvalidPagination
		}
		req.Size = n
	}

	return req, nil
}

// Page is the envelope every administrative listing endpoint returns.
// TotalElements counts the whole filter, independent of the window.
type Page[T any] struct {
	Contents      []T   `json:"contents"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int64 `json:"totalPages"`
}

// NewPage assembles the envelope for one window over total matching
// elements. Contents is never nil so the JSON field is always an
// array.
func NewPage[T any](contents []T, req PageRequest, total int64) Page[T] {
	if contents == nil {
		contents = []T{}
	}
	return Page[T]{
		Contents:      contents,
		Page:          req.Page,
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    totalPages(total, req.Size),
	}
}

func totalPages(total int64, size int) int64 {
	if size < 1 {
		return 0
	}
	return (total + int64(size) - 1) / int64(size)
}
