package catalog

import (
	"errors"
	"fmt"
)

// Pagination defaults shared by listing operations.
const (
	DefaultPage = 0
	DefaultSize = 10
)

// ErrInvalidArgument is returned when a caller-supplied pagination
// parameter is out of range. Check with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// validatePageRequest rejects out-of-range page and size values before
// they reach the underlying paging primitive. Sort order is fixed to
// ascending by category and is not caller-selectable.
func validatePageRequest(page, size int) error {
	if page < 0 {
		return fmt.Errorf("%w: page must not be negative, got %d", ErrInvalidArgument, page)
	}
	if size < 1 {
		return fmt.Errorf("%w: size must be at least 1, got %d", ErrInvalidArgument, size)
	}
	return nil
}
