// Package store provides item storage interfaces and implementations.
package store

import (
	"context"
	"errors"

	"github.com/openwares/catalog-api/internal/model"
)

// Store errors.
var (
	// ErrNotFound is returned when no item exists for the given id.
	ErrNotFound = errors.New("item not found")

	// ErrStorage wraps faults of the underlying storage engine. Callers
	// check it with errors.Is; the concrete driver error stays attached
	// for logging at the boundary.
	ErrStorage = errors.New("storage failure")
)

// Store defines the interface for item storage operations.
//
// Insert, Update and Delete each execute as a single atomic unit:
// concurrent callers racing on the same id observe either the full
// pre-state or the full post-state, never an interleaving.
type Store interface {
	// Insert persists a new item with a fresh unique id and returns the
	// stored snapshot. Ids are never reused, even after deletion.
	Insert(ctx context.Context, category, name string) (*model.Item, error)

	// GetByID retrieves an item by its id.
	GetByID(ctx context.Context, id int64) (*model.Item, error)

	// Update replaces category and name of the item identified by id,
	// leaving the id unchanged, and returns the post-update snapshot.
	Update(ctx context.Context, id int64, category, name string) (*model.Item, error)

	// Delete removes the item identified by id.
	Delete(ctx context.Context, id int64) error

	// ListByCategory returns the items whose category equals the given
	// string exactly, ordered ascending by category, sliced to the
	// requested page. Page indexing starts at zero.
	ListByCategory(ctx context.Context, category string, page, size int) (*model.ItemPage, error)

	// DistinctCategories returns every distinct category value currently
	// present, compared byte-for-byte, in ascending order.
	DistinctCategories(ctx context.Context) ([]string, error)
}
