// Package catalog implements the item lifecycle service: the operation
// surface enforcing create, read, update, delete and listing contracts
// over an item store.
package catalog

import (
	"context"

	"github.com/openwares/catalog-api/internal/model"
	"github.com/openwares/catalog-api/internal/store"
)

// Service orchestrates item lifecycle operations over a Store. It owns
// no state of its own; all persistence goes through the injected store.
// Error reporting is left to the caller, the service never logs.
type Service struct {
	store store.Store
}

// NewService creates a Service backed by the given store.
func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Create stores a new item with the given category and name and returns
// the stored snapshot. Any string values are accepted as-is.
func (s *Service) Create(ctx context.Context, category, name string) (*model.Item, error) {
	return s.store.Insert(ctx, category, name)
}

// GetByID returns the item with the given id, or store.ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	return s.store.GetByID(ctx, id)
}

// Update replaces both category and name of the item with the given id.
// There is no partial-update mode; callers supply the full desired state
// on every call. Returns store.ErrNotFound if no such item exists.
func (s *Service) Update(ctx context.Context, id int64, category, name string) (*model.Item, error) {
	return s.store.Update(ctx, id, category, name)
}

// Delete removes the item with the given id. Removal is physical; there
// is no recovery path once committed. Returns store.ErrNotFound if no
// such item exists.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}

// ListByCategory returns one page of items whose category equals the
// given string exactly, ordered ascending by category, together with
// pagination metadata. Returns ErrInvalidArgument before touching the
// store when page or size is out of range.
func (s *Service) ListByCategory(ctx context.Context, category string, page, size int) (*model.ItemPage, error) {
	if err := validatePageRequest(page, size); err != nil {
		return nil, err
	}
	return s.store.ListByCategory(ctx, category, page, size)
}

// ListCategories returns every distinct category value currently in use,
// compared byte-for-byte as stored. The result always reflects the store
// state at call time; nothing is cached.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	return s.store.DistinctCategories(ctx)
}
