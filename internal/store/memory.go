package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/openwares/catalog-api/internal/model"
)

// MemoryStore implements Store with in-memory storage. Ids are assigned
// from a monotonic counter and never reused after deletion.
type MemoryStore struct {
	mu     sync.RWMutex
	items  map[int64]model.Item
	nextID int64
}

// NewMemoryStore creates a new MemoryStore instance.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[int64]model.Item),
	}
}

// Insert persists a new item and returns the stored snapshot.
func (s *MemoryStore) Insert(ctx context.Context, category, name string) (*model.Item, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("insert item: %w", ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	item := model.Item{
		ID:       s.nextID,
		Category: category,
		Name:     name,
	}
	s.items[item.ID] = item

	return &item, nil
}

// GetByID retrieves an item by its id.
func (s *MemoryStore) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("get item: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.items[id]
	if !exists {
		return nil, ErrNotFound
	}

	return &item, nil
}

// Update replaces category and name of an existing item. The existence
// check and the write happen under one lock so a racing delete observes
// either the old or the new record, never a partial one.
func (s *MemoryStore) Update(ctx context.Context, id int64, category, name string) (*model.Item, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("update item: %w", ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return nil, ErrNotFound
	}

	updated := model.Item{
		ID:       id,
		Category: category,
		Name:     name,
	}
	s.items[id] = updated

	return &updated, nil
}

// Delete removes an item by its id.
func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	select {
	case <-ctx.Done():
		return fmt.Errorf("delete item: %w", ctx.Err())
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		return ErrNotFound
	}

	delete(s.items, id)

	return nil
}

// ListByCategory returns one page of items matching the category exactly,
// ordered ascending by category with id as tie-breaker.
func (s *MemoryStore) ListByCategory(ctx context.Context, category string, page, size int) (*model.ItemPage, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("list items: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]model.Item, 0)
	for _, item := range s.items {
		if item.Category == category {
			matched = append(matched, item)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Category != matched[j].Category {
			return matched[i].Category < matched[j].Category
		}
		return matched[i].ID < matched[j].ID
	})

	total := int64(len(matched))

	return &model.ItemPage{
		Items:         pageSlice(matched, page, size),
		TotalPages:    totalPages(total, size),
		TotalElements: total,
		Page:          page,
	}, nil
}

// pageSlice returns the requested page of items. Pages at or beyond the
// last page are empty; the bound check happens before the offset is
// computed so a huge page number cannot overflow the multiplication.
func pageSlice(items []model.Item, page, size int) []model.Item {
	if page >= totalPages(int64(len(items)), size) {
		return []model.Item{}
	}

	start := page * size
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// DistinctCategories returns the distinct category values in ascending order.
func (s *MemoryStore) DistinctCategories(ctx context.Context) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("list categories: %w", ctx.Err())
	default:
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, item := range s.items {
		seen[item.Category] = struct{}{}
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	return categories, nil
}

// totalPages computes the page count for a listing of total elements
// sliced into pages of the given size.
func totalPages(total int64, size int) int {
	if total == 0 {
		return 0
	}
	pages := total / int64(size)
	if total%int64(size) != 0 {
		pages++
	}
	return int(pages)
}
