package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/openwares/catalog-api/internal/model"
	"github.com/openwares/catalog-api/internal/store"
)

// mockStore implements store.Store for testing.
type mockStore struct {
	items  map[int64]model.Item
	nextID int64

	insertErr     error
	getErr        error
	updateErr     error
	deleteErr     error
	listErr       error
	categoriesErr error

	listCalled bool
}

func newMockStore() *mockStore {
	return &mockStore{
		items: make(map[int64]model.Item),
	}
}

func (m *mockStore) Insert(_ context.Context, category, name string) (*model.Item, error) {
	if m.insertErr != nil {
		return nil, m.insertErr
	}
	m.nextID++
	item := model.Item{ID: m.nextID, Category: category, Name: name}
	m.items[item.ID] = item
	return &item, nil
}

func (m *mockStore) GetByID(_ context.Context, id int64) (*model.Item, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	item, exists := m.items[id]
	if !exists {
		return nil, store.ErrNotFound
	}
	return &item, nil
}

func (m *mockStore) Update(_ context.Context, id int64, category, name string) (*model.Item, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	if _, exists := m.items[id]; !exists {
		return nil, store.ErrNotFound
	}
	item := model.Item{ID: id, Category: category, Name: name}
	m.items[id] = item
	return &item, nil
}

func (m *mockStore) Delete(_ context.Context, id int64) error {
	if m.deleteErr != nil {
		return m.deleteErr
	}
	if _, exists := m.items[id]; !exists {
		return store.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

func (m *mockStore) ListByCategory(_ context.Context, category string, page, size int) (*model.ItemPage, error) {
	m.listCalled = true
	if m.listErr != nil {
		return nil, m.listErr
	}
	items := make([]model.Item, 0)
	for _, item := range m.items {
		if item.Category == category {
			items = append(items, item)
		}
	}
	return &model.ItemPage{
		Items:         items,
		TotalPages:    1,
		TotalElements: int64(len(items)),
		Page:          page,
	}, nil
}

func (m *mockStore) DistinctCategories(_ context.Context) ([]string, error) {
	if m.categoriesErr != nil {
		return nil, m.categoriesErr
	}
	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, item := range m.items {
		if _, ok := seen[item.Category]; !ok {
			seen[item.Category] = struct{}{}
			categories = append(categories, item.Category)
		}
	}
	return categories, nil
}

func TestService_CreateThenGet(t *testing.T) {
	// Arrange
	svc := NewService(newMockStore())
	ctx := context.Background()

	// Act
	created, err := svc.Create(ctx, "tools", "hammer")

	// Assert
	if err != nil {
		t.Fatalf("Create() unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("Create() should assign a non-zero ID")
	}

	got, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID() unexpected error: %v", err)
	}
	if got.Category != "tools" || got.Name != "hammer" {
		t.Errorf("GetByID() = %+v, want category=tools name=hammer", got)
	}
}

func TestService_GetByID_NotFound(t *testing.T) {
	// Arrange
	svc := NewService(newMockStore())
	ctx := context.Background()

	// Act
	got, err := svc.GetByID(ctx, 42)

	// Assert
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByID() error = %v, want %v", err, store.ErrNotFound)
	}
	if got != nil {
		t.Error("GetByID() should return nil for missing item")
	}
}

func TestService_Update(t *testing.T) {
	// Arrange
	svc := NewService(newMockStore())
	ctx := context.Background()
	created, _ := svc.Create(ctx, "tools", "hammer")

	// Act
	updated, err := svc.Update(ctx, created.ID, "hardware", "sledgehammer")

	// Assert
	if err != nil {
		t.Fatalf("Update() unexpected error: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("Update() changed ID: got %d, want %d", updated.ID, created.ID)
	}
	if updated.Category != "hardware" || updated.Name != "sledgehammer" {
		t.Errorf("Update() = %+v, want category=hardware name=sledgehammer", updated)
	}
}

func TestService_Update_NotFound(t *testing.T) {
	// Arrange
	svc := NewService(newMockStore())
	ctx := context.Background()

	// Act
	_, err := svc.Update(ctx, 42, "tools", "hammer")

	// Assert
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Update() error = %v, want %v", err, store.ErrNotFound)
	}
}

func TestService_Delete(t *testing.T) {
	// Arrange
	svc := NewService(newMockStore())
	ctx := context.Background()
	created, _ := svc.Create(ctx, "tools", "hammer")

	// Act
	err := svc.Delete(ctx, created.ID)

	// Assert
	if err != nil {
		t.Fatalf("Delete() unexpected error: %v", err)
	}
	if _, err := svc.GetByID(ctx, created.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("GetByID() after Delete error = %v, want %v", err, store.ErrNotFound)
	}
}

func TestService_Delete_NotFound(t *testing.T) {
	// Arrange
	svc := NewService(newMockStore())
	ctx := context.Background()

	// Act
	err := svc.Delete(ctx, 42)

	// Assert
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Delete() error = %v, want %v", err, store.ErrNotFound)
	}
}

func TestService_ListByCategory_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		page int
		size int
	}{
		{name: "negative page", page: -1, size: 10},
		{name: "zero size", page: 0, size: 0},
		{name: "negative size", page: 0, size: -5},
		{name: "both invalid", page: -3, size: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			ms := newMockStore()
			svc := NewService(ms)
			ctx := context.Background()

			// Act
			result, err := svc.ListByCategory(ctx, "tools", tt.page, tt.size)

			// Assert
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ListByCategory() error = %v, want %v", err, ErrInvalidArgument)
			}
			if result != nil {
				t.Error("ListByCategory() should return nil on invalid input")
			}
			if ms.listCalled {
				t.Error("store should not be reached with invalid pagination")
			}
		})
	}
}

func TestService_ListByCategory(t *testing.T) {
	// Arrange
	svc := NewService(newMockStore())
	ctx := context.Background()
	_, _ = svc.Create(ctx, "tools", "hammer")
	_, _ = svc.Create(ctx, "tools", "saw")
	_, _ = svc.Create(ctx, "books", "novel")

	// Act
	result, err := svc.ListByCategory(ctx, "tools", 0, 10)

	// Assert
	if err != nil {
		t.Fatalf("ListByCategory() unexpected error: %v", err)
	}
	if result.TotalElements != 2 {
		t.Errorf("TotalElements = %d, want 2", result.TotalElements)
	}
	if result.Page != 0 {
		t.Errorf("Page = %d, want 0", result.Page)
	}
}

func TestService_ListByCategory_StoreError(t *testing.T) {
	// Arrange
	ms := newMockStore()
	ms.listErr = store.ErrStorage
	svc := NewService(ms)
	ctx := context.Background()

	// Act
	_, err := svc.ListByCategory(ctx, "tools", 0, 10)

	// Assert: store faults pass through unchanged.
	if !errors.Is(err, store.ErrStorage) {
		t.Errorf("ListByCategory() error = %v, want %v", err, store.ErrStorage)
	}
}

func TestService_ListCategories(t *testing.T) {
	// Arrange
	svc := NewService(newMockStore())
	ctx := context.Background()
	_, _ = svc.Create(ctx, "book", "novel")
	_, _ = svc.Create(ctx, "book ", "paperback")
	_, _ = svc.Create(ctx, "book", "comic")

	// Act
	categories, err := svc.ListCategories(ctx)

	// Assert
	if err != nil {
		t.Fatalf("ListCategories() unexpected error: %v", err)
	}
	if len(categories) != 2 {
		t.Errorf("len(categories) = %d, want 2, got %q", len(categories), categories)
	}
}

func TestService_ListCategories_StoreError(t *testing.T) {
	// Arrange
	ms := newMockStore()
	ms.categoriesErr = store.ErrStorage
	svc := NewService(ms)
	ctx := context.Background()

	// Act
	_, err := svc.ListCategories(ctx)

	// Assert
	if !errors.Is(err, store.ErrStorage) {
		t.Errorf("ListCategories() error = %v, want %v", err, store.ErrStorage)
	}
}
