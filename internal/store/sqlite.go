package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/openwares/catalog-api/internal/model"
)

// SQLiteStore implements Store using SQLite via the pure-Go
// modernc.org/sqlite driver. The schema is created automatically and the
// items table uses AUTOINCREMENT so ids are never reused after deletion.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at the given path.
// Parent directories are created if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// A single connection serializes writers, so racing mutations on one
	// id commit in some order instead of failing with SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// createSchema creates the items table if it does not exist.
func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS items (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			category TEXT NOT NULL,
			name     TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_items_category ON items(category);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Insert persists a new item and returns the stored snapshot.
func (s *SQLiteStore) Insert(ctx context.Context, category, name string) (*model.Item, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO items (category, name) VALUES (?, ?)", category, name)
	if err != nil {
		return nil, fmt.Errorf("%w: insert item: %v", ErrStorage, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("%w: insert item id: %v", ErrStorage, err)
	}

	return &model.Item{ID: id, Category: category, Name: name}, nil
}

// GetByID retrieves an item by its id.
func (s *SQLiteStore) GetByID(ctx context.Context, id int64) (*model.Item, error) {
	var item model.Item
	err := s.db.QueryRowContext(ctx,
		"SELECT id, category, name FROM items WHERE id = ?", id).
		Scan(&item.ID, &item.Category, &item.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: get item: %v", ErrStorage, err)
	}

	return &item, nil
}

// Update replaces category and name of an existing item. The single
// UPDATE statement is atomic, so a racing delete observes either the old
// or the new record.
func (s *SQLiteStore) Update(ctx context.Context, id int64, category, name string) (*model.Item, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE items SET category = ?, name = ? WHERE id = ?", category, name, id)
	if err != nil {
		return nil, fmt.Errorf("%w: update item: %v", ErrStorage, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: update item rows: %v", ErrStorage, err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	return &model.Item{ID: id, Category: category, Name: name}, nil
}

// Delete removes an item by its id.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("%w: delete item: %v", ErrStorage, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete item rows: %v", ErrStorage, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// ListByCategory returns one page of items matching the category exactly,
// ordered ascending by category with id as tie-breaker.
func (s *SQLiteStore) ListByCategory(ctx context.Context, category string, page, size int) (*model.ItemPage, error) {
	var total int64
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM items WHERE category = ?", category).Scan(&total)
	if err != nil {
		return nil, fmt.Errorf("%w: count items: %v", ErrStorage, err)
	}

	// Pages at or beyond the last page are empty. Checking against the
	// page count before computing the offset also keeps a huge page
	// number from overflowing the multiplication into a negative OFFSET,
	// which SQLite would treat as zero.
	if page >= totalPages(total, size) {
		return &model.ItemPage{
			Items:         []model.Item{},
			TotalPages:    totalPages(total, size),
			TotalElements: total,
			Page:          page,
		}, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, category, name FROM items
		 WHERE category = ?
		 ORDER BY category ASC, id ASC
		 LIMIT ? OFFSET ?`,
		category, size, page*size)
	if err != nil {
		return nil, fmt.Errorf("%w: list items: %v", ErrStorage, err)
	}
	defer rows.Close()

	items := make([]model.Item, 0, size)
	for rows.Next() {
		var item model.Item
		if err := rows.Scan(&item.ID, &item.Category, &item.Name); err != nil {
			return nil, fmt.Errorf("%w: scan item: %v", ErrStorage, err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list items: %v", ErrStorage, err)
	}

	return &model.ItemPage{
		Items:         items,
		TotalPages:    totalPages(total, size),
		TotalElements: total,
		Page:          page,
	}, nil
}

// DistinctCategories returns the distinct category values in ascending order.
func (s *SQLiteStore) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT DISTINCT category FROM items ORDER BY category ASC")
	if err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", ErrStorage, err)
	}
	defer rows.Close()

	categories := make([]string, 0)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, fmt.Errorf("%w: scan category: %v", ErrStorage, err)
		}
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list categories: %v", ErrStorage, err)
	}

	return categories, nil
}
