package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/openwares/catalog-api/internal/catalog"
	"github.com/openwares/catalog-api/internal/config"
	"github.com/openwares/catalog-api/internal/handler"
	"github.com/openwares/catalog-api/internal/model"
	"github.com/openwares/catalog-api/internal/server"
	"github.com/openwares/catalog-api/internal/store"
)

// newMemoryServer assembles the full server stack over the in-memory store.
func newMemoryServer(t *testing.T) *server.Server {
	t.Helper()
	return newServer(t, store.NewMemoryStore())
}

// newSQLiteServer assembles the full server stack over a temporary SQLite
// database.
func newSQLiteServer(t *testing.T) *server.Server {
	t.Helper()

	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore() unexpected error: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})

	return newServer(t, s)
}

func newServer(t *testing.T, s store.Store) *server.Server {
	t.Helper()

	cfg := &config.Config{
		ServerPort:      8080,
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
		MetricsEnabled:  false,
		StoreBackend:    config.BackendMemory,
	}

	return server.New(cfg, zap.NewNop(), catalog.NewService(s))
}

func doJSON(t *testing.T, srv *server.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	srv.Router().ServeHTTP(rr, req)
	return rr
}

func decodeItem(t *testing.T, rr *httptest.ResponseRecorder) model.Item {
	t.Helper()

	var response model.APIResponse[model.Item]
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode item response: %v", err)
	}
	return response.Data
}

func mustCreate(t *testing.T, srv *server.Server, category, name string) model.Item {
	t.Helper()

	rr := doJSON(t, srv, http.MethodPost, "/api/v1/items",
		handler.ItemRequest{Category: category, Name: name})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}
	return decodeItem(t, rr)
}
