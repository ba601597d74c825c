package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/openwares/catalog-api/internal/catalog"
	"github.com/openwares/catalog-api/internal/model"
	"github.com/openwares/catalog-api/internal/store"
)

// Version is the application version.
const Version = "1.0.0"

// ItemRequest is the request body for create and update operations.
// Both fields are required on update: the operation replaces the whole
// record, there is no partial patch.
type ItemRequest struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// RESTHandler handles REST API requests for catalog items.
type RESTHandler struct {
	service *catalog.Service
	logger  *zap.Logger
}

// NewRESTHandler creates a new RESTHandler instance.
func NewRESTHandler(svc *catalog.Service, logger *zap.Logger) *RESTHandler {
	return &RESTHandler{
		service: svc,
		logger:  logger,
	}
}

// RegisterRoutes registers the REST API routes with the router.
func (h *RESTHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/items", h.ListItems).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/items", h.CreateItem).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/items/{id}", h.GetItem).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/items/{id}", h.UpdateItem).Methods(http.MethodPut)
	router.HandleFunc("/api/v1/items/{id}", h.DeleteItem).Methods(http.MethodDelete)
	router.HandleFunc("/api/v1/categories", h.ListCategories).Methods(http.MethodGet)
}

// HealthCheck handles GET /health requests.
func (h *RESTHandler) HealthCheck(w http.ResponseWriter, _ *http.Request) {
	response := HealthResponse{
		Status:  "healthy",
		Version: Version,
	}
	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(response))
}

// ListItems handles GET /api/v1/items requests. The category query
// parameter is required; page and size fall back to defaults.
func (h *RESTHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	if !query.Has("category") {
		h.writeError(w, http.StatusBadRequest, "category query parameter is required")
		return
	}
	category := query.Get("category")

	page, err := queryInt(query.Get("page"), catalog.DefaultPage)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "page must be an integer")
		return
	}

	size, err := queryInt(query.Get("size"), catalog.DefaultSize)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "size must be an integer")
		return
	}

	result, err := h.service.ListByCategory(ctx, category, page, size)
	if err != nil {
		h.handleServiceError(w, err, "list items")
		return
	}

	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(result))
}

// ListCategories handles GET /api/v1/categories requests.
func (h *RESTHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categories, err := h.service.ListCategories(ctx)
	if err != nil {
		h.handleServiceError(w, err, "list categories")
		return
	}

	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(categories))
}

// GetItem handles GET /api/v1/items/{id} requests.
func (h *RESTHandler) GetItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	item, err := h.service.GetByID(ctx, id)
	if err != nil {
		h.handleServiceError(w, err, "get item")
		return
	}

	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(item))
}

// CreateItem handles POST /api/v1/items requests.
func (h *RESTHandler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.Create(ctx, input.Category, input.Name)
	if err != nil {
		h.handleServiceError(w, err, "create item")
		return
	}

	h.writeJSON(w, http.StatusCreated, model.NewSuccessResponse(item))
}

// UpdateItem handles PUT /api/v1/items/{id} requests.
func (h *RESTHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var input ItemRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid request body", zap.Error(err))
		h.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.service.Update(ctx, id, input.Category, input.Name)
	if err != nil {
		h.handleServiceError(w, err, "update item")
		return
	}

	h.writeJSON(w, http.StatusOK, model.NewSuccessResponse(item))
}

// DeleteItem handles DELETE /api/v1/items/{id} requests.
func (h *RESTHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(ctx, id); err != nil {
		h.handleServiceError(w, err, "delete item")
		return
	}

	h.writeJSON(w, http.StatusNoContent, nil)
}

// pathID extracts the integer item id from the request path, writing a
// 400 response on malformed input.
func (h *RESTHandler) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	vars := mux.Vars(r)

	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid item ID")
		return 0, false
	}

	return id, true
}

// handleServiceError maps service errors to HTTP responses.
func (h *RESTHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		h.writeError(w, http.StatusNotFound, "item not found")
	case errors.Is(err, catalog.ErrInvalidArgument):
		h.writeError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("catalog operation failed", zap.String("operation", operation), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// queryInt parses an optional integer query parameter.
func queryInt(val string, def int) (int, error) {
	if val == "" {
		return def, nil
	}
	return strconv.Atoi(val)
}

// writeJSON writes a JSON response with the given status code.
func (h *RESTHandler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes an error response with the given status code and message.
func (h *RESTHandler) writeError(w http.ResponseWriter, status int, message string) {
	response := model.ErrorResponse{
		Code:    status,
		Message: message,
	}
	h.writeJSON(w, status, response)
}
