package todos

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/taskhive/taskhive/internal/pkg/httputil"
)

// Pagination constants.
const (
	DefaultListLimit = 10
	MaxListLimit     = 100
)

// Handler handles HTTP requests for the todos module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new todos handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers routes that require authentication.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/todos", func(r chi.Router) {
		r.Post("/", h.Create)
	})
}

// RegisterPublicRoutes registers routes readable without a token.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Route("/todos", func(r chi.Router) {
		r.Get("/", h.List)
		r.Get("/{todoID}", h.Get)
	})
}

// CreateRequest represents the request body for creating a todo.
type CreateRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=255"`
	Contents string `json:"contents" validate:"max=4000"`
}

// Create handles POST /todos.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := httputil.GetPrincipal(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	todo, err := h.service.Create(r.Context(), principal, CreateInput(req))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.Success(w, http.StatusCreated, todo)
}

// Get handles GET /todos/{todoID}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	todo, err := h.service.Get(r.Context(), chi.URLParam(r, "todoID"))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: ErrTodoNotFound, Status: http.StatusNotFound},
		})
		return
	}

	httputil.Success(w, http.StatusOK, todo)
}

// List handles GET /todos with page/size query parameters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := DefaultListLimit
	if v := r.URL.Query().Get("size"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = min(n, MaxListLimit)
		}
	}

	page := 1
	if v := r.URL.Query().Get("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	result, err := h.service.List(r.Context(), limit, (page-1)*limit)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	httputil.Success(w, http.StatusOK, result)
}
