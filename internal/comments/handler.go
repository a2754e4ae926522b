package comments

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/taskhive/taskhive/internal/pkg/httputil"
	"github.com/taskhive/taskhive/internal/todos"
)

// Handler handles HTTP requests for the comments module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new comments handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers routes that require authentication.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/todos/{todoID}/comments", h.Create)
}

// RegisterPublicRoutes registers routes readable without a token.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/todos/{todoID}/comments", h.List)
}

// CreateRequest represents the request body for creating a comment.
type CreateRequest struct {
	Contents string `json:"contents" validate:"required,min=1,max=4000"`
}

// Create handles POST /todos/{todoID}/comments.
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

	comment, err := h.service.Create(r.Context(), principal, chi.URLParam(r, "todoID"), req.Contents)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: todos.ErrTodoNotFound, Status: http.StatusNotFound},
			{Error: todos.ErrNotOwner, Status: http.StatusForbidden},
			{Error: todos.ErrInvalidTodoState, Status: http.StatusBadRequest},
		})
		return
	}

	httputil.Success(w, http.StatusCreated, comment)
}

// List handles GET /todos/{todoID}/comments.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), chi.URLParam(r, "todoID"))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: todos.ErrTodoNotFound, Status: http.StatusNotFound},
		})
		return
	}

	httputil.Success(w, http.StatusOK, result)
}
