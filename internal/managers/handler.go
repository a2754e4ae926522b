package managers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/taskhive/taskhive/internal/identity"
	"github.com/taskhive/taskhive/internal/pkg/httputil"
	"github.com/taskhive/taskhive/internal/todos"
)

// Handler handles HTTP requests for the managers module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new managers handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers routes that require authentication.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/todos/{todoID}/managers", func(r chi.Router) {
		r.Post("/", h.Assign)
		r.Delete("/{managerID}", h.Remove)
	})
}

// RegisterPublicRoutes registers routes readable without a token.
func (h *Handler) RegisterPublicRoutes(r chi.Router) {
	r.Get("/todos/{todoID}/managers", h.List)
}

// AssignRequest represents the request body for assigning a manager.
type AssignRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// Assign handles POST /todos/{todoID}/managers.
func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	principal, ok := httputil.GetPrincipal(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	manager, err := h.service.Assign(r.Context(), principal, chi.URLParam(r, "todoID"), req.UserID)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: todos.ErrTodoNotFound, Status: http.StatusNotFound},
			{Error: identity.ErrUserNotFound, Status: http.StatusNotFound},
			{Error: todos.ErrNotOwner, Status: http.StatusForbidden},
			{Error: todos.ErrInvalidTodoState, Status: http.StatusBadRequest},
			{Error: ErrSelfAssignment, Status: http.StatusBadRequest},
		})
		return
	}

	httputil.Success(w, http.StatusCreated, manager)
}

// List handles GET /todos/{todoID}/managers.
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

// Remove handles DELETE /todos/{todoID}/managers/{managerID}.
func (h *Handler) Remove(w http.ResponseWriter, r *http.Request) {
	principal, ok := httputil.GetPrincipal(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	err := h.service.Remove(r.Context(), principal, chi.URLParam(r, "todoID"), chi.URLParam(r, "managerID"))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: todos.ErrTodoNotFound, Status: http.StatusNotFound},
			{Error: identity.ErrUserNotFound, Status: http.StatusNotFound},
			{Error: ErrManagerNotFound, Status: http.StatusNotFound},
			{Error: todos.ErrNotOwner, Status: http.StatusForbidden},
			{Error: todos.ErrInvalidTodoState, Status: http.StatusBadRequest},
			{Error: ErrManagerMismatch, Status: http.StatusBadRequest},
		})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
