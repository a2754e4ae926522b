package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/identity"
	"github.com/taskhive/taskhive/internal/pkg/httputil"
)

// Handler handles HTTP requests for the admin module.
type Handler struct {
	service   *Service
	validator *validator.Validate
}

// NewHandler creates a new admin handler.
func NewHandler(service *Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// RegisterRoutes registers moderation routes. The caller mounts these
// behind admin role middleware.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Patch("/users/{userID}/role", h.ChangeRole)
	r.Delete("/comments/{commentID}", h.DeleteComment)
}

// ChangeRoleRequest represents the request body for changing a role.
type ChangeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// ChangeRole handles PATCH /admin/users/{userID}/role.
func (h *Handler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	principal, ok := httputil.GetPrincipal(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req ChangeRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.Error(w, http.StatusBadRequest, "invalid json")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		httputil.ValidationError(w, err)
		return
	}

	user, err := h.service.ChangeRole(r.Context(), principal, r.RequestURI, chi.URLParam(r, "userID"), req.Role)
	if err != nil {
		httputil.HandleError(r.Context(), w, err, []httputil.ErrorMapping{
			{Error: domain.ErrInvalidRole, Status: http.StatusBadRequest},
			{Error: identity.ErrUserNotFound, Status: http.StatusNotFound},
		})
		return
	}

	httputil.Success(w, http.StatusOK, user)
}

// DeleteComment handles DELETE /admin/comments/{commentID}.
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	principal, ok := httputil.GetPrincipal(r.Context())
	if !ok {
		httputil.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	err := h.service.DeleteComment(r.Context(), principal, r.RequestURI, chi.URLParam(r, "commentID"))
	if err != nil {
		httputil.HandleError(r.Context(), w, err, nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
