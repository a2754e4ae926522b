// Package admin implements administrator moderation: changing user
// roles and deleting comments. Every moderation call is audited before
// it mutates anything.
package admin

import (
	"context"
	"time"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/pkg/ctxlog"
)

// UserStore exposes the identity operations moderation needs.
type UserStore interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
}

// CommentStore exposes the comment operations moderation needs.
type CommentStore interface {
	DeleteCommentByID(ctx context.Context, id string) error
}

// AuditEntry records who performed a moderation action and where.
type AuditEntry struct {
	AdminID    string    `json:"admin_id"`
	Timestamp  time.Time `json:"timestamp"`
	RequestURI string    `json:"request_uri"`
}

// AuditHook receives an entry before each moderation action runs.
// A failing hook does not block the action.
type AuditHook func(ctx context.Context, entry AuditEntry)

// Service implements moderation business logic.
type Service struct {
	users    UserStore
	comments CommentStore
	audit    AuditHook
}

// NewService creates a new admin service. A nil audit hook disables
// auditing.
func NewService(users UserStore, comments CommentStore, audit AuditHook) *Service {
	return &Service{
		users:    users,
		comments: comments,
		audit:    audit,
	}
}

func (s *Service) recordAudit(ctx context.Context, principal domain.Principal, requestURI string) {
	if s.audit == nil {
		return
	}
	s.audit(ctx, AuditEntry{
		AdminID:    principal.ID,
		Timestamp:  time.Now().UTC(),
		RequestURI: requestURI,
	})
}

// ChangeRole sets a user's role. The audit entry is recorded before
// the lookup so even failed attempts leave a trace.
func (s *Service) ChangeRole(ctx context.Context, principal domain.Principal, requestURI, userID, roleName string) (*domain.User, error) {
	s.recordAudit(ctx, principal, requestURI)

	role, err := domain.ParseRole(roleName)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	if err := s.users.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	ctxlog.FromContext(ctx).Info("user role changed",
		"user_id", user.ID, "role", role, "admin_id", principal.ID)
	return user, nil
}

// DeleteComment removes a comment. Deletion of an absent comment
// succeeds; the audit trail still records the attempt.
func (s *Service) DeleteComment(ctx context.Context, principal domain.Principal, requestURI, commentID string) error {
	s.recordAudit(ctx, principal, requestURI)

	if err := s.comments.DeleteCommentByID(ctx, commentID); err != nil {
		return err
	}

	ctxlog.FromContext(ctx).Info("comment deleted",
		"comment_id", commentID, "admin_id", principal.ID)
	return nil
}
