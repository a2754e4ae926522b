// Package comments implements commenting on todos. Only the todo owner
// may write comments; reading is open, deletion is an admin action.
package comments

import (
	"context"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/todos"
)

// Repository defines the interface for comment storage.
type Repository interface {
	CreateComment(ctx context.Context, comment *domain.Comment) error
	ListByTodoWithUser(ctx context.Context, todoID string) ([]domain.Comment, error)
	DeleteCommentByID(ctx context.Context, id string) error
}

// TodoDirectory looks up todos owned by other modules.
type TodoDirectory interface {
	GetTodo(ctx context.Context, id string) (*domain.Todo, error)
}

// Service implements comment business logic.
type Service struct {
	repo  Repository
	todos TodoDirectory
}

// NewService creates a new comments service.
func NewService(repo Repository, todos TodoDirectory) *Service {
	return &Service{
		repo:  repo,
		todos: todos,
	}
}

// Create adds a comment to a todo on behalf of the principal. The
// principal must own the todo.
func (s *Service) Create(ctx context.Context, principal domain.Principal, todoID, contents string) (*domain.Comment, error) {
	todo, err := s.todos.GetTodo(ctx, todoID)
	if err != nil {
		return nil, err
	}

	if err := todos.RequireOwner(todo, principal.ID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		TodoID:   todo.ID,
		UserID:   principal.ID,
		Contents: contents,
	}
	if err := s.repo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	comment.User = &domain.User{
		ID:    principal.ID,
		Email: principal.Email,
		Role:  principal.Role,
	}
	return comment, nil
}

// List returns a todo's comments with authors attached. The todo must
// exist.
func (s *Service) List(ctx context.Context, todoID string) ([]domain.Comment, error) {
	todo, err := s.todos.GetTodo(ctx, todoID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByTodoWithUser(ctx, todo.ID)
}
