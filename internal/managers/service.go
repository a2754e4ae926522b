// Package managers implements collaborator assignment on todos.
// Ownership and collaboration are disjoint: a todo's owner can never
// hold a manager record on the same todo.
package managers

import (
	"context"

	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/pkg/ctxlog"
	"github.com/taskhive/taskhive/internal/todos"
)

// Repository defines the interface for manager storage.
type Repository interface {
	CreateManager(ctx context.Context, manager *domain.Manager) error
	GetManager(ctx context.Context, id string) (*domain.Manager, error)
	ListByTodoWithUser(ctx context.Context, todoID string) ([]domain.Manager, error)
	DeleteManager(ctx context.Context, id string) error
}

// TodoDirectory looks up todos owned by other modules.
type TodoDirectory interface {
	GetTodo(ctx context.Context, id string) (*domain.Todo, error)
}

// UserDirectory looks up users owned by the identity module.
type UserDirectory interface {
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}

// Service implements manager assignment business logic.
type Service struct {
	repo  Repository
	todos TodoDirectory
	users UserDirectory
}

// NewService creates a new managers service.
func NewService(repo Repository, todos TodoDirectory, users UserDirectory) *Service {
	return &Service{
		repo:  repo,
		todos: todos,
		users: users,
	}
}

// Assign attaches userID as a manager on the todo. Only the todo owner
// may assign, and the owner cannot assign themselves.
func (s *Service) Assign(ctx context.Context, principal domain.Principal, todoID, userID string) (*domain.Manager, error) {
	todo, err := s.todos.GetTodo(ctx, todoID)
	if err != nil {
		return nil, err
	}

	if err := todos.RequireOwner(todo, principal.ID); err != nil {
		return nil, err
	}

	candidate, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if candidate.ID == todo.OwnerID {
		return nil, ErrSelfAssignment
	}

	manager := &domain.Manager{
		TodoID: todo.ID,
		UserID: candidate.ID,
	}
	if err := s.repo.CreateManager(ctx, manager); err != nil {
		return nil, err
	}

	manager.User = candidate
	ctxlog.FromContext(ctx).Info("manager assigned",
		"todo_id", todo.ID, "user_id", candidate.ID, "owner_id", principal.ID)
	return manager, nil
}

// List returns the managers of a todo with their users attached.
// The todo must exist.
func (s *Service) List(ctx context.Context, todoID string) ([]domain.Manager, error) {
	todo, err := s.todos.GetTodo(ctx, todoID)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByTodoWithUser(ctx, todo.ID)
}

// Remove deletes a manager record by its own id. The caller must be
// the todo owner and the record must belong to the named todo.
func (s *Service) Remove(ctx context.Context, principal domain.Principal, todoID, managerID string) error {
	caller, err := s.users.GetUserByID(ctx, principal.ID)
	if err != nil {
		return err
	}

	todo, err := s.todos.GetTodo(ctx, todoID)
	if err != nil {
		return err
	}

	if err := todos.RequireOwner(todo, caller.ID); err != nil {
		return err
	}

	manager, err := s.repo.GetManager(ctx, managerID)
	if err != nil {
		return err
	}

	if manager.TodoID != todo.ID {
		return ErrManagerMismatch
	}

	if err := s.repo.DeleteManager(ctx, manager.ID); err != nil {
		return err
	}

	ctxlog.FromContext(ctx).Info("manager removed",
		"todo_id", todo.ID, "manager_id", manager.ID, "owner_id", caller.ID)
	return nil
}
