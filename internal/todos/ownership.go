package todos

import "github.com/taskhive/taskhive/internal/domain"

// RequireOwner checks that userID owns the todo. A todo with no owner
// recorded is unmanageable and fails before any ownership comparison.
func RequireOwner(todo *domain.Todo, userID string) error {
	if todo.OwnerID == "" {
		return ErrInvalidTodoState
	}
	if todo.OwnerID != userID {
		return ErrNotOwner
	}
	return nil
}
