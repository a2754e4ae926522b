package todos

import "errors"

// Domain errors for the todos module.
var (
	ErrTodoNotFound     = errors.New("todo not found")
	ErrNotOwner         = errors.New("only the todo owner may perform this action")
	ErrInvalidTodoState = errors.New("todo has no owner")
)
