package managers

import "errors"

// Domain errors for the managers module.
var (
	ErrManagerNotFound = errors.New("manager not found")
	ErrManagerMismatch = errors.New("manager does not belong to this todo")
	ErrSelfAssignment  = errors.New("todo owner cannot be assigned as its manager")
)
