package domain

import (
	"errors"
	"strings"
	"time"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ErrInvalidRole is returned when a role name does not map to a known role.
var ErrInvalidRole = errors.New("invalid role")

// ParseRole converts a role name into a Role.
// Role names arrive as open strings at the boundary; everything past
// this point works with the closed set only.
func ParseRole(name string) (Role, error) {
	switch Role(strings.ToLower(name)) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	}
	return "", ErrInvalidRole
}

// IsValid checks if the role is part of the closed set.
func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// HasPermission reports whether the role satisfies the minimum role.
// Admin covers everything; user covers only user.
func (r Role) HasPermission(min Role) bool {
	if r == RoleAdmin {
		return true
	}
	return r == min
}

// User is the root entity. Email is immutable after creation; the
// password hash and role are the only fields mutated afterwards.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
