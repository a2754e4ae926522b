// Package postgres provides PostgreSQL implementation of the managers repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/managers"
)

// Repository implements the managers.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateManager inserts a new manager record.
func (r *Repository) CreateManager(ctx context.Context, manager *domain.Manager) error {
	manager.ID = uuid.NewString()

	query := `
		INSERT INTO managers (id, todo_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		manager.ID,
		manager.TodoID,
		manager.UserID,
	).Scan(&manager.CreatedAt)

	if err != nil {
		return fmt.Errorf("create manager: %w", err)
	}
	return nil
}

// GetManager retrieves a manager record by its id.
func (r *Repository) GetManager(ctx context.Context, id string) (*domain.Manager, error) {
	query := `
		SELECT id, todo_id, user_id, created_at
		FROM managers
		WHERE id = $1
	`
	var manager domain.Manager
	err := r.db.QueryRow(ctx, query, id).Scan(
		&manager.ID,
		&manager.TodoID,
		&manager.UserID,
		&manager.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, managers.ErrManagerNotFound
		}
		return nil, fmt.Errorf("get manager: %w", err)
	}

	return &manager, nil
}

// ListByTodoWithUser retrieves a todo's managers with their users joined.
func (r *Repository) ListByTodoWithUser(ctx context.Context, todoID string) ([]domain.Manager, error) {
	query := `
		SELECT m.id, m.todo_id, m.user_id, m.created_at,
		       u.id, u.email, u.role, u.created_at, u.updated_at
		FROM managers m
		JOIN users u ON u.id = m.user_id
		WHERE m.todo_id = $1
		ORDER BY m.created_at
	`
	rows, err := r.db.Query(ctx, query, todoID)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Manager, 0)
	for rows.Next() {
		var manager domain.Manager
		var user domain.User
		err := rows.Scan(
			&manager.ID,
			&manager.TodoID,
			&manager.UserID,
			&manager.CreatedAt,
			&user.ID,
			&user.Email,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan manager: %w", err)
		}
		manager.User = &user
		result = append(result, manager)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate managers: %w", err)
	}
	return result, nil
}

// DeleteManager removes a manager record by its id.
func (r *Repository) DeleteManager(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM managers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete manager: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return managers.ErrManagerNotFound
	}
	return nil
}
