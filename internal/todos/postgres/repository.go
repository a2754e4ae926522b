// Package postgres provides PostgreSQL implementation of the todos repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/todos"
)

// Repository implements the todos.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateTodo inserts a new todo and fills in generated fields.
func (r *Repository) CreateTodo(ctx context.Context, todo *domain.Todo) error {
	todo.ID = uuid.NewString()

	query := `
		INSERT INTO todos (id, title, contents, weather, owner_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, modified_at
	`
	err := r.db.QueryRow(ctx, query,
		todo.ID,
		todo.Title,
		todo.Contents,
		todo.Weather,
		todo.OwnerID,
	).Scan(&todo.CreatedAt, &todo.ModifiedAt)

	if err != nil {
		return fmt.Errorf("create todo: %w", err)
	}
	return nil
}

// GetTodo retrieves a todo by its id without joining the owner.
func (r *Repository) GetTodo(ctx context.Context, id string) (*domain.Todo, error) {
	query := `
		SELECT id, title, contents, weather, owner_id, created_at, modified_at
		FROM todos
		WHERE id = $1
	`
	var todo domain.Todo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Contents,
		&todo.Weather,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.ModifiedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, todos.ErrTodoNotFound
		}
		return nil, fmt.Errorf("get todo: %w", err)
	}

	return &todo, nil
}

// GetTodoWithOwner retrieves a todo with its owner eagerly joined.
func (r *Repository) GetTodoWithOwner(ctx context.Context, id string) (*domain.Todo, error) {
	query := `
		SELECT t.id, t.title, t.contents, t.weather, t.owner_id, t.created_at, t.modified_at,
		       u.id, u.email, u.role, u.created_at, u.updated_at
		FROM todos t
		JOIN users u ON u.id = t.owner_id
		WHERE t.id = $1
	`
	var todo domain.Todo
	var owner domain.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&todo.ID,
		&todo.Title,
		&todo.Contents,
		&todo.Weather,
		&todo.OwnerID,
		&todo.CreatedAt,
		&todo.ModifiedAt,
		&owner.ID,
		&owner.Email,
		&owner.Role,
		&owner.CreatedAt,
		&owner.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, todos.ErrTodoNotFound
		}
		return nil, fmt.Errorf("get todo with owner: %w", err)
	}

	todo.Owner = &owner
	return &todo, nil
}

// ListTodos retrieves todos with owners, newest modified first.
func (r *Repository) ListTodos(ctx context.Context, limit, offset int) ([]domain.Todo, error) {
	query := `
		SELECT t.id, t.title, t.contents, t.weather, t.owner_id, t.created_at, t.modified_at,
		       u.id, u.email, u.role, u.created_at, u.updated_at
		FROM todos t
		JOIN users u ON u.id = t.owner_id
		ORDER BY t.modified_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Todo, 0)
	for rows.Next() {
		var todo domain.Todo
		var owner domain.User
		err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Contents,
			&todo.Weather,
			&todo.OwnerID,
			&todo.CreatedAt,
			&todo.ModifiedAt,
			&owner.ID,
			&owner.Email,
			&owner.Role,
			&owner.CreatedAt,
			&owner.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todo.Owner = &owner
		result = append(result, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate todos: %w", err)
	}
	return result, nil
}

// CountTodos returns the total number of todos.
func (r *Repository) CountTodos(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM todos`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count todos: %w", err)
	}
	return count, nil
}
