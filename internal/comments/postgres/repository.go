// Package postgres provides PostgreSQL implementation of the comments repository.
package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/taskhive/taskhive/internal/domain"
)

// Repository implements the comments.Repository interface using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateComment inserts a new comment.
func (r *Repository) CreateComment(ctx context.Context, comment *domain.Comment) error {
	comment.ID = uuid.NewString()

	query := `
		INSERT INTO comments (id, todo_id, user_id, contents)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`
	err := r.db.QueryRow(ctx, query,
		comment.ID,
		comment.TodoID,
		comment.UserID,
		comment.Contents,
	).Scan(&comment.CreatedAt)

	if err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

// ListByTodoWithUser retrieves a todo's comments with authors joined.
func (r *Repository) ListByTodoWithUser(ctx context.Context, todoID string) ([]domain.Comment, error) {
	query := `
		SELECT c.id, c.todo_id, c.user_id, c.contents, c.created_at,
		       u.id, u.email, u.role, u.created_at, u.updated_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.todo_id = $1
		ORDER BY c.created_at
	`
	rows, err := r.db.Query(ctx, query, todoID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Comment, 0)
	for rows.Next() {
		var comment domain.Comment
		var user domain.User
		err := rows.Scan(
			&comment.ID,
			&comment.TodoID,
			&comment.UserID,
			&comment.Contents,
			&comment.CreatedAt,
			&user.ID,
			&user.Email,
			&user.Role,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comment.User = &user
		result = append(result, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comments: %w", err)
	}
	return result, nil
}

// DeleteCommentByID removes a comment. Deleting an absent comment is
// not an error; moderation is idempotent.
func (r *Repository) DeleteCommentByID(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
