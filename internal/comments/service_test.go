package comments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/todos"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	comments map[string]*domain.Comment
	deleted  []string
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		comments: make(map[string]*domain.Comment),
	}
}

func (m *mockRepository) CreateComment(_ context.Context, comment *domain.Comment) error {
	comment.ID = "comment-1"
	m.comments[comment.ID] = comment
	return nil
}

func (m *mockRepository) ListByTodoWithUser(_ context.Context, todoID string) ([]domain.Comment, error) {
	result := make([]domain.Comment, 0)
	for _, c := range m.comments {
		if c.TodoID == todoID {
			result = append(result, *c)
		}
	}
	return result, nil
}

func (m *mockRepository) DeleteCommentByID(_ context.Context, id string) error {
	delete(m.comments, id)
	m.deleted = append(m.deleted, id)
	return nil
}

// mockTodoDirectory implements TodoDirectory for testing.
type mockTodoDirectory struct {
	todos map[string]*domain.Todo
}

func (m *mockTodoDirectory) GetTodo(_ context.Context, id string) (*domain.Todo, error) {
	if t, ok := m.todos[id]; ok {
		return t, nil
	}
	return nil, todos.ErrTodoNotFound
}

func newTestService(repo *mockRepository) *Service {
	todoDir := &mockTodoDirectory{todos: map[string]*domain.Todo{
		"todo-1":   {ID: "todo-1", OwnerID: "owner-1"},
		"orphaned": {ID: "orphaned"},
	}}
	return NewService(repo, todoDir)
}

func ownerPrincipal() domain.Principal {
	return domain.Principal{ID: "owner-1", Email: "owner@example.com", Role: domain.RoleUser}
}

func TestCreate_OwnerCanComment(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	service := newTestService(repo)

	// Act
	comment, err := service.Create(context.Background(), ownerPrincipal(), "todo-1", "looks good")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "todo-1", comment.TodoID)
	assert.Equal(t, "owner-1", comment.UserID)
	assert.Equal(t, "looks good", comment.Contents)
	require.NotNil(t, comment.User)
	assert.Equal(t, "owner@example.com", comment.User.Email)
}

func TestCreate_NonOwnerRejected(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	service := newTestService(repo)
	stranger := domain.Principal{ID: "stranger", Role: domain.RoleUser}

	// Act
	comment, err := service.Create(context.Background(), stranger, "todo-1", "drive-by comment")

	// Assert
	assert.Nil(t, comment)
	assert.ErrorIs(t, err, todos.ErrNotOwner)
	assert.Empty(t, repo.comments, "nothing should be persisted")
}

func TestCreate_TodoNotFound(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	service := newTestService(repo)

	// Act
	comment, err := service.Create(context.Background(), ownerPrincipal(), "missing", "hello")

	// Assert
	assert.Nil(t, comment)
	assert.ErrorIs(t, err, todos.ErrTodoNotFound)
}

func TestCreate_OrphanedTodoIsInvalidState(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	service := newTestService(repo)

	// Act
	comment, err := service.Create(context.Background(), ownerPrincipal(), "orphaned", "hello")

	// Assert
	assert.Nil(t, comment)
	assert.ErrorIs(t, err, todos.ErrInvalidTodoState)
}

func TestList_Success(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	repo.comments["comment-1"] = &domain.Comment{ID: "comment-1", TodoID: "todo-1", Contents: "first"}
	repo.comments["comment-2"] = &domain.Comment{ID: "comment-2", TodoID: "other", Contents: "elsewhere"}
	service := newTestService(repo)

	// Act
	result, err := service.List(context.Background(), "todo-1")

	// Assert
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "first", result[0].Contents)
}

func TestList_TodoNotFound(t *testing.T) {
	// Arrange
	repo := newMockRepository()
	service := newTestService(repo)

	// Act
	result, err := service.List(context.Background(), "missing")

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, todos.ErrTodoNotFound)
}
