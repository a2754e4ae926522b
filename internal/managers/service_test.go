package managers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskhive/taskhive/internal/domain"
	"github.com/taskhive/taskhive/internal/identity"
	"github.com/taskhive/taskhive/internal/todos"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	managers map[string]*domain.Manager
	nextID   string
	deleted  []string
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		managers: make(map[string]*domain.Manager),
		nextID:   "manager-1",
	}
}

func (m *mockRepository) CreateManager(_ context.Context, manager *domain.Manager) error {
	manager.ID = m.nextID
	m.managers[manager.ID] = manager
	return nil
}

func (m *mockRepository) GetManager(_ context.Context, id string) (*domain.Manager, error) {
	if mgr, ok := m.managers[id]; ok {
		return mgr, nil
	}
	return nil, ErrManagerNotFound
}

func (m *mockRepository) ListByTodoWithUser(_ context.Context, todoID string) ([]domain.Manager, error) {
	result := make([]domain.Manager, 0)
	for _, mgr := range m.managers {
		if mgr.TodoID == todoID {
			result = append(result, *mgr)
		}
	}
	return result, nil
}

func (m *mockRepository) DeleteManager(_ context.Context, id string) error {
	if _, ok := m.managers[id]; !ok {
		return ErrManagerNotFound
	}
	delete(m.managers, id)
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

// mockUserDirectory implements UserDirectory for testing.
type mockUserDirectory struct {
	users map[string]*domain.User
}

func (m *mockUserDirectory) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, identity.ErrUserNotFound
}

type fixture struct {
	repo    *mockRepository
	service *Service
}

// newFixture seeds a todo owned by owner-1 and two users.
func newFixture() *fixture {
	repo := newMockRepository()
	todoDir := &mockTodoDirectory{todos: map[string]*domain.Todo{
		"todo-1":    {ID: "todo-1", OwnerID: "owner-1"},
		"todo-2":    {ID: "todo-2", OwnerID: "owner-1"},
		"orphaned":  {ID: "orphaned"},
		"todo-else": {ID: "todo-else", OwnerID: "other-owner"},
	}}
	userDir := &mockUserDirectory{users: map[string]*domain.User{
		"owner-1":      {ID: "owner-1", Email: "owner@example.com"},
		"collaborator": {ID: "collaborator", Email: "collab@example.com"},
	}}
	return &fixture{
		repo:    repo,
		service: NewService(repo, todoDir, userDir),
	}
}

func ownerPrincipal() domain.Principal {
	return domain.Principal{ID: "owner-1", Email: "owner@example.com", Role: domain.RoleUser}
}

func TestAssign_Success(t *testing.T) {
	// Arrange
	f := newFixture()

	// Act
	manager, err := f.service.Assign(context.Background(), ownerPrincipal(), "todo-1", "collaborator")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "todo-1", manager.TodoID)
	assert.Equal(t, "collaborator", manager.UserID)
	require.NotNil(t, manager.User)
	assert.Equal(t, "collab@example.com", manager.User.Email)
}

func TestAssign_TodoNotFound(t *testing.T) {
	// Arrange
	f := newFixture()

	// Act
	manager, err := f.service.Assign(context.Background(), ownerPrincipal(), "missing", "collaborator")

	// Assert
	assert.Nil(t, manager)
	assert.ErrorIs(t, err, todos.ErrTodoNotFound)
}

func TestAssign_NotOwner(t *testing.T) {
	// Arrange
	f := newFixture()
	intruder := domain.Principal{ID: "collaborator", Role: domain.RoleUser}

	// Act
	manager, err := f.service.Assign(context.Background(), intruder, "todo-1", "collaborator")

	// Assert
	assert.Nil(t, manager)
	assert.ErrorIs(t, err, todos.ErrNotOwner)
}

func TestAssign_OrphanedTodoIsInvalidState(t *testing.T) {
	// Arrange
	f := newFixture()

	// Act
	manager, err := f.service.Assign(context.Background(), ownerPrincipal(), "orphaned", "collaborator")

	// Assert
	assert.Nil(t, manager)
	assert.ErrorIs(t, err, todos.ErrInvalidTodoState)
}

func TestAssign_CandidateNotFound(t *testing.T) {
	// Arrange
	f := newFixture()

	// Act
	manager, err := f.service.Assign(context.Background(), ownerPrincipal(), "todo-1", "ghost")

	// Assert
	assert.Nil(t, manager)
	assert.ErrorIs(t, err, identity.ErrUserNotFound)
}

func TestAssign_OwnerCannotManageOwnTodo(t *testing.T) {
	// Arrange
	f := newFixture()

	// Act
	manager, err := f.service.Assign(context.Background(), ownerPrincipal(), "todo-1", "owner-1")

	// Assert
	assert.Nil(t, manager)
	assert.ErrorIs(t, err, ErrSelfAssignment)
	assert.Empty(t, f.repo.managers, "no record should be created")
}

func TestList_Success(t *testing.T) {
	// Arrange
	f := newFixture()
	f.repo.managers["manager-1"] = &domain.Manager{ID: "manager-1", TodoID: "todo-1", UserID: "collaborator"}
	f.repo.managers["manager-2"] = &domain.Manager{ID: "manager-2", TodoID: "todo-2", UserID: "collaborator"}

	// Act
	result, err := f.service.List(context.Background(), "todo-1")

	// Assert
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "manager-1", result[0].ID)
}

func TestList_TodoNotFound(t *testing.T) {
	// Arrange
	f := newFixture()

	// Act
	result, err := f.service.List(context.Background(), "missing")

	// Assert
	assert.Nil(t, result)
	assert.ErrorIs(t, err, todos.ErrTodoNotFound)
}

func TestRemove_Success(t *testing.T) {
	// Arrange
	f := newFixture()
	f.repo.managers["manager-1"] = &domain.Manager{ID: "manager-1", TodoID: "todo-1", UserID: "collaborator"}

	// Act
	err := f.service.Remove(context.Background(), ownerPrincipal(), "todo-1", "manager-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, []string{"manager-1"}, f.repo.deleted)
}

func TestRemove_CallerNotFound(t *testing.T) {
	// Arrange
	f := newFixture()
	ghost := domain.Principal{ID: "ghost", Role: domain.RoleUser}

	// Act
	err := f.service.Remove(context.Background(), ghost, "todo-1", "manager-1")

	// Assert
	assert.ErrorIs(t, err, identity.ErrUserNotFound)
}

func TestRemove_TodoNotFound(t *testing.T) {
	// Arrange
	f := newFixture()

	// Act
	err := f.service.Remove(context.Background(), ownerPrincipal(), "missing", "manager-1")

	// Assert
	assert.ErrorIs(t, err, todos.ErrTodoNotFound)
}

func TestRemove_NotOwner(t *testing.T) {
	// Arrange
	f := newFixture()
	f.repo.managers["manager-1"] = &domain.Manager{ID: "manager-1", TodoID: "todo-else", UserID: "owner-1"}
	collaborator := domain.Principal{ID: "collaborator", Role: domain.RoleUser}

	// Act
	err := f.service.Remove(context.Background(), collaborator, "todo-else", "manager-1")

	// Assert
	assert.ErrorIs(t, err, todos.ErrNotOwner)
	assert.Empty(t, f.repo.deleted, "record must survive")
}

func TestRemove_ManagerNotFound(t *testing.T) {
	// Arrange
	f := newFixture()

	// Act
	err := f.service.Remove(context.Background(), ownerPrincipal(), "todo-1", "missing")

	// Assert
	assert.ErrorIs(t, err, ErrManagerNotFound)
}

func TestRemove_ManagerBelongsToDifferentTodo(t *testing.T) {
	// Arrange — manager record exists but hangs off todo-2
	f := newFixture()
	f.repo.managers["manager-1"] = &domain.Manager{ID: "manager-1", TodoID: "todo-2", UserID: "collaborator"}

	// Act
	err := f.service.Remove(context.Background(), ownerPrincipal(), "todo-1", "manager-1")

	// Assert
	assert.ErrorIs(t, err, ErrManagerMismatch)
	assert.Empty(t, f.repo.deleted, "record must survive")
}
