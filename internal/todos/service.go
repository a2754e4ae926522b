// Package todos implements todo creation and browsing with a weather
// snapshot captured at creation time.
package todos

import (
	"context"

	"github.com/taskhive/taskhive/internal/domain"
)

// Repository defines the interface for todo storage.
type Repository interface {
	CreateTodo(ctx context.Context, todo *domain.Todo) error
	GetTodo(ctx context.Context, id string) (*domain.Todo, error)
	GetTodoWithOwner(ctx context.Context, id string) (*domain.Todo, error)
	ListTodos(ctx context.Context, limit, offset int) ([]domain.Todo, error)
	CountTodos(ctx context.Context) (int, error)
}

// WeatherClient fetches the weather description for the current day.
type WeatherClient interface {
	TodayWeather(ctx context.Context) (string, error)
}

// Service implements todo business logic.
type Service struct {
	repo    Repository
	weather WeatherClient
}

// NewService creates a new todos service.
func NewService(repo Repository, weather WeatherClient) *Service {
	return &Service{
		repo:    repo,
		weather: weather,
	}
}

// CreateInput holds data for creating a todo.
type CreateInput struct {
	Title    string
	Contents string
}

// Create stores a new todo owned by the principal. The weather
// snapshot is captured once at creation and never updated; a failed
// lookup aborts the creation.
func (s *Service) Create(ctx context.Context, principal domain.Principal, input CreateInput) (*domain.Todo, error) {
	weather, err := s.weather.TodayWeather(ctx)
	if err != nil {
		return nil, err
	}

	todo := &domain.Todo{
		Title:    input.Title,
		Contents: input.Contents,
		Weather:  weather,
		OwnerID:  principal.ID,
	}
	if err := s.repo.CreateTodo(ctx, todo); err != nil {
		return nil, err
	}

	todo.Owner = &domain.User{
		ID:    principal.ID,
		Email: principal.Email,
		Role:  principal.Role,
	}
	return todo, nil
}

// Get retrieves a single todo with its owner attached.
func (s *Service) Get(ctx context.Context, id string) (*domain.Todo, error) {
	return s.repo.GetTodoWithOwner(ctx, id)
}

// ListResult holds a page of todos plus the total count.
type ListResult struct {
	Todos []domain.Todo `json:"todos"`
	Total int           `json:"total"`
}

// List returns todos ordered by most recently modified first.
func (s *Service) List(ctx context.Context, limit, offset int) (*ListResult, error) {
	todos, err := s.repo.ListTodos(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountTodos(ctx)
	if err != nil {
		return nil, err
	}

	return &ListResult{Todos: todos, Total: total}, nil
}
