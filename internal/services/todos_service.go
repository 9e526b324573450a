package services

import (
	"strings"
	"sync"

	"dirfav/internal/models"
)

type OwnerTodosServiceInterface interface {
	List() []models.Todo
	Add(title string) (models.Todo, error)
	Toggle(todoID int) (models.Todo, error)
	Delete(todoID int) error
}

// OwnerTodosService holds the owner profile's todo list. In-memory only:
// the list resets to the seed data on restart. Remote users' todos are
// read-only and never pass through here.
type OwnerTodosService struct {
	mu    sync.Mutex
	todos []models.Todo
}

func NewOwnerTodosService() OwnerTodosServiceInterface {
	return &OwnerTodosService{todos: OwnerTodos()}
}

func (ts *OwnerTodosService) List() []models.Todo {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	out := make([]models.Todo, len(ts.todos))
	copy(out, ts.todos)
	return out
}

// Add prepends a new open todo; the id is one past the current maximum.
func (ts *OwnerTodosService) Add(title string) (models.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Todo{}, models.ErrEmptyTitle
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()

	maxID := 0
	for _, t := range ts.todos {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	todo := models.Todo{
		ID:     maxID + 1,
		UserID: OwnerUserID,
		Title:  title,
	}
	ts.todos = append([]models.Todo{todo}, ts.todos...)
	return todo, nil
}

func (ts *OwnerTodosService) Toggle(todoID int) (models.Todo, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	for i := range ts.todos {
		if ts.todos[i].ID == todoID {
			ts.todos[i].Completed = !ts.todos[i].Completed
			return ts.todos[i], nil
		}
	}
	return models.Todo{}, models.ErrNotFound
}

func (ts *OwnerTodosService) Delete(todoID int) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	for i := range ts.todos {
		if ts.todos[i].ID == todoID {
			ts.todos = append(ts.todos[:i], ts.todos[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}
