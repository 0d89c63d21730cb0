package storage

import (
	"context"
	"errors"

	"github.com/tiwariParth/go-todo-cli/internal/models"
)

// Common errors that can be returned by any storage implementation
var (
	// ErrCorruptStore is returned when the store exists but can't be parsed as a task list.
	ErrCorruptStore = errors.New("corrupt task store")
	// ErrIO is returned when the store can't be opened, created or written.
	ErrIO = errors.New("task store io error")
	// ErrSerialization is returned when the task list can't be encoded.
	ErrSerialization = errors.New("task serialization error")
)

// Storage loads and saves the whole task collection at once.
type Storage interface {
	// Load returns the persisted tasks in insertion order. A store that
	// doesn't exist yet is an empty collection.
	Load(ctx context.Context) ([]models.Task, error)
	// Save replaces the persisted tasks with tasks.
	Save(ctx context.Context, tasks []models.Task) error
	// Location names where the tasks are stored, for user messages.
	Location() string
}
