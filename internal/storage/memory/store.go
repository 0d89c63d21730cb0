package memory

import (
	"context"

	"github.com/tiwariParth/go-todo-cli/internal/models"
)

// MemoryStore implements the storage.Storage interface using in-memory storage
type MemoryStore struct {
	tasks []models.Task
	saves int
}

// NewMemoryStore creates a new instance of MemoryStore seeded with tasks.
func NewMemoryStore(tasks ...models.Task) *MemoryStore {
	return &MemoryStore{tasks: copyTasks(tasks)}
}

// Location names the store in messages.
func (m *MemoryStore) Location() string {
	return "memory"
}

// Load returns a copy of the stored tasks.
func (m *MemoryStore) Load(ctx context.Context) ([]models.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return copyTasks(m.tasks), nil
}

// Save replaces the stored tasks with a copy of tasks.
func (m *MemoryStore) Save(ctx context.Context, tasks []models.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.tasks = copyTasks(tasks)
	m.saves++
	return nil
}

// Saves returns how many times Save succeeded.
func (m *MemoryStore) Saves() int {
	return m.saves
}

func copyTasks(tasks []models.Task) []models.Task {
	out := make([]models.Task, len(tasks))
	copy(out, tasks)
	return out
}
