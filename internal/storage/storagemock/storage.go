package storagemock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tiwariParth/go-todo-cli/internal/models"
)

// MockStorage is a testify mock of storage.Storage.
type MockStorage struct {
	mock.Mock
}

// Load provides a mock function.
func (m *MockStorage) Load(ctx context.Context) ([]models.Task, error) {
	args := m.Called(ctx)
	tasks, _ := args.Get(0).([]models.Task)
	return tasks, args.Error(1)
}

// Save provides a mock function.
func (m *MockStorage) Save(ctx context.Context, tasks []models.Task) error {
	args := m.Called(ctx, tasks)
	return args.Error(0)
}

// Location provides a mock function.
func (m *MockStorage) Location() string {
	args := m.Called()
	return args.String(0)
}
