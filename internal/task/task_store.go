package task

import (
	"errors"
	"fmt"

	"github.com/tiwariParth/go-todo-cli/internal/models"
)

// ErrIDsExhausted is returned when the highest id in use is already models.MaxTaskID.
var ErrIDsExhausted = errors.New("no task ids left")

// TaskStore is an insertion ordered collection of tasks loaded for a single
// invocation. It is not safe for concurrent use.
type TaskStore struct {
	tasks []models.Task
}

// NewTaskStore wraps tasks. The slice is copied.
func NewTaskStore(tasks []models.Task) *TaskStore {
	ts := &TaskStore{tasks: make([]models.Task, 0, len(tasks)+1)}
	ts.tasks = append(ts.tasks, tasks...)
	return ts
}

// Tasks returns the collection in insertion order, never nil.
func (ts *TaskStore) Tasks() []models.Task {
	return ts.tasks
}

// NextID returns one past the highest id in the collection, starting at 1.
func (ts *TaskStore) NextID() (int, error) {
	maxID := 0
	for _, t := range ts.tasks {
		if t.ID > maxID {
			maxID = t.ID
		}
	}
	if maxID >= models.MaxTaskID {
		return 0, fmt.Errorf("%w: highest id is %d", ErrIDsExhausted, maxID)
	}
	return maxID + 1, nil
}

// AddTask appends a new HOLD task. Empty descriptions are allowed.
func (ts *TaskStore) AddTask(description string) (models.Task, error) {
	id, err := ts.NextID()
	if err != nil {
		return models.Task{}, err
	}

	task := models.NewTask(id, description)
	ts.tasks = append(ts.tasks, task)
	return task, nil
}

// DeleteTask removes every task with id and returns how many were removed.
func (ts *TaskStore) DeleteTask(id int) int {
	kept := ts.tasks[:0]
	for _, t := range ts.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(ts.tasks) - len(kept)
	ts.tasks = kept
	return removed
}

// EditTask applies the edit to the first task with id.
func (ts *TaskStore) EditTask(id int, edit Edit) EditResult {
	for i := range ts.tasks {
		if ts.tasks[i].ID == id {
			res := edit.apply(&ts.tasks[i])
			res.Found = true
			return res
		}
	}
	return EditResult{}
}
