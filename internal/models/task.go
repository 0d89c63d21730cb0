package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

// Task ids are 32-bit signed integers, both on disk and on the command line.
const (
	MinTaskID = math.MinInt32
	MaxTaskID = math.MaxInt32
)

// ErrInvalidStatus is returned when a text does not name a known TaskStatus.
var ErrInvalidStatus = errors.New("invalid status")

// TaskStatus represents the current status of a task
type TaskStatus int

const (
	StatusHold TaskStatus = iota
	StatusProgress
	StatusDone
)

var statusNames = map[TaskStatus]string{
	StatusHold:     "HOLD",
	StatusProgress: "PROGRESS",
	StatusDone:     "DONE",
}

// AllowedStatuses lists the status names in declaration order.
const AllowedStatuses = "HOLD, PROGRESS, DONE"

// String returns the string representation of TaskStatus
func (s TaskStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseStatus matches text case-insensitively against the known statuses.
func ParseStatus(text string) (TaskStatus, error) {
	switch strings.ToUpper(text) {
	case "HOLD":
		return StatusHold, nil
	case "PROGRESS":
		return StatusProgress, nil
	case "DONE":
		return StatusDone, nil
	}
	return StatusHold, fmt.Errorf("%w '%s'. Allowed: %s", ErrInvalidStatus, text, AllowedStatuses)
}

// MarshalJSON writes the status as its upper case name.
func (s TaskStatus) MarshalJSON() ([]byte, error) {
	name, ok := statusNames[s]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}
	return json.Marshal(name)
}

// UnmarshalJSON only accepts the exact upper case names, the store format is strict.
func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("status must be a string: %w", err)
	}
	for status, n := range statusNames {
		if n == name {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("%w '%s'. Allowed: %s", ErrInvalidStatus, name, AllowedStatuses)
}

// Task represents a single todo item.
type Task struct {
	ID          int        `json:"id"`
	Description string     `json:"description"`
	Status      TaskStatus `json:"status"`
}

// NewTask creates a new task with default values
func NewTask(id int, description string) Task {
	return Task{
		ID:          id,
		Description: description,
		Status:      StatusHold,
	}
}
