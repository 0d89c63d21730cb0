package task

import (
	"github.com/tiwariParth/go-todo-cli/internal/models"
)

// Edit holds the optional fields of an edit request. A nil field was not given.
type Edit struct {
	Description *string
	Status      *string
}

// IsEmpty reports whether no field was given.
func (e Edit) IsEmpty() bool {
	return e.Description == nil && e.Status == nil
}

// EditResult describes what happened to each field of an edit.
type EditResult struct {
	Found bool

	DescriptionUpdated bool
	// DescriptionSkipped is set when an empty description was given.
	DescriptionSkipped bool

	StatusUpdated bool
	// StatusErr is the parse error of the given status, the rest of the edit still applies.
	StatusErr error

	Task models.Task
}

func (e Edit) apply(t *models.Task) EditResult {
	var res EditResult

	if e.Description != nil {
		if *e.Description != "" {
			t.Description = *e.Description
			res.DescriptionUpdated = true
		} else {
			res.DescriptionSkipped = true
		}
	}

	if e.Status != nil {
		status, err := models.ParseStatus(*e.Status)
		if err != nil {
			res.StatusErr = err
		} else {
			t.Status = status
			res.StatusUpdated = true
		}
	}

	res.Task = *t
	return res
}
