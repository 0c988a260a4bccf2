package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrEmptyTask is returned when a task payload is missing. JSON null is a value.
var ErrEmptyTask = fmt.Errorf("%w: task cannot be empty", ErrValidation)

// Task is an arbitrary client-supplied JSON value. It is serialized exactly once,
// when it is enqueued, and the serialized bytes are what the worker forwards.
type Task struct {
	payload json.RawMessage
}

// NewTask validates raw as JSON and returns a Task holding its compact form.
func NewTask(raw json.RawMessage) (*Task, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, ErrEmptyTask
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, trimmed); err != nil {
		return nil, fmt.Errorf("%w: task is not valid JSON: %v", ErrInvalidFormat, err)
	}

	return &Task{payload: buf.Bytes()}, nil
}

// Bytes returns the serialized task.
func (t *Task) Bytes() []byte {
	return t.payload
}

// ParseTask checks that data popped from a queue is a well-formed serialized task.
func ParseTask(data []byte) (*Task, error) {
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: queued item is not valid JSON", ErrInvalidFormat)
	}
	return &Task{payload: data}, nil
}
