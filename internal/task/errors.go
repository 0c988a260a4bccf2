package task

import "errors"

// ErrForward wraps a failure to publish a popped task downstream.
var ErrForward = errors.New("failed to forward task")
