package project

import "errors"

var (
	// ErrInvalidInput indicates invalid project creation input.
	ErrInvalidInput = errors.New("invalid project input")
	// ErrInvalidType indicates an unsupported document type.
	ErrInvalidType = errors.New("invalid document type")
)
