package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a uniqueness constraint is violated,
	// such as creating a second document with the same filename in a project
	ErrDuplicate = errors.New("duplicate entity")
)
