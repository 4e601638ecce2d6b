package document

import "errors"

var (
	// ErrDuplicateFilename indicates the (project, filename) pair already exists.
	ErrDuplicateFilename = errors.New("document already exists")
	// ErrInvalidInput indicates invalid document input.
	ErrInvalidInput = errors.New("invalid document input")
)
