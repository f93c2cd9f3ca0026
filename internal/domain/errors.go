package domain

import "errors"

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned on unique-constraint conflicts such as
	// following the same author twice.
	ErrAlreadyExists = errors.New("already exists")
)
