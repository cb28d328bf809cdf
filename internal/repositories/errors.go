package repositories

import "errors"

var (
	// ErrNotFound is returned when an update targets a missing record
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when a create reuses an existing ID
	ErrDuplicateID = errors.New("duplicate id")
)
