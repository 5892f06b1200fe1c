package store

import "errors"

var (
	// ErrNotFound is returned by Update/Delete when no record has the given
	// id. Lookups (Get) report absence with an ok bool instead.
	ErrNotFound = errors.New("not found")

	// ErrShowcaseExists is returned when adding a second showcase for a
	// project that already has one.
	ErrShowcaseExists = errors.New("project already has a showcase")
)
