package models

import "errors"

var (
	// ErrInvalidID marks a malformed (non-numeric or negative) route id.
	ErrInvalidID = errors.New("invalid id")
	// ErrNotFound marks a local entity that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyTitle marks a todo submitted without a title.
	ErrEmptyTitle = errors.New("empty title")
	// ErrStaleNavigation marks a request carrying an outdated navigation token.
	ErrStaleNavigation = errors.New("stale navigation token")
)
