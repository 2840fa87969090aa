package services

import "errors"

var (
	// ErrNotFound - a referenced course, assignment or enrollment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument - malformed date, empty required field and the like.
	ErrInvalidArgument = errors.New("invalid argument")
)
