package domain

import "errors"

var (
	// ErrRunNotFound is returned when no journaled run matches an id
	ErrRunNotFound = errors.New("run not found")
	// ErrAmbiguousRun is returned when a run id prefix matches several runs
	ErrAmbiguousRun = errors.New("run id prefix is ambiguous")
)
