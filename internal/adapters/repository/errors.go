package repository

import "errors"

var (
	// ErrNotFound is returned when a candidate is not in the index.
	ErrNotFound = errors.New("candidate not found in index")

	// ErrEmptyCandidateID is returned when a candidate ID is empty.
	ErrEmptyCandidateID = errors.New("candidate id is empty")
)
