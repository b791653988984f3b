package aggregate

import "errors"

// Sentinel error kinds for this package.
var (
	ErrNoCandidate = errors.New("candidate missing or has no id")
)
