package snapshot

import "errors"

// ErrNoCandidate is returned when a snapshot is requested without a
// resolvable candidate.
var ErrNoCandidate = errors.New("no candidate to snapshot")
