package api

import (
	"errors"
	"strings"
)

// Sentinel errors for request validation.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrMissingQuery = errors.New("missing query")
	ErrMissingIDs   = errors.New("missing candidate_ids")
)

// isNotFound translates upstream not-found errors to 404 without coupling
// the handler layer to every store's sentinel.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(strings.ToLower(err.Error()), "not found")
}
