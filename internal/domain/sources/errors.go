package sources

import (
	"errors"
	"fmt"

	"github.com/talentscan/talentscan/internal/domain/model"
)

// ErrorKind classifies a fetch failure.
type ErrorKind string

// Fetch failure kinds.
const (
	KindTimeout     ErrorKind = "timeout"
	KindRateLimited ErrorKind = "rate_limited"
	KindNotFound    ErrorKind = "not_found"
	KindMalformed   ErrorKind = "malformed"
)

// FetchError reports a failed provider fetch. It is always recovered by the
// aggregator and recorded per-provider in the signal bundle, never
// propagated to the caller as a hard failure.
type FetchError struct {
	Provider model.Provider
	Kind     ErrorKind
	Cause    error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch %s: %s: %v", e.Provider, e.Kind, e.Cause)
	}
	return fmt.Sprintf("fetch %s: %s", e.Provider, e.Kind)
}

func (e *FetchError) Unwrap() error { return e.Cause }

// AsFetchError unwraps err into a *FetchError if possible.
func AsFetchError(err error) (*FetchError, bool) {
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// IsRateLimited reports whether err is a rate-limited fetch error.
func IsRateLimited(err error) bool {
	fe, ok := AsFetchError(err)
	return ok && fe.Kind == KindRateLimited
}

// IsTimeout reports whether err is a timed-out fetch error.
func IsTimeout(err error) bool {
	fe, ok := AsFetchError(err)
	return ok && fe.Kind == KindTimeout
}
