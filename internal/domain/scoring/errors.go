package scoring

import "errors"

// Sentinel error kinds for this package.
var (
	// ErrInsufficientSignal is returned by ComposeStrict when zero
	// providers succeeded. The default Compose path never errors.
	ErrInsufficientSignal = errors.New("insufficient signal: no providers succeeded")
)
