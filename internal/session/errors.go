package session

import "errors"

// Failure kinds surfaced by Load and Infer. Callers discriminate with
// errors.Is; the wrapped message carries the diagnostic.
var (
	// ErrLoadFailed covers a missing path, an unparsable model file, and
	// backend initialization failures. No session exists after it.
	ErrLoadFailed = errors.New("model load failed")

	// ErrNotLoaded is returned by Infer on a session that never loaded or
	// was closed.
	ErrNotLoaded = errors.New("model not loaded")

	// ErrInvalidInput is returned when the input shape or data fail
	// validation, before the backend is invoked.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInferenceFailed wraps backend execution errors on an otherwise
	// valid call. The session stays usable.
	ErrInferenceFailed = errors.New("inference failed")
)
