package fetch

import (
	"errors"
	"fmt"
)

var (
	// ErrLoadFailure matches every error returned by a Loader.
	ErrLoadFailure = errors.New("failed to load records")
	// ErrDecode marks payloads that are not a JSON array of objects.
	ErrDecode = errors.New("decoding records")
	// ErrPayloadTooLarge marks response bodies over the loader's size limit.
	ErrPayloadTooLarge = errors.New("payload too large")
)

// LoadError describes a failed load. StatusCode is set for non-2xx HTTP responses.
type LoadError struct {
	Source     string
	StatusCode int
	Err        error
}

// Error implements error.
func (e *LoadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s from %s: unexpected status %d", ErrLoadFailure, e.Source, e.StatusCode)
	}
	return fmt.Sprintf("%s from %s: %v", ErrLoadFailure, e.Source, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrLoadFailure) true for every LoadError.
func (e *LoadError) Is(target error) bool {
	return target == ErrLoadFailure
}

// IsStatus reports whether err is a LoadError caused by the given HTTP status.
func IsStatus(err error, status int) bool {
	var le *LoadError
	return errors.As(err, &le) && le.StatusCode == status
}
