package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrUnknownVertex    = errors.New("unknown vertex")
	ErrNoSuchEdge       = errors.New("no such edge")
	ErrInvalidInput     = errors.New("invalid input")
	ErrContradiction    = errors.New("contradiction")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrInvalidConfig    = errors.New("invalid configuration")
)
