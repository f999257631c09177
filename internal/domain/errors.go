package domain

import "errors"

var (
	ErrNotFound        = errors.New("link not found")
	ErrInvalidURL      = errors.New("invalid target url")
	ErrIDConflict      = errors.New("short id already exists")
	ErrIDExhausted     = errors.New("short id space exhausted")
	ErrUnauthenticated = errors.New("unauthenticated")

	ErrStoreTimeout = errors.New("store deadline exceeded")
	ErrStoreFailure = errors.New("store failure")
)
