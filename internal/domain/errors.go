package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates the backend rejected the configured credentials.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrTransport wraps network and backend protocol failures.
	ErrTransport = errors.New("transport error")
	// ErrValidation indicates malformed caller input.
	ErrValidation = errors.New("validation failed")
	// ErrConfig indicates required configuration is missing.
	ErrConfig = errors.New("configuration error")
)
