package common

import "errors"

var (
	// ErrValidation marks user-input failures caught before any network
	// call. No state is mutated when it is returned.
	ErrValidation = errors.New("validation error")

	// ErrEmptySessionID is returned when an exchange is attempted with a
	// blank one-time session identifier.
	ErrEmptySessionID = errors.New("empty session id")
)
