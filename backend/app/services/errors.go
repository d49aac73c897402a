package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrEmailTaken         = errors.New("Email already exists")
	ErrUsernameTaken      = errors.New("Username already exists")
	ErrDuplicateUser      = errors.New("Username or email already exists")
	ErrGoalNotFound       = errors.New("Goal not found")
	ErrProgressNotFound   = errors.New("Progress not found")
)

// ValidationError carries the field-level message surfaced to the client
// with a 400.
type ValidationError struct{ msg string }

func (e *ValidationError) Error() string { return e.msg }

func invalid(msg string) error { return &ValidationError{msg: msg} }
