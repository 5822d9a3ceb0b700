package domain

import "errors"

// Sentinel errors returned by services and repositories. The HTTP layer owns
// the single translation from these to status codes and response bodies.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountCancelled   = errors.New("account has been cancelled")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("email already exists")
	ErrSelfDeletion       = errors.New("cannot delete your own admin account")
	ErrInvalidPatch       = errors.New("invalid update payload")
)
