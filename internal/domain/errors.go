package domain

import "errors"

// ErrNotFound covers both a record that does not exist and a record owned by
// someone else. The two cases are deliberately indistinguishable so task ids
// never leak across accounts.
var ErrNotFound = errors.New("not found")

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError marks malformed or missing request input.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// AuthError covers every way bearer-token authentication can fail. All
// variants surface as 401.
type AuthError struct {
	Reason string
}

func (e *AuthError) Error() string { return e.Reason }

var (
	ErrMissingToken   = &AuthError{Reason: "missing bearer token"}
	ErrTokenMalformed = &AuthError{Reason: "malformed token"}
	ErrBadSignature   = &AuthError{Reason: "invalid token signature"}
	ErrTokenExpired   = &AuthError{Reason: "token expired"}
)
