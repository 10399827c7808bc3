package domain

import "errors"

// Authentication and authorization.
var (
	ErrMissingToken       = errors.New("token missing")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("token signature invalid")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// Accounts.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateEmail  = errors.New("email already registered")
	ErrInvalidRole     = errors.New("invalid role")
)

// Catalog resources.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrInvalidInput = errors.New("invalid input")
)

// InputError is a client mistake with a reason safe to show to the caller.
// It matches ErrInvalidInput under errors.Is.
type InputError struct {
	Reason string
}

func NewInputError(reason string) *InputError {
	return &InputError{Reason: reason}
}

func (e *InputError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.Reason
}

func (e *InputError) Is(target error) bool {
	return target == ErrInvalidInput
}
