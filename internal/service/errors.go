package service

import (
	"errors"
	"fmt"
)

// Error kinds. Handlers map these to status codes with errors.Is.
var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrForbidden          = errors.New("forbidden")
	ErrStorageDisabled    = errors.New("object storage is not configured")
)

var (
	ErrUserNotFound      = kindError(ErrNotFound, "User not found")
	ErrPhotoNotFound     = kindError(ErrNotFound, "Photo not found")
	ErrInvalidPassword   = kindError(ErrInvalidCredentials, "Invalid password")
	ErrWrongCredentials  = kindError(ErrInvalidCredentials, "Email or Password incorrect")
	ErrIncorrectPassword = kindError(ErrInvalidCredentials, "Password is incorrect")
	ErrUserExists        = kindError(ErrDuplicateKey, "User name or email already exists")
	ErrNotOwner          = kindError(ErrForbidden, "You can only change your own resources")
)

type kindErr struct {
	kind error
	msg  string
}

func kindError(kind error, msg string) error {
	return &kindErr{kind: kind, msg: msg}
}

func (e *kindErr) Error() string { return e.msg }

func (e *kindErr) Unwrap() error { return e.kind }

// ValidationError is returned for malformed or missing input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
