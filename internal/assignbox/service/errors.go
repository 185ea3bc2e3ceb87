package service

import "errors"

var (
	ErrValidation         = errors.New("validation failed")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("account not found")
	ErrNoAccounts         = errors.New("no accounts found")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrNoAssignments      = errors.New("no assignments found")
	ErrConflict           = errors.New("assignment already in requested status")
	ErrForbidden          = errors.New("assignment belongs to another admin")
)

// ValidationError carries a caller-facing message and matches ErrValidation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(msg string) error { return &ValidationError{Message: msg} }
