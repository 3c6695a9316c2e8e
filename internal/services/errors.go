package services

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrTableTaken         = errors.New("Table is already reserved for this time slot")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrRoleMismatch       = errors.New("role does not match this account")
)

// ValidationError carries a message meant for the client. It matches ErrInvalidInput.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(msg string) error { return &ValidationError{Msg: msg} }

// notFound maps gorm's missing record error to ErrNotFound and passes anything else through
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// TransitionError reports a status change the lifecycle does not allow. It matches ErrInvalidTransition.
type TransitionError struct {
	From, To string
}

func (e *TransitionError) Error() string {
	return "Cannot change status from " + e.From + " to " + e.To
}

func (e *TransitionError) Is(target error) bool { return target == ErrInvalidTransition }
