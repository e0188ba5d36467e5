package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every FieldError and PersistenceError matches exactly one
// of these through errors.Is. Lookup and ownership sentinels such as
// ErrUserNotFound stand on their own.
var (
	ErrValidation   = errors.New("validation error")
	ErrAccess       = errors.New("access error")
	ErrInvalidInput = errors.New("invalid input")
	ErrPersistence  = errors.New("persistence error")
)

// FieldError reports a value rejected for a single entity field.
type FieldError struct {
	Kind  error
	Field string
	Msg   string
}

func (e *FieldError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Msg
}

func (e *FieldError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Kind
}

var (
	ErrUsernameRequired     = &FieldError{Kind: ErrValidation, Field: "username", Msg: "username required"}
	ErrTitleRequired        = &FieldError{Kind: ErrValidation, Field: "title", Msg: "title required"}
	ErrInstructionsRequired = &FieldError{Kind: ErrValidation, Field: "instructions", Msg: "instructions required"}
	ErrInstructionsTooShort = &FieldError{Kind: ErrValidation, Field: "instructions", Msg: "instructions too short"}
	ErrOwnerRequired        = &FieldError{Kind: ErrValidation, Field: "user", Msg: "user required"}

	ErrPasswordRequired = &FieldError{Kind: ErrInvalidInput, Field: "password", Msg: "password required"}
	ErrPasswordNotUTF8  = &FieldError{Kind: ErrInvalidInput, Field: "password", Msg: "password must be valid UTF-8"}
	ErrPasswordTooLong  = &FieldError{Kind: ErrInvalidInput, Field: "password", Msg: "password too long"}

	ErrPasswordUnreadable = &FieldError{Kind: ErrAccess, Field: "password_hash", Msg: "password hashes may not be viewed"}
)

// PersistenceError is an opaque failure surfaced from the store.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}

// WrapPersistence wraps a store failure for op. Field errors raised by
// model hooks and nil pass through unchanged.
func WrapPersistence(op string, err error) error {
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
