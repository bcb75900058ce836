package usecase

import (
	"errors"
	"strings"
)

type StoreErrorKind int

const (
	ErrKindOther StoreErrorKind = iota
	ErrKindNotFound
	ErrKindInvalidIdentifier
	ErrKindValidationFailed
	ErrKindUnavailable
)

func (k StoreErrorKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not found"
	case ErrKindInvalidIdentifier:
		return "invalid identifier"
	case ErrKindValidationFailed:
		return "validation failed"
	case ErrKindUnavailable:
		return "unavailable"
	default:
		return "other"
	}
}

// StoreError is the only error shape repositories hand back to controllers.
// Messages is populated for ErrKindValidationFailed only.
type StoreError struct {
	Kind     StoreErrorKind
	Messages []string
	Err      error
}

func (e *StoreError) Error() string {
	var b strings.Builder
	b.WriteString("store: ")
	b.WriteString(e.Kind.String())
	if len(e.Messages) > 0 {
		b.WriteString(": ")
		b.WriteString(strings.Join(e.Messages, "; "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func NewNotFoundError() *StoreError {
	return &StoreError{Kind: ErrKindNotFound}
}

func NewInvalidIdentifierError(err error) *StoreError {
	return &StoreError{Kind: ErrKindInvalidIdentifier, Err: err}
}

func NewValidationError(messages []string) *StoreError {
	return &StoreError{Kind: ErrKindValidationFailed, Messages: messages}
}

func NewUnavailableError(err error) *StoreError {
	return &StoreError{Kind: ErrKindUnavailable, Err: err}
}

// KindOf reports the store error kind carried by err. Errors that are not a
// StoreError are ErrKindOther.
func KindOf(err error) StoreErrorKind {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Kind
	}
	return ErrKindOther
}

// ValidationMessages returns the per-field messages of a validation failure.
func ValidationMessages(err error) []string {
	var storeErr *StoreError
	if errors.As(err, &storeErr) && storeErr.Kind == ErrKindValidationFailed {
		return storeErr.Messages
	}
	return nil
}
