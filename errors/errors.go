package errors

import (
	"errors"
	"fmt"
)

var (
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrUnknownConnection  = fmt.Errorf("unknown connection")
	ErrUserNotFound       = fmt.Errorf("user not found")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrMissingCredential  = fmt.Errorf("credential is missing")
	ErrNoIdentityClaim    = fmt.Errorf("no resolvable identity claim")
	ErrUnknownEvent       = fmt.Errorf("unknown event")
	ErrUnroutableEvent    = fmt.Errorf("event has no destination room")
	ErrEmptyRoomKey       = fmt.Errorf("room key is empty")
	ErrUnknownRoomKind    = fmt.Errorf("unknown room kind")
	ErrInvalidFrame       = fmt.Errorf("invalid frame")
	ErrQueueFull          = fmt.Errorf("queue is full")
	ErrInvalidBridgeToken = fmt.Errorf("invalid bridge secret")
)

// AuthenticationError rejects a handshake. The connection is never established.
type AuthenticationError struct {
	Reason string
	Err    error
}

func (e *AuthenticationError) Error() string {
	if e.Err == nil {
		return "authentication failed: " + e.Reason
	}
	return fmt.Sprintf("authentication failed: %s: %v", e.Reason, e.Err)
}

func (e *AuthenticationError) Unwrap() error { return e.Err }

// ValidationError marks a malformed inbound payload. The frame is dropped.
type ValidationError struct {
	Event string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Event == "" {
		return fmt.Sprintf("invalid payload: %v", e.Err)
	}
	return fmt.Sprintf("invalid %s payload: %v", e.Event, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// PersistenceError wraps a failure of a downstream notification or activity store.
type PersistenceError struct {
	Operation string
	Err       error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence failed during %s: %v", e.Operation, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func NewAuthenticationError(reason string, err error) error {
	return &AuthenticationError{Reason: reason, Err: err}
}

func NewValidationError(event string, err error) error {
	return &ValidationError{Event: event, Err: err}
}

func NewPersistenceError(operation string, err error) error {
	return &PersistenceError{Operation: operation, Err: err}
}

func IsAuthentication(err error) bool {
	var target *AuthenticationError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

func IsPersistence(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}
