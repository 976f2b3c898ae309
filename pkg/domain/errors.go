package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCredential = errors.New("missing credential")
	ErrInvalidModule     = errors.New("invalid module")
	ErrDuplicateModule   = errors.New("duplicate module id")
	ErrNotReady          = errors.New("no module selected or topic is empty")
	ErrNoSession         = errors.New("no open chat session")
	ErrBusy              = errors.New("response is still pending")
	ErrEmptyMessage      = errors.New("empty message")
	ErrSuperseded        = errors.New("session superseded")
	ErrNothingToExport   = errors.New("conversation is empty")
)

// ProtectedModuleError is returned when a built-in module is about to be edited or deleted.
type ProtectedModuleError struct {
	ID string
}

func (e *ProtectedModuleError) Error() string {
	return fmt.Sprintf("module %q is built-in and cannot be changed", e.ID)
}

// InvalidCredentialError is returned when the chat service rejects the credential.
// Message is meant to be shown to the user as is.
type InvalidCredentialError struct {
	Message string
	Err     error
}

func (e *InvalidCredentialError) Error() string {
	return e.Message
}

func (e *InvalidCredentialError) Unwrap() error {
	return e.Err
}

// TransportError wraps any other failure of the remote chat call.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "chat service request failed: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
