package entities

import (
	"errors"
	"fmt"
)

// ErrorKind classifies every failure the service can produce.
//
// Kinds are not exception types: a single Error type carries the kind so
// callers have one catch point and can still branch on classification.
type ErrorKind string

const (
	KindConfiguration      ErrorKind = "CONFIGURATION_ERROR"
	KindRemoteTransport    ErrorKind = "REMOTE_TRANSPORT_ERROR"
	KindRemoteProtocol     ErrorKind = "REMOTE_PROTOCOL_ERROR"
	KindRemoteOperation    ErrorKind = "REMOTE_OPERATION_ERROR"
	KindNotFound           ErrorKind = "NOT_FOUND"
	KindForbidden          ErrorKind = "FORBIDDEN"
	KindMissingEmail       ErrorKind = "MISSING_EMAIL"
	KindInvalidEmail       ErrorKind = "INVALID_EMAIL"
	KindFormat             ErrorKind = "FORMAT_ERROR"
	KindEmptyFile          ErrorKind = "EMPTY_FILE"
	KindSlotCreationFailed ErrorKind = "SLOT_CREATION_FAILED"
	KindTransferFailed     ErrorKind = "TRANSFER_FAILED"
	KindRegistrationFailed ErrorKind = "REGISTRATION_FAILED"
	KindInvalidInput       ErrorKind = "INVALID_INPUT"
	KindCorruptQuote       ErrorKind = "CORRUPT_QUOTE"
)

// Sentinels for errors.Is. A sentinel matches any *Error of the same kind.
var (
	ErrConfiguration      = &Error{Kind: KindConfiguration}
	ErrRemoteTransport    = &Error{Kind: KindRemoteTransport}
	ErrRemoteProtocol     = &Error{Kind: KindRemoteProtocol}
	ErrRemoteOperation    = &Error{Kind: KindRemoteOperation}
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrForbidden          = &Error{Kind: KindForbidden}
	ErrMissingEmail       = &Error{Kind: KindMissingEmail}
	ErrInvalidEmail       = &Error{Kind: KindInvalidEmail}
	ErrFormat             = &Error{Kind: KindFormat}
	ErrEmptyFile          = &Error{Kind: KindEmptyFile}
	ErrSlotCreationFailed = &Error{Kind: KindSlotCreationFailed}
	ErrTransferFailed     = &Error{Kind: KindTransferFailed}
	ErrRegistrationFailed = &Error{Kind: KindRegistrationFailed}
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
	ErrCorruptQuote       = &Error{Kind: KindCorruptQuote}
)

// UserError is a per-field validation failure reported by the remote platform.
type UserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
}

// Error is the single error type of the service.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error

	// Remote diagnostics. Logged server-side, never sent to API callers.
	HTTPStatus int
	Body       string
	UserErrors []UserError
}

func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind ErrorKind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.HTTPStatus != 0 {
		msg += fmt.Sprintf(" (status=%d)", e.HTTPStatus)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports kind equality against a bare sentinel (no message, no cause).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Message != "" || t.Err != nil {
		return e == t
	}
	return e.Kind == t.Kind
}

// KindOf returns the kind of err, or "" when err is not an *Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// IsRetryable is true only for transport failures. Operation errors mean the
// remote validated and rejected the input, so a retry would fail the same way.
func IsRetryable(err error) bool {
	return KindOf(err) == KindRemoteTransport
}
