// Package domain defines the core domain models for chatmesh.
package domain

import (
	"errors"
	"fmt"
)

// Error codes shared with the desktop client. These values are part of
// the wire protocol: every response object carries one of them in its
// "error" field, so they must never be renumbered.
const (
	CodeSuccess          = 0
	CodeBadPayload       = 1001 // request body did not parse
	CodeRPCFailed        = 1002 // peer node call failed
	CodeTokenInvalid     = 1010 // supplied token does not match the stored one
	CodeUIDInvalid       = 1011 // unknown uid or name
	CodeCreateChatFailed = 1012 // private chat creation failed
	CodeLockTimeout      = 1013 // distributed lock not acquired in time
	CodeDependency       = 1014 // cache or durable store unavailable
)

// DomainError represents a business domain error with a wire error code.
type DomainError struct {
	Code    int    // Wire error code (CodeTokenInvalid, ...)
	Message string // Human-readable message
	Details string // Optional additional details
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("[%d] %s: %s", e.Code, e.Message, e.Details)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *DomainError) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support; two DomainErrors match when their
// codes match, regardless of details or cause.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new DomainError with the given code and message.
func NewDomainError(code int, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *DomainError) WithDetails(details string) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *DomainError) WithCause(cause error) *DomainError {
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// ErrorCode extracts the wire code from an error. Any error that is not
// a DomainError maps to CodeDependency: something below us broke and the
// client only needs to know the request did not succeed.
func ErrorCode(err error) int {
	if err == nil {
		return CodeSuccess
	}
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeDependency
}

var (
	// ErrBadPayload indicates the message body did not parse.
	ErrBadPayload = NewDomainError(CodeBadPayload, "malformed payload")

	// ErrRPCFailed indicates a remote call to a peer node failed.
	ErrRPCFailed = NewDomainError(CodeRPCFailed, "peer rpc failed")

	// ErrTokenInvalid indicates the supplied login token does not match.
	ErrTokenInvalid = NewDomainError(CodeTokenInvalid, "token invalid")

	// ErrUIDInvalid indicates the uid (or name) is unknown.
	ErrUIDInvalid = NewDomainError(CodeUIDInvalid, "uid invalid")

	// ErrCreateChatFailed indicates private chat creation failed.
	ErrCreateChatFailed = NewDomainError(CodeCreateChatFailed, "create chat failed")

	// ErrLockTimeout indicates the distributed lock was not acquired
	// within the acquire timeout.
	ErrLockTimeout = NewDomainError(CodeLockTimeout, "lock acquire timeout")

	// ErrDependency indicates the cache or durable store is unavailable.
	ErrDependency = NewDomainError(CodeDependency, "dependency unavailable")
)
