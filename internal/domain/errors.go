package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrSeasonNotFound is returned when a season key does not resolve to a stored season
	ErrSeasonNotFound = errors.New("season not found")

	// ErrUnknownSnapshotSource is returned when a recompute names an unsupported source
	ErrUnknownSnapshotSource = errors.New("unknown recompute source")

	// ErrRecomputeInProgress is returned when another recompute holds the season lock
	ErrRecomputeInProgress = errors.New("recompute already in progress")

	// ErrProgressContention is returned when concurrent writers keep moving a live challenge window
	ErrProgressContention = errors.New("challenge progress changed concurrently")

	// ErrRateLimited is returned when a caller exceeds its swipe budget
	ErrRateLimited = errors.New("rate limit exceeded")
)

// ErrorKind classifies an error for propagation to the API boundary
type ErrorKind string

const (
	KindValidation  ErrorKind = "validation"
	KindNotFound    ErrorKind = "not_found"
	KindAuth        ErrorKind = "auth"
	KindConflict    ErrorKind = "conflict"
	KindRateLimited ErrorKind = "rate_limited"
	KindStore       ErrorKind = "store"
)

// Error is a classified error carrying a user-facing message and an optional cause
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewValidationError creates an error for missing or malformed input
func NewValidationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NewNotFoundError creates an error for an absent resource
func NewNotFoundError(message string, err error) *Error {
	return &Error{Kind: KindNotFound, Message: message, Err: err}
}

// NewAuthError creates an error for a missing or invalid credential
func NewAuthError(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

// NewConflictError creates an error for an operation blocked by concurrent work
func NewConflictError(message string, err error) *Error {
	return &Error{Kind: KindConflict, Message: message, Err: err}
}

// NewRateLimitedError creates an error for callers over their request budget
func NewRateLimitedError(message string) *Error {
	return &Error{Kind: KindRateLimited, Message: message, Err: ErrRateLimited}
}

// NewStoreError wraps a persistence failure. The message is safe to log, never to return.
func NewStoreError(message string, err error) *Error {
	return &Error{Kind: KindStore, Message: message, Err: err}
}

// KindOf returns the kind of a classified error, or KindStore for anything unclassified
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindStore
}

// IsNotFound reports whether err is a not-found error
func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}
