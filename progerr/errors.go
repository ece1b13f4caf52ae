// Package progerr defines the error taxonomy shared by every core package:
// construction-time configuration failures, observer lifecycle violations,
// bad caller input, out-of-bounds access and domain errors raised by the
// linear algebra kernel. Callers distinguish these with errors.As instead of
// string matching.
package progerr

import "fmt"

// BadConfig is returned when a component is constructed from an incomplete
// or otherwise invalid configuration: a missing required key, mismatched
// noise covariance dimensions, a non-square Q or R.
type BadConfig struct {
	Msg   string
	Cause error
}

func (e *BadConfig) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("bad config: %s: %v", e.Msg, e.Cause)
	}
	return fmt.Sprintf("bad config: %s", e.Msg)
}

func (e *BadConfig) Unwrap() error { return e.Cause }

// NewBadConfig builds a BadConfig with the given message.
func NewBadConfig(msg string, args ...any) *BadConfig {
	return &BadConfig{Msg: fmt.Sprintf(msg, args...)}
}

// NotInitialized is returned when Step is called on an observer that has
// never had Initialize called on it.
type NotInitialized struct {
	Msg string
}

func (e *NotInitialized) Error() string {
	if e.Msg == "" {
		return "observer not initialized"
	}
	return fmt.Sprintf("observer not initialized: %s", e.Msg)
}

// NewNotInitialized builds a NotInitialized error.
func NewNotInitialized(msg string, args ...any) *NotInitialized {
	return &NotInitialized{Msg: fmt.Sprintf(msg, args...)}
}

// BadInput is returned for caller-supplied values that are individually
// well-formed but invalid for the operation: a non-advancing timestamp, a
// zero-length vector where a populated one is required.
type BadInput struct {
	Msg string
}

func (e *BadInput) Error() string {
	return fmt.Sprintf("bad input: %s", e.Msg)
}

// NewBadInput builds a BadInput error.
func NewBadInput(msg string, args ...any) *BadInput {
	return &BadInput{Msg: fmt.Sprintf(msg, args...)}
}

// OutOfRange is returned for access past the bounds of a Matrix or UData
// backing array.
type OutOfRange struct {
	Msg string
}

func (e *OutOfRange) Error() string {
	return fmt.Sprintf("out of range: %s", e.Msg)
}

// NewOutOfRange builds an OutOfRange error.
func NewOutOfRange(msg string, args ...any) *OutOfRange {
	return &OutOfRange{Msg: fmt.Sprintf(msg, args...)}
}

// DomainError is returned for shape mismatches in arithmetic, non-square
// operations on a rectangular matrix, a non-positive-definite Cholesky
// input, or a singular matrix passed to Inverse.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("domain error: %s", e.Msg)
}

// NewDomainError builds a DomainError.
func NewDomainError(msg string, args ...any) *DomainError {
	return &DomainError{Msg: fmt.Sprintf(msg, args...)}
}
