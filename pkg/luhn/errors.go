package luhn

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates an empty or non-digit input.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOutOfRange indicates a numeric argument outside its allowed range.
	ErrOutOfRange = errors.New("argument out of range")
)

// ArgumentError describes which parameter violated the call contract.
type ArgumentError struct {
	Param  string
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("luhn: %s: %s: %s", e.Err, e.Param, e.Reason)
}

// Unwrap returns the sentinel error.
func (e *ArgumentError) Unwrap() error {
	return e.Err
}

func invalidArgument(param, reason string) error {
	return &ArgumentError{Param: param, Reason: reason, Err: ErrInvalidArgument}
}

func outOfRange(param, reason string) error {
	return &ArgumentError{Param: param, Reason: reason, Err: ErrOutOfRange}
}
