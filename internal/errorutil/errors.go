package errorutil

//go:generate go tool errtrace -w .

import (
	"errors"
	"fmt"
)

// Error is a string type that implements the error interface.
type Error string

func (s Error) Error() string { return string(s) }

// NewWrapperError creates or wraps an error with a sentinel error.
// It supports multiple argument patterns:
//   - No args: returns sentinel
//   - error arg: wraps with sentinel (unless already wrapped)
//   - string arg: formats as message with sentinel
//   - string + args: formats with Sprintf then wraps with sentinel
func NewWrapperError(sentinel error, args ...any) error {
	if len(args) == 0 {
		return sentinel //errtrace:skip
	}
	switch v := args[0].(type) {
	case error:
		if errors.Is(v, sentinel) {
			return v //errtrace:skip
		}
		return fmt.Errorf("%w: %w", sentinel, v) //errtrace:skip
	case string:
		if len(args) == 1 {
			return fmt.Errorf("%w: %s", sentinel, v) //errtrace:skip
		}
		return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(v, args[1:]...)) //errtrace:skip
	default:
		return sentinel //errtrace:skip
	}
}

// ErrInvalidArgument is an error returned when an invalid argument is provided.
const ErrInvalidArgument Error = "invalid argument"

// NewInvalidArgumentError creates a new error with [ErrInvalidArgument] or
// wraps provided error with [ErrInvalidArgument].
func NewInvalidArgumentError(args ...any) error {
	return NewWrapperError(ErrInvalidArgument, args...) //errtrace:skip
}

// ErrInvalidInput is an error returned when a URL string fails the generic
// syntactic validity check.
const ErrInvalidInput Error = "invalid input"

// NewInvalidInputError creates a new error with [ErrInvalidInput] or
// wraps provided error with [ErrInvalidInput].
func NewInvalidInputError(args ...any) error {
	return NewWrapperError(ErrInvalidInput, args...) //errtrace:skip
}

// ErrUnresolvableDomain is an error returned when no suffix of a host name
// matches the top-level domain table.
const ErrUnresolvableDomain Error = "unresolvable domain"

// NewUnresolvableDomainError creates a new error with [ErrUnresolvableDomain]
// or wraps provided error with [ErrUnresolvableDomain].
func NewUnresolvableDomainError(args ...any) error {
	return NewWrapperError(ErrUnresolvableDomain, args...) //errtrace:skip
}

// ErrIndexOutOfRange is an error returned when a resolved index lands outside
// the permitted range of a collection.
const ErrIndexOutOfRange Error = "index out of range"

// NewIndexOutOfRangeError creates a new error with [ErrIndexOutOfRange] or
// wraps provided error with [ErrIndexOutOfRange].
func NewIndexOutOfRangeError(args ...any) error {
	return NewWrapperError(ErrIndexOutOfRange, args...) //errtrace:skip
}
