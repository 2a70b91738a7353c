package calculator

import (
	"errors"
	"fmt"
)

// ErrorMarker prefixes every error string returned by Calculate.
const ErrorMarker = "Error: "

var (
	ErrMissingOperand      = errors.New("missing operand")
	ErrMissingFirstOperand = errors.New("enter a number first")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrNegativeSquareRoot  = errors.New("square root of negative number")
	ErrDomain              = errors.New("math domain error")
	ErrRange               = errors.New("math range error")
	ErrInvalidDigit        = errors.New("invalid digit")
	ErrUnknownOperator     = errors.New("unknown operator")
)

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	KindGeneric ErrorKind = iota
	KindMissingOperand
	KindMissingFirstOperand
	KindDivisionByZero
	KindNegativeSquareRoot
)

func (k ErrorKind) String() string {
	switch k {
	case KindMissingOperand:
		return "missing operand"
	case KindMissingFirstOperand:
		return "missing first operand"
	case KindDivisionByZero:
		return "division by zero"
	case KindNegativeSquareRoot:
		return "negative square root"
	default:
		return "generic"
	}
}

// Error is an evaluation failure reported by the engine.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying cause for use with errors.Is.
func (e *Error) Unwrap() error {
	return e.Err
}

func newError(err error) *Error {
	var ce *Error
	if errors.As(err, &ce) {
		return ce
	}
	return &Error{Kind: kindFor(err), Err: err}
}

func kindFor(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrMissingOperand):
		return KindMissingOperand
	case errors.Is(err, ErrMissingFirstOperand):
		return KindMissingFirstOperand
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, ErrNegativeSquareRoot):
		return KindNegativeSquareRoot
	}
	return KindGeneric
}

// KindOf returns the kind of err, or KindGeneric when err did not come from
// the engine.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return kindFor(err)
}

func operandError(text string, err error) error {
	return fmt.Errorf("invalid operand %q: %w", text, errors.Unwrap(err))
}
