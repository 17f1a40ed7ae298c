package wad

import "github.com/zeebo/errs"

// Error is the class of all errors returned by the codec surface.
var Error = errs.Class("wad")

// MathError enumerates every arithmetic fault. The set is closed: kinds
// carry no payload and their ordinal is stable, so embedding programs may
// use Code to map a fault into their own numeric code space.
type MathError uint32

const (
	ErrAddOverflow MathError = iota
	ErrSubUnderflow
	ErrMulOverflow
	ErrDividedByZero
	ErrUnableToRoundU64
	ErrUnableToRoundU128
)

// Code returns the host facing numeric code for e.
func (e MathError) Code() uint32 {
	return uint32(e)
}

// Error implements error.
func (e MathError) Error() string {
	switch e {
	case ErrAddOverflow:
		return "add overflow"
	case ErrSubUnderflow:
		return "subtract underflow"
	case ErrMulOverflow:
		return "multiply overflow"
	case ErrDividedByZero:
		return "divided by zero"
	case ErrUnableToRoundU64:
		return "unable to round to u64"
	case ErrUnableToRoundU128:
		return "unable to round to u128"
	}

	return "unknown math error"
}
