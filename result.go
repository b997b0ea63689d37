// Copyright © 2025 The gnaw authors

package gnaw

import "fmt"

// Parser consumes a prefix of its input and produces a value. On
// success it returns the remaining input, the output, and a nil error.
// On failure it returns the input it was given, the zero output, and a
// non-nil *Err describing what went wrong.
type Parser[I Input, O, E any] func(I) (I, O, *Err[E])

// Needed reports how much more input a parser required before it could
// make a decision. Zero means the amount is unknown.
type Needed int

// NeededUnknown marks an incomplete result whose missing length cannot
// be named.
const NeededUnknown Needed = 0

func (n Needed) String() string {
	if n <= 0 {
		return "more input"
	}
	return fmt.Sprintf("%d more bytes", int(n))
}

type severity uint8

const (
	sevError severity = iota
	sevFailure
	sevIncomplete
)

// Err carries a parse failure together with its severity. The three
// severities are closed: a recoverable error that alternation may
// backtrack over, an unrecoverable failure that propagates through
// every choice point, and an incomplete result meaning the input ended
// before the parser could decide. Combinators never treat an
// incomplete result as an ordinary error; it passes through untouched.
type Err[E any] struct {
	sev    severity
	cause  E
	needed Needed
}

// NewError wraps cause as a recoverable error.
func NewError[E any](cause E) *Err[E] {
	return &Err[E]{sev: sevError, cause: cause}
}

// NewFailure wraps cause as an unrecoverable failure.
func NewFailure[E any](cause E) *Err[E] {
	return &Err[E]{sev: sevFailure, cause: cause}
}

// NewIncomplete reports that the input ended before the parser could
// decide. It carries no cause.
func NewIncomplete[E any](n Needed) *Err[E] {
	return &Err[E]{sev: sevIncomplete, needed: n}
}

// IsFailure reports whether the error is unrecoverable.
func (e *Err[E]) IsFailure() bool { return e.sev == sevFailure }

// IsIncomplete reports whether the parser ran out of input.
func (e *Err[E]) IsIncomplete() bool { return e.sev == sevIncomplete }

// Cause returns the underlying error value. Incomplete results have no
// cause; the zero value is returned.
func (e *Err[E]) Cause() E { return e.cause }

// Needed returns the input requirement attached to an incomplete
// result.
func (e *Err[E]) Needed() Needed { return e.needed }

// Map applies f to the cause, preserving severity. Nil errors and
// incomplete results pass through untouched.
func (e *Err[E]) Map(f func(E) E) *Err[E] {
	if e == nil || e.sev == sevIncomplete {
		return e
	}
	return &Err[E]{sev: e.sev, cause: f(e.cause)}
}

func (e *Err[E]) Error() string {
	switch e.sev {
	case sevFailure:
		return fmt.Sprintf("parse failure: %v", e.cause)
	case sevIncomplete:
		return fmt.Sprintf("incomplete input: needs %v", e.needed)
	default:
		return fmt.Sprintf("parse error: %v", e.cause)
	}
}
