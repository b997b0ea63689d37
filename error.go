// Copyright © 2025 The gnaw authors

package gnaw

import "fmt"

// ParseError is the capability every error representation offers the
// engine: building an error at a position, folding another frame in
// while the parse tree unwinds, recording an expected character, and
// choosing between two alternatives' errors.
//
// E is the implementing type itself. The engine constructs errors by
// dispatching on a zero value, so representations must behave as plain
// values; the prior error, where one exists, is passed explicitly.
type ParseError[I Input, E any] interface {
	// FromErrorKind builds an error at input flagged with kind.
	FromErrorKind(input I, kind ErrorKind) E

	// Append folds a new (input, kind) frame into other as the parse
	// tree unwinds. Representations decide whether to keep, merge, or
	// discard the new frame.
	Append(input I, kind ErrorKind, other E) E

	// FromChar builds an error recording that c was expected at input.
	FromChar(input I, c rune) E

	// Or merges the receiver, the earlier alternative's error, with
	// other, the later one, returning the survivor.
	Or(other E) E
}

// ContextError is implemented by representations that can attach
// human-readable labels to an error.
type ContextError[I Input, E any] interface {
	// AddContext records label at input on top of other.
	AddContext(input I, label string, other E) E
}

// FromExternalError is implemented by representations that can absorb
// an error produced outside the parser, such as a strconv failure
// inside MapRes. Only the position and kind survive; the external
// error itself is discarded.
type FromExternalError[I Input, E any] interface {
	FromExternalError(input I, kind ErrorKind, external error) E
}

// MakeError builds a fresh E at input flagged with kind. It is the
// conventional construction site used by every combinator in this
// package.
func MakeError[I Input, E ParseError[I, E]](input I, kind ErrorKind) E {
	var zero E
	return zero.FromErrorKind(input, kind)
}

// AppendError folds (input, kind) into other while unwinding.
func AppendError[I Input, E ParseError[I, E]](input I, kind ErrorKind, other E) E {
	return other.Append(input, kind, other)
}

// Defaults supplies the standard bodies for the optional error
// operations: FromChar builds the generic char-kind error, Or keeps
// the later error, and AddContext drops the label. Embed it in a
// custom representation and override only the operations that matter
// to it.
type Defaults[I Input, E interface{ FromErrorKind(I, ErrorKind) E }] struct{}

// FromChar builds the generic char-kind error at input.
func (Defaults[I, E]) FromChar(input I, _ rune) E {
	var zero E
	return zero.FromErrorKind(input, KindChar)
}

// Or keeps the later error.
func (Defaults[I, E]) Or(other E) E { return other }

// AddContext returns other unchanged.
func (Defaults[I, E]) AddContext(_ I, _ string, other E) E { return other }

// Error is the default representation: the position and kind of the
// deepest error raised, with everything learned later discarded. It
// stays cheap under heavy backtracking while still naming a concrete
// failure.
type Error[I Input] struct {
	Defaults[I, Error[I]]

	// Input is the position the error was raised at.
	Input I
	// Kind identifies the failing operation.
	Kind ErrorKind
}

// FromErrorKind records input and kind.
func (Error[I]) FromErrorKind(input I, kind ErrorKind) Error[I] {
	return Error[I]{Input: input, Kind: kind}
}

// Append returns other unchanged: the first cause wins, so the error
// raised deepest in the parse tree survives all unwinding.
func (Error[I]) Append(_ I, _ ErrorKind, other Error[I]) Error[I] {
	return other
}

// FromExternalError records input and kind, discarding external.
func (Error[I]) FromExternalError(input I, kind ErrorKind, _ error) Error[I] {
	return Error[I]{Input: input, Kind: kind}
}

func (e Error[I]) Error() string {
	return fmt.Sprintf("error %v at: %s", e.Kind, string(e.Input))
}

// Discard is the zero-cost representation: every operation returns the
// empty value. Reach for it when only success or failure matters.
// It is parameterized by the input type because its methods must still
// line up with the capability signatures.
type Discard[I Input] struct{}

func (Discard[I]) FromErrorKind(I, ErrorKind) Discard[I] { return Discard[I]{} }

func (Discard[I]) Append(I, ErrorKind, Discard[I]) Discard[I] { return Discard[I]{} }

func (Discard[I]) FromChar(I, rune) Discard[I] { return Discard[I]{} }

func (Discard[I]) Or(Discard[I]) Discard[I] { return Discard[I]{} }

func (Discard[I]) AddContext(I, string, Discard[I]) Discard[I] { return Discard[I]{} }

func (Discard[I]) FromExternalError(I, ErrorKind, error) Discard[I] { return Discard[I]{} }

func (Discard[I]) Error() string { return "parse error" }
