// Copyright © 2025 The gnaw authors

package gnaw

import (
	"fmt"
	"strings"
)

// Cause explains one frame of a VerboseError. The union is closed:
// CauseContext, CauseChar, or CauseKind.
type Cause interface {
	fmt.Stringer
	isCause()
}

// CauseContext labels a frame with a grammar rule name added by
// Context.
type CauseContext string

// CauseChar records the character a parser expected.
type CauseChar rune

// CauseKind records the built-in operation that failed.
type CauseKind ErrorKind

func (CauseContext) isCause() {}
func (CauseChar) isCause()    {}
func (CauseKind) isCause()    {}

func (c CauseContext) String() string { return string(c) }
func (c CauseChar) String() string    { return fmt.Sprintf("expected '%c'", rune(c)) }
func (c CauseKind) String() string    { return ErrorKind(c).String() }

// Frame is one step of a VerboseError: the input position the parser
// was at and why it gave up there.
type Frame[I Input] struct {
	Input I
	Cause Cause
}

// VerboseError accumulates one frame per unwinding step. The first
// frame is the deepest point the parse reached; later frames were
// added as enclosing combinators and Context labels unwound. It is the
// representation to reach for when a failed parse must be explained to
// a human; pair it with ConvertError for a full annotated report.
type VerboseError[I Input] struct {
	// Errors lists the accumulated frames, innermost first.
	Errors []Frame[I]
}

// FromErrorKind starts the frame list with a single kind frame.
func (VerboseError[I]) FromErrorKind(input I, kind ErrorKind) VerboseError[I] {
	return VerboseError[I]{Errors: []Frame[I]{{Input: input, Cause: CauseKind(kind)}}}
}

// Append pushes a kind frame onto other, so frames run from the
// deepest failure outward.
func (VerboseError[I]) Append(input I, kind ErrorKind, other VerboseError[I]) VerboseError[I] {
	other.Errors = append(other.Errors, Frame[I]{Input: input, Cause: CauseKind(kind)})
	return other
}

// FromChar starts the frame list with an expected-character frame.
func (VerboseError[I]) FromChar(input I, c rune) VerboseError[I] {
	return VerboseError[I]{Errors: []Frame[I]{{Input: input, Cause: CauseChar(c)}}}
}

// Or keeps the later error.
func (VerboseError[I]) Or(other VerboseError[I]) VerboseError[I] { return other }

// AddContext pushes a label frame onto other.
func (VerboseError[I]) AddContext(input I, label string, other VerboseError[I]) VerboseError[I] {
	other.Errors = append(other.Errors, Frame[I]{Input: input, Cause: CauseContext(label)})
	return other
}

// FromExternalError records a kind frame, discarding external.
func (VerboseError[I]) FromExternalError(input I, kind ErrorKind, _ error) VerboseError[I] {
	return VerboseError[I]{Errors: []Frame[I]{{Input: input, Cause: CauseKind(kind)}}}
}

// Error renders the frames as a compact one-line-per-frame message.
// Use ConvertError for the full annotated report.
func (e VerboseError[I]) Error() string {
	var sb strings.Builder
	sb.WriteString("parse error:")
	for _, f := range e.Errors {
		sb.WriteByte('\n')
		switch c := f.Cause.(type) {
		case CauseContext:
			fmt.Fprintf(&sb, "in %s at: %s", string(c), string(f.Input))
		case CauseChar:
			fmt.Fprintf(&sb, "expected '%c' at: %s", rune(c), string(f.Input))
		case CauseKind:
			fmt.Fprintf(&sb, "%v at: %s", ErrorKind(c), string(f.Input))
		}
	}
	return sb.String()
}
