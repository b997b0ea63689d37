// Copyright © 2025 The gnaw authors

// Package gnaw implements parser combinators over strings and byte
// slices, built around an error core that serves both fast
// backtracking and rich human-readable diagnostics.
//
// A Parser consumes a prefix of its input and returns the remaining
// input, an output value, and on failure an *Err carrying one of three
// severities: a recoverable error (alternation may try other
// branches), an unrecoverable failure (see Cut), or a report that the
// input ran out before a decision was possible.
//
// What a failure records is chosen per call site through the error
// type parameter. Discard records nothing and is the fastest.
// Error keeps the first position and kind reached and is the default
// choice. VerboseError accumulates a frame for every unwinding step
// and, combined with Context labels and ConvertError, produces
// multi-line annotated reports with line numbers and caret markers.
// Custom representations implement ParseError (and optionally
// ContextError and FromExternalError); embed Defaults to inherit the
// standard behavior for the operations you don't care about.
package gnaw
