// Copyright © 2025 The gnaw authors

package gnaw

// Alt tries each parser in order against the same input and returns
// the first success. A failure or incomplete result stops the scan
// immediately. When every alternative errors, the errors are merged
// pairwise with Or and a final alt frame is appended at the starting
// position.
func Alt[I Input, O any, E ParseError[I, E]](parsers ...Parser[I, O, E]) Parser[I, O, E] {
	return func(in I) (I, O, *Err[E]) {
		var zero O
		var acc E
		seen := false
		for _, p := range parsers {
			rest, out, err := p(in)
			if err == nil {
				return rest, out, nil
			}
			if err.IsFailure() || err.IsIncomplete() {
				return in, zero, err
			}
			if !seen {
				acc = err.Cause()
				seen = true
			} else {
				acc = acc.Or(err.Cause())
			}
		}
		if !seen {
			return in, zero, NewError(MakeError[I, E](in, KindAlt))
		}
		return in, zero, NewError(AppendError(in, KindAlt, acc))
	}
}
