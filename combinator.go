// Copyright © 2025 The gnaw authors

package gnaw

// Map applies f to the output of p.
func Map[I Input, O, T, E any](p Parser[I, O, E], f func(O) T) Parser[I, T, E] {
	return func(in I) (I, T, *Err[E]) {
		rest, out, err := p(in)
		if err != nil {
			var zero T
			return in, zero, err
		}
		return rest, f(out), nil
	}
}

// MapRes applies f to the output of p. When f reports an error the
// parser fails with KindMapRes at the position p started from; the
// external error is handed to the representation and discarded there.
func MapRes[I Input, O, T any, E FromExternalError[I, E]](p Parser[I, O, E], f func(O) (T, error)) Parser[I, T, E] {
	return func(in I) (I, T, *Err[E]) {
		var zero T
		rest, out, err := p(in)
		if err != nil {
			return in, zero, err
		}
		mapped, ferr := f(out)
		if ferr != nil {
			var e E
			return in, zero, NewError(e.FromExternalError(in, KindMapRes, ferr))
		}
		return rest, mapped, nil
	}
}

// MapOpt applies f to the output of p and fails with KindMapOpt at the
// position p started from when f reports the value unusable.
func MapOpt[I Input, O, T any, E ParseError[I, E]](p Parser[I, O, E], f func(O) (T, bool)) Parser[I, T, E] {
	return func(in I) (I, T, *Err[E]) {
		var zero T
		rest, out, err := p(in)
		if err != nil {
			return in, zero, err
		}
		mapped, ok := f(out)
		if !ok {
			return in, zero, NewError(MakeError[I, E](in, KindMapOpt))
		}
		return rest, mapped, nil
	}
}

// Opt makes p optional: a recoverable error consumes nothing and yields
// the zero output. Failures and incomplete results pass through.
func Opt[I Input, O, E any](p Parser[I, O, E]) Parser[I, O, E] {
	return func(in I) (I, O, *Err[E]) {
		rest, out, err := p(in)
		if err != nil {
			if err.IsFailure() || err.IsIncomplete() {
				return in, out, err
			}
			var zero O
			return in, zero, nil
		}
		return rest, out, nil
	}
}

// Value discards the output of p and yields v instead.
func Value[I Input, O, V, E any](v V, p Parser[I, O, E]) Parser[I, V, E] {
	return func(in I) (I, V, *Err[E]) {
		rest, _, err := p(in)
		if err != nil {
			var zero V
			return in, zero, err
		}
		return rest, v, nil
	}
}

// Recognize discards the output of p and yields the slice of input it
// consumed.
func Recognize[I Input, O, E any](p Parser[I, O, E]) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		rest, _, err := p(in)
		if err != nil {
			var zero I
			return in, zero, err
		}
		return rest, in[:Offset(in, rest)], nil
	}
}

// Verify runs p and checks its output with pred, failing with
// KindVerify at the position p started from when the check does not
// hold.
func Verify[I Input, O any, E ParseError[I, E]](p Parser[I, O, E], pred func(O) bool) Parser[I, O, E] {
	return func(in I) (I, O, *Err[E]) {
		rest, out, err := p(in)
		if err != nil {
			return in, out, err
		}
		if !pred(out) {
			var zero O
			return in, zero, NewError(MakeError[I, E](in, KindVerify))
		}
		return rest, out, nil
	}
}

// Not succeeds, consuming nothing, exactly when p fails recoverably.
// Success of p becomes a KindNot error; failures and incomplete
// results pass through.
func Not[I Input, O any, E ParseError[I, E]](p Parser[I, O, E]) Parser[I, struct{}, E] {
	return func(in I) (I, struct{}, *Err[E]) {
		_, _, err := p(in)
		switch {
		case err == nil:
			return in, struct{}{}, NewError(MakeError[I, E](in, KindNot))
		case err.IsFailure() || err.IsIncomplete():
			return in, struct{}{}, err
		default:
			return in, struct{}{}, nil
		}
	}
}

// Peek runs p without consuming input.
func Peek[I Input, O, E any](p Parser[I, O, E]) Parser[I, O, E] {
	return func(in I) (I, O, *Err[E]) {
		_, out, err := p(in)
		return in, out, err
	}
}

// Eof succeeds only at the end of input, yielding the empty remainder.
func Eof[I Input, E ParseError[I, E]]() Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		if len(in) == 0 {
			return in, in, nil
		}
		var zero I
		return in, zero, NewError(MakeError[I, E](in, KindEOF))
	}
}

// AllConsuming runs p and then requires the input to be exhausted,
// failing with KindEOF at the leftover otherwise.
func AllConsuming[I Input, O any, E ParseError[I, E]](p Parser[I, O, E]) Parser[I, O, E] {
	return func(in I) (I, O, *Err[E]) {
		rest, out, err := p(in)
		if err != nil {
			return in, out, err
		}
		if len(rest) != 0 {
			var zero O
			return in, zero, NewError(MakeError[I, E](rest, KindEOF))
		}
		return rest, out, nil
	}
}

// Complete converts an incomplete result from p into a KindComplete
// error at the position p started from, for grammars that know their
// input is whole.
func Complete[I Input, O any, E ParseError[I, E]](p Parser[I, O, E]) Parser[I, O, E] {
	return func(in I) (I, O, *Err[E]) {
		rest, out, err := p(in)
		if err != nil && err.IsIncomplete() {
			var zero O
			return in, zero, NewError(MakeError[I, E](in, KindComplete))
		}
		return rest, out, err
	}
}

// Cut upgrades a recoverable error from p into a failure, committing
// the surrounding alternation to this branch.
func Cut[I Input, O, E any](p Parser[I, O, E]) Parser[I, O, E] {
	return func(in I) (I, O, *Err[E]) {
		rest, out, err := p(in)
		if err != nil && !err.IsFailure() && !err.IsIncomplete() {
			return in, out, NewFailure(err.cause)
		}
		return rest, out, err
	}
}

// Success consumes nothing and yields v.
func Success[I Input, O, E any](v O) Parser[I, O, E] {
	return func(in I) (I, O, *Err[E]) {
		return in, v, nil
	}
}

// Fail consumes nothing and always fails with KindFail.
func Fail[I Input, O any, E ParseError[I, E]]() Parser[I, O, E] {
	return func(in I) (I, O, *Err[E]) {
		var zero O
		return in, zero, NewError(MakeError[I, E](in, KindFail))
	}
}

// Rest consumes and yields whatever input remains.
func Rest[I Input, E any]() Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		return in[len(in):], in, nil
	}
}
