// Copyright © 2025 The gnaw authors

package gnaw

// Pair holds the two outputs of And, SeparatedPair, and ManyTill.
type Pair[A, B any] struct {
	First  A
	Second B
}

// And runs first then second, returning both outputs.
func And[I Input, A, B, E any](first Parser[I, A, E], second Parser[I, B, E]) Parser[I, Pair[A, B], E] {
	return func(in I) (I, Pair[A, B], *Err[E]) {
		rest, a, err := first(in)
		if err != nil {
			return in, Pair[A, B]{}, err
		}
		rest, b, err := second(rest)
		if err != nil {
			return in, Pair[A, B]{}, err
		}
		return rest, Pair[A, B]{First: a, Second: b}, nil
	}
}

// Preceded runs first then second, keeping only second's output.
func Preceded[I Input, A, B, E any](first Parser[I, A, E], second Parser[I, B, E]) Parser[I, B, E] {
	return func(in I) (I, B, *Err[E]) {
		var zero B
		rest, _, err := first(in)
		if err != nil {
			return in, zero, err
		}
		rest, out, err := second(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}

// Terminated runs first then second, keeping only first's output.
func Terminated[I Input, A, B, E any](first Parser[I, A, E], second Parser[I, B, E]) Parser[I, A, E] {
	return func(in I) (I, A, *Err[E]) {
		var zero A
		rest, out, err := first(in)
		if err != nil {
			return in, zero, err
		}
		rest, _, err = second(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}

// Delimited runs left, middle, and right in sequence, keeping only
// middle's output.
func Delimited[I Input, A, B, C, E any](left Parser[I, A, E], middle Parser[I, B, E], right Parser[I, C, E]) Parser[I, B, E] {
	return func(in I) (I, B, *Err[E]) {
		var zero B
		rest, _, err := left(in)
		if err != nil {
			return in, zero, err
		}
		rest, out, err := middle(rest)
		if err != nil {
			return in, zero, err
		}
		rest, _, err = right(rest)
		if err != nil {
			return in, zero, err
		}
		return rest, out, nil
	}
}

// SeparatedPair runs first, separator, and second, keeping first's and
// second's outputs.
func SeparatedPair[I Input, A, S, B, E any](first Parser[I, A, E], separator Parser[I, S, E], second Parser[I, B, E]) Parser[I, Pair[A, B], E] {
	return func(in I) (I, Pair[A, B], *Err[E]) {
		rest, a, err := first(in)
		if err != nil {
			return in, Pair[A, B]{}, err
		}
		rest, _, err = separator(rest)
		if err != nil {
			return in, Pair[A, B]{}, err
		}
		rest, b, err := second(rest)
		if err != nil {
			return in, Pair[A, B]{}, err
		}
		return rest, Pair[A, B]{First: a, Second: b}, nil
	}
}
