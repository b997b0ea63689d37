// Copyright © 2025 The gnaw authors

package gnaw

// Many0 applies p repeatedly until it errors, collecting the outputs.
// p succeeding without consuming input is itself an error: the
// repetition would never terminate.
func Many0[I Input, O any, E ParseError[I, E]](p Parser[I, O, E]) Parser[I, []O, E] {
	return func(in I) (I, []O, *Err[E]) {
		var acc []O
		cur := in
		for {
			rest, out, err := p(cur)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, nil, err
				}
				return cur, acc, nil
			}
			if len(rest) == len(cur) {
				return in, nil, NewError(MakeError[I, E](cur, KindMany0))
			}
			acc = append(acc, out)
			cur = rest
		}
	}
}

// Many1 is Many0 requiring at least one element. A first element that
// fails recoverably has the many1 kind folded onto its error.
func Many1[I Input, O any, E ParseError[I, E]](p Parser[I, O, E]) Parser[I, []O, E] {
	return func(in I) (I, []O, *Err[E]) {
		rest, out, err := p(in)
		if err != nil {
			if err.IsFailure() || err.IsIncomplete() {
				return in, nil, err
			}
			return in, nil, NewError(AppendError(in, KindMany1, err.Cause()))
		}
		acc := []O{out}
		cur := rest
		for {
			next, o, err := p(cur)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, nil, err
				}
				return cur, acc, nil
			}
			if len(next) == len(cur) {
				return in, nil, NewError(MakeError[I, E](cur, KindMany1))
			}
			acc = append(acc, o)
			cur = next
		}
	}
}

// ManyTill applies p until end succeeds, returning the collected
// outputs paired with end's output.
func ManyTill[I Input, O, P any, E ParseError[I, E]](p Parser[I, O, E], end Parser[I, P, E]) Parser[I, Pair[[]O, P], E] {
	return func(in I) (I, Pair[[]O, P], *Err[E]) {
		var acc []O
		cur := in
		for {
			rest, stop, err := end(cur)
			if err == nil {
				return rest, Pair[[]O, P]{First: acc, Second: stop}, nil
			}
			if err.IsFailure() || err.IsIncomplete() {
				return in, Pair[[]O, P]{}, err
			}
			next, out, err := p(cur)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, Pair[[]O, P]{}, err
				}
				return in, Pair[[]O, P]{}, NewError(AppendError(cur, KindManyTill, err.Cause()))
			}
			if len(next) == len(cur) {
				return in, Pair[[]O, P]{}, NewError(MakeError[I, E](cur, KindManyTill))
			}
			acc = append(acc, out)
			cur = next
		}
	}
}

// ManyMN applies p between m and n times inclusive. Asking for m > n
// is an unrecoverable failure.
func ManyMN[I Input, O any, E ParseError[I, E]](m, n int, p Parser[I, O, E]) Parser[I, []O, E] {
	return func(in I) (I, []O, *Err[E]) {
		if m > n {
			return in, nil, NewFailure(MakeError[I, E](in, KindManyMN))
		}
		var acc []O
		cur := in
		for count := 0; count < n; count++ {
			rest, out, err := p(cur)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, nil, err
				}
				if count < m {
					return in, nil, NewError(AppendError(cur, KindManyMN, err.Cause()))
				}
				return cur, acc, nil
			}
			if len(rest) == len(cur) {
				return in, nil, NewError(MakeError[I, E](cur, KindManyMN))
			}
			acc = append(acc, out)
			cur = rest
		}
		return cur, acc, nil
	}
}

// Count applies p exactly n times.
func Count[I Input, O any, E ParseError[I, E]](n int, p Parser[I, O, E]) Parser[I, []O, E] {
	return func(in I) (I, []O, *Err[E]) {
		acc := make([]O, 0, n)
		cur := in
		for i := 0; i < n; i++ {
			rest, out, err := p(cur)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, nil, err
				}
				return in, nil, NewError(AppendError(in, KindCount, err.Cause()))
			}
			acc = append(acc, out)
			cur = rest
		}
		return cur, acc, nil
	}
}

// Many0Count counts repetitions of p without keeping the outputs.
func Many0Count[I Input, O any, E ParseError[I, E]](p Parser[I, O, E]) Parser[I, int, E] {
	return func(in I) (I, int, *Err[E]) {
		count := 0
		cur := in
		for {
			rest, _, err := p(cur)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, 0, err
				}
				return cur, count, nil
			}
			if len(rest) == len(cur) {
				return in, 0, NewError(MakeError[I, E](cur, KindMany0Count))
			}
			count++
			cur = rest
		}
	}
}

// Many1Count is Many0Count requiring at least one repetition.
func Many1Count[I Input, O any, E ParseError[I, E]](p Parser[I, O, E]) Parser[I, int, E] {
	return func(in I) (I, int, *Err[E]) {
		rest, _, err := p(in)
		if err != nil {
			if err.IsFailure() || err.IsIncomplete() {
				return in, 0, err
			}
			return in, 0, NewError(AppendError(in, KindMany1Count, err.Cause()))
		}
		count := 1
		cur := rest
		for {
			next, _, err := p(cur)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, 0, err
				}
				return cur, count, nil
			}
			if len(next) == len(cur) {
				return in, 0, NewError(MakeError[I, E](cur, KindMany1Count))
			}
			count++
			cur = next
		}
	}
}

// SeparatedList0 parses zero or more occurrences of p separated by
// sep. A separator that consumes nothing is an error: the list would
// never terminate.
func SeparatedList0[I Input, S, O any, E ParseError[I, E]](sep Parser[I, S, E], p Parser[I, O, E]) Parser[I, []O, E] {
	return func(in I) (I, []O, *Err[E]) {
		var acc []O
		rest, out, err := p(in)
		if err != nil {
			if err.IsFailure() || err.IsIncomplete() {
				return in, nil, err
			}
			return in, acc, nil
		}
		acc = append(acc, out)
		cur := rest
		for {
			afterSep, _, err := sep(cur)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, nil, err
				}
				return cur, acc, nil
			}
			if len(afterSep) == len(cur) {
				return in, nil, NewError(MakeError[I, E](afterSep, KindSeparatedList))
			}
			next, out, err := p(afterSep)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, nil, err
				}
				return cur, acc, nil
			}
			acc = append(acc, out)
			cur = next
		}
	}
}

// SeparatedList1 is SeparatedList0 requiring at least one element. The
// first element's error propagates unchanged.
func SeparatedList1[I Input, S, O any, E ParseError[I, E]](sep Parser[I, S, E], p Parser[I, O, E]) Parser[I, []O, E] {
	return func(in I) (I, []O, *Err[E]) {
		rest, out, err := p(in)
		if err != nil {
			return in, nil, err
		}
		acc := []O{out}
		cur := rest
		for {
			afterSep, _, err := sep(cur)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, nil, err
				}
				return cur, acc, nil
			}
			if len(afterSep) == len(cur) {
				return in, nil, NewError(MakeError[I, E](afterSep, KindSeparatedList))
			}
			next, out, err := p(afterSep)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, nil, err
				}
				return cur, acc, nil
			}
			acc = append(acc, out)
			cur = next
		}
	}
}

// FoldMany0 applies p repeatedly, folding each output into an
// accumulator seeded by init.
func FoldMany0[I Input, O, R any, E ParseError[I, E]](p Parser[I, O, E], init func() R, fold func(R, O) R) Parser[I, R, E] {
	return func(in I) (I, R, *Err[E]) {
		acc := init()
		cur := in
		for {
			rest, out, err := p(cur)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					var zero R
					return in, zero, err
				}
				return cur, acc, nil
			}
			if len(rest) == len(cur) {
				var zero R
				return in, zero, NewError(MakeError[I, E](cur, KindMany0))
			}
			acc = fold(acc, out)
			cur = rest
		}
	}
}

// FoldMany1 is FoldMany0 requiring at least one element.
func FoldMany1[I Input, O, R any, E ParseError[I, E]](p Parser[I, O, E], init func() R, fold func(R, O) R) Parser[I, R, E] {
	return func(in I) (I, R, *Err[E]) {
		var zero R
		rest, out, err := p(in)
		if err != nil {
			if err.IsFailure() || err.IsIncomplete() {
				return in, zero, err
			}
			return in, zero, NewError(MakeError[I, E](in, KindMany1))
		}
		acc := fold(init(), out)
		cur := rest
		for {
			next, o, err := p(cur)
			if err != nil {
				if err.IsFailure() || err.IsIncomplete() {
					return in, zero, err
				}
				return cur, acc, nil
			}
			if len(next) == len(cur) {
				return in, zero, NewError(MakeError[I, E](cur, KindMany1))
			}
			acc = fold(acc, o)
			cur = next
		}
	}
}

// LengthData parses a byte count with number, then consumes exactly
// that many bytes. Too little remaining input is an incomplete result
// naming the missing byte count.
func LengthData[I Input, E ParseError[I, E]](number Parser[I, int, E]) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		var zero I
		rest, n, err := number(in)
		if err != nil {
			return in, zero, err
		}
		if n < 0 {
			return in, zero, NewError(MakeError[I, E](rest, KindLengthValue))
		}
		if n > len(rest) {
			return in, zero, NewIncomplete[E](Needed(n - len(rest)))
		}
		return rest[n:], rest[:n], nil
	}
}

// LengthValue parses a byte count, slices off that many bytes, and
// runs inner on the slice alone. Inner reporting incomplete there is
// an error, not a request for more input: the slice is all there is.
// Input the inner parser leaves over is discarded.
func LengthValue[I Input, O any, E ParseError[I, E]](number Parser[I, int, E], inner Parser[I, O, E]) Parser[I, O, E] {
	return func(in I) (I, O, *Err[E]) {
		var zero O
		rest, n, err := number(in)
		if err != nil {
			return in, zero, err
		}
		if n < 0 {
			return in, zero, NewError(MakeError[I, E](rest, KindLengthValue))
		}
		if n > len(rest) {
			return in, zero, NewIncomplete[E](Needed(n - len(rest)))
		}
		slice, after := rest[:n], rest[n:]
		_, out, err := inner(slice)
		if err != nil {
			if err.IsIncomplete() {
				return in, zero, NewError(MakeError[I, E](slice, KindComplete))
			}
			return in, zero, err
		}
		return after, out, nil
	}
}
