// Copyright © 2025 The gnaw authors

package gnaw

import "strconv"

// RecognizeFloat consumes the longest prefix shaped like a decimal
// floating point literal: an optional sign, digits with an optional
// fractional part or a leading dot, and an optional exponent. An
// exponent marker without digits after it is left unconsumed.
func RecognizeFloat[I Input, E ParseError[I, E]]() Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		var zero I
		idx, n := 0, len(in)
		if idx < n && (in[idx] == '+' || in[idx] == '-') {
			idx++
		}
		digits := 0
		for idx < n && isDigit(rune(in[idx])) {
			idx++
			digits++
		}
		if idx < n && in[idx] == '.' {
			if digits == 0 {
				j := idx + 1
				frac := 0
				for j < n && isDigit(rune(in[j])) {
					j++
					frac++
				}
				if frac == 0 {
					return in, zero, NewError(MakeError[I, E](in, KindFloat))
				}
				idx = j
			} else {
				idx++
				for idx < n && isDigit(rune(in[idx])) {
					idx++
				}
			}
		} else if digits == 0 {
			return in, zero, NewError(MakeError[I, E](in, KindFloat))
		}
		if idx < n && (in[idx] == 'e' || in[idx] == 'E') {
			j := idx + 1
			if j < n && (in[j] == '+' || in[j] == '-') {
				j++
			}
			exp := 0
			for j < n && isDigit(rune(in[j])) {
				j++
				exp++
			}
			if exp > 0 {
				idx = j
			}
		}
		return in[idx:], in[:idx], nil
	}
}

// Float parses a decimal floating point literal into a float64.
// Out-of-range literals saturate to ±Inf the way strconv does.
func Float[I Input, E ParseError[I, E]]() Parser[I, float64, E] {
	rec := RecognizeFloat[I, E]()
	return func(in I) (I, float64, *Err[E]) {
		rest, lit, err := rec(in)
		if err != nil {
			return in, 0, err
		}
		f, _ := strconv.ParseFloat(string(lit), 64)
		return rest, f, nil
	}
}
