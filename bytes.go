// Copyright © 2025 The gnaw authors

package gnaw

import "strings"

// Tag matches tag exactly at the head of the input.
func Tag[I Input, E ParseError[I, E]](tag I) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		if hasPrefix(in, tag) {
			return in[len(tag):], in[:len(tag)], nil
		}
		var zero I
		return in, zero, NewError(MakeError[I, E](in, KindTag))
	}
}

// TagNoCase matches tag at the head of the input, ignoring case.
func TagNoCase[I Input, E ParseError[I, E]](tag I) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		if len(in) >= len(tag) && equalFold(in[:len(tag)], tag) {
			return in[len(tag):], in[:len(tag)], nil
		}
		var zero I
		return in, zero, NewError(MakeError[I, E](in, KindTag))
	}
}

// Take consumes exactly n characters: n UTF-8 runes from a string, n
// bytes from a byte slice.
func Take[I Input, E ParseError[I, E]](n int) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		idx, ok := takeIndex(in, n)
		if !ok {
			var zero I
			return in, zero, NewError(MakeError[I, E](in, KindEOF))
		}
		return in[idx:], in[:idx], nil
	}
}

// TakeWhile0 consumes the longest, possibly empty, run of characters
// satisfying pred. It never fails.
func TakeWhile0[I Input, E ParseError[I, E]](pred func(rune) bool) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		idx := scanWhile(in, pred)
		return in[idx:], in[:idx], nil
	}
}

// TakeWhile1 is TakeWhile0 requiring at least one character.
func TakeWhile1[I Input, E ParseError[I, E]](pred func(rune) bool) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		idx := scanWhile(in, pred)
		if idx == 0 {
			var zero I
			return in, zero, NewError(MakeError[I, E](in, KindTakeWhile1))
		}
		return in[idx:], in[:idx], nil
	}
}

// TakeWhileMN consumes between m and n characters satisfying pred,
// greedily. Fewer than m matching characters is an error.
func TakeWhileMN[I Input, E ParseError[I, E]](m, n int, pred func(rune) bool) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		idx, count := 0, 0
		for idx < len(in) && count < n {
			r, size := firstRune(in[idx:])
			if !pred(r) {
				break
			}
			idx += size
			count++
		}
		if count < m {
			var zero I
			return in, zero, NewError(MakeError[I, E](in, KindTakeWhileMN))
		}
		return in[idx:], in[:idx], nil
	}
}

// TakeTill0 consumes everything before the first character satisfying
// pred. It never fails.
func TakeTill0[I Input, E ParseError[I, E]](pred func(rune) bool) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		idx := scanWhile(in, func(r rune) bool { return !pred(r) })
		return in[idx:], in[:idx], nil
	}
}

// TakeTill1 is TakeTill0 requiring at least one consumed character.
func TakeTill1[I Input, E ParseError[I, E]](pred func(rune) bool) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		idx := scanWhile(in, func(r rune) bool { return !pred(r) })
		if idx == 0 {
			var zero I
			return in, zero, NewError(MakeError[I, E](in, KindTakeTill1))
		}
		return in[idx:], in[:idx], nil
	}
}

// TakeUntil consumes everything before the first occurrence of tag,
// leaving tag itself unconsumed.
func TakeUntil[I Input, E ParseError[I, E]](tag I) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		idx := indexOf(in, tag)
		if idx < 0 {
			var zero I
			return in, zero, NewError(MakeError[I, E](in, KindTakeUntil))
		}
		return in[idx:], in[:idx], nil
	}
}

// IsA consumes the longest nonempty run of characters found in set.
func IsA[I Input, E ParseError[I, E]](set string) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		idx := scanWhile(in, func(r rune) bool { return strings.ContainsRune(set, r) })
		if idx == 0 {
			var zero I
			return in, zero, NewError(MakeError[I, E](in, KindIsA))
		}
		return in[idx:], in[:idx], nil
	}
}

// IsNot consumes the longest nonempty run of characters absent from
// set.
func IsNot[I Input, E ParseError[I, E]](set string) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		idx := scanWhile(in, func(r rune) bool { return !strings.ContainsRune(set, r) })
		if idx == 0 {
			var zero I
			return in, zero, NewError(MakeError[I, E](in, KindIsNot))
		}
		return in[idx:], in[:idx], nil
	}
}

// Escaped matches a run of characters accepted by normal, interrupted
// by control-prefixed escape sequences whose second character is
// accepted by escapable. It returns the raw matched slice, escapes
// included. normal must fail on the control character and must always
// consume when it succeeds.
func Escaped[I Input, O1, O2 any, E ParseError[I, E]](normal Parser[I, O1, E], control rune, escapable Parser[I, O2, E]) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		var zero I
		cur := in
		for len(cur) > 0 {
			rest, _, err := normal(cur)
			if err == nil {
				if len(rest) == 0 {
					return in[len(in):], in, nil
				}
				if len(rest) == len(cur) {
					idx := Offset(in, rest)
					return in[idx:], in[:idx], nil
				}
				cur = rest
				continue
			}
			if err.IsFailure() || err.IsIncomplete() {
				return in, zero, err
			}
			r, size := firstRune(cur)
			if r != control {
				idx := Offset(in, cur)
				if idx == 0 {
					return in, zero, NewError(MakeError[I, E](in, KindEscaped))
				}
				return in[idx:], in[:idx], nil
			}
			if size >= len(cur) {
				return in, zero, NewError(MakeError[I, E](in, KindEscaped))
			}
			after, _, err := escapable(cur[size:])
			if err != nil {
				return in, zero, err
			}
			if len(after) == 0 {
				return in[len(in):], in, nil
			}
			cur = after
		}
		return in[len(in):], in, nil
	}
}
