// Copyright © 2025 The gnaw authors

package gnaw

import "strings"

// Char matches the single character c.
func Char[I Input, E ParseError[I, E]](c rune) Parser[I, rune, E] {
	return func(in I) (I, rune, *Err[E]) {
		r, size := firstRune(in)
		if size == 0 || r != c {
			var zero E
			return in, 0, NewError(zero.FromChar(in, c))
		}
		return in[size:], c, nil
	}
}

// AnyChar matches any single character.
func AnyChar[I Input, E ParseError[I, E]]() Parser[I, rune, E] {
	return func(in I) (I, rune, *Err[E]) {
		r, size := firstRune(in)
		if size == 0 {
			return in, 0, NewError(MakeError[I, E](in, KindEOF))
		}
		return in[size:], r, nil
	}
}

// Satisfy matches a single character accepted by pred.
func Satisfy[I Input, E ParseError[I, E]](pred func(rune) bool) Parser[I, rune, E] {
	return func(in I) (I, rune, *Err[E]) {
		r, size := firstRune(in)
		if size == 0 || !pred(r) {
			return in, 0, NewError(MakeError[I, E](in, KindSatisfy))
		}
		return in[size:], r, nil
	}
}

// OneOf matches a single character found in set.
func OneOf[I Input, E ParseError[I, E]](set string) Parser[I, rune, E] {
	return func(in I) (I, rune, *Err[E]) {
		r, size := firstRune(in)
		if size == 0 || !strings.ContainsRune(set, r) {
			return in, 0, NewError(MakeError[I, E](in, KindOneOf))
		}
		return in[size:], r, nil
	}
}

// NoneOf matches a single character absent from set.
func NoneOf[I Input, E ParseError[I, E]](set string) Parser[I, rune, E] {
	return func(in I) (I, rune, *Err[E]) {
		r, size := firstRune(in)
		if size == 0 || strings.ContainsRune(set, r) {
			return in, 0, NewError(MakeError[I, E](in, KindNoneOf))
		}
		return in[size:], r, nil
	}
}

func isAlpha(r rune) bool        { return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z') }
func isDigit(r rune) bool        { return '0' <= r && r <= '9' }
func isHexDigit(r rune) bool     { return isDigit(r) || ('a' <= r && r <= 'f') || ('A' <= r && r <= 'F') }
func isOctDigit(r rune) bool     { return '0' <= r && r <= '7' }
func isAlphanumeric(r rune) bool { return isAlpha(r) || isDigit(r) }
func isSpace(r rune) bool        { return r == ' ' || r == '\t' }
func isMultispace(r rune) bool   { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

// class1 builds a one-or-more character-class parser failing with
// kind.
func class1[I Input, E ParseError[I, E]](pred func(rune) bool, kind ErrorKind) Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		idx := scanWhile(in, pred)
		if idx == 0 {
			var zero I
			return in, zero, NewError(MakeError[I, E](in, kind))
		}
		return in[idx:], in[:idx], nil
	}
}

// Alpha0 consumes zero or more ASCII letters. It never fails.
func Alpha0[I Input, E ParseError[I, E]]() Parser[I, I, E] { return TakeWhile0[I, E](isAlpha) }

// Alpha1 consumes one or more ASCII letters.
func Alpha1[I Input, E ParseError[I, E]]() Parser[I, I, E] { return class1[I, E](isAlpha, KindAlpha) }

// Digit0 consumes zero or more ASCII digits. It never fails.
func Digit0[I Input, E ParseError[I, E]]() Parser[I, I, E] { return TakeWhile0[I, E](isDigit) }

// Digit1 consumes one or more ASCII digits.
func Digit1[I Input, E ParseError[I, E]]() Parser[I, I, E] { return class1[I, E](isDigit, KindDigit) }

// HexDigit0 consumes zero or more hexadecimal digits. It never fails.
func HexDigit0[I Input, E ParseError[I, E]]() Parser[I, I, E] { return TakeWhile0[I, E](isHexDigit) }

// HexDigit1 consumes one or more hexadecimal digits.
func HexDigit1[I Input, E ParseError[I, E]]() Parser[I, I, E] {
	return class1[I, E](isHexDigit, KindHexDigit)
}

// OctDigit0 consumes zero or more octal digits. It never fails.
func OctDigit0[I Input, E ParseError[I, E]]() Parser[I, I, E] { return TakeWhile0[I, E](isOctDigit) }

// OctDigit1 consumes one or more octal digits.
func OctDigit1[I Input, E ParseError[I, E]]() Parser[I, I, E] {
	return class1[I, E](isOctDigit, KindOctDigit)
}

// Alphanumeric0 consumes zero or more ASCII letters and digits. It
// never fails.
func Alphanumeric0[I Input, E ParseError[I, E]]() Parser[I, I, E] {
	return TakeWhile0[I, E](isAlphanumeric)
}

// Alphanumeric1 consumes one or more ASCII letters and digits.
func Alphanumeric1[I Input, E ParseError[I, E]]() Parser[I, I, E] {
	return class1[I, E](isAlphanumeric, KindAlphaNumeric)
}

// Space0 consumes zero or more spaces and tabs. It never fails.
func Space0[I Input, E ParseError[I, E]]() Parser[I, I, E] { return TakeWhile0[I, E](isSpace) }

// Space1 consumes one or more spaces and tabs.
func Space1[I Input, E ParseError[I, E]]() Parser[I, I, E] { return class1[I, E](isSpace, KindSpace) }

// Multispace0 consumes zero or more spaces, tabs, carriage returns,
// and newlines. It never fails.
func Multispace0[I Input, E ParseError[I, E]]() Parser[I, I, E] {
	return TakeWhile0[I, E](isMultispace)
}

// Multispace1 consumes one or more spaces, tabs, carriage returns, and
// newlines.
func Multispace1[I Input, E ParseError[I, E]]() Parser[I, I, E] {
	return class1[I, E](isMultispace, KindMultiSpace)
}

// Newline matches a line feed.
func Newline[I Input, E ParseError[I, E]]() Parser[I, rune, E] { return Char[I, E]('\n') }

// Tab matches a horizontal tab.
func Tab[I Input, E ParseError[I, E]]() Parser[I, rune, E] { return Char[I, E]('\t') }

// CrLf matches the two-character sequence "\r\n".
func CrLf[I Input, E ParseError[I, E]]() Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		if len(in) >= 2 && in[0] == '\r' && in[1] == '\n' {
			return in[2:], in[:2], nil
		}
		var zero I
		return in, zero, NewError(MakeError[I, E](in, KindCrLf))
	}
}

// LineEnding matches "\n" or "\r\n".
func LineEnding[I Input, E ParseError[I, E]]() Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		switch {
		case len(in) >= 1 && in[0] == '\n':
			return in[1:], in[:1], nil
		case len(in) >= 2 && in[0] == '\r' && in[1] == '\n':
			return in[2:], in[:2], nil
		}
		var zero I
		return in, zero, NewError(MakeError[I, E](in, KindCrLf))
	}
}

// NotLineEnding consumes everything before the next line ending,
// without consuming the ending itself. A bare '\r' not followed by
// '\n' is an error.
func NotLineEnding[I Input, E ParseError[I, E]]() Parser[I, I, E] {
	return func(in I) (I, I, *Err[E]) {
		idx := scanWhile(in, func(r rune) bool { return r != '\r' && r != '\n' })
		if idx < len(in) && in[idx] == '\r' && (idx+1 >= len(in) || in[idx+1] != '\n') {
			var zero I
			return in, zero, NewError(MakeError[I, E](in, KindTag))
		}
		return in[idx:], in[:idx], nil
	}
}
