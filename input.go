// Copyright © 2025 The gnaw authors

package gnaw

import (
	"bytes"
	"strings"
	"unicode/utf8"
)

// Input enumerates the source types parsers operate on. A position
// inside an input is represented as a suffix of it, so positions are
// themselves Inputs and slice back into the original without copying.
type Input interface {
	string | []byte
}

// Offset returns the byte distance from the start of base to the start
// of sub. sub must be a suffix of base, which holds for the remaining
// input returned by any parser and for every position stored in an
// error.
func Offset[I Input](base, sub I) int {
	return len(base) - len(sub)
}

// firstRune decodes the leading character of in. String inputs decode
// one UTF-8 rune; byte-slice inputs yield the first byte widened to a
// rune, matching the per-byte predicates used on binary data. The
// returned size is 0 when in is empty.
func firstRune[I Input](in I) (rune, int) {
	if len(in) == 0 {
		return 0, 0
	}
	switch v := any(in).(type) {
	case string:
		return utf8.DecodeRuneInString(v)
	case []byte:
		return rune(v[0]), 1
	}
	return 0, 0
}

// takeIndex returns the byte index just past the first n characters of
// in (runes for strings, bytes for byte slices) and whether in holds
// that many.
func takeIndex[I Input](in I, n int) (int, bool) {
	switch v := any(in).(type) {
	case string:
		idx := 0
		for ; n > 0; n-- {
			if idx >= len(v) {
				return 0, false
			}
			_, size := utf8.DecodeRuneInString(v[idx:])
			idx += size
		}
		return idx, true
	case []byte:
		if n < 0 || n > len(v) {
			return 0, false
		}
		return n, true
	}
	return 0, false
}

// scanWhile returns the byte index of the first character failing
// pred, or len(in) when every character passes.
func scanWhile[I Input](in I, pred func(rune) bool) int {
	idx := 0
	for idx < len(in) {
		r, size := firstRune(in[idx:])
		if !pred(r) {
			break
		}
		idx += size
	}
	return idx
}

// hasPrefix reports whether in begins with prefix.
func hasPrefix[I Input](in, prefix I) bool {
	return len(in) >= len(prefix) && string(in[:len(prefix)]) == string(prefix)
}

// equalFold reports whether a and b are equal under Unicode case
// folding.
func equalFold[I Input](a, b I) bool {
	switch va := any(a).(type) {
	case string:
		return strings.EqualFold(va, string(b))
	case []byte:
		return bytes.EqualFold(va, any(b).([]byte))
	}
	return false
}

// indexOf returns the byte index of the first occurrence of sub in in,
// or -1.
func indexOf[I Input](in, sub I) int {
	switch v := any(in).(type) {
	case string:
		return strings.Index(v, string(sub))
	case []byte:
		return bytes.Index(v, any(sub).([]byte))
	}
	return -1
}
