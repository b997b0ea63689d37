// Copyright © 2025 The gnaw authors

package gnaw

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Locate reports the 1-based line and column of rest within input,
// where rest is a tail of input as returned by a failing parser.
// Column arithmetic is byte-based relative to the start of the line.
func Locate[I Input](input I, rest I) (line, column int) {
	offset := Offset(input, rest)
	prefix := string(input)[:offset]
	line = strings.Count(prefix, "\n") + 1
	lineBegin := 0
	if idx := strings.LastIndexByte(prefix, '\n'); idx >= 0 {
		lineBegin = idx + 1
	}
	column = offset - lineBegin + 1
	return line, column
}

// ConvertError renders a VerboseError raised while parsing input as a
// multi-line report. Each frame becomes one block, in accumulation
// order (deepest first), quoting the offending source line with a
// caret under the failing column.
//
// Column arithmetic is byte-based relative to the start of the quoted
// line. When a frame's position begins on a line after the one being
// quoted, the caret runs off the end of the quoted line; this
// approximation is intentional and kept stable for downstream
// consumers of the report text.
func ConvertError[I Input](input I, e VerboseError[I]) string {
	var sb strings.Builder
	src := string(input)
	for i, f := range e.Errors {
		offset := Offset(input, f.Input)
		sub := string(f.Input)

		if len(src) == 0 {
			switch c := f.Cause.(type) {
			case CauseChar:
				fmt.Fprintf(&sb, "%d: expected '%c', got empty input\n\n", i, rune(c))
			case CauseContext:
				fmt.Fprintf(&sb, "%d: in %s, got empty input\n\n", i, string(c))
			case CauseKind:
				fmt.Fprintf(&sb, "%d: in %v, got empty input\n\n", i, ErrorKind(c))
			}
			continue
		}

		prefix := src[:offset]
		lineNumber := strings.Count(prefix, "\n") + 1
		lineBegin := 0
		if idx := strings.LastIndexByte(prefix, '\n'); idx >= 0 {
			lineBegin = idx + 1
		}
		line := src[lineBegin:]
		if nl := strings.IndexByte(line, '\n'); nl >= 0 {
			line = line[:nl]
		}
		line = strings.TrimRightFunc(line, unicode.IsSpace)
		column := offset - lineBegin + 1
		caret := strings.Repeat(" ", column-1) + "^"

		switch c := f.Cause.(type) {
		case CauseChar:
			if len(sub) == 0 {
				fmt.Fprintf(&sb, "%d: at line %d:\n%s\n%s\nexpected '%c', got end of input\n\n",
					i, lineNumber, line, caret, rune(c))
			} else {
				actual, _ := utf8.DecodeRuneInString(sub)
				fmt.Fprintf(&sb, "%d: at line %d:\n%s\n%s\nexpected '%c', found '%c'\n\n",
					i, lineNumber, line, caret, rune(c), actual)
			}
		case CauseContext:
			fmt.Fprintf(&sb, "%d: at line %d, in %s:\n%s\n%s\n\n",
				i, lineNumber, string(c), line, caret)
		case CauseKind:
			fmt.Fprintf(&sb, "%d: at line %d, in %v:\n%s\n%s\n\n",
				i, lineNumber, ErrorKind(c), line, caret)
		}
	}
	return sb.String()
}
