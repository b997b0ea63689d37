// Copyright © 2025 The gnaw authors

package sexpr

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/luthersystems/gnaw"
	"github.com/luthersystems/gnaw/diagnostic"
)

// Diagnostic converts the error into a renderable diagnostic. The
// innermost frame supplies the message and highlighted span; enclosing
// grammar rules become trailing notes. file is a display name only, the
// span carries its own source text so the renderer never has to read
// file from disk.
func (e *Error) Diagnostic(file string) diagnostic.Diagnostic {
	d := diagnostic.Diagnostic{
		Severity: diagnostic.SeverityError,
		Message:  "parse error",
	}
	if len(e.Frames.Errors) == 0 {
		return d
	}

	inner := e.Frames.Errors[0]
	line, col := gnaw.Locate(e.Src, inner.Input)
	d.Message = causeMessage(inner.Cause, inner.Input)
	d.Spans = []diagnostic.Span{{
		File: file,
		Line: line,
		Col:  col,
		Text: sourceLine(e.Src, line),
	}}

	for _, f := range e.Frames.Errors[1:] {
		line, col := gnaw.Locate(e.Src, f.Input)
		d.Notes = append(d.Notes, fmt.Sprintf("%s at %s:%d:%d", frameNote(f.Cause), file, line, col))
	}
	return d
}

// causeMessage phrases the innermost cause, naming the character that
// was actually found when one is available.
func causeMessage(cause gnaw.Cause, rest string) string {
	switch c := cause.(type) {
	case gnaw.CauseChar:
		if rest == "" {
			return fmt.Sprintf("expected '%c', got end of input", rune(c))
		}
		found, _ := utf8.DecodeRuneInString(rest)
		return fmt.Sprintf("expected '%c', found '%c'", rune(c), found)
	case gnaw.CauseKind:
		return gnaw.ErrorKind(c).Description()
	case gnaw.CauseContext:
		return "in " + string(c)
	default:
		return cause.String()
	}
}

func frameNote(cause gnaw.Cause) string {
	if c, ok := cause.(gnaw.CauseContext); ok {
		return "in " + string(c)
	}
	return cause.String()
}

// sourceLine returns the 1-based line of src, or "" when out of range.
func sourceLine(src string, line int) string {
	if line <= 0 {
		return ""
	}
	for i := 1; ; i++ {
		next := strings.IndexByte(src, '\n')
		if i == line {
			if next < 0 {
				return src
			}
			return src[:next]
		}
		if next < 0 {
			return ""
		}
		src = src[next+1:]
	}
}
