// Copyright © 2025 The gnaw authors

/*
Package sexpr reads s-expressions.

	form    := quote | list | string | number | symbol
	quote   := "'" form
	list    := "(" form* ")"
	string  := '"' char* '"'
	number  := [+-]? digits ("." digits?)? ([eE] [+-]? digits)?
	symbol  := symstart symchar*

Whitespace and line comments introduced by ";" separate forms. A
failed parse reports every grammar rule that was active at the point
of failure along with the line it failed on.
*/
package sexpr

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/luthersystems/gnaw"
)

type verr = gnaw.VerboseError[string]

// symbolPunct lists the punctuation allowed in symbols. Digits may
// appear in a symbol but may not start one.
const symbolPunct = "._+-*/=<>!&~%?$:"

func isSymbolStart(r rune) bool {
	return unicode.IsLetter(r) || strings.ContainsRune(symbolPunct, r)
}

func isSymbolRune(r rune) bool {
	return isSymbolStart(r) || unicode.IsDigit(r)
}

// space consumes any run of whitespace and line comments.
var space = gnaw.Many0Count[string, string, verr](gnaw.Alt[string, string, verr](
	gnaw.Multispace1[string, verr](),
	gnaw.Preceded[string, rune, string, verr](
		gnaw.Char[string, verr](';'),
		gnaw.TakeTill0[string, verr](func(r rune) bool { return r == '\n' }),
	),
))

// form parses one expression after skipping leading space.
func form(in string) (string, *Node, *gnaw.Err[verr]) {
	cur, _, _ := space(in)
	p := gnaw.Alt[string, *Node, verr](quoted, list, strLit, number, symbol)
	rest, node, err := p(cur)
	if err != nil {
		return in, nil, err
	}
	return rest, node, nil
}

func quoted(in string) (string, *Node, *gnaw.Err[verr]) {
	p := gnaw.Context[string, *Node, verr]("quote",
		gnaw.Preceded[string, rune, *Node, verr](
			gnaw.Char[string, verr]('\''),
			gnaw.Cut[string, *Node, verr](form),
		))
	rest, child, err := p(in)
	if err != nil {
		return in, nil, err
	}
	return rest, Quote(child), nil
}

func list(in string) (string, *Node, *gnaw.Err[verr]) {
	closeParen := gnaw.Preceded[string, int, rune, verr](space, gnaw.Char[string, verr](')'))
	p := gnaw.Context[string, []*Node, verr]("list",
		gnaw.Preceded[string, rune, []*Node, verr](
			gnaw.Char[string, verr]('('),
			gnaw.Cut[string, []*Node, verr](
				gnaw.Terminated[string, []*Node, rune, verr](
					gnaw.Many0[string, *Node, verr](form),
					closeParen,
				))))
	rest, cells, err := p(in)
	if err != nil {
		return in, nil, err
	}
	return rest, List(cells...), nil
}

func strLit(in string) (string, *Node, *gnaw.Err[verr]) {
	content := gnaw.Opt[string, string, verr](gnaw.Escaped[string, string, rune, verr](
		gnaw.IsNot[string, verr]("\"\\"),
		'\\',
		gnaw.OneOf[string, verr](`"\nrt`),
	))
	p := gnaw.Context[string, string, verr]("string",
		gnaw.Preceded[string, rune, string, verr](
			gnaw.Char[string, verr]('"'),
			gnaw.Cut[string, string, verr](
				gnaw.Terminated[string, string, rune, verr](
					content,
					gnaw.Char[string, verr]('"'),
				))))
	rest, raw, err := p(in)
	if err != nil {
		return in, nil, err
	}
	return rest, Str(unescape(raw)), nil
}

func number(in string) (string, *Node, *gnaw.Err[verr]) {
	lit := gnaw.Terminated[string, string, struct{}, verr](
		gnaw.RecognizeFloat[string, verr](),
		gnaw.Not[string, rune, verr](gnaw.Satisfy[string, verr](isSymbolRune)),
	)
	p := gnaw.Context[string, *Node, verr]("number",
		gnaw.MapRes[string, string, *Node, verr](lit, numberNode))
	rest, node, err := p(in)
	if err != nil {
		return in, nil, err
	}
	return rest, node, nil
}

func numberNode(lit string) (*Node, error) {
	if strings.ContainsAny(lit, ".eE") {
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, err
		}
		return Float(f), nil
	}
	x, err := strconv.Atoi(lit)
	if err != nil {
		return nil, err
	}
	return Int(x), nil
}

func symbol(in string) (string, *Node, *gnaw.Err[verr]) {
	p := gnaw.Context[string, string, verr]("symbol",
		gnaw.Recognize[string, gnaw.Pair[rune, string], verr](
			gnaw.And[string, rune, string, verr](
				gnaw.Satisfy[string, verr](isSymbolStart),
				gnaw.TakeWhile0[string, verr](isSymbolRune),
			)))
	rest, name, err := p(in)
	if err != nil {
		return in, nil, err
	}
	return rest, Sym(name), nil
}

// unescape decodes the backslash escapes permitted inside string
// literals.
func unescape(raw string) string {
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 >= len(raw) {
			b.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		default:
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// Error is returned by Parse when the source does not scan.
type Error struct {
	// Src is the source text handed to Parse.
	Src string
	// Frames holds the structured failure, innermost cause first.
	Frames verr
	// Fatal reports whether the parser had committed to a grammar
	// rule when it failed.
	Fatal bool
}

func (e *Error) Error() string {
	return e.Frames.Error()
}

// Report renders the failure with line numbers and caret markers
// pointing into the offending source lines.
func (e *Error) Report() string {
	return gnaw.ConvertError(e.Src, e.Frames)
}

// Parse reads every form in src. On failure the returned error is a
// *Error carrying the annotated report.
func Parse(src string) ([]*Node, error) {
	p := gnaw.Terminated[string, []*Node, string, verr](
		gnaw.Many0[string, *Node, verr](form),
		gnaw.Preceded[string, int, string, verr](space, gnaw.Eof[string, verr]()),
	)
	_, nodes, err := p(src)
	if err != nil {
		return nil, &Error{Src: src, Frames: err.Cause(), Fatal: err.IsFailure()}
	}
	return nodes, nil
}
