// Copyright © 2025 The gnaw authors

package sexpr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderAll(nodes []*Node) string {
	parts := make([]string, len(nodes))
	for i, n := range nodes {
		parts[i] = n.String()
	}
	return strings.Join(parts, " ")
}

func TestParse(t *testing.T) {
	tests := []struct {
		source string
		render string
	}{
		{"", ""},
		{"x", "x"},
		{"()", "()"},
		{"(+ 1 2)", "(+ 1 2)"},
		{"( + 1 2 )", "(+ 1 2)"},
		{"(a (b c))", "(a (b c))"},
		{"'(1 2)", "'(1 2)"},
		{"''x", "''x"},
		{`"hi"`, `"hi"`},
		{`""`, `""`},
		{`"a\nb"`, `"a\nb"`},
		{`"say \"hi\""`, `"say \"hi\""`},
		{"1.5", "1.5"},
		{"-4", "-4"},
		{"+4", "4"},
		{"1e3", "1000"},
		{"5.", "5"},
		{".5", "0.5"},
		{":key", ":key"},
		{"-", "-"},
		{"<=", "<="},
		{"list->vector", "list->vector"},
		{"a b c", "a b c"},
		{"a ; trailing comment\nb", "a b"},
		{"; nothing here\n", ""},
		{";; header\n(f x) ; call\n", "(f x)"},
		{"(defun add (x y)\n  (+ x y))", "(defun add (x y) (+ x y))"},
		{"(let ((a 1) (b 2.5)) (* a b))", "(let ((a 1) (b 2.5)) (* a b))"},
	}
	for i, test := range tests {
		nodes, err := Parse(test.source)
		if !assert.NoError(t, err, "test %d: %q", i, test.source) {
			continue
		}
		assert.Equal(t, test.render, renderAll(nodes), "test %d: %q", i, test.source)
	}
}

func TestParseValues(t *testing.T) {
	nodes, err := Parse(`(a 1 2.5 "s" 'b)`)
	require.NoError(t, err)
	want := []*Node{List(
		Sym("a"),
		Int(1),
		Float(2.5),
		Str("s"),
		Quote(Sym("b")),
	)}
	assert.Equal(t, want, nodes)
}

func TestParseStringEscapes(t *testing.T) {
	nodes, err := Parse(`"a\tb\r\n\\c\"d"`)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, NString, nodes[0].Kind)
	assert.Equal(t, "a\tb\r\n\\c\"d", nodes[0].Str)
}

func TestParseNumberKinds(t *testing.T) {
	tests := []struct {
		source string
		kind   NodeKind
	}{
		{"0", NInt},
		{"-17", NInt},
		{"250", NInt},
		{"2.50e2", NFloat},
		{"1e3", NFloat},
		{"-0.25", NFloat},
	}
	for i, test := range tests {
		nodes, err := Parse(test.source)
		require.NoError(t, err, "test %d", i)
		require.Len(t, nodes, 1, "test %d", i)
		assert.Equal(t, test.kind, nodes[0].Kind, "test %d: %q", i, test.source)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		source string
		fatal  bool
		report string
	}{
		{"(a b", true, "in list"},
		{"'", true, "in quote"},
		{`"abc`, true, "in string"},
		{")", false, "in EOF"},
		{"(a))", false, "in EOF"},
		{"99999999999999999999", false, "in EOF"},
		{`"a\x"`, true, "in string"},
	}
	for i, test := range tests {
		nodes, err := Parse(test.source)
		if !assert.Error(t, err, "test %d: %q", i, test.source) {
			continue
		}
		assert.Nil(t, nodes, "test %d", i)
		perr := &Error{}
		require.ErrorAs(t, err, &perr, "test %d", i)
		assert.Equal(t, test.fatal, perr.Fatal, "test %d: %q", i, test.source)
		assert.Contains(t, perr.Report(), test.report, "test %d: %q", i, test.source)
		assert.Contains(t, perr.Error(), "parse error:", "test %d", i)
	}
}

func TestParseErrorReport(t *testing.T) {
	_, err := Parse("(abc]")
	require.Error(t, err)
	perr := &Error{}
	require.ErrorAs(t, err, &perr)
	want := "0: at line 1:\n" +
		"(abc]\n" +
		"    ^\n" +
		"expected ')', found ']'\n" +
		"\n" +
		"1: at line 1, in list:\n" +
		"(abc]\n" +
		"^\n" +
		"\n"
	assert.Equal(t, want, perr.Report())
}

func TestParseErrorReportMultiline(t *testing.T) {
	_, err := Parse("(a\n  b]")
	require.Error(t, err)
	perr := &Error{}
	require.ErrorAs(t, err, &perr)
	want := "0: at line 2:\n" +
		"  b]\n" +
		"   ^\n" +
		"expected ')', found ']'\n" +
		"\n" +
		"1: at line 1, in list:\n" +
		"(a\n" +
		"^\n" +
		"\n"
	assert.Equal(t, want, perr.Report())
}

func TestParseRoundTrip(t *testing.T) {
	sources := []string{
		"(defun fib (n) (if (< n 2) n (+ (fib (- n 1)) (fib (- n 2)))))",
		`(print "hello" 'world 3.25)`,
		"()",
		"'()",
	}
	for i, source := range sources {
		nodes, err := Parse(source)
		require.NoError(t, err, "test %d", i)
		again, err := Parse(renderAll(nodes))
		require.NoError(t, err, "test %d", i)
		assert.Equal(t, renderAll(nodes), renderAll(again), "test %d", i)
	}
}

func TestNodeKindString(t *testing.T) {
	kinds := map[NodeKind]string{
		NInvalid:     "invalid",
		NSymbol:      "symbol",
		NInt:         "int",
		NFloat:       "float",
		NString:      "string",
		NList:        "list",
		NQuote:       "quote",
		numNodeKinds: "invalid",
	}
	for kind, want := range kinds {
		assert.Equal(t, want, kind.String())
	}
}

func TestNodeString(t *testing.T) {
	assert.Equal(t, "#<invalid>", (&Node{}).String())
	assert.Equal(t, "'(x 1)", Quote(List(Sym("x"), Int(1))).String())
	assert.Equal(t, `"a\"b"`, Str(`a"b`).String())
}
