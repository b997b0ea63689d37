// Copyright © 2025 The gnaw authors

package sexpr

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luthersystems/gnaw/diagnostic"
)

func parseDiagnostic(t *testing.T, src, file string) diagnostic.Diagnostic {
	t.Helper()
	_, err := Parse(src)
	require.Error(t, err)
	perr := &Error{}
	require.ErrorAs(t, err, &perr)
	return perr.Diagnostic(file)
}

func TestErrorDiagnostic(t *testing.T) {
	d := parseDiagnostic(t, "(abc]", "test.sexp")
	require.Equal(t, diagnostic.SeverityError, d.Severity)
	require.Equal(t, "expected ')', found ']'", d.Message)
	require.Equal(t, []diagnostic.Span{
		{File: "test.sexp", Line: 1, Col: 5, Text: "(abc]"},
	}, d.Spans)
	require.Equal(t, []string{"in list at test.sexp:1:1"}, d.Notes)
}

func TestErrorDiagnosticMultiline(t *testing.T) {
	d := parseDiagnostic(t, "(a\n  b]", "test.sexp")
	require.Equal(t, "expected ')', found ']'", d.Message)
	require.Equal(t, []diagnostic.Span{
		{File: "test.sexp", Line: 2, Col: 4, Text: "  b]"},
	}, d.Spans)
	require.Equal(t, []string{"in list at test.sexp:1:1"}, d.Notes)
}

func TestErrorDiagnosticEndOfInput(t *testing.T) {
	d := parseDiagnostic(t, "(a b", "test.sexp")
	require.Equal(t, "expected ')', got end of input", d.Message)
	require.Equal(t, []diagnostic.Span{
		{File: "test.sexp", Line: 1, Col: 5, Text: "(a b"},
	}, d.Spans)
	require.Equal(t, []string{"in list at test.sexp:1:1"}, d.Notes)
}

func TestErrorDiagnosticKind(t *testing.T) {
	d := parseDiagnostic(t, ")", "test.sexp")
	require.Equal(t, "end of input expected, or reached too soon", d.Message)
	require.Equal(t, []diagnostic.Span{
		{File: "test.sexp", Line: 1, Col: 1, Text: ")"},
	}, d.Spans)
	require.Empty(t, d.Notes)
}

func TestErrorDiagnosticRender(t *testing.T) {
	d := parseDiagnostic(t, "(abc]", "<repl>")

	var buf bytes.Buffer
	r := &diagnostic.Renderer{Color: diagnostic.ColorNever}
	require.NoError(t, r.Render(&buf, d))

	out := buf.String()
	require.Contains(t, out, "error: expected ')', found ']'")
	require.Contains(t, out, "--> <repl>:1:5")
	require.Contains(t, out, " 1 |  (abc]")
	require.Contains(t, out, "= note: in list at <repl>:1:1")
}
