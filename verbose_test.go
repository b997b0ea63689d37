// Copyright © 2025 The gnaw authors

package gnaw

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerboseFrameOrder(t *testing.T) {
	e := MakeError[string, VerboseError[string]]("def", KindTag)
	e = AppendError("abcdef", KindAlt, e)
	e = e.AddContext("abcdef", "expr", e)

	require.Len(t, e.Errors, 3)
	assert.Equal(t, Frame[string]{Input: "def", Cause: CauseKind(KindTag)}, e.Errors[0])
	assert.Equal(t, Frame[string]{Input: "abcdef", Cause: CauseKind(KindAlt)}, e.Errors[1])
	assert.Equal(t, Frame[string]{Input: "abcdef", Cause: CauseContext("expr")}, e.Errors[2])
}

func TestVerboseFromChar(t *testing.T) {
	var v VerboseError[string]
	e := v.FromChar("rest", '(')
	require.Len(t, e.Errors, 1)
	assert.Equal(t, Frame[string]{Input: "rest", Cause: CauseChar('(')}, e.Errors[0])
}

func TestVerboseOrKeepsLater(t *testing.T) {
	first := MakeError[string, VerboseError[string]]("a", KindTag)
	second := MakeError[string, VerboseError[string]]("b", KindAlpha)
	assert.Equal(t, second, first.Or(second))
}

func TestVerboseExternal(t *testing.T) {
	var v VerboseError[string]
	e := v.FromExternalError("99x", KindMapRes, errors.New("out of range"))
	require.Len(t, e.Errors, 1)
	assert.Equal(t, Frame[string]{Input: "99x", Cause: CauseKind(KindMapRes)}, e.Errors[0])
}

func TestVerboseMessage(t *testing.T) {
	e := VerboseError[string]{Errors: []Frame[string]{
		{Input: "def", Cause: CauseChar('(')},
		{Input: "abcdef", Cause: CauseContext("list")},
		{Input: "abcdef", Cause: CauseKind(KindAlt)},
	}}
	want := "parse error:\n" +
		"expected '(' at: def\n" +
		"in list at: abcdef\n" +
		"Alt at: abcdef"
	assert.Equal(t, want, e.Error())
}

func TestCauseStrings(t *testing.T) {
	assert.Equal(t, "list", CauseContext("list").String())
	assert.Equal(t, "expected 'x'", CauseChar('x').String())
	assert.Equal(t, "Tag", CauseKind(KindTag).String())
}
