// Copyright © 2025 The gnaw authors

package gnaw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// labelStack keeps nothing but the labels attached while unwinding. It
// exists to prove Context dispatches through the representation
// instead of hardcoding one.
type labelStack struct {
	Defaults[string, labelStack]

	Labels []string
}

func (labelStack) FromErrorKind(string, ErrorKind) labelStack { return labelStack{} }

func (labelStack) Append(_ string, _ ErrorKind, other labelStack) labelStack { return other }

func (labelStack) AddContext(_ string, label string, other labelStack) labelStack {
	other.Labels = append(other.Labels, label)
	return other
}

func TestContext(t *testing.T) {
	p := Context("greeting", Tag[string, VerboseError[string]]("hello"))

	rest, out, err := p("hello world")
	require.Nil(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, " world", rest)

	_, _, err = p("goodbye")
	require.NotNil(t, err)
	frames := err.Cause().Errors
	require.Len(t, frames, 2)
	assert.Equal(t, Frame[string]{Input: "goodbye", Cause: CauseKind(KindTag)}, frames[0])
	assert.Equal(t, Frame[string]{Input: "goodbye", Cause: CauseContext("greeting")}, frames[1])
}

func TestContextLabelPosition(t *testing.T) {
	// The label lands at the position the labeled parser started from,
	// not where the inner failure happened.
	p := Context("pair", Preceded(
		Char[string, VerboseError[string]]('('),
		Char[string, VerboseError[string]](')'),
	))
	_, _, err := p("(x")
	require.NotNil(t, err)
	frames := err.Cause().Errors
	require.Len(t, frames, 2)
	assert.Equal(t, Frame[string]{Input: "x", Cause: CauseChar(')')}, frames[0])
	assert.Equal(t, Frame[string]{Input: "(x", Cause: CauseContext("pair")}, frames[1])
}

func TestContextPreservesSeverity(t *testing.T) {
	p := Context("item", Cut(Tag[string, VerboseError[string]]("x")))
	_, _, err := p("y")
	require.NotNil(t, err)
	assert.True(t, err.IsFailure())
	// The label is still attached to the fatal error.
	require.Len(t, err.Cause().Errors, 2)
	assert.Equal(t, CauseContext("item"), err.Cause().Errors[1].Cause)
}

func TestContextIncompletePassesThrough(t *testing.T) {
	length := Map(AnyChar[string, VerboseError[string]](), func(r rune) int {
		return int(r - '0')
	})
	p := Context("packet", LengthData(length))
	_, _, err := p("9ab")
	require.NotNil(t, err)
	assert.True(t, err.IsIncomplete())
	assert.Equal(t, Needed(7), err.Needed())
	assert.Empty(t, err.Cause().Errors)
}

func TestContextDefaultDropsLabel(t *testing.T) {
	p := Context("greeting", Tag[string, Error[string]]("hello"))
	_, _, err := p("goodbye")
	require.NotNil(t, err)
	assert.Equal(t, Error[string]{Input: "goodbye", Kind: KindTag}, err.Cause())
}

func TestContextCustomRepresentation(t *testing.T) {
	p := Context("outer", Context("inner", Tag[string, labelStack]("x")))
	_, _, err := p("y")
	require.NotNil(t, err)
	assert.Equal(t, []string{"inner", "outer"}, err.Cause().Labels)
}
