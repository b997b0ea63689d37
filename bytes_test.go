// Copyright © 2025 The gnaw authors

package gnaw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTag(t *testing.T) {
	p := Tag[string, Error[string]]("hello")

	rest, out, err := p("hello world")
	require.Nil(t, err)
	assert.Equal(t, "hello", out)
	assert.Equal(t, " world", rest)

	rest, _, err = p("help")
	require.NotNil(t, err)
	assert.False(t, err.IsFailure())
	assert.Equal(t, Error[string]{Input: "help", Kind: KindTag}, err.Cause())
	assert.Equal(t, "help", rest)
}

func TestTagBytes(t *testing.T) {
	p := Tag[[]byte, Error[[]byte]]([]byte{0xca, 0xfe})

	rest, out, err := p([]byte{0xca, 0xfe, 0x01})
	require.Nil(t, err)
	assert.Equal(t, []byte{0xca, 0xfe}, out)
	assert.Equal(t, []byte{0x01}, rest)

	_, _, err = p([]byte{0xca, 0x01})
	require.NotNil(t, err)
	assert.Equal(t, KindTag, err.Cause().Kind)
}

func TestTagNoCase(t *testing.T) {
	p := TagNoCase[string, Error[string]]("select")

	rest, out, err := p("SELECT *")
	require.Nil(t, err)
	assert.Equal(t, "SELECT", out)
	assert.Equal(t, " *", rest)

	_, _, err = p("sel *")
	require.NotNil(t, err)
	assert.Equal(t, KindTag, err.Cause().Kind)
}

func TestTake(t *testing.T) {
	p := Take[string, Error[string]](2)

	rest, out, err := p("abc")
	require.Nil(t, err)
	assert.Equal(t, "ab", out)
	assert.Equal(t, "c", rest)

	// Strings are consumed by rune.
	rest, out, err = p("日本語")
	require.Nil(t, err)
	assert.Equal(t, "日本", out)
	assert.Equal(t, "語", rest)

	_, _, err = p("x")
	require.NotNil(t, err)
	assert.Equal(t, KindEOF, err.Cause().Kind)

	// Byte slices are consumed by byte.
	b := Take[[]byte, Error[[]byte]](2)
	brest, bout, err := b([]byte("日"))
	require.Nil(t, err)
	assert.Equal(t, []byte{0xe6, 0x97}, bout)
	assert.Equal(t, []byte{0xa5}, brest)
}

func TestTakeWhile(t *testing.T) {
	p0 := TakeWhile0[string, Error[string]](isDigit)
	rest, out, err := p0("123abc")
	require.Nil(t, err)
	assert.Equal(t, "123", out)
	assert.Equal(t, "abc", rest)

	rest, out, err = p0("abc")
	require.Nil(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, "abc", rest)

	p1 := TakeWhile1[string, Error[string]](isDigit)
	_, _, err = p1("abc")
	require.NotNil(t, err)
	assert.Equal(t, Error[string]{Input: "abc", Kind: KindTakeWhile1}, err.Cause())
}

func TestTakeWhileMN(t *testing.T) {
	p := TakeWhileMN[string, Error[string]](2, 4, isAlpha)

	rest, out, err := p("abcdefg")
	require.Nil(t, err)
	assert.Equal(t, "abcd", out)
	assert.Equal(t, "efg", rest)

	rest, out, err = p("ab1")
	require.Nil(t, err)
	assert.Equal(t, "ab", out)
	assert.Equal(t, "1", rest)

	_, _, err = p("a1")
	require.NotNil(t, err)
	assert.Equal(t, KindTakeWhileMN, err.Cause().Kind)
}

func TestTakeTill(t *testing.T) {
	stop := func(r rune) bool { return r == ':' }

	p0 := TakeTill0[string, Error[string]](stop)
	rest, out, err := p0("key:value")
	require.Nil(t, err)
	assert.Equal(t, "key", out)
	assert.Equal(t, ":value", rest)

	rest, out, err = p0(":value")
	require.Nil(t, err)
	assert.Equal(t, "", out)
	assert.Equal(t, ":value", rest)

	p1 := TakeTill1[string, Error[string]](stop)
	_, _, err = p1(":value")
	require.NotNil(t, err)
	assert.Equal(t, KindTakeTill1, err.Cause().Kind)
}

func TestTakeUntil(t *testing.T) {
	p := TakeUntil[string, Error[string]]("eof")

	rest, out, err := p("hello, worldeof")
	require.Nil(t, err)
	assert.Equal(t, "hello, world", out)
	assert.Equal(t, "eof", rest)

	_, _, err = p("hello, world")
	require.NotNil(t, err)
	assert.Equal(t, Error[string]{Input: "hello, world", Kind: KindTakeUntil}, err.Cause())
}

func TestIsA(t *testing.T) {
	p := IsA[string, Error[string]]("0123456789abcdefABCDEF")

	rest, out, err := p("deadBEEFg")
	require.Nil(t, err)
	assert.Equal(t, "deadBEEF", out)
	assert.Equal(t, "g", rest)

	_, _, err = p("ghij")
	require.NotNil(t, err)
	assert.Equal(t, KindIsA, err.Cause().Kind)
}

func TestIsNot(t *testing.T) {
	p := IsNot[string, Error[string]](" \t\r\n")

	rest, out, err := p("word rest")
	require.Nil(t, err)
	assert.Equal(t, "word", out)
	assert.Equal(t, " rest", rest)

	_, _, err = p(" leading")
	require.NotNil(t, err)
	assert.Equal(t, KindIsNot, err.Cause().Kind)
}

func TestEscaped(t *testing.T) {
	esc := Escaped(Digit1[string, Error[string]](), '\\', OneOf[string, Error[string]](`"n\`))

	rest, out, err := esc("123;")
	require.Nil(t, err)
	assert.Equal(t, "123", out)
	assert.Equal(t, ";", rest)

	rest, out, err = esc(`12\"34;`)
	require.Nil(t, err)
	assert.Equal(t, `12\"34`, out)
	assert.Equal(t, ";", rest)

	// Escape at the very end still consumes everything.
	rest, out, err = esc(`12\n`)
	require.Nil(t, err)
	assert.Equal(t, `12\n`, out)
	assert.Equal(t, "", rest)

	_, _, err = esc(";")
	require.NotNil(t, err)
	assert.Equal(t, Error[string]{Input: ";", Kind: KindEscaped}, err.Cause())

	// A dangling control character has nothing to escape.
	_, _, err = esc(`12\`)
	require.NotNil(t, err)
	assert.Equal(t, Error[string]{Input: `12\`, Kind: KindEscaped}, err.Cause())
}
