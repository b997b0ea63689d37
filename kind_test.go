// Copyright © 2025 The gnaw authors

package gnaw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindCodes(t *testing.T) {
	// Spot checks against the published numbering. These codes appear
	// in logs and reports and must never move.
	assert.Equal(t, uint32(1), KindTag.Code())
	assert.Equal(t, uint32(4), KindAlt.Code())
	assert.Equal(t, uint32(23), KindEOF.Code())
	assert.Equal(t, uint32(40), KindChar.Code())
	assert.Equal(t, uint32(50), KindEscaped.Code())
	assert.Equal(t, uint32(62), KindMany0.Code())
	assert.Equal(t, uint32(73), KindFloat.Code())
	assert.Equal(t, uint32(75), KindFail.Code())
}

func TestKindsOrdered(t *testing.T) {
	kinds := Kinds()
	require.NotEmpty(t, kinds)
	last := uint32(0)
	for _, k := range kinds {
		if k.Code() <= last {
			t.Errorf("kind %v with code %d out of order", k, k.Code())
		}
		last = k.Code()
	}
}

func TestKindStrings(t *testing.T) {
	used := make(map[string]bool)
	for _, k := range Kinds() {
		str := k.String()
		t.Log(str)
		if str == "" {
			t.Errorf("kind %d has empty string value", k.Code())
			continue
		}
		if used[str] {
			t.Errorf("kind string used twice: %v", k)
		}
		used[str] = true
		if k.Description() == "" {
			t.Errorf("kind %v has empty description", k)
		}
	}
}

func TestKindUnknown(t *testing.T) {
	// 11 sits in a numbering gap left by a retired kind.
	k := ErrorKind(11)
	assert.Equal(t, "ErrorKind(11)", k.String())
	assert.Equal(t, "unknown error kind", k.Description())
}
