package vcradar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatcher_SubstringMatch(t *testing.T) {
	m := New([]string{"Sequoia Capital", "a16z", "Khosla Ventures"})

	assert.True(t, m.Match("Sequoia Capital, Founders Fund"))
	assert.True(t, m.Match("backed by a16z and others"))
	assert.False(t, m.Match("Founders Fund, Lightspeed"))
}

func TestMatcher_NormalizesCaseAndWhitespace(t *testing.T) {
	m := New([]string{"  Sequoia   Capital "})

	assert.True(t, m.Match("SEQUOIA capital"))
	assert.True(t, m.Match("sequoia  capital, tiger global"))
}

func TestMatcher_Matches(t *testing.T) {
	m := New([]string{"Sequoia Capital", "a16z"})

	found := m.Matches("Sequoia Capital, a16z, Accel")
	assert.Equal(t, []string{"sequoia capital", "a16z"}, found)
}

func TestMatcher_EmptyInputs(t *testing.T) {
	m := New([]string{"", "   ", "a16z"})

	assert.False(t, m.Match(""))
	assert.False(t, m.Match("   "))
	assert.True(t, m.Match("a16z"))
}
