package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const emailPattern = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`

func TestNewPortable_InvalidPattern(t *testing.T) {
	m, err := NewPortable(Config{Pattern: `[unterminated`})
	require.Error(t, err)
	assert.Nil(t, m)
	assert.Contains(t, err.Error(), "compiling pattern")
}

func TestNewPortable_NULInPattern(t *testing.T) {
	m, err := NewPortable(Config{Pattern: "abc\x00def"})
	require.Error(t, err)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, ErrNULInPattern)
}

func TestPortable_AnchoredFullLine(t *testing.T) {
	m, err := NewPortable(Config{Pattern: `^abc$`})
	require.NoError(t, err)
	defer m.Close()

	matched, err := m.MatchLine([]byte("abc"))
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = m.MatchLine([]byte("xabc"))
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestPortable_EmailScenario(t *testing.T) {
	m, err := NewPortable(Config{Pattern: emailPattern})
	require.NoError(t, err)
	defer m.Close()

	cases := []struct {
		line    string
		matched bool
	}{
		{"a@b.com", true},
		{"not-an-email", false},
		{"x.y@z.co", true},
	}
	for _, tc := range cases {
		matched, err := m.MatchLine([]byte(tc.line))
		require.NoError(t, err, tc.line)
		assert.Equal(t, tc.matched, matched, tc.line)
	}
}

func TestPortable_MultipleOccurrencesStillBoolean(t *testing.T) {
	m, err := NewPortable(Config{Pattern: `ab`})
	require.NoError(t, err)
	defer m.Close()

	matched, err := m.MatchLine([]byte("ab ab ab"))
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = m.MatchLine([]byte("ab"))
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestPortable_CaseInsensitive(t *testing.T) {
	m, err := NewPortable(Config{Pattern: `error`, CaseInsensitive: true})
	require.NoError(t, err)
	defer m.Close()

	matched, err := m.MatchLine([]byte("ERROR: disk full"))
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestPortable_CaseInsensitiveBacktrackingFallback(t *testing.T) {
	// lookahead is rejected by RE2 mode, so compilation falls back to
	// the default mode; caseless must survive the fallback
	m, err := NewPortable(Config{Pattern: `(?=.*auth)error`, CaseInsensitive: true})
	require.NoError(t, err)
	defer m.Close()

	matched, err := m.MatchLine([]byte("ERROR: auth token expired"))
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = m.MatchLine([]byte("auth ok, nothing to report"))
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestPortable_NoStateLeakBetweenLines(t *testing.T) {
	m, err := NewPortable(Config{Pattern: `needle`})
	require.NoError(t, err)
	defer m.Close()

	matched, err := m.MatchLine([]byte("needle in a haystack"))
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = m.MatchLine([]byte("just hay"))
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestPortable_IdempotentCompile(t *testing.T) {
	m1, err := NewPortable(Config{Pattern: emailPattern})
	require.NoError(t, err)
	defer m1.Close()

	m2, err := NewPortable(Config{Pattern: emailPattern})
	require.NoError(t, err)
	defer m2.Close()

	for _, line := range []string{"a@b.com", "not-an-email", "x.y@z.co"} {
		r1, err := m1.MatchLine([]byte(line))
		require.NoError(t, err)
		r2, err := m2.MatchLine([]byte(line))
		require.NoError(t, err)
		assert.Equal(t, r1, r2, line)
	}
}

func TestPortable_CloseIdempotent(t *testing.T) {
	m, err := NewPortable(Config{Pattern: `abc`})
	require.NoError(t, err)

	assert.NoError(t, m.Close())
	assert.NoError(t, m.Close())
}

func TestNew_DispatchesToWorkingMatcher(t *testing.T) {
	m, err := New(Config{Pattern: `^abc$`})
	require.NoError(t, err)
	defer m.Close()

	matched, err := m.MatchLine([]byte("abc"))
	require.NoError(t, err)
	assert.True(t, matched)
}
