package minigrep

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidPattern(t *testing.T) {
	g, err := New(`[unterminated`)
	require.Error(t, err)
	assert.Nil(t, g)
}

func TestGrep_MatchString(t *testing.T) {
	g, err := New(`^abc$`)
	require.NoError(t, err)
	defer g.Close()

	matched, err := g.MatchString("abc")
	require.NoError(t, err)
	assert.True(t, matched)

	matched, err = g.MatchString("xabc")
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestGrep_Run(t *testing.T) {
	g, err := New(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	require.NoError(t, err)
	defer g.Close()

	var out bytes.Buffer
	stats, err := g.Run(strings.NewReader("a@b.com\nnot-an-email\nx.y@z.co\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com\nx.y@z.co\n", out.String())
	assert.Equal(t, Stats{Lines: 3, Matched: 2}, stats)
}

func TestGrep_RunWithOptions(t *testing.T) {
	g, err := New(`skip`, WithInvert(), WithLineNumbers())
	require.NoError(t, err)
	defer g.Close()

	var out bytes.Buffer
	_, err = g.Run(strings.NewReader("keep\nskip me\nkeep too\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "1:keep\n3:keep too\n", out.String())
}

func TestGrep_CaseInsensitive(t *testing.T) {
	g, err := New(`warn`, WithCaseInsensitive())
	require.NoError(t, err)
	defer g.Close()

	matched, err := g.MatchString("WARN: low disk")
	require.NoError(t, err)
	assert.True(t, matched)
}

func TestGrep_CloseIdempotent(t *testing.T) {
	g, err := New(`abc`)
	require.NoError(t, err)

	assert.NoError(t, g.Close())
	assert.NoError(t, g.Close())
}
