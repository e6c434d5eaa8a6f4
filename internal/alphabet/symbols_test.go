package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAtomSymbol(t *testing.T) {
	sym, ok := Parse("[=N]")
	require.True(t, ok)
	assert.Equal(t, KindAtom, sym.Kind)
	assert.Equal(t, byte('='), sym.Bond)
	assert.Equal(t, "N", sym.Element)
}

func TestParseExplAtomSymbol(t *testing.T) {
	sym, ok := Parse("[Liexpl]")
	require.True(t, ok)
	assert.Equal(t, KindAtom, sym.Kind)
	assert.Equal(t, byte(0), sym.Bond)
	assert.Equal(t, "Li", sym.Element)
}

func TestParseEpsilon(t *testing.T) {
	sym, ok := Parse("[epsilon]")
	require.True(t, ok)
	assert.Equal(t, KindEpsilon, sym.Kind)
}

func TestParseBranchSymbol(t *testing.T) {
	sym, ok := Parse("[Branch2_3]")
	require.True(t, ok)
	assert.Equal(t, KindBranch, sym.Kind)
	assert.Equal(t, 2, sym.L)
	assert.Equal(t, 3, sym.X)
}

func TestParseRingSymbol(t *testing.T) {
	sym, ok := Parse("[Ring2]")
	require.True(t, ok)
	assert.Equal(t, KindRing, sym.Kind)
	assert.Equal(t, 2, sym.L)
	assert.False(t, sym.Explicit)
	assert.Equal(t, byte(0), sym.Bond)
}

func TestParseExplRingSymbol(t *testing.T) {
	sym, ok := Parse("[=ExplRing1]")
	require.True(t, ok)
	assert.Equal(t, KindRing, sym.Kind)
	assert.Equal(t, 1, sym.L)
	assert.True(t, sym.Explicit)
	assert.Equal(t, byte('='), sym.Bond)
}

func TestParseMalformed(t *testing.T) {
	for _, raw := range []string{"", "[", "[]", "NoBrackets", "[Branch9_1]", "[Ring0]"} {
		_, ok := Parse(raw)
		assert.False(t, ok, "expected %q to fail parsing", raw)
	}
}

func TestSymbolTextRoundTrip(t *testing.T) {
	cases := []string{
		AtomSymbolText("", "C"),
		AtomSymbolText("=", "N"),
		AtomSymbolText("", "Li"),
		AtomSymbolText("#", "Li"),
		BranchSymbolText(3, 2),
		RingSymbolText(1, ""),
		RingSymbolText(2, "="),
		EpsilonSymbolText,
	}
	for _, raw := range cases {
		_, ok := Parse(raw)
		assert.True(t, ok, "expected %q to parse", raw)
	}
	assert.Equal(t, "[C]", AtomSymbolText("", "C"))
	assert.Equal(t, "[Liexpl]", AtomSymbolText("", "Li"))
	assert.Equal(t, "[#Liexpl]", AtomSymbolText("#", "Li"))
	assert.Equal(t, "[Branch3_2]", BranchSymbolText(3, 2))
	assert.Equal(t, "[Ring1]", RingSymbolText(1, ""))
	assert.Equal(t, "[=ExplRing2]", RingSymbolText(2, "="))
}
