package selfies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeSimpleChain(t *testing.T) {
	out, err := EncodeFragment("CCC")
	require.NoError(t, err)
	assert.Equal(t, "[C][C][C]", out)
}

func TestEncodeDoubleBond(t *testing.T) {
	out, err := EncodeFragment("C=C")
	require.NoError(t, err)
	assert.Equal(t, "[C][=C]", out)
}

func TestEncodeBranch(t *testing.T) {
	out, err := EncodeFragment("CC(=O)O")
	require.NoError(t, err)
	assert.Contains(t, out, "[Branch1_2]")
	assert.Contains(t, out, "[=O]")
}

func TestEncodeAromaticRingKekulizesFirst(t *testing.T) {
	out, err := EncodeFragment("c1ccccc1")
	require.NoError(t, err)
	assert.NotContains(t, out, "epsilon")
	assert.Contains(t, out, "[C]")
}

func TestEncodeRejectsMalformedSmiles(t *testing.T) {
	_, err := EncodeFragment("C(")
	require.Error(t, err)
}

func TestEncodeRejectsUnkekulizableRing(t *testing.T) {
	_, err := EncodeFragment("c1cccc1")
	require.Error(t, err)
}

func TestEncodeDecodeRoundTripsSimpleChain(t *testing.T) {
	c := New()
	enc, err := c.Encode("CCO")
	require.NoError(t, err)
	assert.Equal(t, "CCO", c.Decode(enc))
}

func TestEncodeDecodeRoundTripsBranchedMolecule(t *testing.T) {
	c := New()
	enc, err := c.Encode("CC(=O)O")
	require.NoError(t, err)
	assert.Equal(t, "CC(=O)O", c.Decode(enc))
}
