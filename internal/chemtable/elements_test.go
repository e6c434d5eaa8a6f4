package chemtable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBondOrderFromChar(t *testing.T) {
	order, ok := BondOrderFromChar('=')
	assert.True(t, ok)
	assert.Equal(t, Double, order)

	order, ok = BondOrderFromChar('#')
	assert.True(t, ok)
	assert.Equal(t, Triple, order)

	_, ok = BondOrderFromChar('x')
	assert.False(t, ok)
}

func TestBondChar(t *testing.T) {
	assert.Equal(t, "", BondChar(Single))
	assert.Equal(t, "=", BondChar(Double))
	assert.Equal(t, "#", BondChar(Triple))
}

func TestIsAromaticElement(t *testing.T) {
	assert.True(t, IsAromaticElement("c"))
	assert.True(t, IsAromaticElement("se"))
	assert.False(t, IsAromaticElement("C"))
	assert.False(t, IsAromaticElement("Cl"))
	assert.False(t, IsAromaticElement(""))
	assert.False(t, IsAromaticElement("xx"), "lowercase alone isn't enough; only DefaultAromaticElements counts")
}

func TestDefaultValenceNitrogen(t *testing.T) {
	assert.Equal(t, 3, DefaultValence("N", true))
	assert.Equal(t, 5, DefaultValence("N", false))
	assert.Equal(t, 3, DefaultValence("n", true))
}

func TestDefaultValenceKnownElements(t *testing.T) {
	assert.Equal(t, 4, DefaultValence("C", true))
	assert.Equal(t, 2, DefaultValence("O", true))
	assert.Equal(t, 6, DefaultValence("S", true))
	assert.Equal(t, 1, DefaultValence("Cl", true))
}

func TestDefaultValenceUnknownElement(t *testing.T) {
	assert.Equal(t, Infinity, DefaultValence("Li", true))
}

func TestCanonicalElement(t *testing.T) {
	assert.Equal(t, "C", CanonicalElement("c"))
	assert.Equal(t, "Se", CanonicalElement("se"))
	assert.Equal(t, "Cl", CanonicalElement("Cl"))
}
