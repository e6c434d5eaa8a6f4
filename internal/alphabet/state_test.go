package alphabet

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCaps map[string]int

func (f fakeCaps) Cap(element string, restrictedNitrogen bool) int {
	if v, ok := f[element]; ok {
		return v
	}
	if element == "N" {
		if restrictedNitrogen {
			return 3
		}
		return 5
	}
	return 4
}

func TestNextStateSimpleChain(t *testing.T) {
	caps := fakeCaps{"C": 4}
	sym, ok := Parse("[C]")
	assert := assert.New(t)
	assert.True(ok)

	text, state := NextState(RootState, sym, caps, true)
	assert.Equal("C", text)
	assert.Equal(3, state) // cap 4 minus the single bond consumed
}

func TestNextStateDoubleBond(t *testing.T) {
	caps := fakeCaps{"C": 4}
	sym, _ := Parse("[=C]")
	text, state := NextState(2, sym, caps, true)
	assert.Equal(t, "=C", text)
	assert.Equal(t, 2, state)
}

func TestNextStateDowngradesWhenParentBudgetInsufficient(t *testing.T) {
	caps := fakeCaps{"C": 4}
	sym, _ := Parse("[#C]") // requests a triple bond
	text, state := NextState(1, sym, caps, true)
	assert.Equal(t, "C", text) // downgraded to single, parent only had budget 1
	assert.Equal(t, 3, state)
}

func TestNextStateZeroBudgetTerminatesChain(t *testing.T) {
	caps := fakeCaps{"C": 4}
	sym, _ := Parse("[C]")
	text, state := NextState(0, sym, caps, true)
	assert.Equal(t, "", text)
	assert.Equal(t, 0, state)
}

func TestNextStateEpsilonAlwaysTerminates(t *testing.T) {
	caps := fakeCaps{}
	sym, _ := Parse("[epsilon]")
	text, state := NextState(RootState, sym, caps, true)
	assert.Equal(t, "", text)
	assert.Equal(t, 0, state)
}

func TestNextStateBranchInitiatorUsesXAsBudget(t *testing.T) {
	caps := fakeCaps{"C": 4}
	sym, _ := Parse("[#C]") // requests a triple bond
	text, state := NextState(BranchInitiatorState(2), sym, caps, true)
	assert.Equal(t, "=C", text) // clamped to the branch's declared arity, 2
	assert.Equal(t, 2, state)
}

func TestNextStateRestrictedNitrogen(t *testing.T) {
	caps := fakeCaps{}
	sym, _ := Parse("[N]")
	_, stateRestricted := NextState(RootState, sym, caps, true)
	_, stateUnrestricted := NextState(RootState, sym, caps, false)
	assert.Equal(t, 2, stateRestricted)   // cap 3 minus 1
	assert.Equal(t, 4, stateUnrestricted) // cap 5 minus 1
}

func TestBranchInitiatorHelpers(t *testing.T) {
	assert.True(t, IsBranchInitiator(BranchInit1))
	assert.True(t, IsBranchInitiator(BranchInit2))
	assert.True(t, IsBranchInitiator(BranchInit3))
	assert.False(t, IsBranchInitiator(1))
	assert.Equal(t, 1, BranchInitiatorX(BranchInit1))
	assert.Equal(t, 3, BranchInitiatorX(BranchInitiatorState(3)))
}
