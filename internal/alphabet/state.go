package alphabet

import "github.com/cx-luo/go-selfies/internal/chemtable"

// Branch-initiator sentinel states (§3, §4.4): entered while deriving the
// first atom inside a [BranchL_X] body. They carry the same numeric budget
// as a plain chain state of X, but are kept numerically distinct from
// {0, 1} so the decoder's branch/ring skip checks (which fire on literal
// states 0 and 1) never misfire on a freshly opened branch.
const (
	BranchInit1 = 9991
	BranchInit2 = 9992
	BranchInit3 = 9993
)

// RootState is the initial derivation state for a fragment's first atom,
// which has no parent bond to constrain it.
const RootState = chemtable.Infinity

// BranchInitiatorState returns the sentinel state for an arity-X branch
// body, x in [1, 3].
func BranchInitiatorState(x int) int {
	return 9990 + x
}

// IsBranchInitiator reports whether state is one of the branch-initiator
// sentinels.
func IsBranchInitiator(state int) bool {
	return state == BranchInit1 || state == BranchInit2 || state == BranchInit3
}

// BranchInitiatorX recovers the X suffix from a branch-initiator sentinel.
// Callers must only invoke this after IsBranchInitiator reports true.
func BranchInitiatorX(state int) int {
	return state - 9990
}

// ValenceCaps resolves an element's valence cap under the alphabet
// configuration currently in effect. Implemented by internal/alphabetconfig's
// Snapshot; kept as an interface here so this package never needs
// to import the configuration layer above it.
type ValenceCaps interface {
	Cap(element string, restrictedNitrogen bool) int
}

// NextState implements the derivation step table of §4.4: given the
// current remaining-bond budget (or a branch-initiator sentinel) and the
// next chain-atom symbol, it returns the SMILES text to emit for that atom
// (bond character plus element) and the new state — the atom's own
// remaining valence after the bond to its parent is subtracted.
//
// A requested bond order that exceeds what either side can support is
// silently downgraded to the largest order both can carry; if that
// downgrades all the way to zero, the atom is dropped and the chain
// segment terminates (emitted text is "", new state is 0), matching the
// decoder's total, error-free contract (§7).
func NextState(state int, sym Symbol, caps ValenceCaps, restrictedNitrogen bool) (atomText string, newState int) {
	if sym.Kind == KindEpsilon {
		return "", 0
	}

	budget := state
	if IsBranchInitiator(state) {
		budget = BranchInitiatorX(state)
	}

	cap := caps.Cap(sym.Element, restrictedNitrogen)
	requested := requestedBondOrder(sym.Bond)

	allowed := requested
	if budget < allowed {
		allowed = budget
	}
	if cap < allowed {
		allowed = cap
	}
	if allowed <= 0 {
		return "", 0
	}

	return chemtable.BondChar(allowed) + chemtable.CanonicalElement(sym.Element), cap - allowed
}

func requestedBondOrder(bond byte) int {
	switch bond {
	case '=':
		return chemtable.Double
	case '#':
		return chemtable.Triple
	default:
		return chemtable.Single
	}
}
