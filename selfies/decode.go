// Package selfies coding=utf-8
// @Project : go-selfies
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : decode.go
// @Software: GoLand
//
// Package selfies is the public SMILES <-> SELFIES codec surface. Decode
// is total: every input string, however malformed, produces some SMILES
// output rather than an error (§7). Encode can fail, since it must reject
// SMILES it cannot parse or kekulize.
package selfies

import (
	"strconv"
	"strings"

	"github.com/cx-luo/go-selfies/internal/alphabet"
	"github.com/cx-luo/go-selfies/internal/chemtable"
)

// symbolScanner walks a SELFIES string bracket pair by bracket pair,
// tolerating stray characters between brackets the same way the format's
// reference walker does. next returns "" forever once the string is
// exhausted, so callers can loop without a separate "more data" check.
type symbolScanner struct {
	s   string
	pos int
}

func newSymbolScanner(s string) *symbolScanner { return &symbolScanner{s: s} }

func (sc *symbolScanner) next() string {
	rest := sc.s[sc.pos:]
	left := strings.IndexByte(rest, '[')
	if left < 0 {
		sc.pos = len(sc.s)
		return ""
	}
	left += sc.pos
	right := strings.IndexByte(sc.s[left+1:], ']')
	if right < 0 {
		sc.pos = len(sc.s)
		return ""
	}
	right += left + 1
	sc.pos = right + 1
	return sc.s[left : right+1]
}

// derivedAtom is one atom materialized during derivation: its SMILES text
// (bond character plus element), its remaining valence budget, and the
// index of the atom it is bonded to (-1 for a fragment's first atom).
type derivedAtom struct {
	text   string
	budget int
	parent int
}

// ringEdge is a ring closure recorded during derivation, resolved against
// the finished atom sequence afterward by formRingsBilocally.
type ringEdge struct {
	left, right int
	bondChar    string
}

// branchSpan records that derived[start..end] (inclusive) was produced by
// a single branch body, so decodeFragment can wrap it in parentheses.
type branchSpan struct {
	start, end int
}

// decodeFragment translates one dot-free SELFIES fragment into SMILES.
func decodeFragment(fragment string, caps alphabet.ValenceCaps, restrictedNitrogen bool) string {
	var derived []derivedAtom
	var rings []ringEdge
	var branches []branchSpan

	deriveSelfies(fragment, alphabet.RootState, caps, restrictedNitrogen, &derived, -1, &rings, &branches)
	formRingsBilocally(derived, rings)

	lbLocs := make(map[int]int)
	rbLocs := make(map[int]int)
	for _, b := range branches {
		lbLocs[b.start]++
		rbLocs[b.end]++
	}

	var sb strings.Builder
	for i, atom := range derived {
		sb.WriteString(strings.Repeat("(", lbLocs[i]))
		sb.WriteString(atom.text)
		sb.WriteString(strings.Repeat(")", rbLocs[i]))
	}
	return sb.String()
}

// deriveSelfies is the recursive derivation step (§4.6): it walks symbol
// by symbol, appending chain atoms to derived, recursing into branch
// bodies, and recording ring closures for later resolution. prevIdx is
// the index of the most recently derived atom this call should continue
// chaining from (or -1 before any atom exists).
func deriveSelfies(fragment string, initState int, caps alphabet.ValenceCaps, restrictedNitrogen bool, derived *[]derivedAtom, prevIdx int, rings *[]ringEdge, branches *[]branchSpan) {
	scanner := newSymbolScanner(fragment)
	currChar := scanner.next()
	state := initState

	for currChar != "" && state >= 0 {
		sym, parsed := alphabet.Parse(currChar)
		var newState int

		switch {
		case parsed && sym.Kind == alphabet.KindBranch:
			newState = deriveBranch(sym, scanner, state, caps, restrictedNitrogen, derived, prevIdx, rings, branches)

		case parsed && sym.Kind == alphabet.KindRing:
			newState = deriveRing(sym, scanner, state, derived, prevIdx, rings)

		default:
			newState = deriveAtomSymbol(sym, parsed, state, caps, restrictedNitrogen, derived, &prevIdx)
		}

		currChar = scanner.next()
		state = newState
	}
}

func deriveBranch(sym alphabet.Symbol, scanner *symbolScanner, state int, caps alphabet.ValenceCaps, restrictedNitrogen bool, derived *[]derivedAtom, prevIdx int, rings *[]ringEdge, branches *[]branchSpan) int {
	switch {
	case state == 0 || state == 1:
		scanner.next() // discard one symbol, keep the stream aligned
		return state

	case alphabet.IsBranchInitiator(state):
		return state // degenerate: a branch opened with nothing to attach to

	default:
		budget := state
		x := sym.X
		if budget < x {
			x = budget
		}
		branchInit := alphabet.BranchInitiatorState(x)

		lengthSymbols := make([]string, sym.L)
		for i := 0; i < sym.L; i++ {
			lengthSymbols[i] = scanner.next()
		}
		n := alphabet.NFromChars(lengthSymbols, 1)

		var body strings.Builder
		for i := 0; i < n+1; i++ {
			body.WriteString(scanner.next())
		}

		parentBudget := 0
		if prevIdx >= 0 {
			parentBudget = (*derived)[prevIdx].budget
		}

		branchStart := len(*derived)
		deriveSelfies(body.String(), branchInit, caps, restrictedNitrogen, derived, prevIdx, rings, branches)
		branchEnd := len(*derived) - 1
		if branchStart <= branchEnd {
			*branches = append(*branches, branchSpan{start: branchStart, end: branchEnd})
		}

		if prevIdx >= 0 {
			(*derived)[prevIdx].budget = parentBudget - x
			return (*derived)[prevIdx].budget
		}
		return state
	}
}

func deriveRing(sym alphabet.Symbol, scanner *symbolScanner, state int, derived *[]derivedAtom, prevIdx int, rings *[]ringEdge) int {
	switch {
	case state == 0:
		scanner.next()
		return state

	case alphabet.IsBranchInitiator(state):
		return state

	default:
		lengthSymbols := make([]string, sym.L)
		for i := 0; i < sym.L; i++ {
			lengthSymbols[i] = scanner.next()
		}
		n := alphabet.NFromChars(lengthSymbols, 5)

		rightIdx := len(*derived) - 1
		if rightIdx < 0 {
			return state // no atom derived yet to close a ring on
		}
		leftIdx := rightIdx - 1 - n
		if leftIdx < 0 {
			leftIdx = 0
		}

		bondChar := ""
		if sym.Explicit && sym.Bond != 0 {
			bondChar = string(sym.Bond)
		}

		*rings = append(*rings, ringEdge{left: leftIdx, right: rightIdx, bondChar: bondChar})
		return state
	}
}

func deriveAtomSymbol(sym alphabet.Symbol, parsed bool, state int, caps alphabet.ValenceCaps, restrictedNitrogen bool, derived *[]derivedAtom, prevIdx *int) int {
	if !parsed {
		// Unrecognized bracket content: treated as an atom-shaped no-op so
		// the decoder stays total rather than erroring (§7).
		return state
	}

	newText, newState := alphabet.NextState(state, sym, caps, restrictedNitrogen)
	if newText == "" {
		return newState
	}

	*derived = append(*derived, derivedAtom{text: newText, budget: newState, parent: *prevIdx})
	idx := len(*derived) - 1

	if *prevIdx >= 0 {
		bondNum, _ := chemtable.BondOrderFromChar(newText[0])
		if bondNum == 0 {
			bondNum = chemtable.Single
		}
		(*derived)[*prevIdx].budget -= bondNum
	}

	*prevIdx = idx
	return newState
}

// formRingsBilocally resolves every recorded ring closure against the
// finished atom sequence, either strengthening an already-adjacent chain
// bond or assigning a fresh ring-closure digit pair, exactly mirroring
// the post-hoc merge step of the reference decoder.
func formRingsBilocally(derived []derivedAtom, rings []ringEdge) {
	type loc struct{ left, right int }
	ringLocs := make(map[loc]string)
	var order []loc

	for _, r := range rings {
		if r.left == r.right {
			continue
		}
		leftEnd := &derived[r.left]
		rightEnd := &derived[r.right]
		bondNum := bondNumFromChar(r.bondChar)

		if bondNum > leftEnd.budget || bondNum > rightEnd.budget {
			continue
		}

		if r.left == rightEnd.parent {
			oldBond := ""
			if len(rightEnd.text) > 0 && isBondChar(rightEnd.text[0]) {
				oldBond = rightEnd.text[:1]
			}
			newBondNum := bondNum + bondNumFromChar(oldBond)
			if newBondNum > chemtable.Triple {
				newBondNum = chemtable.Triple
			}
			rightEnd.text = chemtable.BondChar(newBondNum) + rightEnd.text[len(oldBond):]
		} else {
			key := loc{r.left, r.right}
			if existing, ok := ringLocs[key]; ok {
				newBondNum := bondNum + bondNumFromChar(existing)
				if newBondNum > chemtable.Triple {
					newBondNum = chemtable.Triple
				}
				ringLocs[key] = chemtable.BondChar(newBondNum)
			} else {
				ringLocs[key] = r.bondChar
				order = append(order, key)
			}
		}

		leftEnd.budget -= bondNum
		rightEnd.budget -= bondNum
	}

	ringCounter := 1
	for _, key := range order {
		bondChar := ringLocs[key]
		ringID := strconv.Itoa(ringCounter)
		if len(ringID) == 2 {
			ringID = "%" + ringID
		}
		ringCounter++

		derived[key.left].text += bondChar + ringID
		derived[key.right].text += bondChar + ringID
	}
}

func bondNumFromChar(bondChar string) int {
	if bondChar == "" {
		return chemtable.Single
	}
	n, ok := chemtable.BondOrderFromChar(bondChar[0])
	if !ok {
		return chemtable.Single
	}
	return n
}

func isBondChar(ch byte) bool {
	switch ch {
	case '-', '/', '\\', '=', '#':
		return true
	}
	return false
}
