// Package smilesgraph coding=utf-8
// @Project : go-selfies
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : kekulize.go
// @Software: GoLand
package smilesgraph

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cx-luo/go-selfies/internal/chemtable"
)

// aromaticEdge is a bond between two aromatic atoms, recorded during the
// single materialising pass over a fragment's tokens. owner is the index
// (into the flat token slice) of the token whose BondPrefix carries this
// bond — the later atom's own token for a chain bond, the closing ring
// token for a ring-closure bond.
type aromaticEdge struct {
	a, b  int
	owner int
}

// Kekulize rewrites a fragment's token stream so that no aromatic
// (lowercase-element) symbols remain: every aromatic atom becomes its
// uppercase form and every aromatic bond becomes an explicit single or
// double bond via a maximum matching over each aromatic connected
// component (§4.3). logger may be nil, in which case the lone-pair
// fallback path (see requireSatisfied) is silent rather than logged.
func Kekulize(tokens []Token, logger *zap.Logger) ([]Token, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	out := make([]Token, len(tokens))
	copy(out, tokens)

	atomTokenIdx := make([]int, 0) // atom emission index -> token index
	aromatic := make([]bool, 0)    // atom emission index -> is aromatic
	adj := make(map[int][]aromaticEdge)

	var branchStack []int
	lastAtom := -1
	type ringOpen struct {
		atom  int
		owner int
	}
	ringOpens := make(map[int]ringOpen)

	for i, tok := range tokens {
		switch tok.Kind {
		case KindAtom:
			idx := len(atomTokenIdx)
			atomTokenIdx = append(atomTokenIdx, i)
			isArom := chemAromatic(tok)
			aromatic = append(aromatic, isArom)

			if lastAtom >= 0 && isArom && aromatic[lastAtom] && tok.BondPrefix == 0 {
				edge := aromaticEdge{a: lastAtom, b: idx, owner: i}
				adj[lastAtom] = append(adj[lastAtom], edge)
				adj[idx] = append(adj[idx], aromaticEdge{a: idx, b: lastAtom, owner: i})
			}
			lastAtom = idx

		case KindBranch:
			if tok.Text == "(" {
				branchStack = append(branchStack, lastAtom)
			} else if len(branchStack) > 0 {
				lastAtom = branchStack[len(branchStack)-1]
				branchStack = branchStack[:len(branchStack)-1]
			}

		case KindRing:
			if open, ok := ringOpens[tok.RingNumber]; ok {
				if tok.BondPrefix == 0 && aromatic[open.atom] && aromatic[lastAtom] {
					edge := aromaticEdge{a: open.atom, b: lastAtom, owner: i}
					adj[open.atom] = append(adj[open.atom], edge)
					adj[lastAtom] = append(adj[lastAtom], aromaticEdge{a: lastAtom, b: open.atom, owner: i})
				}
				delete(ringOpens, tok.RingNumber)
			} else {
				ringOpens[tok.RingNumber] = ringOpen{atom: lastAtom, owner: i}
			}
		}
	}

	visited := make([]bool, len(atomTokenIdx))
	for start := range atomTokenIdx {
		if visited[start] || !aromatic[start] {
			continue
		}
		component := collectComponent(start, adj, visited)
		if len(component) == 0 {
			continue
		}
		matched := matchComponent(component, adj, func(n int) bool {
			return requiresDoubleBond(tokens[atomTokenIdx[n]])
		})
		if err := requireSatisfied(component, matched, atomTokenIdx, tokens, logger); err != nil {
			return nil, err
		}
		applyMatching(out, component, matched, adj, atomTokenIdx)
	}

	return out, nil
}

func chemAromatic(tok Token) bool {
	return tok.Kind == KindAtom && chemtable.IsAromaticElement(tok.Element)
}

func collectComponent(start int, adj map[int][]aromaticEdge, visited []bool) []int {
	var comp []int
	stack := []int{start}
	visited[start] = true
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, n)
		for _, e := range adj[n] {
			if !visited[e.b] {
				visited[e.b] = true
				stack = append(stack, e.b)
			}
		}
	}
	return comp
}

// matchComponent computes a maximum matching over the component's eligible
// atoms (those that take a ring double bond; see requiresDoubleBond) using
// Kuhn-style DFS augmenting paths. Aromatic rings are near-bipartite so
// this suffices without a full Blossom implementation (§9 design notes).
func matchComponent(component []int, adj map[int][]aromaticEdge, eligible func(int) bool) map[int]int {
	matchOf := make(map[int]int)

	var tryAugment func(node int, visited map[int]bool) bool
	tryAugment = func(node int, visited map[int]bool) bool {
		for _, e := range adj[node] {
			if visited[e.b] || !eligible(e.b) {
				continue
			}
			visited[e.b] = true
			if partner, ok := matchOf[e.b]; !ok || tryAugment(partner, visited) {
				matchOf[node] = e.b
				matchOf[e.b] = node
				return true
			}
		}
		return false
	}

	for _, n := range component {
		if _, matched := matchOf[n]; matched || !eligible(n) {
			continue
		}
		visited := map[int]bool{n: true}
		tryAugment(n, visited)
	}
	return matchOf
}

// requireSatisfied checks that every non-lone-pair aromatic atom in the
// component (carbon-like, trivalent-nitrogen-like) ended up matched.
// Divalent heteroatoms (o, s, se) and explicitly protonated ones
// ([nH], [pH], ...) are allowed to stay unmatched, contributing a lone
// pair to the ring instead of a double bond.
func requireSatisfied(component []int, matched map[int]int, atomTokenIdx []int, tokens []Token, logger *zap.Logger) error {
	for _, n := range component {
		if _, ok := matched[n]; ok {
			continue
		}
		tok := tokens[atomTokenIdx[n]]
		if requiresDoubleBond(tok) {
			return unkekulizable("no valid bond alternation for aromatic atom %q", tok.Text)
		}
		logger.Debug("aromatic atom left unmatched, falling back to lone pair", zap.String("atom", tok.Text))
	}
	return nil
}

func requiresDoubleBond(tok Token) bool {
	switch tok.Element {
	case "o", "s", "se":
		return false
	case "c", "n", "p", "as":
		if strings.HasPrefix(tok.Text, "[") && strings.Contains(tok.Text, "H") {
			return false
		}
		return true
	}
	return true
}

func applyMatching(out []Token, component []int, matched map[int]int, adj map[int][]aromaticEdge, atomTokenIdx []int) {
	seen := make(map[[2]int]bool)
	for _, n := range component {
		partner, ok := matched[n]
		if !ok {
			continue
		}
		key := [2]int{n, partner}
		rev := [2]int{partner, n}
		if seen[key] || seen[rev] {
			continue
		}
		seen[key] = true
		for _, e := range adj[n] {
			if e.b == partner {
				out[e.owner].BondPrefix = '='
				break
			}
		}
	}
	for _, n := range component {
		i := atomTokenIdx[n]
		out[i].Text = uppercaseAtomText(out[i].Text)
		out[i].Element = chemtable.CanonicalElement(out[i].Element)
	}
}

// uppercaseAtomText rewrites an aromatic atom's raw text into its
// explicit (uppercase) form: "c" -> "C", "[nH]" -> "[NH]". Only the
// element letters are touched; isotope digits, H counts, and charges
// pass through unchanged.
func uppercaseAtomText(text string) string {
	if !strings.HasPrefix(text, "[") {
		return chemtable.CanonicalElement(text)
	}
	inner := text[1 : len(text)-1]
	i := 0
	for i < len(inner) && inner[i] >= '0' && inner[i] <= '9' {
		i++
	}
	end := i
	for end < len(inner) && inner[end] >= 'a' && inner[end] <= 'z' {
		end++
		break // at most two lowercase letters form an element symbol
	}
	// allow a second lowercase letter for two-letter aromatic elements (as, se)
	if end < len(inner) && inner[end] >= 'a' && inner[end] <= 'z' {
		end++
	}
	elem := chemtable.CanonicalElement(inner[i:end])
	return "[" + inner[:i] + elem + inner[end:] + "]"
}
