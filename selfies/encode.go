// Package selfies coding=utf-8
// @Project : go-selfies
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : encode.go
// @Software: GoLand
package selfies

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cx-luo/go-selfies/internal/alphabet"
	"github.com/cx-luo/go-selfies/internal/chemtable"
	"github.com/cx-luo/go-selfies/internal/smilesgraph"
)

// encNode is one atom of a kekulized SMILES fragment's parse tree: the
// tree structure the fragment's own nesting already describes, replayed
// here as explicit parent/child/ring-closure links so it can be walked
// in the opposite direction from decode's derivation (§4.5).
type encNode struct {
	element      string
	bondToParent byte // 0, '=', or '#'
	children     []int
	ringClosures []ringClosure
}

type ringClosure struct {
	target int
	order  int
}

// buildTree replays a kekulized token stream's implicit tree structure:
// sequential atoms are parent/child, "(" / ")" push and pop the active
// parent, and a repeated ring digit or %NN becomes a ringClosure on
// whichever atom closes it (the second occurrence).
func buildTree(tokens []smilesgraph.Token) ([]encNode, int) {
	var nodes []encNode
	var branchStack []int
	lastAtom := -1
	root := -1

	type ringOpen struct {
		atom  int
		order int
	}
	ringOpens := make(map[int]ringOpen)

	for _, tok := range tokens {
		switch tok.Kind {
		case smilesgraph.KindAtom:
			idx := len(nodes)
			if root == -1 {
				root = idx
			}
			nodes = append(nodes, encNode{element: tok.Element, bondToParent: tok.BondPrefix})
			if lastAtom >= 0 {
				nodes[lastAtom].children = append(nodes[lastAtom].children, idx)
			}
			lastAtom = idx

		case smilesgraph.KindBranch:
			if tok.Text == "(" {
				branchStack = append(branchStack, lastAtom)
			} else if len(branchStack) > 0 {
				lastAtom = branchStack[len(branchStack)-1]
				branchStack = branchStack[:len(branchStack)-1]
			}

		case smilesgraph.KindRing:
			order := ringBondOrder(tok.BondPrefix)
			if open, ok := ringOpens[tok.RingNumber]; ok {
				nodes[lastAtom].ringClosures = append(nodes[lastAtom].ringClosures, ringClosure{target: open.atom, order: order})
				delete(ringOpens, tok.RingNumber)
			} else {
				ringOpens[tok.RingNumber] = ringOpen{atom: lastAtom, order: order}
			}
		}
	}

	return nodes, root
}

func ringBondOrder(bondPrefix byte) int {
	if bondPrefix == 0 {
		return chemtable.Single
	}
	n, ok := chemtable.BondOrderFromChar(bondPrefix)
	if !ok {
		return chemtable.Single
	}
	return n
}

// emitSubtree renders node idx and everything beneath it into SELFIES
// symbols. Every child but the last is wrapped in its own [BranchL_X]
// prefix; the last child continues the surrounding symbol sequence
// directly, mirroring how decode's derivation loop keeps deriving against
// the same parent across a run of branch symbols (§4.6).
func emitSubtree(idx int, nodes []encNode) string {
	node := nodes[idx]
	bondStr := bondPrefixString(node.bondToParent)

	var sb strings.Builder
	sb.WriteString(alphabet.AtomSymbolText(bondStr, node.element))

	for _, rc := range node.ringClosures {
		n := idx - 1 - rc.target
		if n < 0 {
			n = 0
		}
		l := capArity(alphabet.MinArityFor(n))
		sb.WriteString(alphabet.RingSymbolText(l, chemtable.BondChar(rc.order)))
		for _, d := range alphabet.CharsFromN(n, l) {
			sb.WriteString(d)
		}
	}

	for i, child := range node.children {
		childText := emitSubtree(child, nodes)
		if i == len(node.children)-1 {
			sb.WriteString(childText)
			continue
		}

		n := strings.Count(childText, "[") - 1
		if n < 0 {
			n = 0
		}
		l := capArity(alphabet.MinArityFor(n))
		x := branchOrder(nodes[child].bondToParent)
		sb.WriteString(alphabet.BranchSymbolText(l, x))
		for _, d := range alphabet.CharsFromN(n, l) {
			sb.WriteString(d)
		}
		sb.WriteString(childText)
	}

	return sb.String()
}

func bondPrefixString(bond byte) string {
	if bond == 0 {
		return ""
	}
	return string(bond)
}

// capArity clamps an out-of-range arity (MinArityFor returns 0 once N
// exceeds what 3 base-16 digits can hold) down to 3, truncating to the
// lowest 12 bits of the true distance. Ring and branch spans this long
// are not expected in practice; this keeps encoding total rather than
// failing on them.
func capArity(l int) int {
	if l == 0 {
		return 3
	}
	return l
}

func branchOrder(bond byte) int {
	switch bond {
	case '=':
		return 2
	case '#':
		return 3
	default:
		return 1
	}
}

// EncodeFragment converts a single dot-free SMILES fragment into SELFIES.
func EncodeFragment(fragment string) (string, error) {
	return encodeFragmentWithLogger(fragment, nil)
}

func encodeFragmentWithLogger(fragment string, logger *zap.Logger) (string, error) {
	tokens, err := smilesgraph.TokenizeFragment(fragment)
	if err != nil {
		return "", err
	}
	tokens, err = smilesgraph.Kekulize(tokens, logger)
	if err != nil {
		return "", err
	}

	nodes, root := buildTree(tokens)
	if root < 0 {
		return "", nil
	}
	return emitSubtree(root, nodes), nil
}
