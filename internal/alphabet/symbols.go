// Package alphabet coding=utf-8
// @Project : go-selfies
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : symbols.go
// @Software: GoLand
//
// Package alphabet implements the SELFIES symbol grammar (§4.4): the
// bracketed-token shape, the state-transition table, and the length-prefix
// codec used by branch and ring meta-symbols.
package alphabet

import (
	"fmt"
	"strings"
)

// Kind classifies a parsed SELFIES symbol.
type Kind int

const (
	KindAtom Kind = iota
	KindEpsilon
	KindBranch
	KindRing
)

// Symbol is a single bracketed SELFIES token, decomposed into its parts.
type Symbol struct {
	Raw      string // original bracketed text, e.g. "[=ExplRing2]"
	Kind     Kind
	Bond     byte // '=' , '#' , or 0
	Element  string
	Explicit bool // Kind == KindRing: whether this is an ExplRing* variant
	L        int  // Kind == KindBranch || KindRing
	X        int  // Kind == KindBranch only: the initiator state suffix
}

// organicSubset lists elements written without the "expl" disambiguation
// suffix, matching the default valence table carried by internal/chemtable.
var organicSubset = map[string]bool{
	"H": true, "B": true, "C": true, "N": true, "O": true, "F": true,
	"Si": true, "P": true, "S": true, "Cl": true, "Br": true, "I": true,
	"As": true, "Se": true,
}

// IsOrganicSubset reports whether element is written without the "expl"
// suffix in SELFIES symbol names.
func IsOrganicSubset(element string) bool {
	return organicSubset[element]
}

// AtomSymbolText formats a chain-atom SELFIES symbol such as "[C]",
// "[=N]", or "[Liexpl]" for a configured non-organic element.
func AtomSymbolText(bondChar string, element string) string {
	name := element
	if !IsOrganicSubset(element) {
		name += "expl"
	}
	return "[" + bondChar + name + "]"
}

// BranchSymbolText formats "[BranchL_X]".
func BranchSymbolText(l, x int) string {
	return fmt.Sprintf("[Branch%d_%d]", l, x)
}

// RingSymbolText formats "[RingL]" or, when bondChar is non-empty,
// "[<bond>ExplRingL]".
func RingSymbolText(l int, bondChar string) string {
	if bondChar == "" {
		return fmt.Sprintf("[Ring%d]", l)
	}
	return fmt.Sprintf("[%sExplRing%d]", bondChar, l)
}

// EpsilonSymbolText is the empty-atom meta-symbol.
const EpsilonSymbolText = "[epsilon]"

// Parse decomposes a bracketed SELFIES token. ok is false for malformed
// or unrecognized bracket contents, in which case callers in the decoder
// treat the symbol defensively (see §4.6 and §7's totality guarantee).
func Parse(raw string) (Symbol, bool) {
	if len(raw) < 2 || raw[0] != '[' || raw[len(raw)-1] != ']' {
		return Symbol{}, false
	}
	inner := raw[1 : len(raw)-1]
	if inner == "epsilon" {
		return Symbol{Raw: raw, Kind: KindEpsilon}, true
	}

	var bond byte
	if len(inner) > 0 && (inner[0] == '=' || inner[0] == '#') {
		bond = inner[0]
		inner = inner[1:]
	}

	switch {
	case strings.HasPrefix(inner, "Branch"):
		return parseBranch(raw, bond, inner)
	case strings.HasPrefix(inner, "ExplRing"):
		return parseRing(raw, bond, inner, true)
	case strings.HasPrefix(inner, "Ring"):
		return parseRing(raw, bond, inner, false)
	default:
		if inner == "" {
			return Symbol{}, false
		}
		element := inner
		if strings.HasSuffix(element, "expl") {
			element = element[:len(element)-len("expl")]
		}
		if element == "" {
			return Symbol{}, false
		}
		return Symbol{Raw: raw, Kind: KindAtom, Bond: bond, Element: element}, true
	}
}

func parseBranch(raw string, bond byte, inner string) (Symbol, bool) {
	rest := inner[len("Branch"):]
	if len(rest) != 3 || rest[1] != '_' {
		return Symbol{}, false
	}
	l := int(rest[0] - '0')
	x := int(rest[2] - '0')
	if l < 1 || l > 3 || x < 1 || x > 3 {
		return Symbol{}, false
	}
	return Symbol{Raw: raw, Kind: KindBranch, Bond: bond, L: l, X: x}, true
}

func parseRing(raw string, bond byte, inner string, explicit bool) (Symbol, bool) {
	prefix := "Ring"
	if explicit {
		prefix = "ExplRing"
	}
	rest := inner[len(prefix):]
	if len(rest) != 1 {
		return Symbol{}, false
	}
	l := int(rest[0] - '0')
	if l < 1 || l > 3 {
		return Symbol{}, false
	}
	return Symbol{Raw: raw, Kind: KindRing, Bond: bond, L: l, Explicit: explicit}, true
}

// OrganicSubsetOrder lists the default (non-"expl") elements in a fixed,
// deterministic order, used by internal/alphabetconfig to render a
// reproducible GetAlphabet listing.
var OrganicSubsetOrder = []string{
	"H", "B", "C", "N", "O", "F", "Si", "P", "S", "Cl", "Br", "I", "As", "Se",
}
