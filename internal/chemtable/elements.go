// Package chemtable coding=utf-8
// @Project : go-selfies
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : elements.go
// @Software: GoLand
//
// Package chemtable holds the recognized element symbols, bond-order/char
// mappings, and default valence caps shared by the SMILES tokenizer,
// kekulizer, and SELFIES alphabet.
package chemtable

// Bond orders. Aromatic bonds carry order 1.5 conceptually but are never
// represented numerically here: kekulization resolves them to Single/Double
// before anything downstream needs an integer order.
const (
	Single = 1
	Double = 2
	Triple = 3
)

// Infinity is the sentinel valence cap for elements with no configured
// limit (unrecognized bracketed atoms get it unless explicitly configured).
const Infinity = 1 << 30

// BondOrderFromChar maps a SMILES bond character to its order. The stereo
// markers '/' and '\' are treated as single bonds per §3 of the spec; any
// other character, including the aromatic bond ':', reports false. An
// empty prefix also means single and is handled by the caller before
// reaching here.
func BondOrderFromChar(ch byte) (int, bool) {
	switch ch {
	case '-', '/', '\\':
		return Single, true
	case '=':
		return Double, true
	case '#':
		return Triple, true
	}
	return 0, false
}

// BondChar returns the canonical character for a bond order. Order 1 is
// represented by the empty string since a single bond is implicit.
func BondChar(order int) string {
	switch order {
	case Double:
		return "="
	case Triple:
		return "#"
	default:
		return ""
	}
}

// IsAromaticElement reports whether an element token is one of the
// elements the aromatic subset recognizes (see DefaultAromaticElements).
// An arbitrary lowercase string is not enough on its own: only these
// elements can actually appear in aromatic form in a SMILES fragment.
func IsAromaticElement(sym string) bool {
	return DefaultAromaticElements[sym]
}

// defaultValence holds the uncharged valence caps the alphabet is seeded
// with. Nitrogen is handled separately since its cap depends on the
// restrictedNitrogen flag threaded through decode.
var defaultValence = map[string]int{
	"H":  1,
	"B":  3,
	"C":  4,
	"O":  2,
	"F":  1,
	"Si": 4,
	"P":  5,
	"S":  6,
	"Cl": 1,
	"Br": 1,
	"I":  1,
	"As": 5,
	"Se": 6,
}

// DefaultValence returns the default valence cap for element, honoring
// restrictedNitrogen for N specifically (3 bonds restricted, 5 otherwise).
// Elements outside the table return Infinity.
func DefaultValence(element string, restrictedNitrogen bool) int {
	canon := CanonicalElement(element)
	if canon == "N" {
		if restrictedNitrogen {
			return 3
		}
		return 5
	}
	if cap_, ok := defaultValence[canon]; ok {
		return cap_
	}
	return Infinity
}

// CanonicalElement uppercases an aromatic (lowercase) element symbol to
// its standard form, e.g. "c" -> "C", "se" -> "Se". Non-aromatic symbols
// are returned unchanged.
func CanonicalElement(sym string) string {
	if !IsAromaticElement(sym) {
		return sym
	}
	if len(sym) == 1 {
		return string(sym[0] - ('a' - 'A'))
	}
	return string(sym[0]-('a'-'A')) + sym[1:]
}

// DefaultAromaticElements lists the element symbols kekulization is
// willing to treat as aromatic in a SMILES fragment.
var DefaultAromaticElements = map[string]bool{
	"c": true, "n": true, "o": true, "s": true, "p": true,
	"as": true, "se": true,
}
