package alphabetconfig

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/cx-luo/go-selfies/internal/alphabet"
	"github.com/cx-luo/go-selfies/internal/chemtable"
)

// Snapshot is the mutable alphabet configuration in effect for a caller:
// the organic-subset defaults plus any elements and valence caps added on
// top of them via SetAlphabet. A *Snapshot implements alphabet.ValenceCaps,
// so the decoder and encoder both consult it directly.
//
// A Snapshot is safe for concurrent use; per §5's concurrency model, each
// goroutine that wants independent configuration should hold its own
// Snapshot rather than share one, mirroring the call-local semantics of
// set_alphabet/get_alphabet.
type Snapshot struct {
	mu        sync.RWMutex
	overrides map[string]int
	extra     []string // elements outside the organic subset, insertion order
	logger    *zap.Logger
}

// NewSnapshot returns a Snapshot configured with only the built-in
// organic-subset defaults: no overrides, no extra elements.
func NewSnapshot() *Snapshot {
	return &Snapshot{overrides: make(map[string]int), logger: zap.NewNop()}
}

// SetLogger attaches a logger the snapshot uses for configuration-mutation
// events. A nil logger is treated as a no-op logger.
func (s *Snapshot) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logger = logger
}

// Cap implements alphabet.ValenceCaps.
func (s *Snapshot) Cap(element string, restrictedNitrogen bool) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.overrides[element]; ok {
		return v
	}
	return chemtable.DefaultValence(element, restrictedNitrogen)
}

// SetAlphabet replaces the entire configuration with atomDict, an element
// to valence-cap mapping. Calling it with an empty or nil map resets the
// snapshot to the built-in organic-subset defaults, mirroring
// sf.set_alphabet() with no argument in the reference library.
func (s *Snapshot) SetAlphabet(atomDict map[string]int) error {
	for element, cap := range atomDict {
		if cap <= 0 {
			return conflict("element %q was given a non-positive valence cap %d", element, cap)
		}
	}

	overrides := make(map[string]int, len(atomDict))
	var extra []string
	keys := make([]string, 0, len(atomDict))
	for element := range atomDict {
		keys = append(keys, element)
	}
	sort.Strings(keys)
	for _, element := range keys {
		overrides[element] = atomDict[element]
		if !alphabet.IsOrganicSubset(element) {
			extra = append(extra, element)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.overrides = overrides
	s.extra = extra
	s.logger.Info("alphabet reconfigured", zap.Int("overrides", len(overrides)), zap.Strings("extraElements", extra))
	return nil
}

// GetAtomDict returns every element currently configured (organic-subset
// defaults plus overrides) together with its effective valence cap.
func (s *Snapshot) GetAtomDict(restrictedNitrogen bool) map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int, len(alphabet.OrganicSubsetOrder)+len(s.extra))
	for _, element := range alphabet.OrganicSubsetOrder {
		out[element] = chemtable.DefaultValence(element, restrictedNitrogen)
	}
	for element, cap := range s.overrides {
		out[element] = cap
	}
	return out
}

// GetAlphabet returns every bracketed SELFIES symbol the current
// configuration defines: the bond-prefix/element cartesian product for
// every configured element, plus the fixed set of branch, ring, and
// epsilon meta-symbols (§4.4). The order is deterministic but not
// semantically significant.
func (s *Snapshot) GetAlphabet() []string {
	s.mu.RLock()
	elements := make([]string, 0, len(alphabet.OrganicSubsetOrder)+len(s.extra))
	elements = append(elements, alphabet.OrganicSubsetOrder...)
	elements = append(elements, s.extra...)
	s.mu.RUnlock()

	var out []string
	for _, element := range elements {
		out = append(out,
			alphabet.AtomSymbolText("", element),
			alphabet.AtomSymbolText("=", element),
			alphabet.AtomSymbolText("#", element),
		)
	}

	out = append(out, alphabet.EpsilonSymbolText)

	for l := 1; l <= 3; l++ {
		for x := 1; x <= 3; x++ {
			out = append(out, alphabet.BranchSymbolText(l, x))
		}
	}

	for l := 1; l <= 3; l++ {
		out = append(out, alphabet.RingSymbolText(l, ""))
	}
	for l := 1; l <= 3; l++ {
		out = append(out, alphabet.RingSymbolText(l, "="), alphabet.RingSymbolText(l, "#"))
	}

	return out
}
