package selfies

import (
	"strings"

	"go.uber.org/zap"

	"github.com/cx-luo/go-selfies/internal/alphabetconfig"
)

// Codec is a configured SMILES <-> SELFIES translator. The zero value is
// not usable; construct one with New(). Encode, Decode, GetAlphabet,
// GetAtomDict and SetAlphabet may be called concurrently (the Snapshot is
// internally synchronized); SetLogger and SetRestrictedNitrogen write the
// Codec's own fields without synchronization. Callers that need
// independent alphabet configurations per goroutine should construct one
// Codec per goroutine rather than share a single mutated instance (§5).
type Codec struct {
	snapshot           *alphabetconfig.Snapshot
	restrictedNitrogen bool
	logger             *zap.Logger
}

// New returns a Codec configured with the default organic-subset alphabet
// and nitrogen restricted to 3 bonds.
func New() *Codec {
	return &Codec{snapshot: alphabetconfig.NewSnapshot(), restrictedNitrogen: true, logger: zap.NewNop()}
}

// SetLogger attaches a logger the codec and its alphabet snapshot use for
// fallback and configuration-mutation events. A nil logger is treated as
// a no-op logger.
func (c *Codec) SetLogger(logger *zap.Logger) {
	if logger == nil {
		logger = zap.NewNop()
	}
	c.logger = logger
	c.snapshot.SetLogger(logger)
}

// SetRestrictedNitrogen toggles whether default (unconfigured) nitrogen is
// capped at 3 bonds (true, the default) or 5 (false).
func (c *Codec) SetRestrictedNitrogen(v bool) {
	c.restrictedNitrogen = v
}

// SetAlphabet replaces the element/valence-cap configuration wholesale.
// Passing nil resets to the built-in organic-subset defaults.
func (c *Codec) SetAlphabet(atomDict map[string]int) error {
	return c.snapshot.SetAlphabet(atomDict)
}

// GetAlphabet lists every SELFIES symbol the current configuration
// defines.
func (c *Codec) GetAlphabet() []string {
	return c.snapshot.GetAlphabet()
}

// GetAtomDict returns the element to valence-cap mapping currently in
// effect.
func (c *Codec) GetAtomDict() map[string]int {
	return c.snapshot.GetAtomDict(c.restrictedNitrogen)
}

// Encode translates a SMILES string into SELFIES, fragment by fragment
// (split on '.'). It fails if any fragment cannot be tokenized or
// kekulized.
func (c *Codec) Encode(smiles string) (string, error) {
	fragments := strings.Split(smiles, ".")
	encoded := make([]string, len(fragments))
	for i, frag := range fragments {
		enc, err := encodeFragmentWithLogger(frag, c.logger)
		if err != nil {
			return "", err
		}
		encoded[i] = enc
	}
	return strings.Join(encoded, "."), nil
}

// Decode translates a SELFIES string into SMILES. It is total: malformed
// or nonsensical input still produces some SMILES output rather than an
// error (§7).
func (c *Codec) Decode(selfiesStr string) string {
	fragments := strings.Split(selfiesStr, ".")
	decoded := make([]string, len(fragments))
	for i, frag := range fragments {
		decoded[i] = decodeFragment(frag, c.snapshot, c.restrictedNitrogen)
	}
	return strings.Join(decoded, ".")
}

// defaultCodec backs the package-level convenience functions below, the
// Go equivalent of the reference library's module-level encoder/decoder
// functions operating against a shared default atom_dict.
var defaultCodec = New()

// Encode translates smiles into SELFIES using the shared default codec.
func Encode(smiles string) (string, error) { return defaultCodec.Encode(smiles) }

// Decode translates selfiesStr into SMILES using the shared default codec.
func Decode(selfiesStr string) string { return defaultCodec.Decode(selfiesStr) }

// GetAlphabet lists the shared default codec's current SELFIES alphabet.
func GetAlphabet() []string { return defaultCodec.GetAlphabet() }

// GetAtomDict returns the shared default codec's current element/valence
// configuration.
func GetAtomDict() map[string]int { return defaultCodec.GetAtomDict() }

// SetAlphabet reconfigures the shared default codec's element/valence
// mapping. Passing nil resets it to the built-in defaults.
func SetAlphabet(atomDict map[string]int) error { return defaultCodec.SetAlphabet(atomDict) }
