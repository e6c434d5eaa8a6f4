package cli

import (
	"github.com/pkg/errors"

	"github.com/cx-luo/go-selfies/internal/alphabetconfig"
	"github.com/cx-luo/go-selfies/selfies"
)

// buildCodec constructs a *selfies.Codec reflecting the global flags: an
// optional alphabet file override and the restricted-nitrogen setting.
func buildCodec(opts *globalOptions) (*selfies.Codec, error) {
	codec := selfies.New()
	codec.SetLogger(opts.logger)
	codec.SetRestrictedNitrogen(!opts.unrestrictedN)

	if opts.alphabetFile == "" {
		return codec, nil
	}

	snap, err := alphabetconfig.LoadSnapshotFromFile(opts.alphabetFile, opts.logger)
	if err != nil {
		return nil, errors.Wrap(err, "loading alphabet file")
	}
	if err := codec.SetAlphabet(snap.GetAtomDict(!opts.unrestrictedN)); err != nil {
		return nil, errors.Wrap(err, "applying alphabet file")
	}
	return codec, nil
}
