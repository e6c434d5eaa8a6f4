package alphabetconfig

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML shape accepted by LoadSnapshotFromFile:
//
//	atoms:
//	  Li: 1
//	  Fe: 3
type fileConfig struct {
	Atoms map[string]int `mapstructure:"atoms" yaml:"atoms"`
}

// LoadSnapshotFromFile reads a YAML alphabet configuration file and
// returns a Snapshot seeded from it. This is the on-disk counterpart to
// SetAlphabet, for deployments that pin a non-default element set via
// configuration rather than an API call. logger may be nil, in which case
// config-mutation events are dropped rather than logged.
//
// The file is first decoded strictly with yaml.v3 (unknown fields reject
// the file outright, catching a misspelled key like "atmos:" early) and
// then parsed again through viper, which must also accept it. The element
// names and caps applied come from the yaml.v3 decode, because viper
// lowercases map keys ("Li" would arrive as "li").
func LoadSnapshotFromFile(path string, logger *zap.Logger) (*Snapshot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading alphabet config %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	var strict fileConfig
	if err := dec.Decode(&strict); err != nil {
		return nil, errors.Wrapf(err, "validating alphabet config %s", path)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(raw)); err != nil {
		return nil, errors.Wrapf(err, "parsing alphabet config %s", path)
	}

	var cfg fileConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing alphabet config %s", path)
	}

	snap := NewSnapshot()
	snap.SetLogger(logger)
	if err := snap.SetAlphabet(strict.Atoms); err != nil {
		return nil, errors.Wrapf(err, "applying alphabet config %s", path)
	}
	logger.Info("loaded alphabet config", zap.String("path", path), zap.Int("elements", len(strict.Atoms)))
	return snap, nil
}
