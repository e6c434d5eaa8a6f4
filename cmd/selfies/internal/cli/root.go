// Package cli coding=utf-8
// @Project : go-selfies
// @Author  : chengxiang.luo
// @Email   : chengxiang.luo@foxmail.com
// @File    : root.go
// @Software: GoLand
//
// Package cli wires the selfies binary's cobra command tree: encode,
// decode, and alphabet get/set subcommands over the public selfies
// package.
package cli

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// NewRootCommand builds the selfies CLI's root command with its
// persistent flags and subcommands attached.
func NewRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "selfies",
		Short:         "Translate between SMILES and SELFIES molecular notations",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	pf.BoolVar(&opts.unrestrictedN, "unrestricted-nitrogen", false, "allow nitrogen up to 5 bonds instead of 3")
	pf.StringVar(&opts.alphabetFile, "alphabet-file", "", "YAML file overriding the default element/valence alphabet")
	pf.DurationVar(&opts.timeout, "timeout", 10*time.Second, "per-command timeout")

	root.AddCommand(
		newEncodeCmd(opts),
		newDecodeCmd(opts),
		newAlphabetCmd(opts),
	)
	return root
}

// globalOptions holds flags shared by every subcommand.
type globalOptions struct {
	verbose       bool
	unrestrictedN bool
	alphabetFile  string
	timeout       time.Duration
	logger        *zap.Logger
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	return cfg.Build()
}
