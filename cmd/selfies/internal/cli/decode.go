package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDecodeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode [selfies]",
		Short: "Decode a SELFIES string into SMILES",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithTimeout(opts.timeout, func() error {
				codec, err := buildCodec(opts)
				if err != nil {
					return err
				}

				out := codec.Decode(args[0])
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}
