package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEncodeCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "encode [smiles]",
		Short: "Encode a SMILES string into SELFIES",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithTimeout(opts.timeout, func() error {
				codec, err := buildCodec(opts)
				if err != nil {
					return err
				}

				out, err := codec.Encode(args[0])
				if err != nil {
					opts.logger.Sugar().Errorw("encode failed", "smiles", args[0], "error", err)
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			})
		},
	}
}
