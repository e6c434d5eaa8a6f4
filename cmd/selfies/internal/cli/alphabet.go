package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newAlphabetCmd(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "Inspect or override the element/valence alphabet currently configured",
	}
	cmd.AddCommand(newAlphabetGetCmd(opts), newAlphabetDictCmd(opts), newAlphabetSetCmd(opts))
	return cmd
}

func newAlphabetGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get",
		Short: "List every SELFIES symbol the current alphabet defines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithTimeout(opts.timeout, func() error {
				codec, err := buildCodec(opts)
				if err != nil {
					return err
				}
				symbols := codec.GetAlphabet()
				sort.Strings(symbols)
				for _, s := range symbols {
					fmt.Fprintln(cmd.OutOrStdout(), s)
				}
				return nil
			})
		},
	}
}

func newAlphabetDictCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dict",
		Short: "List element to valence-cap mappings in the current alphabet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithTimeout(opts.timeout, func() error {
				codec, err := buildCodec(opts)
				if err != nil {
					return err
				}
				dict := codec.GetAtomDict()
				elements := make([]string, 0, len(dict))
				for e := range dict {
					elements = append(elements, e)
				}
				sort.Strings(elements)
				for _, e := range elements {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", e, dict[e])
				}
				return nil
			})
		},
	}
}

// newAlphabetSetCmd applies one or more Element=Cap valence overrides on
// top of the alphabet buildCodec would otherwise produce (defaults, or an
// --alphabet-file if given) and prints the resulting alphabet, the same
// way `alphabet get` does.
func newAlphabetSetCmd(opts *globalOptions) *cobra.Command {
	var sets []string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Override element valence caps and print the resulting alphabet",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithTimeout(opts.timeout, func() error {
				codec, err := buildCodec(opts)
				if err != nil {
					return err
				}

				overrides, err := parseSetFlags(sets)
				if err != nil {
					return err
				}
				if len(overrides) > 0 {
					merged := codec.GetAtomDict()
					for element, cap := range overrides {
						merged[element] = cap
					}
					if err := codec.SetAlphabet(merged); err != nil {
						return err
					}
				}

				symbols := codec.GetAlphabet()
				sort.Strings(symbols)
				for _, s := range symbols {
					fmt.Fprintln(cmd.OutOrStdout(), s)
				}
				return nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&sets, "set", nil, "override an element's valence cap, repeatable (e.g. --set Li=1)")
	return cmd
}

func parseSetFlags(sets []string) (map[string]int, error) {
	overrides := make(map[string]int, len(sets))
	for _, kv := range sets {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			return nil, errors.Errorf("invalid --set value %q, expected Element=Cap", kv)
		}
		cap, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, errors.Wrapf(err, "invalid valence cap in --set value %q", kv)
		}
		overrides[parts[0]] = cap
	}
	return overrides, nil
}
