package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/govalues/numinput/decimal"
)

// Flags are parsed only before the first value, so that negative values
// after it are not taken for shorthand flags.
func newAddCmd(ro *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add DECIMAL DECIMAL...",
		Short: "Print the exact sum of decimals",
		Example: `  numinput add 0.1 0.2 -0.3
  numinput add --backend float 1e-3 2.5
  numinput add -- -1 0.5`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := ro.decimalBackend()
			if err != nil {
				return err
			}
			values, err := parseAll(b, args)
			if err != nil {
				return err
			}
			sum := values[0]
			for _, v := range values[1:] {
				sum = sum.Add(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), sum)
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func newCmpCmd(ro *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cmp DECIMAL DECIMAL",
		Short: "Compare two decimals",
		Long: `Compare two decimals and print less, equal, greater or unordered.
NaN is unordered with everything, itself included.
A negative first value must follow "--".`,
		Example: `  numinput cmp 1.10 1.1
  numinput cmp 1 -2
  numinput cmp -- -2 1`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := ro.decimalBackend()
			if err != nil {
				return err
			}
			values, err := parseAll(b, args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), decimal.Compare(values[0], values[1]))
			return nil
		},
	}
	cmd.Flags().SetInterspersed(false)
	return cmd
}

func parseAll(b decimal.Backend, args []string) ([]decimal.Value, error) {
	values := make([]decimal.Value, 0, len(args))
	for _, arg := range args {
		v, err := b.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse: %w", err)
		}
		values = append(values, v)
	}
	return values, nil
}
