package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormatCmd(ro *rootOptions) *cobra.Command {
	var (
		ff                               fieldFlags
		separator, prefix, suffix, group string
	)
	cmd := &cobra.Command{
		Use:   "format VALUE",
		Short: "Render a value for display",
		Example: `  numinput format 1234.5 --precision 2 --prefix '$ ' --group ,
  numinput format 1.5 --separator ,`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := ro.options()
			if err != nil {
				return err
			}
			if err := ff.apply(cmd, o); err != nil {
				return err
			}
			if cmd.Flags().Changed("separator") {
				o.DecimalSeparator = separator
			}
			if cmd.Flags().Changed("prefix") {
				o.Affix.Prefix = prefix
			}
			if cmd.Flags().Changed("suffix") {
				o.Affix.Suffix = suffix
			}
			if cmd.Flags().Changed("group") {
				o.Affix.Group = group
			}

			r, err := o.Resolver()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), o.Formatter(r).Format(r.Resolve(args[0])))
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVar(&separator, "separator", "", "decimal separator (default .)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "text before the number")
	cmd.Flags().StringVar(&suffix, "suffix", "", "text after the number")
	cmd.Flags().StringVar(&group, "group", "", "separator between groups of three integer digits")
	return cmd
}
