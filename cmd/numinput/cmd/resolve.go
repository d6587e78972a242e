package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/numinput/config"
	"github.com/govalues/numinput/resolve"
	"github.com/govalues/numinput/session"
)

type fieldFlags struct {
	min, max, step string
	precision      int
}

func (ff *fieldFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ff.min, "min", "", "lower bound")
	cmd.Flags().StringVar(&ff.max, "max", "", "upper bound")
	cmd.Flags().StringVar(&ff.step, "step", "", "step size (default 1)")
	cmd.Flags().IntVar(&ff.precision, "precision", -1, "fraction digits (default inferred)")
}

// apply overrides the options with the flags set on the command line.
func (ff *fieldFlags) apply(cmd *cobra.Command, o *config.Options) error {
	if cmd.Flags().Changed("min") {
		o.Min = config.Number(ff.min)
	}
	if cmd.Flags().Changed("max") {
		o.Max = config.Number(ff.max)
	}
	if cmd.Flags().Changed("step") {
		o.Step = config.Number(ff.step)
	}
	if cmd.Flags().Changed("precision") {
		p := ff.precision
		o.Precision = &p
	}
	return o.Validate()
}

func newResolveCmd(ro *rootOptions) *cobra.Command {
	var (
		ff         fieldFlags
		up, down   int
		fast, fine bool
	)
	cmd := &cobra.Command{
		Use:   "resolve VALUE",
		Short: "Clamp, round and step a value",
		Long: `Resolve a value the way the field commits it: clamp it to the bounds,
round it half-up to the precision, then apply the requested steps.
The formatted display is printed; an empty line means the value is not a number.`,
		Example: `  numinput resolve 13 --min 0 --max 10
  numinput resolve 3.455 --precision 2
  numinput resolve 2.00 --step 0.01 --down 400 --up 300`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := ro.options()
			if err != nil {
				return err
			}
			if err := ff.apply(cmd, o); err != nil {
				return err
			}
			log, err := ro.logger(o, "")
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			if o.Conflict() {
				log.Warn("min is greater than max, using max",
					zap.Stringer("min", o.Min),
					zap.Stringer("max", o.Max),
				)
			}

			s, err := o.Session(session.WithLogger(log), session.WithValue(args[0]))
			if err != nil {
				return err
			}
			defer s.Close()

			if res := s.Value(); res.Clamped {
				log.Info("value clamped", zap.String("input", args[0]), zap.Stringer("value", res))
			}

			mult := resolve.Normal
			switch {
			case fast:
				mult = resolve.Fast
			case fine:
				mult = resolve.Fine
			}
			for i := 0; i < down; i++ {
				s.Step(resolve.Down, mult)
			}
			for i := 0; i < up; i++ {
				s.Step(resolve.Up, mult)
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.Display())
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().IntVar(&up, "up", 0, "number of steps up")
	cmd.Flags().IntVar(&down, "down", 0, "number of steps down, applied before steps up")
	cmd.Flags().BoolVar(&fast, "fast", false, "step ten times the step size")
	cmd.Flags().BoolVar(&fine, "fine", false, "step a tenth of the step size")
	cmd.MarkFlagsMutuallyExclusive("fast", "fine")
	return cmd
}
