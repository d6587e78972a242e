// Package cmd implements the numinput command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/numinput/config"
	"github.com/govalues/numinput/decimal"
)

// Version is set during build.
var Version = "0.1.0"

type rootOptions struct {
	cfgFile string
	verbose bool
	backend string
}

// NewRootCmd creates the root command with all subcommands.
func NewRootCmd() *cobra.Command {
	ro := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "numinput",
		Short: "Exact decimal input field",
		Long: `numinput resolves, steps and formats numbers the way a numeric input
field does, using exact decimal arithmetic.

Commands:
  add      - exact sum of decimals
  cmp      - compare two decimals
  resolve  - clamp, round and step a value
  format   - render a value for display
  tui      - interactive field in the terminal`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&ro.cfgFile, "config", "", "config file (.yaml, .yml or .toml)")
	cmd.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&ro.backend, "backend", "", "decimal backend: big or float (default big)")

	cmd.AddCommand(
		newAddCmd(ro),
		newCmpCmd(ro),
		newResolveCmd(ro),
		newFormatCmd(ro),
		newTUICmd(ro),
		newVersionCmd(),
	)
	return cmd
}

func Execute() error {
	return NewRootCmd().Execute()
}

// options loads the config file, or the defaults if none is given.
// The --backend flag overrides the configured backend.
func (ro *rootOptions) options() (*config.Options, error) {
	var (
		o   *config.Options
		err error
	)
	if ro.cfgFile != "" {
		o, err = config.Load(ro.cfgFile)
	} else {
		o, err = config.Decode(strings.NewReader(""), "yaml")
	}
	if err != nil {
		return nil, err
	}
	if ro.backend != "" {
		o.Backend = ro.backend
		if err := o.Validate(); err != nil {
			return nil, err
		}
	}
	return o, nil
}

func (ro *rootOptions) decimalBackend() (decimal.Backend, error) {
	o, err := ro.options()
	if err != nil {
		return nil, err
	}
	return decimal.Lookup(o.Backend)
}

// logger writes to stderr, or to path if it is not empty.
func (ro *rootOptions) logger(o *config.Options, path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if ro.verbose {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg.Level = zap.NewAtomicLevelAt(o.Level())
	}
	if path != "" {
		cfg.OutputPaths = []string{path}
		cfg.ErrorOutputPaths = []string{path}
	}
	return cfg.Build()
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
