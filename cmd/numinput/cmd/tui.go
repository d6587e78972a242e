package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/govalues/numinput/internal/tui"
	"github.com/govalues/numinput/session"
)

func newTUICmd(ro *rootOptions) *cobra.Command {
	var (
		ff      fieldFlags
		title   string
		logFile string
	)
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start an interactive numeric field",
		Long: `Start an interactive numeric field in the terminal.

Navigation:
  Digits    - Type a number
  ↑ / ↓     - Step up or down (shift: ×10, ctrl: ×0.1)
  PgUp/PgDn - Hold a step button, any key releases it
  Enter     - Commit
  Tab       - Focus or blur
  Esc       - Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o, err := ro.options()
			if err != nil {
				return err
			}
			if err := ff.apply(cmd, o); err != nil {
				return err
			}

			log := zap.NewNop()
			if logFile != "" {
				if log, err = ro.logger(o, logFile); err != nil {
					return err
				}
				defer log.Sync() //nolint:errcheck
			}

			m, err := tui.New(title, func(opts ...session.Option) (*session.Session, error) {
				return o.Session(append(opts, session.WithLogger(log))...)
			})
			if err != nil {
				return err
			}
			defer m.Session().Close()

			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				printError("TUI", err)
				return err
			}
			return nil
		},
	}
	ff.register(cmd)
	cmd.Flags().StringVar(&title, "title", "Amount", "field label")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file")
	return cmd
}
