// Package cli holds the cobra commands of xlogdemo.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/abyssdigger/xlog"
)

var (
	// logDir is the directory the demo log files are created in
	logDir    string
	noConsole bool
	noColors  bool

	rootCmd = &cobra.Command{
		Use:           "xlogdemo",
		Short:         "Demonstrates hierarchical xlog loggers",
		Long:          `Runs small scenarios on top of the xlog package. Use 'run --help' for the manager scenario.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newSystem builds the registry every command works on, honoring the global
// console flags.
func newSystem(cmd *cobra.Command) *xlog.System {
	sys := xlog.NewSystem().
		SetConsoleOutput(cmd.OutOrStdout()).
		SetFallback(cmd.ErrOrStderr()).
		SetConsoleColors(!noColors)
	if noConsole {
		sys.SetConsoleOutput(nil)
	}
	return sys
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&logDir, "dir", "d", "logs", "directory for log files")
	rootCmd.PersistentFlags().BoolVar(&noConsole, "no-console", false, "discard console output")
	rootCmd.PersistentFlags().BoolVar(&noColors, "no-colors", false, "disable ANSI colors on console")
}
