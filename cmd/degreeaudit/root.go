package main

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "degreeaudit",
	Short: "Parse and evaluate degree-audit area definitions",
	Long: "degreeaudit loads area-of-study definitions and student transcripts " +
		"and runs the audit evaluator against them.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// addLogLevelFlag registers the shared --log-level flag on flags, typed
// against pflag directly so callers outside this package could reuse it
// against any FlagSet, not just this command tree's.
func addLogLevelFlag(flags *pflag.FlagSet) {
	flags.StringVar(&logLevel, "log-level", "warn", "log verbosity (trace, debug, info, warn, error)")
}

func init() {
	addLogLevelFlag(rootCmd.PersistentFlags())
}

func newLogger(name string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:            name,
		Level:           hclog.LevelFromString(logLevel),
		IncludeLocation: false,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
