// Package cli implements the jobmill command line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jobmill-project/jobmill/pkg/color"
	"github.com/jobmill-project/jobmill/pkg/config"
	"github.com/jobmill-project/jobmill/pkg/logging"
)

var (
	jsonOutput bool
	noColor    bool
	verbose    bool
)

// newRootCmd builds the root command and its subcommands. Tests build a
// fresh tree per case; Execute builds one for the process.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jobmill",
		Short: "jobmill - stream job orchestration control plane",
		Long: `jobmill manages the control-plane state of stream processing jobs.

It owns the savepoint restore settings contract: whether a job resumes
from a persisted savepoint, from where, and under what claim policy.
Restore settings travel inside a job configuration file; the scheduler
and the snapshot storage backend consume them from there.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			color.Init(noColor)
			configureLogging()
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newRestoreCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

// configureLogging applies the tool config and the --verbose flag to the
// global logger.
func configureLogging() {
	cfg := loadToolConfig()

	level := logging.Level(cfg.Logging.Level)
	if verbose {
		level = logging.LevelDebug
	}

	l := logging.NewLogger(level)
	if cfg.Logging.Format == string(logging.FormatText) {
		l.SetFormat(logging.FormatText)
	}
	logging.SetGlobal(l)
}

// loadToolConfig loads the tool config from CWD, falling back to defaults on
// any error so the CLI stays usable.
func loadToolConfig() *config.Config {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Default()
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		logging.Warn("tool config unreadable, using defaults", map[string]any{"error": err.Error()})
		return config.Default()
	}
	return cfg
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.Error("jobmill:")+" "+err.Error())
		os.Exit(1)
	}
}
