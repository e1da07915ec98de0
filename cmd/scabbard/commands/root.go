// Package commands implements the scabbard CLI.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

// Execute runs the root command.
func Execute(ctx context.Context, version, commit, buildDate string) error {
	rootCmd := newRootCommand(version, commit, buildDate)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand(version, commit, buildDate string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "scabbard",
		Short: "Scabbard - parametric knife sheath generator",
		Long: `Scabbard deterministically generates the printable parts of a sliding
knife sheath (body, sleeve, end cap and retention bolts) from a flat
parameter set, and exports them as STL.

Parameters may come from a YAML file, a Lisp parameter script, or
--set key=value overrides; every derived dimension follows.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newParamsCommand())
	rootCmd.AddCommand(newValidateCommand())

	return rootCmd
}

// newLogger builds the console logger shared by all commands.
func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
