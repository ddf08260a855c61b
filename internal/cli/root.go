// Package cli provides the Cobra command structure for pyguard.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/a1f/pyguard/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root pyguard command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var verbose bool
	var configPath string
	var color string

	rootCmd := &cobra.Command{
		Use:     "pyguard",
		Short:   "A fast, self-fixing linter for Python",
		Version: info.Version,
		Long: `pyguard is a fast Python linter that finds missing type annotations,
unsafe keyword-argument usage, and other style issues, and can fix many
of them automatically. It is safe by construction: fixes are verified
against conflicting edits, can be dry-run first, and leave a backup
behind when backups are enabled in configuration.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			switch {
			case debug:
				logging.SetLevel("debug")
			case verbose:
				logging.SetLevel("info")
			default:
				logging.SetLevel("warn")
			}
			_ = cmd
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("pyguard {{.Version}}\n")

	// Global flags.
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to pyproject.toml (default: discovered by ascending from the working directory)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable info-level logging")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto", "colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newConfigCommand())
	rootCmd.AddCommand(newLintCommand())
	rootCmd.AddCommand(newFixCommand())
	rootCmd.AddCommand(newExplainCommand())

	// Apply styled help formatting.
	helpFormatter := NewHelpFormatter(color, os.Stdout)
	helpFormatter.ApplyToCommand(rootCmd)

	return rootCmd
}
