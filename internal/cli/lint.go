package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/a1f/pyguard/internal/configloader"
	"github.com/a1f/pyguard/internal/logging"
	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/lint"
	_ "github.com/a1f/pyguard/pkg/lint/rules" // register built-in rules
	"github.com/a1f/pyguard/pkg/reporter"
	"github.com/a1f/pyguard/pkg/runner"
)

// ErrLintIssuesFound signals that diagnostics with error severity were
// found; it is returned after the reporter's output has been written.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format       string
	showSource   bool
	noShowSource bool
	jobs         int
}

func newLintCommand() *cobra.Command {
	flags := &lintFlags{showSource: true}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint Python files",
		Long: `Lint Python files for missing type annotations, unsafe keyword
arguments, and other style issues.

By default, lints every *.py file under the current directory.
Specify paths to lint specific files or directories.

Examples:
  pyguard lint                     Lint the current directory
  pyguard lint src/                Lint a single directory
  pyguard lint module.py           Lint a single file
  pyguard lint --format json       Output machine-readable JSON`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json")
	cmd.Flags().BoolVar(&flags.showSource, "show-source", true, "show the offending source line for each diagnostic")
	cmd.Flags().BoolVar(&flags.noShowSource, "no-show-source", false, "suppress source lines in diagnostics")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.MarkFlagsMutuallyExclusive("show-source", "no-show-source")

	return cmd
}

func runLint(cmd *cobra.Command, args []string, flags *lintFlags) error {
	logger := logging.Default()
	ctx := cmd.Context()

	workDir, configPath, color, err := commonRunInputs(cmd)
	if err != nil {
		return err
	}

	cliCfg := &config.Config{Jobs: flags.jobs}
	if cmd.Flags().Changed("format") {
		cliCfg.OutputFormat = config.OutputFormat(flags.format)
	}

	loadResult, err := loadAndValidate(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cliCfg,
	})
	if err != nil {
		return err
	}
	finalCfg := loadResult.Config

	switch {
	case flags.noShowSource:
		finalCfg.ShowSource = false
	case cmd.Flags().Changed("show-source"):
		finalCfg.ShowSource = flags.showSource
	}
	if !cmd.Flags().Changed("color") {
		color = string(finalCfg.Color)
	}

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	engine := lint.NewEngine(lint.DefaultRegistry)
	pipeline := lint.NewPipeline(engine)
	lintRunner := runner.New(pipeline)

	runOpts := runner.Options{
		Paths:      args,
		WorkingDir: workDir,
		Jobs:       finalCfg.Jobs,
		Config:     finalCfg,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("lint run failed: %w", err)
	}

	format, err := reporter.ParseFormat(string(finalCfg.OutputFormat))
	if err != nil {
		return fmt.Errorf("invalid format: %w", err)
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       color,
		ShowContext: finalCfg.ShowSource,
		ShowSummary: true,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if result.HasFailures() {
		return ErrLintIssuesFound
	}

	return nil
}
