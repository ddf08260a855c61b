package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/a1f/pyguard/internal/configloader"
	"github.com/a1f/pyguard/internal/logging"
	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/lint"
	_ "github.com/a1f/pyguard/pkg/lint/rules" // register built-in rules
	"github.com/a1f/pyguard/pkg/reporter"
	"github.com/a1f/pyguard/pkg/runner"
)

type fixFlags struct {
	diff   bool
	check  bool
	tryout bool
	jobs   int
}

func newFixCommand() *cobra.Command {
	flags := &fixFlags{}

	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Apply automatic fixes to Python files",
		Long: `Run pyguard's fixable rules and rewrite files in place.

By default, fix writes every accepted edit to disk (leaving a backup
only when backups are enabled in configuration). Pass --diff to preview the changes
without writing, --check to fail if any file has pending changes
without writing them (useful in CI), or --tryout to review and accept
or reject each file's changes interactively.

Examples:
  pyguard fix                      Apply fixes to the current directory
  pyguard fix --diff               Preview fixes as a unified diff
  pyguard fix --check              Fail if any file needs fixing, change nothing
  pyguard fix --tryout src/        Review each file's fix before writing it`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.diff, "diff", false, "preview fixes as a unified diff without writing")
	cmd.Flags().BoolVar(&flags.check, "check", false, "exit nonzero if any file has pending fixes, without writing")
	cmd.Flags().BoolVar(&flags.tryout, "tryout", false, "interactively accept or reject each file's fixes")
	cmd.Flags().IntVar(&flags.jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.MarkFlagsMutuallyExclusive("diff", "check", "tryout")

	return cmd
}

func runFix(cmd *cobra.Command, args []string, flags *fixFlags) error {
	logger := logging.Default()
	ctx := cmd.Context()

	workDir, configPath, color, err := commonRunInputs(cmd)
	if err != nil {
		return err
	}

	cliCfg := &config.Config{
		Fix:    true,
		DryRun: flags.diff || flags.check || flags.tryout,
		Jobs:   flags.jobs,
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

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("fix run failed: %w", err)
	}

	switch {
	case flags.diff:
		return reportFixDiff(cmd, result, color)
	case flags.check:
		return reportFixCheck(cmd, result)
	case flags.tryout:
		return runFixTryout(cmd, pipeline, finalCfg, result)
	default:
		return reportFixApplied(cmd, result)
	}
}

func reportFixDiff(cmd *cobra.Command, result *runner.Result, color string) error {
	rep := reporter.NewDiffReporter(reporter.Options{
		Writer: cmd.OutOrStdout(),
		Color:  color,
	})
	_, err := rep.Report(cmd.Context(), result)
	return err
}

func reportFixCheck(cmd *cobra.Command, result *runner.Result) error {
	pending := countPending(result)
	if pending == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no pending fixes")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%d file(s) have pending fixes\n", pending)
	return ErrPendingFixes
}

func reportFixApplied(cmd *cobra.Command, result *runner.Result) error {
	out := cmd.OutOrStdout()
	written := 0
	for _, fo := range result.Files {
		if fo.Result != nil && fo.Result.Written {
			written++
			fmt.Fprintf(out, "fixed %s\n", fo.Path)
		}
	}
	fmt.Fprintf(out, "%d file(s) fixed\n", written)
	if result.HasFailures() {
		return ErrLintIssuesFound
	}
	return nil
}

func countPending(result *runner.Result) int {
	pending := 0
	for _, fo := range result.Files {
		if fo.Result != nil && fo.Result.Modified {
			pending++
		}
	}
	return pending
}

// runFixTryout walks every file with a pending diff and asks the user
// whether to apply it: (y)es, (n)o, (a)ll remaining, (q)uit.
func runFixTryout(cmd *cobra.Command, pipeline *lint.Pipeline, cfg *config.Config, result *runner.Result) error {
	in := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()

	applyAll := false
	written := 0

	applyOpts := lint.PipelineOptionsFromConfig(cfg)
	applyOpts.DryRun = false

	for _, fo := range result.Files {
		if fo.Result == nil || !fo.Result.Modified || fo.Result.Diff == nil {
			continue
		}

		fmt.Fprint(out, fo.Result.Diff.FullString())

		accept := applyAll
		if !accept {
			fmt.Fprintf(out, "Apply fix to %s? [y/n/a/q] ", fo.Path)
			if !in.Scan() {
				break
			}
			switch strings.ToLower(strings.TrimSpace(in.Text())) {
			case "y", "yes":
				accept = true
			case "a", "all":
				accept = true
				applyAll = true
			case "q", "quit":
				fmt.Fprintf(out, "%d file(s) fixed\n", written)
				return nil
			default:
				accept = false
			}
		}

		if !accept {
			continue
		}

		if _, err := pipeline.ProcessFile(cmd.Context(), fo.Path, cfg, applyOpts); err != nil {
			return fmt.Errorf("apply fix to %s: %w", fo.Path, err)
		}
		written++
	}

	fmt.Fprintf(out, "%d file(s) fixed\n", written)
	return nil
}
