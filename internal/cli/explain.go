package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/lint"
	_ "github.com/a1f/pyguard/pkg/lint/rules" // register built-in rules
)

type explainFlags struct {
	all bool
}

func newExplainCommand() *cobra.Command {
	flags := &explainFlags{}

	cmd := &cobra.Command{
		Use:   "explain [code]",
		Short: "Explain a rule's purpose and default behavior",
		Long: `Print what a rule code checks for, its default severity, and
whether it supports auto-fixing.

Examples:
  pyguard explain TYP001          Explain a single rule
  pyguard explain --all           List every rule pyguard ships with`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplain(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.all, "all", false, "list every rule instead of explaining one")

	return cmd
}

func runExplain(cmd *cobra.Command, args []string, flags *explainFlags) error {
	out := cmd.OutOrStdout()

	if flags.all {
		rules := lint.DefaultRegistry.Rules()
		sort.Slice(rules, func(i, j int) bool { return rules[i].ID() < rules[j].ID() })
		for _, rule := range rules {
			printRuleSummary(out, rule)
		}
		return nil
	}

	if len(args) != 1 {
		return &UsageError{Err: fmt.Errorf("explain requires a rule code, or pass --all to list every rule")}
	}

	rule, ok := lint.DefaultRegistry.GetByID(diag.RuleCode(strings.ToUpper(args[0])))
	if !ok {
		return &UsageError{Err: fmt.Errorf("unknown rule code %q", args[0])}
	}

	fmt.Fprintf(out, "%s: %s\n\n", rule.ID(), rule.Name())
	fmt.Fprintln(out, rule.Description())
	fmt.Fprintf(out, "\ndefault severity: %s\n", rule.DefaultSeverity())
	fmt.Fprintf(out, "auto-fixable: %t\n", rule.CanFix())

	return nil
}

func printRuleSummary(out io.Writer, rule lint.Rule) {
	fixable := "no"
	if rule.CanFix() {
		fixable = "yes"
	}
	fmt.Fprintf(out, "%-8s %-24s severity=%-6s fixable=%s\n", rule.ID(), rule.Name(), rule.DefaultSeverity(), fixable)
}
