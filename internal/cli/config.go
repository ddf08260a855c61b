package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/a1f/pyguard/internal/configloader"
	"github.com/a1f/pyguard/pkg/config"
)

type configFlags struct {
	validate bool
	json     bool
}

func newConfigCommand() *cobra.Command {
	flags := &configFlags{}

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or validate the effective configuration",
		Long: `Resolve and print pyguard's effective configuration: defaults,
overlaid with the discovered (or --config-specified) pyproject.toml,
overlaid with any CLI flags passed to this invocation.

Examples:
  pyguard config                  Print the effective configuration
  pyguard config --validate       Check the configuration and exit nonzero on error
  pyguard config --json           Print as JSON`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfig(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.validate, "validate", false, "only validate the configuration; print nothing on success")
	cmd.Flags().BoolVar(&flags.json, "json", false, "print the configuration as JSON")

	return cmd
}

// configView is the JSON/text-friendly projection of config.Config;
// CLI-only fields (WorkingDir, Fix, DryRun, ...) are omitted
// since they never come from the manifest.
type configView struct {
	ConfigPath    string            `json:"config_path,omitempty"`
	PythonVersion string            `json:"python_version,omitempty"`
	Include       []string          `json:"include"`
	Exclude       []string          `json:"exclude"`
	OutputFormat  string            `json:"output_format"`
	ShowSource    bool              `json:"show_source"`
	Color         string            `json:"color"`
	Severities    map[string]string `json:"rules"`
	Ignores       map[string]any    `json:"ignores"`
}

func newConfigView(cfg *config.Config) configView {
	severities := make(map[string]string, len(cfg.Rules.Severities))
	for code, sev := range cfg.Rules.Severities {
		severities[string(code)] = string(sev)
	}

	disallow := make([]string, 0, len(cfg.Ignores.Disallow))
	for code := range cfg.Ignores.Disallow {
		disallow = append(disallow, string(code))
	}

	return configView{
		ConfigPath:    cfg.ConfigPath,
		PythonVersion: cfg.PythonVersion,
		Include:       cfg.Include,
		Exclude:       cfg.Exclude,
		OutputFormat:  string(cfg.OutputFormat),
		ShowSource:    cfg.ShowSource,
		Color:         string(cfg.Color),
		Severities:    severities,
		Ignores: map[string]any{
			"require_reason": cfg.Ignores.RequireReason,
			"disallow":       disallow,
			"max_per_file":   cfg.Ignores.MaxPerFile,
		},
	}
}

func runConfig(cmd *cobra.Command, flags *configFlags) error {
	ctx := cmd.Context()

	workDir, configPath, _, err := commonRunInputs(cmd)
	if err != nil {
		return err
	}

	loadResult, err := configloader.Load(ctx, configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
	})
	if err != nil {
		return err
	}

	validationErrs := configloader.Validate(loadResult.Config)

	if flags.validate {
		if len(validationErrs) > 0 {
			return joinConfigErrors(validationErrs)
		}
		return nil
	}

	if len(validationErrs) > 0 {
		return joinConfigErrors(validationErrs)
	}

	view := newConfigView(loadResult.Config)

	if flags.json {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if err := enc.Encode(view); err != nil {
			return fmt.Errorf("encode configuration: %w", err)
		}
		return nil
	}

	out := cmd.OutOrStdout()
	if view.ConfigPath != "" {
		fmt.Fprintf(out, "config file: %s\n", view.ConfigPath)
	} else {
		fmt.Fprintln(out, "config file: (none found, using defaults)")
	}
	fmt.Fprintf(out, "python_version: %s\n", view.PythonVersion)
	fmt.Fprintf(out, "output_format: %s\n", view.OutputFormat)
	fmt.Fprintf(out, "color: %s\n", view.Color)
	fmt.Fprintf(out, "show_source: %t\n", view.ShowSource)
	fmt.Fprintf(out, "include: %v\n", view.Include)
	fmt.Fprintf(out, "exclude: %v\n", view.Exclude)
	fmt.Fprintln(out, "rules:")
	for _, code := range config.RuleCodes {
		fmt.Fprintf(out, "  %s: %s\n", code, view.Severities[string(code)])
	}

	return nil
}
