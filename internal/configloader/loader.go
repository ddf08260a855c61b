// Package configloader finds and parses a project's pyproject.toml,
// merges it with CLI-supplied overrides, and validates the result.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
)

// LoadOptions controls how Load locates and interprets configuration.
type LoadOptions struct {
	// WorkingDir anchors manifest discovery and relative paths. Empty
	// means the process's current directory.
	WorkingDir string

	// ExplicitPath, when set, is used directly instead of searching
	// upward from WorkingDir (the CLI's --config flag).
	ExplicitPath string

	// CLIConfig carries values set via command-line flags. Any
	// non-zero-value field here overrides the manifest. Defaults to a
	// field-empty Config when nil.
	CLIConfig *config.Config
}

// LoadResult is the outcome of a Load call.
type LoadResult struct {
	Config *config.Config

	// ManifestPath is the pyproject.toml that was read, empty if none
	// was found (or --config was never set) and pyguard is running on
	// defaults alone.
	ManifestPath string

	// Warnings holds non-fatal issues noticed while merging, such as an
	// unrecognized rule code in [tool.pyguard.rules].
	Warnings []string
}

// Load resolves the effective Config for a run: defaults, overlaid with
// the project manifest (if any), overlaid with CLI flags.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	cfg := config.New()
	result := &LoadResult{Config: cfg}

	manifestPath := opts.ExplicitPath
	if manifestPath == "" {
		found, err := FindProjectManifest(ctx, opts.WorkingDir)
		if err != nil {
			return nil, fmt.Errorf("discover project manifest: %w", err)
		}
		manifestPath = found
	} else if !fileExists(manifestPath) {
		return nil, fmt.Errorf("config file not found: %s", manifestPath)
	}

	if manifestPath != "" {
		warnings, err := applyManifest(cfg, manifestPath)
		if err != nil {
			return nil, err
		}
		result.Warnings = append(result.Warnings, warnings...)
		result.ManifestPath = manifestPath
		cfg.ConfigPath = manifestPath
	}

	cfg.WorkingDir = opts.WorkingDir

	if opts.CLIConfig != nil {
		applyCLIOverrides(cfg, opts.CLIConfig)
	}

	return result, nil
}

// applyManifest parses the pyproject.toml at path and overlays its
// [tool.pyguard] section onto cfg.
func applyManifest(cfg *config.Config, path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var doc manifestDoc
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}

	m := doc.Tool.Pyguard
	var warnings []string

	if m.PythonVersion != "" {
		cfg.PythonVersion = m.PythonVersion
	}
	if len(m.Include) > 0 {
		cfg.Include = m.Include
	}
	if len(m.Exclude) > 0 {
		cfg.Exclude = m.Exclude
	}
	if m.OutputFormat != "" {
		cfg.OutputFormat = config.OutputFormat(m.OutputFormat)
	}
	if m.ShowSource != nil {
		cfg.ShowSource = *m.ShowSource
	}
	if m.Color != "" {
		cfg.Color = config.ColorMode(m.Color)
	}

	for rawCode, entry := range m.Rules {
		code := diag.RuleCode(rawCode)
		if !isKnownRuleCode(code) {
			warnings = append(warnings, fmt.Sprintf("unknown rule code %q in [tool.pyguard.rules]", rawCode))
			continue
		}
		sev := diag.Severity(entry.Severity)
		if sev != diag.SeverityError && sev != diag.SeverityWarn && sev != diag.SeverityOff {
			return nil, fmt.Errorf("%s: rule %s: severity must be one of error, warn, off (got %q)", path, rawCode, entry.Severity)
		}
		cfg.Rules.Severities[code] = sev
	}

	if m.TYP001 != nil {
		if m.TYP001.ExemptDunder != nil {
			cfg.Rules.TYP001.ExemptDunder = *m.TYP001.ExemptDunder
		}
		if m.TYP001.ExemptSelfCls != nil {
			cfg.Rules.TYP001.ExemptSelfCls = *m.TYP001.ExemptSelfCls
		}
	}

	if m.TYP003 != nil && len(m.TYP003.Scope) > 0 {
		scope := make(map[config.AnnotationScope]bool, len(m.TYP003.Scope))
		for _, s := range m.TYP003.Scope {
			scope[config.AnnotationScope(s)] = true
		}
		cfg.Rules.TYP003.Scope = scope
	}

	if m.KW001 != nil {
		if m.KW001.MinParams != nil {
			cfg.Rules.KW001.MinParams = *m.KW001.MinParams
		}
		if m.KW001.ExemptDunder != nil {
			cfg.Rules.KW001.ExemptDunder = *m.KW001.ExemptDunder
		}
		if m.KW001.ExemptPrivate != nil {
			cfg.Rules.KW001.ExemptPrivate = *m.KW001.ExemptPrivate
		}
		if m.KW001.ExemptOverrides != nil {
			cfg.Rules.KW001.ExemptOverride = *m.KW001.ExemptOverrides
		}
	}

	if m.Ignores.RequireReason != nil {
		cfg.Ignores.RequireReason = *m.Ignores.RequireReason
	}
	if len(m.Ignores.Disallow) > 0 {
		disallow := make(map[diag.RuleCode]bool, len(m.Ignores.Disallow))
		for _, code := range m.Ignores.Disallow {
			disallow[diag.RuleCode(code)] = true
		}
		cfg.Ignores.Disallow = disallow
	}
	if m.Ignores.MaxPerFile != nil {
		cfg.Ignores.MaxPerFile = m.Ignores.MaxPerFile
	}

	return warnings, nil
}

// applyCLIOverrides overlays flag-derived values onto cfg. CLI fields are
// only ever non-zero when the corresponding flag was actually set by the
// caller, so a zero value here always means "inherit the manifest/default".
func applyCLIOverrides(cfg *config.Config, cli *config.Config) {
	if cli.OutputFormat != "" {
		cfg.OutputFormat = cli.OutputFormat
	}
	if cli.Color != "" {
		cfg.Color = cli.Color
	}
	if len(cli.Include) > 0 {
		cfg.Include = cli.Include
	}
	if len(cli.Exclude) > 0 {
		cfg.Exclude = cli.Exclude
	}

	cfg.Fix = cfg.Fix || cli.Fix
	cfg.DryRun = cfg.DryRun || cli.DryRun
	cfg.NoBackups = cfg.NoBackups || cli.NoBackups

	if cli.Jobs > 0 {
		cfg.Jobs = cli.Jobs
	}
	if cli.Backups.Mode != "" {
		cfg.Backups = cli.Backups
	}
	if cli.WorkingDir != "" {
		cfg.WorkingDir = cli.WorkingDir
	}
}

func isKnownRuleCode(code diag.RuleCode) bool {
	for _, c := range config.RuleCodes {
		if c == code {
			return true
		}
	}
	return false
}
