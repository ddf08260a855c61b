// Package config defines pyguard's configuration data model. These types
// are pure data structures; TOML loading lives in internal/configloader so
// this package stays usable without pulling in a parser.
package config

import "github.com/a1f/pyguard/pkg/diag"

// OutputFormat selects how diagnostics are rendered.
type OutputFormat string

const (
	FormatText   OutputFormat = "text"
	FormatJSON   OutputFormat = "json"
	FormatGithub OutputFormat = "github"
)

// ColorMode controls whether the text reporter emits ANSI color.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// AnnotationScope names a place an unannotated assignment can occur, used
// by TYP003 to decide which assignments it should flag.
type AnnotationScope string

const (
	ScopeModule AnnotationScope = "module"
	ScopeClass  AnnotationScope = "class"
	ScopeLocal  AnnotationScope = "local"
)

// DefaultExcludes are glob patterns excluded from scanning unless the
// configuration overrides them.
var DefaultExcludes = []string{
	"**/__pycache__/**",
	"**/.*",
	"**/.git/**",
	"**/.venv/**",
	"**/venv/**",
	"**/env/**",
	"build/**",
	"dist/**",
	"*.egg-info/**",
}

// DefaultInclude is the glob pattern matched when no include patterns are
// configured.
var DefaultInclude = []string{"**/*.py"}

// DefaultSeverities gives every rule code its out-of-the-box severity.
var DefaultSeverities = map[diag.RuleCode]diag.Severity{
	diag.TYP001: diag.SeverityError,
	diag.TYP002: diag.SeverityError,
	diag.TYP003: diag.SeverityWarn,
	diag.TYP010: diag.SeverityError,
	diag.KW001:  diag.SeverityWarn,
	diag.RET001: diag.SeverityWarn,
	diag.IMP001: diag.SeverityError,
	diag.EXP001: diag.SeverityOff,
	diag.EXP002: diag.SeverityOff,
}

// RuleCodes lists every rule code pyguard understands, independent of its
// current enablement.
var RuleCodes = []diag.RuleCode{
	diag.TYP001, diag.TYP002, diag.TYP003, diag.TYP010,
	diag.KW001, diag.RET001, diag.IMP001, diag.EXP001, diag.EXP002,
}

// TYP001Options configures the missing-parameter-annotation rule.
type TYP001Options struct {
	ExemptDunder  bool
	ExemptSelfCls bool
}

// TYP003Options configures the missing-variable-annotation rule.
type TYP003Options struct {
	Scope map[AnnotationScope]bool
}

// KW001Options configures the keyword-only-parameter rule.
type KW001Options struct {
	MinParams      int
	ExemptDunder   bool
	ExemptPrivate  bool
	ExemptOverride bool
}

// DefaultTYP001Options returns TYP001's out-of-the-box behavior.
func DefaultTYP001Options() TYP001Options {
	return TYP001Options{ExemptDunder: true, ExemptSelfCls: true}
}

// DefaultTYP003Options returns TYP003's out-of-the-box behavior.
func DefaultTYP003Options() TYP003Options {
	return TYP003Options{Scope: map[AnnotationScope]bool{ScopeModule: true}}
}

// DefaultKW001Options returns KW001's out-of-the-box behavior.
func DefaultKW001Options() KW001Options {
	return KW001Options{MinParams: 2, ExemptDunder: true, ExemptPrivate: true, ExemptOverride: true}
}

// IgnoreGovernance constrains how `# pyguard: ignore[...]` pragmas may be
// used within a run.
type IgnoreGovernance struct {
	RequireReason bool
	Disallow      map[diag.RuleCode]bool
	MaxPerFile    *int
}

// DefaultIgnoreGovernance returns pragma governance with no restrictions
// beyond requiring a reason.
func DefaultIgnoreGovernance() IgnoreGovernance {
	return IgnoreGovernance{RequireReason: true, Disallow: map[diag.RuleCode]bool{}}
}

// RuleConfig bundles per-rule severities and option blocks.
type RuleConfig struct {
	Severities map[diag.RuleCode]diag.Severity
	TYP001     TYP001Options
	TYP003     TYP003Options
	KW001      KW001Options
}

// BackupOptions controls whether fix writes leave a sidecar copy of the
// pre-fix file behind.
type BackupOptions struct {
	Enabled bool
	Mode    string
}

// Config is the root configuration for a pyguard run.
type Config struct {
	// ConfigPath is the pyproject.toml this configuration was loaded from,
	// empty when running with defaults only.
	ConfigPath string

	// PythonVersion is the target language version manifests may declare
	// (e.g. "3.11"). No rule currently varies behavior on it; it is
	// threaded through so `config --json`/`--validate` can echo it back.
	PythonVersion string

	Include []string
	Exclude []string

	OutputFormat OutputFormat
	ShowSource   bool
	Color        ColorMode

	Rules   RuleConfig
	Ignores IgnoreGovernance

	// The fields below are CLI-only: they are never read from the project
	// manifest, only set from flags by internal/cli before a run.

	// WorkingDir anchors relative Paths and manifest discovery.
	WorkingDir string

	// Fix enables the fixer pipeline instead of lint-only diagnostics.
	Fix bool

	// DryRun computes fixes and a diff without writing any file.
	DryRun bool

	// Jobs bounds the number of concurrent file workers; <= 0 means
	// runtime.NumCPU().
	Jobs int

	// NoBackups disables Backups even if Backups.Enabled is true.
	NoBackups bool

	Backups BackupOptions
}

// New returns a Config populated with every default.
func New() *Config {
	severities := make(map[diag.RuleCode]diag.Severity, len(DefaultSeverities))
	for code, sev := range DefaultSeverities {
		severities[code] = sev
	}
	return &Config{
		Include:      append([]string(nil), DefaultInclude...),
		Exclude:      append([]string(nil), DefaultExcludes...),
		OutputFormat: FormatText,
		ShowSource:   true,
		Color:        ColorAuto,
		Rules: RuleConfig{
			Severities: severities,
			TYP001:     DefaultTYP001Options(),
			TYP003:     DefaultTYP003Options(),
			KW001:      DefaultKW001Options(),
		},
		Ignores: DefaultIgnoreGovernance(),
	}
}

// Severity returns the configured severity for code, defaulting to off for
// codes the configuration does not recognize.
func (c *Config) Severity(code diag.RuleCode) diag.Severity {
	if sev, ok := c.Rules.Severities[code]; ok {
		return sev
	}
	return diag.SeverityOff
}

// RuleEnabled reports whether code should run at all. A rule configured at
// "off" is not executed.
func (c *Config) RuleEnabled(code diag.RuleCode) bool {
	return c.Severity(code) != diag.SeverityOff
}
