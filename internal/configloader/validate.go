package configloader

import (
	"fmt"

	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/fsutil"
)

// ValidationError describes a single invalid configuration value.
type ValidationError struct {
	Field   string
	Value   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Message, e.Value)
}

// Validate checks cfg for internally inconsistent or unrecognized values.
// It returns every problem found rather than stopping at the first.
func Validate(cfg *config.Config) []error {
	var errs []error

	switch cfg.OutputFormat {
	case config.FormatText, config.FormatJSON, config.FormatGithub, "":
	default:
		errs = append(errs, &ValidationError{
			Field: "output_format", Value: string(cfg.OutputFormat),
			Message: "must be one of text, json, github",
		})
	}

	switch cfg.Color {
	case config.ColorAuto, config.ColorAlways, config.ColorNever, "":
	default:
		errs = append(errs, &ValidationError{
			Field: "color", Value: string(cfg.Color),
			Message: "must be one of auto, always, never",
		})
	}

	if cfg.Jobs < 0 {
		errs = append(errs, &ValidationError{
			Field: "jobs", Value: fmt.Sprintf("%d", cfg.Jobs),
			Message: "must be >= 0",
		})
	}

	switch cfg.Backups.Mode {
	case string(fsutil.BackupModeSidecar), string(fsutil.BackupModeNone), "":
	default:
		errs = append(errs, &ValidationError{
			Field: "backups.mode", Value: string(cfg.Backups.Mode),
			Message: "must be one of sidecar, none",
		})
	}

	for code, sev := range cfg.Rules.Severities {
		if !isKnownRuleCode(code) {
			errs = append(errs, &ValidationError{
				Field: "rules", Value: string(code),
				Message: "unrecognized rule code",
			})
			continue
		}
		switch sev {
		case diag.SeverityError, diag.SeverityWarn, diag.SeverityOff:
		default:
			errs = append(errs, &ValidationError{
				Field: fmt.Sprintf("rules.%s", code), Value: string(sev),
				Message: "severity must be one of error, warn, off",
			})
		}
	}

	if cfg.Rules.KW001.MinParams < 0 {
		errs = append(errs, &ValidationError{
			Field: "KW001.min_params", Value: fmt.Sprintf("%d", cfg.Rules.KW001.MinParams),
			Message: "must be >= 0",
		})
	}

	for scope := range cfg.Rules.TYP003.Scope {
		switch scope {
		case config.ScopeModule, config.ScopeClass, config.ScopeLocal:
		default:
			errs = append(errs, &ValidationError{
				Field: "TYP003.scope", Value: string(scope),
				Message: "must be one of module, class, local",
			})
		}
	}

	for code := range cfg.Ignores.Disallow {
		if !isKnownRuleCode(code) {
			errs = append(errs, &ValidationError{
				Field: "ignores.disallow", Value: string(code),
				Message: "unrecognized rule code",
			})
		}
	}

	if cfg.Ignores.MaxPerFile != nil && *cfg.Ignores.MaxPerFile < 0 {
		errs = append(errs, &ValidationError{
			Field: "ignores.max_per_file", Value: fmt.Sprintf("%d", *cfg.Ignores.MaxPerFile),
			Message: "must be >= 0",
		})
	}

	return errs
}
