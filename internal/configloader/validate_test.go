package configloader_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/a1f/pyguard/internal/configloader"
	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/fsutil"
)

func TestValidate_DefaultsAreValid(t *testing.T) {
	errs := configloader.Validate(config.New())
	assert.Empty(t, errs)
}

func TestValidate_RejectsUnknownOutputFormat(t *testing.T) {
	cfg := config.New()
	cfg.OutputFormat = "xml"

	errs := configloader.Validate(cfg)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "output_format")
}

func TestValidate_RejectsUnknownColor(t *testing.T) {
	cfg := config.New()
	cfg.Color = "rainbow"

	errs := configloader.Validate(cfg)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "color")
}

func TestValidate_RejectsNegativeJobs(t *testing.T) {
	cfg := config.New()
	cfg.Jobs = -1

	errs := configloader.Validate(cfg)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "jobs")
}

func TestValidate_RejectsUnknownBackupMode(t *testing.T) {
	cfg := config.New()
	cfg.Backups.Mode = string(fsutil.BackupMode("zip"))

	errs := configloader.Validate(cfg)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "backups.mode")
}

func TestValidate_RejectsUnknownRuleCode(t *testing.T) {
	cfg := config.New()
	cfg.Rules.Severities[diag.RuleCode("NOPE999")] = diag.SeverityError

	errs := configloader.Validate(cfg)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "NOPE999")
}

func TestValidate_RejectsUnknownSeverity(t *testing.T) {
	cfg := config.New()
	cfg.Rules.Severities[diag.TYP001] = diag.Severity("critical")

	errs := configloader.Validate(cfg)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "TYP001")
}

func TestValidate_RejectsNegativeMinParams(t *testing.T) {
	cfg := config.New()
	cfg.Rules.KW001.MinParams = -1

	errs := configloader.Validate(cfg)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "min_params")
}

func TestValidate_RejectsUnknownScope(t *testing.T) {
	cfg := config.New()
	cfg.Rules.TYP003.Scope = map[config.AnnotationScope]bool{"global": true}

	errs := configloader.Validate(cfg)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "TYP003.scope")
}

func TestValidate_RejectsUnknownDisallowedCode(t *testing.T) {
	cfg := config.New()
	cfg.Ignores.Disallow = map[diag.RuleCode]bool{diag.RuleCode("NOPE999"): true}

	errs := configloader.Validate(cfg)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "ignores.disallow")
}

func TestValidate_RejectsNegativeMaxPerFile(t *testing.T) {
	cfg := config.New()
	max := -1
	cfg.Ignores.MaxPerFile = &max

	errs := configloader.Validate(cfg)
	assert.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "max_per_file")
}

func TestValidate_AccumulatesMultipleErrors(t *testing.T) {
	cfg := config.New()
	cfg.OutputFormat = "xml"
	cfg.Color = "rainbow"
	cfg.Jobs = -5

	errs := configloader.Validate(cfg)
	assert.Len(t, errs, 3)
}
