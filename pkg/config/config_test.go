package config_test

import (
	"testing"

	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg := config.New()

	assert.Equal(t, config.FormatText, cfg.OutputFormat)
	assert.True(t, cfg.ShowSource)
	assert.Equal(t, config.ColorAuto, cfg.Color)
	assert.Equal(t, []string{"**/*.py"}, cfg.Include)
	assert.Contains(t, cfg.Exclude, "**/__pycache__/**")
}

func TestSeverityDefaults(t *testing.T) {
	cfg := config.New()

	cases := map[diag.RuleCode]diag.Severity{
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
	for code, want := range cases {
		assert.Equal(t, want, cfg.Severity(code), "code %s", code)
	}
}

func TestRuleEnabled(t *testing.T) {
	cfg := config.New()

	require.True(t, cfg.RuleEnabled(diag.TYP001))
	require.False(t, cfg.RuleEnabled(diag.EXP001))

	cfg.Rules.Severities[diag.EXP001] = diag.SeverityWarn
	require.True(t, cfg.RuleEnabled(diag.EXP001))

	cfg.Rules.Severities[diag.TYP001] = diag.SeverityOff
	require.False(t, cfg.RuleEnabled(diag.TYP001))
}

func TestSeverityUnknownCodeIsOff(t *testing.T) {
	cfg := config.New()
	assert.Equal(t, diag.SeverityOff, cfg.Severity(diag.RuleCode("NOPE999")))
}
