package pretty_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/a1f/pyguard/internal/ui/pretty"
	"github.com/a1f/pyguard/pkg/diag"
)

func TestFormatDiagnostic_Basic(t *testing.T) {
	styles := pretty.NewStyles(false)

	d := &diag.Diagnostic{
		Code:     diag.TYP001,
		Message:  "missing parameter annotation",
		Severity: diag.SeverityError,
		File:     "mod.py",
		Location: diag.SourceLocation{Line: 10, Column: 1},
	}

	result := styles.FormatDiagnostic(d, false)

	assert.Equal(t, "mod.py:10:1: ERROR [TYP001] missing parameter annotation\n", result)
}

func TestFormatDiagnostic_WithContext(t *testing.T) {
	styles := pretty.NewStyles(false)

	d := &diag.Diagnostic{
		Code:       diag.KW001,
		Message:    "too many positional parameters",
		Severity:   diag.SeverityWarn,
		File:       "mod.py",
		Location:   diag.SourceLocation{Line: 5, Column: 3},
		SourceLine: "def f(a, b, c):",
	}

	result := styles.FormatDiagnostic(d, true)

	assert.Contains(t, result, "def f(a, b, c):")
	assert.Contains(t, result, "^")
}

func TestFormatSeverity_AllLevels(t *testing.T) {
	styles := pretty.NewStyles(false)

	tests := []struct {
		severity diag.Severity
		expected string
	}{
		{diag.SeverityError, "ERROR"},
		{diag.SeverityWarn, "WARN"},
	}

	for _, tt := range tests {
		t.Run(string(tt.severity), func(t *testing.T) {
			result := styles.FormatSeverity(tt.severity)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFormatSourceContext_WithCaret(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("test line", 5)

	assert.Equal(t, "    test line\n        ^\n\n", result)
}

func TestFormatSourceContext_ZeroColumn(t *testing.T) {
	styles := pretty.NewStyles(false)

	result := styles.FormatSourceContext("test line", 0)

	assert.Contains(t, result, "test line")
	assert.NotContains(t, result, "^")
}
