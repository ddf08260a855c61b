package lint_test

import (
	"context"
	"strings"
	"testing"

	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/lint"
	_ "github.com/a1f/pyguard/pkg/lint/rules"
)

func lintSource(t *testing.T, src string, cfg *config.Config) *lint.FileResult {
	t.Helper()
	engine := lint.NewEngine(lint.DefaultRegistry)
	result, err := engine.LintFile(context.Background(), "t.py", []byte(src), cfg)
	if err != nil {
		t.Fatalf("LintFile() error = %v", err)
	}
	return result
}

func diagnosticsOf(result *lint.FileResult, code diag.RuleCode) []diag.Diagnostic {
	var out []diag.Diagnostic
	for _, d := range result.Diagnostics {
		if d.Code == code {
			out = append(out, d)
		}
	}
	return out
}

func TestTYP001PartialAnnotations(t *testing.T) {
	src := "def process(x: int, y: str, z):\n    return x\n"
	result := lintSource(t, src, config.New())
	got := diagnosticsOf(result, diag.TYP001)
	if len(got) != 1 {
		t.Fatalf("got %d TYP001 diagnostics, want 1: %+v", len(got), got)
	}
	if got[0].Location.Line != 1 {
		t.Errorf("Location.Line = %d, want 1", got[0].Location.Line)
	}
	if want := "'z'"; !strings.Contains(got[0].Message, want) {
		t.Errorf("message = %q, want it to mention %q", got[0].Message, want)
	}
}

func TestTYP010NestedLegacyGenerics(t *testing.T) {
	src := "from typing import Dict, List, Optional\n\ndef f() -> Optional[Dict[str, List[int]]]:\n    return None\n"
	result := lintSource(t, src, config.New())
	got := diagnosticsOf(result, diag.TYP010)
	if len(got) != 1 {
		t.Fatalf("got %d TYP010 diagnostics, want 1: %+v", len(got), got)
	}
	want := "Use 'dict[str, list[int]] | None' instead of 'Optional[Dict[str, List[int]]]'"
	if got[0].Message != want {
		t.Errorf("message = %q, want %q", got[0].Message, want)
	}
}

func TestKW001MethodWithSelf(t *testing.T) {
	src := "class C:\n    def compute(self, a: int, b: int, op: str) -> int:\n        return a + b\n"
	result := lintSource(t, src, config.New())
	got := diagnosticsOf(result, diag.KW001)
	if len(got) != 1 {
		t.Fatalf("got %d KW001 diagnostics, want 1: %+v", len(got), got)
	}
	if got[0].Location.Line != 2 {
		t.Errorf("Location.Line = %d, want 2", got[0].Location.Line)
	}
	if want := "Method 'compute'"; !strings.Contains(got[0].Message, want) {
		t.Errorf("message = %q, want it to start with %q", got[0].Message, want)
	}
}

func TestSyntaxErrorYieldsSYN001AndSkipsRules(t *testing.T) {
	result := lintSource(t, "def f(:\n", config.New())
	if len(result.Diagnostics) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(result.Diagnostics), result.Diagnostics)
	}
	if result.Diagnostics[0].Code != diag.SyntaxErrorCode {
		t.Errorf("code = %s, want %s", result.Diagnostics[0].Code, diag.SyntaxErrorCode)
	}
}

func TestRuleAtOffSeverityDoesNotRun(t *testing.T) {
	cfg := config.New()
	cfg.Rules.Severities[diag.TYP001] = diag.SeverityOff
	result := lintSource(t, "def f(x):\n    return x\n", cfg)
	if got := diagnosticsOf(result, diag.TYP001); len(got) != 0 {
		t.Errorf("got %d TYP001 diagnostics with severity off, want 0", len(got))
	}
}

func TestRegistryResolveEnabledSkipsOff(t *testing.T) {
	cfg := config.New()
	cfg.Rules.Severities[diag.EXP001] = diag.SeverityOff
	resolved := lint.ResolveRules(lint.DefaultRegistry, cfg)
	for _, r := range resolved {
		if r.Rule.ID() == diag.EXP001 {
			t.Fatalf("EXP001 resolved despite being off")
		}
	}
}
