package suppress_test

import (
	"testing"

	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/pyast"
	"github.com/a1f/pyguard/pkg/suppress"
)

func parseOrFatal(t *testing.T, src string) *pyast.FileSnapshot {
	t.Helper()
	res := pyast.Parse("t.py", []byte(src))
	if res.Err != nil {
		t.Fatalf("unexpected syntax error: %+v", res.Err)
	}
	return res.File
}

func TestBlockPragmaSuppressesFollowingStatement(t *testing.T) {
	src := "# pyguard: ignore[TYP001] because: generated\ndef add(x, y):\n    return x + y\n"
	snap := parseOrFatal(t, src)
	raw := []diag.Diagnostic{
		{Code: diag.TYP001, Location: diag.SourceLocation{Line: 2, Column: 13}},
		{Code: diag.TYP001, Location: diag.SourceLocation{Line: 2, Column: 16}},
	}
	gov := config.IgnoreGovernance{RequireReason: false, Disallow: map[diag.RuleCode]bool{}}
	got := suppress.Apply(snap, raw, gov)
	if len(got) != 0 {
		t.Fatalf("got %d diagnostics, want 0 (all suppressed): %+v", len(got), got)
	}
}

func TestBlockPragmaWithoutReasonEmitsIGN001(t *testing.T) {
	src := "x = 1\n# pyguard: ignore[TYP001]\ndef add(x, y):\n    return x + y\n"
	snap := parseOrFatal(t, src)
	raw := []diag.Diagnostic{
		{Code: diag.TYP001, Location: diag.SourceLocation{Line: 3, Column: 13}},
	}
	gov := config.IgnoreGovernance{RequireReason: true, Disallow: map[diag.RuleCode]bool{}}
	got := suppress.Apply(snap, raw, gov)

	var govDiags, typDiags int
	for _, d := range got {
		switch d.Code {
		case diag.IgnoreMissingReason:
			govDiags++
			if d.Location.Line != 2 {
				t.Errorf("IGN001 line = %d, want 2 (the pragma's own line)", d.Location.Line)
			}
			if d.File != "t.py" {
				t.Errorf("IGN001 File = %q, want %q", d.File, "t.py")
			}
			if d.SourceLine != "# pyguard: ignore[TYP001]" {
				t.Errorf("IGN001 SourceLine = %q, want the pragma's literal line", d.SourceLine)
			}
		case diag.TYP001:
			typDiags++
		}
	}
	if govDiags != 1 {
		t.Errorf("got %d IGN001 diagnostics, want 1", govDiags)
	}
	if typDiags != 0 {
		t.Errorf("got %d surviving TYP001 diagnostics, want 0 (still suppressed by the pragma itself)", typDiags)
	}
}

func TestInlinePragmaSuppressesOnlySameLine(t *testing.T) {
	src := "x = 1  # pyguard: ignore[TYP003] because: fine\ny = 2\n"
	snap := parseOrFatal(t, src)
	raw := []diag.Diagnostic{
		{Code: diag.TYP003, Location: diag.SourceLocation{Line: 1, Column: 1}},
		{Code: diag.TYP003, Location: diag.SourceLocation{Line: 2, Column: 1}},
	}
	gov := config.IgnoreGovernance{RequireReason: true, Disallow: map[diag.RuleCode]bool{}}
	got := suppress.Apply(snap, raw, gov)
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics, want 1 (line 2 survives): %+v", len(got), got)
	}
	if got[0].Location.Line != 2 {
		t.Errorf("surviving diagnostic line = %d, want 2", got[0].Location.Line)
	}
}

func TestFileLevelPragmaSuppressesAnywhere(t *testing.T) {
	src := "# pyguard: ignore-file[TYP001] because: legacy module\ndef f(x):\n    return x\n\n\ndef g(y):\n    return y\n"
	snap := parseOrFatal(t, src)
	raw := []diag.Diagnostic{
		{Code: diag.TYP001, Location: diag.SourceLocation{Line: 2, Column: 7}},
		{Code: diag.TYP001, Location: diag.SourceLocation{Line: 6, Column: 7}},
	}
	gov := config.IgnoreGovernance{RequireReason: true, Disallow: map[diag.RuleCode]bool{}}
	got := suppress.Apply(snap, raw, gov)
	if len(got) != 0 {
		t.Fatalf("got %d diagnostics, want 0 (file-level pragma covers whole file): %+v", len(got), got)
	}
}

func TestDisallowedCodeIsNeverFiltered(t *testing.T) {
	src := "# pyguard: ignore[TYP001] because: generated\ndef add(x, y):\n    return x + y\n"
	snap := parseOrFatal(t, src)
	raw := []diag.Diagnostic{
		{Code: diag.TYP001, Location: diag.SourceLocation{Line: 2, Column: 13}},
	}
	gov := config.IgnoreGovernance{RequireReason: false, Disallow: map[diag.RuleCode]bool{diag.TYP001: true}}
	got := suppress.Apply(snap, raw, gov)

	var sawTYP001, sawIGN002 bool
	for _, d := range got {
		if d.Code == diag.TYP001 {
			sawTYP001 = true
		}
		if d.Code == diag.IgnoreDisallowed {
			sawIGN002 = true
		}
	}
	if !sawTYP001 {
		t.Error("TYP001 diagnostic was filtered despite being in the disallow set")
	}
	if !sawIGN002 {
		t.Error("expected an IGN002 governance diagnostic for the disallowed code")
	}
}

func TestMaxPerFileEmitsIGN003Once(t *testing.T) {
	src := "# pyguard: ignore[TYP001] because: a\n" +
		"# pyguard: ignore[TYP002] because: b\n" +
		"def f(x):\n    return x\n"
	snap := parseOrFatal(t, src)
	max := 1
	gov := config.IgnoreGovernance{RequireReason: true, Disallow: map[diag.RuleCode]bool{}, MaxPerFile: &max}
	got := suppress.Apply(snap, nil, gov)

	count := 0
	for _, d := range got {
		if d.Code == diag.IgnoreTooMany {
			count++
			if d.Location.Line != 1 {
				t.Errorf("IGN003 line = %d, want 1", d.Location.Line)
			}
			if d.File != "t.py" {
				t.Errorf("IGN003 File = %q, want %q", d.File, "t.py")
			}
			if d.SourceLine != "# pyguard: ignore[TYP001] because: a" {
				t.Errorf("IGN003 SourceLine = %q, want line 1's literal text", d.SourceLine)
			}
		}
	}
	if count != 1 {
		t.Errorf("got %d IGN003 diagnostics, want 1", count)
	}
}

func TestUnsuppressedDiagnosticIsNeverDropped(t *testing.T) {
	src := "def f(x):\n    return x\n"
	snap := parseOrFatal(t, src)
	raw := []diag.Diagnostic{
		{Code: diag.TYP001, Location: diag.SourceLocation{Line: 1, Column: 7}},
	}
	gov := config.DefaultIgnoreGovernance()
	got := suppress.Apply(snap, raw, gov)
	if len(got) != 1 {
		t.Fatalf("got %d diagnostics, want 1 (nothing suppresses it)", len(got))
	}
}
