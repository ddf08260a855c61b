package diag

import "testing"

func TestCollectionSortedOrdersByFileLineColumn(t *testing.T) {
	c := NewCollection()
	c.Add(Diagnostic{File: "b.py", Location: SourceLocation{Line: 1, Column: 1}, Code: TYP001})
	c.Add(Diagnostic{File: "a.py", Location: SourceLocation{Line: 5, Column: 1}, Code: TYP002})
	c.Add(Diagnostic{File: "a.py", Location: SourceLocation{Line: 2, Column: 9}, Code: TYP003})
	c.Add(Diagnostic{File: "a.py", Location: SourceLocation{Line: 2, Column: 3}, Code: TYP010})

	got := c.Sorted()
	want := []RuleCode{TYP010, TYP003, TYP002, TYP001}
	if len(got) != len(want) {
		t.Fatalf("got %d diagnostics, want %d", len(got), len(want))
	}
	for i, d := range got {
		if d.Code != want[i] {
			t.Errorf("position %d: got code %s, want %s", i, d.Code, want[i])
		}
	}
}

func TestCollectionSortedIsStableUnderEqualKeys(t *testing.T) {
	c := NewCollection()
	c.Add(Diagnostic{File: "a.py", Location: SourceLocation{Line: 1, Column: 1}, Code: TYP001})
	c.Add(Diagnostic{File: "a.py", Location: SourceLocation{Line: 1, Column: 1}, Code: TYP002})
	c.Add(Diagnostic{File: "a.py", Location: SourceLocation{Line: 1, Column: 1}, Code: TYP003})

	got := c.Sorted()
	want := []RuleCode{TYP001, TYP002, TYP003}
	for i, d := range got {
		if d.Code != want[i] {
			t.Errorf("position %d: got code %s, want %s (insertion order not preserved for equal keys)", i, d.Code, want[i])
		}
	}
}

func TestCollectionDoesNotDeduplicate(t *testing.T) {
	c := NewCollection()
	d := Diagnostic{File: "a.py", Location: SourceLocation{Line: 1, Column: 1}, Code: TYP001, Message: "m"}
	c.Add(d)
	c.Add(d)
	if c.Len() != 2 {
		t.Fatalf("got %d diagnostics, want 2 (collections never deduplicate)", c.Len())
	}
}

func TestCollectionCounts(t *testing.T) {
	c := NewCollection()
	c.AddAll([]Diagnostic{
		{Severity: SeverityError},
		{Severity: SeverityError},
		{Severity: SeverityWarn},
	})
	if !c.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
	if c.ErrorCount() != 2 {
		t.Errorf("ErrorCount() = %d, want 2", c.ErrorCount())
	}
	if c.WarningCount() != 1 {
		t.Errorf("WarningCount() = %d, want 1", c.WarningCount())
	}
}

func TestDiagnosticHasFix(t *testing.T) {
	d := Diagnostic{}
	if d.HasFix() {
		t.Error("HasFix() = true for diagnostic with no edits")
	}
	d.FixEdits = []TextEdit{{StartOffset: 0, EndOffset: 1, NewText: "x"}}
	if !d.HasFix() {
		t.Error("HasFix() = false for diagnostic with edits")
	}
}
