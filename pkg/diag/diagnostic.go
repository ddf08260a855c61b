// Package diag defines the diagnostic data model shared by rules, the
// suppression engine, the runner, and the reporters.
package diag

import (
	"cmp"
	"slices"
)

// Severity is the reporting level of a diagnostic.
type Severity string

const (
	SeverityError Severity = "error"
	SeverityWarn  Severity = "warn"
	SeverityOff   Severity = "off"
)

// RuleCode identifies a rule or synthetic diagnostic source.
type RuleCode string

const (
	TYP001 RuleCode = "TYP001"
	TYP002 RuleCode = "TYP002"
	TYP003 RuleCode = "TYP003"
	TYP010 RuleCode = "TYP010"
	KW001  RuleCode = "KW001"
	RET001 RuleCode = "RET001"
	IMP001 RuleCode = "IMP001"
	EXP001 RuleCode = "EXP001"
	EXP002 RuleCode = "EXP002"

	// SyntaxErrorCode marks a diagnostic synthesized from a parse failure.
	SyntaxErrorCode RuleCode = "SYN001"

	// Governance codes raised by the suppression engine itself.
	IgnoreMissingReason RuleCode = "IGN001"
	IgnoreDisallowed    RuleCode = "IGN002"
	IgnoreTooMany       RuleCode = "IGN003"
)

// SourceLocation pinpoints a diagnostic in a file. EndLine/EndColumn are
// zero when the diagnostic does not span a range.
type SourceLocation struct {
	Line      int
	Column    int
	EndLine   int
	EndColumn int
}

// Diagnostic is a single finding reported against a file.
type Diagnostic struct {
	File       string
	Location   SourceLocation
	Code       RuleCode
	Message    string
	Severity   Severity
	SourceLine string

	// FixEdits holds the edits produced by the rule's Apply call, if any.
	// Whether they are actually applied is the fixer pipeline's decision.
	FixEdits []TextEdit
}

// TextEdit mirrors fix.TextEdit without importing the fix package, so this
// package stays free of a dependency on byte-level fix machinery; the fix
// package converts between the two at its boundary.
type TextEdit struct {
	StartOffset int
	EndOffset   int
	NewText     string
}

// HasFix reports whether the diagnostic carries at least one edit.
func (d Diagnostic) HasFix() bool {
	return len(d.FixEdits) > 0
}

// Collection accumulates diagnostics for a run and provides the ordering
// and summary queries the reporters and exit-code logic need.
type Collection struct {
	items []Diagnostic
}

// NewCollection returns an empty Collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add appends a single diagnostic.
func (c *Collection) Add(d Diagnostic) {
	c.items = append(c.items, d)
}

// AddAll appends a slice of diagnostics.
func (c *Collection) AddAll(ds []Diagnostic) {
	c.items = append(c.items, ds...)
}

// Len returns the number of diagnostics collected.
func (c *Collection) Len() int {
	return len(c.items)
}

// All returns the diagnostics in insertion order.
func (c *Collection) All() []Diagnostic {
	return c.items
}

// Sorted returns the diagnostics ordered by (file, line, column), the order
// every reporter and test expectation relies on.
func (c *Collection) Sorted() []Diagnostic {
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	slices.SortStableFunc(out, func(a, b Diagnostic) int {
		if n := cmp.Compare(a.File, b.File); n != 0 {
			return n
		}
		if n := cmp.Compare(a.Location.Line, b.Location.Line); n != 0 {
			return n
		}
		return cmp.Compare(a.Location.Column, b.Location.Column)
	})
	return out
}

// HasErrors reports whether any diagnostic is at error severity.
func (c *Collection) HasErrors() bool {
	for _, d := range c.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-severity diagnostics.
func (c *Collection) ErrorCount() int {
	n := 0
	for _, d := range c.items {
		if d.Severity == SeverityError {
			n++
		}
	}
	return n
}

// WarningCount returns the number of warn-severity diagnostics.
func (c *Collection) WarningCount() int {
	n := 0
	for _, d := range c.items {
		if d.Severity == SeverityWarn {
			n++
		}
	}
	return n
}
