package lint

import (
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/fix"
)

// DiagnosticBuilder helps construct diag.Diagnostic values with the fluent
// style rules use throughout this package.
type DiagnosticBuilder struct {
	d diag.Diagnostic
}

// NewDiagnosticAt starts building a diagnostic at a 1-based line/column.
func NewDiagnosticAt(code diag.RuleCode, file string, line, column int, message string) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		d: diag.Diagnostic{
			File:     file,
			Code:     code,
			Message:  message,
			Location: diag.SourceLocation{Line: line, Column: column},
		},
	}
}

// WithEnd sets the diagnostic's end line/column.
func (b *DiagnosticBuilder) WithEnd(line, column int) *DiagnosticBuilder {
	b.d.Location.EndLine = line
	b.d.Location.EndColumn = column
	return b
}

// WithSeverity sets the severity.
func (b *DiagnosticBuilder) WithSeverity(s diag.Severity) *DiagnosticBuilder {
	b.d.Severity = s
	return b
}

// WithSourceLine attaches the offending line's text, used by the text
// reporter's source/caret display.
func (b *DiagnosticBuilder) WithSourceLine(line string) *DiagnosticBuilder {
	b.d.SourceLine = line
	return b
}

// WithFix adds fix edits from an EditBuilder.
func (b *DiagnosticBuilder) WithFix(builder *fix.EditBuilder) *DiagnosticBuilder {
	if builder == nil {
		return b
	}
	for _, e := range builder.Edits {
		b.d.FixEdits = append(b.d.FixEdits, diag.TextEdit{
			StartOffset: e.StartOffset,
			EndOffset:   e.EndOffset,
			NewText:     e.NewText,
		})
	}
	return b
}

// WithEdit adds a single fix edit.
func (b *DiagnosticBuilder) WithEdit(edit fix.TextEdit) *DiagnosticBuilder {
	b.d.FixEdits = append(b.d.FixEdits, diag.TextEdit{
		StartOffset: edit.StartOffset,
		EndOffset:   edit.EndOffset,
		NewText:     edit.NewText,
	})
	return b
}

// Build returns the constructed Diagnostic.
func (b *DiagnosticBuilder) Build() diag.Diagnostic {
	return b.d
}
