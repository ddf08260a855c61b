package lint

import (
	"context"
	"fmt"

	"github.com/a1f/pyguard/internal/logging"
	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/fix"
	"github.com/a1f/pyguard/pkg/pyast"
	"github.com/a1f/pyguard/pkg/suppress"
)

// FileResult contains the results of linting a single file.
type FileResult struct {
	// Snapshot is the parsed file, nil if parsing failed.
	Snapshot *pyast.FileSnapshot

	// Diagnostics holds every diagnostic that survived suppression, plus
	// any governance diagnostics the suppression engine raised.
	Diagnostics []diag.Diagnostic

	// Edits contains validated, sorted edits for auto-fix. Empty if no
	// fixes are available.
	Edits []fix.TextEdit

	// SkippedEdits contains edits that were dropped due to conflicts with
	// an earlier-starting edit.
	SkippedEdits []fix.TextEdit

	// EditConflicts is true if any edits were skipped due to conflicts.
	EditConflicts bool

	// RuleErrors contains any errors raised by individual rules, keyed by
	// rule code; such rules are skipped rather than aborting the file.
	RuleErrors map[diag.RuleCode]error
}

// HasIssues returns true if any diagnostics were found.
func (fr *FileResult) HasIssues() bool {
	return len(fr.Diagnostics) > 0
}

// HasFixes returns true if any fixes are available.
func (fr *FileResult) HasFixes() bool {
	return len(fr.Edits) > 0
}

// FixableCount returns the number of diagnostics that carry at least one fix
// edit, independent of whether those edits survived conflict resolution.
func (fr *FileResult) FixableCount() int {
	if fr == nil {
		return 0
	}
	n := 0
	for _, d := range fr.Diagnostics {
		if d.HasFix() {
			n++
		}
	}
	return n
}

// Engine coordinates parsing, rule execution, and suppression for a file.
type Engine struct {
	Registry *Registry
}

// NewEngine creates a new Engine bound to a rule registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{Registry: registry}
}

// LintFile parses and lints a single file. A parse failure is reported as
// a single SYN001 diagnostic rather than returned as an error, matching
// the rest of the pipeline's per-file failure isolation.
func (e *Engine) LintFile(ctx context.Context, path string, content []byte, cfg *config.Config) (*FileResult, error) {
	parsed := pyast.Parse(path, content)
	if parsed.Err != nil {
		d := diag.Diagnostic{
			File:       path,
			Code:       diag.SyntaxErrorCode,
			Message:    parsed.Err.Message,
			Severity:   diag.SeverityError,
			Location:   diag.SourceLocation{Line: parsed.Err.Line, Column: parsed.Err.Column},
			SourceLine: parsed.Err.SourceLine,
		}
		return &FileResult{Diagnostics: []diag.Diagnostic{d}}, nil
	}
	snapshot := parsed.File

	resolved := ResolveRules(e.Registry, cfg)

	result := &FileResult{
		Snapshot:   snapshot,
		RuleErrors: make(map[diag.RuleCode]error),
	}

	var raw []diag.Diagnostic
	var allEdits []fix.TextEdit

	for _, rr := range resolved {
		select {
		case <-ctx.Done():
			return result, fmt.Errorf("linting cancelled: %w", ctx.Err())
		default:
		}

		ruleCtx := NewRuleContext(ctx, snapshot, cfg)
		ruleCtx.Registry = e.Registry

		diags, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			logging.Default().Debug("rule failed; treating its contribution as empty",
				logging.FieldPath, path,
				logging.FieldRule, rr.Rule.ID(),
				logging.FieldError, err,
			)
			result.RuleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range diags {
			diags[i].Severity = rr.Severity
			if diags[i].File == "" {
				diags[i].File = path
			}
			if diags[i].SourceLine == "" && diags[i].Location.Line >= 1 && diags[i].Location.Line <= snapshot.LineCount() {
				diags[i].SourceLine = string(snapshot.LineContent(diags[i].Location.Line))
			}
			if len(diags[i].FixEdits) > 0 {
				for _, e := range diags[i].FixEdits {
					allEdits = append(allEdits, fix.TextEdit{StartOffset: e.StartOffset, EndOffset: e.EndOffset, NewText: e.NewText})
				}
			}
		}
		raw = append(raw, diags...)
	}

	filtered := suppress.Apply(snapshot, raw, cfg.Ignores)
	collection := diag.NewCollection()
	collection.AddAll(filtered)
	result.Diagnostics = collection.Sorted()

	if len(allEdits) > 0 {
		accepted, skipped, _, err := fix.PrepareEditsFiltered(allEdits, len(content))
		if err != nil {
			result.Edits = nil
			result.SkippedEdits = nil
			result.EditConflicts = true
		} else {
			result.Edits = accepted
			result.SkippedEdits = skipped
			result.EditConflicts = len(skipped) > 0
		}
	}

	return result, nil
}
