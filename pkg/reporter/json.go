package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/runner"
)

// JSONDiagnostic is one element of the JSON output array. End positions are
// emitted as null when the diagnostic does not span a range; source_line is
// present only when source context is enabled.
type JSONDiagnostic struct {
	File       string  `json:"file"`
	Line       int     `json:"line"`
	Column     int     `json:"column"`
	EndLine    *int    `json:"end_line"`
	EndColumn  *int    `json:"end_column"`
	Code       string  `json:"code"`
	Severity   string  `json:"severity"`
	Message    string  `json:"message"`
	SourceLine *string `json:"source_line,omitempty"`
}

// JSONReporter renders every diagnostic of a run as a single top-level JSON
// array, ordered by the collection's canonical (file, line, column) sort.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	items := r.buildItems(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(items); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return len(items), nil
}

func (r *JSONReporter) buildItems(result *runner.Result) []JSONDiagnostic {
	items := make([]JSONDiagnostic, 0)
	if result == nil {
		return items
	}

	collection := diag.NewCollection()
	for _, file := range result.Files {
		if file.Result == nil || file.Result.FileResult == nil {
			continue
		}
		collection.AddAll(file.Result.Diagnostics)
	}

	for _, d := range collection.Sorted() {
		item := JSONDiagnostic{
			File:     d.File,
			Line:     d.Location.Line,
			Column:   d.Location.Column,
			Code:     string(d.Code),
			Severity: string(d.Severity),
			Message:  d.Message,
		}
		if d.Location.EndLine > 0 {
			endLine := d.Location.EndLine
			item.EndLine = &endLine
		}
		if d.Location.EndColumn > 0 {
			endColumn := d.Location.EndColumn
			item.EndColumn = &endColumn
		}
		if r.opts.ShowContext {
			sourceLine := d.SourceLine
			item.SourceLine = &sourceLine
		}
		items = append(items, item)
	}

	return items
}
