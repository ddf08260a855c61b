// Package suppress implements pyguard's inline/block/file-level pragma
// engine: parsing `# pyguard: ignore[...]` comments, resolving which
// diagnostics they silence, and enforcing the pragma governance rules
// (IGN001-IGN003).
package suppress

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/pyast"
)

var (
	ignorePattern     = regexp.MustCompile(`#\s*pyguard:\s*ignore\[([^\]]+)\](?:\s+because:\s*(.+))?\s*$`)
	ignoreFilePattern = regexp.MustCompile(`#\s*pyguard:\s*ignore-file\[([^\]]+)\](?:\s+because:\s*(.+))?\s*$`)
)

// Directive is a single parsed `# pyguard: ignore[...]` or
// `# pyguard: ignore-file[...]` comment.
type Directive struct {
	Line        int
	Codes       map[diag.RuleCode]bool
	Reason      string
	IsFileLevel bool
	IsInline    bool
}

// ParseDirectives scans every source line of snap for ignore pragmas.
func ParseDirectives(snap *pyast.FileSnapshot) []Directive {
	var out []Directive
	for line := 1; line <= snap.LineCount(); line++ {
		text := string(snap.LineContent(line))

		if m := ignoreFilePattern.FindStringSubmatch(text); m != nil {
			out = append(out, Directive{
				Line:        line,
				Codes:       parseCodes(m[1]),
				Reason:      cleanReason(m[2]),
				IsFileLevel: true,
			})
			continue
		}

		if m := ignorePattern.FindStringSubmatch(text); m != nil {
			before := text[:strings.Index(text, m[0])]
			out = append(out, Directive{
				Line:     line,
				Codes:    parseCodes(m[1]),
				Reason:   cleanReason(m[2]),
				IsInline: strings.TrimSpace(before) != "",
			})
		}
	}
	return out
}

func parseCodes(raw string) map[diag.RuleCode]bool {
	out := make(map[diag.RuleCode]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.ToUpper(strings.TrimSpace(part))
		if part != "" {
			out[diag.RuleCode(part)] = true
		}
	}
	return out
}

func cleanReason(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	return raw
}

// collectStatementRanges walks every statement in the tree and records its
// decorator-extended start line and its end line, keyed by start line.
func collectStatementRanges(root *pyast.Node) map[int]int {
	ranges := make(map[int]int)
	pyast.Walk(root, func(n *pyast.Node) {
		if n.Stmt == nil || n.Kind == pyast.NodeModule {
			return
		}
		pos := n.SourcePosition()
		start := pos.StartLine
		if len(n.Stmt.Decorators) > 0 {
			for _, d := range n.Stmt.Decorators {
				dpos := d.SourcePosition()
				if dpos.StartLine < start {
					start = dpos.StartLine
				}
			}
		}
		end := pos.EndLine
		if end < start {
			end = start
		}
		ranges[start] = end
	})
	return ranges
}

type blockRange struct {
	start, end int
	codes      map[diag.RuleCode]bool
}

// resolveBlockRanges turns each standalone (non-file-level, non-inline)
// directive into the line range of the statement immediately following it.
func resolveBlockRanges(directives []Directive, stmtRanges map[int]int) []blockRange {
	var out []blockRange
	for _, d := range directives {
		if d.IsFileLevel || d.IsInline {
			continue
		}
		next := d.Line + 1
		if end, ok := stmtRanges[next]; ok {
			out = append(out, blockRange{start: next, end: end, codes: d.Codes})
		}
	}
	return out
}

// checkGovernance applies the IGN001-IGN003 pragma governance rules and
// returns the diagnostics they raise. Every diagnostic carries snap's path
// and the offending line's literal text, matching every other diagnostic
// source in the pipeline (ignores.py's _check_governance does the same:
// it always passes file= and source_line=).
func checkGovernance(snap *pyast.FileSnapshot, directives []Directive, gov config.IgnoreGovernance) []diag.Diagnostic {
	var out []diag.Diagnostic

	if gov.RequireReason {
		for _, d := range directives {
			if d.Reason == "" {
				out = append(out, diag.Diagnostic{
					File:       snap.Path,
					Code:       diag.IgnoreMissingReason,
					Message:    "Ignore pragma requires a reason (use 'because: ...')",
					Severity:   diag.SeverityError,
					Location:   diag.SourceLocation{Line: d.Line, Column: 1},
					SourceLine: sourceLineFor(snap, d.Line),
				})
			}
		}
	}

	for _, d := range directives {
		codes := make([]string, 0, len(d.Codes))
		for c := range d.Codes {
			codes = append(codes, string(c))
		}
		sort.Strings(codes)
		for _, c := range codes {
			if gov.Disallow[diag.RuleCode(c)] {
				out = append(out, diag.Diagnostic{
					File:       snap.Path,
					Code:       diag.IgnoreDisallowed,
					Message:    "Rule '" + c + "' cannot be ignored (disallowed by configuration)",
					Severity:   diag.SeverityError,
					Location:   diag.SourceLocation{Line: d.Line, Column: 1},
					SourceLine: sourceLineFor(snap, d.Line),
				})
			}
		}
	}

	if gov.MaxPerFile != nil && len(directives) > *gov.MaxPerFile {
		out = append(out, diag.Diagnostic{
			File:       snap.Path,
			Code:       diag.IgnoreTooMany,
			Message:    fmtTooMany(len(directives), *gov.MaxPerFile),
			Severity:   diag.SeverityError,
			Location:   diag.SourceLocation{Line: 1, Column: 1},
			SourceLine: sourceLineFor(snap, 1),
		})
	}

	return out
}

// sourceLineFor returns the raw text of a 1-based line, or "" if out of
// range.
func sourceLineFor(snap *pyast.FileSnapshot, line int) string {
	if snap == nil || line < 1 || line > snap.LineCount() {
		return ""
	}
	return string(snap.LineContent(line))
}

func fmtTooMany(count, max int) string {
	return fmt.Sprintf("File has %d ignore directives, maximum allowed is %d", count, max)
}

// Apply filters raw against the pragmas present in snap, honoring
// governance. Diagnostics whose code is in gov.Disallow are always kept
// regardless of any pragma. Governance diagnostics are returned first,
// followed by the surviving diagnostics.
func Apply(snap *pyast.FileSnapshot, raw []diag.Diagnostic, gov config.IgnoreGovernance) []diag.Diagnostic {
	directives := ParseDirectives(snap)
	governanceDiags := checkGovernance(snap, directives, gov)

	fileCodes := make(map[diag.RuleCode]bool)
	lineIgnores := make(map[int]map[diag.RuleCode]bool)
	for _, d := range directives {
		if d.IsFileLevel {
			for c := range d.Codes {
				fileCodes[c] = true
			}
			continue
		}
		if d.IsInline {
			if lineIgnores[d.Line] == nil {
				lineIgnores[d.Line] = make(map[diag.RuleCode]bool)
			}
			for c := range d.Codes {
				lineIgnores[d.Line][c] = true
			}
		}
	}

	var blockRanges []blockRange
	if snap.Root != nil {
		stmtRanges := collectStatementRanges(snap.Root)
		blockRanges = resolveBlockRanges(directives, stmtRanges)
	}

	var kept []diag.Diagnostic
	for _, d := range raw {
		if gov.Disallow[d.Code] {
			kept = append(kept, d)
			continue
		}
		if fileCodes[d.Code] {
			continue
		}
		if lineIgnores[d.Location.Line][d.Code] {
			continue
		}
		suppressed := false
		for _, br := range blockRanges {
			if br.start <= d.Location.Line && d.Location.Line <= br.end && br.codes[d.Code] {
				suppressed = true
				break
			}
		}
		if suppressed {
			continue
		}
		kept = append(kept, d)
	}

	return append(governanceDiags, kept...)
}
