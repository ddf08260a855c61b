package rules

import (
	"bytes"
	"context"
	"strings"

	"github.com/a1f/pyguard/internal/logging"
	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/fix"
	"github.com/a1f/pyguard/pkg/lint"
	"github.com/a1f/pyguard/pkg/pyast"
)

func init() {
	lint.RegisterContentFixer(func(path string, content []byte, cfg *config.Config) []byte {
		out := FixAll(path, content)
		if cfg == nil {
			return FixKeywordOnly(path, out, config.DefaultKW001Options())
		}
		if cfg.RuleEnabled(diag.KW001) {
			out = FixKeywordOnly(path, out, cfg.Rules.KW001)
		}
		return out
	})
}

// FixAll applies the ordered str-to-str fixer chain TYP010 -> IMP001 ->
// TYP002 -> TYP003 to content. Order matters: TYP010 may shorten the file
// (removing now-unused imports), IMP001 moves lines around, and TYP002/
// TYP003 each depend on a clean re-parse of the previous stage's output.
func FixAll(path string, content []byte) []byte {
	content = fixTYP010(path, content)
	content = fixIMP001(path, content)
	content = fixTYP002(path, content)
	content = fixTYP003(path, content)
	return content
}

// FixKeywordOnly applies the KW001 signature fixer on its own, since it
// changes a function's call contract without updating call sites.
func FixKeywordOnly(path string, content []byte, opts config.KW001Options) []byte {
	return fixKW001(path, content, opts)
}

// runSingleRuleFix parses content, runs one rule's Apply in isolation,
// applies its non-conflicting fix edits, and re-parses the result. Any
// failure along the way returns content unchanged, matching every
// fixer's universal contract.
func runSingleRuleFix(path string, content []byte, rule lint.Rule, cfg *config.Config) ([]byte, bool) {
	parsed := pyast.Parse(path, content)
	if parsed.Err != nil {
		return content, false
	}
	ctx := lint.NewRuleContext(context.Background(), parsed.File, cfg)
	diags, err := rule.Apply(ctx)
	if err != nil {
		return content, false
	}

	var edits []fix.TextEdit
	for _, d := range diags {
		for _, e := range d.FixEdits {
			edits = append(edits, fix.TextEdit{StartOffset: e.StartOffset, EndOffset: e.EndOffset, NewText: e.NewText})
		}
	}
	if len(edits) == 0 {
		return content, false
	}

	accepted, _, _, err := fix.PrepareEditsFiltered(edits, len(content))
	if err != nil || len(accepted) == 0 {
		return content, false
	}

	out := fix.ApplyEdits(content, accepted)
	if p := pyast.Parse(path, out); p.Err != nil {
		logging.Default().Debug("fix output failed to re-parse; leaving file unchanged",
			logging.FieldPath, path,
			logging.FieldRule, rule.ID(),
		)
		return content, false
	}
	return out, true
}

func fixTYP010(path string, content []byte) []byte {
	out, changed := runSingleRuleFix(path, content, newTYP010Rule(), config.New())
	if !changed {
		return content
	}
	return cleanupUnusedTypingImports(path, out)
}

func fixTYP002(path string, content []byte) []byte {
	out, _ := runSingleRuleFix(path, content, newTYP002Rule(), config.New())
	return out
}

// fixTYP003 annotates inferable assignments at every scope; unlike the
// rule, whose scope option narrows reporting, the fixer never skips an
// assignment it can annotate safely.
func fixTYP003(path string, content []byte) []byte {
	cfg := config.New()
	cfg.Rules.TYP003.Scope = map[config.AnnotationScope]bool{
		config.ScopeModule: true,
		config.ScopeClass:  true,
		config.ScopeLocal:  true,
	}
	out, _ := runSingleRuleFix(path, content, newTYP003Rule(), cfg)
	return out
}

// cleanupUnusedTypingImports removes legacy-name aliases from `from
// typing import ...` statements after TYP010 has rewritten every use site,
// dropping the whole import if nothing is left, and trims the leading
// blank lines such a removal can leave behind.
func cleanupUnusedTypingImports(path string, content []byte) []byte {
	parsed := pyast.Parse(path, content)
	if parsed.Err != nil {
		return content
	}
	snap := parsed.File

	var edits []fix.TextEdit
	pyast.Walk(snap.Root, func(n *pyast.Node) {
		if n.Kind != pyast.NodeImportFrom || n.Stmt.Module != "typing" {
			return
		}
		var kept []string
		removedAny := false
		for _, alias := range n.Stmt.Aliases {
			// Alias renames are never rewritten at their use sites, so
			// their import must survive; only bare legacy names go.
			if typ010LegacyNames[alias.Name] && alias.AsName == "" {
				removedAny = true
				continue
			}
			text := alias.Name
			if alias.AsName != "" {
				text += " as " + alias.AsName
			}
			kept = append(kept, text)
		}
		if !removedAny {
			return
		}
		r := n.SourceRange()
		if len(kept) == 0 {
			start, end := wholeLineSpan(snap, r)
			edits = append(edits, fix.TextEdit{StartOffset: start, EndOffset: end, NewText: ""})
			return
		}
		edits = append(edits, fix.TextEdit{
			StartOffset: r.StartOffset,
			EndOffset:   r.EndOffset,
			NewText:     "from typing import " + strings.Join(kept, ", "),
		})
	})

	if len(edits) == 0 {
		return content
	}
	accepted, _, _, err := fix.PrepareEditsFiltered(edits, len(content))
	if err != nil || len(accepted) == 0 {
		return content
	}
	out := fix.ApplyEdits(content, accepted)
	if p := pyast.Parse(path, out); p.Err != nil {
		return content
	}
	return bytes.TrimLeft(out, "\n")
}

// wholeLineSpan extends r to cover the full line(s) it starts and ends on,
// including the trailing line terminator, so deleting it leaves no blank
// line behind.
func wholeLineSpan(snap *pyast.FileSnapshot, r pyast.SourceRange) (start, end int) {
	startLine, _ := snap.LineAt(r.StartOffset)
	endLine, _ := snap.LineAt(r.EndOffset)
	start = snap.Lines[startLine-1].StartOffset
	end = snap.Lines[endLine-1].EndOffset
	return start, end
}
