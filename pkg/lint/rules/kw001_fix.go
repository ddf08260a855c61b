package rules

import (
	"github.com/a1f/pyguard/internal/logging"
	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/fix"
	"github.com/a1f/pyguard/pkg/pyast"
)

// fixKW001 inserts a `*` separator into every fixable function signature
// in content. It is not part of the TYP010/IMP001/TYP002/TYP003 chain in
// FixAll: it changes a function's calling contract without rewriting call
// sites, so it runs as a separate stage (FixKeywordOnly) after FixAll, and
// only when KW001 is enabled.
func fixKW001(path string, content []byte, opts config.KW001Options) []byte {
	parsed := pyast.Parse(path, content)
	if parsed.Err != nil {
		return content
	}
	snap := parsed.File

	var fixable []*pyast.Node
	classDepth := 0
	var visit func(n *pyast.Node)
	visit = func(n *pyast.Node) {
		if n == nil {
			return
		}
		switch n.Kind {
		case pyast.NodeClassDef:
			classDepth++
			for _, c := range n.Stmt.Body {
				visit(c)
			}
			classDepth--
			return
		case pyast.NodeFunctionDef, pyast.NodeAsyncFunctionDef:
			if kw001IsFixableSignature(n, classDepth > 0, opts) {
				fixable = append(fixable, n)
			}
		}
		for _, c := range childStmtsOf(n) {
			visit(c)
		}
	}
	visit(snap.Root)
	if len(fixable) == 0 {
		return content
	}

	var edits []fix.TextEdit
	for _, n := range fixable {
		if edit, ok := kw001StarEdit(n, snap); ok {
			edits = append(edits, edit)
		}
	}
	if len(edits) == 0 {
		return content
	}

	accepted, _, _, err := fix.PrepareEditsFiltered(edits, len(content))
	if err != nil || len(accepted) == 0 {
		return content
	}
	out := fix.ApplyEdits(content, accepted)
	if p := pyast.Parse(path, out); p.Err != nil {
		logging.Default().Debug("fix output failed to re-parse; leaving file unchanged",
			logging.FieldPath, path,
			logging.FieldRule, diag.KW001,
		)
		return content
	}
	return out
}

func kw001IsFixableSignature(n *pyast.Node, isMethod bool, opts config.KW001Options) bool {
	name := n.Stmt.Name
	if opts.ExemptDunder && isDunder(name) {
		return false
	}
	if opts.ExemptPrivate && isPrivate(name) {
		return false
	}
	if opts.ExemptOverride && hasOverrideDecorator(n) {
		return false
	}
	params := n.Stmt.Params
	if len(params.KwOnly) > 0 || params.Vararg != nil {
		return false
	}
	selfClsOffset := 0
	if isMethod && len(params.Args) > 0 && isSelfOrCls(params.Args[0].Name) {
		selfClsOffset = 1
	}
	return len(params.Args)-selfClsOffset >= opts.MinParams
}

// kw001StarEdit locates the insertion point for `*, ` in a function's
// parameter list: immediately after the opening `(`, or after the comma
// following a leading self/cls parameter.
func kw001StarEdit(n *pyast.Node, snap *pyast.FileSnapshot) (fix.TextEdit, bool) {
	openParenIdx := findDefOpenParen(n, snap)
	if openParenIdx < 0 {
		return fix.TextEdit{}, false
	}

	hasSelfCls := len(n.Stmt.Params.Args) > 0 && isSelfOrCls(n.Stmt.Params.Args[0].Name)
	if !hasSelfCls {
		t := snap.Tokens[openParenIdx]
		return fix.TextEdit{StartOffset: t.EndOffset, EndOffset: t.EndOffset, NewText: "*, "}, true
	}
	return kw001InsertAfterFirstParam(snap, openParenIdx)
}

func findDefOpenParen(n *pyast.Node, snap *pyast.FileSnapshot) int {
	toks := snap.Tokens
	for i := n.FirstToken; i >= 0 && i <= n.LastToken && i < len(toks); i++ {
		t := toks[i]
		if t.Kind == pyast.TokenKeyword && t.Text(snap.Content) == "def" {
			for j := i + 1; j < len(toks); j++ {
				if toks[j].Kind == pyast.TokenName && toks[j].Text(snap.Content) == n.Stmt.Name {
					for k := j + 1; k < len(toks); k++ {
						if toks[k].Kind == pyast.TokenOp && toks[k].Text(snap.Content) == "(" {
							return k
						}
					}
				}
			}
		}
	}
	return -1
}

func kw001InsertAfterFirstParam(snap *pyast.FileSnapshot, parenIdx int) (fix.TextEdit, bool) {
	toks := snap.Tokens
	depth := 0
	for i := parenIdx; i < len(toks); i++ {
		t := toks[i]
		if t.Kind != pyast.TokenOp {
			continue
		}
		switch t.Text(snap.Content) {
		case "(":
			depth++
		case ")":
			depth--
			if depth == 0 {
				return fix.TextEdit{}, false
			}
		case ",":
			if depth == 1 {
				nextIdx := i + 1
				if nextIdx < len(toks) && toks[nextIdx].Kind == pyast.TokenNL {
					nextIdx++
				}
				if nextIdx < len(toks) {
					next := toks[nextIdx]
					if next.StartLine == t.EndLine && next.StartCol > t.EndCol {
						return fix.TextEdit{StartOffset: t.EndOffset + 1, EndOffset: t.EndOffset + 1, NewText: "*, "}, true
					}
				}
				return fix.TextEdit{StartOffset: t.EndOffset, EndOffset: t.EndOffset, NewText: " *, "}, true
			}
		}
	}
	return fix.TextEdit{}, false
}
