package rules

import (
	"strings"

	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/fix"
	"github.com/a1f/pyguard/pkg/lint"
	"github.com/a1f/pyguard/pkg/pyast"
)

func init() {
	lint.DefaultRegistry.Register(newTYP010Rule())
}

type typ010Rule struct {
	lint.BaseRule
}

func newTYP010Rule() *typ010Rule {
	return &typ010Rule{
		BaseRule: lint.NewBaseRule(diag.TYP010, "legacy-typing-syntax",
			"Detect legacy typing syntax that should use modern equivalents.",
			diag.SeverityError, true),
	}
}

var typ010BuiltinReplacements = map[string]string{
	"List": "list", "Dict": "dict", "Tuple": "tuple",
	"Set": "set", "FrozenSet": "frozenset", "Type": "type",
}

var typ010LegacyNames = map[string]bool{
	"Optional": true, "Union": true,
	"List": true, "Dict": true, "Tuple": true,
	"Set": true, "FrozenSet": true, "Type": true,
}

// Apply walks parameter, return, and annotated-assignment annotations,
// reporting the outermost legacy typing construct found in each.
func (r *typ010Rule) Apply(ctx *lint.RuleContext) ([]diag.Diagnostic, error) {
	typingImports := collectTypingImports(ctx.Root)
	var diags []diag.Diagnostic

	var visit func(n *pyast.Node)
	visit = func(n *pyast.Node) {
		if n == nil {
			return
		}
		switch n.Kind {
		case pyast.NodeFunctionDef, pyast.NodeAsyncFunctionDef:
			for _, p := range n.Stmt.Params.All() {
				if p.Annotation != nil {
					checkTYP010Annotation(p.Annotation, typingImports, ctx.File, &diags)
				}
			}
			if n.Stmt.Params.Vararg != nil && n.Stmt.Params.Vararg.Annotation != nil {
				checkTYP010Annotation(n.Stmt.Params.Vararg.Annotation, typingImports, ctx.File, &diags)
			}
			if n.Stmt.Params.Kwarg != nil && n.Stmt.Params.Kwarg.Annotation != nil {
				checkTYP010Annotation(n.Stmt.Params.Kwarg.Annotation, typingImports, ctx.File, &diags)
			}
			if n.Stmt.Returns != nil {
				checkTYP010Annotation(n.Stmt.Returns, typingImports, ctx.File, &diags)
			}
		case pyast.NodeAnnAssign:
			if n.Stmt.Annotation != nil {
				checkTYP010Annotation(n.Stmt.Annotation, typingImports, ctx.File, &diags)
			}
		}
		for _, c := range childStmtsOf(n) {
			visit(c)
		}
	}
	visit(ctx.Root)
	return diags, nil
}

func collectTypingImports(root *pyast.Node) map[string]bool {
	imports := map[string]bool{}
	pyast.Walk(root, func(n *pyast.Node) {
		if n.Kind != pyast.NodeImportFrom || n.Stmt.Module != "typing" {
			return
		}
		for _, alias := range n.Stmt.Aliases {
			if typ010LegacyNames[alias.Name] {
				imports[alias.EffectiveName()] = true
			}
		}
	})
	return imports
}

// checkTYP010Annotation reports the outermost legacy construct in node, or
// recurses into non-legacy subscripts and `|` unions looking for one.
func checkTYP010Annotation(node *pyast.Node, typingImports map[string]bool, file *pyast.FileSnapshot, diags *[]diag.Diagnostic) {
	legacyName := typ010LegacyName(node, typingImports)
	if legacyName != "" {
		modern := typ010Modernize(node, typingImports)
		original := node.Text()
		pos := node.SourcePosition()
		builder := lint.NewDiagnosticAt(diag.TYP010, file.Path, pos.StartLine, pos.StartColumn,
			"Use '"+modern+"' instead of '"+original+"'").
			WithSourceLine(sourceLineFor(file, pos.StartLine))
		r := node.SourceRange()
		builder = builder.WithEdit(fix.TextEdit{StartOffset: r.StartOffset, EndOffset: r.EndOffset, NewText: modern})
		*diags = append(*diags, builder.Build())
		return
	}

	switch node.Kind {
	case pyast.NodeSubscript:
		checkTYP010Slice(node.Expr.Slice, typingImports, file, diags)
	case pyast.NodeBinOp:
		if node.Expr.Op == "|" {
			checkTYP010Annotation(node.Expr.Left, typingImports, file, diags)
			checkTYP010Annotation(node.Expr.Right, typingImports, file, diags)
		}
	}
}

func checkTYP010Slice(node *pyast.Node, typingImports map[string]bool, file *pyast.FileSnapshot, diags *[]diag.Diagnostic) {
	if node == nil {
		return
	}
	if node.Kind == pyast.NodeTuple {
		for _, elt := range node.Expr.Elts {
			checkTYP010Annotation(elt, typingImports, file, diags)
		}
		return
	}
	checkTYP010Annotation(node, typingImports, file, diags)
}

// typ010LegacyName returns the legacy typing name node represents as a
// subscript base, or "" if it is not one.
func typ010LegacyName(node *pyast.Node, typingImports map[string]bool) string {
	if node == nil || node.Kind != pyast.NodeSubscript {
		return ""
	}
	value := node.Expr.Value
	if value == nil || value.Expr == nil {
		return ""
	}
	if value.Kind == pyast.NodeName && typingImports[value.Expr.Name] {
		return value.Expr.Name
	}
	if value.Kind == pyast.NodeAttribute &&
		value.Expr.Value != nil && value.Expr.Value.Kind == pyast.NodeName &&
		value.Expr.Value.Expr.Name == "typing" && typ010LegacyNames[value.Expr.Name] {
		return value.Expr.Name
	}
	return ""
}

// typ010Modernize recursively renders node's modern-syntax equivalent.
func typ010Modernize(node *pyast.Node, typingImports map[string]bool) string {
	legacyName := typ010LegacyName(node, typingImports)
	if legacyName != "" {
		switch legacyName {
		case "Optional":
			return typ010ModernizeSlice(node.Expr.Slice, typingImports) + " | None"
		case "Union":
			return strings.Join(typ010ModernizeUnionParts(node.Expr.Slice, typingImports), " | ")
		default:
			replacement, ok := typ010BuiltinReplacements[legacyName]
			if !ok {
				// Alias renames (`from typing import List as L`) have no
				// builtin spelling of their own; keep the alias as the base
				// and modernize only the slice.
				return node.Expr.Value.Text() + "[" + typ010ModernizeSlice(node.Expr.Slice, typingImports) + "]"
			}
			return replacement + "[" + typ010ModernizeSlice(node.Expr.Slice, typingImports) + "]"
		}
	}

	if node.Kind == pyast.NodeSubscript {
		return node.Expr.Value.Text() + "[" + typ010ModernizeSlice(node.Expr.Slice, typingImports) + "]"
	}
	if node.Kind == pyast.NodeBinOp && node.Expr.Op == "|" {
		return typ010Modernize(node.Expr.Left, typingImports) + " | " + typ010Modernize(node.Expr.Right, typingImports)
	}
	return node.Text()
}

func typ010ModernizeUnionParts(slice *pyast.Node, typingImports map[string]bool) []string {
	if slice.Kind == pyast.NodeTuple {
		parts := make([]string, 0, len(slice.Expr.Elts))
		for _, e := range slice.Expr.Elts {
			parts = append(parts, typ010Modernize(e, typingImports))
		}
		return parts
	}
	return []string{typ010Modernize(slice, typingImports)}
}

func typ010ModernizeSlice(node *pyast.Node, typingImports map[string]bool) string {
	if node.Kind == pyast.NodeTuple {
		parts := make([]string, 0, len(node.Expr.Elts))
		for _, e := range node.Expr.Elts {
			parts = append(parts, typ010Modernize(e, typingImports))
		}
		return strings.Join(parts, ", ")
	}
	return typ010Modernize(node, typingImports)
}
