// Package rules contains the built-in lint rule implementations. Every
// rule registers itself into lint.DefaultRegistry from an init function so
// importing this package for its side effect is enough to make all rules
// available.
package rules

import (
	"strings"

	"github.com/a1f/pyguard/pkg/pyast"
)

// isDunder reports whether name has the shape __x__, length > 4.
func isDunder(name string) bool {
	return len(name) > 4 && strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__")
}

// isPrivate reports whether name starts with a single underscore and is
// not a dunder.
func isPrivate(name string) bool {
	return strings.HasPrefix(name, "_") && !isDunder(name)
}

// isSelfOrCls reports whether name is the conventional first-method-
// parameter name.
func isSelfOrCls(name string) bool {
	return name == "self" || name == "cls"
}

// hasOverrideDecorator reports whether node carries a decorator whose
// trailing identifier is "override" (bare name or attribute access).
func hasOverrideDecorator(node *pyast.Node) bool {
	if node.Stmt == nil {
		return false
	}
	for _, dec := range node.Stmt.Decorators {
		if decoratorEndsInOverride(dec) {
			return true
		}
	}
	return false
}

// decoratorEndsInOverride peels off any call wrapper (`@override()`) and
// checks whether the underlying name or attribute access is "override".
func decoratorEndsInOverride(dec *pyast.Node) bool {
	if dec == nil || dec.Expr == nil {
		return false
	}
	target := dec
	if target.Kind == pyast.NodeCall {
		target = target.Expr.Func
	}
	if target == nil || target.Expr == nil {
		return false
	}
	switch target.Kind {
	case pyast.NodeName:
		return target.Expr.Name == "override"
	case pyast.NodeAttribute:
		return target.Expr.Name == "override"
	default:
		return false
	}
}

// defKeywordPosition returns the line/column of the "def" (or "async")
// keyword that introduces a function, skipping past any leading
// decorators captured in the node's token span.
func defKeywordPosition(n *pyast.Node) (line, col int) {
	if n == nil || n.File == nil || n.FirstToken < 0 {
		return 0, 0
	}
	toks := n.File.Tokens
	for i := n.FirstToken; i <= n.LastToken && i >= 0 && i < len(toks); i++ {
		t := toks[i]
		if t.Kind == pyast.TokenKeyword {
			text := t.Text(n.File.Content)
			if text == "def" || text == "async" {
				return t.StartLine, t.StartCol
			}
		}
	}
	pos := n.SourcePosition()
	return pos.StartLine, pos.StartColumn
}

// classKeywordPosition returns the line/column of the "class" keyword
// that introduces a class definition, skipping leading decorators.
func classKeywordPosition(n *pyast.Node) (line, col int) {
	if n == nil || n.File == nil || n.FirstToken < 0 {
		return 0, 0
	}
	toks := n.File.Tokens
	for i := n.FirstToken; i <= n.LastToken && i >= 0 && i < len(toks); i++ {
		t := toks[i]
		if t.Kind == pyast.TokenKeyword && t.Text(n.File.Content) == "class" {
			return t.StartLine, t.StartCol
		}
	}
	pos := n.SourcePosition()
	return pos.StartLine, pos.StartColumn
}

// decoratorPosition returns the line/column of a function or class's first
// decorator if one exists, else its own def/class keyword position.
func decoratorPosition(n *pyast.Node, fallbackLine, fallbackCol int) (line, col int) {
	if n.Stmt == nil || len(n.Stmt.Decorators) == 0 {
		return fallbackLine, fallbackCol
	}
	first := n.Stmt.Decorators[0]
	pos := first.SourcePosition()
	return pos.StartLine, pos.StartColumn
}

// isFunctionDef reports whether n is a (possibly async) function
// definition node.
func isFunctionDef(n *pyast.Node) bool {
	return n != nil && (n.Kind == pyast.NodeFunctionDef || n.Kind == pyast.NodeAsyncFunctionDef)
}

// sourceLineFor returns the raw text of a 1-based line, or "" if out of
// range.
func sourceLineFor(file *pyast.FileSnapshot, line int) string {
	if file == nil || line < 1 || line > file.LineCount() {
		return ""
	}
	return string(file.LineContent(line))
}

// childStmtsOf returns every statement node directly nested inside n,
// across whichever StmtAttrs fields are populated. Rules reimplement this
// traversal (rather than reusing pyast.Walk) because each rule tracks its
// own scope/depth state between entering and leaving a node, which a
// simple pre-order visit callback cannot express.
func childStmtsOf(n *pyast.Node) []*pyast.Node {
	if n == nil || n.Stmt == nil {
		return nil
	}
	var out []*pyast.Node
	out = append(out, n.Stmt.Body...)
	out = append(out, n.Stmt.OrElse...)
	out = append(out, n.Stmt.Finally...)
	for _, h := range n.Stmt.Handlers {
		out = append(out, h.Body...)
	}
	return out
}
