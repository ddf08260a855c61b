package rules

import (
	"github.com/a1f/pyguard/pkg/fix"
	"github.com/a1f/pyguard/pkg/pyast"
)

// typ002ReturnNoneEdit computes the `-> None` insertion for a function that
// implicitly returns None: no return annotation, no return-with-value, no
// yield anywhere in its own body (nested function bodies excluded).
func typ002ReturnNoneEdit(n *pyast.Node, file *pyast.FileSnapshot) (fix.TextEdit, bool) {
	if !typ002IsFixable(n) {
		return fix.TextEdit{}, false
	}
	colonTok, ok := findSignatureColon(n, file)
	if !ok {
		return fix.TextEdit{}, false
	}
	return fix.TextEdit{StartOffset: colonTok.StartOffset, EndOffset: colonTok.StartOffset, NewText: " -> None"}, true
}

func typ002IsFixable(n *pyast.Node) bool {
	hasReturnValue := false
	hasYield := false

	var scan func(*pyast.Node)
	scan = func(s *pyast.Node) {
		if s == nil || hasReturnValue || hasYield {
			return
		}
		if isFunctionDef(s) {
			return
		}
		if s.Kind == pyast.NodeReturn && s.Stmt.ReturnValue != nil {
			hasReturnValue = true
			return
		}
		for _, e := range stmtExprRoots(s) {
			pyast.WalkExpr(e, func(x *pyast.Node) {
				if x.Kind == pyast.NodeCall && x.Expr.Name == "yield" {
					hasYield = true
				}
			})
		}
		for _, c := range childStmtsOf(s) {
			scan(c)
		}
	}
	for _, c := range n.Stmt.Body {
		scan(c)
	}
	return !hasReturnValue && !hasYield
}

// stmtExprRoots returns the expression subtrees directly owned by a
// statement node, used by scans that need to find expressions (e.g. a
// yield) nested inside a statement without separately modeling every
// statement shape.
func stmtExprRoots(s *pyast.Node) []*pyast.Node {
	if s.Stmt == nil {
		return nil
	}
	var out []*pyast.Node
	out = append(out, s.Stmt.Targets...)
	if s.Stmt.Value != nil {
		out = append(out, s.Stmt.Value)
	}
	if s.Stmt.Annotation != nil {
		out = append(out, s.Stmt.Annotation)
	}
	if s.Stmt.ReturnValue != nil {
		out = append(out, s.Stmt.ReturnValue)
	}
	if s.Stmt.Test != nil {
		out = append(out, s.Stmt.Test)
	}
	out = append(out, s.Stmt.Items...)
	if s.Stmt.ExprValue != nil {
		out = append(out, s.Stmt.ExprValue)
	}
	for _, h := range s.Stmt.Handlers {
		if h.Type != nil {
			out = append(out, h.Type)
		}
	}
	return out
}

// findSignatureColon locates the colon that ends a function's signature by
// scanning tokens from the function name onward, tracking "(" / "[" depth,
// exactly as the reference fixer's tokenizer-based scan does.
func findSignatureColon(n *pyast.Node, file *pyast.FileSnapshot) (pyast.Token, bool) {
	toks := file.Tokens
	depth := 0
	started := false
	for i := n.FirstToken; i >= 0 && i <= n.LastToken && i < len(toks); i++ {
		t := toks[i]
		if t.Kind != pyast.TokenOp {
			continue
		}
		switch t.Text(file.Content) {
		case "(", "[":
			depth++
			started = true
		case ")", "]":
			depth--
		case ":":
			if started && depth == 0 {
				return t, true
			}
		}
	}
	return pyast.Token{}, false
}
