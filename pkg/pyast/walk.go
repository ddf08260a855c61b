package pyast

// childStmts returns every statement node directly nested inside n,
// regardless of which StmtAttrs field they live in.
func childStmts(n *Node) []*Node {
	if n == nil || n.Stmt == nil {
		return nil
	}
	var out []*Node
	out = append(out, n.Stmt.Body...)
	out = append(out, n.Stmt.OrElse...)
	out = append(out, n.Stmt.Finally...)
	for _, h := range n.Stmt.Handlers {
		out = append(out, h.Body...)
	}
	return out
}

// Walk visits n and every statement node reachable beneath it, depth
// first, pre-order. It does not descend into expressions; use WalkExpr
// for those. Walk mirrors Python's generic_visit over statement bodies:
// the caller decides, per node, whether to recurse further (see
// WalkStmtsSkip).
func Walk(n *Node, visit func(*Node)) {
	if n == nil {
		return
	}
	visit(n)
	for _, child := range childStmts(n) {
		Walk(child, visit)
	}
}

// WalkStmtsSkip walks statement nodes depth-first, pre-order, but does not
// descend into a node for which skip returns true (after still invoking
// visit on it). This mirrors the common Python pattern of overriding
// visit_FunctionDef as a no-op to stop a scan at nested function
// boundaries.
func WalkStmtsSkip(n *Node, visit func(*Node), skip func(*Node) bool) {
	if n == nil {
		return
	}
	visit(n)
	if skip != nil && skip(n) {
		return
	}
	for _, child := range childStmts(n) {
		WalkStmtsSkip(child, visit, skip)
	}
}

// WalkExpr visits e and every expression node nested beneath it,
// depth-first, pre-order.
func WalkExpr(e *Node, visit func(*Node)) {
	if e == nil || e.Expr == nil {
		return
	}
	visit(e)
	attrs := e.Expr
	WalkExpr(attrs.Value, visit)
	for _, el := range attrs.Elts {
		WalkExpr(el, visit)
	}
	for _, k := range attrs.Keys {
		WalkExpr(k, visit)
	}
	WalkExpr(attrs.Func, visit)
	for _, a := range attrs.CallArgs {
		WalkExpr(a, visit)
	}
	for _, kw := range attrs.Keywords {
		WalkExpr(kw.Value, visit)
	}
	WalkExpr(attrs.Slice, visit)
	WalkExpr(attrs.Left, visit)
	WalkExpr(attrs.Right, visit)
	WalkExpr(attrs.Operand, visit)
}
