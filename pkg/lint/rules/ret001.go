package rules

import (
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/lint"
	"github.com/a1f/pyguard/pkg/pyast"
)

func init() {
	lint.DefaultRegistry.Register(newRET001Rule())
}

type ret001Rule struct {
	lint.BaseRule
}

func newRET001Rule() *ret001Rule {
	return &ret001Rule{
		BaseRule: lint.NewBaseRule(diag.RET001, "no-heterogeneous-tuple-return",
			"Disallow heterogeneous tuple returns.",
			diag.SeverityWarn, false),
	}
}

// Apply flags every `return <value>` in a function whose return annotation
// is a fixed-length, multi-element tuple[...] subscript, excluding the
// variadic tuple[T, ...] form.
func (r *ret001Rule) Apply(ctx *lint.RuleContext) ([]diag.Diagnostic, error) {
	var diags []diag.Diagnostic
	pyast.Walk(ctx.Root, func(n *pyast.Node) {
		if n.Kind != pyast.NodeFunctionDef && n.Kind != pyast.NodeAsyncFunctionDef {
			return
		}
		if !hasHeterogeneousTupleAnnotation(n.Stmt.Returns) {
			return
		}
		for _, ret := range findReturnStatements(n) {
			if ret.Stmt.ReturnValue == nil {
				continue
			}
			pos := ret.SourcePosition()
			builder := lint.NewDiagnosticAt(diag.RET001, ctx.File.Path, pos.StartLine, pos.StartColumn,
				"Avoid tuple packing for return values; use a dataclass or NamedTuple").
				WithSourceLine(sourceLineFor(ctx.File, pos.StartLine))
			diags = append(diags, builder.Build())
		}
	})
	return diags, nil
}

func hasHeterogeneousTupleAnnotation(annotation *pyast.Node) bool {
	if annotation == nil || annotation.Kind != pyast.NodeSubscript {
		return false
	}
	base := annotation.Expr.Value
	if base == nil || base.Expr == nil {
		return false
	}
	switch base.Kind {
	case pyast.NodeName:
		if base.Expr.Name != "tuple" {
			return false
		}
	case pyast.NodeAttribute:
		if base.Expr.Name != "tuple" {
			return false
		}
	default:
		return false
	}

	slice := annotation.Expr.Slice
	if slice == nil || slice.Kind != pyast.NodeTuple {
		return false
	}
	elts := slice.Expr.Elts
	if len(elts) < 2 {
		return false
	}
	if len(elts) == 2 && elts[1].Kind == pyast.NodeEllipsis {
		return false
	}
	return true
}

// findReturnStatements collects Return nodes in node's own body, not
// descending into nested function definitions.
func findReturnStatements(node *pyast.Node) []*pyast.Node {
	var out []*pyast.Node
	var collect func(n *pyast.Node)
	collect = func(n *pyast.Node) {
		for _, c := range childStmtsOf(n) {
			if c.Kind == pyast.NodeFunctionDef || c.Kind == pyast.NodeAsyncFunctionDef {
				continue
			}
			if c.Kind == pyast.NodeReturn {
				out = append(out, c)
			}
			collect(c)
		}
	}
	collect(node)
	return out
}
