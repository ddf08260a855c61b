package rules

import (
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/lint"
	"github.com/a1f/pyguard/pkg/pyast"
)

func init() {
	lint.DefaultRegistry.Register(newEXP001Rule())
}

type exp001Rule struct {
	lint.BaseRule
}

func newEXP001Rule() *exp001Rule {
	return &exp001Rule{
		BaseRule: lint.NewBaseRule(diag.EXP001, "no-nested-return-type",
			"Structured return types must be module-level.",
			diag.SeverityWarn, false),
	}
}

// Apply flags a class defined inside a function body when that function's
// own return annotation names that same class.
func (r *exp001Rule) Apply(ctx *lint.RuleContext) ([]diag.Diagnostic, error) {
	var diags []diag.Diagnostic
	pyast.Walk(ctx.Root, func(n *pyast.Node) {
		if n.Kind != pyast.NodeFunctionDef && n.Kind != pyast.NodeAsyncFunctionDef {
			return
		}
		returnName := returnTypeName(n.Stmt.Returns)
		if returnName == "" {
			return
		}
		for _, classNode := range findClassesInBody(n) {
			if classNode.Stmt.Name != returnName {
				continue
			}
			fallbackLine, fallbackCol := classKeywordPosition(classNode)
			line, col := decoratorPosition(classNode, fallbackLine, fallbackCol)
			builder := lint.NewDiagnosticAt(diag.EXP001, ctx.File.Path, line, col,
				"Return type '"+returnName+"' should be defined at module level for importability").
				WithSourceLine(sourceLineFor(ctx.File, line))
			diags = append(diags, builder.Build())
		}
	})
	return diags, nil
}

func returnTypeName(annotation *pyast.Node) string {
	if annotation == nil || annotation.Expr == nil {
		return ""
	}
	if annotation.Kind == pyast.NodeName {
		return annotation.Expr.Name
	}
	if annotation.Kind == pyast.NodeConstant && annotation.Expr.ConstKind == pyast.ConstStr {
		return constantStringValue(annotation)
	}
	return ""
}

// constantStringValue strips the quoting from a string constant's source
// text to recover its literal value. Only used for simple, unprefixed
// string literals naming a forward-referenced class.
func constantStringValue(n *pyast.Node) string {
	text := n.Expr.ConstText
	if len(text) < 2 {
		return text
	}
	quote := text[len(text)-1]
	if quote != '\'' && quote != '"' {
		return text
	}
	start := 0
	for start < len(text) && text[start] != quote {
		start++
	}
	if start >= len(text)-1 {
		return text
	}
	return text[start+1 : len(text)-1]
}

// findClassesInBody collects ClassDef nodes in node's own body, not
// descending into nested function definitions.
func findClassesInBody(node *pyast.Node) []*pyast.Node {
	var out []*pyast.Node
	var collect func(n *pyast.Node)
	collect = func(n *pyast.Node) {
		for _, c := range childStmtsOf(n) {
			if c.Kind == pyast.NodeFunctionDef || c.Kind == pyast.NodeAsyncFunctionDef {
				continue
			}
			if c.Kind == pyast.NodeClassDef {
				out = append(out, c)
			}
			collect(c)
		}
	}
	collect(node)
	return out
}
