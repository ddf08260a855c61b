package rules

import (
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/lint"
	"github.com/a1f/pyguard/pkg/pyast"
)

func init() {
	lint.DefaultRegistry.Register(newTYP002Rule())
}

type typ002Rule struct {
	lint.BaseRule
}

func newTYP002Rule() *typ002Rule {
	return &typ002Rule{
		BaseRule: lint.NewBaseRule(diag.TYP002, "missing-return-annotation",
			"Detect functions missing return type annotations.",
			diag.SeverityError, true),
	}
}

// Apply walks every function definition, flagging those with no return
// annotation. Dunder methods are exempt; lambdas are never visited since
// they cannot carry annotations.
func (r *typ002Rule) Apply(ctx *lint.RuleContext) ([]diag.Diagnostic, error) {
	var diags []diag.Diagnostic

	var visit func(n *pyast.Node)
	visit = func(n *pyast.Node) {
		if n == nil {
			return
		}
		if isFunctionDef(n) {
			if d, ok := checkTYP002Function(n, ctx.File); ok {
				diags = append(diags, d)
			}
		}
		for _, c := range childStmtsOf(n) {
			visit(c)
		}
	}
	visit(ctx.Root)
	return diags, nil
}

func checkTYP002Function(n *pyast.Node, file *pyast.FileSnapshot) (diag.Diagnostic, bool) {
	if isDunder(n.Stmt.Name) {
		return diag.Diagnostic{}, false
	}
	if n.Stmt.Returns != nil {
		return diag.Diagnostic{}, false
	}
	line, col := defKeywordPosition(n)
	builder := lint.NewDiagnosticAt(diag.TYP002, file.Path, line, col,
		"Missing return type annotation for function '"+n.Stmt.Name+"'").
		WithSourceLine(sourceLineFor(file, line))
	if edit, ok := typ002ReturnNoneEdit(n, file); ok {
		builder = builder.WithEdit(edit)
	}
	return builder.Build(), true
}
