package rules

import (
	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/lint"
	"github.com/a1f/pyguard/pkg/pyast"
)

func init() {
	lint.DefaultRegistry.Register(newTYP001Rule())
}

type typ001Rule struct {
	lint.BaseRule
}

func newTYP001Rule() *typ001Rule {
	return &typ001Rule{
		BaseRule: lint.NewBaseRule(diag.TYP001, "missing-param-annotation",
			"Detect function parameters missing type annotations.",
			diag.SeverityError, false),
	}
}

// Apply walks every function definition, flagging parameters without an
// annotation. Dunder methods and the first self/cls parameter of a method
// are exempt when configured.
func (r *typ001Rule) Apply(ctx *lint.RuleContext) ([]diag.Diagnostic, error) {
	opts := ctx.RuleConfig.TYP001
	var diags []diag.Diagnostic

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
			diags = append(diags, checkTYP001Function(n, classDepth > 0, opts, ctx.File)...)
		}
		for _, c := range childStmtsOf(n) {
			visit(c)
		}
	}
	visit(ctx.Root)
	return diags, nil
}

func checkTYP001Function(n *pyast.Node, isMethod bool, opts config.TYP001Options, file *pyast.FileSnapshot) []diag.Diagnostic {
	if opts.ExemptDunder && isDunder(n.Stmt.Name) {
		return nil
	}
	params := n.Stmt.Params.All()
	var diags []diag.Diagnostic
	for i, p := range params {
		if isMethod && opts.ExemptSelfCls && i == 0 && isSelfOrCls(p.Name) {
			continue
		}
		if p.Annotation != nil {
			continue
		}
		line, col := paramPosition(file, p)
		d := lint.NewDiagnosticAt(diag.TYP001, file.Path, line, col,
			"Missing type annotation for parameter '"+p.Name+"'").
			WithSourceLine(sourceLineFor(file, line)).
			Build()
		diags = append(diags, d)
	}
	return diags
}

// paramPosition returns a parameter's source line/column from its name
// token, falling back to (0,0) if the token index is out of range.
func paramPosition(file *pyast.FileSnapshot, p *pyast.Param) (line, col int) {
	if file == nil || p.NameToken < 0 || p.NameToken >= len(file.Tokens) {
		return 0, 0
	}
	t := file.Tokens[p.NameToken]
	return t.StartLine, t.StartCol
}
