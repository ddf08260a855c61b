package rules

import (
	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/lint"
	"github.com/a1f/pyguard/pkg/pyast"
)

func init() {
	lint.DefaultRegistry.Register(newKW001Rule())
}

type kw001Rule struct {
	lint.BaseRule
}

func newKW001Rule() *kw001Rule {
	return &kw001Rule{
		BaseRule: lint.NewBaseRule(diag.KW001, "require-keyword-only-params",
			"Detect functions that should use keyword-only parameters.",
			diag.SeverityWarn, true),
	}
}

// Apply flags functions/methods whose positional parameter count (self/cls
// excluded for methods) meets the configured minimum and which declare
// neither keyword-only parameters nor *args.
func (r *kw001Rule) Apply(ctx *lint.RuleContext) ([]diag.Diagnostic, error) {
	opts := ctx.RuleConfig.KW001
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
			if d, ok := checkKW001Function(n, classDepth > 0, opts, ctx.File); ok {
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

func checkKW001Function(n *pyast.Node, isMethod bool, opts config.KW001Options, file *pyast.FileSnapshot) (diag.Diagnostic, bool) {
	name := n.Stmt.Name
	if opts.ExemptDunder && isDunder(name) {
		return diag.Diagnostic{}, false
	}
	if opts.ExemptPrivate && isPrivate(name) {
		return diag.Diagnostic{}, false
	}
	if opts.ExemptOverride && hasOverrideDecorator(n) {
		return diag.Diagnostic{}, false
	}

	params := n.Stmt.Params
	if len(params.KwOnly) > 0 || params.Vararg != nil {
		return diag.Diagnostic{}, false
	}

	positional := append(append([]*pyast.Param(nil), params.PosOnly...), params.Args...)
	selfClsOffset := 0
	if isMethod && len(positional) > 0 && isSelfOrCls(positional[0].Name) {
		selfClsOffset = 1
	}
	effective := len(positional) - selfClsOffset
	if effective < opts.MinParams {
		return diag.Diagnostic{}, false
	}

	kind := "Function"
	if isMethod {
		kind = "Method"
	}
	line, col := defKeywordPosition(n)
	builder := lint.NewDiagnosticAt(diag.KW001, file.Path, line, col,
		kind+" '"+name+"' should use keyword-only parameters (add * separator)").
		WithSourceLine(sourceLineFor(file, line))
	if edit, ok := kw001StarEdit(n, file); ok {
		builder = builder.WithEdit(edit)
	}
	return builder.Build(), true
}
