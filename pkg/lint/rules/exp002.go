package rules

import (
	"strings"

	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/lint"
	"github.com/a1f/pyguard/pkg/pyast"
)

func init() {
	lint.DefaultRegistry.Register(newEXP002Rule())
}

type exp002Rule struct {
	lint.BaseRule
}

func newEXP002Rule() *exp002Rule {
	return &exp002Rule{
		BaseRule: lint.NewBaseRule(diag.EXP002, "require-dunder-all",
			"Enforce __all__ or an explicit re-export policy.",
			diag.SeverityWarn, false),
	}
}

// Apply reports a single module-level diagnostic when the module defines
// any public top-level symbol but never assigns `__all__`.
func (r *exp002Rule) Apply(ctx *lint.RuleContext) ([]diag.Diagnostic, error) {
	if ctx.Root == nil || ctx.Root.Stmt == nil {
		return nil, nil
	}
	if hasAllDefinition(ctx.Root.Stmt.Body) {
		return nil, nil
	}
	if !hasPublicSymbols(ctx.Root.Stmt.Body) {
		return nil, nil
	}

	builder := lint.NewDiagnosticAt(diag.EXP002, ctx.File.Path, 1, 1,
		"Module should define '__all__' to explicitly declare public API").
		WithSourceLine(sourceLineFor(ctx.File, 1))
	return []diag.Diagnostic{builder.Build()}, nil
}

func hasAllDefinition(body []*pyast.Node) bool {
	for _, n := range body {
		if n.Stmt == nil {
			continue
		}
		switch n.Kind {
		case pyast.NodeAssign:
			for _, target := range n.Stmt.Targets {
				if target.Kind == pyast.NodeName && target.Expr.Name == "__all__" {
					return true
				}
			}
		case pyast.NodeAnnAssign, pyast.NodeAugAssign:
			if len(n.Stmt.Targets) > 0 {
				target := n.Stmt.Targets[0]
				if target.Kind == pyast.NodeName && target.Expr.Name == "__all__" {
					return true
				}
			}
		}
	}
	return false
}

func hasPublicSymbols(body []*pyast.Node) bool {
	for _, n := range body {
		if n.Stmt == nil {
			continue
		}
		switch n.Kind {
		case pyast.NodeFunctionDef, pyast.NodeAsyncFunctionDef, pyast.NodeClassDef:
			if !strings.HasPrefix(n.Stmt.Name, "_") {
				return true
			}
		case pyast.NodeAssign:
			for _, target := range n.Stmt.Targets {
				if target.Kind == pyast.NodeName && !strings.HasPrefix(target.Expr.Name, "_") {
					return true
				}
			}
		case pyast.NodeAnnAssign:
			if len(n.Stmt.Targets) > 0 {
				target := n.Stmt.Targets[0]
				if target.Kind == pyast.NodeName && !strings.HasPrefix(target.Expr.Name, "_") {
					return true
				}
			}
		}
	}
	return false
}
