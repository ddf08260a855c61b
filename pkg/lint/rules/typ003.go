package rules

import (
	"github.com/a1f/pyguard/pkg/config"
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/lint"
	"github.com/a1f/pyguard/pkg/pyast"
)

func init() {
	lint.DefaultRegistry.Register(newTYP003Rule())
}

type typ003Rule struct {
	lint.BaseRule
}

func newTYP003Rule() *typ003Rule {
	return &typ003Rule{
		BaseRule: lint.NewBaseRule(diag.TYP003, "missing-variable-annotation",
			"Detect variables missing type annotations.",
			diag.SeverityWarn, true),
	}
}

type typ003Scope int

const (
	typ003ScopeModule typ003Scope = iota
	typ003ScopeClass
	typ003ScopeFunction
)

func (s typ003Scope) label() string {
	switch s {
	case typ003ScopeClass:
		return "class"
	case typ003ScopeFunction:
		return "local"
	default:
		return "module-level"
	}
}

func (s typ003Scope) annotationScope() config.AnnotationScope {
	switch s {
	case typ003ScopeClass:
		return config.ScopeClass
	case typ003ScopeFunction:
		return config.ScopeLocal
	default:
		return config.ScopeModule
	}
}

// Apply scans bare single-name assignments, flagging those whose
// enclosing textual scope is configured for annotation enforcement.
func (r *typ003Rule) Apply(ctx *lint.RuleContext) ([]diag.Diagnostic, error) {
	opts := ctx.RuleConfig.TYP003
	var diags []diag.Diagnostic

	scopeStack := []typ003Scope{typ003ScopeModule}
	var visit func(n *pyast.Node)
	visit = func(n *pyast.Node) {
		if n == nil {
			return
		}
		switch n.Kind {
		case pyast.NodeClassDef:
			scopeStack = append(scopeStack, typ003ScopeClass)
			for _, c := range n.Stmt.Body {
				visit(c)
			}
			scopeStack = scopeStack[:len(scopeStack)-1]
			return
		case pyast.NodeFunctionDef, pyast.NodeAsyncFunctionDef:
			scopeStack = append(scopeStack, typ003ScopeFunction)
			for _, c := range n.Stmt.Body {
				visit(c)
			}
			scopeStack = scopeStack[:len(scopeStack)-1]
			return
		case pyast.NodeAssign:
			current := scopeStack[len(scopeStack)-1]
			if opts.Scope[current.annotationScope()] {
				for _, target := range n.Stmt.Targets {
					if target.Kind != pyast.NodeName || target.Expr.Name == "_" {
						continue
					}
					pos := target.SourcePosition()
					d := lint.NewDiagnosticAt(diag.TYP003, ctx.File.Path, pos.StartLine, pos.StartColumn,
						"Missing type annotation for "+current.label()+" variable '"+target.Expr.Name+"'").
						WithSourceLine(sourceLineFor(ctx.File, pos.StartLine)).
						Build()
					if edit, ok := typ003AnnotationEdit(n, target, ctx.File); ok {
						d.FixEdits = append(d.FixEdits, diag.TextEdit{StartOffset: edit.StartOffset, EndOffset: edit.EndOffset, NewText: edit.NewText})
					}
					diags = append(diags, d)
				}
			}
		}
		for _, c := range childStmtsOf(n) {
			visit(c)
		}
	}
	visit(ctx.Root)
	return diags, nil
}
