package rules

import (
	"github.com/a1f/pyguard/pkg/diag"
	"github.com/a1f/pyguard/pkg/lint"
	"github.com/a1f/pyguard/pkg/pyast"
)

func init() {
	lint.DefaultRegistry.Register(newIMP001Rule())
}

type imp001Rule struct {
	lint.BaseRule
}

func newIMP001Rule() *imp001Rule {
	return &imp001Rule{
		BaseRule: lint.NewBaseRule(diag.IMP001, "no-function-local-imports",
			"Disallow imports inside function bodies.",
			diag.SeverityWarn, true),
	}
}

// Apply flags import statements nested inside a function body, except
// those guarded by `if TYPE_CHECKING:` or an `except ImportError:`-style
// handler, both of which are established patterns for deferring an import.
func (r *imp001Rule) Apply(ctx *lint.RuleContext) ([]diag.Diagnostic, error) {
	v := &imp001Visitor{file: ctx.File}
	v.visit(ctx.Root)
	return v.diags, nil
}

type imp001Visitor struct {
	file              *pyast.FileSnapshot
	diags             []diag.Diagnostic
	functionDepth     int
	inTypeChecking    bool
	inTryExceptImport bool
}

func (v *imp001Visitor) visit(n *pyast.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case pyast.NodeFunctionDef, pyast.NodeAsyncFunctionDef:
		v.functionDepth++
		for _, c := range childStmtsOf(n) {
			v.visit(c)
		}
		v.functionDepth--
		return

	case pyast.NodeIf:
		if isTypeCheckingGuard(n.Stmt.Test) {
			prev := v.inTypeChecking
			v.inTypeChecking = true
			for _, c := range n.Stmt.Body {
				v.visit(c)
			}
			v.inTypeChecking = prev
			for _, c := range n.Stmt.OrElse {
				v.visit(c)
			}
			return
		}
		for _, c := range childStmtsOf(n) {
			v.visit(c)
		}
		return

	case pyast.NodeTry:
		catches := false
		for _, h := range n.Stmt.Handlers {
			if catchesImportError(h) {
				catches = true
				break
			}
		}
		if catches {
			prev := v.inTryExceptImport
			v.inTryExceptImport = true
			for _, c := range childStmtsOf(n) {
				v.visit(c)
			}
			v.inTryExceptImport = prev
			return
		}
		for _, c := range childStmtsOf(n) {
			v.visit(c)
		}
		return

	case pyast.NodeImport:
		if v.shouldFlag() {
			for _, alias := range n.Stmt.Aliases {
				v.addDiagnostic(n, alias.Name)
			}
		}
		return

	case pyast.NodeImportFrom:
		if v.shouldFlag() {
			module := n.Stmt.Module
			for _, alias := range n.Stmt.Aliases {
				name := alias.Name
				if module != "" {
					name = module + "." + alias.Name
				}
				v.addDiagnostic(n, name)
			}
		}
		return
	}

	for _, c := range childStmtsOf(n) {
		v.visit(c)
	}
}

func (v *imp001Visitor) shouldFlag() bool {
	return v.functionDepth > 0 && !v.inTypeChecking && !v.inTryExceptImport
}

func (v *imp001Visitor) addDiagnostic(n *pyast.Node, moduleName string) {
	pos := n.SourcePosition()
	builder := lint.NewDiagnosticAt(diag.IMP001, v.file.Path, pos.StartLine, pos.StartColumn,
		"Import '"+moduleName+"' should be at module level, not inside function").
		WithSourceLine(sourceLineFor(v.file, pos.StartLine))
	v.diags = append(v.diags, builder.Build())
}

func isTypeCheckingGuard(test *pyast.Node) bool {
	if test == nil || test.Expr == nil {
		return false
	}
	if test.Kind == pyast.NodeName && test.Expr.Name == "TYPE_CHECKING" {
		return true
	}
	return test.Kind == pyast.NodeAttribute &&
		test.Expr.Value != nil && test.Expr.Value.Kind == pyast.NodeName &&
		test.Expr.Name == "TYPE_CHECKING"
}

func catchesImportError(h *pyast.Handler) bool {
	if h.Type == nil {
		return true
	}
	if h.Type.Kind == pyast.NodeName && isImportErrorName(h.Type.Expr.Name) {
		return true
	}
	if h.Type.Kind == pyast.NodeTuple {
		for _, elt := range h.Type.Expr.Elts {
			if elt.Kind == pyast.NodeName && isImportErrorName(elt.Expr.Name) {
				return true
			}
		}
	}
	return false
}

func isImportErrorName(name string) bool {
	return name == "ImportError" || name == "ModuleNotFoundError"
}
