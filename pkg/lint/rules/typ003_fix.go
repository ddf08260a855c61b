package rules

import (
	"github.com/a1f/pyguard/pkg/fix"
	"github.com/a1f/pyguard/pkg/pyast"
)

var typ003BuiltinConstructors = map[string]bool{
	"int": true, "float": true, "str": true, "bytes": true, "bool": true,
	"complex": true, "list": true, "dict": true, "set": true,
	"frozenset": true, "tuple": true, "bytearray": true,
}

// typ003AnnotationEdit computes the `: TYPE` insertion for a single-target
// assignment whose value's type is unambiguously inferable from a literal
// or a builtin constructor call. No scope analysis is performed: a
// shadowed builtin name can produce an incorrect annotation, matching the
// reference implementation's documented limitation.
func typ003AnnotationEdit(assign, target *pyast.Node, file *pyast.FileSnapshot) (fix.TextEdit, bool) {
	if len(assign.Stmt.Targets) != 1 {
		return fix.TextEdit{}, false
	}
	typeName, ok := typ003InferType(assign.Stmt.Value)
	if !ok {
		return fix.TextEdit{}, false
	}
	end := target.SourceRange().EndOffset
	return fix.TextEdit{StartOffset: end, EndOffset: end, NewText: ": " + typeName}, true
}

// isFStringLiteral reports whether a string literal's prefix marks it as an
// interpolated string, which is not a constant and is never annotated.
func isFStringLiteral(text string) bool {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case 'f', 'F':
			return true
		case '\'', '"':
			return false
		}
	}
	return false
}

func typ003InferType(value *pyast.Node) (string, bool) {
	if value == nil || value.Expr == nil {
		return "", false
	}
	switch value.Kind {
	case pyast.NodeConstant:
		switch value.Expr.ConstKind {
		case pyast.ConstBool:
			return "bool", true
		case pyast.ConstInt:
			return "int", true
		case pyast.ConstFloat:
			return "float", true
		case pyast.ConstComplex:
			return "complex", true
		case pyast.ConstStr:
			if isFStringLiteral(value.Expr.ConstText) {
				return "", false
			}
			return "str", true
		case pyast.ConstBytes:
			return "bytes", true
		default:
			return "", false
		}
	case pyast.NodeCall:
		fn := value.Expr.Func
		if fn != nil && fn.Kind == pyast.NodeName && typ003BuiltinConstructors[fn.Expr.Name] {
			return fn.Expr.Name, true
		}
		return "", false
	default:
		return "", false
	}
}
