package pyast

//go:generate stringer -type=NodeKind -trimprefix=Node

// NodeKind classifies the shape of an AST node. The source language's own
// grammar already separates statements from expressions, so nodes carry
// either StmtAttrs or ExprAttrs (never both), mirroring that split instead
// of a single flat struct with every possible field.
type NodeKind uint16

// Node kinds for statements and expressions.
const (
	NodeModule NodeKind = iota

	// Statement-level nodes.
	NodeFunctionDef
	NodeAsyncFunctionDef
	NodeClassDef
	NodeAssign
	NodeAnnAssign
	NodeAugAssign
	NodeImport
	NodeImportFrom
	NodeReturn
	NodeIf
	NodeFor
	NodeWhile
	NodeWith
	NodeTry
	NodeExprStmt
	NodePass
	NodeOther // simple statement kinds not individually modeled (raise, del, assert, ...)

	// Expression-level nodes.
	NodeName
	NodeAttribute
	NodeSubscript
	NodeCall
	NodeTuple
	NodeList
	NodeSet
	NodeDict
	NodeBinOp
	NodeUnaryOp
	NodeConstant
	NodeEllipsis
	NodeStarred
	NodeKeyword
	NodeLambda
)

// IsStmt reports whether the node is a statement.
func (n *Node) IsStmt() bool {
	return n != nil && n.Stmt != nil
}

// IsExpr reports whether the node is an expression.
func (n *Node) IsExpr() bool {
	return n != nil && n.Expr != nil
}

// ConstKind classifies the literal value carried by a NodeConstant.
type ConstKind uint8

const (
	ConstNone ConstKind = iota
	ConstBool
	ConstInt
	ConstFloat
	ConstComplex
	ConstStr
	ConstBytes
)

// Param describes a single function parameter.
type Param struct {
	Name       string
	Annotation *Node
	Default    *Node

	// NameToken is the index into FileSnapshot.Tokens of the parameter's
	// name token, used by fixers to compute exact insertion offsets.
	NameToken int
}

// Params describes a function's full parameter list.
type Params struct {
	PosOnly []*Param
	Args    []*Param
	Vararg  *Param // nil if no *args
	KwOnly  []*Param
	Kwarg   *Param // nil if no **kwargs
}

// All returns every positional-or-keyword-capable parameter in declaration
// order: posonly, then pos-or-kw, then kwonly. *args/**kwargs are excluded
// since annotation rules never check them directly except where noted.
func (p *Params) All() []*Param {
	if p == nil {
		return nil
	}
	out := make([]*Param, 0, len(p.PosOnly)+len(p.Args)+len(p.KwOnly))
	out = append(out, p.PosOnly...)
	out = append(out, p.Args...)
	out = append(out, p.KwOnly...)
	return out
}

// Alias is a single `import X [as Y]` or `from M import X [as Y]` binding.
type Alias struct {
	Name    string
	AsName  string
	NameTok int // token index of the imported name, for fixer line/col work
}

// EffectiveName returns AsName if present, else Name.
func (a *Alias) EffectiveName() string {
	if a.AsName != "" {
		return a.AsName
	}
	return a.Name
}

// Keyword is a single call keyword argument (`name=value`); Arg is empty
// for a bare `**kwargs` spread.
type Keyword struct {
	Arg   string
	Value *Node
}

// Handler is a single `except [Type [as Name]]:` clause.
type Handler struct {
	Type *Node // nil for a bare except
	Name string
	Body []*Node
}

// StmtAttrs carries the fields relevant to statement-shaped nodes. Only the
// fields matching Node.Kind are populated; everything else is the zero
// value.
type StmtAttrs struct {
	// FunctionDef / AsyncFunctionDef / ClassDef.
	Name       string
	Decorators []*Node
	Params     *Params // FunctionDef/AsyncFunctionDef only
	Returns    *Node   // FunctionDef/AsyncFunctionDef return annotation
	Bases      []*Node // ClassDef bases
	Body       []*Node

	// Assign / AnnAssign / AugAssign.
	Targets    []*Node // Assign targets (len>=1); AnnAssign/AugAssign use Targets[0]
	Value      *Node   // assigned value (nil for a bare AnnAssign declaration)
	Annotation *Node   // AnnAssign annotation
	AugOp      string  // AugAssign operator text, e.g. "+="

	// Import / ImportFrom.
	Module  string // ImportFrom module dotted name ("" for plain Import)
	Level   int    // ImportFrom leading-dot relative level
	Aliases []*Alias

	// Return.
	ReturnValue *Node // nil for a bare `return`

	// If / While condition; For reuses Targets (loop targets) and Value
	// (the iterable).
	Test   *Node
	OrElse []*Node

	// With context-manager expressions, co-indexed with Targets for any
	// `as` bindings (nil entry when an item has none).
	Items []*Node

	// Try.
	Handlers []*Handler
	Finally  []*Node

	// ExprStmt.
	ExprValue *Node
}

// ExprAttrs carries the fields relevant to expression-shaped nodes.
type ExprAttrs struct {
	// Name / Attribute attr / Keyword arg.
	Name string

	// Attribute.Value / Starred.Value / Keyword.Value (reused across kinds).
	Value *Node

	// Tuple / List / Set / Dict keys.
	Elts []*Node
	Keys []*Node // Dict only

	// Call.
	Func     *Node
	CallArgs []*Node
	Keywords []*Keyword

	// Subscript.
	Slice *Node

	// BinOp.
	Left  *Node
	Right *Node
	Op    string

	// UnaryOp.
	Operand *Node

	// Constant.
	ConstKind ConstKind
	ConstText string // the literal's exact source text

	// Lambda.
	Params *Params
}

// Node is a single node in the source tree. Nodes are addressed by token
// span rather than by owning their own byte ranges, so every node's source
// extent is derivable directly from FileSnapshot.Tokens. Statement nesting
// lives in StmtAttrs (Body, OrElse, Finally, Handlers); expression nesting
// in ExprAttrs.
type Node struct {
	Kind NodeKind

	// FirstToken/LastToken index into File.Tokens (inclusive). Both are -1
	// for synthetic nodes with no direct source representation.
	FirstToken int
	LastToken  int

	File *FileSnapshot

	Stmt *StmtAttrs
	Expr *ExprAttrs
}
