package pyast

// Expression parsing. The grammar is precedence-climbing, lowest to
// highest: ternary/lambda, or, and, not, comparison, bitor, bitxor,
// bitand, shift, arithmetic, term, unary, power, postfix, atom.
//
// Two constructs have no dedicated NodeKind (ternary and boolean
// and/or/not chains): they are folded into NodeBinOp/NodeUnaryOp using a
// synthetic Op tag ("if", "else", "and", "or") rather than growing the
// node model, since no rule inspects their internal shape.

// parseExprList parses a single expression, or a comma-separated run of
// them wrapped in a NodeTuple (trailing comma tolerated).
func (p *parser) parseExprList() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	first, err := p.parseExprOrStarred()
	if err != nil {
		return nil, err
	}
	if !p.isOp(",") {
		return first, nil
	}
	elts := []*Node{first}
	for p.isOp(",") {
		p.advance()
		if p.exprListEnd() {
			break
		}
		e, err := p.parseExprOrStarred()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	node := p.newExprNode(NodeTuple, start, p.prevTokIdx())
	node.Expr.Elts = elts
	return node, nil
}

// exprListEnd reports whether the current token can only end an
// expression list (used to tolerate a trailing comma).
func (p *parser) exprListEnd() bool {
	switch p.cur().Kind {
	case TokenNewline, TokenEOF, TokenNL:
		return true
	}
	if p.isOp(")") || p.isOp("]") || p.isOp("}") || p.isOp(":") || p.isOp("=") || p.isOp(";") {
		return true
	}
	return p.isKeyword("for")
}

func (p *parser) parseExprOrStarred() (*Node, *SyntaxError) {
	if p.isOp("*") {
		start := p.curTokIdx()
		p.advance()
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeStarred, start, p.prevTokIdx())
		node.Expr.Value = v
		return node, nil
	}
	return p.parseExpr()
}

// parseExpr parses one expression (the "test" production).
func (p *parser) parseExpr() (*Node, *SyntaxError) {
	if p.isKeyword("lambda") {
		return p.parseLambda()
	}
	start := p.curTokIdx()
	body, err := p.parseOrTest()
	if err != nil {
		return nil, err
	}
	if !p.isKeyword("if") {
		return body, nil
	}
	p.advance()
	cond, err := p.parseOrTest()
	if err != nil {
		return nil, err
	}
	if err := p.expectKeyword("else"); err != nil {
		return nil, err
	}
	orelse, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	ifNode := p.newExprNode(NodeBinOp, start, p.prevTokIdx())
	ifNode.Expr.Op = "if"
	ifNode.Expr.Left = body
	ifNode.Expr.Right = cond
	outer := p.newExprNode(NodeBinOp, start, p.prevTokIdx())
	outer.Expr.Op = "else"
	outer.Expr.Left = ifNode
	outer.Expr.Right = orelse
	return outer, nil
}

func (p *parser) parseLambda() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	p.advance() // 'lambda'
	params, err := p.parseLambdaParams()
	if err != nil {
		return nil, err
	}
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	node := p.newExprNode(NodeLambda, start, p.prevTokIdx())
	node.Expr.Params = params
	node.Expr.Value = body
	return node, nil
}

// parseLambdaParams parses a lambda's parameter list, which has the same
// grammar as a function's parenthesized one but terminates at ':' instead
// of ')'.
func (p *parser) parseLambdaParams() (*Params, *SyntaxError) {
	params := &Params{}
	seenStar := false

	for !p.isOp(":") {
		if p.isOp("/") {
			p.advance()
			params.PosOnly = append(params.PosOnly, params.Args...)
			params.Args = nil
			if p.isOp(",") {
				p.advance()
			}
			continue
		}
		if p.isOp("*") && !p.peekOpAt(1, "*") {
			p.advance()
			seenStar = true
			if p.cur().Kind == TokenName {
				param, err := p.parseLambdaParam()
				if err != nil {
					return nil, err
				}
				params.Vararg = param
			}
			if p.isOp(",") {
				p.advance()
			}
			continue
		}
		if p.isOp("**") {
			p.advance()
			param, err := p.parseLambdaParam()
			if err != nil {
				return nil, err
			}
			params.Kwarg = param
			if p.isOp(",") {
				p.advance()
			}
			continue
		}

		param, err := p.parseLambdaParam()
		if err != nil {
			return nil, err
		}
		if seenStar {
			params.KwOnly = append(params.KwOnly, param)
		} else {
			params.Args = append(params.Args, param)
		}
		if p.isOp(",") {
			p.advance()
			continue
		}
		break
	}
	return params, nil
}

// parseLambdaParam parses a single lambda parameter: a name with an
// optional default, but never an annotation, since lambda's own ':' would
// otherwise be ambiguous with an annotation colon.
func (p *parser) parseLambdaParam() (*Param, *SyntaxError) {
	if p.cur().Kind != TokenName {
		return nil, p.errorf("expected parameter name, found '%s'", p.curText())
	}
	param := &Param{Name: p.curText(), NameToken: p.curTokIdx()}
	p.advance()
	if p.isOp("=") {
		p.advance()
		def, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		param.Default = def
	}
	return param, nil
}

func (p *parser) parseOrTest() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	left, err := p.parseAndTest()
	if err != nil {
		return nil, err
	}
	for p.isKeyword("or") {
		p.advance()
		right, err := p.parseAndTest()
		if err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeBinOp, start, p.prevTokIdx())
		node.Expr.Op = "or"
		node.Expr.Left = left
		node.Expr.Right = right
		left = node
	}
	return left, nil
}

func (p *parser) parseAndTest() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	left, err := p.parseNotTest()
	if err != nil {
		return nil, err
	}
	for p.isKeyword("and") {
		p.advance()
		right, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeBinOp, start, p.prevTokIdx())
		node.Expr.Op = "and"
		node.Expr.Left = left
		node.Expr.Right = right
		left = node
	}
	return left, nil
}

func (p *parser) parseNotTest() (*Node, *SyntaxError) {
	if p.isKeyword("not") {
		start := p.curTokIdx()
		p.advance()
		operand, err := p.parseNotTest()
		if err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeUnaryOp, start, p.prevTokIdx())
		node.Expr.Op = "not"
		node.Expr.Operand = operand
		return node, nil
	}
	return p.parseComparison()
}

func (p *parser) comparisonOp() (string, bool) {
	if p.isKeyword("in") {
		return "in", true
	}
	if p.isKeyword("is") {
		if p.peekIsKeyword(1, "not") {
			return "is not", true
		}
		return "is", true
	}
	if p.isKeyword("not") && p.peekIsKeyword(1, "in") {
		return "not in", true
	}
	if p.cur().Kind == TokenOp {
		switch p.curText() {
		case "==", "!=", "<", ">", "<=", ">=":
			return p.curText(), true
		}
	}
	return "", false
}

func (p *parser) advanceComparisonOp(op string) {
	switch op {
	case "is not", "not in":
		p.advance()
		p.advance()
	default:
		p.advance()
	}
}

func (p *parser) parseComparison() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	left, err := p.parseBitOr()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := p.comparisonOp()
		if !ok {
			break
		}
		p.advanceComparisonOp(op)
		right, err := p.parseBitOr()
		if err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeBinOp, start, p.prevTokIdx())
		node.Expr.Op = op
		node.Expr.Left = left
		node.Expr.Right = right
		left = node
	}
	return left, nil
}

func (p *parser) parseBinaryLevel(next func() (*Node, *SyntaxError), ops ...string) (*Node, *SyntaxError) {
	start := p.curTokIdx()
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		matched := ""
		if p.cur().Kind == TokenOp {
			for _, op := range ops {
				if p.curText() == op {
					matched = op
					break
				}
			}
		}
		if matched == "" {
			return left, nil
		}
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeBinOp, start, p.prevTokIdx())
		node.Expr.Op = matched
		node.Expr.Left = left
		node.Expr.Right = right
		left = node
	}
}

func (p *parser) parseBitOr() (*Node, *SyntaxError) {
	return p.parseBinaryLevel(p.parseBitXor, "|")
}

func (p *parser) parseBitXor() (*Node, *SyntaxError) {
	return p.parseBinaryLevel(p.parseBitAnd, "^")
}

func (p *parser) parseBitAnd() (*Node, *SyntaxError) {
	return p.parseBinaryLevel(p.parseShift, "&")
}

func (p *parser) parseShift() (*Node, *SyntaxError) {
	return p.parseBinaryLevel(p.parseArith, "<<", ">>")
}

func (p *parser) parseArith() (*Node, *SyntaxError) {
	return p.parseBinaryLevel(p.parseTerm, "+", "-")
}

func (p *parser) parseTerm() (*Node, *SyntaxError) {
	return p.parseBinaryLevel(p.parseFactor, "*", "/", "//", "%", "@")
}

func (p *parser) parseFactor() (*Node, *SyntaxError) {
	if p.cur().Kind == TokenOp {
		switch p.curText() {
		case "+", "-", "~":
			start := p.curTokIdx()
			op := p.curText()
			p.advance()
			operand, err := p.parseFactor()
			if err != nil {
				return nil, err
			}
			node := p.newExprNode(NodeUnaryOp, start, p.prevTokIdx())
			node.Expr.Op = op
			node.Expr.Operand = operand
			return node, nil
		}
	}
	return p.parsePower()
}

func (p *parser) parsePower() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.isOp("**") {
		p.advance()
		exp, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeBinOp, start, p.prevTokIdx())
		node.Expr.Op = "**"
		node.Expr.Left = base
		node.Expr.Right = exp
		return node, nil
	}
	return base, nil
}

func (p *parser) parsePostfix() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	node, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.isOp("."):
			p.advance()
			if p.cur().Kind != TokenName {
				return nil, p.errorf("expected attribute name, found '%s'", p.curText())
			}
			attr := p.newExprNode(NodeAttribute, start, p.curTokIdx())
			attr.Expr.Value = node
			attr.Expr.Name = p.curText()
			p.advance()
			node = attr
		case p.isOp("("):
			p.advance()
			call := p.newExprNode(NodeCall, start, 0)
			call.Expr.Func = node
			for !p.isOp(")") {
				if p.isOp("**") {
					p.advance()
					v, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					call.Expr.Keywords = append(call.Expr.Keywords, &Keyword{Value: v})
				} else if p.isOp("*") {
					p.advance()
					v, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					starred := p.newExprNode(NodeStarred, start, p.prevTokIdx())
					starred.Expr.Value = v
					call.Expr.CallArgs = append(call.Expr.CallArgs, starred)
				} else if p.cur().Kind == TokenName && p.peekOpAt(1, "=") {
					name := p.curText()
					p.advance()
					p.advance()
					v, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					call.Expr.Keywords = append(call.Expr.Keywords, &Keyword{Arg: name, Value: v})
				} else {
					v, err := p.parseExpr()
					if err != nil {
						return nil, err
					}
					if p.isKeyword("for") {
						p.skipBalanced(")")
						call.Expr.CallArgs = append(call.Expr.CallArgs, v)
						break
					}
					call.Expr.CallArgs = append(call.Expr.CallArgs, v)
				}
				if p.isOp(",") {
					p.advance()
					continue
				}
				break
			}
			if err := p.expectOp(")"); err != nil {
				return nil, err
			}
			call.LastToken = p.prevTokIdx()
			node = call
		case p.isOp("["):
			p.advance()
			sub := p.newExprNode(NodeSubscript, start, 0)
			sub.Expr.Value = node
			slice, err := p.parseSubscript()
			if err != nil {
				return nil, err
			}
			sub.Expr.Slice = slice
			if err := p.expectOp("]"); err != nil {
				return nil, err
			}
			sub.LastToken = p.prevTokIdx()
			node = sub
		default:
			return node, nil
		}
	}
}

// parseSubscript parses the contents of a '[...]' subscript, which may be a
// single expression, a slice ('lower:upper:step' with any part optional),
// or a comma-separated tuple of either.
func (p *parser) parseSubscript() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	first, err := p.parseSliceItem()
	if err != nil {
		return nil, err
	}
	if !p.isOp(",") {
		return first, nil
	}
	elts := []*Node{first}
	for p.isOp(",") {
		p.advance()
		if p.isOp("]") {
			break
		}
		e, err := p.parseSliceItem()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	node := p.newExprNode(NodeTuple, start, p.prevTokIdx())
	node.Expr.Elts = elts
	return node, nil
}

// parseSliceItem parses one element of a subscript's contents: either a
// plain expression, or a slice. A slice has no dedicated NodeKind; it is
// represented as a NodeBinOp tagged Op "slice" whose Left is the lower
// bound and whose Right is a nested NodeBinOp tagged "sliceparts" holding
// the upper bound and step, since no rule needs to inspect slice bounds.
func (p *parser) parseSliceItem() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	var lower, upper, step *Node
	var err *SyntaxError

	if !p.isOp(":") && !p.sliceItemEnd() {
		lower, err = p.parseExprOrStarred()
		if err != nil {
			return nil, err
		}
	}
	if !p.isOp(":") {
		return lower, nil
	}
	p.advance()
	if !p.isOp(":") && !p.sliceItemEnd() {
		upper, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}
	if p.isOp(":") {
		p.advance()
		if !p.sliceItemEnd() {
			step, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
	}

	parts := p.newExprNode(NodeBinOp, start, p.prevTokIdx())
	parts.Expr.Op = "sliceparts"
	parts.Expr.Left = upper
	parts.Expr.Right = step

	node := p.newExprNode(NodeBinOp, start, p.prevTokIdx())
	node.Expr.Op = "slice"
	node.Expr.Left = lower
	node.Expr.Right = parts
	return node, nil
}

func (p *parser) sliceItemEnd() bool {
	if p.isOp(",") || p.isOp("]") {
		return true
	}
	switch p.cur().Kind {
	case TokenNewline, TokenEOF, TokenNL:
		return true
	}
	return false
}

// skipBalanced is used after detecting a comprehension's 'for' clause: it
// advances past the remainder of the clause up to (but not including) the
// matching closer, so the caller can consume the closer itself. Nested
// brackets of any kind are tracked so a comprehension containing its own
// calls or subscripts does not end the skip early.
func (p *parser) skipBalanced(closer string) {
	depth := 0
	for {
		if p.atEOF() {
			return
		}
		if depth == 0 && p.isOp(closer) {
			return
		}
		if p.cur().Kind == TokenOp {
			switch p.curText() {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				if depth == 0 {
					return
				}
				depth--
			}
		}
		p.advance()
	}
}

func (p *parser) parseAtom() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	t := p.cur()

	switch {
	case t.Kind == TokenName:
		node := p.newExprNode(NodeName, start, start)
		node.Expr.Name = p.curText()
		p.advance()
		return node, nil

	case t.Kind == TokenNumber:
		node := p.newExprNode(NodeConstant, start, start)
		node.Expr.ConstText = p.curText()
		node.Expr.ConstKind = classifyNumber(node.Expr.ConstText)
		p.advance()
		return node, nil

	case t.Kind == TokenString || t.Kind == TokenFString:
		text := ""
		kind := ConstStr
		if isBytesLiteral(p.curText()) {
			kind = ConstBytes
		}
		for p.cur().Kind == TokenString || p.cur().Kind == TokenFString {
			text += p.curText()
			p.advance()
		}
		node := p.newExprNode(NodeConstant, start, p.prevTokIdx())
		node.Expr.ConstText = text
		node.Expr.ConstKind = kind
		return node, nil

	case p.isKeyword("True") || p.isKeyword("False"):
		node := p.newExprNode(NodeConstant, start, start)
		node.Expr.ConstKind = ConstBool
		node.Expr.ConstText = p.curText()
		p.advance()
		return node, nil

	case p.isKeyword("None"):
		node := p.newExprNode(NodeConstant, start, start)
		node.Expr.ConstKind = ConstNone
		node.Expr.ConstText = "None"
		p.advance()
		return node, nil

	case p.isOp("...") || (p.isOp(".") && p.peekOpAt(1, ".") && p.peekOpAt(2, ".")):
		p.advance()
		if p.isOp(".") {
			p.advance()
			p.advance()
		}
		return p.newExprNode(NodeEllipsis, start, p.prevTokIdx()), nil

	case p.isOp("("):
		return p.parseParenForm(start)

	case p.isOp("["):
		return p.parseListForm(start)

	case p.isOp("{"):
		return p.parseBraceForm(start)

	case p.isOp("*"):
		p.advance()
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeStarred, start, p.prevTokIdx())
		node.Expr.Value = v
		return node, nil

	case p.isKeyword("lambda"):
		return p.parseLambda()

	case t.Kind == TokenKeyword && (p.curText() == "yield"):
		p.advance()
		if p.isKeyword("from") {
			p.advance()
		}
		node := p.newExprNode(NodeCall, start, 0)
		node.Expr.Name = "yield"
		if !p.exprListEnd() {
			v, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			node.Expr.CallArgs = []*Node{v}
		}
		node.LastToken = p.prevTokIdx()
		return node, nil

	case p.isKeyword("await"):
		p.advance()
		v, err := p.parseUnaryAfterAwait()
		if err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeUnaryOp, start, p.prevTokIdx())
		node.Expr.Op = "await"
		node.Expr.Operand = v
		return node, nil

	default:
		return nil, p.errorf("expected an expression, found '%s'", p.curText())
	}
}

func (p *parser) parseUnaryAfterAwait() (*Node, *SyntaxError) {
	return p.parsePostfix()
}

// parseParenForm handles '(' already current: empty tuple, a parenthesized
// single expression, a parenthesized tuple, or a (simplified) generator
// expression.
func (p *parser) parseParenForm(start int) (*Node, *SyntaxError) {
	p.advance() // '('
	if p.isOp(")") {
		p.advance()
		node := p.newExprNode(NodeTuple, start, p.prevTokIdx())
		return node, nil
	}
	first, err := p.parseExprOrStarred()
	if err != nil {
		return nil, err
	}
	if p.isKeyword("for") {
		p.skipBalanced(")")
		if err := p.expectOp(")"); err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeCall, start, p.prevTokIdx())
		node.Expr.Name = "genexp"
		node.Expr.CallArgs = []*Node{first}
		return node, nil
	}
	if !p.isOp(",") {
		if err := p.expectOp(")"); err != nil {
			return nil, err
		}
		first.FirstToken = start
		first.LastToken = p.prevTokIdx()
		return first, nil
	}
	elts := []*Node{first}
	for p.isOp(",") {
		p.advance()
		if p.isOp(")") {
			break
		}
		e, err := p.parseExprOrStarred()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}
	node := p.newExprNode(NodeTuple, start, p.prevTokIdx())
	node.Expr.Elts = elts
	return node, nil
}

// parseListForm handles '[' already current: a list literal or a
// (simplified) list comprehension.
func (p *parser) parseListForm(start int) (*Node, *SyntaxError) {
	p.advance() // '['
	node := p.newExprNode(NodeList, start, 0)
	if p.isOp("]") {
		p.advance()
		node.LastToken = p.prevTokIdx()
		return node, nil
	}
	first, err := p.parseExprOrStarred()
	if err != nil {
		return nil, err
	}
	if p.isKeyword("for") {
		p.skipBalanced("]")
		if err := p.expectOp("]"); err != nil {
			return nil, err
		}
		node.Expr.Elts = []*Node{first}
		node.LastToken = p.prevTokIdx()
		return node, nil
	}
	elts := []*Node{first}
	for p.isOp(",") {
		p.advance()
		if p.isOp("]") {
			break
		}
		e, err := p.parseExprOrStarred()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	if err := p.expectOp("]"); err != nil {
		return nil, err
	}
	node.Expr.Elts = elts
	node.LastToken = p.prevTokIdx()
	return node, nil
}

// parseBraceForm handles '{' already current: a dict or set literal, or a
// (simplified) dict/set comprehension.
func (p *parser) parseBraceForm(start int) (*Node, *SyntaxError) {
	p.advance() // '{'
	if p.isOp("}") {
		p.advance()
		return p.newExprNode(NodeDict, start, p.prevTokIdx()), nil
	}

	if p.isOp("**") {
		p.advance()
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeDict, start, 0)
		node.Expr.Keys = append(node.Expr.Keys, nil)
		node.Expr.Elts = append(node.Expr.Elts, v)
		return p.finishBraceDict(node, start)
	}

	first, err := p.parseExprOrStarred()
	if err != nil {
		return nil, err
	}

	if p.isOp(":") {
		p.advance()
		val, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if p.isKeyword("for") {
			p.skipBalanced("}")
			if err := p.expectOp("}"); err != nil {
				return nil, err
			}
			node := p.newExprNode(NodeDict, start, p.prevTokIdx())
			node.Expr.Keys = []*Node{first}
			node.Expr.Elts = []*Node{val}
			return node, nil
		}
		node := p.newExprNode(NodeDict, start, 0)
		node.Expr.Keys = []*Node{first}
		node.Expr.Elts = []*Node{val}
		return p.finishBraceDict(node, start)
	}

	if p.isKeyword("for") {
		p.skipBalanced("}")
		if err := p.expectOp("}"); err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeSet, start, p.prevTokIdx())
		node.Expr.Elts = []*Node{first}
		return node, nil
	}

	elts := []*Node{first}
	for p.isOp(",") {
		p.advance()
		if p.isOp("}") {
			break
		}
		e, err := p.parseExprOrStarred()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	if err := p.expectOp("}"); err != nil {
		return nil, err
	}
	node := p.newExprNode(NodeSet, start, p.prevTokIdx())
	node.Expr.Elts = elts
	return node, nil
}

func (p *parser) finishBraceDict(node *Node, start int) (*Node, *SyntaxError) {
	for p.isOp(",") {
		p.advance()
		if p.isOp("}") {
			break
		}
		if p.isOp("**") {
			p.advance()
			v, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			node.Expr.Keys = append(node.Expr.Keys, nil)
			node.Expr.Elts = append(node.Expr.Elts, v)
			continue
		}
		k, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Expr.Keys = append(node.Expr.Keys, k)
		node.Expr.Elts = append(node.Expr.Elts, v)
	}
	if err := p.expectOp("}"); err != nil {
		return nil, err
	}
	node.LastToken = p.prevTokIdx()
	return node, nil
}

// isBytesLiteral reports whether a string literal's prefix marks it as a
// bytes object rather than text.
func isBytesLiteral(text string) bool {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case 'b', 'B':
			return true
		case '\'', '"':
			return false
		}
	}
	return false
}

func classifyNumber(text string) ConstKind {
	if len(text) == 0 {
		return ConstInt
	}
	last := text[len(text)-1]
	if last == 'j' || last == 'J' {
		return ConstComplex
	}
	for i := 0; i < len(text); i++ {
		if text[i] == '.' {
			return ConstFloat
		}
	}
	if len(text) >= 2 && text[0] == '0' && (text[1] == 'x' || text[1] == 'X' || text[1] == 'o' || text[1] == 'O' || text[1] == 'b' || text[1] == 'B') {
		return ConstInt
	}
	for i := 0; i < len(text); i++ {
		if text[i] == 'e' || text[i] == 'E' {
			return ConstFloat
		}
	}
	return ConstInt
}
