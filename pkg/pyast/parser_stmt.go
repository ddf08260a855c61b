package pyast

// parseStatement parses one compound or simple statement, including any
// leading decorators.
func (p *parser) parseStatement() (*Node, *SyntaxError) {
	startTokIdx := p.curTokIdx()

	var decorators []*Node
	for p.isOp("@") {
		dec, err := p.parseDecorator()
		if err != nil {
			return nil, err
		}
		decorators = append(decorators, dec)
		for p.cur().Kind == TokenNewline {
			p.advance()
		}
	}

	switch {
	case p.isKeyword("def"):
		return p.parseFuncDef(startTokIdx, decorators, false)
	case p.isKeyword("async") && p.peekIsKeyword(1, "def"):
		p.advance()
		return p.parseFuncDef(startTokIdx, decorators, true)
	case p.isKeyword("class"):
		return p.parseClassDef(startTokIdx, decorators)
	case len(decorators) > 0:
		// Decorator applied to something other than def/class: recover.
		return p.skipStatement(startTokIdx), nil
	case p.isKeyword("import"):
		return p.parseImport(startTokIdx)
	case p.isKeyword("from"):
		return p.parseImportFrom(startTokIdx)
	case p.isKeyword("if"):
		return p.parseIf(startTokIdx)
	case p.isKeyword("for"):
		return p.parseFor(startTokIdx)
	case p.isKeyword("async") && p.peekIsKeyword(1, "for"):
		p.advance()
		return p.parseFor(startTokIdx)
	case p.isKeyword("while"):
		return p.parseWhile(startTokIdx)
	case p.isKeyword("with"):
		return p.parseWith(startTokIdx)
	case p.isKeyword("async") && p.peekIsKeyword(1, "with"):
		p.advance()
		return p.parseWith(startTokIdx)
	case p.isKeyword("try"):
		return p.parseTry(startTokIdx)
	case p.cur().Kind == TokenIndent || p.cur().Kind == TokenDedent:
		return nil, p.errorf("unexpected indentation")
	default:
		return p.parseSimpleStatement()
	}
}

func (p *parser) peekIsKeyword(offset int, s string) bool {
	idx := p.pos + offset
	if idx >= len(p.sig) {
		return false
	}
	t := p.snap.Tokens[p.sig[idx]]
	return t.Kind == TokenKeyword && p.text(t) == s
}

func (p *parser) parseDecorator() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	if err := p.expectOp("@"); err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.cur().Kind == TokenNewline {
		p.advance()
	}
	expr.FirstToken = start
	return expr, nil
}

// parseSimpleStatement parses one non-compound statement: assignment,
// expression statement, pass, return, or any other simple statement
// recognized opaquely.
func (p *parser) parseSimpleStatement() (*Node, *SyntaxError) {
	startTokIdx := p.curTokIdx()

	switch {
	case p.isKeyword("pass"):
		p.advance()
		node := p.newStmtNode(NodePass, startTokIdx, p.prevTokIdx())
		p.consumeSimpleTerminator()
		return node, nil

	case p.isKeyword("return"):
		p.advance()
		node := p.newStmtNode(NodeReturn, startTokIdx, 0)
		if !p.atStatementEnd() {
			val, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			node.Stmt.ReturnValue = val
		}
		node.LastToken = p.prevTokIdx()
		p.consumeSimpleTerminator()
		return node, nil

	case p.isKeyword("import"):
		return p.finishSimple(p.parseImport(startTokIdx))

	case p.isKeyword("from"):
		return p.finishSimple(p.parseImportFrom(startTokIdx))

	case p.isKeyword("raise"), p.isKeyword("del"), p.isKeyword("global"),
		p.isKeyword("nonlocal"), p.isKeyword("assert"), p.isKeyword("break"),
		p.isKeyword("continue"):
		// Simple statements no rule inspects: captured opaquely so the
		// statement extent is still known to the suppression engine.
		return p.parseOpaqueSimple(startTokIdx)

	default:
		return p.parseAssignOrExprStatement(startTokIdx)
	}
}

// parseOpaqueSimple consumes one simple statement through the end of its
// logical line (or a ';' separator) into a NodeOther.
func (p *parser) parseOpaqueSimple(startTokIdx int) (*Node, *SyntaxError) {
	for {
		switch {
		case p.cur().Kind == TokenNewline || p.cur().Kind == TokenEOF ||
			p.cur().Kind == TokenIndent || p.cur().Kind == TokenDedent || p.isOp(";"):
			node := p.newStmtNode(NodeOther, startTokIdx, p.prevTokIdx())
			p.consumeSimpleTerminator()
			return node, nil
		default:
			p.advance()
		}
	}
}

// finishSimple is used when a compound-looking parse (import/from) is
// reached from inside a simple-statement-list context (e.g. after ';').
func (p *parser) finishSimple(n *Node, err *SyntaxError) (*Node, *SyntaxError) {
	return n, err
}

func (p *parser) atStatementEnd() bool {
	switch p.cur().Kind {
	case TokenNewline, TokenEOF:
		return true
	}
	return p.isOp(";")
}

// consumeSimpleTerminator consumes the NEWLINE ending a simple statement
// when this statement was not part of a ';'-separated single-line suite.
func (p *parser) consumeSimpleTerminator() {
	if p.cur().Kind == TokenNewline {
		p.advance()
	}
}

func (p *parser) parseImport(startTokIdx int) (*Node, *SyntaxError) {
	if err := p.expectKeyword("import"); err != nil {
		return nil, err
	}
	node := p.newStmtNode(NodeImport, startTokIdx, 0)
	for {
		alias, err := p.parseDottedAlias()
		if err != nil {
			return nil, err
		}
		node.Stmt.Aliases = append(node.Stmt.Aliases, alias)
		if p.isOp(",") {
			p.advance()
			continue
		}
		break
	}
	node.LastToken = p.prevTokIdx()
	p.consumeSimpleTerminator()
	return node, nil
}

func (p *parser) parseDottedAlias() (*Alias, *SyntaxError) {
	nameTok := p.curTokIdx()
	name, err := p.parseDottedName()
	if err != nil {
		return nil, err
	}
	alias := &Alias{Name: name, NameTok: nameTok}
	if p.isKeyword("as") {
		p.advance()
		if p.cur().Kind != TokenName {
			return nil, p.errorf("expected name after 'as'")
		}
		alias.AsName = p.curText()
		p.advance()
	}
	return alias, nil
}

func (p *parser) parseDottedName() (string, *SyntaxError) {
	if p.cur().Kind != TokenName {
		return "", p.errorf("expected name, found '%s'", p.curText())
	}
	name := p.curText()
	p.advance()
	for p.isOp(".") {
		p.advance()
		if p.cur().Kind != TokenName {
			return "", p.errorf("expected name after '.'")
		}
		name += "." + p.curText()
		p.advance()
	}
	return name, nil
}

func (p *parser) parseImportFrom(startTokIdx int) (*Node, *SyntaxError) {
	if err := p.expectKeyword("from"); err != nil {
		return nil, err
	}
	node := p.newStmtNode(NodeImportFrom, startTokIdx, 0)

	level := 0
	for p.isOp(".") || p.isOp("...") {
		level += len(p.curText())
		p.advance()
	}
	node.Stmt.Level = level

	if !p.isKeyword("import") {
		module, err := p.parseDottedName()
		if err != nil {
			return nil, err
		}
		node.Stmt.Module = module
	}

	if err := p.expectKeyword("import"); err != nil {
		return nil, err
	}

	if p.isOp("*") {
		p.advance()
		node.Stmt.Aliases = append(node.Stmt.Aliases, &Alias{Name: "*"})
		node.LastToken = p.prevTokIdx()
		p.consumeSimpleTerminator()
		return node, nil
	}

	wrapped := p.isOp("(")
	if wrapped {
		p.advance()
	}
	for {
		nameTok := p.curTokIdx()
		if p.cur().Kind != TokenName {
			return nil, p.errorf("expected import name, found '%s'", p.curText())
		}
		name := p.curText()
		p.advance()
		alias := &Alias{Name: name, NameTok: nameTok}
		if p.isKeyword("as") {
			p.advance()
			if p.cur().Kind != TokenName {
				return nil, p.errorf("expected name after 'as'")
			}
			alias.AsName = p.curText()
			p.advance()
		}
		node.Stmt.Aliases = append(node.Stmt.Aliases, alias)
		if p.isOp(",") {
			p.advance()
			if wrapped && p.isOp(")") {
				break
			}
			continue
		}
		break
	}
	if wrapped {
		if err := p.expectOp(")"); err != nil {
			return nil, err
		}
	}
	node.LastToken = p.prevTokIdx()
	p.consumeSimpleTerminator()
	return node, nil
}

func (p *parser) parseFuncDef(startTokIdx int, decorators []*Node, isAsync bool) (*Node, *SyntaxError) {
	if err := p.expectKeyword("def"); err != nil {
		return nil, err
	}
	kind := NodeFunctionDef
	if isAsync {
		kind = NodeAsyncFunctionDef
	}
	node := p.newStmtNode(kind, startTokIdx, 0)
	node.Stmt.Decorators = decorators

	if p.cur().Kind != TokenName {
		return nil, p.errorf("expected function name, found '%s'", p.curText())
	}
	node.Stmt.Name = p.curText()
	p.advance()

	if err := p.expectOp("("); err != nil {
		return nil, err
	}
	params, err := p.parseParams()
	if err != nil {
		return nil, err
	}
	node.Stmt.Params = params
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}

	if p.isOp("->") {
		p.advance()
		ret, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Stmt.Returns = ret
	}

	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Stmt.Body = body
	node.LastToken = p.prevTokIdx()
	return node, nil
}

// parseParams parses a parenthesized parameter list up to (but not
// including) the closing ')'.
func (p *parser) parseParams() (*Params, *SyntaxError) {
	params := &Params{}
	seenStar := false
	seenSlash := false

	for !p.isOp(")") {
		if p.isOp("/") {
			p.advance()
			seenSlash = true
			if seenSlash {
				params.PosOnly = append(params.PosOnly, params.Args...)
				params.Args = nil
			}
			if p.isOp(",") {
				p.advance()
			}
			continue
		}
		if p.isOp("*") && !p.peekOpAt(1, "*") {
			p.advance()
			seenStar = true
			if p.cur().Kind == TokenName {
				param, err := p.parseOneParam()
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
			param, err := p.parseOneParam()
			if err != nil {
				return nil, err
			}
			params.Kwarg = param
			if p.isOp(",") {
				p.advance()
			}
			continue
		}

		param, err := p.parseOneParam()
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

func (p *parser) peekOpAt(offset int, s string) bool {
	idx := p.pos + offset
	if idx >= len(p.sig) {
		return false
	}
	t := p.snap.Tokens[p.sig[idx]]
	return t.Kind == TokenOp && p.text(t) == s
}

func (p *parser) parseOneParam() (*Param, *SyntaxError) {
	if p.cur().Kind != TokenName {
		return nil, p.errorf("expected parameter name, found '%s'", p.curText())
	}
	param := &Param{Name: p.curText(), NameToken: p.curTokIdx()}
	p.advance()
	if p.isOp(":") {
		p.advance()
		ann, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		param.Annotation = ann
	}
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

func (p *parser) parseClassDef(startTokIdx int, decorators []*Node) (*Node, *SyntaxError) {
	if err := p.expectKeyword("class"); err != nil {
		return nil, err
	}
	node := p.newStmtNode(NodeClassDef, startTokIdx, 0)
	node.Stmt.Decorators = decorators

	if p.cur().Kind != TokenName {
		return nil, p.errorf("expected class name, found '%s'", p.curText())
	}
	node.Stmt.Name = p.curText()
	p.advance()

	if p.isOp("(") {
		p.advance()
		for !p.isOp(")") {
			if p.isOp("**") || p.isOp("*") {
				p.advance()
			}
			// Skip a possible `name=` keyword-argument form for base args.
			if p.cur().Kind == TokenName && p.peekOpAt(1, "=") && !p.peekOpAt(1, "==") {
				p.advance()
				p.advance()
			}
			base, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			node.Stmt.Bases = append(node.Stmt.Bases, base)
			if p.isOp(",") {
				p.advance()
				continue
			}
			break
		}
		if err := p.expectOp(")"); err != nil {
			return nil, err
		}
	}

	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Stmt.Body = body
	node.LastToken = p.prevTokIdx()
	return node, nil
}

func (p *parser) parseIf(startTokIdx int) (*Node, *SyntaxError) {
	if err := p.expectKeyword("if"); err != nil {
		return nil, err
	}
	node := p.newStmtNode(NodeIf, startTokIdx, 0)
	test, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	node.Stmt.Test = test
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Stmt.Body = body

	if p.isKeyword("elif") {
		// Re-synthesize as a nested if: treat "elif" identically to "if".
		elifNode, err := p.parseIfAsElif(p.curTokIdx())
		if err != nil {
			return nil, err
		}
		node.Stmt.OrElse = []*Node{elifNode}
	} else if p.isKeyword("else") {
		p.advance()
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		orelse, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Stmt.OrElse = orelse
	}
	node.LastToken = p.prevTokIdx()
	return node, nil
}

// parseIfAsElif parses an "elif" clause (current token) as an If node.
func (p *parser) parseIfAsElif(startTokIdx int) (*Node, *SyntaxError) {
	// current token is "elif"; consume it directly rather than via expectKeyword("if").
	p.advance()
	node := p.newStmtNode(NodeIf, startTokIdx, 0)
	test, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	node.Stmt.Test = test
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Stmt.Body = body

	if p.isKeyword("elif") {
		nextStart := p.curTokIdx()
		nested, err := p.parseIfAsElif(nextStart)
		if err != nil {
			return nil, err
		}
		node.Stmt.OrElse = []*Node{nested}
	} else if p.isKeyword("else") {
		p.advance()
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		orelse, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Stmt.OrElse = orelse
	}
	node.LastToken = p.prevTokIdx()
	return node, nil
}

func (p *parser) parseTry(startTokIdx int) (*Node, *SyntaxError) {
	if err := p.expectKeyword("try"); err != nil {
		return nil, err
	}
	node := p.newStmtNode(NodeTry, startTokIdx, 0)
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Stmt.Body = body

	for p.isKeyword("except") {
		p.advance()
		if p.isOp("*") {
			p.advance() // except* (exception groups)
		}
		handler := &Handler{}
		if !p.isOp(":") {
			typ, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			handler.Type = typ
			if p.isKeyword("as") {
				p.advance()
				if p.cur().Kind != TokenName {
					return nil, p.errorf("expected name after 'as'")
				}
				handler.Name = p.curText()
				p.advance()
			}
		}
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		hbody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		handler.Body = hbody
		node.Stmt.Handlers = append(node.Stmt.Handlers, handler)
	}

	if p.isKeyword("else") {
		p.advance()
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		orelse, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Stmt.OrElse = orelse
	}

	if p.isKeyword("finally") {
		p.advance()
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		fbody, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Stmt.Finally = fbody
	}

	node.LastToken = p.prevTokIdx()
	return node, nil
}

// parseFor parses `for TARGETS in ITER: BODY [else: ORELSE]`. Loop targets
// are parsed without comparison operators so the `in` keyword terminates
// the target list instead of being consumed as a membership test.
func (p *parser) parseFor(startTokIdx int) (*Node, *SyntaxError) {
	if err := p.expectKeyword("for"); err != nil {
		return nil, err
	}
	node := p.newStmtNode(NodeFor, startTokIdx, 0)

	target, err := p.parseTargetList()
	if err != nil {
		return nil, err
	}
	node.Stmt.Targets = []*Node{target}

	if err := p.expectKeyword("in"); err != nil {
		return nil, err
	}
	iter, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	node.Stmt.Value = iter

	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Stmt.Body = body

	if p.isKeyword("else") {
		p.advance()
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		orelse, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Stmt.OrElse = orelse
	}
	node.LastToken = p.prevTokIdx()
	return node, nil
}

func (p *parser) parseWhile(startTokIdx int) (*Node, *SyntaxError) {
	if err := p.expectKeyword("while"); err != nil {
		return nil, err
	}
	node := p.newStmtNode(NodeWhile, startTokIdx, 0)

	test, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	node.Stmt.Test = test

	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Stmt.Body = body

	if p.isKeyword("else") {
		p.advance()
		if err := p.expectOp(":"); err != nil {
			return nil, err
		}
		orelse, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		node.Stmt.OrElse = orelse
	}
	node.LastToken = p.prevTokIdx()
	return node, nil
}

// parseWith parses `with ITEM [as TARGET] [, ITEM [as TARGET]]*: BODY`.
// Items land in Stmt.Items; each `as` binding (or nil) lands in the
// co-indexed Stmt.Targets slot.
func (p *parser) parseWith(startTokIdx int) (*Node, *SyntaxError) {
	if err := p.expectKeyword("with"); err != nil {
		return nil, err
	}
	node := p.newStmtNode(NodeWith, startTokIdx, 0)

	for {
		item, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node.Stmt.Items = append(node.Stmt.Items, item)

		var target *Node
		if p.isKeyword("as") {
			p.advance()
			target, err = p.parseTargetAtom()
			if err != nil {
				return nil, err
			}
		}
		node.Stmt.Targets = append(node.Stmt.Targets, target)

		if p.isOp(",") {
			p.advance()
			continue
		}
		break
	}

	if err := p.expectOp(":"); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	node.Stmt.Body = body
	node.LastToken = p.prevTokIdx()
	return node, nil
}

// parseTargetList parses a comma-separated assignment-target list (names,
// attributes, subscripts, starred targets), wrapping multiple targets in a
// NodeTuple. It never consumes comparison operators.
func (p *parser) parseTargetList() (*Node, *SyntaxError) {
	start := p.curTokIdx()
	first, err := p.parseTargetAtom()
	if err != nil {
		return nil, err
	}
	if !p.isOp(",") {
		return first, nil
	}
	elts := []*Node{first}
	for p.isOp(",") {
		p.advance()
		if p.isKeyword("in") || p.isOp(":") {
			break
		}
		e, err := p.parseTargetAtom()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	node := p.newExprNode(NodeTuple, start, p.prevTokIdx())
	node.Expr.Elts = elts
	return node, nil
}

func (p *parser) parseTargetAtom() (*Node, *SyntaxError) {
	if p.isOp("*") {
		start := p.curTokIdx()
		p.advance()
		v, err := p.parsePostfix()
		if err != nil {
			return nil, err
		}
		node := p.newExprNode(NodeStarred, start, p.prevTokIdx())
		node.Expr.Value = v
		return node, nil
	}
	return p.parsePostfix()
}

// parseAssignOrExprStatement parses assignment (=, augmented, annotated)
// and plain expression statements, since all share an expression prefix.
func (p *parser) parseAssignOrExprStatement(startTokIdx int) (*Node, *SyntaxError) {
	first, err := p.parseExprList()
	if err != nil {
		return nil, err
	}

	if p.isOp(":") && !isTupleNode(first) {
		p.advance()
		ann, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		node := p.newStmtNode(NodeAnnAssign, startTokIdx, 0)
		node.Stmt.Targets = []*Node{first}
		node.Stmt.Annotation = ann
		if p.isOp("=") {
			p.advance()
			val, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			node.Stmt.Value = val
		}
		node.LastToken = p.prevTokIdx()
		p.consumeTerminatorSimple()
		return node, nil
	}

	if augOp, ok := p.curAugAssignOp(); ok {
		p.advance()
		node := p.newStmtNode(NodeAugAssign, startTokIdx, 0)
		node.Stmt.Targets = []*Node{first}
		node.Stmt.AugOp = augOp
		val, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		node.Stmt.Value = val
		node.LastToken = p.prevTokIdx()
		p.consumeTerminatorSimple()
		return node, nil
	}

	if p.isOp("=") {
		node := p.newStmtNode(NodeAssign, startTokIdx, 0)
		node.Stmt.Targets = []*Node{first}
		for p.isOp("=") {
			p.advance()
			val, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			node.Stmt.Value = val
			if p.isOp("=") {
				node.Stmt.Targets = append(node.Stmt.Targets, node.Stmt.Value)
			}
		}
		node.LastToken = p.prevTokIdx()
		p.consumeTerminatorSimple()
		return node, nil
	}

	node := p.newStmtNode(NodeExprStmt, startTokIdx, p.prevTokIdx())
	node.Stmt.ExprValue = first
	p.consumeTerminatorSimple()
	return node, nil
}

func (p *parser) consumeTerminatorSimple() {
	if p.cur().Kind == TokenNewline {
		p.advance()
	}
}

func isTupleNode(n *Node) bool {
	return n != nil && n.Kind == NodeTuple
}

var augAssignOps = []string{"+=", "-=", "*=", "/=", "//=", "%=", "**=", "&=", "|=", "^=", ">>=", "<<=", "@="}

func (p *parser) curAugAssignOp() (string, bool) {
	if p.cur().Kind != TokenOp {
		return "", false
	}
	s := p.curText()
	for _, op := range augAssignOps {
		if s == op {
			return op, true
		}
	}
	return "", false
}
