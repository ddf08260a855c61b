package pyast

import (
	"fmt"
	"unicode/utf8"
)

// SyntaxError describes why a file could not be parsed. Position is
// clamped into the valid range of the file's lines so callers can always
// safely index source_lines with it.
type SyntaxError struct {
	Line       int
	Column     int
	Message    string
	SourceLine string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// ParseResult is the tagged-union outcome of Parse: exactly one of File or
// Err is populated.
type ParseResult struct {
	File *FileSnapshot
	Err  *SyntaxError
}

// Parse lexes and parses content into a ParseResult. A decode or grammar
// failure never panics; it is reported as Err with a position clamped to
// the file's bounds.
func Parse(path string, content []byte) *ParseResult {
	if !utf8.Valid(content) {
		return &ParseResult{Err: &SyntaxError{Line: 1, Column: 1, Message: "source is not valid UTF-8"}}
	}
	snap := NewFileSnapshot(path, content)
	snap.Tokens = Lex(content)
	if !ValidateTokens(snap.Tokens, len(content)) {
		return &ParseResult{Err: &SyntaxError{Line: 1, Column: 1, Message: "internal error: lexer produced a malformed token stream"}}
	}

	p := newParser(snap)
	root, err := p.parseModule()
	if err != nil {
		line := err.Line
		if line < 1 {
			line = 1
		}
		if line > len(snap.Lines) {
			line = len(snap.Lines)
		}
		col := err.Column
		if col < 1 {
			col = 1
		}
		srcLine := ""
		if line >= 1 && line <= len(snap.Lines) {
			srcLine = string(snap.LineContent(line))
		}
		return &ParseResult{Err: &SyntaxError{Line: line, Column: col, Message: err.Message, SourceLine: srcLine}}
	}
	snap.Root = root
	return &ParseResult{File: snap}
}

// parser implements a pragmatic recursive-descent parser over the
// significant token stream (NL and Comment tokens are trivia and skipped).
type parser struct {
	snap    *FileSnapshot
	content []byte
	sig     []int // indices into snap.Tokens of non-trivia tokens
	pos     int
}

func newParser(snap *FileSnapshot) *parser {
	p := &parser{snap: snap, content: snap.Content}
	for i, t := range snap.Tokens {
		switch t.Kind {
		case TokenNL, TokenComment:
		default:
			p.sig = append(p.sig, i)
		}
	}
	return p
}

func (p *parser) cur() Token {
	if p.pos >= len(p.sig) {
		return p.snap.Tokens[len(p.snap.Tokens)-1]
	}
	return p.snap.Tokens[p.sig[p.pos]]
}

func (p *parser) curTokIdx() int {
	if p.pos >= len(p.sig) {
		return len(p.snap.Tokens) - 1
	}
	return p.sig[p.pos]
}

func (p *parser) prevTokIdx() int {
	if p.pos == 0 {
		return p.sig[0]
	}
	return p.sig[p.pos-1]
}

func (p *parser) text(t Token) string {
	return t.Text(p.content)
}

func (p *parser) curText() string {
	return p.text(p.cur())
}

func (p *parser) atEOF() bool {
	return p.cur().Kind == TokenEOF
}

func (p *parser) advance() Token {
	t := p.cur()
	if p.pos < len(p.sig) {
		p.pos++
	}
	return t
}

func (p *parser) isOp(s string) bool {
	t := p.cur()
	return t.Kind == TokenOp && p.text(t) == s
}

func (p *parser) isKeyword(s string) bool {
	t := p.cur()
	return t.Kind == TokenKeyword && p.text(t) == s
}

func (p *parser) errorf(format string, args ...any) *SyntaxError {
	t := p.cur()
	return &SyntaxError{Line: t.StartLine, Column: t.StartCol, Message: fmt.Sprintf(format, args...)}
}

func (p *parser) expectOp(s string) *SyntaxError {
	if !p.isOp(s) {
		return p.errorf("expected '%s', found '%s'", s, p.curText())
	}
	p.advance()
	return nil
}

func (p *parser) expectKeyword(s string) *SyntaxError {
	if !p.isKeyword(s) {
		return p.errorf("expected '%s', found '%s'", s, p.curText())
	}
	p.advance()
	return nil
}

// skipStatement recovers from an unrecognized statement shape by consuming
// tokens through the end of its logical line (or block, if it opens one),
// wrapping them in an opaque NodeOther so parsing can continue.
func (p *parser) skipStatement(startTokIdx int) *Node {
	depth := 0
	for {
		t := p.cur()
		switch t.Kind {
		case TokenEOF:
			return p.newStmtNode(NodeOther, startTokIdx, p.prevTokIdx())
		case TokenNewline:
			if depth == 0 {
				end := p.prevTokIdx()
				p.advance()
				return p.newStmtNode(NodeOther, startTokIdx, end)
			}
			p.advance()
		case TokenIndent:
			depth++
			p.advance()
		case TokenDedent:
			if depth == 0 {
				return p.newStmtNode(NodeOther, startTokIdx, p.prevTokIdx())
			}
			depth--
			p.advance()
		default:
			p.advance()
		}
	}
}

func (p *parser) newStmtNode(kind NodeKind, first, last int) *Node {
	return &Node{Kind: kind, FirstToken: first, LastToken: last, File: p.snap, Stmt: &StmtAttrs{}}
}

func (p *parser) newExprNode(kind NodeKind, first, last int) *Node {
	return &Node{Kind: kind, FirstToken: first, LastToken: last, File: p.snap, Expr: &ExprAttrs{}}
}

// parseModule parses the entire token stream as a module body.
func (p *parser) parseModule() (*Node, *SyntaxError) {
	root := p.newStmtNode(NodeModule, 0, 0)
	root.Stmt.Body = nil

	for !p.atEOF() {
		if p.cur().Kind == TokenNewline || p.cur().Kind == TokenIndent || p.cur().Kind == TokenDedent {
			p.advance()
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if stmt != nil {
			root.Stmt.Body = append(root.Stmt.Body, stmt)
		}
	}
	root.LastToken = p.prevTokIdx()
	return root, nil
}

// parseBlock parses an indented suite: NEWLINE INDENT stmt+ DEDENT, or a
// simple single-line suite of `:` stmt_list NEWLINE.
func (p *parser) parseBlock() ([]*Node, *SyntaxError) {
	if p.cur().Kind == TokenNewline {
		p.advance()
		if p.cur().Kind != TokenIndent {
			return nil, p.errorf("expected an indented block")
		}
		p.advance()
		var body []*Node
		for p.cur().Kind != TokenDedent && p.cur().Kind != TokenEOF {
			if p.cur().Kind == TokenNewline {
				p.advance()
				continue
			}
			stmt, err := p.parseStatement()
			if err != nil {
				return nil, err
			}
			if stmt != nil {
				body = append(body, stmt)
			}
		}
		if p.cur().Kind == TokenDedent {
			p.advance()
		}
		return body, nil
	}
	// Single-line suite: one or more simple statements separated by ';'.
	var body []*Node
	for {
		stmt, err := p.parseSimpleStatement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt)
		if p.isOp(";") {
			p.advance()
			if p.cur().Kind == TokenNewline || p.cur().Kind == TokenEOF {
				break
			}
			continue
		}
		break
	}
	if p.cur().Kind == TokenNewline {
		p.advance()
	}
	return body, nil
}

func isDunder(name string) bool {
	return len(name) > 4 && name[:2] == "__" && name[len(name)-2:] == "__"
}

func isPrivate(name string) bool {
	return len(name) > 0 && name[0] == '_' && !isDunder(name)
}
