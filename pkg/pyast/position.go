package pyast

// SourceRange is a half-open byte range into a FileSnapshot's content.
type SourceRange struct {
	StartOffset int
	EndOffset   int
}

// Len returns the length of the range in bytes.
func (r SourceRange) Len() int {
	return r.EndOffset - r.StartOffset
}

// IsEmpty reports whether the range spans zero bytes.
func (r SourceRange) IsEmpty() bool {
	return r.StartOffset == r.EndOffset
}

// Contains reports whether offset falls within the range.
func (r SourceRange) Contains(offset int) bool {
	return offset >= r.StartOffset && offset < r.EndOffset
}

// Position is a single 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether the position has sane (positive) coordinates.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// SourcePosition is a 1-based line/column span used for diagnostics.
type SourcePosition struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// Start returns the starting Position.
func (p SourcePosition) Start() Position {
	return Position{Line: p.StartLine, Column: p.StartColumn}
}

// End returns the ending Position.
func (p SourcePosition) End() Position {
	return Position{Line: p.EndLine, Column: p.EndColumn}
}

// IsValid reports whether both endpoints are valid and ordered.
func (p SourcePosition) IsValid() bool {
	return p.Start().IsValid() && p.End().IsValid()
}

// IsSingleLine reports whether the span is confined to one line.
func (p SourcePosition) IsSingleLine() bool {
	return p.StartLine == p.EndLine
}

// SourceRange derives the node's byte range from its token span.
func (n *Node) SourceRange() SourceRange {
	if n == nil || n.FirstToken < 0 || n.LastToken < 0 || n.File == nil {
		return SourceRange{}
	}
	toks := n.File.Tokens
	if n.FirstToken >= len(toks) || n.LastToken >= len(toks) {
		return SourceRange{}
	}
	return SourceRange{
		StartOffset: toks[n.FirstToken].StartOffset,
		EndOffset:   toks[n.LastToken].EndOffset,
	}
}

// SourcePosition derives the node's line/column span from its token span.
func (n *Node) SourcePosition() SourcePosition {
	if n == nil || n.FirstToken < 0 || n.LastToken < 0 || n.File == nil {
		return SourcePosition{}
	}
	toks := n.File.Tokens
	if n.FirstToken >= len(toks) || n.LastToken >= len(toks) {
		return SourcePosition{}
	}
	start := toks[n.FirstToken]
	end := toks[n.LastToken]
	return SourcePosition{
		StartLine:   start.StartLine,
		StartColumn: start.StartCol,
		EndLine:     end.EndLine,
		EndColumn:   end.EndCol,
	}
}

// Text returns the node's exact source text.
func (n *Node) Text() string {
	if n == nil || n.File == nil {
		return ""
	}
	r := n.SourceRange()
	if r.StartOffset < 0 || r.EndOffset > len(n.File.Content) {
		return ""
	}
	return string(n.File.Content[r.StartOffset:r.EndOffset])
}
