package pyast

// FileSnapshot is the lossless, co-indexed representation of one parsed
// file: its raw bytes, a line index, the full token stream, and the root
// of the parsed tree.
type FileSnapshot struct {
	Path    string
	Content []byte
	Lines   []LineInfo
	Tokens  []Token
	Root    *Node
}

// NewFileSnapshot builds a FileSnapshot's line index from content. Tokens
// and Root are filled in by the lexer and parser respectively.
func NewFileSnapshot(path string, content []byte) *FileSnapshot {
	return &FileSnapshot{
		Path:    path,
		Content: content,
		Lines:   BuildLines(content),
	}
}
