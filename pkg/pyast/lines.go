package pyast

import "sort"

// LineInfo describes the byte extent of a single source line.
type LineInfo struct {
	// StartOffset is the byte offset of the first character of the line.
	StartOffset int

	// NewlineStart is the byte offset where the line's terminating newline
	// begins (equal to EndOffset for the final line if it has no terminator).
	NewlineStart int

	// EndOffset is the byte offset one past the line's terminator.
	EndOffset int
}

// BuildLines splits content into LineInfo records, tolerating LF and CRLF.
// The split is lossless: joining the raw slices between StartOffset and
// EndOffset reproduces content exactly.
func BuildLines(content []byte) []LineInfo {
	var lines []LineInfo
	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			newlineStart := i
			if i > start && content[i-1] == '\r' {
				newlineStart = i - 1
			}
			lines = append(lines, LineInfo{
				StartOffset:  start,
				NewlineStart: newlineStart,
				EndOffset:    i + 1,
			})
			start = i + 1
		}
	}
	if start <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  start,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}
	if len(lines) == 0 {
		lines = []LineInfo{{0, 0, 0}}
	}
	return lines
}

// LineCount returns the number of lines in the snapshot.
func (f *FileSnapshot) LineCount() int {
	return len(f.Lines)
}

// LineAt returns the 1-based line and column for a byte offset.
func (f *FileSnapshot) LineAt(offset int) (line, col int) {
	if offset < 0 {
		offset = 0
	}
	n := len(f.Lines)
	idx := sort.Search(n, func(i int) bool {
		return f.Lines[i].EndOffset > offset || (i == n-1 && offset >= f.Lines[i].StartOffset)
	})
	if idx >= n {
		idx = n - 1
	}
	li := f.Lines[idx]
	col = offset - li.StartOffset + 1
	if col < 1 {
		col = 1
	}
	return idx + 1, col
}

// Offset converts a 1-based line/column back to a byte offset.
func (f *FileSnapshot) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(f.Lines) {
		return 0, false
	}
	li := f.Lines[line-1]
	offset := li.StartOffset + (col - 1)
	if offset < li.StartOffset || offset > li.NewlineStart {
		return 0, false
	}
	return offset, true
}

// LineContent returns the raw bytes of a 1-based line, excluding its
// terminator.
func (f *FileSnapshot) LineContent(line int) []byte {
	if line < 1 || line > len(f.Lines) {
		return nil
	}
	li := f.Lines[line-1]
	return f.Content[li.StartOffset:li.NewlineStart]
}
