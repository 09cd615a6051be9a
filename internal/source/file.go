package source

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"
)

// File holds the one in-memory snippet the explorer works on, plus the
// line index needed to resolve byte offsets to line numbers.
type File struct {
	Name    string
	Content []byte
	lineIdx []uint32 // byte offset of each line start, lineIdx[0] == 0
}

// NewFile normalizes CRLF line endings, strips a UTF-8 BOM, and builds the
// line index.
func NewFile(name string, content []byte) *File {
	content = bytes.TrimPrefix(content, []byte{0xEF, 0xBB, 0xBF})
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return &File{
		Name:    name,
		Content: content,
		lineIdx: buildLineIndex(content),
	}
}

// buildLineIndex records the byte offset of every line start.
func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 1, 16)
	idx[0] = 0
	for off, b := range content {
		if b == '\n' {
			next, err := safecast.Conv[uint32](off + 1)
			if err != nil {
				panic(fmt.Errorf("line offset overflow: %w", err))
			}
			idx = append(idx, next)
		}
	}
	return idx
}

// LineCount returns the number of lines, counting a trailing line only when
// it has content.
func (f *File) LineCount() int {
	n := len(f.lineIdx)
	if n > 1 && int(f.lineIdx[n-1]) == len(f.Content) {
		return n - 1
	}
	return n
}

// LineFor returns the 1-based line containing the byte offset.
func (f *File) LineFor(off uint32) int {
	// binary search over line starts
	lo, hi := 0, len(f.lineIdx)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if f.lineIdx[mid] <= off {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo + 1
}

// LineSpan returns the byte span of the 1-based line, excluding the newline.
func (f *File) LineSpan(line int) Span {
	if line < 1 || line > len(f.lineIdx) {
		return Span{}
	}
	start := f.lineIdx[line-1]
	end, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if line < len(f.lineIdx) {
		end = f.lineIdx[line] - 1
	}
	return Span{Start: start, End: end}
}

// LineText returns the text of the 1-based line without the newline.
func (f *File) LineText(line int) string {
	sp := f.LineSpan(line)
	return string(f.Content[sp.Start:sp.End])
}

// Text returns the source slice covered by the span.
func (f *File) Text(sp Span) string {
	return string(f.Content[sp.Start:sp.End])
}
