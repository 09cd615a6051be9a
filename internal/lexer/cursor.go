package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"stagehand/internal/source"
)

// Cursor is a byte position inside a source file.
type Cursor struct {
	File *source.File
	Off  uint32
}

// NewCursor creates a cursor at the start of the file.
func NewCursor(f *source.File) Cursor {
	return Cursor{File: f, Off: 0}
}

func (c *Cursor) limit() uint32 {
	n, err := safecast.Conv[uint32](len(c.File.Content))
	if err != nil {
		panic(fmt.Errorf("file content overflow: %w", err))
	}
	return n
}

// EOF reports whether the cursor is past the last byte.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 returns the current and next byte when both exist.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit() {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// Bump advances the cursor one byte and returns the byte read.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// Mark records the current offset for SpanFrom.
func (c *Cursor) Mark() uint32 {
	return c.Off
}

// SpanFrom builds a span from a mark to the current offset.
func (c *Cursor) SpanFrom(mark uint32) source.Span {
	return source.Span{Start: mark, End: c.Off}
}
