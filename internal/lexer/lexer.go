package lexer

import (
	"stagehand/internal/diag"
	"stagehand/internal/source"
	"stagehand/internal/token"
)

// Options configures a Lexer.
type Options struct {
	Reporter diag.Reporter
}

// Lexer produces tokens for the mini language: identifiers, numeric
// literals, arithmetic operators, parens, and statement terminators.
// '#' starts a comment that runs to end of line.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1-token lookahead buffer
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		look:   nil,
	}
}

// Next returns the next token. After EOF it always returns EOF.
// Consecutive newlines (and ';') collapse into a single Newline token.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipBlanks()

	if lx.cursor.EOF() {
		return token.Token{
			Kind: token.EOF,
			Span: lx.cursor.SpanFrom(lx.cursor.Off),
			Text: "",
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '\n' || ch == ';':
		return lx.scanNewline()
	case isIdentStartByte(ch):
		return lx.scanIdent()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && lx.isNumberAfterDot():
		return lx.scanNumber()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipBlanks consumes spaces, tabs, and comments, but not newlines.
func (lx *Lexer) skipBlanks() {
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r':
			lx.cursor.Bump()
		case '#':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

// scanNewline consumes a run of terminators as one Newline token.
func (lx *Lexer) scanNewline() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\n' || ch == ';' {
			lx.cursor.Bump()
			lx.skipBlanks()
			continue
		}
		break
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Newline, Span: sp, Text: "\n"}
}

func (lx *Lexer) isNumberAfterDot() bool {
	b0, b1, ok := lx.cursor.Peek2()
	return ok && b0 == '.' && isDec(b1)
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg)
	}
}
