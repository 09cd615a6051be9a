package lexer

import (
	"fmt"

	"stagehand/internal/diag"
	"stagehand/internal/token"
)

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// scanIdent scans an identifier. Token.Text is the exact source slice.
func (lx *Lexer) scanIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.Ident, Span: sp, Text: lx.file.Text(sp)}
}

// scanNumber scans decimal integers and floats: 123, 1.5, .5, 1e-3.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '.' {
		kind = token.FloatLit
		lx.cursor.Bump()
	}
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	if kind == token.IntLit && lx.cursor.Peek() == '.' {
		kind = token.FloatLit
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	// exponent part
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		_, b1, ok := lx.cursor.Peek2()
		if ok && (isDec(b1) || b1 == '+' || b1 == '-') {
			kind = token.FloatLit
			lx.cursor.Bump() // e
			if b := lx.cursor.Peek(); b == '+' || b == '-' {
				lx.cursor.Bump()
			}
			if !isDec(lx.cursor.Peek()) {
				sp := lx.cursor.SpanFrom(start)
				lx.report(diag.LexBadNumber, sp, "expected digit in exponent")
				return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Text(sp)}
			}
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	// a literal immediately followed by an identifier character is malformed
	if isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexBadNumber, sp, fmt.Sprintf("malformed number %q", lx.file.Text(sp)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.file.Text(sp)}
}

// scanOperatorOrPunct scans single-byte operators and punctuation.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	ch := lx.cursor.Bump()

	var kind token.Kind
	switch ch {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '=':
		kind = token.Assign
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case ',':
		kind = token.Comma
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.report(diag.LexBadChar, sp, fmt.Sprintf("unexpected character %q", string(ch)))
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Text(sp)}
	}

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.file.Text(sp)}
}
