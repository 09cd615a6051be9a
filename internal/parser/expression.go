package parser

import (
	"fmt"
	"strconv"

	"stagehand/internal/ast"
	"stagehand/internal/diag"
	"stagehand/internal/token"
)

// binaryPrec returns the precedence of a binary operator token, or -1.
func binaryPrec(k token.Kind) int {
	switch k {
	case token.Plus, token.Minus:
		return 1
	case token.Star, token.Slash, token.Percent:
		return 2
	default:
		return -1
	}
}

func binaryOp(k token.Kind) ast.BinaryOp {
	switch k {
	case token.Plus:
		return ast.BinAdd
	case token.Minus:
		return ast.BinSub
	case token.Star:
		return ast.BinMul
	case token.Slash:
		return ast.BinDiv
	default:
		return ast.BinMod
	}
}

func (p *Parser) parseExpr() (ast.Expr, bool) {
	return p.parseBinaryExpr(0)
}

// parseBinaryExpr implements precedence climbing; all operators are
// left-associative.
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnaryExpr()
	if !ok {
		return nil, false
	}
	return p.parseBinaryFrom(left, minPrec)
}

// parseBinaryFrom continues the operator loop with an already parsed left
// operand.
func (p *Parser) parseBinaryFrom(left ast.Expr, minPrec int) (ast.Expr, bool) {
	for {
		tok := p.lx.Peek()
		prec := binaryPrec(tok.Kind)
		if prec < 0 || prec < minPrec {
			return left, true
		}

		opTok := p.advance()
		right, ok := p.parseBinaryExpr(prec + 1)
		if !ok {
			p.err(diag.SynExpectExpression, opTok.Span,
				fmt.Sprintf("expected expression after %q", opTok.Text))
			return nil, false
		}

		left = &ast.Binary{
			NodeSpan: left.Span().Cover(right.Span()),
			Op:       binaryOp(opTok.Kind),
			X:        left,
			Y:        right,
		}
	}
}

func (p *Parser) parseUnaryExpr() (ast.Expr, bool) {
	tok := p.lx.Peek()
	if tok.Kind == token.Minus {
		opTok := p.advance()
		x, ok := p.parseUnaryExpr()
		if !ok {
			return nil, false
		}
		return &ast.Unary{
			NodeSpan: opTok.Span.Cover(x.Span()),
			Op:       ast.UnaryNeg,
			X:        x,
		}, true
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.IntLit, token.FloatLit:
		lit := p.advance()
		return p.numberLit(lit)
	case token.Ident:
		ident := p.advance()
		return p.parsePostfix(ident)
	case token.LParen:
		open := p.advance()
		inner, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		closing := p.lx.Peek()
		if closing.Kind != token.RParen {
			p.err(diag.SynExpectToken, open.Span, "unclosed '('")
			return nil, false
		}
		p.advance()
		return inner, true
	default:
		p.err(diag.SynExpectExpression, tok.Span,
			fmt.Sprintf("expected expression, found %s", tok.Kind))
		return nil, false
	}
}

// parsePostfix builds the expression beginning with an already consumed
// identifier: a call when '(' follows, a plain name otherwise.
func (p *Parser) parsePostfix(ident token.Token) (ast.Expr, bool) {
	if p.lx.Peek().Kind != token.LParen {
		return &ast.Name{NodeSpan: ident.Span, Ident: ident.Text}, true
	}
	p.advance() // '('

	var args []ast.Expr
	if p.lx.Peek().Kind != token.RParen {
		for {
			arg, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			args = append(args, arg)
			if p.lx.Peek().Kind != token.Comma {
				break
			}
			p.advance()
		}
	}

	closing := p.lx.Peek()
	if closing.Kind != token.RParen {
		p.err(diag.SynExpectToken, closing.Span,
			fmt.Sprintf("expected ')', found %s", closing.Kind))
		return nil, false
	}
	closeTok := p.advance()

	return &ast.Call{
		NodeSpan: ident.Span.Cover(closeTok.Span),
		Callee:   ident.Text,
		Args:     args,
	}, true
}

func (p *Parser) numberLit(lit token.Token) (ast.Expr, bool) {
	if lit.Kind == token.FloatLit {
		v, err := strconv.ParseFloat(lit.Text, 64)
		if err != nil {
			p.err(diag.SynExpectExpression, lit.Span,
				fmt.Sprintf("bad float literal %q", lit.Text))
			return nil, false
		}
		return &ast.NumberLit{NodeSpan: lit.Span, Text: lit.Text, IsFloat: true, Float: v}, true
	}
	v, err := strconv.ParseInt(lit.Text, 10, 64)
	if err != nil {
		p.err(diag.SynExpectExpression, lit.Span,
			fmt.Sprintf("bad integer literal %q", lit.Text))
		return nil, false
	}
	return &ast.NumberLit{NodeSpan: lit.Span, Text: lit.Text, Int: v}, true
}
