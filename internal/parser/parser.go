// Package parser turns a token stream into the mini language AST.
// Grammar:
//
//	program := stmt*
//	stmt    := Ident '=' expr | expr
//	expr    := unary (binop expr)*   (precedence climbing)
//	unary   := '-' unary | primary
//	primary := Number | Ident | Ident '(' args ')' | '(' expr ')'
//
// Statements are terminated by newlines or ';'.
package parser

import (
	"fmt"

	"stagehand/internal/ast"
	"stagehand/internal/diag"
	"stagehand/internal/lexer"
	"stagehand/internal/source"
	"stagehand/internal/token"
)

type Parser struct {
	lx   *lexer.Lexer
	file *source.File
	bag  *diag.Bag
}

// New creates a parser over the file; diagnostics go into bag.
func New(file *source.File, bag *diag.Bag) *Parser {
	lx := lexer.New(file, lexer.Options{Reporter: bag})
	return &Parser{lx: lx, file: file, bag: bag}
}

// ParseProgram parses until EOF. It returns the program and whether no
// error-severity diagnostics were reported.
func (p *Parser) ParseProgram() (*ast.Program, bool) {
	prog := &ast.Program{}
	for {
		p.skipNewlines()
		if p.lx.Peek().Kind == token.EOF {
			break
		}
		stmt, ok := p.parseStmt()
		if !ok {
			p.recover()
			continue
		}
		prog.Stmts = append(prog.Stmts, stmt)

		tok := p.lx.Peek()
		if tok.Kind != token.Newline && tok.Kind != token.EOF {
			p.err(diag.SynExpectToken, tok.Span,
				fmt.Sprintf("expected end of statement, found %s", tok.Kind))
			p.recover()
		}
	}
	return prog, !p.bag.HasErrors()
}

func (p *Parser) advance() token.Token {
	return p.lx.Next()
}

func (p *Parser) skipNewlines() {
	for p.lx.Peek().Kind == token.Newline {
		p.lx.Next()
	}
}

// recover skips to the next statement boundary.
func (p *Parser) recover() {
	for {
		tok := p.lx.Peek()
		if tok.Kind == token.Newline || tok.Kind == token.EOF {
			return
		}
		p.lx.Next()
	}
}

func (p *Parser) parseStmt() (ast.Stmt, bool) {
	tok := p.lx.Peek()
	if tok.Kind == token.Ident {
		ident := p.advance()
		if p.lx.Peek().Kind == token.Assign {
			p.advance() // '='
			value, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			return &ast.AssignStmt{
				NodeSpan: ident.Span.Cover(value.Span()),
				Name:     ident.Text,
				NameSpan: ident.Span,
				Value:    value,
			}, true
		}
		// expression statement starting with the consumed identifier
		left, ok := p.parsePostfix(ident)
		if !ok {
			return nil, false
		}
		expr, ok := p.parseBinaryFrom(left, 0)
		if !ok {
			return nil, false
		}
		return &ast.ExprStmt{X: expr}, true
	}

	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	return &ast.ExprStmt{X: expr}, true
}

func (p *Parser) err(code diag.Code, sp source.Span, msg string) {
	p.bag.Report(code, diag.SevError, sp, msg)
}
