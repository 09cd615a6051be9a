// Package ast defines the syntax tree of the mini language and the tree
// dump consumed by the explorer's AST panels.
package ast

import (
	"stagehand/internal/source"
)

// Node is implemented by every syntax tree node.
type Node interface {
	Span() source.Span
}

// Expr is implemented by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root node: the ordered statements of the snippet.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Span() source.Span {
	if len(p.Stmts) == 0 {
		return source.Span{}
	}
	sp := p.Stmts[0].Span()
	for _, s := range p.Stmts[1:] {
		sp = sp.Cover(s.Span())
	}
	return sp
}

// AssignStmt is `name = value`.
type AssignStmt struct {
	NodeSpan source.Span
	Name     string
	NameSpan source.Span
	Value    Expr
}

func (s *AssignStmt) Span() source.Span { return s.NodeSpan }
func (s *AssignStmt) stmtNode()         {}

// ExprStmt is a bare expression evaluated for its effect.
type ExprStmt struct {
	X Expr
}

func (s *ExprStmt) Span() source.Span { return s.X.Span() }
func (s *ExprStmt) stmtNode()         {}

// NumberLit is an integer or float literal.
type NumberLit struct {
	NodeSpan source.Span
	Text     string
	IsFloat  bool
	Int      int64
	Float    float64
}

func (e *NumberLit) Span() source.Span { return e.NodeSpan }
func (e *NumberLit) exprNode()         {}

// Name is an identifier reference.
type Name struct {
	NodeSpan source.Span
	Ident    string
}

func (e *Name) Span() source.Span { return e.NodeSpan }
func (e *Name) exprNode()         {}

// Unary is a prefix operator application.
type Unary struct {
	NodeSpan source.Span
	Op       UnaryOp
	X        Expr
}

func (e *Unary) Span() source.Span { return e.NodeSpan }
func (e *Unary) exprNode()         {}

// Binary is an infix operator application.
type Binary struct {
	NodeSpan source.Span
	Op       BinaryOp
	X, Y     Expr
}

func (e *Binary) Span() source.Span { return e.NodeSpan }
func (e *Binary) exprNode()         {}

// Call is `callee(args...)`; the mini language only provides print.
type Call struct {
	NodeSpan source.Span
	Callee   string
	Args     []Expr
}

func (e *Call) Span() source.Span { return e.NodeSpan }
func (e *Call) exprNode()         {}
