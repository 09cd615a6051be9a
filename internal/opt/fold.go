// Package opt implements the AST-level optimizer: constant folding plus a
// few algebraic identities. It never mutates its input tree.
package opt

import (
	"strconv"

	"stagehand/internal/ast"
	"stagehand/internal/source"
)

// Fold returns a copy of the program with constant subexpressions folded.
func Fold(p *ast.Program) *ast.Program {
	out := &ast.Program{Stmts: make([]ast.Stmt, 0, len(p.Stmts))}
	for _, s := range p.Stmts {
		out.Stmts = append(out.Stmts, foldStmt(s))
	}
	return out
}

func foldStmt(s ast.Stmt) ast.Stmt {
	switch s := s.(type) {
	case *ast.AssignStmt:
		return &ast.AssignStmt{
			NodeSpan: s.NodeSpan,
			Name:     s.Name,
			NameSpan: s.NameSpan,
			Value:    foldExpr(s.Value),
		}
	case *ast.ExprStmt:
		return &ast.ExprStmt{X: foldExpr(s.X)}
	default:
		return s
	}
}

func foldExpr(e ast.Expr) ast.Expr {
	switch e := e.(type) {
	case *ast.Unary:
		x := foldExpr(e.X)
		if lit, ok := x.(*ast.NumberLit); ok && e.Op == ast.UnaryNeg {
			return negate(e.NodeSpan, lit)
		}
		return &ast.Unary{NodeSpan: e.NodeSpan, Op: e.Op, X: x}
	case *ast.Binary:
		x := foldExpr(e.X)
		y := foldExpr(e.Y)
		if folded, ok := foldBinary(e.NodeSpan, e.Op, x, y); ok {
			return folded
		}
		return &ast.Binary{NodeSpan: e.NodeSpan, Op: e.Op, X: x, Y: y}
	case *ast.Call:
		args := make([]ast.Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = foldExpr(a)
		}
		return &ast.Call{NodeSpan: e.NodeSpan, Callee: e.Callee, Args: args}
	default:
		return e
	}
}

func foldBinary(sp source.Span, op ast.BinaryOp, x, y ast.Expr) (ast.Expr, bool) {
	lx, xlit := x.(*ast.NumberLit)
	ly, ylit := y.(*ast.NumberLit)

	if xlit && ylit {
		return foldLiterals(sp, op, lx, ly)
	}

	// algebraic identities; the surviving operand keeps its own span
	if ylit && !ly.IsFloat {
		switch {
		case ly.Int == 0 && (op == ast.BinAdd || op == ast.BinSub):
			return x, true
		case ly.Int == 1 && (op == ast.BinMul || op == ast.BinDiv):
			return x, true
		}
	}
	if xlit && !lx.IsFloat {
		switch {
		case lx.Int == 0 && op == ast.BinAdd:
			return y, true
		case lx.Int == 1 && op == ast.BinMul:
			return y, true
		}
	}
	return nil, false
}

func foldLiterals(sp source.Span, op ast.BinaryOp, x, y *ast.NumberLit) (ast.Expr, bool) {
	if x.IsFloat || y.IsFloat {
		if op == ast.BinMod {
			return nil, false
		}
		a, b := floatVal(x), floatVal(y)
		var v float64
		switch op {
		case ast.BinAdd:
			v = a + b
		case ast.BinSub:
			v = a - b
		case ast.BinMul:
			v = a * b
		case ast.BinDiv:
			if b == 0 {
				return nil, false
			}
			v = a / b
		}
		return floatLit(sp, v), true
	}

	a, b := x.Int, y.Int
	var v int64
	switch op {
	case ast.BinAdd:
		v = a + b
	case ast.BinSub:
		v = a - b
	case ast.BinMul:
		v = a * b
	case ast.BinDiv:
		if b == 0 {
			return nil, false
		}
		v = a / b
	case ast.BinMod:
		if b == 0 {
			return nil, false
		}
		v = a % b
	}
	return intLit(sp, v), true
}

func negate(sp source.Span, lit *ast.NumberLit) ast.Expr {
	if lit.IsFloat {
		return floatLit(sp, -lit.Float)
	}
	return intLit(sp, -lit.Int)
}

func floatVal(lit *ast.NumberLit) float64 {
	if lit.IsFloat {
		return lit.Float
	}
	return float64(lit.Int)
}

func intLit(sp source.Span, v int64) *ast.NumberLit {
	return &ast.NumberLit{NodeSpan: sp, Text: strconv.FormatInt(v, 10), Int: v}
}

func floatLit(sp source.Span, v float64) *ast.NumberLit {
	return &ast.NumberLit{
		NodeSpan: sp,
		Text:     strconv.FormatFloat(v, 'g', -1, 64),
		IsFloat:  true,
		Float:    v,
	}
}
