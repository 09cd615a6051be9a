package ast

import (
	"fmt"
	"strings"

	"stagehand/internal/source"
)

// DumpLine is one row of the tree dump: the rendered label (indented by
// nesting depth) plus the span of the node it describes.
type DumpLine struct {
	Text string
	Span source.Span
}

// Dump flattens the program into one line per node, preorder.
func Dump(p *Program) []DumpLine {
	var out []DumpLine
	for _, s := range p.Stmts {
		out = dumpStmt(out, s, 0)
	}
	return out
}

func dumpStmt(out []DumpLine, s Stmt, depth int) []DumpLine {
	switch s := s.(type) {
	case *AssignStmt:
		out = append(out, line(depth, s.NodeSpan, "Assign %s", s.Name))
		return dumpExpr(out, s.Value, depth+1)
	case *ExprStmt:
		out = append(out, line(depth, s.Span(), "ExprStmt"))
		return dumpExpr(out, s.X, depth+1)
	default:
		return append(out, line(depth, s.Span(), "Stmt(?)"))
	}
}

func dumpExpr(out []DumpLine, e Expr, depth int) []DumpLine {
	switch e := e.(type) {
	case *NumberLit:
		return append(out, line(depth, e.NodeSpan, "Number %s", e.Text))
	case *Name:
		return append(out, line(depth, e.NodeSpan, "Name %s", e.Ident))
	case *Unary:
		out = append(out, line(depth, e.NodeSpan, "Unary %s", e.Op))
		return dumpExpr(out, e.X, depth+1)
	case *Binary:
		out = append(out, line(depth, e.NodeSpan, "Binary %s", e.Op))
		out = dumpExpr(out, e.X, depth+1)
		return dumpExpr(out, e.Y, depth+1)
	case *Call:
		out = append(out, line(depth, e.NodeSpan, "Call %s", e.Callee))
		for _, arg := range e.Args {
			out = dumpExpr(out, arg, depth+1)
		}
		return out
	default:
		return append(out, line(depth, e.Span(), "Expr(?)"))
	}
}

func line(depth int, sp source.Span, format string, args ...any) DumpLine {
	return DumpLine{
		Text: strings.Repeat("  ", depth) + fmt.Sprintf(format, args...),
		Span: sp,
	}
}
