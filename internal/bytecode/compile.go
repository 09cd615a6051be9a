package bytecode

import (
	"fmt"

	"stagehand/internal/ast"
	"stagehand/internal/source"
)

// CompileError reports a lowering failure with its source line.
type CompileError struct {
	Line    int
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

type compiler struct {
	file   *source.File
	instrs []Instr
}

// Compile lowers the program to pseudo-bytecode. Every emitted instruction
// carries the line of the AST node it came from; the trailing RETURN is
// synthetic.
func Compile(prog *ast.Program, file *source.File) ([]Instr, error) {
	c := &compiler{file: file}
	for _, s := range prog.Stmts {
		if err := c.stmt(s); err != nil {
			return nil, err
		}
	}
	c.emit(Instr{Op: Return, Line: 0})
	return c.instrs, nil
}

func (c *compiler) emit(i Instr) {
	c.instrs = append(c.instrs, i)
}

func (c *compiler) lineOf(n ast.Node) int {
	return c.file.LineFor(n.Span().Start)
}

func (c *compiler) stmt(s ast.Stmt) error {
	switch s := s.(type) {
	case *ast.AssignStmt:
		if err := c.expr(s.Value); err != nil {
			return err
		}
		c.emit(Instr{Op: StoreName, Sym: s.Name, Line: c.lineOf(s)})
		return nil
	case *ast.ExprStmt:
		pushes, err := c.exprMaybeVoid(s.X)
		if err != nil {
			return err
		}
		if pushes {
			c.emit(Instr{Op: Pop, Line: c.lineOf(s)})
		}
		return nil
	default:
		return &CompileError{Line: c.lineOf(s), Message: "unsupported statement"}
	}
}

// exprMaybeVoid compiles an expression and reports whether it leaves a
// value on the stack. Print calls are void.
func (c *compiler) exprMaybeVoid(e ast.Expr) (bool, error) {
	if call, ok := e.(*ast.Call); ok {
		return false, c.call(call)
	}
	return true, c.expr(e)
}

func (c *compiler) expr(e ast.Expr) error {
	switch e := e.(type) {
	case *ast.NumberLit:
		c.emit(Instr{Op: LoadConst, Const: litConst(e), Line: c.lineOf(e)})
		return nil
	case *ast.Name:
		c.emit(Instr{Op: LoadName, Sym: e.Ident, Line: c.lineOf(e)})
		return nil
	case *ast.Unary:
		if err := c.expr(e.X); err != nil {
			return err
		}
		c.emit(Instr{Op: UnaryNeg, Line: c.lineOf(e)})
		return nil
	case *ast.Binary:
		if err := c.expr(e.X); err != nil {
			return err
		}
		if err := c.expr(e.Y); err != nil {
			return err
		}
		c.emit(Instr{Op: binaryOpcode(e.Op), Line: c.lineOf(e)})
		return nil
	case *ast.Call:
		return &CompileError{
			Line:    c.lineOf(e),
			Message: fmt.Sprintf("%s() has no value; calls are statements", e.Callee),
		}
	default:
		return &CompileError{Line: c.lineOf(e), Message: "unsupported expression"}
	}
}

func (c *compiler) call(e *ast.Call) error {
	if e.Callee != "print" {
		return &CompileError{
			Line:    c.lineOf(e),
			Message: fmt.Sprintf("unknown function %q", e.Callee),
		}
	}
	if len(e.Args) == 0 {
		return &CompileError{Line: c.lineOf(e), Message: "print needs at least one argument"}
	}
	for _, arg := range e.Args {
		if err := c.expr(arg); err != nil {
			return err
		}
	}
	c.emit(Instr{Op: Print, Arg: len(e.Args), Line: c.lineOf(e)})
	return nil
}

func binaryOpcode(op ast.BinaryOp) Op {
	switch op {
	case ast.BinAdd:
		return BinaryAdd
	case ast.BinSub:
		return BinarySub
	case ast.BinMul:
		return BinaryMul
	case ast.BinDiv:
		return BinaryDiv
	default:
		return BinaryMod
	}
}

func litConst(e *ast.NumberLit) Const {
	if e.IsFloat {
		return Const{IsFloat: true, Float: e.Float}
	}
	return Const{Int: e.Int}
}
