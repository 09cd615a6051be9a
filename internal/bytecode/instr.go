package bytecode

import (
	"fmt"
	"strconv"
)

// Const is a literal operand value.
type Const struct {
	IsFloat bool
	Int     int64
	Float   float64
}

func (c Const) String() string {
	if c.IsFloat {
		return strconv.FormatFloat(c.Float, 'g', -1, 64)
	}
	return strconv.FormatInt(c.Int, 10)
}

// Eq reports value equality, distinguishing 1 from 1.0.
func (c Const) Eq(other Const) bool {
	return c == other
}

// Instr is one pseudo-bytecode instruction with symbolic operands.
// Line is the 1-based source line the instruction was lowered from;
// 0 marks a synthetic instruction with no source attribution.
type Instr struct {
	Op    Op
	Const Const  // operand of LoadConst
	Sym   string // operand of LoadName / StoreName
	Arg   int    // operand of Print: argument count
	Line  int
}

func (i Instr) String() string {
	switch i.Op {
	case LoadConst:
		return fmt.Sprintf("%s %s", i.Op, i.Const)
	case LoadName, StoreName:
		return fmt.Sprintf("%s %s", i.Op, i.Sym)
	case Print:
		return fmt.Sprintf("%s %d", i.Op, i.Arg)
	default:
		return i.Op.String()
	}
}
