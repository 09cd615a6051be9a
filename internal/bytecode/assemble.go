package bytecode

import (
	"fmt"
)

// instrWidth is the encoded size of one instruction: opcode byte + operand
// byte.
const instrWidth = 2

// AsmInstr is one assembled instruction: encoded offset, opcode, and the
// resolved operand index (-1 when the opcode takes none).
type AsmInstr struct {
	Offset int
	Op     Op
	Arg    int
	Line   int
}

// Assembled is the final form of the snippet: encoded instructions plus the
// interned constant and name pools their operands index into.
type Assembled struct {
	Code   []AsmInstr
	Consts []Const
	Names  []string
}

// Assemble interns constants and names and assigns byte offsets.
func Assemble(instrs []Instr) Assembled {
	var asm Assembled
	constIdx := make(map[Const]int)
	nameIdx := make(map[string]int)

	for _, in := range instrs {
		ai := AsmInstr{
			Offset: len(asm.Code) * instrWidth,
			Op:     in.Op,
			Arg:    -1,
			Line:   in.Line,
		}
		switch in.Op {
		case LoadConst:
			idx, ok := constIdx[in.Const]
			if !ok {
				idx = len(asm.Consts)
				constIdx[in.Const] = idx
				asm.Consts = append(asm.Consts, in.Const)
			}
			ai.Arg = idx
		case LoadName, StoreName:
			idx, ok := nameIdx[in.Sym]
			if !ok {
				idx = len(asm.Names)
				nameIdx[in.Sym] = idx
				asm.Names = append(asm.Names, in.Sym)
			}
			ai.Arg = idx
		case Print:
			ai.Arg = in.Arg
		}
		asm.Code = append(asm.Code, ai)
	}
	return asm
}

// FormatInstr renders one assembled instruction the way the final-bytecode
// panel shows it, e.g. "  4 STORE_NAME   0 (a)".
func (a Assembled) FormatInstr(ai AsmInstr) string {
	if ai.Arg < 0 {
		return fmt.Sprintf("%3d %-12s", ai.Offset, ai.Op)
	}
	return fmt.Sprintf("%3d %-12s %2d %s", ai.Offset, ai.Op, ai.Arg, a.annotation(ai))
}

func (a Assembled) annotation(ai AsmInstr) string {
	switch ai.Op {
	case LoadConst:
		return fmt.Sprintf("(%s)", a.Consts[ai.Arg])
	case LoadName, StoreName:
		return fmt.Sprintf("(%s)", a.Names[ai.Arg])
	default:
		return ""
	}
}
