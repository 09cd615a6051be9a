// Package bytecode lowers the mini language AST to stack-machine
// instructions, optimizes them, and assembles the final encoded form
// shown in the explorer's bytecode panels.
package bytecode

// Op is a stack-machine opcode.
type Op uint8

const (
	// LoadConst pushes a constant.
	LoadConst Op = iota
	// LoadName pushes the value bound to a name.
	LoadName
	// StoreName pops a value and binds it to a name.
	StoreName
	// UnaryNeg negates the top of stack.
	UnaryNeg
	// BinaryAdd pops two values and pushes their sum.
	BinaryAdd
	// BinarySub pops two values and pushes their difference.
	BinarySub
	// BinaryMul pops two values and pushes their product.
	BinaryMul
	// BinaryDiv pops two values and pushes their quotient.
	BinaryDiv
	// BinaryMod pops two values and pushes their remainder.
	BinaryMod
	// Print pops Arg values and prints them.
	Print
	// Pop discards the top of stack.
	Pop
	// Return ends execution of the snippet.
	Return
)

var opNames = [...]string{
	LoadConst: "LOAD_CONST",
	LoadName:  "LOAD_NAME",
	StoreName: "STORE_NAME",
	UnaryNeg:  "UNARY_NEG",
	BinaryAdd: "BINARY_ADD",
	BinarySub: "BINARY_SUB",
	BinaryMul: "BINARY_MUL",
	BinaryDiv: "BINARY_DIV",
	BinaryMod: "BINARY_MOD",
	Print:     "PRINT",
	Pop:       "POP",
	Return:    "RETURN",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "UNKNOWN"
}

// IsBinary reports whether the opcode is a two-operand arithmetic op.
func (op Op) IsBinary() bool {
	switch op {
	case BinaryAdd, BinarySub, BinaryMul, BinaryDiv, BinaryMod:
		return true
	default:
		return false
	}
}
