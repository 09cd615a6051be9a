package ast

// UnaryOp identifies a prefix operator.
type UnaryOp uint8

const (
	// UnaryNeg is arithmetic negation.
	UnaryNeg UnaryOp = iota
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNeg:
		return "-"
	}
	return "?"
}

// BinaryOp identifies an infix operator.
type BinaryOp uint8

const (
	// BinAdd is addition.
	BinAdd BinaryOp = iota
	// BinSub is subtraction.
	BinSub
	// BinMul is multiplication.
	BinMul
	// BinDiv is division.
	BinDiv
	// BinMod is remainder.
	BinMod
)

func (op BinaryOp) String() string {
	switch op {
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinMod:
		return "%"
	}
	return "?"
}
