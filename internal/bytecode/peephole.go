package bytecode

// Peephole rewrites local instruction patterns until a fixpoint:
//
//	LOAD_CONST a, LOAD_CONST b, BINARY_*  ->  LOAD_CONST (a op b)
//	LOAD_CONST a, UNARY_NEG               ->  LOAD_CONST -a
//	LOAD_CONST/LOAD_NAME, POP             ->  (removed)
//
// The folded instruction keeps the operator's source line. Divisions by
// zero are left in place so the error surfaces where the user wrote it.
func Peephole(instrs []Instr) []Instr {
	out := append([]Instr(nil), instrs...)
	for {
		next, changed := peepholeOnce(out)
		if !changed {
			return next
		}
		out = next
	}
}

func peepholeOnce(in []Instr) ([]Instr, bool) {
	out := make([]Instr, 0, len(in))
	changed := false

	for i := 0; i < len(in); i++ {
		cur := in[i]

		// const-const-binop triple
		if len(out) >= 2 && cur.Op.IsBinary() {
			a, b := out[len(out)-2], out[len(out)-1]
			if a.Op == LoadConst && b.Op == LoadConst {
				if folded, ok := foldConsts(a.Const, b.Const, cur.Op); ok {
					out = out[:len(out)-2]
					out = append(out, Instr{Op: LoadConst, Const: folded, Line: cur.Line})
					changed = true
					continue
				}
			}
		}

		// negate a constant
		if len(out) >= 1 && cur.Op == UnaryNeg {
			a := out[len(out)-1]
			if a.Op == LoadConst {
				out = out[:len(out)-1]
				out = append(out, Instr{Op: LoadConst, Const: negConst(a.Const), Line: cur.Line})
				changed = true
				continue
			}
		}

		// effect-free push followed by POP
		if len(out) >= 1 && cur.Op == Pop {
			a := out[len(out)-1]
			if a.Op == LoadConst || a.Op == LoadName {
				out = out[:len(out)-1]
				changed = true
				continue
			}
		}

		out = append(out, cur)
	}
	return out, changed
}

func foldConsts(a, b Const, op Op) (Const, bool) {
	if a.IsFloat || b.IsFloat {
		if op == BinaryMod {
			return Const{}, false
		}
		x, y := floatOf(a), floatOf(b)
		var v float64
		switch op {
		case BinaryAdd:
			v = x + y
		case BinarySub:
			v = x - y
		case BinaryMul:
			v = x * y
		case BinaryDiv:
			if y == 0 {
				return Const{}, false
			}
			v = x / y
		}
		return Const{IsFloat: true, Float: v}, true
	}

	x, y := a.Int, b.Int
	var v int64
	switch op {
	case BinaryAdd:
		v = x + y
	case BinarySub:
		v = x - y
	case BinaryMul:
		v = x * y
	case BinaryDiv:
		if y == 0 {
			return Const{}, false
		}
		v = x / y
	case BinaryMod:
		if y == 0 {
			return Const{}, false
		}
		v = x % y
	}
	return Const{Int: v}, true
}

func negConst(c Const) Const {
	if c.IsFloat {
		return Const{IsFloat: true, Float: -c.Float}
	}
	return Const{Int: -c.Int}
}

func floatOf(c Const) float64 {
	if c.IsFloat {
		return c.Float
	}
	return float64(c.Int)
}
