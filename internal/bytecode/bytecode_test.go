package bytecode_test

import (
	"strings"
	"testing"

	"stagehand/internal/bytecode"
	"stagehand/internal/diag"
	"stagehand/internal/parser"
	"stagehand/internal/source"
)

func compile(t *testing.T, input string) ([]bytecode.Instr, *source.File) {
	t.Helper()
	file := source.NewFile("test.mini", []byte(input))
	bag := diag.NewBag(16)
	prog, ok := parser.New(file, bag).ParseProgram()
	if !ok {
		t.Fatalf("parse failed: %v", bag.Items())
	}
	instrs, err := bytecode.Compile(prog, file)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}
	return instrs, file
}

func render(instrs []bytecode.Instr) string {
	parts := make([]string, len(instrs))
	for i, in := range instrs {
		parts[i] = in.String()
	}
	return strings.Join(parts, "; ")
}

func TestCompileAssignments(t *testing.T) {
	instrs, _ := compile(t, "a = 1\nb = a + 2\n")
	want := "LOAD_CONST 1; STORE_NAME a; LOAD_NAME a; LOAD_CONST 2; BINARY_ADD; STORE_NAME b; RETURN"
	if got := render(instrs); got != want {
		t.Errorf("instrs = %s, want %s", got, want)
	}
}

func TestCompileLines(t *testing.T) {
	instrs, _ := compile(t, "a = 1\nb = a + 2\n")
	wantLines := []int{1, 1, 2, 2, 2, 2, 0}
	if len(instrs) != len(wantLines) {
		t.Fatalf("instr count = %d, want %d", len(instrs), len(wantLines))
	}
	for i, want := range wantLines {
		if instrs[i].Line != want {
			t.Errorf("instr %d (%s) line = %d, want %d", i, instrs[i], instrs[i].Line, want)
		}
	}
}

func TestCompilePrint(t *testing.T) {
	instrs, _ := compile(t, "print(1, 2)\n")
	want := "LOAD_CONST 1; LOAD_CONST 2; PRINT 2; RETURN"
	if got := render(instrs); got != want {
		t.Errorf("instrs = %s, want %s", got, want)
	}
}

func TestCompileBareExprGetsPop(t *testing.T) {
	instrs, _ := compile(t, "a + 1\n")
	want := "LOAD_NAME a; LOAD_CONST 1; BINARY_ADD; POP; RETURN"
	if got := render(instrs); got != want {
		t.Errorf("instrs = %s, want %s", got, want)
	}
}

func TestCompileUnknownCallee(t *testing.T) {
	file := source.NewFile("test.mini", []byte("frobnicate(1)\n"))
	bag := diag.NewBag(16)
	prog, ok := parser.New(file, bag).ParseProgram()
	if !ok {
		t.Fatal("parse failed")
	}
	_, err := bytecode.Compile(prog, file)
	if err == nil {
		t.Fatal("expected compile error for unknown function")
	}
	cerr, ok := err.(*bytecode.CompileError)
	if !ok {
		t.Fatalf("error type = %T, want *CompileError", err)
	}
	if cerr.Line != 1 {
		t.Errorf("error line = %d, want 1", cerr.Line)
	}
}

func TestPeepholeFoldsConstants(t *testing.T) {
	instrs, _ := compile(t, "x = 1 + 2 * 3\n")
	opt := bytecode.Peephole(instrs)
	want := "LOAD_CONST 7; STORE_NAME x; RETURN"
	if got := render(opt); got != want {
		t.Errorf("optimized = %s, want %s", got, want)
	}
}

func TestPeepholeDropsDeadPush(t *testing.T) {
	instrs, _ := compile(t, "42\n")
	opt := bytecode.Peephole(instrs)
	want := "RETURN"
	if got := render(opt); got != want {
		t.Errorf("optimized = %s, want %s", got, want)
	}
}

func TestPeepholeKeepsDivisionByZero(t *testing.T) {
	instrs, _ := compile(t, "x = 1 / 0\n")
	opt := bytecode.Peephole(instrs)
	want := "LOAD_CONST 1; LOAD_CONST 0; BINARY_DIV; STORE_NAME x; RETURN"
	if got := render(opt); got != want {
		t.Errorf("optimized = %s, want %s", got, want)
	}
}

func TestPeepholeDoesNotMutateInput(t *testing.T) {
	instrs, _ := compile(t, "x = 1 + 2\n")
	before := render(instrs)
	_ = bytecode.Peephole(instrs)
	if after := render(instrs); after != before {
		t.Errorf("input mutated: %s -> %s", before, after)
	}
}

func TestAssembleInternsPools(t *testing.T) {
	instrs, _ := compile(t, "a = 1\nb = 1\nc = a + b\n")
	asm := bytecode.Assemble(instrs)

	if len(asm.Consts) != 1 {
		t.Errorf("const pool = %v, want one entry", asm.Consts)
	}
	if len(asm.Names) != 3 {
		t.Errorf("name pool = %v, want a b c", asm.Names)
	}
	for i, ai := range asm.Code {
		if ai.Offset != i*2 {
			t.Errorf("instr %d offset = %d, want %d", i, ai.Offset, i*2)
		}
	}
	// both LOAD_CONST 1 uses resolve to the same pool slot
	if asm.Code[0].Arg != asm.Code[2].Arg {
		t.Errorf("const operands differ: %d vs %d", asm.Code[0].Arg, asm.Code[2].Arg)
	}
}

func TestAssembleDistinguishesIntAndFloat(t *testing.T) {
	instrs, _ := compile(t, "a = 1\nb = 1.0\n")
	asm := bytecode.Assemble(instrs)
	if len(asm.Consts) != 2 {
		t.Errorf("const pool = %v, want 1 and 1.0 as distinct entries", asm.Consts)
	}
}

func TestFormatInstr(t *testing.T) {
	instrs, _ := compile(t, "a = 1\n")
	asm := bytecode.Assemble(instrs)
	got := asm.FormatInstr(asm.Code[1])
	if !strings.Contains(got, "STORE_NAME") || !strings.Contains(got, "(a)") {
		t.Errorf("FormatInstr = %q, want STORE_NAME ... (a)", got)
	}
}

func TestReturnIsSynthetic(t *testing.T) {
	instrs, _ := compile(t, "a = 1\n")
	last := instrs[len(instrs)-1]
	if last.Op != bytecode.Return || last.Line != 0 {
		t.Errorf("last instr = %v, want synthetic RETURN", last)
	}
}
