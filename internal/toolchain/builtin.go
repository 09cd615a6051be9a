package toolchain

import (
	"fmt"

	"stagehand/internal/ast"
	"stagehand/internal/bytecode"
	"stagehand/internal/diag"
	"stagehand/internal/lexer"
	"stagehand/internal/opt"
	"stagehand/internal/parser"
	"stagehand/internal/source"
	"stagehand/internal/token"
)

// maxDiagnostics bounds the bag for one stage run; only the first error is
// surfaced anyway.
const maxDiagnostics = 32

// DefaultSnippet is the startup source shown before any edit.
const DefaultSnippet = `# arithmetic demo
a = 1
b = 2
c = (a + b) * 3
d = c % 2 + 10 * 0
print(c, d)
`

// Builtin is the reference adapter: it runs the mini language toolchain
// shipped with the explorer. Every stage recompiles from the source text,
// so stages can be computed independently.
type Builtin struct{}

// NewBuiltin returns the built-in mini language adapter.
func NewBuiltin() *Builtin {
	return &Builtin{}
}

// Run implements Adapter.
func (b *Builtin) Run(src string, kind StageKind) ([]StageItem, error) {
	file := source.NewFile("snippet", []byte(src))
	switch kind {
	case StageSource:
		return sourceItems(file), nil
	case StageTokens:
		return tokenItems(file)
	case StageAST:
		prog, err := parse(file, kind)
		if err != nil {
			return nil, err
		}
		return dumpItems(file, prog), nil
	case StageOptimizedAST:
		prog, err := parse(file, kind)
		if err != nil {
			return nil, err
		}
		return dumpItems(file, opt.Fold(prog)), nil
	case StagePseudoBytecode:
		instrs, err := compile(file, kind)
		if err != nil {
			return nil, err
		}
		return instrItems(instrs), nil
	case StageOptimizedPseudoBytecode:
		instrs, err := compile(file, kind)
		if err != nil {
			return nil, err
		}
		return instrItems(bytecode.Peephole(instrs)), nil
	case StageFinalBytecode:
		instrs, err := compile(file, kind)
		if err != nil {
			return nil, err
		}
		asm := bytecode.Assemble(bytecode.Peephole(instrs))
		return asmItems(asm), nil
	default:
		return nil, fmt.Errorf("unknown stage %d", kind)
	}
}

func sourceItems(file *source.File) []StageItem {
	items := make([]StageItem, 0, file.LineCount())
	for line := 1; line <= file.LineCount(); line++ {
		items = append(items, StageItem{Display: file.LineText(line), Line: line})
	}
	return items
}

// tokenItems lexes the whole snippet. Statement terminators and EOF are
// trivia from the viewer's perspective and are not listed.
func tokenItems(file *source.File) ([]StageItem, error) {
	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{Reporter: bag})

	var items []StageItem
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			break
		}
		if tok.Kind == token.Newline {
			continue
		}
		items = append(items, StageItem{
			Display: fmt.Sprintf("%-8s %s", tok.Kind, tok.Text),
			Line:    file.LineFor(tok.Span.Start),
		})
	}
	if err := firstError(file, bag, StageTokens); err != nil {
		return nil, err
	}
	return items, nil
}

func parse(file *source.File, stage StageKind) (*ast.Program, error) {
	bag := diag.NewBag(maxDiagnostics)
	prog, ok := parser.New(file, bag).ParseProgram()
	if !ok {
		if err := firstError(file, bag, stage); err != nil {
			return nil, err
		}
		return nil, &CompileError{Stage: stage, Message: "parse failed"}
	}
	return prog, nil
}

func compile(file *source.File, stage StageKind) ([]bytecode.Instr, error) {
	prog, err := parse(file, stage)
	if err != nil {
		return nil, err
	}
	instrs, err := bytecode.Compile(opt.Fold(prog), file)
	if err != nil {
		return nil, &CompileError{Stage: stage, Message: err.Error()}
	}
	return instrs, nil
}

func dumpItems(file *source.File, prog *ast.Program) []StageItem {
	lines := ast.Dump(prog)
	items := make([]StageItem, len(lines))
	for i, l := range lines {
		items[i] = StageItem{
			Display: l.Text,
			Line:    file.LineFor(l.Span.Start),
		}
	}
	return items
}

func instrItems(instrs []bytecode.Instr) []StageItem {
	items := make([]StageItem, len(instrs))
	for i, in := range instrs {
		items[i] = StageItem{Display: in.String(), Line: in.Line}
	}
	return items
}

func asmItems(asm bytecode.Assembled) []StageItem {
	items := make([]StageItem, len(asm.Code))
	for i, ai := range asm.Code {
		items[i] = StageItem{Display: asm.FormatInstr(ai), Line: ai.Line}
	}
	return items
}

func firstError(file *source.File, bag *diag.Bag, stage StageKind) error {
	d, ok := bag.FirstError()
	if !ok {
		return nil
	}
	return &CompileError{
		Stage:   stage,
		Message: fmt.Sprintf("line %d: %s", file.LineFor(d.Primary.Start), d.Message),
	}
}
