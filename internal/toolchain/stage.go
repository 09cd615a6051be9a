// Package toolchain defines the pipeline stages, the capability set of a
// toolchain version, and the adapter boundary the explorer drives.
package toolchain

// StageKind identifies one compilation stage.
type StageKind uint8

const (
	// StageSource is the unprocessed snippet itself.
	StageSource StageKind = iota
	// StageTokens is the lexer output.
	StageTokens
	// StageAST is the parse tree.
	StageAST
	// StageOptimizedAST is the parse tree after constant folding.
	StageOptimizedAST
	// StagePseudoBytecode is unassembled bytecode with symbolic operands.
	StagePseudoBytecode
	// StageOptimizedPseudoBytecode is pseudo-bytecode after peephole passes.
	StageOptimizedPseudoBytecode
	// StageFinalBytecode is the assembled, encoded form.
	StageFinalBytecode

	// NumStages is the number of stage kinds.
	NumStages = int(StageFinalBytecode) + 1
)

// Stages lists every kind in pipeline order.
var Stages = [NumStages]StageKind{
	StageSource,
	StageTokens,
	StageAST,
	StageOptimizedAST,
	StagePseudoBytecode,
	StageOptimizedPseudoBytecode,
	StageFinalBytecode,
}

var stageNames = [NumStages]string{
	StageSource:                  "source",
	StageTokens:                  "tokens",
	StageAST:                     "ast",
	StageOptimizedAST:            "opt-ast",
	StagePseudoBytecode:          "pseudo-bc",
	StageOptimizedPseudoBytecode: "opt-pseudo-bc",
	StageFinalBytecode:           "final-bc",
}

var stageTitles = [NumStages]string{
	StageSource:                  "Source",
	StageTokens:                  "Tokens",
	StageAST:                     "AST",
	StageOptimizedAST:            "Optimized AST",
	StagePseudoBytecode:          "Pseudo Bytecode",
	StageOptimizedPseudoBytecode: "Optimized Pseudo Bytecode",
	StageFinalBytecode:           "Final Bytecode",
}

func (k StageKind) String() string {
	if int(k) < NumStages {
		return stageNames[k]
	}
	return "unknown"
}

// Title returns the panel heading for the stage.
func (k StageKind) Title() string {
	if int(k) < NumStages {
		return stageTitles[k]
	}
	return "Unknown"
}

// StageByName resolves a stage name as used in config files and flags.
func StageByName(name string) (StageKind, bool) {
	for _, k := range Stages {
		if stageNames[k] == name {
			return k, true
		}
	}
	return 0, false
}

// StageSet is a bitmask of stage kinds.
type StageSet uint8

// NewStageSet builds a set from the given kinds.
func NewStageSet(kinds ...StageKind) StageSet {
	var s StageSet
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// With returns the set extended with kind.
func (s StageSet) With(k StageKind) StageSet {
	return s | 1<<k
}

// Has reports whether kind is in the set.
func (s StageSet) Has(k StageKind) bool {
	return s&(1<<k) != 0
}

// Count returns the number of kinds in the set.
func (s StageSet) Count() int {
	n := 0
	for _, k := range Stages {
		if s.Has(k) {
			n++
		}
	}
	return n
}
