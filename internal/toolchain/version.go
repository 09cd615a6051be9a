package toolchain

import (
	"fmt"
	"strings"
)

// Version selects which stages the active toolchain exposes. Resolved once
// at startup; the capability set is data the rest of the program branches
// on, never the version itself.
type Version string

const (
	// VersionFull exposes every stage.
	VersionFull Version = "full"
	// VersionClassic lacks the optimized-AST and pseudo-bytecode stages.
	VersionClassic Version = "classic"
)

// ParseVersion reads a version name from config or flags.
func ParseVersion(value string) (Version, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "full":
		return VersionFull, nil
	case "classic":
		return VersionClassic, nil
	default:
		return "", fmt.Errorf("unknown toolchain version %q (must be full or classic)", value)
	}
}

// Capabilities returns the stage set the version provides.
func Capabilities(v Version) StageSet {
	switch v {
	case VersionClassic:
		return NewStageSet(StageSource, StageTokens, StageAST, StageFinalBytecode)
	default:
		return NewStageSet(Stages[:]...)
	}
}
