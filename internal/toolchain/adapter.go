package toolchain

import (
	"fmt"
)

// StageItem is one renderable unit of a stage's output. Line is the
// 1-based source line the item was produced from; 0 means the item has no
// single-line attribution (synthetic instructions, EOF markers).
type StageItem struct {
	Display string
	Line    int
}

// Adapter runs one stage of the underlying toolchain over the snippet.
// A stage that rejects the source returns a *CompileError and no items;
// partial output is never returned.
type Adapter interface {
	Run(src string, kind StageKind) ([]StageItem, error)
}

// CompileError reports that the toolchain rejected the source at a stage.
type CompileError struct {
	Stage   StageKind
	Message string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s: %s", e.Stage.Title(), e.Message)
}
