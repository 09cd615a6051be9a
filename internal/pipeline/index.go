package pipeline

import (
	"stagehand/internal/toolchain"
)

// PositionIndex maps a 1-based source line to the indices of the artifact
// items produced from that line. Built once per artifact, read-only after.
type PositionIndex struct {
	byLine map[int][]int
}

// BuildIndex indexes items by their source line. Items without attribution
// (Line == 0) appear in no line's set.
func BuildIndex(items []toolchain.StageItem) PositionIndex {
	byLine := make(map[int][]int)
	for i, item := range items {
		if item.Line <= 0 {
			continue
		}
		byLine[item.Line] = append(byLine[item.Line], i)
	}
	return PositionIndex{byLine: byLine}
}

// Lookup returns the item indices attributed to the line, in emission
// order. A line with no items yields nil; it is never an error.
func (x PositionIndex) Lookup(line int) []int {
	return x.byLine[line]
}

// Lines returns how many distinct lines have attributed items.
func (x PositionIndex) Lines() int {
	return len(x.byLine)
}
