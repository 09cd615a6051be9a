// Package view holds the panel visibility state and the highlight
// broadcast that keeps every visible panel in sync with one selected
// source line.
package view

import (
	"stagehand/internal/toolchain"
)

// maxColumns caps the panel grid width no matter how many stages are
// shown.
const maxColumns = 3

// State tracks which stages are visible. One instance lives for the whole
// session; it is mutated only by Toggle.
type State struct {
	caps    toolchain.StageSet
	visible toolchain.StageSet
}

// NewState starts with Source and FinalBytecode visible, intersected with
// the active capability set.
func NewState(caps toolchain.StageSet) *State {
	defaults := toolchain.NewStageSet(toolchain.StageSource, toolchain.StageFinalBytecode)
	return &State{caps: caps, visible: defaults & caps}
}

// NewStateWith starts with an explicit panel selection, e.g. from the
// config file. An empty selection falls back to the defaults.
func NewStateWith(caps toolchain.StageSet, kinds []toolchain.StageKind) *State {
	if len(kinds) == 0 {
		return NewState(caps)
	}
	return &State{caps: caps, visible: toolchain.NewStageSet(kinds...) & caps}
}

// Toggle flips the stage's visibility. Toggling a stage the active
// toolchain does not provide is a no-op; it returns whether anything
// changed.
func (s *State) Toggle(kind toolchain.StageKind) bool {
	if !s.caps.Has(kind) {
		return false
	}
	s.visible ^= 1 << kind
	return true
}

// Visible reports whether the stage's panel is shown.
func (s *State) Visible(kind toolchain.StageKind) bool {
	return s.visible.Has(kind)
}

// VisibleCount returns how many panels are shown.
func (s *State) VisibleCount() int {
	return s.visible.Count()
}

// PanelColumns derives the grid column count: min(visible, 3).
func (s *State) PanelColumns() int {
	n := s.VisibleCount()
	if n > maxColumns {
		return maxColumns
	}
	return n
}

// VisibleStages lists the shown stages in pipeline order.
func (s *State) VisibleStages() []toolchain.StageKind {
	out := make([]toolchain.StageKind, 0, toolchain.NumStages)
	for _, kind := range toolchain.Stages {
		if s.visible.Has(kind) {
			out = append(out, kind)
		}
	}
	return out
}
