package view

import (
	"stagehand/internal/pipeline"
	"stagehand/internal/toolchain"
)

// PanelView is the rendering surface for one stage panel. Panels are
// opaque to the core; the explorer's TUI implements this over its panel
// widgets. The controller side delivers content, the broadcaster side
// only drives highlights.
type PanelView interface {
	SetContent(kind toolchain.StageKind, items []toolchain.StageItem)
	Highlight(kind toolchain.StageKind, itemIndices []int)
	ClearHighlight(kind toolchain.StageKind)
}

// Broadcaster fans one selected source line out to every visible panel.
// It owns the current highlight; last selection wins.
type Broadcaster struct {
	state *State
	ctrl  *pipeline.Controller
	sink  PanelView
	line  int // 0 = no selection
}

// NewBroadcaster wires the broadcaster to the view state, the pipeline,
// and the panel sink.
func NewBroadcaster(state *State, ctrl *pipeline.Controller, sink PanelView) *Broadcaster {
	return &Broadcaster{state: state, ctrl: ctrl, sink: sink}
}

// CurrentLine returns the selected source line, or 0.
func (b *Broadcaster) CurrentLine() int {
	return b.line
}

// OnLineSelected highlights everything the line produced in every visible,
// non-stale panel. Panels whose lookup is empty get an explicit clear so no
// stale highlight survives. Hidden panels are skipped entirely; they keep
// their last highlight for when they reappear. The call is idempotent.
func (b *Broadcaster) OnLineSelected(line int) {
	b.line = line
	for _, kind := range toolchain.Stages {
		if !b.state.Visible(kind) {
			continue
		}
		art, ok := b.ctrl.Artifact(kind)
		if !ok || art.Stale {
			continue
		}
		indices := art.Index.Lookup(line)
		if len(indices) == 0 {
			b.sink.ClearHighlight(kind)
			continue
		}
		b.sink.Highlight(kind, indices)
	}
}

// ClearSelection drops the current highlight everywhere. The controller's
// publish hook calls this after each successful recompute.
func (b *Broadcaster) ClearSelection() {
	b.line = 0
	for _, kind := range toolchain.Stages {
		if !b.state.Visible(kind) {
			continue
		}
		b.sink.ClearHighlight(kind)
	}
}

// Reselect replays the current selection, e.g. after a panel was toggled
// back on.
func (b *Broadcaster) Reselect() {
	if b.line > 0 {
		b.OnLineSelected(b.line)
	}
}
