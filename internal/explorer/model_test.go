package explorer_test

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"stagehand/internal/explorer"
	"stagehand/internal/pipeline"
	"stagehand/internal/toolchain"
	"stagehand/internal/view"
)

func newModel(t *testing.T, src string) (*explorer.Model, *view.State, *pipeline.Controller) {
	t.Helper()
	caps := toolchain.Capabilities(toolchain.VersionFull)
	ctrl := pipeline.NewController(toolchain.NewBuiltin(), caps)
	state := view.NewState(caps)
	m := explorer.New(ctrl, state, src)
	return m, state, ctrl
}

func press(m *explorer.Model, keys ...string) *explorer.Model {
	var model tea.Model = m
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		model, _ = model.Update(msg)
	}
	return model.(*explorer.Model)
}

func TestStartupContent(t *testing.T) {
	m, _, ctrl := newModel(t, "a = 1\nb = 2\n")
	if ctrl.Revision() != 1 {
		t.Fatalf("revision = %d, want 1", ctrl.Revision())
	}
	items, _ := m.Panel(toolchain.StageSource)
	if len(items) != 2 || items[0].Display != "a = 1" {
		t.Errorf("source panel items = %v", items)
	}
	items, _ = m.Panel(toolchain.StageFinalBytecode)
	if len(items) == 0 {
		t.Error("final bytecode panel is empty")
	}
}

func TestToggleKeysDriveViewState(t *testing.T) {
	m, state, _ := newModel(t, "a = 1\n")
	if state.Visible(toolchain.StageTokens) {
		t.Fatal("tokens should start hidden")
	}
	m = press(m, "2")
	if !state.Visible(toolchain.StageTokens) {
		t.Error("'2' did not show the tokens panel")
	}
	m = press(m, "2")
	if state.Visible(toolchain.StageTokens) {
		t.Error("'2' did not hide the tokens panel")
	}
	_ = m
}

func TestCursorSelectionHighlights(t *testing.T) {
	m, _, _ := newModel(t, "a = 1\nb = 2\n")

	// cursor starts on line 1; moving down selects line 2
	m = press(m, "down")
	if got := m.Broadcaster().CurrentLine(); got != 2 {
		t.Fatalf("CurrentLine = %d, want 2", got)
	}
	items, highlighted := m.Panel(toolchain.StageFinalBytecode)
	if len(highlighted) == 0 {
		t.Fatal("no final-bc highlight after selection")
	}
	for _, i := range highlighted {
		if items[i].Line != 2 {
			t.Errorf("highlighted item %d is from line %d", i, items[i].Line)
		}
	}
}

func TestHiddenPanelKeepsHighlight(t *testing.T) {
	m, _, _ := newModel(t, "a = 1\nb = 2\n")
	m = press(m, "2") // show tokens
	m = press(m, "down")
	_, before := m.Panel(toolchain.StageTokens)
	if len(before) == 0 {
		t.Fatal("expected tokens highlight")
	}

	m = press(m, "2")  // hide tokens
	m = press(m, "up") // selection changes while hidden
	_, after := m.Panel(toolchain.StageTokens)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("hidden panel highlight changed: %v -> %v", before, after)
	}
}

func TestEditorApplyRecompiles(t *testing.T) {
	m, _, ctrl := newModel(t, "a = 1\n")
	m = press(m, "e")
	m.SetEditorValue("z = 40 + 2\n")

	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = model.(*explorer.Model)

	if ctrl.Revision() != 2 {
		t.Fatalf("revision = %d, want 2", ctrl.Revision())
	}
	if ctrl.Source() != "z = 40 + 2\n" {
		t.Errorf("source = %q", ctrl.Source())
	}
	items, _ := m.Panel(toolchain.StageFinalBytecode)
	joined := ""
	for _, it := range items {
		joined += it.Display + "\n"
	}
	if !strings.Contains(joined, "(42)") {
		t.Errorf("final bytecode does not show folded constant:\n%s", joined)
	}
}

func TestEditorEscDiscards(t *testing.T) {
	m, _, ctrl := newModel(t, "a = 1\n")
	m = press(m, "e")
	m.SetEditorValue("broken ((")
	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = model.(*explorer.Model)

	if ctrl.Revision() != 1 {
		t.Errorf("revision = %d, want 1 (discarded edit recompiled)", ctrl.Revision())
	}
	if ctrl.Source() != "a = 1\n" {
		t.Errorf("source = %q, want unchanged", ctrl.Source())
	}
}

func TestFailedEditKeepsStalePanels(t *testing.T) {
	m, _, ctrl := newModel(t, "a = 1\n")
	m = press(m, "e")
	m.SetEditorValue("a = ((\n")
	var model tea.Model = m
	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	m = model.(*explorer.Model)

	art, _ := ctrl.Artifact(toolchain.StageFinalBytecode)
	if !art.Stale {
		t.Error("final-bc artifact should be stale")
	}
	items, _ := m.Panel(toolchain.StageFinalBytecode)
	if len(items) == 0 {
		t.Error("stale panel lost its items")
	}
	out := m.View()
	if !strings.Contains(out, "stale") {
		t.Error("view does not mark stale panels")
	}
	if !strings.Contains(out, "AST") {
		// the status line carries the failing stage
		t.Errorf("view does not surface the failure:\n%s", out)
	}
}

func TestViewRendersVisiblePanelsOnly(t *testing.T) {
	m, _, _ := newModel(t, "a = 1\n")
	v := m.View()
	if !strings.Contains(v, "Source") || !strings.Contains(v, "Final Bytecode") {
		t.Error("default panels missing from view")
	}
	if strings.Contains(v, "Pseudo Bytecode") {
		t.Error("hidden panel rendered")
	}
}
