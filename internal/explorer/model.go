// Package explorer implements the interactive TUI: a grid of stage
// panels, cursor-driven line selection, and a modal source editor.
package explorer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"stagehand/internal/pipeline"
	"stagehand/internal/toolchain"
	"stagehand/internal/view"
)

const (
	headerHeight = 1
	statusHeight = 2
	panelChrome  = 3 // border rows plus title
)

// Model is the bubbletea model for the explorer session.
type Model struct {
	ctrl   *pipeline.Controller
	state  *view.State
	bcast  *view.Broadcaster
	panels [toolchain.NumStages]*panel

	focus   toolchain.StageKind
	editor  textarea.Model
	editing bool

	styles styles
	width  int
	height int
	status string
	failed bool
}

// New builds the model, wires the broadcaster, and compiles the startup
// snippet.
func New(ctrl *pipeline.Controller, state *view.State, startupSource string) *Model {
	m := &Model{
		ctrl:   ctrl,
		state:  state,
		styles: defaultStyles(),
		focus:  toolchain.StageSource,
		width:  120,
		height: 40,
	}
	for _, kind := range toolchain.Stages {
		m.panels[kind] = newPanel(kind)
	}

	m.editor = textarea.New()
	m.editor.Placeholder = "type a snippet"
	m.editor.CharLimit = 0

	m.bcast = view.NewBroadcaster(state, ctrl, panelSink{m})
	ctrl.OnPublish(m.bcast.ClearSelection)

	m.applySource(startupSource)
	return m
}

// Broadcaster exposes the highlight engine, mainly for tests.
func (m *Model) Broadcaster() *view.Broadcaster {
	return m.bcast
}

// SetEditorValue replaces the editor buffer, mainly for tests.
func (m *Model) SetEditorValue(text string) {
	m.editor.SetValue(text)
}

// Panel returns the widget state for a stage, mainly for tests.
func (m *Model) Panel(kind toolchain.StageKind) (items []toolchain.StageItem, highlighted []int) {
	p := m.panels[kind]
	for i := range p.items {
		if p.highlighted[i] {
			highlighted = append(highlighted, i)
		}
	}
	return p.items, highlighted
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.height = msg.Height
			m.editor.SetWidth(msg.Width - 4)
			m.editor.SetHeight(msg.Height - 6)
		}
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key := msg.String(); key {
	case "q", "esc", "ctrl+c":
		return m, tea.Quit
	case "e":
		m.editor.SetValue(m.ctrl.Source())
		m.editor.Focus()
		m.editing = true
		return m, textarea.Blink
	case "1", "2", "3", "4", "5", "6", "7":
		kind := toolchain.Stages[key[0]-'1']
		if m.state.Toggle(kind) {
			m.ensureFocusVisible()
			if m.state.Visible(kind) {
				m.bcast.Reselect()
			}
		}
		return m, nil
	case "tab":
		m.focusNext()
		return m, nil
	case "up", "k":
		m.moveCursor(-1)
		return m, nil
	case "down", "j":
		m.moveCursor(1)
		return m, nil
	}
	return m, nil
}

func (m *Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editing = false
		m.editor.Blur()
		return m, nil
	case "ctrl+s":
		m.editing = false
		m.editor.Blur()
		m.applySource(m.editor.Value())
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

// applySource recompiles and refreshes every panel from the new artifacts.
// On failure the refreshed prefix still updates; the rest stays stale.
func (m *Model) applySource(src string) {
	err := m.ctrl.SetSource(src)
	m.syncPanels()
	if err != nil {
		m.failed = true
		m.status = err.Error()
		return
	}
	m.failed = false
	m.status = fmt.Sprintf("compiled revision %d", m.ctrl.Revision())
}

// syncPanels pushes artifacts into panel widgets through the PanelView
// boundary. A panel keeps its items and highlight when its artifact
// survived a failed recompute, so toggling it back on shows exactly what
// it showed before.
func (m *Model) syncPanels() {
	sink := panelSink{m}
	for _, kind := range toolchain.Stages {
		art, ok := m.ctrl.Artifact(kind)
		if !ok {
			continue
		}
		p := m.panels[kind]
		if p.revision != art.Revision {
			sink.SetContent(kind, art.Items)
			p.revision = art.Revision
		}
		p.stale = art.Stale
	}
}

func (m *Model) moveCursor(delta int) {
	p := m.panels[m.focus]
	p.moveCursor(delta, m.panelBodyHeight())
	m.bcast.OnLineSelected(p.selectedLine())
}

func (m *Model) focusNext() {
	visible := m.state.VisibleStages()
	if len(visible) == 0 {
		return
	}
	for i, kind := range visible {
		if kind == m.focus {
			m.focus = visible[(i+1)%len(visible)]
			return
		}
	}
	m.focus = visible[0]
}

func (m *Model) ensureFocusVisible() {
	if m.state.Visible(m.focus) {
		return
	}
	visible := m.state.VisibleStages()
	if len(visible) > 0 {
		m.focus = visible[0]
	}
}

func (m *Model) panelRows() [][]toolchain.StageKind {
	visible := m.state.VisibleStages()
	cols := m.state.PanelColumns()
	if cols == 0 {
		return nil
	}
	var rows [][]toolchain.StageKind
	for len(visible) > 0 {
		n := cols
		if n > len(visible) {
			n = len(visible)
		}
		rows = append(rows, visible[:n])
		visible = visible[n:]
	}
	return rows
}

func (m *Model) panelBodyHeight() int {
	rows := len(m.panelRows())
	if rows == 0 {
		return 0
	}
	h := (m.height-headerHeight-statusHeight)/rows - panelChrome
	if h < 3 {
		h = 3
	}
	return h
}

func (m *Model) View() string {
	if m.editing {
		return m.viewEditor()
	}

	var b strings.Builder
	b.WriteString(m.styles.header.Render("stagehand · compiler pipeline explorer"))
	b.WriteString("\n")

	rows := m.panelRows()
	if len(rows) == 0 {
		b.WriteString("\nall panels hidden — press 1-7 to show a stage\n")
	}
	bodyHeight := m.panelBodyHeight()
	for _, row := range rows {
		panelWidth := m.width/len(row) - 4
		if panelWidth < 10 {
			panelWidth = 10
		}
		rendered := make([]string, len(row))
		for i, kind := range row {
			body := m.panels[kind].render(m.styles, panelWidth, bodyHeight, kind == m.focus)
			rendered[i] = m.styles.panelBorder.Render(body)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
		b.WriteString("\n")
	}

	statusStyle := m.styles.statusOK
	if m.failed {
		statusStyle = m.styles.statusErr
	}
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(m.styles.footer.Render("q quit · e edit · 1-7 toggle panels · tab focus · ↑/↓ select line"))
	return b.String()
}

func (m *Model) viewEditor() string {
	var b strings.Builder
	b.WriteString(m.styles.header.Render("edit snippet"))
	b.WriteString("\n\n")
	b.WriteString(m.editor.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.footer.Render("ctrl+s apply · esc discard"))
	return b.String()
}

// panelSink routes broadcaster instructions into the panel widgets.
type panelSink struct {
	m *Model
}

func (s panelSink) SetContent(kind toolchain.StageKind, items []toolchain.StageItem) {
	s.m.panels[kind].setItems(items, false)
}

func (s panelSink) Highlight(kind toolchain.StageKind, itemIndices []int) {
	s.m.panels[kind].highlight(itemIndices)
}

func (s panelSink) ClearHighlight(kind toolchain.StageKind) {
	s.m.panels[kind].clearHighlight()
}
