package explorer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"stagehand/internal/toolchain"
)

// panel is the widget state for one stage: its items, the current
// highlight, and a scroll window. A hidden panel keeps all of this so it
// comes back exactly as it was.
type panel struct {
	kind        toolchain.StageKind
	items       []toolchain.StageItem
	highlighted map[int]bool
	cursor      int
	offset      int
	stale       bool
	revision    uint64
}

func newPanel(kind toolchain.StageKind) *panel {
	return &panel{kind: kind, highlighted: make(map[int]bool)}
}

func (p *panel) setItems(items []toolchain.StageItem, stale bool) {
	p.items = items
	p.stale = stale
	p.highlighted = make(map[int]bool)
	if p.cursor >= len(items) {
		p.cursor = 0
		p.offset = 0
	}
}

func (p *panel) highlight(indices []int) {
	p.highlighted = make(map[int]bool, len(indices))
	for _, i := range indices {
		p.highlighted[i] = true
	}
}

func (p *panel) clearHighlight() {
	p.highlighted = make(map[int]bool)
}

// moveCursor shifts the cursor and keeps it inside the scroll window.
func (p *panel) moveCursor(delta, viewHeight int) {
	p.cursor += delta
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor >= len(p.items) {
		p.cursor = len(p.items) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if viewHeight > 0 && p.cursor >= p.offset+viewHeight {
		p.offset = p.cursor - viewHeight + 1
	}
}

// selectedLine returns the source line of the item under the cursor.
// For the source panel that is the cursor position itself; 0 means the
// item has no attribution.
func (p *panel) selectedLine() int {
	if len(p.items) == 0 || p.cursor >= len(p.items) {
		return 0
	}
	if p.kind == toolchain.StageSource {
		return p.cursor + 1
	}
	return p.items[p.cursor].Line
}

func (p *panel) title() string {
	title := p.kind.Title()
	if p.stale {
		title += " (stale)"
	}
	return title
}

// render draws the panel body: one item per row, highlight and cursor
// styles applied, clipped to the scroll window.
func (p *panel) render(st styles, width, height int, focused bool) string {
	var b strings.Builder

	titleStyle := st.panelTitle
	if focused {
		titleStyle = st.panelTitleFocused
	}
	b.WriteString(titleStyle.Render(truncate(p.title(), width)))
	b.WriteString("\n")

	end := p.offset + height
	if end > len(p.items) {
		end = len(p.items)
	}
	for i := p.offset; i < end; i++ {
		text := truncate(p.items[i].Display, width)
		switch {
		case focused && i == p.cursor && p.highlighted[i]:
			text = st.cursorHighlight.Render(text)
		case focused && i == p.cursor:
			text = st.cursor.Render(text)
		case p.highlighted[i]:
			text = st.highlight.Render(text)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}
	for i := end - p.offset; i < height; i++ {
		b.WriteString("\n")
	}

	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	return runewidth.Truncate(value, width-3, "...")
}
