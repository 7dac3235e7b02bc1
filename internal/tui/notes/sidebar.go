package notes

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/Paintersrp/noted/internal/note"
)

const ellipsis = "..."

func (m *Model) sidebarView() string {
	inner := sidebarWidth - 2

	var b strings.Builder
	b.WriteString(m.search.View())
	b.WriteString("\n\n")
	b.WriteString(createItemStyle.Render("+ New note"))
	b.WriteString("\n\n")

	visible := m.store.Filtered()
	if len(visible) == 0 {
		if m.store.Query() != "" {
			b.WriteString(emptyStyle.Render("No matching notes"))
		} else {
			b.WriteString(emptyStyle.Render("No notes yet"))
		}
	}

	current, ok := m.store.Selected()
	for _, n := range visible {
		b.WriteString(m.renderItem(n, ok && n.ID == current.ID, inner))
		b.WriteString("\n")
	}

	height := max(m.height-2, 0)
	return sidebarStyle.Width(sidebarWidth).Height(height).Render(b.String())
}

func (m *Model) renderItem(n note.Note, highlighted bool, width int) string {
	title := truncate.StringWithTail(n.DisplayTitle(), uint(width), ellipsis)
	body := n.Preview(m.previewLen)

	if highlighted {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			selectedItemStyle.Width(width).Render(title),
			selectedItemStyle.Width(width).Render(body),
		)
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		itemTitleStyle.Render(title),
		itemPreviewStyle.Render(body),
	)
}
