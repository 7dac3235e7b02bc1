// Package output renders notes for the non-interactive commands.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/noted/internal/note"
)

var (
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676"))
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#0AF")).Bold(true)
	previewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A8A8A8"))
	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#767676")).Italic(true)
)

// List prints one line per note: id, title and content preview.
func List(w io.Writer, notes []note.Note, previewLen int) {
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes.")
		return
	}

	idWidth := 0
	for _, n := range notes {
		idWidth = max(idWidth, len(n.ID.String()))
	}

	for _, n := range notes {
		id := n.ID.String() + strings.Repeat(" ", idWidth-len(n.ID.String()))
		fmt.Fprintf(
			w,
			"%s  %s  %s\n",
			idStyle.Render(id),
			titleStyle.Render(n.DisplayTitle()),
			previewStyle.Render(n.Preview(previewLen)),
		)
	}
}

// Note prints a single note in full.
func Note(w io.Writer, n note.Note) {
	fmt.Fprintln(w, titleStyle.Render(n.DisplayTitle()))

	meta := "id " + n.ID.String()
	if !n.UpdatedAt.IsZero() {
		meta += ", updated " + n.UpdatedAt.Local().Format("2006-01-02 15:04")
	}
	fmt.Fprintln(w, metaStyle.Render(meta))

	if strings.TrimSpace(n.Content) != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, n.Content)
	}
}
