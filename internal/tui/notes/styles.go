package notes

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	accent    = lipgloss.Color("#0AF")
	muted     = lipgloss.Color("#767676")
	border    = lipgloss.Color("#334455")
	errorTint = lipgloss.Color("#F38BA8")
)

var (
	navStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFF")).
			Background(lipgloss.Color("#224")).
			Padding(0, 1)

	appTitleStyle = lipgloss.NewStyle().
			Foreground(accent).
			Bold(true)

	navHintStyle = lipgloss.NewStyle().
			Foreground(muted)

	sidebarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(border)

	mainStyle = lipgloss.NewStyle().
			Padding(0, 2)

	itemTitleStyle   = lipgloss.NewStyle().Bold(true)
	itemPreviewStyle = lipgloss.NewStyle().Foreground(muted)

	selectedItemStyle = lipgloss.NewStyle().
				Foreground(accent).
				Background(lipgloss.Color("#224"))

	createItemStyle = lipgloss.NewStyle().
			Foreground(accent)

	emptyStyle = lipgloss.NewStyle().
			Foreground(muted).
			Italic(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(accent)

	readOnlyTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 0, 1, 0)

	modeStyle = lipgloss.NewStyle().
			Foreground(muted)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorTint).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(accent).
			Render

	confirmStyle = lipgloss.NewStyle().
			Foreground(errorTint)

	footerStyle = lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1)
)
