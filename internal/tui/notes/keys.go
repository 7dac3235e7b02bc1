package notes

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	quit          key.Binding
	toggleSidebar key.Binding
	search        key.Binding
	create        key.Binding
	up            key.Binding
	down          key.Binding
	edit          key.Binding
	save          key.Binding
	cancel        key.Binding
	nextField     key.Binding
	remove        key.Binding
	confirm       key.Binding
	deny          key.Binding
	refresh       key.Binding
	copy          key.Binding
}

func newKeyMap() *keyMap {
	return &keyMap{
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		toggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", "sidebar"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		create: key.NewBinding(
			key.WithKeys("n", "ctrl+n"),
			key.WithHelp("n", "new"),
		),
		up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		nextField: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "next field"),
		),
		remove: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		confirm: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "confirm"),
		),
		deny: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "cancel"),
		),
		refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy"),
		),
	}
}

// contextual help, depending on what has focus

func (k keyMap) listHelp() []key.Binding {
	return []key.Binding{k.up, k.down, k.create, k.edit, k.remove, k.search, k.copy, k.refresh, k.toggleSidebar, k.quit}
}

func (k keyMap) formHelp() []key.Binding {
	return []key.Binding{k.save, k.nextField, k.cancel}
}

func (k keyMap) searchHelp() []key.Binding {
	return []key.Binding{k.cancel}
}

func (k keyMap) confirmHelp() []key.Binding {
	return []key.Binding{k.confirm, k.deny}
}
