package notes

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/noted/internal/constants"
	"github.com/Paintersrp/noted/internal/session"
	"github.com/Paintersrp/noted/internal/state"
	"github.com/Paintersrp/noted/internal/store"
)

const sidebarWidth = 36

// swapped in tests
var writeClipboard = clipboard.WriteAll

type focus int

const (
	focusList focus = iota
	focusSearch
	focusTitle
	focusContent
)

type clipboardMsg struct {
	err error
}

type Options struct {
	Endpoint      string
	PreviewLength int
}

type Model struct {
	store   *store.Store
	session *session.Session
	keys    *keyMap

	help    help.Model
	spinner spinner.Model
	search  textinput.Model
	title   textinput.Model
	content textarea.Model

	focus       focus
	sidebarOpen bool
	ticking     bool
	width       int
	height      int

	endpoint   string
	previewLen int
	status     string
}

func New(st *store.Store, opts Options) *Model {
	search := textinput.New()
	search.Placeholder = "Search notes..."
	search.Prompt = "/ "
	search.CharLimit = 0

	title := textinput.New()
	title.Placeholder = "Title"
	title.Prompt = ""
	title.CharLimit = 0

	content := textarea.New()
	content.Placeholder = "Write something..."
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.Prompt = ""
	content.Blur()

	previewLen := opts.PreviewLength
	if previewLen <= 0 {
		previewLen = constants.PreviewLength
	}

	m := &Model{
		store:       st,
		session:     session.New(),
		keys:        newKeyMap(),
		help:        help.New(),
		spinner:     spinner.New(spinner.WithSpinner(spinner.Dot)),
		search:      search,
		title:       title,
		content:     content,
		sidebarOpen: true,
		endpoint:    endpointHost(opts.Endpoint),
		previewLen:  previewLen,
	}
	m.syncSession()
	return m
}

func (m *Model) Init() tea.Cmd {
	m.ticking = true
	return tea.Batch(m.store.Refresh(), m.spinner.Tick)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case spinner.TickMsg:
		if m.spinning() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		} else {
			m.ticking = false
		}

	case store.LoadedMsg:
		cmds = append(cmds, m.store.Update(msg))

	case store.SavedMsg:
		cmds = append(cmds, m.store.Update(msg))
		if msg.Err == nil {
			if !msg.Created {
				m.session.Saved(msg.ID)
			}
			m.status = "Saved"
			m.setFocus(focusList)
		}

	case store.DeletedMsg:
		cmds = append(cmds, m.store.Update(msg))
		if msg.Err == nil {
			m.status = "Deleted"
		}

	case clipboardMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		} else {
			m.status = "Copied to clipboard"
		}

	case tea.KeyMsg:
		// the delete prompt takes every key but ctrl+c
		listQuit := m.focus == focusList && !m.session.ConfirmingDelete()
		if key.Matches(msg, m.keys.quit) && (msg.String() == "ctrl+c" || listQuit) {
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))
	}

	m.syncSession()
	if m.spinning() && !m.ticking {
		m.ticking = true
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.session.ConfirmingDelete() {
		return m.handleConfirm(msg)
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusTitle, focusContent:
		return m.handleFormKey(msg)
	}
	return m.handleListKey(msg)
}

func (m *Model) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.confirm):
		id, ok := m.session.ConfirmDelete()
		if !ok {
			return nil
		}
		cmd := m.store.Delete(id)
		if cmd == nil {
			m.status = "Busy, try again"
		}
		return cmd
	case key.Matches(msg, m.keys.deny):
		m.session.CancelDelete()
	}
	return nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.cancel) || msg.Type == tea.KeyEnter {
		m.setFocus(focusList)
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.store.SetQuery(m.search.Value())
	return cmd
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.save):
		return m.save()

	case key.Matches(msg, m.keys.cancel):
		if m.session.Mode() == session.Editing {
			if n, ok := m.store.Selected(); ok {
				m.session.Cancel(n)
				m.loadFields()
			}
		}
		m.setFocus(focusList)
		return nil

	case key.Matches(msg, m.keys.nextField):
		if m.focus == focusTitle {
			return m.setFocus(focusContent)
		}
		return m.setFocus(focusTitle)

	case key.Matches(msg, m.keys.toggleSidebar):
		m.toggleSidebar()
		return nil
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.title, cmd = m.title.Update(msg)
		m.session.SetTitle(m.title.Value())
	} else {
		m.content, cmd = m.content.Update(msg)
		m.session.SetContent(m.content.Value())
	}
	return cmd
}

func (m *Model) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.toggleSidebar):
		m.toggleSidebar()

	case key.Matches(msg, m.keys.search):
		m.sidebarOpen = true
		m.resize(m.width, m.height)
		return m.setFocus(focusSearch)

	case key.Matches(msg, m.keys.create):
		m.store.RequestNew()
		m.syncSession()
		return m.setFocus(focusTitle)

	case key.Matches(msg, m.keys.up):
		m.move(-1)

	case key.Matches(msg, m.keys.down):
		m.move(1)

	case key.Matches(msg, m.keys.edit):
		switch m.session.Mode() {
		case session.Viewing:
			m.session.Edit()
			return m.setFocus(focusTitle)
		case session.Drafting:
			return m.setFocus(focusTitle)
		}

	case key.Matches(msg, m.keys.remove):
		m.session.RequestDelete()

	case key.Matches(msg, m.keys.copy):
		return m.copyContent()

	case key.Matches(msg, m.keys.refresh):
		m.status = ""
		return m.store.Refresh()
	}
	return nil
}

func (m *Model) save() tea.Cmd {
	id, title, content := m.session.Submission()
	if m.session.Blank() {
		m.status = "Nothing to save"
		return nil
	}

	cmd := m.store.Save(store.Draft{ID: id, Title: title, Content: content})
	if cmd == nil {
		m.status = "Busy, try again"
		return nil
	}
	m.status = ""
	return cmd
}

// move steps the selection through the filtered list.
func (m *Model) move(delta int) {
	visible := m.store.Filtered()
	if len(visible) == 0 {
		return
	}

	current := -1
	if n, ok := m.store.Selected(); ok {
		for i, v := range visible {
			if v.ID == n.ID {
				current = i
				break
			}
		}
	}

	next := current + delta
	if current == -1 {
		next = 0
	}
	if next < 0 {
		next = 0
	}
	if next >= len(visible) {
		next = len(visible) - 1
	}
	m.store.Select(visible[next].ID)
	m.status = ""
}

func (m *Model) copyContent() tea.Cmd {
	n, ok := m.store.Selected()
	if !ok {
		return nil
	}
	text := n.Content
	return func() tea.Msg {
		return clipboardMsg{err: writeClipboard(text)}
	}
}

// syncSession scopes the session to the displayed note and mirrors it into
// the widgets when it changes.
func (m *Model) syncSession() {
	n, ok := m.store.Selected()
	prevID, prevMode := m.session.ID(), m.session.Mode()
	m.session.Sync(n, ok)

	if m.session.ID() != prevID || m.session.Mode() != prevMode || m.session.Mode() == session.Viewing {
		m.loadFields()
	}

	if !m.session.Editable() && (m.focus == focusTitle || m.focus == focusContent) {
		m.setFocus(focusList)
	}
}

func (m *Model) loadFields() {
	if m.title.Value() != m.session.Title() {
		m.title.SetValue(m.session.Title())
	}
	if m.content.Value() != m.session.Content() {
		m.content.SetValue(m.session.Content())
	}
}

func (m *Model) setFocus(f focus) tea.Cmd {
	m.focus = f
	m.search.Blur()
	m.title.Blur()
	m.content.Blur()

	switch f {
	case focusSearch:
		return m.search.Focus()
	case focusTitle:
		return m.title.Focus()
	case focusContent:
		return m.content.Focus()
	}
	return nil
}

func (m *Model) toggleSidebar() {
	m.sidebarOpen = !m.sidebarOpen
	if !m.sidebarOpen && m.focus == focusSearch {
		m.setFocus(focusList)
	}
	m.resize(m.width, m.height)
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.help.Width = width

	w := m.mainWidth()
	m.title.Width = max(w-2, 10)
	m.content.SetWidth(max(w, 10))
	// nav, labels, status and footer
	m.content.SetHeight(max(height-12, 3))
	m.search.Width = sidebarWidth - 6
}

func (m *Model) mainWidth() int {
	w := m.width - 4
	if m.sidebarOpen {
		w -= sidebarWidth + 1
	}
	return w
}

// spinning reports whether something the user waits on is in flight.
func (m *Model) spinning() bool {
	return (m.store.Loading() && !m.store.Initialized()) || m.store.Busy()
}

func (m *Model) View() string {
	nav := m.navView()
	footer := m.footerView()

	body := m.mainView()
	if m.sidebarOpen {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), body)
	}

	return lipgloss.JoinVertical(lipgloss.Left, nav, body, footer)
}

func (m *Model) navView() string {
	toggle := "ctrl+b show sidebar"
	if m.sidebarOpen {
		toggle = "ctrl+b hide sidebar"
	}
	line := lipgloss.JoinHorizontal(
		lipgloss.Top,
		appTitleStyle.Render(constants.AppName),
		"  ",
		navHintStyle.Render(toggle),
		"  ",
		navHintStyle.Render(m.endpoint),
	)
	return navStyle.Width(max(m.width, lipgloss.Width(line))).Render(line)
}

func (m *Model) footerView() string {
	var bindings []key.Binding
	switch {
	case m.session.ConfirmingDelete():
		bindings = m.keys.confirmHelp()
	case m.focus == focusSearch:
		bindings = m.keys.searchHelp()
	case m.focus == focusTitle || m.focus == focusContent:
		bindings = m.keys.formHelp()
	default:
		bindings = m.keys.listHelp()
	}
	return footerStyle.Render(constants.AppName + " " + constants.Version + "  " + m.help.ShortHelpView(bindings))
}

func (m *Model) mainView() string {
	width := max(m.mainWidth(), 20)
	style := mainStyle.Width(width)

	if !m.store.Initialized() {
		return style.Render(m.spinner.View() + " Loading notes...")
	}

	if f := m.store.Err(); f != nil && f.Kind == store.FetchFailure {
		return style.Render(errorStyle.Render(f.Message) + "\n\n" + navHintStyle.Render("press r to retry"))
	}

	return style.Render(m.formView())
}

func (m *Model) formView() string {
	var b strings.Builder

	if f := m.store.Err(); f != nil {
		b.WriteString(errorStyle.Render(f.Message))
		b.WriteString("\n\n")
	}

	header := modeStyle.Render(m.session.Mode().String())
	if m.store.Busy() {
		header += " " + m.spinner.View() + " working..."
	}
	b.WriteString(header)
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Title"))
	b.WriteString("\n")
	if m.session.Editable() {
		b.WriteString(m.title.View())
	} else {
		b.WriteString(readOnlyTitleStyle.Render(m.session.Title()))
	}
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Content"))
	b.WriteString("\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")

	switch {
	case m.session.ConfirmingDelete():
		b.WriteString(confirmStyle.Render(fmt.Sprintf("Delete %q? (y/n)", m.title.Value())))
	case m.status != "":
		b.WriteString(statusStyle(m.status))
	}

	return b.String()
}

func endpointHost(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.Host
}

// Run starts the TUI on the alternate screen and blocks until it exits.
func Run(s *state.State) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	st := store.New(
		s.API,
		store.WithContext(ctx),
		store.WithLogger(s.Logger.With("component", "store")),
	)

	m := New(st, Options{
		Endpoint:      s.APIURL,
		PreviewLength: s.Config.Preview(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
