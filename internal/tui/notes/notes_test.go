package notes

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/noted/internal/note"
	"github.com/Paintersrp/noted/internal/session"
	"github.com/Paintersrp/noted/internal/store"
)

type fakeAPI struct {
	notes   []note.Note
	nextID  int
	listErr error
	saveErr error

	deleted []note.ID
}

func (f *fakeAPI) ListNotes(context.Context) ([]note.Note, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]note.Note(nil), f.notes...), nil
}

func (f *fakeAPI) CreateNote(_ context.Context, title, content string) (note.Note, error) {
	if f.saveErr != nil {
		return note.Note{}, f.saveErr
	}
	f.nextID++
	n := note.Note{ID: note.ID(fmt.Sprint(f.nextID)), Title: title, Content: content}
	f.notes = append(f.notes, n)
	return n, nil
}

func (f *fakeAPI) UpdateNote(_ context.Context, id note.ID, title, content string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	for i := range f.notes {
		if f.notes[i].ID == id {
			f.notes[i].Title = title
			f.notes[i].Content = content
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeAPI) DeleteNote(_ context.Context, id note.ID) error {
	f.deleted = append(f.deleted, id)
	for i := range f.notes {
		if f.notes[i].ID == id {
			f.notes = append(f.notes[:i], f.notes[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func seededAPI() *fakeAPI {
	return &fakeAPI{
		nextID: 2,
		notes: []note.Note{
			{ID: "1", Title: "Groceries", Content: "Milk, eggs"},
			{ID: "2", Title: "Ideas", Content: "A note taking app"},
		},
	}
}

func newTestModel(t *testing.T, api *fakeAPI) *Model {
	t.Helper()
	m := New(store.New(api), Options{Endpoint: "http://localhost:5000"})
	// blinking cursors schedule timers
	m.search.Cursor.SetMode(cursor.CursorStatic)
	m.title.Cursor.SetMode(cursor.CursorStatic)
	m.content.Cursor.SetMode(cursor.CursorStatic)
	m.resize(120, 40)
	run(t, m, m.Init())
	return m
}

// run executes cmd and feeds the store and clipboard results back into the
// model until nothing is left. Widget and spinner timers are skipped.
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("command chain did not settle")
		}
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case store.LoadedMsg, store.SavedMsg, store.DeletedMsg, clipboardMsg:
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
}

func press(t *testing.T, m *Model, keys ...tea.KeyMsg) {
	t.Helper()
	for _, k := range keys {
		_, cmd := m.Update(k)
		run(t, m, cmd)
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestInitialLoadDisplaysFirstNote(t *testing.T) {
	m := newTestModel(t, seededAPI())

	if m.session.Mode() != session.Viewing || m.session.ID() != "1" {
		t.Fatalf("expected to view note 1, got %s %q", m.session.Mode(), m.session.ID())
	}
	if m.title.Value() != "Groceries" {
		t.Fatalf("expected the title widget to mirror the note, got %q", m.title.Value())
	}

	view := m.View()
	for _, want := range []string{"Groceries", "Ideas", "+ New note", "localhost:5000"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q:\n%s", want, view)
		}
	}
}

func TestEmptyServiceShowsDraft(t *testing.T) {
	m := newTestModel(t, &fakeAPI{})

	if m.session.Mode() != session.Drafting {
		t.Fatalf("expected a draft, got %s", m.session.Mode())
	}
	if !strings.Contains(m.View(), "No notes yet") {
		t.Fatal("expected the empty sidebar message")
	}
}

func TestLoadFailureBlocksMainPane(t *testing.T) {
	api := seededAPI()
	api.listErr = errors.New("connection refused")
	m := newTestModel(t, api)

	view := m.View()
	if !strings.Contains(view, "Failed to load notes") {
		t.Fatalf("expected the load error in the view:\n%s", view)
	}
	if !strings.Contains(view, "+ New note") {
		t.Fatal("expected the sidebar to still render")
	}

	api.listErr = nil
	press(t, m, runes("r"))
	if m.store.Err() != nil {
		t.Fatalf("expected retry to clear the error, got %v", m.store.Err())
	}
	if !strings.Contains(m.View(), "Groceries") {
		t.Fatal("expected notes after retry")
	}
}

func TestSearchFiltersSidebar(t *testing.T) {
	m := newTestModel(t, seededAPI())

	press(t, m, runes("/"), runes("GRO"))
	if m.store.Query() != "GRO" {
		t.Fatalf("expected the query to reach the store, got %q", m.store.Query())
	}

	sidebar := m.sidebarView()
	if !strings.Contains(sidebar, "Groceries") || strings.Contains(sidebar, "Ideas") {
		t.Fatalf("unexpected filtered sidebar:\n%s", sidebar)
	}

	press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != focusList {
		t.Fatal("expected esc to leave the search box")
	}
}

func TestMoveSelection(t *testing.T) {
	m := newTestModel(t, seededAPI())

	press(t, m, runes("j"))
	if m.session.ID() != "2" {
		t.Fatalf("expected note 2, got %q", m.session.ID())
	}
	press(t, m, runes("j"))
	if m.session.ID() != "2" {
		t.Fatal("expected the selection to stop at the last note")
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.session.ID() != "1" {
		t.Fatalf("expected note 1, got %q", m.session.ID())
	}
}

func TestCreateNote(t *testing.T) {
	api := seededAPI()
	m := newTestModel(t, api)

	press(t, m, runes("n"))
	if m.session.Mode() != session.Drafting || m.focus != focusTitle {
		t.Fatalf("expected an empty draft with title focus, got %s", m.session.Mode())
	}
	if m.title.Value() != "" {
		t.Fatalf("expected an empty title, got %q", m.title.Value())
	}

	press(t, m,
		runes("Call mom"),
		tea.KeyMsg{Type: tea.KeyTab},
		runes("Sunday"),
		tea.KeyMsg{Type: tea.KeyCtrlS},
	)

	if len(api.notes) != 3 {
		t.Fatalf("expected the note to be created, got %d notes", len(api.notes))
	}
	if m.session.Mode() != session.Viewing || m.session.ID() != "3" {
		t.Fatalf("expected to view the new note, got %s %q", m.session.Mode(), m.session.ID())
	}
	if m.content.Value() != "Sunday" {
		t.Fatalf("unexpected content %q", m.content.Value())
	}
}

func TestBlankDraftIsNotSaved(t *testing.T) {
	api := seededAPI()
	m := newTestModel(t, api)

	press(t, m, runes("n"), runes("   "), tea.KeyMsg{Type: tea.KeyCtrlS})
	if len(api.notes) != 2 {
		t.Fatal("expected no request for a blank draft")
	}
	if m.status != "Nothing to save" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestEditSaveAndCancel(t *testing.T) {
	api := seededAPI()
	m := newTestModel(t, api)

	press(t, m, runes("e"))
	if m.session.Mode() != session.Editing {
		t.Fatalf("expected editing, got %s", m.session.Mode())
	}
	press(t, m, runes(" list"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.session.Mode() != session.Viewing || m.title.Value() != "Groceries" {
		t.Fatalf("expected cancel to restore the note, got %s %q", m.session.Mode(), m.title.Value())
	}

	press(t, m, runes("e"), runes(" list"), tea.KeyMsg{Type: tea.KeyCtrlS})
	if api.notes[0].Title != "Groceries list" {
		t.Fatalf("expected the update to reach the API, got %q", api.notes[0].Title)
	}
	if m.session.Mode() != session.Viewing {
		t.Fatalf("expected viewing after save, got %s", m.session.Mode())
	}
}

func TestSaveFailureKeepsInput(t *testing.T) {
	api := seededAPI()
	m := newTestModel(t, api)
	api.saveErr = errors.New("server exploded")

	press(t, m, runes("e"), runes("!"), tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.session.Mode() != session.Editing || m.title.Value() != "Groceries!" {
		t.Fatalf("expected pending input to survive, got %s %q", m.session.Mode(), m.title.Value())
	}
	view := m.View()
	if !strings.Contains(view, "Failed to save note") || !strings.Contains(view, "Groceries!") {
		t.Fatalf("expected the error above the form:\n%s", view)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	api := seededAPI()
	m := newTestModel(t, api)

	press(t, m, runes("d"), runes("n"))
	if len(api.deleted) != 0 {
		t.Fatal("expected n to cancel the delete")
	}
	if m.session.Mode() != session.Viewing {
		t.Fatal("expected n to cancel instead of starting a draft")
	}

	press(t, m, runes("d"))
	if !strings.Contains(m.View(), "(y/n)") {
		t.Fatal("expected the confirmation prompt")
	}
	press(t, m, runes("y"))

	if len(api.deleted) != 1 || api.deleted[0] != "1" {
		t.Fatalf("unexpected deletes %v", api.deleted)
	}
	if m.session.ID() != "2" {
		t.Fatalf("expected the remaining note to be displayed, got %q", m.session.ID())
	}
}

func TestDeletePromptIgnoresQuit(t *testing.T) {
	api := seededAPI()
	m := newTestModel(t, api)

	press(t, m, runes("d"))
	_, cmd := m.Update(runes("q"))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("expected q to be ignored while confirming a delete")
		}
	}
	if !m.session.ConfirmingDelete() {
		t.Fatal("expected the prompt to stay open")
	}

	press(t, m, runes("n"))
	_, cmd = m.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected q to quit from the list")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected a quit message")
	}
}

func TestSavedValuesSurviveFailedRefresh(t *testing.T) {
	api := seededAPI()
	m := newTestModel(t, api)

	press(t, m, runes("e"), runes(" list"))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	api.listErr = errors.New("connection reset")
	run(t, m, cmd)

	if m.session.Mode() != session.Viewing {
		t.Fatalf("expected viewing after save, got %s", m.session.Mode())
	}
	if m.title.Value() != "Groceries list" {
		t.Fatalf("expected the saved title to stay in the form, got %q", m.title.Value())
	}
}

func TestCopyContent(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error {
		copied = s
		return nil
	}
	defer func() { writeClipboard = orig }()

	m := newTestModel(t, seededAPI())
	press(t, m, runes("y"))

	if copied != "Milk, eggs" {
		t.Fatalf("unexpected clipboard content %q", copied)
	}
	if m.status != "Copied to clipboard" {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestToggleSidebar(t *testing.T) {
	m := newTestModel(t, seededAPI())

	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if m.sidebarOpen || strings.Contains(m.View(), "+ New note") {
		t.Fatal("expected the sidebar to be hidden")
	}
	press(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if !m.sidebarOpen {
		t.Fatal("expected the sidebar to be shown")
	}
}
