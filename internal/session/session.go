// Package session implements the edit state of the detail pane.
//
// A Session is scoped to the displayed note. Viewing and Editing always carry
// the id of a persisted note; Drafting never does, so "editing nothing" cannot
// be represented.
package session

import (
	"github.com/Paintersrp/noted/internal/note"
)

type Mode int

const (
	// Drafting edits an unsaved note. It is the zero value so that a fresh
	// Session with nothing displayed is already consistent.
	Drafting Mode = iota
	Viewing
	Editing
)

func (m Mode) String() string {
	switch m {
	case Viewing:
		return "viewing"
	case Editing:
		return "editing"
	case Drafting:
		return "drafting"
	}
	return "unknown"
}

type Session struct {
	mode    Mode
	id      note.ID
	title   string
	content string

	confirmingDelete bool
}

func New() *Session {
	return &Session{mode: Drafting}
}

// Sync scopes the session to the displayed note. ok=false means the draft is
// displayed. A change of identity resets the session; the same identity only
// refreshes the fields while Viewing, so pending edits survive refreshes.
func (s *Session) Sync(n note.Note, ok bool) {
	if !ok {
		if s.mode != Drafting {
			s.reset(Drafting, note.Note{})
		}
		return
	}

	if s.mode == Drafting || s.id != n.ID {
		s.reset(Viewing, n)
		return
	}

	if s.mode == Viewing {
		s.title = n.Title
		s.content = n.Content
	}
}

func (s *Session) reset(mode Mode, n note.Note) {
	s.mode = mode
	s.id = n.ID
	s.title = n.Title
	s.content = n.Content
	s.confirmingDelete = false
}

// Edit enters Editing from Viewing.
func (s *Session) Edit() bool {
	if s.mode != Viewing {
		return false
	}
	s.mode = Editing
	s.confirmingDelete = false
	return true
}

// Cancel leaves Editing and restores the persisted values.
func (s *Session) Cancel(n note.Note) bool {
	if s.mode != Editing || n.ID != s.id {
		return false
	}
	s.reset(Viewing, n)
	return true
}

// Saved returns to Viewing after a successful update of the scoped note.
func (s *Session) Saved(id note.ID) {
	if s.mode == Editing && s.id == id {
		s.mode = Viewing
	}
}

func (s *Session) Editable() bool {
	return s.mode == Editing || s.mode == Drafting
}

// SetTitle and SetContent only accept input while the fields are editable.
func (s *Session) SetTitle(v string) bool {
	if !s.Editable() {
		return false
	}
	s.title = v
	return true
}

func (s *Session) SetContent(v string) bool {
	if !s.Editable() {
		return false
	}
	s.content = v
	return true
}

// Blank reports whether a submit would be a no-op.
func (s *Session) Blank() bool {
	return note.Blank(s.title, s.content)
}

// Submission returns the values to save. The id is empty while Drafting.
func (s *Session) Submission() (note.ID, string, string) {
	if s.mode == Drafting {
		return "", s.title, s.content
	}
	return s.id, s.title, s.content
}

// RequestDelete arms the confirmation step. Drafts cannot be deleted.
func (s *Session) RequestDelete() bool {
	if s.mode == Drafting || s.id.IsZero() {
		return false
	}
	s.confirmingDelete = true
	return true
}

// ConfirmDelete disarms the confirmation and returns the id to delete.
func (s *Session) ConfirmDelete() (note.ID, bool) {
	if !s.confirmingDelete {
		return "", false
	}
	s.confirmingDelete = false
	return s.id, true
}

func (s *Session) CancelDelete() {
	s.confirmingDelete = false
}

func (s *Session) ConfirmingDelete() bool {
	return s.confirmingDelete
}

func (s *Session) Mode() Mode {
	return s.mode
}

func (s *Session) ID() note.ID {
	return s.id
}

func (s *Session) Title() string {
	return s.title
}

func (s *Session) Content() string {
	return s.content
}
