// Package store holds the authoritative client-side view of the note service:
// the note list, the selection, the search filter, and the fetch/mutation
// lifecycle.
//
// Requests run inside tea.Cmds that only produce messages. Every state change
// happens in Update, on the program's event loop, so the Store never needs
// locking.
package store

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/noted/internal/logging"
	"github.com/Paintersrp/noted/internal/note"
)

// NoteAPI is the remote service as seen by the store.
type NoteAPI interface {
	ListNotes(ctx context.Context) ([]note.Note, error)
	CreateNote(ctx context.Context, title, content string) (note.Note, error)
	UpdateNote(ctx context.Context, id note.ID, title, content string) error
	DeleteNote(ctx context.Context, id note.ID) error
}

// Draft is the payload of a save. An empty ID creates a new note.
type Draft struct {
	ID      note.ID
	Title   string
	Content string
}

// LoadedMsg carries the result of a list fetch.
type LoadedMsg struct {
	seq   uint64
	Notes []note.Note
	Err   error
}

// SavedMsg carries the result of a create (Created) or an update. Updates
// also carry the submitted fields.
type SavedMsg struct {
	ID      note.ID
	Created bool
	Err     error

	Title   string
	Content string
}

type DeletedMsg struct {
	ID  note.ID
	Err error
}

type Store struct {
	api    NoteAPI
	ctx    context.Context
	logger *slog.Logger

	notes    []note.Note
	selected note.ID
	drafting bool
	query    string

	loading     bool
	initialized bool
	busy        bool
	failure     *Failure

	// refreshSeq identifies the most recently initiated fetch; results of
	// older fetches are dropped.
	refreshSeq uint64
}

type Option func(*Store)

func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithContext sets the context requests run under.
func WithContext(ctx context.Context) Option {
	return func(s *Store) {
		if ctx != nil {
			s.ctx = ctx
		}
	}
}

func New(api NoteAPI, opts ...Option) *Store {
	s := &Store{
		api:    api,
		ctx:    context.Background(),
		logger: logging.Discard(),
		notes:  []note.Note{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh fetches the full note list. Prior notes stay in place until the
// fetch succeeds.
func (s *Store) Refresh() tea.Cmd {
	s.refreshSeq++
	seq := s.refreshSeq
	s.loading = true

	api, ctx := s.api, s.ctx
	return func() tea.Msg {
		notes, err := api.ListNotes(ctx)
		return LoadedMsg{seq: seq, Notes: notes, Err: err}
	}
}

// Save creates or updates a note. A draft whose title and content are both
// blank is ignored, as is any save issued while another mutation is in flight.
func (s *Store) Save(d Draft) tea.Cmd {
	if note.Blank(d.Title, d.Content) {
		return nil
	}
	if s.busy {
		s.logger.Debug("save dropped, mutation in flight", "id", d.ID)
		return nil
	}

	s.failure = nil
	s.busy = true

	api, ctx := s.api, s.ctx
	if d.ID.IsZero() {
		return func() tea.Msg {
			created, err := api.CreateNote(ctx, d.Title, d.Content)
			return SavedMsg{ID: created.ID, Created: true, Err: err}
		}
	}

	return func() tea.Msg {
		err := api.UpdateNote(ctx, d.ID, d.Title, d.Content)
		return SavedMsg{ID: d.ID, Err: err, Title: d.Title, Content: d.Content}
	}
}

// Delete removes a persisted note.
func (s *Store) Delete(id note.ID) tea.Cmd {
	if id.IsZero() {
		return nil
	}
	if s.busy {
		s.logger.Debug("delete dropped, mutation in flight", "id", id)
		return nil
	}

	s.failure = nil
	s.busy = true

	api, ctx := s.api, s.ctx
	return func() tea.Msg {
		return DeletedMsg{ID: id, Err: api.DeleteNote(ctx, id)}
	}
}

// Update applies the result of a request and returns the follow-up command,
// if any.
func (s *Store) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case LoadedMsg:
		return s.applyLoaded(msg)
	case SavedMsg:
		return s.applySaved(msg)
	case DeletedMsg:
		return s.applyDeleted(msg)
	}
	return nil
}

func (s *Store) applyLoaded(msg LoadedMsg) tea.Cmd {
	if msg.seq != s.refreshSeq {
		s.logger.Debug("stale refresh dropped", "seq", msg.seq, "latest", s.refreshSeq)
		return nil
	}

	s.loading = false
	s.initialized = true

	if msg.Err != nil {
		s.logger.Error("refresh failed", "err", msg.Err)
		s.fail(FetchFailure, msg.Err)
		return nil
	}

	notes := msg.Notes
	if notes == nil {
		notes = []note.Note{}
	}
	s.notes = notes
	if s.failure != nil && s.failure.Kind == FetchFailure {
		s.failure = nil
	}
	s.logger.Debug("refreshed", "notes", len(notes))
	return nil
}

func (s *Store) applySaved(msg SavedMsg) tea.Cmd {
	s.busy = false

	if msg.Err != nil {
		s.logger.Error("save failed", "id", msg.ID, "created", msg.Created, "err", msg.Err)
		s.fail(SaveFailure, msg.Err)
		return nil
	}

	if msg.Created {
		s.selected = msg.ID
		s.drafting = false
	} else {
		// keep the accepted values until the refresh replaces them
		s.notes = append([]note.Note(nil), s.notes...)
		for i := range s.notes {
			if s.notes[i].ID == msg.ID {
				s.notes[i].Title = msg.Title
				s.notes[i].Content = msg.Content
				break
			}
		}
	}
	s.logger.Info("saved", "id", msg.ID, "created", msg.Created)
	return s.Refresh()
}

func (s *Store) applyDeleted(msg DeletedMsg) tea.Cmd {
	s.busy = false

	if msg.Err != nil {
		s.logger.Error("delete failed", "id", msg.ID, "err", msg.Err)
		s.fail(DeleteFailure, msg.Err)
		return nil
	}

	s.selected = ""
	s.logger.Info("deleted", "id", msg.ID)
	return s.Refresh()
}

func (s *Store) fail(kind FailureKind, err error) {
	s.failure = &Failure{Kind: kind, Message: failureMessage(kind, err)}
}

// Select sets the selection without checking that the note exists; a stale
// id resolves to the default note.
func (s *Store) Select(id note.ID) {
	s.selected = id
	s.drafting = false
}

// RequestNew clears the selection and displays an empty draft, even when
// notes exist.
func (s *Store) RequestNew() {
	s.selected = ""
	s.drafting = true
}

// Selected returns the displayed note; false means the draft is displayed.
func (s *Store) Selected() (note.Note, bool) {
	return Resolve(s.notes, s.selected, s.drafting)
}

// Resolve is the selection rule: an explicit draft request shows the draft,
// a known id shows that note, otherwise the first note, otherwise the draft.
func Resolve(notes []note.Note, selected note.ID, drafting bool) (note.Note, bool) {
	if drafting {
		return note.Note{}, false
	}
	if n, ok := note.Find(notes, selected); ok {
		return n, true
	}
	if len(notes) > 0 {
		return notes[0], true
	}
	return note.Note{}, false
}

// Filtered returns the notes matching the current query, in list order.
func (s *Store) Filtered() []note.Note {
	return FilterNotes(s.notes, s.query)
}

// FilterNotes keeps the notes whose title or content contains query, ignoring
// case. The input slice is not modified.
func FilterNotes(notes []note.Note, query string) []note.Note {
	out := make([]note.Note, 0, len(notes))
	for _, n := range notes {
		if n.Matches(query) {
			out = append(out, n)
		}
	}
	return out
}

func (s *Store) SetQuery(q string) {
	s.query = q
}

func (s *Store) Query() string {
	return s.query
}

// Notes returns a copy of the note list.
func (s *Store) Notes() []note.Note {
	return append([]note.Note(nil), s.notes...)
}

func (s *Store) SelectedID() note.ID {
	return s.selected
}

func (s *Store) Drafting() bool {
	return s.drafting
}

func (s *Store) Loading() bool {
	return s.loading
}

// Initialized reports whether the first fetch has completed, successfully or not.
func (s *Store) Initialized() bool {
	return s.initialized
}

// Busy reports whether a save or delete is in flight.
func (s *Store) Busy() bool {
	return s.busy
}

// Err returns the current user-facing failure, or nil.
func (s *Store) Err() *Failure {
	if s.failure == nil {
		return nil
	}
	f := *s.failure
	return &f
}
