// Package apitest runs an in-memory note service for tests.
package apitest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/Paintersrp/noted/internal/api"
	"github.com/Paintersrp/noted/internal/config"
	"github.com/Paintersrp/noted/internal/logging"
	"github.com/Paintersrp/noted/internal/note"
	"github.com/Paintersrp/noted/internal/state"
)

type Server struct {
	URL string

	mu     sync.Mutex
	notes  []note.Note
	nextID int
	fail   bool
}

// NewServer starts a service seeded with notes. Ids of seeded notes are kept;
// created notes get increasing numeric ids.
func NewServer(t *testing.T, seed ...note.Note) *Server {
	t.Helper()

	s := &Server{notes: append([]note.Note(nil), seed...), nextID: len(seed)}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /notes", s.list)
	mux.HandleFunc("POST /notes", s.create)
	mux.HandleFunc("PUT /notes/{id}", s.update)
	mux.HandleFunc("DELETE /notes/{id}", s.remove)

	srv := httptest.NewServer(s.guard(mux))
	t.Cleanup(srv.Close)
	s.URL = srv.URL
	return s
}

// Fail makes every following request answer 500.
func (s *Server) Fail(fail bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = fail
}

func (s *Server) Notes() []note.Note {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]note.Note(nil), s.notes...)
}

// State returns application state wired to the server with default config.
func (s *Server) State() *state.State {
	return &state.State{
		Config: &config.Config{},
		API:    api.New(s.URL, api.WithTimeout(2*time.Second)),
		Logger: logging.Discard(),
		APIURL: s.URL,
	}
}

func (s *Server) guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		fail := s.fail
		s.mu.Unlock()
		if fail {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "service unavailable"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) list(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Notes())
}

type payload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.nextID++
	n := note.Note{
		ID:        note.ID(strconv.Itoa(s.nextID)),
		Title:     p.Title,
		Content:   p.Content,
		UpdatedAt: note.Timestamp{Time: time.Now().UTC().Truncate(time.Second)},
	}
	s.notes = append(s.notes, n)
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, n)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request) {
	var p payload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	id := note.ID(r.PathValue("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes[i].Title = p.Title
			s.notes[i].Content = p.Content
			s.notes[i].UpdatedAt = note.Timestamp{Time: time.Now().UTC().Truncate(time.Second)}
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "note not found"})
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	id := note.ID(r.PathValue("id"))
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	writeJSON(w, http.StatusNotFound, map[string]string{"error": "note not found"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
