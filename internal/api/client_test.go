package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Paintersrp/noted/internal/note"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL+"/", WithTimeout(2*time.Second))
}

func TestListNotes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/notes" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "title": "A", "content": "first", "updated_at": "2024-03-05T14:30:00Z"},
			{"id": 2, "title": "B", "content": "second", "updated_at": null}
		]`))
	})

	notes, err := c.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
	if notes[0].ID != "1" || notes[1].ID != "2" {
		t.Fatalf("unexpected ids %q, %q", notes[0].ID, notes[1].ID)
	}
	if notes[0].UpdatedAt.IsZero() {
		t.Fatal("expected first note to carry a timestamp")
	}
}

func TestListNotesEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`null`))
	})

	notes, err := c.ListNotes(context.Background())
	if err != nil {
		t.Fatalf("ListNotes error: %v", err)
	}
	if notes == nil || len(notes) != 0 {
		t.Fatalf("expected an empty, non-nil slice, got %#v", notes)
	}
}

func TestCreateNoteSendsPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/notes" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected json content type, got %q", ct)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode body: %v", err)
		}
		if body["title"] != "Groceries" || body["content"] != "Milk, eggs" {
			t.Errorf("unexpected body %#v", body)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 7, "title": "Groceries", "content": "Milk, eggs"}`))
	})

	created, err := c.CreateNote(context.Background(), "Groceries", "Milk, eggs")
	if err != nil {
		t.Fatalf("CreateNote error: %v", err)
	}
	if created.ID != "7" {
		t.Fatalf("expected id 7, got %q", created.ID)
	}
}

func TestCreateNoteWithoutIDFails(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"title": "x", "content": ""}`))
	})

	_, err := c.CreateNote(context.Background(), "x", "")
	if AsTransportError(err) == nil {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestUpdateAndDeleteUseEscapedPath(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen = append(seen, r.Method+" "+r.URL.EscapedPath())
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	ctx := context.Background()
	if err := c.UpdateNote(ctx, "a b", "t", "c"); err != nil {
		t.Fatalf("UpdateNote error: %v", err)
	}
	if err := c.DeleteNote(ctx, "42"); err != nil {
		t.Fatalf("DeleteNote error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []string{"PUT /notes/a%20b", "DELETE /notes/42"}
	if len(seen) != len(want) {
		t.Fatalf("expected %d requests, got %v", len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("request %d: expected %q, got %q", i, want[i], seen[i])
		}
	}
}

func TestNonSuccessStatusIsTransportError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "note not found"}`))
	})

	err := c.UpdateNote(context.Background(), "99", "t", "c")
	tErr := AsTransportError(err)
	if tErr == nil {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if tErr.Status != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", tErr.Status)
	}
	if tErr.Message != "note not found" {
		t.Fatalf("expected server message, got %q", tErr.Message)
	}
}

func TestNonJSONErrorBodyFallsBackToStatusText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})

	_, err := c.ListNotes(context.Background())
	tErr := AsTransportError(err)
	if tErr == nil {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if tErr.Message != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("unexpected message %q", tErr.Message)
	}
}

func TestNetworkFailureIsTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	c := New(url, WithTimeout(time.Second))
	_, err := c.ListNotes(context.Background())
	tErr := AsTransportError(err)
	if tErr == nil {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if tErr.Status != 0 {
		t.Fatalf("expected no status for a network failure, got %d", tErr.Status)
	}
}

func TestMissingIDIsRejectedLocally(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("no request expected, got %s %s", r.Method, r.URL.Path)
	})

	err := c.DeleteNote(context.Background(), note.ID(""))
	if !errors.Is(err, ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
	if AsTransportError(err) == nil {
		t.Fatalf("expected the error to be a TransportError, got %T", err)
	}
}
