// Package note provides the note model shared by the API client, the store and the views.
package note

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/muesli/reflow/truncate"
)

const ellipsis = "..."

// ID is the opaque identifier the remote service assigns to a note.
// The zero value means the note has not been persisted yet.
type ID string

// IsZero reports whether the identifier is unset.
func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}

// UnmarshalJSON accepts both string and numeric identifiers, since the
// service is free to choose either representation.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid note id %s: %w", data, err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid note id %s: %w", data, err)
	}
	*id = ID(n.String())
	return nil
}

// Timestamp wraps time.Time with a tolerant JSON decoder. Servers disagree on
// formats (RFC 3339, RFC 1123, naive ISO), so anything dateparse understands is
// accepted and an empty value decodes to the zero time. Zone-less values are
// read as UTC.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var raw string
	if data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("invalid timestamp %s: %w", data, err)
		}
	} else {
		// unix seconds or milliseconds
		raw = string(data)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	parsed, err := dateparse.ParseIn(raw, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", raw, err)
	}
	t.Time = parsed
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339))
}

// MarshalYAML keeps exported dumps readable.
func (t Timestamp) MarshalYAML() (interface{}, error) {
	if t.IsZero() {
		return nil, nil
	}
	return t.Time.Format(time.RFC3339), nil
}

// Note is a title/content pair persisted by the remote service.
type Note struct {
	ID        ID        `json:"id,omitempty"         yaml:"id,omitempty"`
	Title     string    `json:"title"                yaml:"title"`
	Content   string    `json:"content"              yaml:"content"`
	UpdatedAt Timestamp `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// Persisted reports whether the note has a server-assigned identifier.
func (n Note) Persisted() bool {
	return !n.ID.IsZero()
}

// DisplayTitle returns the title, or a placeholder for untitled notes.
func (n Note) DisplayTitle() string {
	if t := strings.TrimSpace(n.Title); t != "" {
		return t
	}
	return "Untitled"
}

// Matches reports whether query occurs in the title or content, ignoring case.
// An empty or whitespace-only query matches every note. Any other query is
// matched as typed, surrounding spaces included.
func (n Note) Matches(query string) bool {
	if strings.TrimSpace(query) == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(n.Title), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

// Preview flattens the content to one line and cuts it to width characters,
// ending in an ellipsis when something was cut. A non-positive width keeps
// the whole line.
func (n Note) Preview(width int) string {
	line := strings.Join(strings.Fields(n.Content), " ")
	if width <= 0 {
		return line
	}
	return truncate.StringWithTail(line, uint(width), ellipsis)
}

// Blank reports whether both fields are empty once surrounding whitespace is removed.
func Blank(title, content string) bool {
	return strings.TrimSpace(title) == "" && strings.TrimSpace(content) == ""
}

// Find returns the note with the given id.
func Find(notes []Note, id ID) (Note, bool) {
	if id.IsZero() {
		return Note{}, false
	}
	for _, n := range notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}
