// Package api talks to the remote note service over HTTP.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Paintersrp/noted/internal/constants"
	"github.com/Paintersrp/noted/internal/logging"
	"github.com/Paintersrp/noted/internal/note"
)

const defaultTimeout = 10 * time.Second

// ErrMissingID is returned when an operation needs a persisted note.
var ErrMissingID = errors.New("note id is required")

type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d, Transport: c.http.Transport}
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type notePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

func (c *Client) ListNotes(ctx context.Context) ([]note.Note, error) {
	var notes []note.Note
	if err := c.doJSON(ctx, "list notes", http.MethodGet, "/notes", nil, &notes); err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []note.Note{}
	}
	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, title, content string) (note.Note, error) {
	var created note.Note
	body := notePayload{Title: title, Content: content}
	if err := c.doJSON(ctx, "create note", http.MethodPost, "/notes", body, &created); err != nil {
		return note.Note{}, err
	}
	if !created.Persisted() {
		return note.Note{}, &TransportError{
			Op:  "create note",
			Err: errors.New("response did not include an id"),
		}
	}
	return created, nil
}

func (c *Client) UpdateNote(ctx context.Context, id note.ID, title, content string) error {
	if id.IsZero() {
		return &TransportError{Op: "update note", Err: ErrMissingID}
	}
	body := notePayload{Title: title, Content: content}
	return c.doJSON(ctx, "update note", http.MethodPut, notePath(id), body, nil)
}

func (c *Client) DeleteNote(ctx context.Context, id note.ID) error {
	if id.IsZero() {
		return &TransportError{Op: "delete note", Err: ErrMissingID}
	}
	return c.doJSON(ctx, "delete note", http.MethodDelete, notePath(id), nil, nil)
}

func notePath(id note.ID) string {
	return "/notes/" + url.PathEscape(id.String())
}

func (c *Client) doJSON(ctx context.Context, op, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "noted/"+constants.Version)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "err", err)
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	c.logger.Debug("request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeStatusError(op, resp)
	}
	if out == nil {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
