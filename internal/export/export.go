// Package export writes the note list out as a YAML or JSON document,
// optionally uploading it to an S3-compatible bucket.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Paintersrp/noted/internal/note"
)

type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "yaml", "yml":
		return YAML, nil
	case "json":
		return JSON, nil
	}
	return "", fmt.Errorf("unsupported export format %q (want yaml or json)", raw)
}

func (f Format) Ext() string {
	return "." + string(f)
}

func (f Format) ContentType() string {
	if f == JSON {
		return "application/json"
	}
	return "application/yaml"
}

type Document struct {
	ExportedAt time.Time   `json:"exported_at" yaml:"exported_at"`
	Source     string      `json:"source"      yaml:"source"`
	Count      int         `json:"count"       yaml:"count"`
	Notes      []note.Note `json:"notes"       yaml:"notes"`
}

func NewDocument(source string, notes []note.Note, now time.Time) Document {
	if notes == nil {
		notes = []note.Note{}
	}
	return Document{
		ExportedAt: now.UTC(),
		Source:     source,
		Count:      len(notes),
		Notes:      notes,
	}
}

func Encode(w io.Writer, f Format, doc Document) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported export format %q", f)
}

// FileName is the default name of an export taken at now.
func FileName(f Format, now time.Time) string {
	return "notes-" + now.UTC().Format("20060102-150405") + f.Ext()
}
