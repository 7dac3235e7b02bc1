package new

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Paintersrp/noted/internal/api/apitest"
)

func TestRunCreatesNoteFromArgs(t *testing.T) {
	srv := apitest.NewServer(t)
	st := srv.State()
	cmd := NewCmdNew(st)

	var buf bytes.Buffer
	if err := run(context.Background(), cmd, &buf, []string{"groceries", "milk", "eggs"}, st); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	notes := srv.Notes()
	if len(notes) != 1 {
		t.Fatalf("expected one note, got %d", len(notes))
	}
	if notes[0].Title != "groceries" || notes[0].Content != "milk eggs" {
		t.Fatalf("unexpected note %+v", notes[0])
	}
	if !strings.Contains(buf.String(), "Created note 1") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRunFlagsOverrideArgs(t *testing.T) {
	srv := apitest.NewServer(t)
	st := srv.State()
	cmd := NewCmdNew(st)
	if err := cmd.Flags().Set("title", "from flag"); err != nil {
		t.Fatalf("failed to set title flag: %v", err)
	}

	if err := run(context.Background(), cmd, &bytes.Buffer{}, []string{"from arg", "body"}, st); err != nil {
		t.Fatalf("run returned error: %v", err)
	}

	if got := srv.Notes()[0].Title; got != "from flag" {
		t.Fatalf("expected the flag to win, got %q", got)
	}
}

func TestRunRejectsBlankNote(t *testing.T) {
	srv := apitest.NewServer(t)
	st := srv.State()
	cmd := NewCmdNew(st)

	err := run(context.Background(), cmd, &bytes.Buffer{}, []string{" ", "\t"}, st)
	if !errors.Is(err, errBlank) {
		t.Fatalf("expected errBlank, got %v", err)
	}
	if len(srv.Notes()) != 0 {
		t.Fatal("expected no request for a blank note")
	}
}
