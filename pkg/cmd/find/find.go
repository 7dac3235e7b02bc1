package find

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/atotto/clipboard"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/reflow/wordwrap"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/noted/internal/note"
	"github.com/Paintersrp/noted/internal/state"
	"github.com/Paintersrp/noted/pkg/shared/output"
)

// swapped in tests
var (
	pick           = fuzzySelect
	writeClipboard = clipboard.WriteAll
)

func NewCmdFind(s *state.State) *cobra.Command {
	var copyContent bool

	cmd := &cobra.Command{
		Use:     "find [query] [--copy]",
		Aliases: []string{"f", "fzf"},
		Short:   "Fuzzy find a note.",
		Long: heredoc.Doc(`
			Opens a fuzzy finder over note titles with a preview of the content.
			The chosen note is printed, or copied to the clipboard with --copy.

			Examples:
			  noted find
			  noted find groc --copy
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return run(cmd.Context(), cmd.OutOrStdout(), s, query, copyContent)
		},
	}

	cmd.Flags().BoolVarP(&copyContent, "copy", "c", false, "Copy the content instead of printing the note")
	return cmd
}

func run(ctx context.Context, w io.Writer, s *state.State, query string, copyContent bool) error {
	notes, err := s.API.ListNotes(ctx)
	if err != nil {
		return err
	}
	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes.")
		return nil
	}

	idx, err := pick(notes, query)
	if errors.Is(err, fuzzyfinder.ErrAbort) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error selecting note: %w", err)
	}

	chosen := notes[idx]
	if copyContent {
		if err := writeClipboard(chosen.Content); err != nil {
			return fmt.Errorf("failed to copy note: %w", err)
		}
		fmt.Fprintf(w, "Copied %q to the clipboard\n", chosen.DisplayTitle())
		return nil
	}

	output.Note(w, chosen)
	return nil
}

func fuzzySelect(notes []note.Note, query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithHeader("Select a note"),
		fuzzyfinder.WithPreviewWindow(func(i, width, _ int) string {
			if i == -1 {
				return ""
			}
			return renderPreview(notes[i], width)
		}),
	}
	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	return fuzzyfinder.Find(
		notes,
		func(i int) string {
			return notes[i].DisplayTitle()
		},
		options...,
	)
}

func renderPreview(n note.Note, width int) string {
	var b strings.Builder
	b.WriteString(n.DisplayTitle())
	b.WriteString("\n\n")
	// the preview pane draws its own border
	b.WriteString(wordwrap.String(n.Content, max(width-4, 10)))
	return b.String()
}
