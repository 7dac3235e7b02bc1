package show

import (
	"context"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/noted/internal/note"
	"github.com/Paintersrp/noted/internal/state"
	"github.com/Paintersrp/noted/pkg/shared/arg"
	"github.com/Paintersrp/noted/pkg/shared/output"
)

func NewCmdShow(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show [id]",
		Aliases: []string{"cat"},
		Short:   "Print a note.",
		Long: heredoc.Doc(`
			Prints the title, last update and full content of a note.

			Examples:
			  noted show 42
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), s, args)
		},
	}
	return cmd
}

func run(ctx context.Context, w io.Writer, s *state.State, args []string) error {
	id, err := arg.HandleID(args)
	if err != nil {
		return err
	}

	n, err := Lookup(ctx, s, id)
	if err != nil {
		return err
	}

	output.Note(w, n)
	return nil
}

// Lookup fetches the list and returns the note with id. The service has no
// single-note endpoint.
func Lookup(ctx context.Context, s *state.State, id note.ID) (note.Note, error) {
	notes, err := s.API.ListNotes(ctx)
	if err != nil {
		return note.Note{}, err
	}

	n, ok := note.Find(notes, id)
	if !ok {
		return note.Note{}, fmt.Errorf("note %s not found", id)
	}
	return n, nil
}
