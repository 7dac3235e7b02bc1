package remove

import (
	"context"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/confirmation"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/noted/internal/note"
	"github.com/Paintersrp/noted/internal/state"
	"github.com/Paintersrp/noted/pkg/cmd/show"
	"github.com/Paintersrp/noted/pkg/shared/arg"
)

// swapped in tests
var confirm = func(n note.Note) (bool, error) {
	input := confirmation.New(fmt.Sprintf("Delete %q?", n.DisplayTitle()), confirmation.No)
	return input.RunPrompt()
}

func NewCmdRemove(s *state.State) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete [id] [--yes]",
		Aliases: []string{"rm", "remove"},
		Short:   "Delete a note.",
		Long: heredoc.Doc(`
			Deletes a note from the service after asking for confirmation.
			--yes skips the prompt.

			Examples:
			  noted delete 42
			  noted rm 42 --yes
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), args, s, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Delete without asking")
	return cmd
}

func run(ctx context.Context, w io.Writer, args []string, s *state.State, yes bool) error {
	id, err := arg.HandleID(args)
	if err != nil {
		return err
	}

	n, err := show.Lookup(ctx, s, id)
	if err != nil {
		return err
	}

	if !yes {
		ok, err := confirm(n)
		if err != nil {
			return fmt.Errorf("confirmation failed: %w", err)
		}
		if !ok {
			fmt.Fprintln(w, "Aborted.")
			return nil
		}
	}

	if err := s.API.DeleteNote(ctx, id); err != nil {
		return err
	}

	s.Logger.Info("note deleted", "id", id)
	fmt.Fprintf(w, "Deleted note %s (%s)\n", id, n.DisplayTitle())
	return nil
}
