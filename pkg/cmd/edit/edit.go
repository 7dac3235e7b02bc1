package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/noted/internal/note"
	"github.com/Paintersrp/noted/internal/state"
	"github.com/Paintersrp/noted/pkg/cmd/show"
	"github.com/Paintersrp/noted/pkg/shared/arg"
	"github.com/Paintersrp/noted/pkg/shared/flags"
)

var (
	errNoChange = errors.New("nothing to update; pass --title, --content or --paste")
	errBlank    = errors.New("a note needs a title or content")
)

func NewCmdEdit(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit [id] [--title title] [--content content] [--paste]",
		Aliases: []string{"e", "update"},
		Short:   "Update a note.",
		Long: heredoc.Doc(`
			Replaces the title and/or content of an existing note. Fields that are
			not given keep their current value. --paste appends the clipboard
			contents to the content.

			Examples:
			  noted edit 42 --title "Groceries (Sunday)"
			  noted edit 42 --content "" --paste
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, cmd.OutOrStdout(), args, s)
		},
	}

	flags.AddFields(cmd)
	flags.AddPaste(cmd)
	return cmd
}

func run(
	ctx context.Context,
	cmd *cobra.Command,
	w io.Writer,
	args []string,
	s *state.State,
) error {
	id, err := arg.HandleID(args)
	if err != nil {
		return err
	}

	current, err := show.Lookup(ctx, s, id)
	if err != nil {
		return err
	}

	title, content, changed := flags.HandleFields(cmd, current.Title, current.Content)
	content, pasted, err := flags.HandlePaste(cmd, content)
	if err != nil {
		return err
	}
	if !changed && !pasted {
		return errNoChange
	}
	if note.Blank(title, content) {
		return errBlank
	}

	if err := s.API.UpdateNote(ctx, id, title, content); err != nil {
		return err
	}

	s.Logger.Info("note updated", "id", id)
	fmt.Fprintf(w, "Updated note %s\n", id)
	return nil
}
