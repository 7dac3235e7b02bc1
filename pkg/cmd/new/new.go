package new

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/noted/internal/note"
	"github.com/Paintersrp/noted/internal/state"
	"github.com/Paintersrp/noted/pkg/shared/arg"
	"github.com/Paintersrp/noted/pkg/shared/flags"
)

var errBlank = errors.New("nothing to save: title and content are both empty")

func NewCmdNew(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "new [title] [content] [--title title] [--content content] [--paste]",
		Aliases: []string{"n", "add"},
		Short:   "Create a note.",
		Long: heredoc.Doc(`
			Creates a note on the service. The title and content can be given as
			arguments or flags; flags win. --paste appends the clipboard contents
			to the content.

			Examples:
			  noted new groceries "milk, eggs"
			  noted new --title "Meeting notes" --paste
		`),
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
	title, content, _ := flags.HandleFields(cmd, arg.HandleTitle(args), arg.HandleContent(args))

	content, _, err := flags.HandlePaste(cmd, content)
	if err != nil {
		return err
	}

	if note.Blank(title, content) {
		return errBlank
	}

	created, err := s.API.CreateNote(ctx, title, content)
	if err != nil {
		return err
	}

	s.Logger.Info("note created", "id", created.ID)
	fmt.Fprintf(w, "Created note %s (%s)\n", created.ID, created.DisplayTitle())
	return nil
}
