package notes

import (
	"errors"
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Paintersrp/noted/internal/state"
	notesui "github.com/Paintersrp/noted/internal/tui/notes"
)

var errNoTerminal = errors.New("the notes view needs an interactive terminal; try 'noted list' instead")

// swapped in tests
var (
	isTerminal = func() bool {
		return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
	}
	launch = notesui.Run
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"ui", "tui"},
		Short:   "Browse and edit notes in the terminal UI.",
		Long: heredoc.Doc(`
			Opens the notes view: a searchable list of notes in the sidebar and the
			selected note in the main pane.

			Keys:
			  j/k, arrows   move through the list
			  /             search titles and content
			  n             start a new note
			  e             edit the displayed note
			  ctrl+s        save
			  esc           cancel the edit
			  d             delete (asks for confirmation)
			  y             copy the content to the clipboard
			  ctrl+b        toggle the sidebar
			  q             quit
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(s)
		},
	}
	return cmd
}

func run(s *state.State) error {
	if !isTerminal() {
		return errNoTerminal
	}
	s.Logger.Info("starting notes view", "api_url", s.APIURL)
	return launch(s)
}
