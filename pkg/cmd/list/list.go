package list

import (
	"context"
	"encoding/json"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/noted/internal/state"
	"github.com/Paintersrp/noted/internal/store"
	"github.com/Paintersrp/noted/pkg/shared/output"
)

func NewCmdList(s *state.State) *cobra.Command {
	var (
		search string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "list [--search query] [--json]",
		Aliases: []string{"ls", "l"},
		Short:   "List notes.",
		Long: heredoc.Doc(`
			Lists every note with its id, title and a short content preview.
			--search keeps the notes whose title or content contains the query,
			ignoring case.

			Examples:
			  noted list
			  noted list --search groceries
			  noted list --json
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), s, search, asJSON)
		},
	}

	cmd.Flags().StringVarP(&search, "search", "q", "", "Only list notes matching the query")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the notes as JSON")
	return cmd
}

func run(ctx context.Context, w io.Writer, s *state.State, search string, asJSON bool) error {
	notes, err := s.API.ListNotes(ctx)
	if err != nil {
		return err
	}
	notes = store.FilterNotes(notes, search)

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}

	output.List(w, notes, s.Config.Preview())
	return nil
}
