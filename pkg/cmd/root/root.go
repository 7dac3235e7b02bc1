package root

import (
	"os"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Paintersrp/noted/internal/constants"
	"github.com/Paintersrp/noted/internal/state"
	"github.com/Paintersrp/noted/pkg/cmd/edit"
	"github.com/Paintersrp/noted/pkg/cmd/export"
	"github.com/Paintersrp/noted/pkg/cmd/find"
	"github.com/Paintersrp/noted/pkg/cmd/list"
	"github.com/Paintersrp/noted/pkg/cmd/new"
	"github.com/Paintersrp/noted/pkg/cmd/notes"
	"github.com/Paintersrp/noted/pkg/cmd/remove"
	"github.com/Paintersrp/noted/pkg/cmd/settings"
	"github.com/Paintersrp/noted/pkg/cmd/show"
)

// NewCmdRoot builds the command tree. s is filled in before any command runs,
// once the persistent flags are parsed.
func NewCmdRoot(s *state.State) *cobra.Command {
	var opts state.Options

	cmd := &cobra.Command{
		Use:     constants.AppName,
		Short:   "A terminal client for a notes service.",
		Version: constants.Version,
		Long: heredoc.Doc(`
			noted talks to a notes service over HTTP. Without a subcommand it opens
			the notes view; the subcommands cover the same operations for scripts.

			  noted                       open the notes view
			  noted list --search milk    list matching notes
			  noted new groceries "milk"  create a note
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lipgloss.SetColorProfile(termenv.NewOutput(os.Stdout).EnvColorProfile())

			loaded, err := state.NewState(opts)
			if err != nil {
				return err
			}
			*s = *loaded
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return s.Close()
		},
		RunE: notes.NewCmdNotes(s).RunE,
	}

	cmd.PersistentFlags().
		String("api-url", "", "Base URL of the notes service (env NOTED_API_URL)")
	viper.BindPFlag("api_url", cmd.PersistentFlags().Lookup("api-url"))

	cmd.PersistentFlags().
		StringVar(&opts.ConfigPath, "config", "", "Config file (default ~/.noted/cfg.yaml)")
	cmd.PersistentFlags().
		BoolVar(&opts.Debug, "debug", false, "Write debug logs to ~/.noted/noted.log")

	cmd.AddCommand(
		notes.NewCmdNotes(s),
		list.NewCmdList(s),
		show.NewCmdShow(s),
		new.NewCmdNew(s),
		edit.NewCmdEdit(s),
		remove.NewCmdRemove(s),
		find.NewCmdFind(s),
		export.NewCmdExport(s),
		settings.NewCmdSettings(s),
	)

	return cmd
}

func Execute() {
	cmd := NewCmdRoot(&state.State{})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
