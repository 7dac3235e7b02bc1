package settings

import (
	"fmt"
	"io"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/noted/internal/state"
)

func NewCmdSettings(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Aliases: []string{"settings", "cfg"},
		Short:   "Show the resolved configuration.",
		Long: heredoc.Doc(`
			Prints the configuration in effect: the config file, the endpoint the
			client talks to and the other settings.

			The endpoint resolves from --api-url, then NOTED_API_URL, then api_url
			in the config file, then the value baked in at build time, then
			http://localhost:5000.
		`),
		Example: "noted config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), s)
		},
	}

	cmd.AddCommand(newCmdSetURL(s))
	return cmd
}

func run(w io.Writer, s *state.State) error {
	cfg := s.Config

	bucket := cfg.Export.Bucket
	if bucket == "" {
		bucket = "(not set)"
	}
	logFile := cfg.LogFile
	if logFile == "" {
		logFile = "(--debug only)"
	}

	fmt.Fprintf(w, "config file:      %s\n", cfg.Path())
	fmt.Fprintf(w, "api_url:          %s\n", s.APIURL)
	fmt.Fprintf(w, "request_timeout:  %s\n", cfg.Timeout())
	fmt.Fprintf(w, "preview_length:   %d\n", cfg.Preview())
	fmt.Fprintf(w, "log_file:         %s\n", logFile)
	fmt.Fprintf(w, "export.bucket:    %s\n", bucket)
	return nil
}

func newCmdSetURL(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "set-url [url]",
		Short: "Persist the service endpoint in the config file.",
		Long: heredoc.Doc(`
			Saves api_url to the config file. The URL must use http or https and
			name a host; a trailing slash is dropped.
		`),
		Example: "noted config set-url https://notes.example.com",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setURL(cmd.OutOrStdout(), s, args[0])
		},
	}
}

func setURL(w io.Writer, s *state.State, raw string) error {
	if err := s.Config.SetAPIURL(raw); err != nil {
		return err
	}
	fmt.Fprintf(w, "api_url set to %s in %s\n", s.Config.APIURL, s.Config.Path())
	return nil
}
