package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/noted/internal/config"
	"github.com/Paintersrp/noted/internal/export"
	"github.com/Paintersrp/noted/internal/state"
)

// swapped in tests
var (
	newUploader = func(ctx context.Context, cfg config.ExportConfig) (export.Uploader, error) {
		return export.NewS3Uploader(ctx, cfg)
	}
	now = time.Now
)

type options struct {
	format string
	out    string
	toS3   bool
}

func NewCmdExport(s *state.State) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "export [--format yaml|json] [--out file] [--s3]",
		Short: "Export every note to a file, stdout or S3.",
		Long: heredoc.Doc(`
			Writes all notes as a single YAML or JSON document. Without --out or
			--s3 the document goes to stdout.

			--s3 uploads the document to the bucket configured in the export block
			of the config file:

			  export:
			    bucket: my-notes
			    prefix: backups/noted
			    region: us-east-1
			    endpoint: http://localhost:9000   # optional, S3-compatible stores

			Examples:
			  noted export > notes.yaml
			  noted export --format json --out notes.json
			  noted export --s3
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), s, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "yaml", "Document format: yaml or json")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the document to this file")
	cmd.Flags().BoolVar(&opts.toS3, "s3", false, "Upload the document to the configured bucket")
	return cmd
}

func run(ctx context.Context, w io.Writer, s *state.State, opts options) error {
	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	notes, err := s.API.ListNotes(ctx)
	if err != nil {
		return err
	}

	taken := now()
	var buf bytes.Buffer
	if err := export.Encode(&buf, format, export.NewDocument(s.APIURL, notes, taken)); err != nil {
		return err
	}

	if opts.out == "" && !opts.toS3 {
		_, err := w.Write(buf.Bytes())
		return err
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		fmt.Fprintf(w, "Exported %d notes to %s\n", len(notes), opts.out)
	}

	if opts.toS3 {
		cfg := s.Config.Export
		up, err := newUploader(ctx, cfg)
		if err != nil {
			return err
		}
		key := export.ObjectKey(cfg.Prefix, export.FileName(format, taken))
		loc, err := export.Upload(ctx, up, cfg, key, buf.Bytes(), format)
		if err != nil {
			return err
		}
		s.Logger.Info("export uploaded", "location", loc, "notes", len(notes))
		fmt.Fprintf(w, "Uploaded %d notes to %s\n", len(notes), loc)
	}

	return nil
}
