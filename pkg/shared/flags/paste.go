package flags

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var readClipboard = clipboard.ReadAll

func AddPaste(cmd *cobra.Command) {
	cmd.Flags().
		Bool("paste", false, "Use the clipboard contents as the note content.")
}

// HandlePaste returns content with the clipboard appended when --paste is set.
func HandlePaste(cmd *cobra.Command, content string) (string, bool, error) {
	paste, err := cmd.Flags().GetBool("paste")
	if err != nil || !paste {
		return content, false, err
	}

	clip, err := readClipboard()
	if err != nil {
		return "", false, fmt.Errorf("failed to read clipboard: %w", err)
	}

	if content == "" {
		return clip, true, nil
	}
	return content + "\n" + clip, true, nil
}
