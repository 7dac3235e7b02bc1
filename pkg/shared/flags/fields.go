package flags

import (
	"github.com/spf13/cobra"
)

func AddFields(cmd *cobra.Command) {
	cmd.Flags().StringP("title", "t", "", "Note title")
	cmd.Flags().StringP("content", "c", "", "Note content")
}

// HandleFields overrides title and content with the flags that were set.
func HandleFields(cmd *cobra.Command, title, content string) (string, string, bool) {
	changed := false
	if cmd.Flags().Changed("title") {
		title, _ = cmd.Flags().GetString("title")
		changed = true
	}
	if cmd.Flags().Changed("content") {
		content, _ = cmd.Flags().GetString("content")
		changed = true
	}
	return title, content, changed
}
