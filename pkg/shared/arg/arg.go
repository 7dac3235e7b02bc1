package arg

import (
	"fmt"
	"strings"

	"github.com/Paintersrp/noted/internal/note"
)

func HandleID(args []string) (note.ID, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf("error: No note id given. Try again")
	}
	return note.ID(strings.TrimSpace(args[0])), nil
}

func HandleTitle(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// HandleContent joins everything after the title.
func HandleContent(args []string) string {
	if len(args) < 2 {
		return ""
	}
	return strings.Join(args[1:], " ")
}
