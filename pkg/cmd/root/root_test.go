package root

import (
	"testing"

	"github.com/Paintersrp/noted/internal/state"
)

func TestCommandTree(t *testing.T) {
	cmd := NewCmdRoot(&state.State{})

	for _, name := range []string{"notes", "list", "show", "new", "edit", "delete", "find", "export", "config"} {
		sub, _, err := cmd.Find([]string{name})
		if err != nil || sub == cmd {
			t.Fatalf("expected a %q subcommand, got %v", name, err)
		}
	}

	for _, flag := range []string{"api-url", "config", "debug"} {
		if cmd.PersistentFlags().Lookup(flag) == nil {
			t.Fatalf("expected a persistent --%s flag", flag)
		}
	}
}

func TestAliases(t *testing.T) {
	cmd := NewCmdRoot(&state.State{})

	for alias, want := range map[string]string{"ls": "list", "rm": "delete", "ui": "notes"} {
		sub, _, err := cmd.Find([]string{alias})
		if err != nil || sub.Name() != want {
			t.Fatalf("expected %q to resolve to %q, got %v", alias, want, err)
		}
	}
}
