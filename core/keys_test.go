package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestIsActionRespectsScope(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())

	colon := keyRunes(':')
	if !r.IsAction(colon, "focus-command-line", "editor") {
		t.Fatal("':' should focus the command line from the editor")
	}
	if r.IsAction(colon, "focus-command-line", "status") {
		t.Fatal("':' must not re-focus from the status line itself")
	}

	ctrlC := tea.KeyMsg{Type: tea.KeyCtrlC}
	if !r.IsAction(ctrlC, "force-quit", "logo") {
		t.Fatal("ctrl+c is global")
	}
	if !r.IsAction(ctrlC, "force-quit", "status") {
		t.Fatal("ctrl+c applies to the wildcard scope")
	}
}

func TestIsActionMultipleKeys(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	for _, k := range []rune{'j', 'k'} {
		if !r.IsAction(keyRunes(k), "menu-move", "menu") {
			t.Fatalf("%q should move the menu selection", k)
		}
	}
	if r.IsAction(keyRunes('j'), "menu-move", "editor") {
		t.Fatal("menu bindings must not leak into the editor")
	}
}

func TestRegisterAddsBinding(t *testing.T) {
	r := NewKeyRegistry(nil)
	r.Register(KeyBinding{Keys: []string{"g"}, Action: "top", Scopes: []string{"editor"}})
	if !r.IsAction(keyRunes('g'), "top", "editor") {
		t.Fatal("registered binding not found")
	}
}

func TestBindingsForScopeFiltersForFooter(t *testing.T) {
	r := NewKeyRegistry(DefaultKeyBindings())
	for _, b := range r.BindingsForScope("menu") {
		if !scopeMatch("menu", b.Scopes) {
			t.Fatalf("binding %q leaked into menu scope", b.Action)
		}
	}
	if len(r.BindingsForScope("menu")) >= len(DefaultKeyBindings()) {
		t.Fatal("scope filter should drop out-of-scope bindings")
	}
}

func TestEmptyScopesMatchEverywhere(t *testing.T) {
	r := NewKeyRegistry([]KeyBinding{{Keys: []string{"?"}, Action: "help"}})
	if !r.IsAction(keyRunes('?'), "help", "anything") {
		t.Fatal("binding without scopes applies everywhere")
	}
}
