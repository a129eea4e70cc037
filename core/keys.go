package core

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding ties keys to a named action within some region scopes. An empty
// scope list means the binding applies everywhere.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

// BindingsForScope lists the bindings active in a scope, for footer hints.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// IsAction reports whether the pressed key triggers the action in the scope.
func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}

// DefaultKeyBindings covers the global fallbacks plus the per-region hints
// shown in the footer. Region-internal keys (note entry and the like) live
// in the regions themselves; listing them here only affects the footer.
func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{":"}, Action: "focus-command-line", Description: "command", Scopes: []string{"logo", "menu", "editor", "help", "info"}},
		{Keys: []string{"ctrl+c"}, Action: "force-quit", Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"enter"}, Action: "dismiss", Description: "continue", Scopes: []string{"logo"}},
		{Keys: []string{"j", "k"}, Action: "menu-move", Description: "select", Scopes: []string{"menu"}},
		{Keys: []string{"enter"}, Action: "menu-choose", Description: "choose", Scopes: []string{"menu"}},
		{Keys: []string{"j", "k"}, Action: "scroll", Description: "scroll", Scopes: []string{"help", "info"}},
		{Keys: []string{"q"}, Action: "back", Description: "back", Scopes: []string{"help", "info"}},
		{Keys: []string{"h", "l"}, Action: "cursor", Description: "move", Scopes: []string{"editor"}},
		{Keys: []string{"i"}, Action: "insert", Description: "insert", Scopes: []string{"editor"}},
		{Keys: []string{"x"}, Action: "delete", Description: "delete", Scopes: []string{"editor"}},
		{Keys: []string{"esc"}, Action: "cancel", Description: "cancel", Scopes: []string{"status"}},
	}
}
