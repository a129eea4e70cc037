package regions

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/xiaoxiae/Vimvaldi/core"
)

func menuPress(m *Menu, key string) []core.Command {
	var msg tea.KeyMsg
	if key == "enter" {
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	} else {
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	cmds, _ := m.HandleKey(msg, core.Viewport{Width: 80, Height: 24})
	return cmds
}

func TestMenuSelectionSkipsSpacers(t *testing.T) {
	m := NewMenu()
	require.Equal(t, "CREATE", m.selected().label)

	menuPress(m, "j")
	require.Equal(t, "IMPORT", m.selected().label)
	menuPress(m, "j") // spacer skipped
	require.Equal(t, "HELP", m.selected().label)

	menuPress(m, "k")
	require.Equal(t, "IMPORT", m.selected().label)
}

func TestMenuWrapsAround(t *testing.T) {
	m := NewMenu()
	menuPress(m, "k")
	require.Equal(t, "QUIT", m.selected().label)
	menuPress(m, "j")
	require.Equal(t, "CREATE", m.selected().label)
}

func TestMenuMovePublishesTooltip(t *testing.T) {
	m := NewMenu()
	cmds := menuPress(m, "j")
	require.Contains(t, cmds, core.StatusTextCommand{
		Slot: core.StatusCenter,
		Text: "Imports a score from a file.",
	})
}

func TestMenuCreateOpensEditor(t *testing.T) {
	m := NewMenu()
	cmds := menuPress(m, "enter")
	require.Contains(t, cmds, core.NewScoreCommand{})
	require.Contains(t, cmds, core.PushRegionCommand{Name: "editor"})
}

func TestMenuImportPrefillsRecentFile(t *testing.T) {
	m := NewMenu()
	m.Recent = func() string { return "last.ly" }
	menuPress(m, "j") // IMPORT
	cmds := menuPress(m, "enter")
	require.Contains(t, cmds, core.FocusStatusCommand{Prefill: "o last.ly"})
}

func TestMenuQuit(t *testing.T) {
	m := NewMenu()
	menuPress(m, "k")
	cmds := menuPress(m, "enter")
	require.Contains(t, cmds, core.QuitCommand{})
}
