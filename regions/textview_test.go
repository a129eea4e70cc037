package regions

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/xiaoxiae/Vimvaldi/core"
)

func viewPress(v *TextView, key string, height int) []core.Command {
	var msg tea.KeyMsg
	switch key {
	case "ctrl+d":
		msg = tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+u":
		msg = tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	cmds, _ := v.HandleKey(msg, core.Viewport{Width: 80, Height: height})
	return cmds
}

func numberedLines(n int) string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = strings.Repeat("x", i+1)
	}
	return strings.Join(lines, "\n")
}

func TestTextViewScrollClamps(t *testing.T) {
	v := NewTextView("help", numberedLines(10))

	viewPress(v, "k", 4)
	require.Equal(t, 0, v.scroll)

	for i := 0; i < 100; i++ {
		viewPress(v, "j", 4)
	}
	require.Equal(t, 6, v.scroll)

	viewPress(v, "g", 4)
	require.Equal(t, 0, v.scroll)
	viewPress(v, "G", 4)
	require.Equal(t, 6, v.scroll)
}

func TestTextViewHalfPageScroll(t *testing.T) {
	v := NewTextView("help", numberedLines(20))
	viewPress(v, "ctrl+d", 8)
	require.Equal(t, 4, v.scroll)
	viewPress(v, "ctrl+u", 8)
	require.Equal(t, 0, v.scroll)
}

func TestTextViewQuitPops(t *testing.T) {
	v := NewTextView("info", "hello")
	cmds := viewPress(v, "q", 10)
	require.Contains(t, cmds, core.PopRegionCommand{})
}

func TestTextViewRenderWindow(t *testing.T) {
	v := NewTextView("help", numberedLines(10))
	v.scroll = 2
	out := v.Render(core.Viewport{Width: 80, Height: 3})
	require.Contains(t, out, "xxx")
	require.NotContains(t, out, "xxxxxx")
}

func TestMarkupHeadingAndSpans(t *testing.T) {
	heading := renderMarkup("# Help", 80)
	require.Contains(t, heading, "Help")
	require.NotContains(t, heading, "#")

	spans := renderMarkup(`normal *bold* _italic_ a\_b`, 80)
	require.Contains(t, spans, "bold")
	require.Contains(t, spans, "italic")
	require.Contains(t, spans, "a_b")
	require.NotContains(t, spans, "*")
}
