package regions

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xiaoxiae/Vimvaldi/core"
)

// TextView is a scrollable read-only text panel used for the help and info
// pages. It understands a small markup: lines starting with '#' are headings,
// *spans* are bold and _spans_ are italic.
type TextView struct {
	core.Changeable

	name    string
	lines   []string
	scroll  int
	content string
}

func NewTextView(name, content string) *TextView {
	return &TextView{
		Changeable: core.NewChangeable(),
		name:       name,
		content:    content,
		lines:      strings.Split(content, "\n"),
	}
}

func (v *TextView) Name() string { return v.name }

func (v *TextView) scrollBy(delta, height int) {
	limit := len(v.lines) - height
	if limit < 0 {
		limit = 0
	}
	v.scroll += delta
	if v.scroll > limit {
		v.scroll = limit
	}
	if v.scroll < 0 {
		v.scroll = 0
	}
	v.MarkChanged()
}

func (v *TextView) HandleKey(msg tea.KeyMsg, view core.Viewport) ([]core.Command, bool) {
	switch msg.String() {
	case "j", "down":
		v.scrollBy(1, view.Height)
		return nil, true
	case "k", "up":
		v.scrollBy(-1, view.Height)
		return nil, true
	case "ctrl+d":
		v.scrollBy(view.Height/2, view.Height)
		return nil, true
	case "ctrl+u":
		v.scrollBy(-view.Height/2, view.Height)
		return nil, true
	case "g":
		v.scroll = 0
		v.MarkChanged()
		return nil, true
	case "G":
		v.scrollBy(len(v.lines), view.Height)
		return nil, true
	case "q", "esc":
		return []core.Command{core.PopRegionCommand{}}, true
	}
	return nil, false
}

func (v *TextView) HandleCommand(cmd core.Command) []core.Command { return nil }

func (v *TextView) Render(view core.Viewport) string {
	var b strings.Builder
	end := v.scroll + view.Height
	if end > len(v.lines) {
		end = len(v.lines)
	}
	for i := v.scroll; i < end; i++ {
		b.WriteString(renderMarkup(v.lines[i], view.Width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// renderMarkup styles one line of the panel markup.
func renderMarkup(line string, width int) string {
	trimmed := strings.TrimLeft(line, "#")
	if len(trimmed) != len(line) && strings.HasPrefix(trimmed, " ") {
		return headingStyle.Render(strings.TrimSpace(trimmed))
	}

	var b strings.Builder
	var span strings.Builder
	mode := byte(0)
	flush := func() {
		text := span.String()
		span.Reset()
		if text == "" {
			return
		}
		switch mode {
		case '*':
			b.WriteString(boldStyle.Render(text))
		case '_':
			b.WriteString(italicStyle.Render(text))
		default:
			b.WriteString(plainStyle.Render(text))
		}
	}
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case mode == 0 && (c == '*' || c == '_'):
			flush()
			mode = c
		case mode == c:
			flush()
			mode = 0
		case c == '\\' && i+1 < len(line):
			// escaped character
			i++
			span.WriteByte(line[i])
		default:
			span.WriteByte(c)
		}
	}
	flush()
	return b.String()
}
