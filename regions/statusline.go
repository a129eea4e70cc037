package regions

import (
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/xiaoxiae/Vimvaldi/core"
)

// knownCommands drives the "did you mean" suggestion for typos.
var knownCommands = []string{
	"q", "quit", "w", "write", "wq", "o", "open", "new",
	"help", "info", "set", "export", "insert",
}

// StatusLine is the bottom bar: three text slots while idle, a vim-style
// command prompt while focused. It is permanently visible and never part of
// the region stack.
type StatusLine struct {
	core.Changeable

	input   textinput.Model
	focused bool

	slots    [3]string
	isErr    bool
	modified bool
}

func NewStatusLine() *StatusLine {
	input := textinput.New()
	input.Prompt = ":"
	input.CharLimit = 256
	return &StatusLine{
		Changeable: core.NewChangeable(),
		input:      input,
	}
}

func (s *StatusLine) Name() string { return "status" }

func (s *StatusLine) HandleKey(msg tea.KeyMsg, view core.Viewport) ([]core.Command, bool) {
	if !s.focused {
		return nil, false
	}
	s.MarkChanged()
	switch msg.String() {
	case "esc", "ctrl+c":
		return []core.Command{core.BlurStatusCommand{}}, true
	case "enter":
		line := s.input.Value()
		cmds := s.execute(line)
		return append(cmds, core.BlurStatusCommand{}), true
	case "backspace":
		// backspacing past the prompt cancels, like vim
		if s.input.Value() == "" {
			return []core.Command{core.BlurStatusCommand{}}, true
		}
	}
	s.input, _ = s.input.Update(msg)
	return nil, true
}

// execute parses one ex-style command line into commands.
func (s *StatusLine) execute(line string) []core.Command {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	name := fields[0]
	args := fields[1:]

	forced := strings.HasSuffix(name, "!")
	name = strings.TrimSuffix(name, "!")

	arg := ""
	if len(args) > 0 {
		arg = args[0]
	}

	switch name {
	case "q", "quit":
		return []core.Command{core.QuitCommand{Forced: forced}}
	case "w", "write":
		return []core.Command{core.SaveFileCommand{Path: arg, Forced: forced}}
	case "wq":
		// the editor emits the quit itself once the write succeeds
		return []core.Command{core.SaveFileCommand{Path: arg, Forced: forced, Quit: true}}
	case "o", "open":
		if arg == "" {
			return errText("open: missing path")
		}
		return []core.Command{core.OpenFileCommand{Path: arg, Forced: forced}}
	case "new":
		return []core.Command{core.NewScoreCommand{}}
	case "help", "info":
		return []core.Command{core.PushRegionCommand{Name: name}}
	case "set":
		if len(args) < 2 {
			return errText("set: expected option and value")
		}
		return []core.Command{core.SetOptionCommand{Option: args[0], Value: strings.Join(args[1:], " ")}}
	case "export":
		if arg == "" {
			return errText("export: missing path")
		}
		return []core.Command{core.ExportMIDICommand{Path: arg}}
	case "insert":
		if len(args) == 0 {
			return errText("insert: missing notes")
		}
		cmds := make([]core.Command, 0, len(args))
		for _, token := range args {
			cmds = append(cmds, core.InsertTokenCommand{Token: token})
		}
		return cmds
	}

	msg := fmt.Sprintf("unknown command %q", name)
	if suggestion := suggest(name); suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return errText(msg)
}

// suggest finds the closest known command within edit distance 2.
func suggest(name string) string {
	best, bestDist := "", 3
	for _, cmd := range knownCommands {
		if d := levenshtein.ComputeDistance(name, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

func errText(text string) []core.Command {
	return []core.Command{core.StatusTextCommand{Slot: core.StatusCenter, Text: text, IsErr: true}}
}

func (s *StatusLine) HandleCommand(cmd core.Command) []core.Command {
	switch c := cmd.(type) {
	case core.FocusStatusCommand:
		s.focused = true
		s.input.SetValue(c.Prefill)
		s.input.CursorEnd()
		s.input.Focus()
		s.slots = [3]string{}
		s.isErr = false
		s.MarkChanged()
	case core.BlurStatusCommand:
		s.focused = false
		s.input.SetValue("")
		s.input.Blur()
		s.MarkChanged()
	case core.StatusTextCommand:
		s.slots[c.Slot] = c.Text
		s.isErr = c.IsErr
		s.MarkChanged()
	case core.ClearStatusCommand:
		s.slots = [3]string{}
		s.isErr = false
		s.modified = false
		s.MarkChanged()
	case core.ScoreChangedCommand:
		s.modified = true
		s.MarkChanged()
	}
	return nil
}

func (s *StatusLine) Render(view core.Viewport) string {
	width := view.Width
	if width < 1 {
		width = 1
	}
	if s.focused {
		return core.RenderBar(statusInputStyle, width, s.input.View(), barColor)
	}

	style := statusTextStyle
	if s.isErr {
		style = statusErrStyle
	}
	right := s.slots[core.StatusRight]
	if s.modified && right == "" {
		right = "[+]"
	}
	return core.RenderBar(style, width, layoutSlots(width, s.slots[core.StatusLeft], s.slots[core.StatusCenter], right), barColor)
}

// layoutSlots spreads left, center and right texts across one line.
func layoutSlots(width int, left, center, right string) string {
	lw, cw, rw := ansi.StringWidth(left), ansi.StringWidth(center), ansi.StringWidth(right)
	if lw+cw+rw+2 > width {
		return strings.TrimSpace(strings.Join([]string{left, center, right}, " "))
	}
	leftPad := (width-cw)/2 - lw
	if leftPad < 1 {
		leftPad = 1
	}
	rightPad := width - lw - leftPad - cw - rw
	if rightPad < 1 {
		rightPad = 1
	}
	return left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", rightPad) + right
}
