package regions

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xiaoxiae/Vimvaldi/core"
)

const menuArt = ` __  __
|  \/  | ___ _ __  _   _
| |\/| |/ _ \ '_ \| | | |
| |  | |  __/ | | | |_| |
|_|  |_|\___|_| |_|\__,_|`

// menuItem is one selectable row. A nil entry in the item list is a spacer.
type menuItem struct {
	label   string
	tooltip string
	choose  func() []core.Command
}

// Menu is the main menu region. Moving the selection publishes the item's
// tooltip to the status line; choosing an item emits its commands.
type Menu struct {
	core.Changeable

	items []*menuItem
	index int

	// Recent supplies the most recently opened file for the IMPORT prefill.
	// May be nil.
	Recent func() string
}

func NewMenu() *Menu {
	m := &Menu{Changeable: core.NewChangeable()}
	m.items = []*menuItem{
		{
			label:   "CREATE",
			tooltip: "Creates a new score.",
			choose: func() []core.Command {
				return []core.Command{core.NewScoreCommand{}, core.PushRegionCommand{Name: "editor"}}
			},
		},
		{
			label:   "IMPORT",
			tooltip: "Imports a score from a file.",
			choose: func() []core.Command {
				prefill := "o "
				if m.Recent != nil {
					if recent := m.Recent(); recent != "" {
						prefill += recent
					}
				}
				return []core.Command{core.FocusStatusCommand{Prefill: prefill}}
			},
		},
		nil,
		{
			label:   "HELP",
			tooltip: "Displays program documentation.",
			choose: func() []core.Command {
				return []core.Command{core.PushRegionCommand{Name: "help"}}
			},
		},
		{
			label:   "INFO",
			tooltip: "Shows information about the program.",
			choose: func() []core.Command {
				return []core.Command{core.PushRegionCommand{Name: "info"}}
			},
		},
		nil,
		{
			label:   "QUIT",
			tooltip: "Terminates the program.",
			choose: func() []core.Command {
				return []core.Command{core.QuitCommand{}}
			},
		},
	}
	return m
}

func (m *Menu) Name() string { return "menu" }

func (m *Menu) selected() *menuItem { return m.items[m.index] }

// move shifts the selection by delta, skipping spacers and wrapping around.
func (m *Menu) move(delta int) {
	for {
		m.index = (m.index + delta + len(m.items)) % len(m.items)
		if m.items[m.index] != nil {
			return
		}
	}
}

func (m *Menu) HandleKey(msg tea.KeyMsg, view core.Viewport) ([]core.Command, bool) {
	switch msg.String() {
	case "j", "down":
		m.move(1)
		m.MarkChanged()
		return []core.Command{core.StatusTextCommand{Slot: core.StatusCenter, Text: m.selected().tooltip}}, true
	case "k", "up":
		m.move(-1)
		m.MarkChanged()
		return []core.Command{core.StatusTextCommand{Slot: core.StatusCenter, Text: m.selected().tooltip}}, true
	case "enter", " ":
		return append(m.selected().choose(), core.ClearStatusCommand{}), true
	}
	return nil, false
}

func (m *Menu) HandleCommand(cmd core.Command) []core.Command { return nil }

func (m *Menu) Render(view core.Viewport) string {
	var b strings.Builder
	b.WriteString(headingStyle.Render(menuArt))
	b.WriteString("\n\n")
	for i, item := range m.items {
		if item == nil {
			b.WriteString("\n")
			continue
		}
		var line string
		if i == m.index {
			line = selectedItemStyle.Render("> " + item.label + " <")
		} else {
			line = itemStyle.Render("  " + item.label + "  ")
		}
		b.WriteString(lipgloss.PlaceHorizontal(25, lipgloss.Center, line))
		b.WriteString("\n")
	}
	return lipgloss.Place(view.Width, view.Height, lipgloss.Center, lipgloss.Center, b.String())
}
