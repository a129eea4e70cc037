package regions

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xiaoxiae/Vimvaldi/core"
)

const logoArt = `     ________  **    ________
    /        \****  /        \
    \        /******\        /
     |      |********/      /'
     |      |******/      /'
    *|      |****/      /'
  ***|      |**/      /'****
*****|      |/      /'********
  ***|            /'*********
    *|      _   /'*********       _     _ _
     |     (_)/'__ _____   ____ _| | __| (_)
     |     | | '_ V _ \ \ / / _` + "`" + ` | |/ _` + "`" + ` | |
     |    /| | | | | | \ V / (_| | | (_| | |
     |__/' |_|_| |_| |_|\_/ \__._|_|\__,_|_|`

// Logo is the splash screen shown on startup. Any confirming key dismisses
// it, revealing whatever sits below on the stack.
type Logo struct {
	core.Changeable
}

func NewLogo() *Logo {
	return &Logo{Changeable: core.NewChangeable()}
}

func (l *Logo) Name() string { return "logo" }

func (l *Logo) HandleKey(msg tea.KeyMsg, view core.Viewport) ([]core.Command, bool) {
	switch msg.String() {
	case "enter", " ", "esc", "q":
		return []core.Command{core.PopRegionCommand{}}, true
	}
	return nil, false
}

func (l *Logo) HandleCommand(cmd core.Command) []core.Command { return nil }

func (l *Logo) Render(view core.Viewport) string {
	art := lipgloss.NewStyle().Foreground(logoColor).Render(logoArt)
	return lipgloss.Place(view.Width, view.Height, lipgloss.Center, lipgloss.Center, art)
}
