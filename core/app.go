package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

// App adapts the dispatcher to the terminal program loop: one keypress is
// read, its command cascade fully resolved, changed regions redrawn, then
// the loop blocks on the next keypress. Everything runs on the single
// program goroutine, so no locking exists anywhere in the editor.
type App struct {
	dispatcher *Dispatcher
	keys       *KeyRegistry

	width  int
	height int

	// frames caches each region's last render so unchanged regions are not
	// redrawn.
	frames map[string]string

	fatal error
}

func NewApp(d *Dispatcher, keys *KeyRegistry) *App {
	return &App{
		dispatcher: d,
		keys:       keys,
		width:      100,
		height:     32,
		frames:     map[string]string{},
	}
}

// Err reports the fatal condition that ended the session, if any.
func (a *App) Err() error { return a.fatal }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		// size-dependent layout must be recomputed everywhere
		a.dispatcher.MarkAllChanged()
		return a, nil
	case tea.KeyMsg:
		if err := a.dispatcher.HandleKey(msg, a.bodyViewport()); err != nil {
			a.fatal = err
			return a, tea.Quit
		}
		if a.dispatcher.Quitting() {
			return a, tea.Quit
		}
		return a, nil
	}
	return a, nil
}

func (a *App) bodyViewport() Viewport {
	return Viewport{Width: max(1, a.width), Height: max(1, a.height-2)}
}

// View repaints regions whose changed flag is set, in stack order so later
// regions paint over earlier ones, then clears the flags. Unchanged regions
// come from the frame cache.
func (a *App) View() string {
	if a.dispatcher.Quitting() {
		return ""
	}
	view := a.bodyViewport()

	body := ""
	for _, r := range a.dispatcher.Stack().Items() {
		if r.Changed() {
			a.frames[r.Name()] = r.Render(view)
			r.ClearChanged()
		}
		body = a.frames[r.Name()]
	}
	body = FitHeight(body, view.Height)

	statusBar := ""
	if status := a.dispatcher.Status(); status != nil {
		if status.Changed() {
			a.frames[status.Name()] = status.Render(Viewport{Width: view.Width, Height: 1})
			status.ClearChanged()
		}
		statusBar = a.frames[status.Name()]
	}

	footer := RenderFooter(a.keys, a.dispatcher.Scope(), view.Width)

	return appStyle.MaxWidth(max(1, a.width)).Render(body + "\n" + statusBar + "\n" + footer)
}
