package core

import tea "github.com/charmbracelet/bubbletea"

// Viewport is the drawable area handed to a region. Keypress handlers
// receive it explicitly so no region needs privileged access to sizing.
type Viewport struct {
	Width  int
	Height int
}

// Region is an independently drawable, focus-eligible unit of the UI. A
// region consumes keypresses and inbound commands, emits outbound commands,
// and tracks whether it needs redrawing. Regions communicate only through
// commands.
type Region interface {
	Name() string

	// HandleKey processes one keypress. handled reports whether the key was
	// consumed; unconsumed keys fall through to the dispatcher's global
	// bindings.
	HandleKey(msg tea.KeyMsg, view Viewport) (cmds []Command, handled bool)

	// HandleCommand processes an inbound command and may emit follow-ups.
	HandleCommand(cmd Command) []Command

	Changed() bool
	MarkChanged()
	ClearChanged()

	Render(view Viewport) string
}

// Changeable is the dirty-tracking half of the Region contract, meant for
// embedding. Regions start out changed so the first frame draws.
type Changeable struct {
	changed bool
}

func NewChangeable() Changeable { return Changeable{changed: true} }

func (c *Changeable) Changed() bool { return c.changed }
func (c *Changeable) MarkChanged()  { c.changed = true }
func (c *Changeable) ClearChanged() { c.changed = false }

// RegionStack is the ordered set of active regions. Draw order is stack
// order; focus is the top.
type RegionStack struct {
	items []Region
}

func (s *RegionStack) Push(r Region) {
	if r == nil {
		return
	}
	s.items = append(s.items, r)
}

func (s *RegionStack) Pop() Region {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s RegionStack) Top() Region {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s RegionStack) Len() int { return len(s.items) }

// Items returns the stack bottom-up.
func (s RegionStack) Items() []Region { return s.items }
