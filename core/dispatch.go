package core

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// maxCascadeRounds bounds command propagation. The routing table is acyclic
// in practice; hitting the cap means a design bug, not bad user data.
const maxCascadeRounds = 16

// CommandLoopError reports a command cascade that failed to settle. Fatal.
type CommandLoopError struct {
	Rounds  int
	Pending int
}

func (e *CommandLoopError) Error() string {
	return fmt.Sprintf("command cascade did not settle after %d rounds (%d commands pending)", e.Rounds, e.Pending)
}

// Route declares the target regions of one command kind.
type Route struct {
	Broadcast bool
	Targets   []string
}

// Dispatcher owns the region stack and the routing table. It delivers
// keypresses to the focused region, routes emitted commands to their
// declared targets, and tracks which regions need redrawing.
type Dispatcher struct {
	stack   RegionStack
	regions map[string]Region
	status  Region
	routes  map[string]Route
	keys    *KeyRegistry

	statusFocused bool
	quitting      bool
}

func NewDispatcher(status Region, keys *KeyRegistry) *Dispatcher {
	d := &Dispatcher{
		regions: map[string]Region{},
		status:  status,
		keys:    keys,
		routes:  map[string]Route{},
	}
	if status != nil {
		d.regions[status.Name()] = status
	}
	return d
}

// Register makes a region addressable by name and pushable onto the stack.
func (d *Dispatcher) Register(r Region) {
	d.regions[r.Name()] = r
}

// Route declares where a command kind is delivered. Dispatcher-owned kinds
// (push/pop/focus/blur/quit) need no route.
func (d *Dispatcher) Route(kind string, route Route) {
	d.routes[kind] = route
}

// Push puts a registered region on top of the stack.
func (d *Dispatcher) Push(name string) error {
	r, ok := d.regions[name]
	if !ok {
		return fmt.Errorf("unknown region %q", name)
	}
	d.stack.Push(r)
	r.MarkChanged()
	return nil
}

func (d *Dispatcher) Stack() RegionStack { return d.stack }
func (d *Dispatcher) Status() Region     { return d.status }
func (d *Dispatcher) Quitting() bool     { return d.quitting }
func (d *Dispatcher) StatusFocused() bool { return d.statusFocused }

// Scope names the binding scope of the current focus, for footer hints and
// global key lookup.
func (d *Dispatcher) Scope() string {
	if d.statusFocused && d.status != nil {
		return d.status.Name()
	}
	if top := d.stack.Top(); top != nil {
		return top.Name()
	}
	return "app"
}

// HandleKey resolves one keypress: deliver to the focused region, fall back
// to global bindings when unconsumed, then run the command cascade.
func (d *Dispatcher) HandleKey(msg tea.KeyMsg, view Viewport) error {
	target := d.stack.Top()
	if d.statusFocused && d.status != nil {
		target = d.status
	}
	if target == nil {
		return nil
	}

	queue, handled := target.HandleKey(msg, view)
	if !handled {
		queue = append(queue, d.globalKey(msg)...)
	}
	return d.cascade(queue)
}

// Deliver injects a command from outside a keypress and runs the cascade.
func (d *Dispatcher) Deliver(cmd Command) error {
	return d.cascade([]Command{cmd})
}

// globalKey maps unconsumed keys through the wildcard bindings.
func (d *Dispatcher) globalKey(msg tea.KeyMsg) []Command {
	if d.keys == nil {
		return nil
	}
	scope := d.Scope()
	switch {
	case d.keys.IsAction(msg, "focus-command-line", scope):
		return []Command{FocusStatusCommand{}}
	case d.keys.IsAction(msg, "force-quit", scope):
		return []Command{QuitCommand{Forced: true}}
	}
	return nil
}

// cascade applies commands round by round until none remain, honoring the
// propagation cap.
func (d *Dispatcher) cascade(queue []Command) error {
	for round := 0; len(queue) > 0; round++ {
		if round >= maxCascadeRounds {
			return &CommandLoopError{Rounds: round, Pending: len(queue)}
		}
		var next []Command
		for _, cmd := range queue {
			out, err := d.apply(cmd)
			if err != nil {
				return err
			}
			next = append(next, out...)
		}
		queue = next
	}
	return nil
}

// apply consumes dispatcher-owned commands and routes the rest.
func (d *Dispatcher) apply(cmd Command) ([]Command, error) {
	switch c := cmd.(type) {
	case QuitCommand:
		d.quitting = true
		return nil, nil
	case PushRegionCommand:
		if err := d.Push(c.Name); err != nil {
			return nil, err
		}
		return nil, nil
	case PopRegionCommand:
		d.stack.Pop()
		if top := d.stack.Top(); top != nil {
			top.MarkChanged()
		} else {
			d.quitting = true
		}
		return nil, nil
	case FocusStatusCommand:
		d.statusFocused = true
		if d.status != nil {
			return d.status.HandleCommand(c), nil
		}
		return nil, nil
	case BlurStatusCommand:
		d.statusFocused = false
		if d.status != nil {
			return d.status.HandleCommand(c), nil
		}
		return nil, nil
	}

	route, ok := d.routes[cmd.Kind()]
	if !ok {
		return nil, nil
	}
	var out []Command
	if route.Broadcast {
		for _, r := range d.regions {
			out = append(out, r.HandleCommand(cmd)...)
		}
		return out, nil
	}
	for _, name := range route.Targets {
		if r, ok := d.regions[name]; ok {
			out = append(out, r.HandleCommand(cmd)...)
		}
	}
	return out, nil
}

// MarkAllChanged forces a full redraw, used after terminal resizes.
func (d *Dispatcher) MarkAllChanged() {
	for _, r := range d.regions {
		r.MarkChanged()
	}
}
