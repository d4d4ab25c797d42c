// Package clock implements the toggleable wall clock.
package clock

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pulseboard/internal/task"
)

// TaskName tags clock ticks.
const TaskName = "clock"

// DefaultInterval is the render cadence while running.
const DefaultInterval = time.Second

// Layout is the zero-padded 24-hour display format.
const Layout = "15:04:05"

// State is the clock's run state.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Clock renders local time while running. Running holds iff its slot has a
// live handle.
type Clock struct {
	slot    *task.Slot
	display string
}

// New returns a stopped clock ticking every interval once started.
func New(reg *task.Registry, interval time.Duration) *Clock {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Clock{slot: task.NewSlot(reg, TaskName, interval)}
}

// Format renders t as HH:MM:SS in local time.
func Format(t time.Time) string {
	return t.Local().Format(Layout)
}

// State reports the current run state.
func (c *Clock) State() State {
	if c.slot.Running() {
		return Running
	}
	return Stopped
}

// Display returns the last rendered time, empty before the first start.
func (c *Clock) Display() string { return c.display }

// Toggle flips the run state. Starting renders now before the first tick is
// scheduled. The returned command is nil when stopping.
func (c *Clock) Toggle(now time.Time) (State, tea.Cmd) {
	if c.slot.Running() {
		c.slot.Cancel()
		return Stopped, nil
	}
	c.display = Format(now)
	return Running, c.slot.Start()
}

// Stop cancels the repeating task if running.
func (c *Clock) Stop() bool {
	return c.slot.Cancel()
}

// Tick handles a fired tick. Stale ticks are ignored and return false.
func (c *Clock) Tick(msg task.FireMsg) (bool, tea.Cmd) {
	if !c.slot.Accept(msg) {
		return false, nil
	}
	c.display = Format(msg.At)
	return true, c.slot.Schedule()
}

// Handle returns the live task handle, zero when stopped.
func (c *Clock) Handle() task.Handle { return c.slot.Handle() }
