// Package progress implements the simulated loading bar.
//
// A run advances a bounded accumulator by random increments on every tick
// until it saturates at exactly Max, then cancels itself.
package progress

import (
	"math"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pulseboard/internal/task"
)

const (
	// TaskName tags progress ticks.
	TaskName = "progress"
	// DefaultInterval is the tick cadence of a run.
	DefaultInterval = 200 * time.Millisecond
	// Max is the saturation value.
	Max = 100.0
	// MinStep and MaxStep bound the per-tick increment: [MinStep, MaxStep).
	MinStep = 2.0
	MaxStep = 10.0
)

// Advance adds inc to value. Reaching or passing Max clamps to Max and
// reports done.
func Advance(value, inc float64) (float64, bool) {
	next := value + inc
	if next >= Max {
		return Max, true
	}
	if next < 0 {
		next = 0
	}
	return next, false
}

// Step draws an increment from [MinStep, MaxStep).
func Step(rng *rand.Rand) float64 {
	return MinStep + rng.Float64()*(MaxStep-MinStep)
}

// Label renders value as a floored integer percentage.
func Label(value float64) int {
	return int(math.Floor(clamp(value)))
}

// Fraction returns value as a bar fill ratio in [0,1].
func Fraction(value float64) float64 {
	return clamp(value) / Max
}

func clamp(v float64) float64 {
	return math.Max(0, math.Min(Max, v))
}

// Result describes what a tick did.
type Result struct {
	Accepted bool
	Value    float64
	Done     bool
}

// Runner owns one run at a time. A live handle exists iff a run is in
// progress.
type Runner struct {
	slot  *task.Slot
	value float64
	rng   *rand.Rand
}

// New returns an idle runner. rng supplies tick increments.
func New(reg *task.Registry, interval time.Duration, rng *rand.Rand) *Runner {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Runner{slot: task.NewSlot(reg, TaskName, interval), rng: rng}
}

// Value returns the accumulator.
func (r *Runner) Value() float64 { return r.value }

// Running reports whether a run is active.
func (r *Runner) Running() bool { return r.slot.Running() }

// Start cancels any active run, zeroes the accumulator, and begins a new run.
func (r *Runner) Start() tea.Cmd {
	r.value = 0
	return r.slot.Start()
}

// Reset cancels any active run and zeroes the accumulator.
func (r *Runner) Reset() {
	r.slot.Cancel()
	r.value = 0
}

// Tick advances an accepted tick by a random step.
func (r *Runner) Tick(msg task.FireMsg) (Result, tea.Cmd) {
	return r.TickBy(msg, Step(r.rng))
}

// TickBy advances an accepted tick by inc. The terminal tick clamps to Max and
// cancels the run; no command is returned for it.
func (r *Runner) TickBy(msg task.FireMsg, inc float64) (Result, tea.Cmd) {
	if !r.slot.Accept(msg) {
		return Result{Value: r.value}, nil
	}
	next, done := Advance(r.value, inc)
	r.value = next
	if done {
		r.slot.Cancel()
		return Result{Accepted: true, Value: r.value, Done: true}, nil
	}
	return Result{Accepted: true, Value: r.value}, r.slot.Schedule()
}

// Handle returns the live task handle, zero when idle.
func (r *Runner) Handle() task.Handle { return r.slot.Handle() }
