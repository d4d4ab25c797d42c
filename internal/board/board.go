package board

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pulseboard/internal/clock"
	"github.com/five82/pulseboard/internal/counter"
	"github.com/five82/pulseboard/internal/notify"
	"github.com/five82/pulseboard/internal/palette"
	"github.com/five82/pulseboard/internal/progress"
	"github.com/five82/pulseboard/internal/state"
	"github.com/five82/pulseboard/internal/task"
)

// BumpDuration is how long the counter stays emphasized after a change.
const BumpDuration = 200 * time.Millisecond

// Options configure a Board. Zero values select defaults.
type Options struct {
	ClockInterval    time.Duration
	ProgressInterval time.Duration
	Swatches         []palette.Swatch
	Rand             *rand.Rand
	Now              func() time.Time
	Logger           *log.Logger
}

// BumpEndMsg ends the counter bump started with sequence Seq.
type BumpEndMsg struct {
	Seq uint64
}

// Board is the application context. It owns every widget's state and turns
// operations into Bubble Tea commands.
type Board struct {
	registry *task.Registry
	page     *state.Page
	notifier *notify.Notifier

	counter  *counter.Counter
	clock    *clock.Clock
	picker   *palette.Picker
	progress *progress.Runner

	rng    *rand.Rand
	now    func() time.Time
	logger *log.Logger

	bumpSeq uint64
	bumping bool
}

// New builds a board with every widget in its initial state. The clock is
// stopped until Init runs.
func New(opts Options) *Board {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0x9e3779b97f4a7c15))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	reg := task.NewRegistry()
	page := &state.Page{}
	return &Board{
		registry: reg,
		page:     page,
		notifier: notify.New(page, now),
		counter:  &counter.Counter{},
		clock:    clock.New(reg, opts.ClockInterval),
		picker:   palette.New(opts.Swatches),
		progress: progress.New(reg, opts.ProgressInterval, rng),
		rng:      rng,
		now:      now,
		logger:   logger,
	}
}

// Registry exposes the task registry for leak checks.
func (b *Board) Registry() *task.Registry { return b.registry }

// Init performs the load-time transitions: the clock starts.
func (b *Board) Init() tea.Cmd {
	return b.ToggleClock()
}

// Shutdown cancels every live task.
func (b *Board) Shutdown() {
	b.clock.Stop()
	b.progress.Reset()
	b.logger.Printf("board: shutdown, %d live tasks", b.registry.Live())
}

// Handle routes timer and animation messages. It reports whether msg was
// consumed.
func (b *Board) Handle(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case task.FireMsg:
		return true, b.fire(msg)
	case notify.PulseEndMsg:
		b.notifier.EndPulse(msg)
		return true, nil
	case BumpEndMsg:
		if msg.Seq == b.bumpSeq {
			b.bumping = false
		}
		return true, nil
	}
	return false, nil
}

func (b *Board) fire(msg task.FireMsg) tea.Cmd {
	switch msg.Task {
	case clock.TaskName:
		_, next := b.clock.Tick(msg)
		return next
	case progress.TaskName:
		res, next := b.progress.Tick(msg)
		if !res.Accepted {
			return nil
		}
		if res.Done {
			b.logger.Printf("progress: complete")
			return b.notifier.Notify(notify.Success, "Load complete")
		}
		return next
	}
	return nil
}

// ApplyDelta adds d to the counter.
func (b *Board) ApplyDelta(d int) tea.Cmd {
	b.counter.ApplyDelta(d)
	return b.bump()
}

// Increment adds one to the counter.
func (b *Board) Increment() tea.Cmd { return b.ApplyDelta(1) }

// Decrement subtracts one from the counter.
func (b *Board) Decrement() tea.Cmd { return b.ApplyDelta(-1) }

// ResetCounter zeroes the counter.
func (b *Board) ResetCounter() tea.Cmd {
	b.counter.Reset()
	return tea.Batch(b.bump(), b.notifier.Notify(notify.Info, "Counter reset"))
}

// RandomizeCounter sets the counter to a random value in [-100, 100].
func (b *Board) RandomizeCounter() tea.Cmd {
	v := b.counter.Randomize(b.rng)
	return tea.Batch(b.bump(), b.notifier.Notify(notify.Success, fmt.Sprintf("Random value: %d", v)))
}

func (b *Board) bump() tea.Cmd {
	b.bumpSeq++
	b.bumping = true
	seq := b.bumpSeq
	return task.Once(BumpDuration, func(time.Time) tea.Msg {
		return BumpEndMsg{Seq: seq}
	})
}

// ToggleClock starts or pauses the clock.
func (b *Board) ToggleClock() tea.Cmd {
	st, tick := b.clock.Toggle(b.now())
	b.logger.Printf("clock: %s", st)
	if st == clock.Running {
		return tea.Batch(tick, b.notifier.Notify(notify.Success, "Clock started"))
	}
	return b.notifier.Notify(notify.Warning, "Clock paused")
}

// SelectColor selects swatch i and propagates its color as the page accent.
func (b *Board) SelectColor(i int) tea.Cmd {
	sw, err := b.picker.Select(i)
	return b.applySelection(sw, err)
}

// SelectColorByName selects a swatch by name or color value.
func (b *Board) SelectColorByName(name string) tea.Cmd {
	sw, err := b.picker.SelectByName(name)
	return b.applySelection(sw, err)
}

// SelectFocusedColor selects the swatch under the cursor.
func (b *Board) SelectFocusedColor() tea.Cmd {
	sw, err := b.picker.SelectCursor()
	return b.applySelection(sw, err)
}

// MoveColorCursor shifts swatch focus by delta.
func (b *Board) MoveColorCursor(delta int) {
	b.picker.MoveCursor(delta)
}

func (b *Board) applySelection(sw palette.Swatch, err error) tea.Cmd {
	if err != nil {
		if errors.Is(err, palette.ErrUnknownSwatch) {
			b.logger.Printf("palette: %v", err)
			return nil
		}
		return b.notifier.Notify(notify.Error, err.Error())
	}
	b.page.SetAccent(sw.Color)
	return b.notifier.Notify(notify.Success, "Color changed to "+sw.Color)
}

// StartProgress restarts the progress run from zero.
func (b *Board) StartProgress() tea.Cmd {
	restarted := b.progress.Running()
	tick := b.progress.Start()
	if restarted {
		b.logger.Printf("progress: restarted")
	}
	return tea.Batch(tick, b.notifier.Notify(notify.Info, "Loading..."))
}

// ResetProgress cancels any run and zeroes the bar.
func (b *Board) ResetProgress() tea.Cmd {
	b.progress.Reset()
	return b.notifier.Notify(notify.Info, "Progress reset")
}

// Notify writes to the shared message region.
func (b *Board) Notify(kind state.Kind, text string) tea.Cmd {
	return b.notifier.Notify(kind, text)
}

// View is an immutable rendering snapshot of the board.
type View struct {
	Counter    int
	Tone       counter.Tone
	Bump       bool
	Clock      string
	ClockState clock.State
	Swatches   []palette.Swatch
	Selected   int
	Cursor     int
	Progress   float64
	Percent    int
	Loading    bool
	Page       state.Snapshot
	LiveTasks  int
}

// Snapshot captures the board for rendering.
func (b *Board) Snapshot() View {
	return View{
		Counter:    b.counter.Value,
		Tone:       b.counter.Tone(),
		Bump:       b.bumping,
		Clock:      b.clock.Display(),
		ClockState: b.clock.State(),
		Swatches:   b.picker.Swatches(),
		Selected:   b.picker.SelectedIndex(),
		Cursor:     b.picker.Cursor(),
		Progress:   b.progress.Value(),
		Percent:    progress.Label(b.progress.Value()),
		Loading:    b.progress.Running(),
		Page:       b.page.Snapshot(),
		LiveTasks:  b.registry.Live(),
	}
}
