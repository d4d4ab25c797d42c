package board

import (
	"math/rand/v2"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pulseboard/internal/clock"
	"github.com/five82/pulseboard/internal/counter"
	"github.com/five82/pulseboard/internal/notify"
	"github.com/five82/pulseboard/internal/progress"
	"github.com/five82/pulseboard/internal/state"
	"github.com/five82/pulseboard/internal/task"
)

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 0, time.Local)

func newTestBoard(seed uint64) *Board {
	return New(Options{
		Rand: rand.New(rand.NewPCG(seed, seed^0xabcdef)),
		Now:  func() time.Time { return fixedNow },
	})
}

func TestInit_StartsClock(t *testing.T) {
	b := newTestBoard(1)
	require.NotNil(t, b.Init())

	v := b.Snapshot()
	assert.Equal(t, clock.Running, v.ClockState)
	assert.Equal(t, "07:08:09", v.Clock)
	assert.Equal(t, state.Success, v.Page.Message.Kind)
	assert.Equal(t, "Clock started", v.Page.Message.Text)
	assert.Equal(t, 1, b.Registry().LiveFor(clock.TaskName))
}

func TestToggleClock_TwiceLeavesNoHandle(t *testing.T) {
	b := newTestBoard(1)
	b.ToggleClock()
	b.ToggleClock()

	v := b.Snapshot()
	assert.Equal(t, clock.Stopped, v.ClockState)
	assert.Equal(t, "Clock paused", v.Page.Message.Text)
	assert.Equal(t, state.Warning, v.Page.Message.Kind)
	assert.Equal(t, 0, b.Registry().Live())
}

func TestClockTick_RoutedThroughHandle(t *testing.T) {
	b := newTestBoard(1)
	b.Init()

	at := time.Date(2024, 5, 6, 10, 11, 12, 0, time.Local)
	ok, cmd := b.Handle(task.FireMsg{Task: clock.TaskName, ID: b.clock.Handle(), At: at})
	assert.True(t, ok)
	assert.NotNil(t, cmd)
	assert.Equal(t, "10:11:12", b.Snapshot().Clock)
}

func TestApplyDelta_Example(t *testing.T) {
	b := newTestBoard(1)
	b.ApplyDelta(5)
	b.ApplyDelta(-2)
	b.ApplyDelta(3)

	v := b.Snapshot()
	assert.Equal(t, 6, v.Counter)
	assert.Equal(t, counter.Positive, v.Tone)
	assert.True(t, v.Bump)
}

func TestIncrementDecrement(t *testing.T) {
	b := newTestBoard(1)
	b.Decrement()
	b.Decrement()
	b.Increment()
	v := b.Snapshot()
	assert.Equal(t, -1, v.Counter)
	assert.Equal(t, counter.Negative, v.Tone)
}

func TestBumpEnd_OnlyLatest(t *testing.T) {
	b := newTestBoard(1)
	b.Increment()
	b.Increment()

	b.Handle(BumpEndMsg{Seq: 1})
	assert.True(t, b.Snapshot().Bump, "stale bump end cleared the newer bump")
	b.Handle(BumpEndMsg{Seq: 2})
	assert.False(t, b.Snapshot().Bump)
}

func TestResetCounter(t *testing.T) {
	b := newTestBoard(1)
	b.ApplyDelta(17)
	b.ResetCounter()

	v := b.Snapshot()
	assert.Equal(t, 0, v.Counter)
	assert.Equal(t, counter.Neutral, v.Tone)
	assert.Equal(t, state.Info, v.Page.Message.Kind)
	assert.Equal(t, "Counter reset", v.Page.Message.Text)
}

func TestRandomizeCounter_Bounds(t *testing.T) {
	b := newTestBoard(42)
	for i := 0; i < 1000; i++ {
		b.RandomizeCounter()
		v := b.Snapshot()
		if v.Counter < -100 || v.Counter > 100 {
			t.Fatalf("RandomizeCounter produced %d, want [-100, 100]", v.Counter)
		}
	}
	v := b.Snapshot()
	assert.Equal(t, state.Success, v.Page.Message.Kind)
	assert.Contains(t, v.Page.Message.Text, "Random value: ")
}

func runProgress(t *testing.T, b *Board) []tea.Cmd {
	t.Helper()
	var cmds []tea.Cmd
	for i := 0; i < 200 && b.progress.Running(); i++ {
		_, cmd := b.Handle(task.FireMsg{Task: progress.TaskName, ID: b.progress.Handle(), At: fixedNow})
		cmds = append(cmds, cmd)
		require.LessOrEqual(t, b.Snapshot().Percent, 100)
	}
	return cmds
}

func TestStartProgress_RunsToExactlyHundred(t *testing.T) {
	for seed := uint64(0); seed < 20; seed++ {
		b := newTestBoard(seed)
		b.StartProgress()
		assert.Equal(t, "Loading...", b.Snapshot().Page.Message.Text)
		id := b.progress.Handle()

		runProgress(t, b)

		v := b.Snapshot()
		assert.Equal(t, 100.0, v.Progress)
		assert.Equal(t, 100, v.Percent)
		assert.False(t, v.Loading)
		assert.Equal(t, "Load complete", v.Page.Message.Text)
		assert.Equal(t, 0, b.Registry().LiveFor(progress.TaskName))

		_, cmd := b.Handle(task.FireMsg{Task: progress.TaskName, ID: id, At: fixedNow})
		assert.Nil(t, cmd, "tick after completion must not reschedule")
		assert.Equal(t, 100.0, b.Snapshot().Progress)
	}
}

func TestStartProgress_TwiceKeepsOneHandle(t *testing.T) {
	b := newTestBoard(5)
	b.StartProgress()
	first := b.progress.Handle()
	b.StartProgress()

	assert.Equal(t, 1, b.Registry().LiveFor(progress.TaskName))
	_, cmd := b.Handle(task.FireMsg{Task: progress.TaskName, ID: first, At: fixedNow})
	assert.Nil(t, cmd)
	assert.Equal(t, 0.0, b.Snapshot().Progress)
}

func TestResetProgress(t *testing.T) {
	b := newTestBoard(5)
	b.StartProgress()
	b.Handle(task.FireMsg{Task: progress.TaskName, ID: b.progress.Handle(), At: fixedNow})
	require.Greater(t, b.Snapshot().Progress, 0.0)

	b.ResetProgress()
	v := b.Snapshot()
	assert.Equal(t, 0.0, v.Progress)
	assert.Equal(t, 0, v.Percent)
	assert.False(t, v.Loading)
	assert.Equal(t, 0, b.Registry().Live())
	assert.Equal(t, "Progress reset", v.Page.Message.Text)
}

func TestSelectColor_ReplacesSelection(t *testing.T) {
	b := newTestBoard(1)
	b.SelectColor(0)
	b.SelectColor(3)

	v := b.Snapshot()
	assert.Equal(t, 3, v.Selected)
	assert.Equal(t, v.Swatches[3].Color, v.Page.Accent)
	assert.Equal(t, "Color changed to "+v.Swatches[3].Color, v.Page.Message.Text)
}

func TestSelectColor_UnknownIsIgnored(t *testing.T) {
	b := newTestBoard(1)
	b.SelectColor(1)
	before := b.Snapshot()

	assert.Nil(t, b.SelectColor(42))
	after := b.Snapshot()
	assert.Equal(t, before.Selected, after.Selected)
	assert.Equal(t, before.Page.Accent, after.Page.Accent)
}

func TestSelectColor_ByNameAndCursor(t *testing.T) {
	b := newTestBoard(1)
	b.SelectColorByName("yellow")
	assert.Equal(t, "#ffd60a", b.Snapshot().Page.Accent)

	b.MoveColorCursor(1)
	b.SelectFocusedColor()
	v := b.Snapshot()
	assert.Equal(t, 4, v.Selected)
	assert.Equal(t, "#8338ec", v.Page.Accent)
}

func TestHandle_PulseEnd(t *testing.T) {
	b := newTestBoard(1)
	b.Notify(notify.Info, "hello")
	require.True(t, b.Snapshot().Page.Pulse)

	ok, _ := b.Handle(notify.PulseEndMsg{Seq: 1})
	assert.True(t, ok)
	assert.False(t, b.Snapshot().Page.Pulse)
}

func TestHandle_UnknownMessage(t *testing.T) {
	b := newTestBoard(1)
	ok, cmd := b.Handle(tea.WindowSizeMsg{})
	assert.False(t, ok)
	assert.Nil(t, cmd)
}

func TestShutdown_CancelsEverything(t *testing.T) {
	b := newTestBoard(1)
	b.Init()
	b.StartProgress()
	require.Equal(t, 2, b.Registry().Live())

	b.Shutdown()
	assert.Equal(t, 0, b.Registry().Live())
	assert.Equal(t, 0, b.Snapshot().LiveTasks)
}
