package ui

import (
	"math/rand/v2"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pulseboard/internal/board"
	"github.com/five82/pulseboard/internal/clock"
	"github.com/five82/pulseboard/internal/prefs"
	"github.com/five82/pulseboard/internal/progress"
	"github.com/five82/pulseboard/internal/task"
)

func newTestModel(t *testing.T) (Model, *board.Board) {
	t.Helper()
	b := board.New(board.Options{
		ProgressInterval: time.Millisecond,
		Rand:             rand.New(rand.NewPCG(1, 2)),
		Now:              func() time.Time { return time.Date(2024, 1, 1, 8, 30, 0, 0, time.Local) },
	})
	m := New(Options{
		Board:     b,
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model), b
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model)
	}
	return m, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestView_LoadingBeforeSize(t *testing.T) {
	m := New(Options{})
	assert.Equal(t, "Loading...", m.View())
}

func TestInit_StartsClock(t *testing.T) {
	m, b := newTestModel(t)
	require.NotNil(t, m.Init())
	assert.Equal(t, clock.Running, b.Snapshot().ClockState)
	assert.Contains(t, m.View(), "08:30:00")
}

func TestKeys_CounterArrows(t *testing.T) {
	m, b := newTestModel(t)
	up := tea.KeyMsg{Type: tea.KeyUp}
	down := tea.KeyMsg{Type: tea.KeyDown}

	press(t, m, up, up, up, down)
	assert.Equal(t, 2, b.Snapshot().Counter)

	press(t, m, runeKey('R'))
	assert.Equal(t, 0, b.Snapshot().Counter)
	assert.Equal(t, "Counter reset", b.Snapshot().Page.Message.Text)

	press(t, m, runeKey('+'), runeKey('+'), runeKey('r'))
	assert.Equal(t, 0, b.Snapshot().Counter)
}

func TestKeys_SpaceTogglesClock(t *testing.T) {
	m, b := newTestModel(t)
	m.Init()
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

	press(t, m, space)
	assert.Equal(t, clock.Stopped, b.Snapshot().ClockState)
	assert.Equal(t, 0, b.Registry().Live())

	press(t, m, space)
	assert.Equal(t, clock.Running, b.Snapshot().ClockState)
	assert.Equal(t, 1, b.Registry().Live())
}

func TestKeys_DigitsSelectColor(t *testing.T) {
	m, b := newTestModel(t)

	press(t, m, runeKey('1'), runeKey('3'))
	v := b.Snapshot()
	assert.Equal(t, 2, v.Selected)
	assert.Equal(t, v.Swatches[2].Color, v.Page.Accent)

	// Beyond the swatch set: ignored.
	press(t, m, runeKey('9'))
	assert.Equal(t, 2, b.Snapshot().Selected)
}

func TestKeys_CursorSelectsColor(t *testing.T) {
	m, b := newTestModel(t)
	press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, b.Snapshot().Selected)
}

func TestKeys_ProgressStartAndReset(t *testing.T) {
	m, b := newTestModel(t)

	press(t, m, runeKey('s'), runeKey('s'))
	assert.Equal(t, 1, b.Registry().LiveFor(progress.TaskName))
	assert.True(t, b.Snapshot().Loading)

	press(t, m, runeKey('x'))
	assert.False(t, b.Snapshot().Loading)
	assert.Equal(t, 0, b.Registry().LiveFor(progress.TaskName))
}

// drain runs cmd and every command it produces through the model, in order,
// until done reports true.
func drain(t *testing.T, m Model, cmd tea.Cmd, done func() bool) Model {
	t.Helper()
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && !done(); steps++ {
		require.Less(t, steps, 1000, "command queue did not settle")
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		msg := c()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		next, nc := m.Update(msg)
		m = next.(Model)
		queue = append(queue, nc)
	}
	return m
}

func TestUpdate_ForwardsTicks(t *testing.T) {
	m, b := newTestModel(t)
	m, cmd := press(t, m, runeKey('s'))
	require.True(t, b.Snapshot().Loading)

	m = drain(t, m, cmd, func() bool { return !b.Snapshot().Loading })

	v := b.Snapshot()
	assert.Equal(t, 100, v.Percent)
	assert.Equal(t, 0, b.Registry().LiveFor(progress.TaskName))
	assert.Contains(t, m.View(), "100%")
	assert.Equal(t, "Load complete", v.Page.Message.Text)
}

func TestUpdate_IgnoresStaleTicks(t *testing.T) {
	m, b := newTestModel(t)
	press(t, m, runeKey('s'))

	// No live handle carries this ID.
	_, cmd := m.Update(task.FireMsg{Task: progress.TaskName, ID: 1 << 40, At: time.Now()})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, b.Snapshot().Percent)
	assert.True(t, b.Snapshot().Loading)
}

func TestSafePanel_ContainsPanic(t *testing.T) {
	m, _ := newTestModel(t)
	out := m.safePanel("counter", func() string { panic("boom") })
	assert.Contains(t, out, "[counter unavailable]")
	assert.Equal(t, "ok", m.safePanel("clock", func() string { return "ok" }))
}

func TestColorIndex(t *testing.T) {
	i, ok := colorIndex("1")
	assert.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = colorIndex("9")
	assert.True(t, ok)
	assert.Equal(t, 8, i)

	for _, s := range []string{"0", "a", "10", ""} {
		_, ok := colorIndex(s)
		assert.False(t, ok, "colorIndex(%q)", s)
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	names := ThemeNames()
	for i, name := range names {
		assert.Equal(t, names[(i+1)%len(names)], NextTheme(name))
	}
	assert.Equal(t, names[0], NextTheme("unknown"))
	assert.Equal(t, "Neon", GetTheme("unknown").Name)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "hello", truncate("hello", 10))
	assert.Equal(t, "hel…", truncate("hello", 4))
}

func TestHelp_ToggleAndClose(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, runeKey('?'))
	require.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Keyboard Shortcuts")

	m, _ = press(t, m, runeKey('z'))
	assert.False(t, m.showHelp)
}

func TestQuit_ShutsDownBoard(t *testing.T) {
	m, b := newTestModel(t)
	m.Init()
	press(t, m, runeKey('s'))
	require.Equal(t, 2, b.Registry().Live())

	_, cmd := press(t, m, runeKey('q'))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, 0, b.Registry().Live())
}

func TestCycleTheme_SavesPrefs(t *testing.T) {
	m, _ := newTestModel(t)
	start := m.theme.Name

	m, _ = press(t, m, runeKey('T'))
	assert.Equal(t, NextTheme(start), m.theme.Name)
	assert.Equal(t, m.theme.Name, prefs.Load(m.prefsPath).Theme)
}

func TestView_RendersAllPanels(t *testing.T) {
	m, _ := newTestModel(t)
	m.Init()
	out := m.View()
	for _, want := range []string{"Counter", "Clock", "Colors", "Progress", "Clock started", "pulseboard"} {
		assert.True(t, strings.Contains(out, want), "view missing %q", want)
	}
}

func TestView_CompactStacksPanels(t *testing.T) {
	m, _ := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 60})
	m = next.(Model)
	out := m.View()
	assert.Less(t, strings.Index(out, "Counter"), strings.Index(out, "Clock"))
	assert.Less(t, strings.Index(out, "Colors"), strings.Index(out, "Progress"))
}
