package ui

import (
	"io"
	"log"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pulseboard/internal/board"
	"github.com/five82/pulseboard/internal/prefs"
)

// Options configures the UI.
type Options struct {
	Board     *board.Board
	ThemeName string
	PrefsPath string
	ShowHelp  bool
	Logger    *log.Logger
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	board     *board.Board
	prefsPath string
	logger    *log.Logger

	// UI state
	keys     keyMap
	help     help.Model
	bar      progress.Model
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	b := opts.Board
	if b == nil {
		b = board.New(board.Options{Logger: opts.Logger})
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(opts.ThemeName)

	return Model{
		board:     b,
		prefsPath: prefsPath,
		logger:    logger,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		bar: progress.New(
			progress.WithSolidFill(theme.Accent),
			progress.WithoutPercentage(),
			progress.WithWidth(progressBarWidth),
		),
		theme:    theme,
		showHelp: opts.ShowHelp,
	}
}

// Init implements tea.Model. The clock starts on load.
func (m Model) Init() tea.Cmd {
	return m.board.Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil
	}

	if ok, cmd := m.board.Handle(msg); ok {
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Quit) {
			return m.quit()
		}
		// Any other key closes help
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			p := prefs.Load(m.prefsPath)
			p.Theme = m.theme.Name
			if err := prefs.Save(m.prefsPath, p); err != nil {
				m.logger.Printf("ui: save prefs: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Increment):
		return m, m.board.Increment()

	case key.Matches(msg, m.keys.Decrement):
		return m, m.board.Decrement()

	case key.Matches(msg, m.keys.Reset):
		return m, m.board.ResetCounter()

	case key.Matches(msg, m.keys.Randomize):
		return m, m.board.RandomizeCounter()

	case key.Matches(msg, m.keys.ToggleClock):
		return m, m.board.ToggleClock()

	case key.Matches(msg, m.keys.SelectColor):
		if i, ok := colorIndex(msg.String()); ok {
			return m, m.board.SelectColor(i)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevColor):
		m.board.MoveColorCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextColor):
		m.board.MoveColorCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.PickColor):
		return m, m.board.SelectFocusedColor()

	case key.Matches(msg, m.keys.StartProgress):
		return m, m.board.StartProgress()

	case key.Matches(msg, m.keys.ResetProgress):
		return m, m.board.ResetProgress()
	}

	return m, nil
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.board.Shutdown()
	return m, tea.Quit
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options, programOpts ...tea.ProgramOption) error {
	m := New(opts)
	programOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	p := tea.NewProgram(m, programOpts...)
	_, err := p.Run()
	m.board.Shutdown()
	return err
}
