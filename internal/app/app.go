package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/pulseboard/internal/board"
	"github.com/five82/pulseboard/internal/config"
	"github.com/five82/pulseboard/internal/paths"
	"github.com/five82/pulseboard/internal/prefs"
	"github.com/five82/pulseboard/internal/ui"
)

// Options configure the pulseboard application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pulseboard/prefs.toml
	LogPath    string // overrides log_file from the config
	Seed       uint64 // zero picks a random seed
}

const logPrefix = "pulseboard "

// Run boots the dashboard until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logPath := cfg.LogFile
	if opts.LogPath != "" {
		logPath = paths.MustExpand(opts.LogPath)
	}
	logger, closeLog, err := openLog(logPath)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	logger.Printf("starting: clock every %s, progress every %s, %d swatches",
		cfg.ClockInterval, cfg.ProgressInterval, len(cfg.Swatches))

	b := board.New(board.Options{
		ClockInterval:    cfg.ClockInterval,
		ProgressInterval: cfg.ProgressInterval,
		Swatches:         cfg.Swatches,
		Rand:             newRand(opts.Seed),
		Logger:           logger,
	})

	uiOpts := ui.Options{
		Board:     b,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		ShowHelp:  userPrefs.ShowHelp,
		Logger:    logger,
	}
	err = ui.Run(uiOpts, tea.WithContext(ctx))
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		logger.Printf("stopped: %v", ctx.Err())
		return nil
	}
	return err
}

// openLog returns a logger appending to path. Without a path, log output is
// discarded so nothing writes over the alternate screen.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	logger := log.New(io.Discard, "", log.LstdFlags)
	f, err := tea.LogToFileWith(path, logPrefix, logger)
	if err != nil {
		return nil, nil, err
	}
	return logger, func() { _ = f.Close() }, nil
}

// newRand returns a PCG-backed generator. A fixed seed makes random counter
// values and progress steps repeatable.
func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}
