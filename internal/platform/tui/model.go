package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/level"
)

// footerRows is the number of terminal rows below the game used for help.
const footerRows = 1

// Resizer is implemented by games that can adapt to a new screen size
// without restarting.
type Resizer interface {
	Resize(w, h int)
}

// LevelReloader is implemented by games that accept new level data while
// running.
type LevelReloader interface {
	ReloadLevels(levels []*level.Level)
}

// Options configures a Model beyond the game itself.
type Options struct {
	HoldTicks int // Ticks a direction stays held after its last key event
	Logger    *log.Logger

	// Watcher and Reload enable live level reloading. Reload is called on
	// every change Watcher reports.
	Watcher *level.Watcher
	Reload  func() ([]*level.Level, error)
}

// LevelsChangedMsg reports a level file that changed on disk.
type LevelsChangedMsg struct {
	Path string
}

type watchErrorMsg struct {
	err error
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	watcher    *level.Watcher
	reload     func() ([]*level.Level, error)
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. cfg holds the
// full terminal size; the game gets everything above the help footer.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH = max(cfg.ScreenH-footerRows, 1)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		hold:       NewHoldTracker(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		watcher:    opts.Watcher,
		reload:     opts.Reload,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.watching() {
		cmds = append(cmds, waitForLevelChange(m.watcher))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case LevelsChangedMsg:
		return m.handleLevelsChanged(msg)

	case watchErrorMsg:
		m.logger.Warn("level watcher error", "error", msg.err)
		return m, waitForLevelChange(m.watcher)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Left):
		m.hold.PressX(core.TriNegative)
	case key.Matches(msg, m.keys.Right):
		m.hold.PressX(core.TriPositive)
	case key.Matches(msg, m.keys.Stop):
		m.hold.Release()
		m.inputFrame.Y = core.TriPositive
	case key.Matches(msg, m.keys.Jump):
		m.inputFrame.Set(core.ActionJump)
		m.inputFrame.Y = core.TriNegative
	case key.Matches(msg, m.keys.Attack):
		m.inputFrame.Set(core.ActionAttack)
	case key.Matches(msg, m.keys.Pause):
		m.inputFrame.Set(core.ActionPause)
	case key.Matches(msg, m.keys.Restart):
		m.inputFrame.Set(core.ActionRestart)
		m.hold.Release()
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.hold.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	m.inputFrame.Clear()
	m.inputFrame.Y = core.TriZero
	m.hold.Tick()

	return m, tickCmd(m.config.TickRate)
}

// handleLevelsChanged reloads every level and hands them to the game. A
// broken file is logged and the game keeps its current levels.
func (m Model) handleLevelsChanged(msg LevelsChangedMsg) (tea.Model, tea.Cmd) {
	levels, err := m.reload()
	if err != nil {
		m.logger.Error("level reload failed", "path", msg.Path, "error", err)
		return m, waitForLevelChange(m.watcher)
	}

	if r, ok := m.game.(LevelReloader); ok {
		m.logger.Info("level file changed", "path", msg.Path)
		r.ReloadLevels(levels)
	}
	return m, waitForLevelChange(m.watcher)
}

func (m Model) watching() bool {
	return m.watcher != nil && m.reload != nil
}

// waitForLevelChange blocks until the watcher reports a change. It returns
// nil once the watcher is closed, which ends the watch loop.
func waitForLevelChange(w *level.Watcher) tea.Cmd {
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return LevelsChangedMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return watchErrorMsg{err: err}
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "dir", dir, "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
