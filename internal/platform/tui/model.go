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

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// helpRows is the number of terminal rows below the game reserved for key help.
const helpRows = 1

// Model is the Bubble Tea model that hosts a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       *KeyMapper
	help       help.Model
	logger     *log.Logger
	ticking    bool // Whether a TickMsg is scheduled
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// The terminal size in cfg includes the help row.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH = playHeight(cfg.ScreenH)

	h := help.New()
	h.ShowAll = false

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		keys:       NewKeyMapper(),
		help:       h,
		logger:     logger,
		ticking:    true,
	}
}

// playHeight returns the rows available to the game for a terminal height.
func playHeight(termH int) int {
	return max(termH-helpRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}
	return m.apply(action)
}

// handleMouse processes mouse presses.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	return m.apply(m.keys.MapMouse(msg, m.gameState.GameOver))
}

// apply queues an action for the next tick. After game over no tick is
// pending, so a restart is stepped right away and the loop is re-armed.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	switch {
	case action == core.ActionNone:
		return m, nil
	case m.gameState.GameOver:
		if action != core.ActionRestart {
			return m, nil
		}
		frame := core.NewInputFrame()
		frame.Set(core.ActionRestart)
		m.gameState = m.game.Step(frame).State
		m.inputFrame.Clear()
		m.logger.Debug("round restarted", "game", m.game.ID())
		return m.rearm()
	default:
		m.inputFrame.Set(action)
		return m, nil
	}
}

// rearm schedules a tick unless one is already pending.
func (m Model) rearm() (tea.Model, tea.Cmd) {
	if m.ticking || m.gameState.GameOver {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// handleResize processes window resize events. Games that can follow a
// resize keep their round; others start over.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = playHeight(msg.Height)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return m, nil
	}
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
		m.gameState = m.game.State()
	}
	return m, nil
}

// handleTick runs one simulation step and schedules the next one while the
// round is still going.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = false

	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	if result.State.GameOver && !m.gameState.GameOver {
		m.logger.Info("round over", "game", m.game.ID(), "score", result.State.Score)
	}
	m.gameState = result.State

	return m.rearm()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
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
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys.Keys)
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses jump and restart
	)

	_, err := p.Run()
	return err
}
