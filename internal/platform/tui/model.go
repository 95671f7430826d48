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
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options configures a game session.
type Options struct {
	Game    config.Config
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional; finished and quit runs are journaled when set
	Logger  *log.Logger    // Optional; defaults to a discarding logger

	// Difficulty skips the menu when set.
	Difficulty *flappy.Difficulty
}

// Model is the Bubble Tea model hosting one flappy game.
type Model struct {
	game    *flappy.Game
	screen  *core.Screen
	store   *storage.Store
	logger  *log.Logger
	runtime core.RuntimeConfig
	keys    KeyMap
	help    help.Model

	cursor   int  // Menu selection
	gen      int  // Current session timer; ticks from older timers are dropped
	saved    bool // Journal written for the current game over
	lastRun  int64
	quitting bool
}

// NewModel creates the model. The game starts in the menu unless
// opts.Difficulty is set.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = opts.Game.Timing.TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:    flappy.New(opts.Game, rt.Seed),
		screen:  core.NewScreen(rt.ScreenW, max(1, rt.ScreenH-1)),
		store:   opts.Store,
		logger:  logger,
		runtime: rt,
		keys:    DefaultKeyMap(),
		help:    h,
		cursor:  int(flappy.Normal),
	}

	if d := opts.Difficulty; d != nil && m.game.OnSelectDifficulty(*d) {
		m.cursor = int(*d)
		m.gen = 1
		m.logger.Info("session started", "difficulty", *d, "seed", m.game.Journal().Seed)
	}
	return m
}

// Init starts the tick loop when a session is already running.
func (m Model) Init() tea.Cmd {
	if m.game.Phase() != flappy.PhasePlaying {
		return nil
	}
	return tickCmd(m.runtime.TickInterval(), m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(1, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input. Input is applied between ticks.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg, m.game.Phase()) {
	case core.ActionQuit:
		if m.game.Phase() == flappy.PhasePlaying {
			j := m.game.Journal()
			m.logger.Info("session quit", "difficulty", j.Difficulty, "score", j.Score, "ticks", j.Ticks)
			m.journalRun(j)
		}
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		m.cursor = core.Clamp(m.cursor-1, 0, len(flappy.Difficulties())-1)

	case core.ActionDown:
		m.cursor = core.Clamp(m.cursor+1, 0, len(flappy.Difficulties())-1)

	case core.ActionConfirm:
		d := flappy.Difficulties()[m.cursor]
		if m.game.OnSelectDifficulty(d) {
			m.logger.Info("session started", "difficulty", d, "seed", m.game.Journal().Seed)
			return m.startTimer()
		}

	case core.ActionFlap:
		wasOver := m.game.Phase() == flappy.PhaseGameOver
		if m.game.OnFlap() && wasOver {
			m.logger.Info("session restarted", "difficulty", m.game.Difficulty(), "seed", m.game.Journal().Seed)
			return m.startTimer()
		}

	case core.ActionRestart:
		if m.game.Restart() {
			m.logger.Info("session restarted", "difficulty", m.game.Difficulty(), "seed", m.game.Journal().Seed)
			return m.startTimer()
		}

	case core.ActionBack:
		if m.game.Back() {
			m.cursor = int(m.game.Difficulty())
			m.logger.Debug("back to menu")
		}
	}

	return m, nil
}

// startTimer begins a new timer generation for a fresh session.
func (m Model) startTimer() (tea.Model, tea.Cmd) {
	m.gen++
	m.saved = false
	return m, tickCmd(m.runtime.TickInterval(), m.gen)
}

// handleTick advances the simulation and re-arms the timer while playing.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.Gen != m.gen || m.game.Phase() != flappy.PhasePlaying {
		return m, nil
	}

	res := m.game.OnTick()
	for _, ev := range res.Events {
		if ev.Kind == flappy.EventScored {
			m.logger.Debug("pipe cleared", "pipe", ev.PipeID, "score", res.Score)
		}
	}

	if res.Phase == flappy.PhaseGameOver {
		m.onGameOver()
		return m, nil
	}
	return m, tickCmd(m.runtime.TickInterval(), m.gen)
}

// onGameOver journals the finished session.
func (m *Model) onGameOver() {
	j := m.game.Journal()
	m.logger.Info("game over", "difficulty", j.Difficulty, "score", j.Score, "ticks", j.Ticks, "flaps", len(j.Flaps))

	m.journalRun(j)
}

// journalRun saves j once per session. Saving is best effort.
func (m *Model) journalRun(j flappy.Journal) {
	if m.saved || m.store == nil {
		return
	}
	m.saved = true

	id, err := m.store.SaveRun(j)
	if err != nil {
		m.logger.Warn("could not journal run", "error", err)
		return
	}
	m.lastRun = id
	m.logger.Debug("run journaled", "id", id)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}

	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw renders the current phase into the screen buffer.
func (m Model) draw() {
	if m.game.Phase() == flappy.PhaseMenu {
		renderMenu(m.screen, m.cursor, m.game.Config().Physics.Gravity)
		return
	}
	renderPlayfield(m.screen, m.game.Snapshot())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Game exposes the hosted game.
func (m Model) Game() *flappy.Game {
	return m.game
}

// LastRunID returns the journal ID of the most recently saved run, or 0.
func (m Model) LastRunID() int64 {
	return m.lastRun
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) (Model, error) {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return Model{}, nil
	}
	return m, nil
}
