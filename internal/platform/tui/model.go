package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/thecubes/internal/core"
	"github.com/vovakirdan/thecubes/internal/games/cubes"
	"github.com/vovakirdan/thecubes/internal/registry"
	"github.com/vovakirdan/thecubes/internal/storage"
)

// RunReporter is implemented by games that keep per-run statistics.
type RunReporter interface {
	Stats() cubes.RunStats
}

// Model is the Bubble Tea model for running a game mode.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	standalone bool // Owns the program; quit and back end it
	quitting   bool
	back       bool // Player asked to return to the menu
	saved      bool // Whether the run has been saved for current game over
}

// loggable is implemented by games that accept a debug logger.
type loggable interface {
	SetLogger(*log.Logger)
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if l, ok := game.(loggable); ok {
		l.SetLogger(logger)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.keyMapper.IsScreenshot(msg) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, m.exit()
	case action == core.ActionBack:
		m.back = true
		return m, m.exit()
	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// exit ends the program when the model runs on its own. Embedded in a
// session, the parent reads the flags instead.
func (m Model) exit() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.saved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.saved {
		m.saveRun()
		m.saved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the score and, when the game reports them, the run
// statistics. Failures are logged and the game continues.
func (m *Model) saveRun() {
	id := m.game.ID()
	score := m.gameState.Score
	m.logger.Info("run finished", "game", id, "score", score)

	if m.store == nil {
		return
	}
	if score > 0 {
		if _, err := m.store.SaveScore(id, score); err != nil {
			m.logger.Warn("cannot save score", "error", err)
		}
	}

	r, ok := m.game.(RunReporter)
	if !ok {
		return
	}
	st := r.Stats()
	_, err := m.store.SaveRun(storage.RunRecord{
		GameID:    id,
		Score:     score,
		Ticks:     st.Ticks,
		Spawned:   st.Spawned,
		Despawned: st.Despawned,
		Wrapped:   st.Wrapped,
		Diamonds:  st.Diamonds,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "error", err)
	}
}

// saveScreenshot writes the current frame as plain text to
// ~/.cubes/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".cubes", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
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
	return RenderScreen(m.screen)
}

// IsQuitting reports whether the player asked to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// WantsBack reports whether the player left the game for the menu.
func (m Model) WantsBack() bool {
	return m.back
}

// Config returns the runtime config, updated by window resizes.
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// Run plays game until the player quits. It returns true when the player
// pressed back rather than quit.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (back bool, err error) {
	model := NewModel(game, store, cfg, logger)
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.WantsBack(), nil
}
