package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkraev/lanedash/internal/config"
	"github.com/mkraev/lanedash/internal/core"
	"github.com/mkraev/lanedash/internal/sim"
	"github.com/mkraev/lanedash/internal/storage"
)

// hudState collects the simulation's UI notifications for the next frame.
// Shared by pointer because Bubble Tea models are values.
type hudState struct {
	banner      string
	bannerUntil time.Time
}

func (h *hudState) PowerStateChanged(kind sim.PowerKind) {
	switch kind {
	case sim.PowerMagnet:
		h.banner = "MAGNET!"
	case sim.PowerShield:
		h.banner = "SHIELD!"
	default:
		h.banner = ""
	}
	h.bannerUntil = time.Now().Add(2 * time.Second)
}

func (h *hudState) HudChanged(energy float64, score, best int) {}

func (h *hudState) GameOverTriggered(finalScore, finalBest int) {
	h.banner = ""
}

// Model is the Bubble Tea model running a lanedash session.
type Model struct {
	sim    *sim.Simulation
	hud    *hudState
	screen *core.Screen
	keys   *KeyMapper
	config core.RuntimeConfig

	quitting bool
}

// NewModel creates a Bubble Tea model around a fresh simulation.
// store may be nil (play without persistence).
func NewModel(gameCfg config.Config, store *storage.Store, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	hud := &hudState{}
	var scoreStore sim.ScoreStore
	if store != nil {
		scoreStore = storage.NewBestScores(store)
	}

	return Model{
		sim:    sim.New(gameCfg, cfg.Seed, scoreStore, hud),
		hud:    hud,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:   NewKeyMapper(),
		config: cfg,
	}
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

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		m.sim.Advance(timestampMs(time.Time(msg)))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey forwards keyboard input to the simulation as logical actions.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.sim.MoveLeft()
	case core.ActionRight:
		m.sim.MoveRight()
	case core.ActionStart:
		m.sim.Start(timestampMs(time.Now()))
	case core.ActionPause:
		m.sim.TogglePause()
	}

	return m, nil
}

// saveScreenshot saves the current frame to a file.
func (m *Model) saveScreenshot() {
	m.drawFrame()

	dir := filepath.Join(os.Getenv("HOME"), ".lanedash", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("lanedash_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// drawFrame projects the current snapshot onto the screen buffer.
func (m *Model) drawFrame() {
	banner := ""
	if time.Now().Before(m.hud.bannerUntil) {
		banner = m.hud.banner
	}
	Draw(m.screen, m.sim.Snapshot(), banner)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.drawFrame()
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for a local game session.
func Run(gameCfg config.Config, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(gameCfg, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
