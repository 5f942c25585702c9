package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/yamabird/internal/config"
	"github.com/vovakirdan/yamabird/internal/core"
	"github.com/vovakirdan/yamabird/internal/game"
	"github.com/vovakirdan/yamabird/internal/physics"
)

// Options configures a game Model.
type Options struct {
	Config     config.Config
	Runtime    core.RuntimeConfig
	HighScores game.HighScoreStore
	Runs       game.RunRecorder
	Sound      Sounder     // nil plays nothing
	Logger     *log.Logger // nil discards logs
}

// Model is the Bubble Tea model that drives one game. Input collected
// between frames is applied at the start of the next tick, then the game
// advances by one fixed frame.
type Model struct {
	game     *game.Game
	scene    *TermScene
	screen   *core.Screen
	config   core.RuntimeConfig
	sound    Sounder
	log      *log.Logger
	keys     KeyMap
	help     help.Model
	input    core.InputFrame
	taps     []physics.Vec2
	paused   bool
	quitting bool
}

// NewModel creates a model and its game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultRuntime().TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scene := NewTermScene(opts.Sound)
	g := game.New(game.Options{
		Config:     opts.Config,
		Scene:      scene,
		HighScores: opts.HighScores,
		Runs:       opts.Runs,
		Logger:     logger,
		Seed:       cfg.Seed,
	})

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   g,
		scene:  scene,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		sound:  opts.Sound,
		log:    logger,
		keys:   DefaultKeyMap(),
		help:   h,
		input:  core.NewInputFrame(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickInterval())
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.input.Set(action)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	vp := m.viewport()
	if !vp.Valid() || !vp.Area.Contains(msg.X, msg.Y) {
		return m, nil
	}
	m.taps = append(m.taps, vp.ToWorld(msg.X, msg.Y))
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.applyInput()

	if !m.paused {
		m.game.Step(m.config.TickInterval())
	}
	return m, tickCmd(m.config.TickInterval())
}

// applyInput feeds the frame's collected input to the game.
func (m *Model) applyInput() {
	defer func() {
		m.input.Clear()
		m.taps = m.taps[:0]
	}()

	if m.input.Has(core.ActionPause) {
		m.paused = !m.paused
		m.log.Debug("pause", "paused", m.paused)
	}
	if m.input.Has(core.ActionMute) && m.sound != nil {
		on := m.sound.ToggleMute()
		m.log.Debug("sound", "on", on)
	}
	if m.paused {
		return
	}

	if m.input.Has(core.ActionRestart) && m.game.Phase() == game.PhaseGameOver {
		m.game.Tap(m.game.RestartControl().Center())
		return
	}
	if m.input.Has(core.ActionFlap) {
		m.game.Flap()
	}
	for _, p := range m.taps {
		m.game.Tap(p)
	}
}

// viewport maps the world onto the screen above the help line.
func (m Model) viewport() core.Viewport {
	pf := m.game.Config().Playfield
	area := core.NewRect(0, 0, m.screen.Width(), max(m.screen.Height()-1, 0))
	return core.NewViewport(area, pf.Width, pf.Height)
}

var pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

// View renders the game.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	vp := m.viewport()
	m.screen.Clear()
	m.scene.Draw(m.screen, vp)
	if m.paused && vp.Valid() {
		m.screen.DrawTextCentered(vp.Area.Y+vp.Area.H/2, "PAUSED", core.ColorHighlight)
	}

	out := RenderScreen(m.screen)
	if m.screen.Height() > 0 {
		footer := m.help.View(m.keys)
		if m.paused {
			footer = pausedStyle.Render("paused ") + footer
		}
		// The screen's last row is reserved for the footer.
		out = out[:lastLineStart(out)] + footer
	}
	return out
}

func lastLineStart(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// Game returns the model's game.
func (m Model) Game() *game.Game {
	return m.game
}

// Scene returns the model's scene.
func (m Model) Scene() *TermScene {
	return m.scene
}

// Paused reports whether the simulation is paused.
func (m Model) Paused() bool {
	return m.paused
}

// IsQuitting reports whether the user asked to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts a full-screen program for one player and blocks until it
// exits.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
