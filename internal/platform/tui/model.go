package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"chase8/internal/audio"
	"chase8/internal/config"
	"chase8/internal/core"
	"chase8/internal/registry"
)

// toneSource is implemented by games that drive the buzzer. The platform
// polls it after every tick.
type toneSource interface {
	ToneActive() bool
}

// Model is the Bubble Tea model that runs a game session.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	app        *config.Config
	buzzer     *audio.Buzzer
	inputFrame core.InputFrame
	gameState  core.GameState
	palette    int
	tickRate   int
	quitting   bool
}

// NewModel creates a Bubble Tea model for the given game. The buzzer may be
// nil; remote sessions run silent.
func NewModel(game registry.Game, cfg core.RuntimeConfig, app *config.Config, buzzer *audio.Buzzer) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		config:     cfg,
		app:        app,
		buzzer:     buzzer,
		inputFrame: core.NewInputFrame(),
		palette:    app.Display.Palette,
		tickRate:   cfg.TickRate,
	}
}

// Init initializes the model and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey translates terminal keys to actions. Platform-level actions are
// applied here; game actions are collected into the input frame for the next
// tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.silenceBuzzer()
		return m, tea.Quit

	case core.ActionMute:
		if m.buzzer != nil {
			m.buzzer.ToggleMute()
		}

	case core.ActionPaletteNext:
		m.palette = (m.palette + 1) % len(m.app.Display.Palettes)

	case core.ActionPalettePrev:
		m.palette = (m.palette - 1 + len(m.app.Display.Palettes)) % len(m.app.Display.Palettes)

	case core.ActionSpeedUp:
		m.tickRate = min(m.tickRate+m.app.Speed.Step, m.app.Speed.Max)

	case core.ActionSpeedDown:
		m.tickRate = max(m.tickRate-m.app.Speed.Step, m.app.Speed.Min)

	case core.ActionSpeedReset:
		m.tickRate = m.app.Speed.TickRate

	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionNone:

	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleTick advances the simulation by one tick and reschedules.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		// Reseed so the restarted game takes a fresh path.
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.silenceBuzzer()
		m.inputFrame.Clear()
		return m, tickCmd(m.tickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.buzzer != nil {
		if tone, ok := m.game.(toneSource); ok {
			m.buzzer.SetPlaying(tone.ToneActive() && !m.gameState.Paused)
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.tickRate)
}

func (m Model) silenceBuzzer() {
	if m.buzzer != nil {
		m.buzzer.SetPlaying(false)
	}
}

// statusLine reports the live palette, speed and mute state.
func (m Model) statusLine() string {
	p := m.app.Display.Palettes[m.palette]
	line := fmt.Sprintf(" %s  %d tps", p.Name, m.tickRate)
	if m.buzzer != nil && m.buzzer.Muted() {
		line += "  muted"
	}
	return line
}

// View renders the game plus a status/help footer in the current palette.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.statusLine() + "\n" + m.help.View(m.keys)
	gameH := max(m.config.ScreenH-lipgloss.Height(footer), 1)
	m.screen.Resize(m.config.ScreenW, gameH)

	m.game.Render(m.screen)

	style := PaletteStyle(m.app.Display.Palettes[m.palette])
	return RenderScreen(m.screen, style) + "\n" + footer
}

// Run starts the Bubble Tea program for a local session and blocks until it
// exits.
func Run(game registry.Game, cfg core.RuntimeConfig, app *config.Config, buzzer *audio.Buzzer) error {
	p := tea.NewProgram(
		NewModel(game, cfg, app, buzzer),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
