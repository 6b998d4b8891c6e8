package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/akovalov/tui-aimtrainer/internal/core"
	"github.com/akovalov/tui-aimtrainer/internal/game"
	"github.com/akovalov/tui-aimtrainer/internal/storage"
)

// Model is the Bubble Tea model driving the aim trainer.
//
// The model collects input between ticks into a single frame, captures one
// timestamp per tick and hands both to the state machine, then renders the
// machine's snapshot. It never touches game rules itself.
type Model struct {
	machine  *game.Game
	screen   *core.Screen
	layout   Layout
	store    *storage.Store
	config   core.RuntimeConfig
	frame    core.InputFrame
	keys     *KeyMapper
	lastNow  time.Time
	quitting bool
}

// NewModel creates the Bubble Tea model for a terminal of the given cell size.
func NewModel(machine *game.Game, store *storage.Store, cfg core.RuntimeConfig, screenW, screenH int) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	machine.Reset(cfg)

	return Model{
		machine: machine,
		screen:  core.NewScreen(screenW, screenH),
		layout:  NewLayout(screenW, screenH, cfg.CanvasW, cfg.CanvasH),
		store:   store,
		config:  cfg,
		frame:   core.NewInputFrame(time.Now()),
		keys:    NewKeyMapper(),
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
		if m.keys.MapKeyToFrame(msg, &m.frame) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleMouse records pointer movement and clicks into the pending frame.
// The home screen resolves clicks against its buttons; every other screen
// receives the click as a canvas position.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.frame.Mouse = m.layout.CellToCanvas(msg.X, msg.Y)

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		if m.machine.Screen() == game.ScreenHome {
			if action := m.layout.ActionAt(msg.X, msg.Y); action != core.ActionNone {
				m.frame.Set(action)
			}
		} else {
			m.frame.Click(m.layout.CellToCanvas(msg.X, msg.Y))
		}
	}

	return m, nil
}

// handleResize rebuilds the screen buffer and layout. The virtual canvas keeps
// its dimensions, so a running session survives the resize unchanged.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height)
	m.layout = NewLayout(msg.Width, msg.Height, m.config.CanvasW, m.config.CanvasH)
	return m, nil
}

// handleTick runs one simulation step with the tick's captured timestamp.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	now := time.Now()
	m.lastNow = now
	m.frame.Now = now

	result := m.machine.Step(m.frame)

	// The leaderboard commit already happened inside the machine; the history
	// record is the platform's own supplement.
	if result.Ended != nil && m.store != nil {
		//nolint:errcheck // Best-effort save, game continues regardless
		m.store.SaveSession(*result.Ended)
	}

	if result.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	m.frame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	now := m.lastNow
	if now.IsZero() {
		now = time.Now()
	}

	Draw(m.screen, m.layout, m.machine.Snapshot(now))
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program and blocks until the player exits.
func Run(machine *game.Game, store *storage.Store, cfg core.RuntimeConfig, screenW, screenH int) error {
	model := NewModel(machine, store, cfg, screenW, screenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Track the pointer even between clicks for the trail
	)

	_, err := p.Run()
	return err
}
