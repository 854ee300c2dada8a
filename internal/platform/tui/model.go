package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/happy-arcade/internal/core"
	"github.com/vovakirdan/happy-arcade/internal/engine"
	"github.com/vovakirdan/happy-arcade/internal/input"
	"github.com/vovakirdan/happy-arcade/internal/platform/gamepad"
	"github.com/vovakirdan/happy-arcade/internal/registry"
)

// PadSource supplies the connected gamepads once per tick.
type PadSource interface {
	Snapshot() []input.Gamepad
}

var captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	session *engine.Session
	screen  *core.Screen
	config  core.RuntimeConfig
	keys    KeyMap
	help    help.Model
	tracker *input.KeyTracker
	pads    PadSource
	logger  *log.Logger

	click    *core.Vec
	caption  string
	quitting bool
}

// NewModel creates a model for game. One terminal row is kept for the
// help bar; the game draws into the rest.
func NewModel(game registry.Game, cfg core.RuntimeConfig, pads PadSource, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	w, h := cfg.ScreenW, gameRows(cfg.ScreenH, 1)
	s := engine.NewSession(game, core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: cfg.TickRate, Seed: cfg.Seed}, logger)

	return Model{
		session: s,
		screen:  core.NewScreen(w, h),
		config:  cfg,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		tracker: input.NewKeyTracker(s.HoldTicks()),
		pads:    pads,
		logger:  logger,
	}
}

// gameRows is the terminal height left for the game after the footer.
func gameRows(termRows, footer int) int {
	if termRows-footer >= 2 {
		return termRows - footer
	}
	return termRows
}

func (m Model) footerRows() int {
	if m.help.ShowAll {
		return 3
	}
	return 1
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

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.screen.Resize(m.config.ScreenW, gameRows(m.config.ScreenH, m.footerRows()))
		return m, nil
	}

	k, ok := m.keys.GameKey(msg)
	if !ok {
		return m, nil
	}
	// A completed run has no restart of its own; start a fresh session.
	if k == core.KeyRestart && m.session.Last().State.Phase == core.PhaseComplete {
		m.session.Restart()
		m.tracker = input.NewKeyTracker(m.session.HoldTicks())
		m.caption = ""
		return m, nil
	}
	m.tracker.Press(k)
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if p, ok := cellToView(msg.X, msg.Y, m.screen.Width(), m.screen.Height()); ok {
		m.click = &p
	}
	return m, nil
}

// cellToView converts a terminal cell to normalized viewport coordinates.
// Row 0 is the HUD and maps to nothing.
func cellToView(cx, cy, w, h int) (core.Vec, bool) {
	if w <= 0 || h <= 1 || cx < 0 || cx >= w || cy < 1 || cy >= h {
		return core.Vec{}, false
	}
	return core.Vec{
		X: (float64(cx) + 0.5) / float64(w),
		Y: (float64(cy-1) + 0.5) / float64(h-1),
	}, true
}

// handleResize only resizes the drawing surface; game state is kept since
// the simulation runs in its own units.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.screen.Resize(msg.Width, gameRows(msg.Height, m.footerRows()))
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	snap := input.Snapshot{Keys: m.tracker.State(), Click: m.click}
	if m.pads != nil {
		snap.Pads = m.pads.Snapshot()
	}

	res := m.session.Tick(snap)
	m.tracker.Advance()
	m.click = nil

	if c := caption(res.Events); c != "" {
		m.caption = c
	}

	return m, tickCmd(m.config.TickRate)
}

// caption lists the notable events of one tick. Chugs fire constantly and
// are left out.
func caption(events []core.Event) string {
	names := make([]string, 0, len(events))
	for _, e := range events {
		if e.Kind == core.EventChug {
			continue
		}
		names = append(names, e.Kind.String())
	}
	return strings.Join(names, " ")
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.session.Game().ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the game followed by the help bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)

	footer := m.help.View(m.keys)
	if m.caption != "" && !m.help.ShowAll {
		footer += "  " + captionStyle.Render(m.caption)
	}
	return RenderScreen(m.screen) + "\n" + footer
}

// Run plays game until the user quits. Gamepads are polled in the
// background for as long as the program runs.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pads := gamepad.NewManager(logger)
	go pads.Run(ctx)

	p := tea.NewProgram(
		NewModel(game, cfg, pads, logger),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
