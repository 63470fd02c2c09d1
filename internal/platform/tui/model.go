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

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/platform"
	"github.com/vovakirdan/tui-flappy/internal/scene"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// helpRows is the number of terminal rows reserved below the game for help.
const helpRows = 1

// Options configures a game model.
type Options struct {
	Registry *scene.Registry
	Store    *storage.Store // nil disables persistence
	Player   string         // name recorded with finished runs
	Config   core.RuntimeConfig
	Logger   *log.Logger
}

// Model is the Bubble Tea model that drives the scene director.
type Model struct {
	director   *scene.Director
	screen     *core.Screen
	config     core.RuntimeConfig
	logger     *log.Logger
	inputFrame core.InputFrame
	keys       KeyMap
	help       help.Model
	quitting   bool
}

// NewModel creates a model positioned on the start scene. The runtime
// config describes the whole terminal; one row is kept for the help line.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Config
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
	m.help.Width = cfg.ScreenW

	playCfg := cfg
	playCfg.ScreenH = playHeight(cfg.ScreenH)
	d, err := scene.NewDirector(opts.Registry, scene.Start, playCfg, logger)
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
	}
	d.OnGameOver = platform.RunRecorder(opts.Store, opts.Player, logger)
	m.director = d

	return m, nil
}

func playHeight(h int) int {
	return max(h-helpRows, 1)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize re-enters the current scene at the new size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	h := playHeight(msg.Height)
	m.screen.Resize(msg.Width, h)
	m.director.Resize(msg.Width, h)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.director.Tick(m.inputFrame)

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.Interval())
}

// Scene returns the active scene.
func (m Model) Scene() scene.Scene {
	return m.director.Current()
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.director.Render(m.screen)

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
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.director.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts a local Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse clicks are taps
	)

	_, err = p.Run()
	return err
}
