// Package ui is the terminal badge simulator: it shows what the LED ring is
// doing and turns keystrokes into control messages, standing in for the
// physical button.
package ui

import (
	"image/color"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"soulstar.dev/internal/animation"
	"soulstar.dev/internal/colour"
	"soulstar.dev/internal/config"
	"soulstar.dev/internal/display"
	"soulstar.dev/internal/led"
	"soulstar.dev/internal/protocol"
	"soulstar.dev/internal/tracker"
)

// statsTickMsg refreshes the soul list and the status pulse.
type statsTickMsg time.Time

// shared holds what all copies of the model point at. Bubble Tea uses value
// receivers, so pointer fields keep every copy on the same data.
type shared struct {
	ctrl    chan<- display.Msg
	tracker *tracker.Tracker
	throb   *animation.Throb
}

// Model is the root Bubble Tea model for the badge simulator.
type Model struct {
	width  int
	height int

	cfg  *config.Config
	demo bool

	frame      []color.RGBA
	brightness uint8
	running    bool
	torch      bool
	pulse      uint8
	souls      []protocol.PresenceMessage

	shared *shared
}

// New creates the simulator model.
func New(cfg *config.Config, ctrl chan<- display.Msg, trk *tracker.Tracker, demo bool) Model {
	return Model{
		cfg:        cfg,
		demo:       demo,
		frame:      make([]color.RGBA, cfg.StripLen),
		brightness: cfg.Brightness,
		running:    true,
		shared: &shared{
			ctrl:    ctrl,
			tracker: trk,
			throb:   animation.NewThrob(0, animation.Up, 48, 0, false),
		},
	}
}

func (m Model) Init() tea.Cmd {
	return statsTick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case led.FrameMsg:
		m.frame = msg.Pixels
		m.brightness = msg.Brightness
		return m, nil

	case statsTickMsg:
		m.souls = m.shared.tracker.Souls()
		m.pulse, _ = m.shared.throb.Next()
		return m, statsTick()
	}
	return m, nil
}

// handleKey is the button watcher. Every send is best-effort: a full control
// queue means a dropped keypress, same as a bouncing physical button.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "t":
		m.torch = !m.torch
		display.TrySend(m.shared.ctrl, display.Torch{On: m.torch})

	case "s":
		m.running = true
		display.TrySend(m.shared.ctrl, display.Start{})

	case "p":
		m.running = false
		display.TrySend(m.shared.ctrl, display.Stop{})

	case "o":
		m.running = false
		display.TrySend(m.shared.ctrl, display.Off{})

	case "O":
		m.running = true
		display.TrySend(m.shared.ctrl, display.On{})

	case "+", "=":
		m.brightness = colour.Clip(int16(m.brightness) + 16)
		display.TrySend(m.shared.ctrl, display.Brightness{Level: m.brightness})

	case "-":
		m.brightness = colour.Clip(int16(m.brightness) - 16)
		display.TrySend(m.shared.ctrl, display.Brightness{Level: m.brightness})
	}
	return m, nil
}

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Lighting the badge..."
	}

	bodyH := m.height - 2
	if bodyH < 5 {
		bodyH = 5
	}
	ringW := m.width * 3 / 5
	if ringW < 24 {
		ringW = 24
	}
	listW := m.width - ringW
	if listW < 20 {
		listW = 20
		ringW = m.width - listW
	}

	menuBar := RenderMenuBar(m.width, m.cfg.Name, m.demo)
	ring := RenderRing(ringW-4, bodyH-2, m.frame)
	ringPanel := RenderRingPanel(ringW, bodyH, ring)
	soulList := RenderSoulList(m.souls, listW, bodyH)
	statusBar := RenderStatusBar(m.width, m.running, m.torch, len(m.souls), m.brightness, m.pulse)

	middle := lipgloss.JoinHorizontal(lipgloss.Top, ringPanel, soulList)
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, middle, statusBar)
}

func statsTick() tea.Cmd {
	return tea.Tick(500*time.Millisecond, func(t time.Time) tea.Msg {
		return statsTickMsg(t)
	})
}
