//go:build !tinygo

package led

import (
	"image/color"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg carries one corrected frame into the terminal simulator.
type FrameMsg struct {
	Pixels     []color.RGBA
	Brightness uint8
}

// Terminal is the simulator sink. Frames are published into the Bubble Tea
// program via Send, which never blocks the caller.
type Terminal struct {
	program *tea.Program
}

func NewTerminal(p *tea.Program) *Terminal {
	return &Terminal{program: p}
}

func (t *Terminal) Write(frame []color.RGBA, brightness uint8) error {
	t.program.Send(FrameMsg{Pixels: Correct(frame, brightness), Brightness: brightness})
	return nil
}
