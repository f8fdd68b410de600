package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"soulstar.dev/internal/config"
)

// RenderMenuBar renders the top bar: title and key bindings.
func RenderMenuBar(width int, name string, demo bool) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	keys := []struct{ key, label string }{
		{"T", "orch"},
		{"S", "tart"},
		{"P", "ause"},
		{"O", "ff"},
		{"+/-", "bright"},
		{"Q", "uit"},
	}
	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.key+"]") + StyleMenuLabel.Render(k.label)
	}

	mode := ""
	if demo {
		mode = StyleStatusTorch.Render("DEMO") + "  "
	}
	right := mode + StyleMenuLabel.Render(name) + " "

	left := StyleMenuKey.Render(title) + menu
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}
	return StyleMenuBar.Width(width).Render(left + padding + right)
}

// RenderStatusBar renders the bottom bar. The listening marker breathes with
// the supplied pulse level so a quiet badge still looks alive.
func RenderStatusBar(width int, running, torch bool, souls int, brightness, pulse uint8) string {
	var state string
	switch {
	case torch:
		state = StyleStatusTorch.Render("[TORCH]")
	case running:
		state = pulseStyle(pulse).Render("[LISTENING]")
	default:
		state = StyleStatusStopped.Render("[STOPPED]")
	}

	info := fmt.Sprintf(" Souls: %d  Brightness: %d", souls, brightness)
	content := state + StyleStatusBar.Render(info)

	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	padding := ""
	for i := 0; i < gap; i++ {
		padding += " "
	}
	return StyleStatusBar.Width(width).Render(content + padding)
}

// pulseStyle maps a throb brightness onto the amber ramp.
func pulseStyle(pulse uint8) lipgloss.Style {
	switch {
	case pulse > 170:
		return lipgloss.NewStyle().Foreground(ColorAmber).Bold(true)
	case pulse > 85:
		return lipgloss.NewStyle().Foreground(ColorStarlight)
	default:
		return lipgloss.NewStyle().Foreground(ColorDimAmber)
	}
}
