package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"soulstar.dev/internal/protocol"
)

// RenderSoulList renders the panel of currently visible souls, strongest
// signal first.
func RenderSoulList(souls []protocol.PresenceMessage, width, height int) string {
	innerW := width - 4
	if innerW < 10 {
		innerW = 10
	}

	title := StylePanelTitle.Render(fmt.Sprintf("SOULS [%d]", len(souls)))
	separator := StyleSoulKey.Render(strings.Repeat("-", innerW))
	lines := []string{title, separator}

	if len(souls) == 0 {
		lines = append(lines, "", StyleHelp.Render(" No souls nearby..."), StyleHelp.Render(" Listening"))
	}

	maxVisible := (height - 4) / 3
	if maxVisible < 1 {
		maxVisible = 1
	}
	for i, s := range souls {
		if i >= maxVisible {
			break
		}
		swatch := lipgloss.NewStyle().
			Foreground(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", s.Colour.R, s.Colour.G, s.Colour.B))).
			Render("●")
		lines = append(lines,
			fmt.Sprintf(" %s %s", swatch, StyleSoulName.Render(truncate(s.Name, innerW-4))),
			fmt.Sprintf("   %s %s",
				StyleSoulKey.Render(fmt.Sprintf("%08X", s.Key)),
				StyleSoulSignal.Render(fmt.Sprintf("%ddBm loss %d", s.RSSI, int16(s.TxPower)-s.RSSI))),
			"",
		)
	}

	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

func truncate(s string, max int) string {
	if max < 1 || len(s) <= max {
		return s
	}
	return s[:max]
}
