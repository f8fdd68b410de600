package ui

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal cells are roughly twice as tall as wide; squash vertically so
// the ring looks circular.
const aspectRatio = 0.5

// RenderRing draws the LED ring into a width-by-height cell grid. LED 0 sits
// at the top, indices advance clockwise, mirroring the physical badge.
func RenderRing(width, height int, pixels []color.RGBA) string {
	if width < 5 || height < 3 || len(pixels) == 0 {
		return ""
	}

	grid := make([][]string, height)
	for r := range grid {
		grid[r] = make([]string, width)
		for c := range grid[r] {
			grid[r][c] = " "
		}
	}

	cx := width / 2
	cy := height / 2
	radius := float64(cx - 1)
	if vr := float64(cy-1) / aspectRatio; vr < radius {
		radius = vr
	}
	if radius < 1 {
		radius = 1
	}

	for i, px := range pixels {
		angle := 2 * math.Pi * float64(i) / float64(len(pixels))
		col := cx + int(math.Round(radius*math.Sin(angle)))
		row := cy - int(math.Round(radius*math.Cos(angle)*aspectRatio))
		if row < 0 || row >= height || col < 0 || col >= width {
			continue
		}
		grid[row][col] = ledCell(px)
	}

	lines := make([]string, height)
	for r := range grid {
		lines[r] = strings.Join(grid[r], "")
	}
	return strings.Join(lines, "\n")
}

// ledCell renders one LED. A dark pixel still shows as a dim dot so the
// ring shape stays visible when the display is off.
func ledCell(px color.RGBA) string {
	if px.R == 0 && px.G == 0 && px.B == 0 {
		return StyleRingDot.Render("·")
	}
	hex := fmt.Sprintf("#%02X%02X%02X", px.R, px.G, px.B)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render("●")
}

// RenderRingPanel wraps the ring in the standard panel border.
func RenderRingPanel(width, height int, content string) string {
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
