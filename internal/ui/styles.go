package ui

import "github.com/charmbracelet/lipgloss"

// Night-sky palette for the badge simulator.
var (
	ColorStarlight = lipgloss.Color("#F5E6C8")
	ColorAmber     = lipgloss.Color("#FFB347")
	ColorDimAmber  = lipgloss.Color("#8A5A1E")
	ColorSlate     = lipgloss.Color("#6C7A89")
	ColorDimSlate  = lipgloss.Color("#39424E")
	ColorWarning   = lipgloss.Color("#FFAA00")
	ColorError     = lipgloss.Color("#FF3300")
)

var (
	StyleMenuBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1A1423")).
			Foreground(ColorStarlight).
			Bold(true).
			Padding(0, 1)

	StyleMenuKey = lipgloss.NewStyle().
			Foreground(ColorAmber).
			Bold(true)

	StyleMenuLabel = lipgloss.NewStyle().
			Foreground(ColorSlate)

	StyleStatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1A1423")).
			Foreground(ColorSlate).
			Padding(0, 1)

	StyleStatusTorch = lipgloss.NewStyle().
				Foreground(ColorWarning).
				Bold(true)

	StyleStatusStopped = lipgloss.NewStyle().
				Foreground(ColorDimSlate).
				Bold(true)

	StylePanelBorder = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(ColorDimSlate)

	StylePanelTitle = lipgloss.NewStyle().
			Foreground(ColorStarlight).
			Bold(true).
			Padding(0, 1)

	StyleSoulName = lipgloss.NewStyle().
			Foreground(ColorStarlight).
			Bold(true)

	StyleSoulKey = lipgloss.NewStyle().
			Foreground(ColorDimSlate)

	StyleSoulSignal = lipgloss.NewStyle().
			Foreground(ColorSlate)

	StyleRingDot = lipgloss.NewStyle().
			Foreground(ColorDimSlate)

	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorDimSlate)
)
