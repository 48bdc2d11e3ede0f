package tui

import (
	"github.com/charmbracelet/lipgloss"

	"campusmap/internal/viewstate"
)

// markerColors maps marker color names to terminal colors.
var markerColors = map[string]lipgloss.Color{
	"darkblue":  "#00008B",
	"green":     "#008000",
	"orange":    "#FFA500",
	"purple":    "#800080",
	"red":       "#FF0000",
	"pink":      "#FFC0CB",
	"cadetblue": "#5F9EA0",
	"darkred":   "#8B0000",
	"blue":      "#0000FF",
}

func markerColor(name string) lipgloss.Color {
	if c, ok := markerColors[name]; ok {
		return c
	}
	return markerColors["blue"]
}

type Styles struct {
	Title    lipgloss.Style
	Sidebar  lipgloss.Style
	Main     lipgloss.Style
	Panel    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
}

func StylesFor(theme viewstate.Theme) Styles {
	fg, bg, border, muted := lipgloss.Color("#1e1e1e"), lipgloss.Color("#ffffff"), lipgloss.Color("#cccccc"), lipgloss.Color("#777777")
	if theme == viewstate.ThemeDark {
		fg, bg, border, muted = lipgloss.Color("#e0e0e0"), lipgloss.Color("#1e1e1e"), lipgloss.Color("#444444"), lipgloss.Color("#999999")
	}
	box := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1)
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(fg),
		Sidebar:  box.Width(34),
		Main:     box,
		Panel:    box.Width(44),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Notice:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#d08700")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#d00000")),
	}
}
