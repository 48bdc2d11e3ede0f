// Package viewstate holds the viewer's in-memory UI state and the pure
// functions that move it from one state to the next. Nothing here performs
// I/O; front ends render a State, controllers produce new ones.
package viewstate

import (
	"maps"

	"campusmap/internal/render"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// PreferenceKey is the key the theme is persisted under.
const PreferenceKey = "theme"

// ThemeFromPreference maps a stored value to a Theme. Only the exact value
// "dark" selects the dark theme.
func ThemeFromPreference(stored string) Theme {
	if stored == string(ThemeDark) {
		return ThemeDark
	}
	return ThemeLight
}

// Panel is the details panel. Content is the rendered markup; it survives
// Close so that a re-open without a fetch shows the last building.
type Panel struct {
	Visible bool
	Title   string
	Content string
	View    render.Panel
}

type State struct {
	Theme          Theme
	SidebarVisible bool
	Filters        map[string]bool
	Panel          Panel
}

// Initial is the state of a freshly loaded page.
func Initial() State {
	return State{
		Theme:          ThemeLight,
		SidebarVisible: true,
		Filters:        map[string]bool{},
	}
}

// Clone returns a copy that shares no mutable data with s.
func (s State) Clone() State {
	out := s
	out.Filters = maps.Clone(s.Filters)
	if out.Filters == nil {
		out.Filters = map[string]bool{}
	}
	return out
}

// ThemeToggleChecked reports the position of the dark-theme switch.
func (s State) ThemeToggleChecked() bool {
	return s.Theme == ThemeDark
}

// SidebarLabel is the caption of the sidebar toggle button.
func (s State) SidebarLabel() string {
	return SidebarLabel(s.SidebarVisible)
}

func SidebarLabel(visible bool) string {
	if visible {
		return "<"
	}
	return ">"
}

// FilterEnabled reports whether a category is shown. Categories the server
// has not told us about are shown.
func (s State) FilterEnabled(category string) bool {
	enabled, ok := s.Filters[category]
	return !ok || enabled
}
