package viewstate

import "campusmap/internal/render"

func WithTheme(s State, dark bool) State {
	out := s.Clone()
	if dark {
		out.Theme = ThemeDark
	} else {
		out.Theme = ThemeLight
	}
	return out
}

func ToggleSidebar(s State) State {
	out := s.Clone()
	out.SidebarVisible = !s.SidebarVisible
	return out
}

func WithFilter(s State, category string, show bool) State {
	out := s.Clone()
	out.Filters[category] = show
	return out
}

// ShowPanel replaces the whole panel content and makes it visible.
func ShowPanel(s State, view render.Panel, content string) State {
	out := s.Clone()
	out.Panel = Panel{
		Visible: true,
		Title:   view.Title,
		Content: content,
		View:    view,
	}
	return out
}

// ClosePanel hides the panel and leaves its content in place.
func ClosePanel(s State) State {
	out := s.Clone()
	out.Panel.Visible = false
	return out
}
