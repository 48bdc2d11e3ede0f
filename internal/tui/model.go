// Package tui is the terminal front end of the campus map viewer.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"campusmap/internal/catalog"
	"campusmap/internal/models"
	"campusmap/internal/render"
	"campusmap/internal/tasks"
	"campusmap/internal/viewstate"
)

// Controller is the part of viewer.Controller the terminal UI drives.
type Controller interface {
	Init(ctx context.Context) error
	State() viewstate.State
	ToggleTheme(ctx context.Context, checked bool) error
	ToggleSidebar()
	SetFilter(ctx context.Context, category string, show bool) error
	SearchKey(ctx context.Context, key, input string) error
	Show(ctx context.Context, id models.ID) error
	Close()
}

type Options struct {
	Center models.Coordinates
	Zoom   int
	// LoadMarkers fetches the layer shown at start-up.
	LoadMarkers func(ctx context.Context) ([]models.Marker, error)
	// Layers, when set, streams layer changes made by other clients.
	Layers <-chan []models.Marker
}

type focus int

const (
	focusFilters focus = iota
	focusMarkers
	focusSearch
)

type errMsg struct{ err error }

type layerMsg []models.Marker

type layerClosedMsg struct{}

type Model struct {
	ctrl Controller
	ctx  context.Context
	opts Options

	input   textinput.Model
	state   viewstate.State
	center  models.Coordinates
	zoom    int
	markers []models.Marker

	focus        focus
	filterCursor int
	markerCursor int
	notice       string
	err          error
	width        int
}

func New(ctx context.Context, ctrl Controller, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "Search buildings..."
	input.CharLimit = 120
	input.Width = 28

	return Model{
		ctrl:   ctrl,
		ctx:    ctx,
		opts:   opts,
		input:  input,
		state:  ctrl.State(),
		center: opts.Center,
		zoom:   opts.Zoom,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.run(m.ctrl.Init), m.loadMarkers(), m.waitLayer())
}

// run executes fn off the update loop. Superseded requests are not errors.
func (m Model) run(fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		if err := fn(ctx); err != nil && !errors.Is(err, tasks.ErrSuperseded) {
			return errMsg{err}
		}
		return nil
	}
}

func (m Model) loadMarkers() tea.Cmd {
	if m.opts.LoadMarkers == nil {
		return nil
	}
	ctx, load := m.ctx, m.opts.LoadMarkers
	return func() tea.Msg {
		markers, err := load(ctx)
		if err != nil {
			return errMsg{fmt.Errorf("load markers: %w", err)}
		}
		return markersMsg(markers)
	}
}

func (m Model) waitLayer() tea.Cmd {
	if m.opts.Layers == nil {
		return nil
	}
	layers := m.opts.Layers
	return func() tea.Msg {
		l, ok := <-layers
		if !ok {
			return layerClosedMsg{}
		}
		return layerMsg(l)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case stateMsg:
		m.state = viewstate.State(msg)
		return m, nil
	case viewMsg:
		m.center, m.zoom = msg.center, msg.zoom
		return m, nil
	case markersMsg:
		m.setMarkers(msg)
		return m, nil
	case layerMsg:
		m.setMarkers(msg)
		return m, m.waitLayer()
	case layerClosedMsg:
		m.opts.Layers = nil
		return m, nil
	case noticeMsg:
		m.notice = string(msg)
		return m, nil
	case errMsg:
		m.err = msg.err
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) setMarkers(markers []models.Marker) {
	m.markers = markers
	if m.markerCursor >= len(markers) {
		m.markerCursor = max(0, len(markers)-1)
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	m.notice = ""
	m.err = nil

	if m.focus == focusSearch {
		switch msg.String() {
		case "enter":
			term := m.input.Value()
			return m, m.run(func(ctx context.Context) error {
				return m.ctrl.SearchKey(ctx, "Enter", term)
			})
		case "esc":
			m.input.Blur()
			m.focus = focusFilters
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "/":
		m.focus = focusSearch
		return m, m.input.Focus()
	case "tab":
		if m.focus == focusFilters {
			m.focus = focusMarkers
		} else {
			m.focus = focusFilters
		}
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case " ":
		if m.focus == focusFilters {
			category := catalog.Categories[m.filterCursor].Name
			show := !m.state.FilterEnabled(category)
			return m, m.run(func(ctx context.Context) error {
				return m.ctrl.SetFilter(ctx, category, show)
			})
		}
	case "enter":
		if m.focus == focusMarkers && len(m.markers) > 0 {
			id := m.markers[m.markerCursor].ID
			return m, m.run(func(ctx context.Context) error {
				return m.ctrl.Show(ctx, id)
			})
		}
	case "t":
		checked := !m.state.ThemeToggleChecked()
		return m, m.run(func(ctx context.Context) error {
			return m.ctrl.ToggleTheme(ctx, checked)
		})
	case "s":
		return m, func() tea.Msg {
			m.ctrl.ToggleSidebar()
			return nil
		}
	case "x", "esc":
		return m, func() tea.Msg {
			m.ctrl.Close()
			return nil
		}
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case focusFilters:
		m.filterCursor = clamp(m.filterCursor+delta, len(catalog.Categories))
	case focusMarkers:
		m.markerCursor = clamp(m.markerCursor+delta, len(m.markers))
	}
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func (m Model) View() string {
	st := StylesFor(m.state.Theme)

	var columns []string
	if m.state.SidebarVisible {
		columns = append(columns, m.sidebarView(st))
	}
	columns = append(columns, m.toggleView(st), m.mapView(st))
	if m.state.Panel.Visible {
		columns = append(columns, m.panelView(st))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(st.Notice.Render(m.notice))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(st.Error.Render("error: " + m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString(st.Muted.Render("/ search  tab switch list  space filter  enter open  t theme  s sidebar  x close  q quit"))
	return b.String()
}

func (m Model) toggleView(st Styles) string {
	return st.Title.Render(m.state.SidebarLabel())
}

func (m Model) sidebarView(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render("Campus map"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(st.Title.Render("Filter by category:"))
	b.WriteString("\n")
	for i, c := range catalog.Categories {
		box := "[ ]"
		if m.state.FilterEnabled(c.Name) {
			box = "[x]"
		}
		swatch := lipgloss.NewStyle().Foreground(markerColor(c.Color)).Render("●")
		line := fmt.Sprintf("%s %s %s", box, swatch, render.Capitalize(c.Name))
		if m.focus == focusFilters && i == m.filterCursor {
			line = st.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	toggle := "off"
	if m.state.ThemeToggleChecked() {
		toggle = "on"
	}
	b.WriteString("\nDark theme [" + toggle + "]")
	return st.Sidebar.Render(b.String())
}

func (m Model) mapView(st Styles) string {
	var b strings.Builder
	b.WriteString(st.Title.Render(fmt.Sprintf("Map center %.4f, %.4f  zoom %d", m.center.Lat, m.center.Lon, m.zoom)))
	b.WriteString("\n")
	if len(m.markers) == 0 {
		b.WriteString(st.Muted.Render("no markers"))
	}
	for i, mk := range m.markers {
		pin := lipgloss.NewStyle().Foreground(markerColor(mk.Color)).Render("◆")
		line := fmt.Sprintf("%s %s", pin, mk.Name)
		if m.focus == focusMarkers && i == m.markerCursor {
			line = st.Selected.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return st.Main.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) panelView(st Styles) string {
	p := m.state.Panel
	var b strings.Builder
	b.WriteString(st.Title.Render(p.Title))
	b.WriteString("  ")
	b.WriteString(st.Muted.Render("×"))
	b.WriteString("\n")
	for _, line := range p.View.Text() {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return st.Panel.Render(strings.TrimRight(b.String(), "\n"))
}
