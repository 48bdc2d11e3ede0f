package tui

import (
	"context"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusmap/internal/catalog"
	"campusmap/internal/models"
	"campusmap/internal/prefs"
	"campusmap/internal/viewer"
	"campusmap/pkg/campusapi"
)

// catalogAPI answers controller requests from the seeded catalogue.
type catalogAPI struct {
	repo    *catalog.MemoryRepository
	filters *catalog.FilterState
}

func newCatalogAPI() *catalogAPI {
	return &catalogAPI{repo: catalog.NewMemoryRepository(catalog.Seed()), filters: catalog.NewFilterState()}
}

func (a *catalogAPI) Filter(ctx context.Context, category string, show bool) (*campusapi.FilterResponse, error) {
	a.filters.Set(category, show)
	all, _ := a.repo.List(ctx)
	return &campusapi.FilterResponse{Status: "success", Category: category, Show: show, Markers: a.filters.Layer(all)}, nil
}

func (a *catalogAPI) Search(ctx context.Context, term string) (*campusapi.SearchResponse, error) {
	hits, _ := a.repo.Search(ctx, term)
	resp := &campusapi.SearchResponse{Results: []models.SearchResult{}}
	for _, c := range hits {
		resp.Results = append(resp.Results, models.SearchResult{ID: c.ID, Name: c.Name, Lat: c.Lat, Lon: c.Lon})
	}
	return resp, nil
}

func (a *catalogAPI) Campus(ctx context.Context, id models.ID) (*models.Campus, error) {
	return a.repo.Get(ctx, id)
}

type harness struct {
	t      *testing.T
	model  Model
	mu     sync.Mutex
	queued []tea.Msg
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{t: t}
	bridge := NewBridge()
	bridge.AttachFunc(func(msg tea.Msg) {
		h.mu.Lock()
		defer h.mu.Unlock()
		h.queued = append(h.queued, msg)
	})
	ctrl := viewer.New(newCatalogAPI(), prefs.NewMemoryStore(),
		viewer.WithMap(bridge), viewer.WithNotifier(bridge), viewer.WithSurface(bridge))
	h.model = New(context.Background(), ctrl, Options{Center: catalog.MapCenter, Zoom: catalog.MapZoom})
	h.model.markers = catalog.NewFilterState().Layer(catalog.Seed())
	return h
}

func (h *harness) update(msg tea.Msg) tea.Cmd {
	next, cmd := h.model.Update(msg)
	h.model = next.(Model)
	return cmd
}

// press sends a key and runs the resulting command once, feeding its result
// and every message the controller emitted back into the model.
func (h *harness) press(keys ...tea.KeyMsg) {
	h.t.Helper()
	for _, k := range keys {
		cmd := h.update(k)
		if cmd == nil || h.model.focus == focusSearch && k.String() != "enter" {
			continue
		}
		if msg := cmd(); msg != nil {
			h.queued = append(h.queued, msg)
		}
		h.flush()
	}
}

func (h *harness) flush() {
	h.mu.Lock()
	msgs := h.queued
	h.queued = nil
	h.mu.Unlock()
	for _, msg := range msgs {
		h.update(msg)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(s string) []tea.KeyMsg {
	keys := make([]tea.KeyMsg, 0, len(s))
	for _, r := range s {
		keys = append(keys, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return keys
}

func TestInitialView(t *testing.T) {
	h := newHarness(t)
	view := h.model.View()

	assert.Contains(t, view, "Filter by category:")
	assert.Contains(t, view, "[x]")
	assert.Contains(t, view, "Dark theme [off]")
	assert.Contains(t, view, "<")
	assert.Contains(t, view, "Map center 52.2851, 104.2813  zoom 14")
	assert.Contains(t, view, "ISU Main Building")
}

func TestThemeToggle(t *testing.T) {
	h := newHarness(t)

	h.press(key("t"))
	assert.True(t, h.model.state.ThemeToggleChecked())
	assert.Contains(t, h.model.View(), "Dark theme [on]")

	h.press(key("t"))
	assert.False(t, h.model.state.ThemeToggleChecked())
}

func TestSidebarToggle(t *testing.T) {
	h := newHarness(t)

	h.press(key("s"))
	view := h.model.View()
	assert.NotContains(t, view, "Filter by category:")
	assert.Contains(t, view, ">")

	h.press(key("s"))
	assert.Contains(t, h.model.View(), "Filter by category:")
}

func TestFilterToggleReplacesMarkers(t *testing.T) {
	h := newHarness(t)

	// Cursor starts on administration; move to education and hide it.
	h.press(key("down"), key(" "))

	assert.False(t, h.model.state.FilterEnabled("education"))
	assert.Len(t, h.model.markers, 9)
	assert.NotContains(t, h.model.View(), "Faculty of Physics")
}

func TestSearchOpensPanel(t *testing.T) {
	h := newHarness(t)

	h.press(key("/"))
	require.Equal(t, focusSearch, h.model.focus)
	h.press(typeText("canteen")...)
	h.press(key("enter"))

	require.True(t, h.model.state.Panel.Visible)
	assert.Equal(t, 17, h.model.zoom)
	view := h.model.View()
	assert.Contains(t, view, "ISU Canteen")
	assert.Contains(t, view, "Meal times:")
	assert.Less(t, strings.Index(view, "Breakfast"), strings.Index(view, "Dinner"))

	h.press(key("esc"), key("x"))
	assert.False(t, h.model.state.Panel.Visible)
	assert.NotContains(t, h.model.View(), "Meal times:")
}

func TestSearchNothingFound(t *testing.T) {
	h := newHarness(t)

	h.press(key("/"))
	h.press(typeText("observatory")...)
	h.press(key("enter"))

	assert.Contains(t, h.model.View(), viewer.NothingFound)
	assert.False(t, h.model.state.Panel.Visible)
}

func TestMarkerEnterShowsDetails(t *testing.T) {
	h := newHarness(t)

	h.press(key("tab"), key("down"), key("enter"))

	require.True(t, h.model.state.Panel.Visible)
	assert.Equal(t, "Faculty of History", h.model.state.Panel.Title)
}
