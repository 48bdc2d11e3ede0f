package viewer

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"

	"campusmap/internal/events"
	"campusmap/internal/models"
	"campusmap/internal/prefs"
	"campusmap/internal/render"
	"campusmap/internal/tasks"
	"campusmap/internal/viewstate"
)

const (
	purposeSearch  = "search"
	purposeDetails = "details"
	purposeFilter  = "filter:"
)

type Controller struct {
	api      API
	prefs    prefs.Store
	mapView  MapView
	notifier Notifier
	surface  Surface
	sink     EventSink
	logger   *zap.Logger
	tasks    *tasks.Registry

	mu    sync.Mutex
	state viewstate.State
}

func New(api API, store prefs.Store, opts ...Option) *Controller {
	c := &Controller{
		api:      api,
		prefs:    store,
		notifier: nopNotifier{},
		surface:  nopSurface{},
		logger:   zap.NewNop(),
		tasks:    tasks.NewRegistry(),
		state:    viewstate.Initial(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state.
func (c *Controller) State() viewstate.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// commit must be called with c.mu held.
func (c *Controller) commit(next viewstate.State) {
	c.state = next
	c.surface.Render(next.Clone())
}

// Init applies the stored theme preference. A missing or unreadable
// preference keeps the light theme.
func (c *Controller) Init(ctx context.Context) error {
	stored, err := c.prefs.Get(ctx, viewstate.PreferenceKey)
	if err != nil && !errors.Is(err, prefs.ErrNotFound) {
		c.logger.Warn("reading theme preference", zap.Error(err))
	}
	theme := viewstate.ThemeFromPreference(stored)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.commit(viewstate.WithTheme(c.state, theme == viewstate.ThemeDark))
	c.logger.Debug("viewer initialized", zap.String("theme", string(theme)))
	return nil
}

// ToggleTheme applies the dark theme when checked and persists the choice.
// The theme is applied even when the store write fails.
func (c *Controller) ToggleTheme(ctx context.Context, checked bool) error {
	c.mu.Lock()
	next := viewstate.WithTheme(c.state, checked)
	c.commit(next)
	err := c.prefs.Set(ctx, viewstate.PreferenceKey, string(next.Theme))
	c.mu.Unlock()

	if err != nil {
		c.logger.Error("saving theme preference", zap.String("theme", string(next.Theme)), zap.Error(err))
		return fmt.Errorf("save theme: %w", err)
	}
	c.publish(ctx, events.KindThemeToggled, map[string]string{"theme": string(next.Theme)})
	return nil
}

func (c *Controller) ToggleSidebar() {
	c.mu.Lock()
	next := viewstate.ToggleSidebar(c.state)
	c.commit(next)
	c.mu.Unlock()

	c.publish(context.Background(), events.KindSidebarToggled,
		map[string]string{"visible": strconv.FormatBool(next.SidebarVisible)})
}

// SetFilter pushes a category change to the server and replaces the map's
// marker layer with the one the server returns. On failure nothing changes.
func (c *Controller) SetFilter(ctx context.Context, category string, show bool) error {
	tctx, tok := c.tasks.Start(ctx, purposeFilter+category)
	resp, err := c.api.Filter(tctx, category, show)
	if err != nil {
		if !c.tasks.Finish(tok) {
			return fmt.Errorf("filter %q: %w", category, tasks.ErrSuperseded)
		}
		c.logger.Error("filter request failed", zap.String("category", category), zap.Bool("show", show), zap.Error(err))
		return fmt.Errorf("filter %q: %w", category, err)
	}

	c.mu.Lock()
	if !c.tasks.Finish(tok) {
		c.mu.Unlock()
		return fmt.Errorf("filter %q: %w", category, tasks.ErrSuperseded)
	}
	if c.mapView != nil {
		c.mapView.SetMarkers(resp.Markers)
	}
	c.commit(viewstate.WithFilter(c.state, category, resp.Show))
	c.mu.Unlock()

	c.publish(ctx, events.KindFilterChanged, map[string]string{
		"category": category,
		"show":     strconv.FormatBool(resp.Show),
	})
	return nil
}

// Search looks term up, centers the map on the first hit and opens its
// details. An empty result notifies the user. A blank term does nothing.
func (c *Controller) Search(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}

	tctx, tok := c.tasks.Start(ctx, purposeSearch)
	resp, err := c.api.Search(tctx, term)
	if err != nil {
		if !c.tasks.Finish(tok) {
			return fmt.Errorf("search %q: %w", term, tasks.ErrSuperseded)
		}
		c.logger.Error("search request failed", zap.String("term", term), zap.Error(err))
		return fmt.Errorf("search %q: %w", term, err)
	}

	c.mu.Lock()
	if !c.tasks.Finish(tok) {
		c.mu.Unlock()
		return fmt.Errorf("search %q: %w", term, tasks.ErrSuperseded)
	}
	if len(resp.Results) == 0 {
		c.notifier.Notify(NothingFound)
		c.mu.Unlock()
		c.publish(ctx, events.KindSearched, map[string]string{"term": term, "results": "0"})
		return nil
	}
	if c.mapView == nil {
		c.mu.Unlock()
		c.logger.Warn("search hit dropped: no map attached", zap.String("term", term))
		return nil
	}
	first := resp.Results[0]
	c.mapView.SetView(first.Coordinates(), SearchZoom)
	c.mu.Unlock()

	c.publish(ctx, events.KindSearched, map[string]string{
		"term":    term,
		"results": strconv.Itoa(len(resp.Results)),
		"id":      first.ID.String(),
	})
	return c.Show(ctx, first.ID)
}

// SearchKey handles a key press in the search box. Only Enter searches.
func (c *Controller) SearchKey(ctx context.Context, key, input string) error {
	if key != "Enter" {
		return nil
	}
	return c.Search(ctx, input)
}

// Show fetches a building and opens the details panel with it. Every call
// fetches; a newer Show or a Close discards this one's result.
func (c *Controller) Show(ctx context.Context, id models.ID) error {
	tctx, tok := c.tasks.Start(ctx, purposeDetails)
	campus, err := c.api.Campus(tctx, id)
	if err != nil {
		if !c.tasks.Finish(tok) {
			return fmt.Errorf("show %s: %w", id, tasks.ErrSuperseded)
		}
		c.logger.Error("details request failed", zap.String("id", id.String()), zap.Error(err))
		return fmt.Errorf("show %s: %w", id, err)
	}

	view := render.Build(campus)
	content, err := view.HTML()
	if err != nil {
		c.tasks.Finish(tok)
		c.logger.Error("rendering details", zap.String("id", id.String()), zap.Error(err))
		return fmt.Errorf("show %s: %w", id, err)
	}

	c.mu.Lock()
	if !c.tasks.Finish(tok) {
		c.mu.Unlock()
		return fmt.Errorf("show %s: %w", id, tasks.ErrSuperseded)
	}
	c.commit(viewstate.ShowPanel(c.state, view, content))
	c.mu.Unlock()

	c.publish(ctx, events.KindDetailsShown, map[string]string{"id": id.String(), "name": campus.Name})
	return nil
}

// Close hides the details panel and abandons any Show still in flight.
func (c *Controller) Close() {
	c.mu.Lock()
	c.tasks.Cancel(purposeDetails)
	c.commit(viewstate.ClosePanel(c.state))
	c.mu.Unlock()

	c.publish(context.Background(), events.KindPanelClosed, nil)
}

// Shutdown cancels every in-flight request.
func (c *Controller) Shutdown() {
	c.tasks.CancelAll()
}

func (c *Controller) publish(ctx context.Context, kind events.Kind, attrs map[string]string) {
	if c.sink == nil {
		return
	}
	if err := c.sink.Publish(context.WithoutCancel(ctx), events.New(kind, attrs)); err != nil {
		c.logger.Debug("publishing interaction event", zap.String("kind", string(kind)), zap.Error(err))
	}
}
