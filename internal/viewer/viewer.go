// Package viewer is the campus map view controller. It owns the UI state,
// talks to the campus server and drives a map and a surface supplied by the
// front end.
//
// All methods are safe for concurrent use. State only changes under the
// controller lock and every change is followed by Surface.Render with the
// new snapshot. Surface, MapView and Notifier are called with the lock held
// and must not call back into the Controller.
package viewer

import (
	"context"

	"go.uber.org/zap"

	"campusmap/internal/events"
	"campusmap/internal/models"
	"campusmap/internal/viewstate"
	"campusmap/pkg/campusapi"
)

// SearchZoom is the zoom level the map is set to on a search hit.
const SearchZoom = 17

// NothingFound is the notification shown for an empty search result.
const NothingFound = "Nothing found"

// API is the campus server as seen by the controller. *campusapi.Client
// implements it.
type API interface {
	Filter(ctx context.Context, category string, show bool) (*campusapi.FilterResponse, error)
	Search(ctx context.Context, term string) (*campusapi.SearchResponse, error)
	Campus(ctx context.Context, id models.ID) (*models.Campus, error)
}

type MapView interface {
	SetView(center models.Coordinates, zoom int)
	SetMarkers(markers []models.Marker)
}

type Notifier interface {
	Notify(msg string)
}

// Surface projects a state snapshot onto the UI.
type Surface interface {
	Render(s viewstate.State)
}

// EventSink receives one event per user interaction.
type EventSink interface {
	Publish(ctx context.Context, e events.Event) error
}

type Option func(*Controller)

// WithMap attaches the map. Without one, search hits cannot be centered and
// are dropped with a warning.
func WithMap(m MapView) Option {
	return func(c *Controller) { c.mapView = m }
}

func WithNotifier(n Notifier) Option {
	return func(c *Controller) { c.notifier = n }
}

func WithSurface(s Surface) Option {
	return func(c *Controller) { c.surface = s }
}

func WithEvents(sink EventSink) Option {
	return func(c *Controller) { c.sink = sink }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

type nopSurface struct{}

func (nopSurface) Render(viewstate.State) {}

type nopNotifier struct{}

func (nopNotifier) Notify(string) {}
