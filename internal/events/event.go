// Package events publishes viewer interactions to Kafka and reads them back.
package events

import (
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	KindThemeToggled   Kind = "theme_toggled"
	KindSidebarToggled Kind = "sidebar_toggled"
	KindFilterChanged  Kind = "filter_changed"
	KindSearched       Kind = "searched"
	KindDetailsShown   Kind = "details_shown"
	KindPanelClosed    Kind = "panel_closed"
)

// Event is one user interaction, serialized as the Kafka message value.
type Event struct {
	ID    string            `json:"id"`
	Kind  Kind              `json:"kind"`
	Attrs map[string]string `json:"attrs,omitempty"`
	At    time.Time         `json:"at"`
}

func New(kind Kind, attrs map[string]string) Event {
	return Event{
		ID:    uuid.NewString(),
		Kind:  kind,
		Attrs: attrs,
		At:    time.Now().UTC(),
	}
}
