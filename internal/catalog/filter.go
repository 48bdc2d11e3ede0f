package catalog

import (
	"maps"
	"sync"

	"campusmap/internal/models"
)

// FilterState is the server's record of which categories are shown. It is
// authoritative: clients mirror it and never persist their own copy.
type FilterState struct {
	mu     sync.RWMutex
	hidden map[string]bool
}

func NewFilterState() *FilterState {
	return &FilterState{hidden: make(map[string]bool)}
}

func (f *FilterState) Set(category string, show bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if show {
		delete(f.hidden, category)
	} else {
		f.hidden[category] = true
	}
}

func (f *FilterState) Visible(category string) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return !f.hidden[category]
}

// Snapshot maps every known category to its visibility.
func (f *FilterState) Snapshot() map[string]bool {
	f.mu.RLock()
	hidden := maps.Clone(f.hidden)
	f.mu.RUnlock()

	out := make(map[string]bool, len(Categories))
	for _, c := range Categories {
		out[c.Name] = !hidden[c.Name]
	}
	for name := range hidden {
		out[name] = false
	}
	return out
}

// Layer returns the markers of the visible campuses, in catalogue order.
func (f *FilterState) Layer(campuses []models.Campus) []models.Marker {
	f.mu.RLock()
	defer f.mu.RUnlock()
	markers := []models.Marker{}
	for _, c := range campuses {
		if f.hidden[c.Category] {
			continue
		}
		markers = append(markers, MarkerOf(c))
	}
	return markers
}

func MarkerOf(c models.Campus) models.Marker {
	return models.Marker{
		ID:          c.ID,
		Name:        c.Name,
		Category:    c.Category,
		Color:       ColorOf(c.Category),
		Coordinates: c.Coordinates(),
	}
}
