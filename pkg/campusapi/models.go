package campusapi

import "campusmap/internal/models"

// FilterResponse is returned by GET /filter. Markers is the visible layer
// after the change was applied.
type FilterResponse struct {
	Status   string          `json:"status"`
	Category string          `json:"category"`
	Show     bool            `json:"show"`
	Markers  []models.Marker `json:"markers"`
}

// SearchResponse is returned by GET /search.
type SearchResponse struct {
	Results []models.SearchResult `json:"results"`
}

// LayerResponse is returned by GET /markers and pushed over /ws/layer.
type LayerResponse struct {
	Markers []models.Marker `json:"markers"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
