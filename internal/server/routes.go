package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"campusmap/internal/catalog"
	"campusmap/internal/models"
	"campusmap/internal/render"
	"campusmap/pkg/campusapi"
)

// PageTitle is the heading of the viewer page.
const PageTitle = "ISU campus map"

// RegisterRoutes mounts the viewer API and pages on r.
func RegisterRoutes(r chi.Router, s *Server) {
	r.Get("/", s.handleIndex)
	r.Get("/export", s.handleExport)
	r.Get("/filter", s.handleFilter)
	r.Get("/search", s.handleSearch)
	r.Get("/markers", s.handleMarkers)
	r.Get("/campus/{id}", s.handleCampus)
}

type searchResponse struct {
	Results []models.Campus `json:"results"`
}

func (s *Server) handleFilter(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	if category == "" {
		writeError(w, http.StatusBadRequest, "category is required")
		return
	}
	show := true
	if v := q.Get("show"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "show must be true or false")
			return
		}
		show = b
	}

	s.filters.Set(category, show)
	layer, err := s.layer(r.Context())
	if err != nil {
		s.internalError(w, "filter", err)
		return
	}
	s.hub.Broadcast(layer)

	writeJSON(w, http.StatusOK, campusapi.FilterResponse{
		Status:   "success",
		Category: category,
		Show:     show,
		Markers:  layer,
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("term") {
		writeError(w, http.StatusBadRequest, "term is required")
		return
	}
	results, err := s.repo.Search(r.Context(), q.Get("term"))
	if err != nil {
		s.internalError(w, "search", err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

func (s *Server) handleCampus(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))
	c, err := s.repo.Get(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Campus not found")
		return
	}
	if err != nil {
		s.internalError(w, "campus", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleMarkers(w http.ResponseWriter, r *http.Request) {
	layer, err := s.layer(r.Context())
	if err != nil {
		s.internalError(w, "markers", err)
		return
	}
	writeJSON(w, http.StatusOK, campusapi.LayerResponse{Markers: layer})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, false)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	s.writePage(w, r, true)
}

func (s *Server) writePage(w http.ResponseWriter, r *http.Request, standalone bool) {
	page, err := BuildPage(r.Context(), s.repo, s.filters, standalone)
	if err != nil {
		s.internalError(w, "page", err)
		return
	}
	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		s.internalError(w, "page", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) layer(ctx context.Context) ([]models.Marker, error) {
	campuses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return s.filters.Layer(campuses), nil
}

// BuildPage assembles the viewer page for the current filter state. A
// standalone page embeds the full campus records.
func BuildPage(ctx context.Context, repo catalog.Repository, filters *catalog.FilterState, standalone bool) (render.Page, error) {
	campuses, err := repo.List(ctx)
	if err != nil {
		return render.Page{}, err
	}
	shown := filters.Snapshot()
	legend := make([]render.LegendEntry, 0, len(catalog.Categories))
	for _, c := range catalog.Categories {
		legend = append(legend, render.LegendEntry{Name: c.Name, Color: c.Color, Checked: shown[c.Name]})
	}
	page := render.Page{
		Title:   PageTitle,
		Legend:  legend,
		Markers: filters.Layer(campuses),
		Center:  catalog.MapCenter,
		Zoom:    catalog.MapZoom,
	}
	if standalone {
		page.Campuses = campuses
	}
	return page, nil
}

func (s *Server) internalError(w http.ResponseWriter, op string, err error) {
	s.logger.Error("handler failed", zap.String("op", op), zap.Error(err))
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, campusapi.ErrorResponse{Error: msg})
}
