package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"campusmap/internal/models"
)

// LegendEntry is one category row of the filter list and the legend.
type LegendEntry struct {
	Name    string
	Color   string
	Checked bool
}

func (e LegendEntry) Label() string { return Capitalize(e.Name) }

// Page is the server-rendered viewer page. Element ids and classes follow
// the contract front-end scripts bind to.
type Page struct {
	Title   string
	Legend  []LegendEntry
	Markers []models.Marker
	Center  models.Coordinates
	Zoom    int
	// Campuses, when set, are embedded as JSON so the page works offline.
	Campuses []models.Campus
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>{{.Title}}</title>
</head>
<body>
<div id="map-container">
  <div class="sidebar">
    <h3>{{.Title}}</h3>
    <div class="search-container">
      <input type="text" id="search-input" placeholder="Search buildings...">
      <button id="search-button" class="btn">Find</button>
    </div>
    <div class="filter-container">
      <div class="filter-title">Filter by category:</div>
      {{range .Legend}}<div>
        <input type="checkbox" id="filter-{{.Name}}" class="category-filter" value="{{.Name}}"{{if .Checked}} checked{{end}}>
        <label for="filter-{{.Name}}"><span class="legend-color" style="background-color: {{.Color}};"></span>{{.Label}}</label>
      </div>
      {{end}}
    </div>
    <div class="theme-toggle">
      <label for="theme-toggle" class="toggle-label">Dark theme</label>
      <label class="toggle-switch"><input type="checkbox" id="theme-toggle"><span class="slider"></span></label>
    </div>
    <div class="legend">
      <div class="filter-title">Legend:</div>
      {{range .Legend}}<div class="legend-item"><div class="legend-color" style="background-color: {{.Color}};"></div><div>{{.Label}}</div></div>
      {{end}}
    </div>
  </div>
  <div id="toggle-sidebar" class="toggle-sidebar">&lt;</div>
  <div class="info-panel" id="info-panel" style="display: none">
    <span class="info-close">×</span>
    <h4 id="info-title"></h4>
    <div id="info-content"></div>
  </div>
  <div id="map" data-lat="{{.Center.Lat}}" data-lon="{{.Center.Lon}}" data-zoom="{{.Zoom}}">
    <ul class="markers">
      {{range .Markers}}<li class="marker" data-id="{{.ID}}" data-category="{{.Category}}" data-color="{{.Color}}" data-lat="{{.Coordinates.Lat}}" data-lon="{{.Coordinates.Lon}}">{{.Name}}</li>
      {{end}}
    </ul>
  </div>
</div>
{{with .Data}}<script type="application/json" id="campus-data">{{.}}</script>
{{end}}</body>
</html>
`))

type pageData struct {
	Page
	Data template.JS
}

// Render writes the full HTML document.
func (p Page) Render(w io.Writer) error {
	data := pageData{Page: p}
	if p.Campuses != nil {
		// json.Marshal escapes <, > and & so the payload cannot close the script element.
		raw, err := json.Marshal(p.Campuses)
		if err != nil {
			return fmt.Errorf("encode campus data: %w", err)
		}
		data.Data = template.JS(raw)
	}
	if err := pageTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
