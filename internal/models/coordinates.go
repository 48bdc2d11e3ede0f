package models

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Marker is one pin of the map marker layer.
type Marker struct {
	ID          ID          `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Color       string      `json:"color"`
	Coordinates Coordinates `json:"coordinates"`
}
