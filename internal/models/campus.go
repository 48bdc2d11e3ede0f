package models

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Campus is the full record of a single university building, as served by
// GET /campus/{id}. Pointer and nil-able fields are optional and only shown
// when present.
type Campus struct {
	ID               ID                                     `json:"id"`
	Name             string                                 `json:"name"`
	Address          string                                 `json:"address"`
	Lat              float64                                `json:"lat"`
	Lon              float64                                `json:"lon"`
	Category         string                                 `json:"category"`
	Description      string                                 `json:"description,omitempty"`
	YearBuilt        int                                    `json:"year_built"`
	Floors           int                                    `json:"floors"`
	StudentsCapacity *int                                   `json:"students_capacity,omitempty"`
	Capacity         *int                                   `json:"capacity,omitempty"`
	BookCount        *int                                   `json:"book_count,omitempty"`
	Phone            string                                 `json:"phone"`
	Website          string                                 `json:"website"`
	Faculties        []string                               `json:"faculties,omitempty"`
	Facilities       []string                               `json:"facilities,omitempty"`
	Services         []string                               `json:"services,omitempty"`
	MealTimes        *orderedmap.OrderedMap[string, string] `json:"meal_times,omitempty"`
}

func (c Campus) Coordinates() Coordinates {
	return Coordinates{Lat: c.Lat, Lon: c.Lon}
}

// SearchResult is the part of a search hit the viewer relies on. The server
// returns full Campus records; extra fields are ignored.
type SearchResult struct {
	ID   ID      `json:"id"`
	Name string  `json:"name,omitempty"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func (r SearchResult) Coordinates() Coordinates {
	return Coordinates{Lat: r.Lat, Lon: r.Lon}
}

// Meals builds an ordered meal-time table from name/time pairs.
func Meals(pairs ...string) *orderedmap.OrderedMap[string, string] {
	om := orderedmap.New[string, string]()
	for i := 0; i+1 < len(pairs); i += 2 {
		om.Set(pairs[i], pairs[i+1])
	}
	return om
}

// IntPtr is a small helper for optional numeric fields.
func IntPtr(n int) *int { return &n }
