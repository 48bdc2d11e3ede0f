package catalog

// Category is a building category with its marker color.
type Category struct {
	Name  string
	Color string
}

// Categories lists every category in legend order.
var Categories = []Category{
	{Name: "administration", Color: "darkblue"},
	{Name: "education", Color: "green"},
	{Name: "dormitory", Color: "orange"},
	{Name: "library", Color: "purple"},
	{Name: "sport", Color: "red"},
	{Name: "culture", Color: "pink"},
	{Name: "food", Color: "cadetblue"},
	{Name: "medicine", Color: "darkred"},
}

// DefaultColor is used for categories missing from Categories.
const DefaultColor = "blue"

func ColorOf(category string) string {
	for _, c := range Categories {
		if c.Name == category {
			return c.Color
		}
	}
	return DefaultColor
}

func KnownCategory(category string) bool {
	for _, c := range Categories {
		if c.Name == category {
			return true
		}
	}
	return false
}
