// Package render turns campus records into the details panel and the viewer
// page. Building a Panel is pure; HTML and Text are two projections of it.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"campusmap/internal/models"
)

type Field struct {
	Label string
	Value string
}

type MealTime struct {
	Meal string
	Time string
}

// Panel is the view model of the details panel.
type Panel struct {
	Title        string
	Fields       []Field
	HasMealTimes bool
	MealTimes    []MealTime
	Website      string
}

const WebsiteLabel = "Official website"

// Build projects a campus record onto the panel. The five fixed fields are
// always present; the rest only when the record carries them.
func Build(c *models.Campus) Panel {
	p := Panel{
		Title:   c.Name,
		Website: c.Website,
		Fields: []Field{
			{"Address", c.Address},
			{"Category", Capitalize(c.Category)},
			{"Phone", c.Phone},
			{"Year built", strconv.Itoa(c.YearBuilt)},
			{"Floors", strconv.Itoa(c.Floors)},
		},
	}

	if c.StudentsCapacity != nil && *c.StudentsCapacity != 0 {
		p.Fields = append(p.Fields, Field{"Student capacity", strconv.Itoa(*c.StudentsCapacity)})
	}
	if c.Capacity != nil && *c.Capacity != 0 {
		p.Fields = append(p.Fields, Field{"Capacity", strconv.Itoa(*c.Capacity)})
	}
	if c.Faculties != nil {
		p.Fields = append(p.Fields, Field{"Faculties", strings.Join(c.Faculties, ", ")})
	}
	if c.Facilities != nil {
		p.Fields = append(p.Fields, Field{"Facilities", strings.Join(c.Facilities, ", ")})
	}
	if c.Services != nil {
		p.Fields = append(p.Fields, Field{"Services", strings.Join(c.Services, ", ")})
	}
	if c.MealTimes != nil {
		p.HasMealTimes = true
		for pair := c.MealTimes.Oldest(); pair != nil; pair = pair.Next() {
			p.MealTimes = append(p.MealTimes, MealTime{Meal: pair.Key, Time: pair.Value})
		}
	}
	return p
}

// Capitalize upper-cases the first letter and leaves the rest untouched.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

var panelTemplate = template.Must(template.New("panel").Parse(
	`{{range .Fields}}<p><strong>{{.Label}}:</strong> {{.Value}}</p>
{{end}}{{if .HasMealTimes}}<p><strong>Meal times:</strong></p><ul>{{range .MealTimes}}<li>{{.Meal}}: {{.Time}}</li>{{end}}</ul>
{{end}}<p><a href="{{.Website}}" target="_blank">` + WebsiteLabel + `</a></p>
`))

var panelPolicy = newPanelPolicy()

func newPanelPolicy() *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements("p", "strong", "ul", "li")
	p.AllowAttrs("href").OnElements("a")
	p.AllowAttrs("target").Matching(regexp.MustCompile(`^_blank$`)).OnElements("a")
	p.AllowURLSchemes("http", "https", "mailto")
	p.AllowRelativeURLs(true)
	p.RequireParseableURLs(true)
	return p
}

// HTML renders the panel body that replaces the content region.
func (p Panel) HTML() (string, error) {
	var buf bytes.Buffer
	if err := panelTemplate.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("render panel %q: %w", p.Title, err)
	}
	return panelPolicy.Sanitize(buf.String()), nil
}

// Text renders the panel as plain lines for terminal front ends.
func (p Panel) Text() []string {
	lines := make([]string, 0, len(p.Fields)+len(p.MealTimes)+2)
	for _, f := range p.Fields {
		lines = append(lines, f.Label+": "+f.Value)
	}
	if p.HasMealTimes {
		lines = append(lines, "Meal times:")
		for _, m := range p.MealTimes {
			lines = append(lines, "  - "+m.Meal+": "+m.Time)
		}
	}
	lines = append(lines, WebsiteLabel+": "+p.Website)
	return lines
}
