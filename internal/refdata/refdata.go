// Package refdata holds the static comparison tables shown next to the
// diagrams: architecture styles and database families scored against a set
// of characteristics.
package refdata

import (
	"embed"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed data/*.json
var files embed.FS

// Band is the coarse quality of a score.
type Band string

const (
	BandGood   Band = "good"
	BandMedium Band = "medium"
	BandBad    Band = "bad"
)

// MaxScore is the top of the rating scale.
const MaxScore = 5

var labels = map[string]string{
	"agility":          "Agility",
	"abstraction":      "Abstraction",
	"configurability":  "Configurability",
	"cost":             "Cost",
	"deployability":    "Deployability",
	"domain_part":      "Domain Partitioning",
	"elasticity":       "Elasticity",
	"evolvability":     "Evolvability",
	"fault-tolerance":  "Fault Tolerance",
	"interoperability": "Interoperability",
	"maintainability":  "Maintainability",
	"modifiability":    "Modifiability",
	"modularity":       "Modularity",
	"performance":      "Performance",
	"reliability":      "Reliability",
	"scalability":      "Scalability",
	"security":         "Security",
	"simplicity":       "Simplicity",
	"testability":      "Testability",
	"workflow":         "Workflow",
}

// Table is a characteristics-by-entity rating grid.
type Table struct {
	Name            string
	Entities        []string
	Characteristics []string

	values       map[string]map[string]gjson.Result
	descriptions map[string]string
	excluded     map[string]bool
	upperTitles  bool
}

// Architectures is the architecture style comparison.
func Architectures() (*Table, error) {
	data, err := files.ReadFile("data/architectures.json")
	if err != nil {
		return nil, err
	}
	desc, err := files.ReadFile("data/characteristics.json")
	if err != nil {
		return nil, err
	}
	t, err := Parse("architectures", data, desc)
	if err != nil {
		return nil, err
	}
	t.upperTitles = true
	return t, nil
}

// Databases is the database family comparison. Its Read/Write row is
// informational and never counted.
func Databases() (*Table, error) {
	data, err := files.ReadFile("data/databases.json")
	if err != nil {
		return nil, err
	}
	return Parse("databases", data, nil)
}

// Parse reads {"architectures": {entity: {characteristic: value}}} keeping
// the document order of entities and characteristics. The characteristic
// list comes from the first entity. descriptions may be nil.
func Parse(name string, data, descriptions []byte) (*Table, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("%s: invalid JSON", name)
	}
	root := gjson.GetBytes(data, "architectures")
	if !root.IsObject() {
		return nil, fmt.Errorf("%s: missing architectures object", name)
	}

	t := &Table{
		Name:         name,
		values:       map[string]map[string]gjson.Result{},
		descriptions: map[string]string{},
		excluded:     map[string]bool{},
	}
	root.ForEach(func(entity, row gjson.Result) bool {
		e := entity.String()
		t.Entities = append(t.Entities, e)
		cells := map[string]gjson.Result{}
		row.ForEach(func(char, v gjson.Result) bool {
			cells[char.String()] = v
			if len(t.Entities) == 1 {
				t.Characteristics = append(t.Characteristics, char.String())
			}
			return true
		})
		t.values[e] = cells
		return true
	})
	if len(t.Entities) == 0 {
		return nil, fmt.Errorf("%s: no entities", name)
	}

	for _, c := range t.Characteristics {
		if strings.Contains(c, "Read/Write") {
			t.excluded[c] = true
		}
	}

	if len(descriptions) > 0 {
		if !gjson.ValidBytes(descriptions) {
			return nil, fmt.Errorf("%s: invalid descriptions JSON", name)
		}
		gjson.ParseBytes(descriptions).ForEach(func(char, v gjson.Result) bool {
			t.descriptions[char.String()] = v.Get("description").String()
			return true
		})
	}
	return t, nil
}

// Selectable reports whether c can be picked and counted in totals.
func (t *Table) Selectable(c string) bool {
	_, known := t.values[t.Entities[0]][c]
	return known && !t.excluded[c]
}

// Score returns the numeric rating, false when the cell is missing or not
// numeric.
func (t *Table) Score(entity, c string) (int, bool) {
	v, ok := t.values[entity][c]
	if !ok || v.Type != gjson.Number {
		return 0, false
	}
	return int(v.Int()), true
}

// Value is the cell as displayed.
func (t *Table) Value(entity, c string) string {
	v, ok := t.values[entity][c]
	if !ok {
		return ""
	}
	return v.String()
}

func (t *Table) Description(c string) string {
	return t.descriptions[c]
}

// Heading is the column title for an entity.
func (t *Table) Heading(entity string) string {
	if t.upperTitles {
		return Title(entity)
	}
	return entity
}

// Totals sums the selected, selectable characteristics per entity. The
// boolean is false when nothing counted is selected.
func (t *Table) Totals(sel *Selection) (map[string]int, bool) {
	var counted []string
	for _, c := range t.Characteristics {
		if sel.Selected(c) && t.Selectable(c) {
			counted = append(counted, c)
		}
	}
	if len(counted) == 0 {
		return nil, false
	}
	totals := make(map[string]int, len(t.Entities))
	for _, e := range t.Entities {
		for _, c := range counted {
			if s, ok := t.Score(e, c); ok {
				totals[e] += s
			}
		}
	}
	return totals, true
}

// Selection is the set of picked characteristics.
type Selection struct {
	picked map[string]bool
}

func NewSelection() *Selection {
	return &Selection{picked: map[string]bool{}}
}

// Toggle flips c and returns its new state.
func (s *Selection) Toggle(c string) bool {
	if s.picked == nil {
		s.picked = map[string]bool{}
	}
	if s.picked[c] {
		delete(s.picked, c)
		return false
	}
	s.picked[c] = true
	return true
}

func (s *Selection) Selected(c string) bool {
	return s != nil && s.picked[c]
}

func (s *Selection) Count() int {
	if s == nil {
		return 0
	}
	return len(s.picked)
}

// BandOf classifies a score: 4 and up is good, 2 and below is bad.
func BandOf(score int) Band {
	switch {
	case score >= 4:
		return BandGood
	case score <= 2:
		return BandBad
	default:
		return BandMedium
	}
}

// Stars renders a score as filled and empty stars out of MaxScore.
func Stars(score int) string {
	if score < 0 {
		score = 0
	}
	if score > MaxScore {
		score = MaxScore
	}
	return strings.Repeat("★", score) + strings.Repeat("☆", MaxScore-score)
}

// Title turns an entity key like "service_based" into "SERVICE BASED".
func Title(entity string) string {
	return cases.Upper(language.Und).String(strings.ReplaceAll(entity, "_", " "))
}

// Label is the display name of a characteristic key.
func Label(c string) string {
	if l, ok := labels[c]; ok {
		return l
	}
	return c
}
