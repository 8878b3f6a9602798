package diagram

import "fmt"

// Axis describes one axis of a diagram for rendering.
type Axis struct {
	Title string
	// Ticks maps integer logical positions to their labels; blank labels
	// are skipped.
	Ticks []string
}

// Layout configures one diagram instance: its coordinate space, zones and
// the names it persists and exports under.
type Layout struct {
	Name   string
	Title  string
	Noun   string
	Extent Extent
	Zones  ZoneTable

	// TracksZones makes the board store the zone of every marker.
	TracksZones bool
	// Concerns enables stakeholder concern tags on markers.
	Concerns bool

	XAxis Axis
	YAxis Axis

	StorageKey   string
	ExportName   string
	Pending      Point
	DefaultColor string
}

const (
	DomainChartName     = "domain-chart"
	InfluenceMatrixName = "influence-matrix"
)

// DomainChart is the domain strategy chart: business differentiation
// against model complexity.
func DomainChart() Layout {
	return Layout{
		Name:   DomainChartName,
		Title:  "Domain Strategy Chart",
		Noun:   "domain",
		Extent: Extent{MaxX: 4, MaxY: 3},
		Zones: ZoneTable{
			{
				Name:    "core",
				Title:   "CORE",
				Color:   "#76A993",
				Regions: []Region{{MinX: 2, MaxX: 4, MinY: 1, MaxY: 3}},
				Outline: rectOutline(2, 1, 4, 3),
				Anchor:  Point{3, 2},
			},
			{
				Name:  "supporting",
				Title: "SUPPORTING",
				Color: "#9F7DCD",
				Regions: []Region{
					{MinX: 1, MaxX: 2, MinY: 0, MaxY: 3},
					{MinX: 2, MaxX: 4, MinY: 0, MaxY: 1},
				},
				Outline: []Point{{1, 3}, {1, 0}, {4, 0}, {4, 1}, {2, 1}, {2, 3}},
				Anchor:  Point{1.5, 1},
			},
			{
				Name:    "generic",
				Title:   "GENERIC",
				Color:   "#A2A2A2",
				Regions: []Region{{MinX: 0, MaxX: 1, MinY: 0, MaxY: 3}},
				Outline: rectOutline(0, 0, 1, 3),
				Anchor:  Point{0.5, 1.5},
			},
		},
		TracksZones:  true,
		XAxis:        Axis{Title: "Business Differentiation", Ticks: []string{"Low", "", "", "", "High"}},
		YAxis:        Axis{Title: "Model Complexity", Ticks: []string{"Low", "", "", "High"}},
		StorageKey:   "domainStickers",
		ExportName:   "domain-chart",
		Pending:      Point{X: 2, Y: 1.5},
		DefaultColor: "#ffcc00",
	}
}

// InfluenceMatrix is the stakeholder power/interest grid.
func InfluenceMatrix() Layout {
	return Layout{
		Name:   InfluenceMatrixName,
		Title:  "Influence Matrix",
		Noun:   "stakeholder",
		Extent: Extent{MaxX: 2, MaxY: 2},
		Zones: ZoneTable{
			{
				Name:    "monitor",
				Title:   "Monitor",
				Color:   "#ECEFF1",
				Regions: []Region{{MinX: 0, MaxX: 1, MinY: 0, MaxY: 1}},
				Outline: rectOutline(0, 0, 1, 1),
				Anchor:  Point{0.5, 0.5},
			},
			{
				Name:    "keep-informed",
				Title:   "Keep Informed",
				Color:   "#E3F2FD",
				Regions: []Region{{MinX: 1, MaxX: 2, MinY: 0, MaxY: 1}},
				Outline: rectOutline(1, 0, 2, 1),
				Anchor:  Point{1.5, 0.5},
			},
			{
				Name:    "keep-satisfied",
				Title:   "Keep Satisfied",
				Color:   "#FFF8E1",
				Regions: []Region{{MinX: 0, MaxX: 1, MinY: 1, MaxY: 2}},
				Outline: rectOutline(0, 1, 1, 2),
				Anchor:  Point{0.5, 1.5},
			},
			{
				Name:    "manage-closely",
				Title:   "Manage Closely",
				Color:   "#E8F5E9",
				Regions: []Region{{MinX: 1, MaxX: 2, MinY: 1, MaxY: 2}},
				Outline: rectOutline(1, 1, 2, 2),
				Anchor:  Point{1.5, 1.5},
			},
		},
		TracksZones:  true,
		Concerns:     true,
		XAxis:        Axis{Title: "Interest", Ticks: []string{"Low", "Medium", "High"}},
		YAxis:        Axis{Title: "Influence", Ticks: []string{"", "Medium", "High"}},
		StorageKey:   "stakeholders",
		ExportName:   "influence-matrix",
		Pending:      Point{X: 1, Y: 1},
		DefaultColor: "#ff0000",
	}
}

// Layouts returns every built-in layout in display order.
func Layouts() []Layout {
	return []Layout{DomainChart(), InfluenceMatrix()}
}

// LayoutByName resolves a layout by its name.
func LayoutByName(name string) (Layout, error) {
	for _, l := range Layouts() {
		if l.Name == name {
			return l, nil
		}
	}
	return Layout{}, fmt.Errorf("unknown diagram %q", name)
}

// Classify returns the zone name for p, or "" when none applies.
func (l Layout) Classify(p Point) string {
	z, ok := l.Zones.Classify(p, l.Extent)
	if !ok {
		return ""
	}
	return z.Name
}

// Mapper builds a coordinate mapper for this layout with the given padding.
func (l Layout) Mapper(pad Padding) Mapper {
	return Mapper{Extent: l.Extent, Padding: pad}
}
