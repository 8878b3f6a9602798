package diagram

// Region is an axis-aligned rectangle with half-open bounds [Min,Max).
// A Max that sits on the diagram extent is treated as closed so every
// in-bounds point belongs somewhere.
type Region struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

func (r Region) contains(p Point, e Extent) bool {
	return within(p.X, r.MinX, r.MaxX, e.MaxX) && within(p.Y, r.MinY, r.MaxY, e.MaxY)
}

func within(v, lo, hi, limit float64) bool {
	if v < lo {
		return false
	}
	return v < hi || (hi == limit && v == hi)
}

// Zone is a named area of the logical space, built from one or more regions.
type Zone struct {
	Name    string
	Title   string
	Color   string
	Regions []Region
	// Outline lists the polygon vertices used to draw the zone.
	Outline []Point
	// Anchor is where the zone title is drawn.
	Anchor Point
}

// ZoneTable is evaluated in order; the first zone containing a point wins.
type ZoneTable []Zone

// Classify returns the zone containing p, or false when p is outside the
// extent or no zone covers it.
func (t ZoneTable) Classify(p Point, e Extent) (Zone, bool) {
	if !e.Contains(p) {
		return Zone{}, false
	}
	for _, z := range t {
		for _, r := range z.Regions {
			if r.contains(p, e) {
				return z, true
			}
		}
	}
	return Zone{}, false
}

// Lookup finds a zone by name.
func (t ZoneTable) Lookup(name string) (Zone, bool) {
	for _, z := range t {
		if z.Name == name {
			return z, true
		}
	}
	return Zone{}, false
}

func rectOutline(minX, minY, maxX, maxY float64) []Point {
	return []Point{{minX, minY}, {minX, maxY}, {maxX, maxY}, {maxX, minY}}
}
