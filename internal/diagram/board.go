package diagram

import (
	"strings"

	"github.com/google/uuid"
)

// Board owns the markers of one diagram instance and mediates every
// mutation. It is not safe for concurrent use; a single view drives it.
type Board struct {
	layout  Layout
	markers []Marker
	pending Point
	newID   func() string

	dragging string
	editing  string
	dirty    bool
}

// Option customizes a Board.
type Option func(*Board)

// WithIDGenerator replaces the uuid-based id source.
func WithIDGenerator(gen func() string) Option {
	return func(b *Board) {
		b.newID = gen
	}
}

// NewBoard creates an empty board for layout.
func NewBoard(layout Layout, opts ...Option) *Board {
	b := &Board{
		layout:  layout,
		markers: make([]Marker, 0),
		pending: layout.Extent.Clamp(layout.Pending),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Board) Layout() Layout { return b.layout }

func (b *Board) Len() int { return len(b.markers) }

// Dirty reports whether the board changed since it was loaded or saved.
func (b *Board) Dirty() bool { return b.dirty }

// MarkClean resets the dirty flag after a successful save.
func (b *Board) MarkClean() { b.dirty = false }

func (b *Board) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range b.markers {
		if b.markers[i].ID == id {
			return i
		}
	}
	return -1
}

// Get returns a copy of the marker with id.
func (b *Board) Get(id string) (Marker, bool) {
	i := b.index(id)
	if i < 0 {
		return Marker{}, false
	}
	return b.markers[i].clone(), true
}

// Markers returns a copy of all markers in placement order.
func (b *Board) Markers() []Marker {
	out := make([]Marker, len(b.markers))
	for i, m := range b.markers {
		out[i] = m.clone()
	}
	return out
}

// Place creates a marker at position. A label that is blank after trimming
// creates nothing.
func (b *Board) Place(position Point, label, color string) (Marker, bool) {
	label = strings.TrimSpace(label)
	if label == "" {
		return Marker{}, false
	}
	if strings.TrimSpace(color) == "" {
		color = b.layout.DefaultColor
	}

	id := b.newID()
	for b.index(id) >= 0 {
		id = b.newID()
	}

	m := Marker{
		ID:       id,
		Label:    label,
		Position: b.layout.Extent.Clamp(position),
		Color:    color,
	}
	b.rezone(&m)
	b.markers = append(b.markers, m)
	b.dirty = true
	return m.clone(), true
}

// PlaceAtPending places a marker at the pending coordinate.
func (b *Board) PlaceAtPending(label, color string) (Marker, bool) {
	return b.Place(b.pending, label, color)
}

// Move clamps position into the extent and moves the marker there.
// Unknown ids are ignored.
func (b *Board) Move(id string, position Point) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	m := &b.markers[i]
	m.Position = b.layout.Extent.Clamp(position)
	b.rezone(m)
	b.dirty = true
	return true
}

// Rename sets the label of a marker. Blank labels are rejected.
func (b *Board) Rename(id, label string) bool {
	label = strings.TrimSpace(label)
	i := b.index(id)
	if i < 0 || label == "" {
		return false
	}
	b.markers[i].Label = label
	b.dirty = true
	return true
}

// Recolor sets the color of a marker; a blank color restores the default.
func (b *Board) Recolor(id, color string) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	if strings.TrimSpace(color) == "" {
		color = b.layout.DefaultColor
	}
	b.markers[i].Color = color
	b.dirty = true
	return true
}

// Remove deletes a marker along with any drag or edit state pointing at it.
func (b *Board) Remove(id string) bool {
	i := b.index(id)
	if i < 0 {
		return false
	}
	b.markers = append(b.markers[:i], b.markers[i+1:]...)
	if b.editing == id {
		b.editing = ""
	}
	if b.dragging == id {
		b.dragging = ""
	}
	b.dirty = true
	return true
}

func (b *Board) rezone(m *Marker) {
	if !b.layout.TracksZones {
		m.Zone = ""
		return
	}
	m.Zone = b.layout.Classify(m.Position)
}

// MarkerNear returns the topmost marker within tol of p on each axis.
func (b *Board) MarkerNear(p Point, tolX, tolY float64) (Marker, bool) {
	for i := len(b.markers) - 1; i >= 0; i-- {
		m := b.markers[i]
		if abs(m.Position.X-p.X) <= tolX && abs(m.Position.Y-p.Y) <= tolY {
			return m.clone(), true
		}
	}
	return Marker{}, false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// Pending is the coordinate the next placed marker will use.
func (b *Board) Pending() Point { return b.pending }

// SetPending moves the pending coordinate, clamped into the extent.
func (b *Board) SetPending(p Point) {
	b.pending = b.layout.Extent.Clamp(p)
}

// NudgePending shifts the pending coordinate by a logical delta.
func (b *Board) NudgePending(dx, dy float64) {
	b.SetPending(Point{X: b.pending.X + dx, Y: b.pending.Y + dy})
}

// BeginDrag makes id the active drag target, replacing any previous one.
func (b *Board) BeginDrag(id string) bool {
	if b.index(id) < 0 {
		return false
	}
	b.dragging = id
	return true
}

// DragTo moves the active drag target. It is a no-op with no target.
func (b *Board) DragTo(p Point) bool {
	if b.dragging == "" {
		return false
	}
	return b.Move(b.dragging, p)
}

// EndDrag clears the active drag target.
func (b *Board) EndDrag() {
	b.dragging = ""
}

// Dragging returns the active drag target.
func (b *Board) Dragging() (string, bool) {
	return b.dragging, b.dragging != ""
}

// StartEdit marks a marker as being edited and returns its current state.
func (b *Board) StartEdit(id string) (Marker, bool) {
	i := b.index(id)
	if i < 0 {
		return Marker{}, false
	}
	b.editing = id
	return b.markers[i].clone(), true
}

// Editing returns the id of the marker being edited.
func (b *Board) Editing() (string, bool) {
	return b.editing, b.editing != ""
}

// CommitEdit applies label and color to the edited marker and ends the
// edit. A blank label keeps the old one.
func (b *Board) CommitEdit(label, color string) bool {
	id := b.editing
	if id == "" {
		return false
	}
	b.editing = ""
	if b.index(id) < 0 {
		return false
	}
	b.Rename(id, label)
	b.Recolor(id, color)
	return true
}

// CancelEdit ends the edit without touching the marker.
func (b *Board) CancelEdit() {
	b.editing = ""
}

// AddConcern appends a concern to a stakeholder marker. Blank text, unknown
// markers and layouts without concerns create nothing.
func (b *Board) AddConcern(markerID, text string, kind ConcernType) (Concern, bool) {
	text = strings.TrimSpace(text)
	i := b.index(markerID)
	if !b.layout.Concerns || i < 0 || text == "" {
		return Concern{}, false
	}
	if !kind.Valid() {
		kind = ConcernImportant
	}
	c := Concern{ID: b.newID(), Text: text, Type: kind}
	b.markers[i].Concerns = append(b.markers[i].Concerns, c)
	b.dirty = true
	return c, true
}

// RemoveConcern deletes one concern from a marker.
func (b *Board) RemoveConcern(markerID, concernID string) bool {
	i := b.index(markerID)
	if i < 0 {
		return false
	}
	concerns := b.markers[i].Concerns
	for j := range concerns {
		if concerns[j].ID == concernID {
			b.markers[i].Concerns = append(concerns[:j:j], concerns[j+1:]...)
			b.dirty = true
			return true
		}
	}
	return false
}

// Snapshot captures the markers for work done off the event loop, such as
// image export.
func (b *Board) Snapshot() Snapshot {
	return Snapshot{Layout: b.layout, Markers: b.Markers()}
}

// Snapshot is an immutable copy of a board's markers.
type Snapshot struct {
	Layout  Layout
	Markers []Marker
}
