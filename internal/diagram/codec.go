package diagram

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// FormatVersion is the version tag written by Serialize.
const FormatVersion = 1

// Document is the persisted form of a board.
type Document struct {
	Version int      `json:"version"`
	Diagram string   `json:"diagram"`
	Markers []Marker `json:"markers"`
}

var errEmptyBlob = errors.New("empty blob")

// legacyMarker is the unversioned record the browser editors stored: a bare
// array of stickers with flat coordinates.
type legacyMarker struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Text       string    `json:"text"`
	X          float64   `json:"x"`
	Y          float64   `json:"y"`
	Color      string    `json:"color"`
	DomainType string    `json:"domainType"`
	Concerns   []Concern `json:"concerns"`
}

// Serialize encodes the whole board.
func (b *Board) Serialize() ([]byte, error) {
	doc := Document{
		Version: FormatVersion,
		Diagram: b.layout.Name,
		Markers: b.Markers(),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", b.layout.Name, err)
	}
	return data, nil
}

// Decode parses a stored blob, migrating the unversioned array format.
func Decode(data []byte) (Document, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return Document{}, errEmptyBlob
	}

	switch data[0] {
	case '[':
		var legacy []legacyMarker
		if err := json.Unmarshal(data, &legacy); err != nil {
			return Document{}, fmt.Errorf("decode legacy blob: %w", err)
		}
		return migrateLegacy(legacy), nil
	case '{':
		var doc Document
		if err := json.Unmarshal(data, &doc); err != nil {
			return Document{}, fmt.Errorf("decode blob: %w", err)
		}
		if doc.Version < 1 {
			return Document{}, fmt.Errorf("blob has no version tag")
		}
		if doc.Version > FormatVersion {
			return Document{}, fmt.Errorf("blob version %d is newer than supported version %d", doc.Version, FormatVersion)
		}
		return doc, nil
	default:
		return Document{}, fmt.Errorf("blob is not a JSON object or array")
	}
}

func migrateLegacy(legacy []legacyMarker) Document {
	doc := Document{Version: FormatVersion, Markers: make([]Marker, 0, len(legacy))}
	for _, l := range legacy {
		label := l.Name
		if label == "" {
			label = l.Text
		}
		doc.Markers = append(doc.Markers, Marker{
			ID:       l.ID,
			Label:    label,
			Position: Point{X: l.X, Y: l.Y},
			Color:    l.Color,
			Zone:     l.DomainType,
			Concerns: l.Concerns,
		})
	}
	return doc
}

// Restore builds a board from a decoded document. Positions are clamped,
// zones recomputed, and missing or duplicate ids replaced.
func Restore(doc Document, layout Layout, opts ...Option) (*Board, error) {
	if doc.Diagram != "" && doc.Diagram != layout.Name {
		return nil, fmt.Errorf("blob belongs to diagram %q, not %q", doc.Diagram, layout.Name)
	}

	b := NewBoard(layout, opts...)
	seen := make(map[string]bool, len(doc.Markers))
	for _, m := range doc.Markers {
		m.Label = strings.TrimSpace(m.Label)
		if m.Label == "" {
			continue
		}
		if m.ID == "" || seen[m.ID] {
			m.ID = b.newID()
		}
		seen[m.ID] = true
		if m.Color == "" {
			m.Color = layout.DefaultColor
		}
		m.Position = layout.Extent.Clamp(m.Position)
		b.rezone(&m)
		m.Concerns = restoreConcerns(b, m.Concerns)
		b.markers = append(b.markers, m)
	}
	return b, nil
}

func restoreConcerns(b *Board, in []Concern) []Concern {
	if !b.layout.Concerns || len(in) == 0 {
		return nil
	}
	out := make([]Concern, 0, len(in))
	for _, c := range in {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		if c.ID == "" {
			c.ID = b.newID()
		}
		if !c.Type.Valid() {
			c.Type = ConcernImportant
		}
		out = append(out, c)
	}
	return out
}

// Deserialize rebuilds a board from a blob. Malformed or empty input yields
// an empty board; it never fails.
func Deserialize(data []byte, layout Layout, opts ...Option) *Board {
	doc, err := Decode(data)
	if err != nil {
		return NewBoard(layout, opts...)
	}
	b, err := Restore(doc, layout, opts...)
	if err != nil {
		return NewBoard(layout, opts...)
	}
	return b
}
