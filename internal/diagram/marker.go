package diagram

// ConcernType categorizes a stakeholder concern.
type ConcernType string

const (
	ConcernImportant ConcernType = "important"
	ConcernIgnored   ConcernType = "ignored"
)

// Valid reports whether t is a known concern type.
func (t ConcernType) Valid() bool {
	return t == ConcernImportant || t == ConcernIgnored
}

// Toggle flips between important and ignored.
func (t ConcernType) Toggle() ConcernType {
	if t == ConcernImportant {
		return ConcernIgnored
	}
	return ConcernImportant
}

// Concern is a tag attached to a stakeholder marker.
type Concern struct {
	ID   string      `json:"id"`
	Text string      `json:"text"`
	Type ConcernType `json:"type"`
}

// Marker is a labeled, colored point placed on a diagram.
type Marker struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Position Point     `json:"position"`
	Color    string    `json:"color,omitempty"`
	Zone     string    `json:"zone,omitempty"`
	Concerns []Concern `json:"concerns,omitempty"`
}

func (m Marker) clone() Marker {
	if m.Concerns != nil {
		m.Concerns = append([]Concern(nil), m.Concerns...)
	}
	return m
}
