package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"archhelper/internal/diagram"
)

// currentPane is the diagram behind the current view; the stakeholder list
// edits the influence matrix board.
func (m *model) currentPane() *Pane {
	switch m.view {
	case ViewDomainChart:
		return m.panes[ViewDomainChart]
	case ViewInfluenceMatrix, ViewStakeholders:
		return m.panes[ViewInfluenceMatrix]
	}
	return nil
}

// surfaceRect is the terminal area the chart occupies: everything left of
// the side panel between the navigation bar and the status line.
func (m *model) surfaceRect() diagram.Rect {
	w := m.width - panelWidth
	if w < minSurface {
		w = minSurface
	}
	h := m.height - 2
	if h < minSurface {
		h = minSurface
	}
	return diagram.Rect{Left: 0, Top: 1, Width: float64(w), Height: float64(h)}
}

func (m *model) mapper(pane *Pane) diagram.Mapper {
	return pane.board.Layout().Mapper(diagram.Padding{X: surfacePadX, Y: surfacePadY})
}

func (m *model) anyDirty() bool {
	for _, p := range m.panes {
		if p.board.Dirty() {
			return true
		}
	}
	return false
}

// selectedMarker returns the selected marker, dropping a stale selection.
func (p *Pane) selectedMarker() (diagram.Marker, bool) {
	mk, ok := p.board.Get(p.selected)
	if !ok {
		p.selected = ""
	}
	return mk, ok
}

// cycle moves the selection through the markers in insertion order.
func (p *Pane) cycle(delta int) {
	markers := p.board.Markers()
	if len(markers) == 0 {
		p.selected = ""
		return
	}
	idx := -1
	for i, mk := range markers {
		if mk.ID == p.selected {
			idx = i
			break
		}
	}
	switch {
	case idx < 0 && delta < 0:
		idx = len(markers) - 1
	case idx < 0:
		idx = 0
	default:
		idx = (idx + delta + len(markers)) % len(markers)
	}
	p.selected = markers[idx].ID
	p.concern = 0
}

// cycleConcern moves the concern cursor of the selected stakeholder.
func (p *Pane) cycleConcern(delta int) {
	mk, ok := p.selectedMarker()
	if !ok || len(mk.Concerns) == 0 {
		p.concern = 0
		return
	}
	n := len(mk.Concerns)
	p.concern = ((p.concern+delta)%n + n) % n
}

func (p *Pane) selectedConcern() (diagram.Concern, bool) {
	mk, ok := p.selectedMarker()
	if !ok || p.concern < 0 || p.concern >= len(mk.Concerns) {
		return diagram.Concern{}, false
	}
	return mk.Concerns[p.concern], true
}

func zapMarker(mk diagram.Marker) []zap.Field {
	return []zap.Field{
		zap.String("id", mk.ID),
		zap.String("label", mk.Label),
		zap.Float64("x", mk.Position.X),
		zap.Float64("y", mk.Position.Y),
		zap.String("zone", mk.Zone),
	}
}

// markerSummary is the plain-text listing copied to the clipboard.
func markerSummary(l diagram.Layout, markers []diagram.Marker) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", l.Title)
	for _, mk := range markers {
		fmt.Fprintf(&sb, "- %s (%.1f, %.1f)", mk.Label, mk.Position.X, mk.Position.Y)
		if mk.Zone != "" {
			if z, ok := l.Zones.Lookup(mk.Zone); ok {
				fmt.Fprintf(&sb, " %s", z.Title)
			}
		}
		sb.WriteString("\n")
		for _, c := range mk.Concerns {
			fmt.Fprintf(&sb, "    [%s] %s\n", c.Type, c.Text)
		}
	}
	return sb.String()
}

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func writeClipboardText(text string) error {
	return clipboard.WriteAll(text)
}

// cleanClipboardText flattens pasted text into a single input line.
func cleanClipboardText(text string) string {
	if text == "" {
		return text
	}
	text = stripRTF(text)
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			result.WriteRune(' ')
		case r >= 32:
			result.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(result.String()), " ")
}

// stripRTF reduces rich text from the clipboard to its plain characters.
// Destination groups such as the font and color tables are dropped, \par
// and \line become newlines and \'hh escapes are read as Latin-1.
func stripRTF(text string) string {
	if !strings.Contains(text, `\rtf`) {
		return text
	}
	var out strings.Builder
	out.Grow(len(text))
	depth, skip := 0, 0
	for i := 0; i < len(text); {
		switch c := text[i]; c {
		case '{':
			depth++
			i++
		case '}':
			if skip == depth {
				skip = 0
			}
			depth--
			i++
		case '\\':
			word, param, n := rtfControl(text[i:])
			i += n
			if skip != 0 {
				continue
			}
			switch word {
			case "*", "fonttbl", "colortbl", "stylesheet", "info":
				skip = depth
			case "par", "line":
				out.WriteByte('\n')
			case "tab":
				out.WriteByte('\t')
			case "'":
				if v, err := strconv.ParseUint(param, 16, 8); err == nil {
					out.WriteRune(rune(v))
				}
			case "\\", "{", "}":
				out.WriteString(word)
			}
		case '\n', '\r':
			i++
		default:
			if skip == 0 {
				out.WriteByte(c)
			}
			i++
		}
	}
	return out.String()
}

// rtfControl splits the control word or symbol at the start of s, which
// begins with a backslash, and returns how many bytes it spans including
// the optional space delimiter.
func rtfControl(s string) (word, param string, n int) {
	if len(s) < 2 {
		return "", "", len(s)
	}
	isLetter := func(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
	isDigit := func(c byte) bool { return c >= '0' && c <= '9' }

	if c := s[1]; !isLetter(c) {
		if c == '\'' {
			end := min(len(s), 4)
			return "'", s[2:end], end
		}
		return string(c), "", 2
	}
	j := 1
	for j < len(s) && isLetter(s[j]) {
		j++
	}
	k := j
	if k < len(s) && (s[k] == '-' || isDigit(s[k])) {
		k++
		for k < len(s) && isDigit(s[k]) {
			k++
		}
	}
	word, param = s[1:j], s[j:k]
	if k < len(s) && s[k] == ' ' {
		k++
	}
	return word, param, k
}
