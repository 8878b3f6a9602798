package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"archhelper/internal/diagram"
)

// handleMouse implements click-to-place and drag-to-move on the chart
// surface. A press on a marker starts a drag, motion moves it (clamped to
// the extent even when the pointer leaves the surface) and release ends it.
// A press on empty plot area sets the pending coordinate.
func (m model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// A release always ends the gesture, whatever view or mode it lands in.
	if msg.Action == tea.MouseActionRelease {
		m.endDrags()
		return m, nil
	}
	if !m.view.isDiagram() || m.mode != ModeNormal {
		return m, nil
	}
	pane := m.currentPane()
	surface := m.surfaceRect()
	mapper := m.mapper(pane)
	at := diagram.Point{X: float64(msg.X) + 0.5, Y: float64(msg.Y) + 0.5}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !inRect(at, surface) {
			return m, nil
		}
		p := mapper.ToLogical(at, surface)
		tolX, tolY := mapper.Scale(surface)
		if mk, ok := pane.board.MarkerNear(p, tolX, tolY); ok {
			pane.board.BeginDrag(mk.ID)
			pane.selected = mk.ID
			pane.concern = 0
			m.log.Debug("drag started", zapMarker(mk)...)
			return m, nil
		}
		if mapper.InPlot(at, surface) {
			pane.board.SetPending(p)
		}

	case tea.MouseActionMotion:
		if _, ok := pane.board.Dragging(); ok {
			pane.board.DragTo(mapper.ToLogical(at, surface))
		}
	}
	return m, nil
}

// endDrags clears the drag target of every board.
func (m *model) endDrags() {
	for _, pane := range m.panes {
		id, ok := pane.board.Dragging()
		if !ok {
			continue
		}
		pane.board.EndDrag()
		if mk, ok := pane.board.Get(id); ok {
			m.log.Debug("drag ended", zapMarker(mk)...)
		}
	}
}

func inRect(p diagram.Point, r diagram.Rect) bool {
	return p.X >= r.Left && p.X < r.Left+r.Width && p.Y >= r.Top && p.Y < r.Top+r.Height
}
