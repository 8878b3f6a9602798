package main

import "archhelper/internal/diagram"

func isMoveKey(key string) bool {
	switch key {
	case "h", "left", "H", "shift+left",
		"l", "right", "L", "shift+right",
		"k", "up", "K", "shift+up",
		"j", "down", "J", "shift+down":
		return true
	}
	return false
}

// moveDelta is the logical offset for one keypress on an extent. Up is
// positive y since logical y grows upwards.
func moveDelta(key string, speed int, e diagram.Extent) (float64, float64) {
	stepX := e.MaxX * nudgeStep * float64(speed)
	stepY := e.MaxY * nudgeStep * float64(speed)
	switch key {
	case "h", "left", "H", "shift+left":
		return -stepX, 0
	case "l", "right", "L", "shift+right":
		return stepX, 0
	case "k", "up", "K", "shift+up":
		return 0, stepY
	case "j", "down", "J", "shift+down":
		return 0, -stepY
	}
	return 0, 0
}

func getMoveSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 2
	default:
		return 1
	}
}

// handlePendingMove nudges the pending placement point.
func (m *model) handlePendingMove(key string) {
	pane := m.currentPane()
	if pane == nil {
		return
	}
	dx, dy := moveDelta(key, getMoveSpeed(key), pane.board.Layout().Extent)
	pane.board.NudgePending(dx, dy)
}

// handleMarkerMove shifts the selected marker while in move mode.
func (m *model) handleMarkerMove(key string) {
	pane := m.currentPane()
	if pane == nil {
		return
	}
	mk, ok := pane.board.Get(pane.selected)
	if !ok {
		return
	}
	dx, dy := moveDelta(key, getMoveSpeed(key), pane.board.Layout().Extent)
	pane.board.Move(mk.ID, diagram.Point{X: mk.Position.X + dx, Y: mk.Position.Y + dy})
}
