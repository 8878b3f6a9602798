package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// startExport snapshots the pane's markers and encodes the image off the
// event loop. Edits made before the export finishes are not in the image.
func (m *model) startExport(pane *Pane) tea.Cmd {
	if m.exporting {
		m.errorMessage = "Export already running"
		return nil
	}
	m.exporting = true
	m.errorMessage = ""
	m.successMessage = "Exporting..."

	snap := pane.board.Snapshot()
	exporter := m.exporter
	ctx := m.ctx
	return func() tea.Msg {
		path, err := exporter.Export(ctx, snap)
		return exportDoneMsg{diagram: snap.Layout.Name, path: path, err: err}
	}
}
