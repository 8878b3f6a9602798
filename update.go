package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"archhelper/internal/diagram"
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		for _, tp := range m.tables {
			tp.setSize(m.width, m.height-2)
		}
		return m, nil

	case exportDoneMsg:
		m.exporting = false
		if msg.err != nil {
			m.errorMessage = fmt.Sprintf("Error exporting %s: %s", msg.diagram, msg.err.Error())
			m.successMessage = ""
			m.log.Error("export failed", zap.String("diagram", msg.diagram), zap.Error(msg.err))
			return m, nil
		}
		m.successMessage = fmt.Sprintf("Exported to %s", msg.path)
		m.errorMessage = ""
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit
	}

	if m.help {
		switch key {
		case "esc", "q", "?":
			m.help = false
		}
		return m, nil
	}

	switch m.mode {
	case ModeConfirm:
		return m.handleConfirmKey(key)
	case ModeForm:
		return m.handleFormKey(msg)
	case ModeConcern:
		return m.handleConcernKey(msg)
	case ModeMove:
		return m.handleMoveKey(key)
	}

	switch key {
	case "q":
		return m.requestQuit()
	case "?":
		m.help = true
		return m, nil
	case "1", "2", "3", "4", "5":
		m.switchView(View(key[0] - '1'))
		return m, nil
	case "{":
		m.switchView((m.view + numViews - 1) % numViews)
		return m, nil
	case "}":
		m.switchView((m.view + 1) % numViews)
		return m, nil
	}

	if m.view.isTable() {
		return m.handleTableKey(msg)
	}
	return m.handleDiagramKey(key)
}

func (m *model) switchView(v View) {
	if v < 0 || v >= numViews {
		return
	}
	m.endDrags()
	m.view = v
	m.errorMessage = ""
	m.successMessage = ""
}

func (m model) requestQuit() (tea.Model, tea.Cmd) {
	if m.anyDirty() && m.config.Confirmations {
		m.mode = ModeConfirm
		m.confirmAction = ConfirmQuit
		return m, nil
	}
	return m, tea.Quit
}

// handleDiagramKey covers the two chart views and the stakeholder list.
func (m model) handleDiagramKey(key string) (tea.Model, tea.Cmd) {
	pane := m.currentPane()
	if pane == nil {
		return m, nil
	}
	layout := pane.board.Layout()
	onChart := m.view.isDiagram()

	switch key {
	case "tab":
		pane.cycle(1)
	case "shift+tab":
		pane.cycle(-1)
	case "s":
		m.save(pane)
	case "y":
		m.copySummary(pane)
	case "i":
		if _, ok := pane.selectedMarker(); ok && layout.Concerns {
			m.openConcernForm()
		}
	case "<", ",":
		pane.cycleConcern(-1)
	case ">", ".":
		pane.cycleConcern(1)
	case "x":
		if _, ok := pane.selectedConcern(); ok {
			m.confirmOr(ConfirmDeleteConcern)
		}
	}
	if !onChart {
		return m, nil
	}

	if isMoveKey(key) {
		m.handlePendingMove(key)
		return m, nil
	}

	switch key {
	case "a", "enter":
		m.openMarkerForm(nil)
	case "e":
		if mk, ok := pane.selectedMarker(); ok {
			if started, ok := pane.board.StartEdit(mk.ID); ok {
				m.openMarkerForm(&started)
			}
		}
	case "m":
		if mk, ok := pane.selectedMarker(); ok {
			pane.originalMove = mk.Position
			m.mode = ModeMove
		}
	case "c":
		if mk, ok := pane.selectedMarker(); ok {
			pane.board.Recolor(mk.ID, diagram.NextColor(mk.Color))
		}
	case "d", "delete":
		if _, ok := pane.selectedMarker(); ok {
			m.confirmOr(ConfirmDeleteMarker)
		}
	case "S":
		return m, m.startExport(pane)
	}
	return m, nil
}

// confirmOr asks before a destructive action when confirmations are on,
// otherwise runs it straight away.
func (m *model) confirmOr(action ConfirmAction) {
	if m.config.Confirmations {
		m.mode = ModeConfirm
		m.confirmAction = action
		return
	}
	m.runConfirmed(action)
}

func (m *model) runConfirmed(action ConfirmAction) {
	pane := m.currentPane()
	switch action {
	case ConfirmDeleteMarker:
		if mk, ok := pane.selectedMarker(); ok {
			pane.board.Remove(mk.ID)
			pane.selected = ""
			pane.concern = 0
			m.successMessage = fmt.Sprintf("Deleted %s", mk.Label)
		}
	case ConfirmDeleteConcern:
		mk, _ := pane.selectedMarker()
		if c, ok := pane.selectedConcern(); ok {
			pane.board.RemoveConcern(mk.ID, c.ID)
			pane.cycleConcern(0)
		}
	}
}

func (m model) handleConfirmKey(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y", "Y":
		m.mode = ModeNormal
		if m.confirmAction == ConfirmQuit {
			return m, tea.Quit
		}
		m.runConfirmed(m.confirmAction)
	case "n", "N", "esc":
		m.mode = ModeNormal
	}
	return m, nil
}

// openMarkerForm focuses the label/color inputs, seeded from editing when
// an existing marker is being changed.
func (m *model) openMarkerForm(editing *diagram.Marker) {
	m.endDrags()
	m.labelInput.SetValue("")
	m.colorInput.SetValue("")
	if editing != nil {
		m.labelInput.SetValue(editing.Label)
		m.colorInput.SetValue(editing.Color)
	}
	m.labelInput.CursorEnd()
	m.focus = fieldLabel
	m.labelInput.Focus()
	m.colorInput.Blur()
	m.mode = ModeForm
	m.errorMessage = ""
}

func (m *model) closeForm() {
	m.labelInput.Blur()
	m.colorInput.Blur()
	m.concernInput.Blur()
	m.mode = ModeNormal
}

func (m *model) focusedInput() *textinput.Model {
	if m.focus == fieldColor {
		return &m.colorInput
	}
	return &m.labelInput
}

func (m model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pane := m.currentPane()
	switch msg.String() {
	case "esc":
		pane.board.CancelEdit()
		m.closeForm()
		return m, nil

	case "tab", "shift+tab", "up", "down":
		if m.focus == fieldLabel {
			m.focus = fieldColor
			m.labelInput.Blur()
			m.colorInput.Focus()
		} else {
			m.focus = fieldLabel
			m.colorInput.Blur()
			m.labelInput.Focus()
		}
		return m, nil

	case "ctrl+v":
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = fmt.Sprintf("Paste failed: %s", err.Error())
			return m, nil
		}
		in := m.focusedInput()
		in.SetValue(in.Value() + cleanClipboardText(text))
		in.CursorEnd()
		return m, nil

	case "enter":
		m.submitMarkerForm(pane)
		return m, nil
	}

	var cmd tea.Cmd
	in := m.focusedInput()
	*in, cmd = in.Update(msg)
	return m, cmd
}

func (m *model) submitMarkerForm(pane *Pane) {
	layout := pane.board.Layout()
	color := m.colorInput.Value()
	if color != "" {
		normalized := diagram.NormalizeColor(color, "")
		if normalized == "" {
			m.errorMessage = fmt.Sprintf("Invalid color %q (use #rgb or #rrggbb)", color)
			return
		}
		color = normalized
	}

	if id, ok := pane.board.Editing(); ok {
		if !pane.board.CommitEdit(m.labelInput.Value(), color) {
			m.errorMessage = "Marker no longer exists"
		} else if mk, ok := pane.board.Get(id); ok {
			m.successMessage = fmt.Sprintf("Updated %s", mk.Label)
			m.log.Debug("marker edited", zapMarker(mk)...)
		}
		m.closeForm()
		return
	}

	mk, ok := pane.board.PlaceAtPending(m.labelInput.Value(), color)
	if !ok {
		// Blank labels never create a marker; keep the form open.
		m.errorMessage = fmt.Sprintf("Enter a %s name", layout.Noun)
		return
	}
	pane.selected = mk.ID
	pane.concern = 0
	m.successMessage = fmt.Sprintf("Added %s", mk.Label)
	m.errorMessage = ""
	m.log.Debug("marker placed", zapMarker(mk)...)
	m.closeForm()
}

func (m *model) openConcernForm() {
	m.endDrags()
	m.concernInput.SetValue("")
	m.concernType = diagram.ConcernImportant
	m.concernInput.Focus()
	m.mode = ModeConcern
	m.errorMessage = ""
}

func (m model) handleConcernKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pane := m.currentPane()
	switch msg.String() {
	case "esc":
		m.closeForm()
		return m, nil
	case "ctrl+t":
		m.concernType = m.concernType.Toggle()
		return m, nil
	case "ctrl+v":
		text, err := readClipboardText()
		if err != nil {
			m.errorMessage = fmt.Sprintf("Paste failed: %s", err.Error())
			return m, nil
		}
		m.concernInput.SetValue(m.concernInput.Value() + cleanClipboardText(text))
		m.concernInput.CursorEnd()
		return m, nil
	case "enter":
		mk, ok := pane.selectedMarker()
		if !ok {
			m.closeForm()
			return m, nil
		}
		c, ok := pane.board.AddConcern(mk.ID, m.concernInput.Value(), m.concernType)
		if !ok {
			m.errorMessage = "Enter the concern text"
			return m, nil
		}
		if updated, ok := pane.board.Get(mk.ID); ok {
			pane.concern = len(updated.Concerns) - 1
		}
		m.successMessage = fmt.Sprintf("Added %s concern", c.Type)
		m.errorMessage = ""
		m.closeForm()
		return m, nil
	}

	var cmd tea.Cmd
	m.concernInput, cmd = m.concernInput.Update(msg)
	return m, cmd
}

func (m model) handleMoveKey(key string) (tea.Model, tea.Cmd) {
	pane := m.currentPane()
	switch {
	case isMoveKey(key):
		m.handleMarkerMove(key)
	case key == "enter":
		m.mode = ModeNormal
		if mk, ok := pane.selectedMarker(); ok {
			m.log.Debug("marker moved", zapMarker(mk)...)
		}
	case key == "esc":
		if mk, ok := pane.selectedMarker(); ok {
			pane.board.Move(mk.ID, pane.originalMove)
		}
		m.mode = ModeNormal
	}
	return m, nil
}

// save writes the pane's board to its slot.
func (m *model) save(pane *Pane) {
	if err := diagram.Save(m.ctx, m.store, pane.board); err != nil {
		m.errorMessage = fmt.Sprintf("Error saving: %s", err.Error())
		m.successMessage = ""
		m.log.Error("save failed", zap.String("diagram", pane.board.Layout().Name), zap.Error(err))
		return
	}
	m.successMessage = fmt.Sprintf("Saved %d %ss", pane.board.Len(), pane.board.Layout().Noun)
	m.errorMessage = ""
	m.log.Info("saved diagram",
		zap.String("diagram", pane.board.Layout().Name),
		zap.Int("markers", pane.board.Len()))
}

func (m *model) copySummary(pane *Pane) {
	text := markerSummary(pane.board.Layout(), pane.board.Markers())
	if err := writeClipboardText(text); err != nil {
		m.errorMessage = fmt.Sprintf("Copy failed: %s", err.Error())
		return
	}
	m.successMessage = "Copied to clipboard"
	m.errorMessage = ""
}
