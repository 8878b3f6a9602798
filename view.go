package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"archhelper/internal/diagram"
)

var (
	navActive   = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	navInactive = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
	panelStyle  = lipgloss.NewStyle().
			Width(panelWidth-2).
			PaddingLeft(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("240"))
	headingStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#2196f3"))
	importantChip = lipgloss.NewStyle().Foreground(lipgloss.Color("#1b5e20")).Background(lipgloss.Color("#e8f5e9")).Padding(0, 1)
	ignoredChip   = lipgloss.NewStyle().Foreground(lipgloss.Color("#880e4f")).Background(lipgloss.Color("#fce4ec")).Padding(0, 1)
)

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	var body string
	switch {
	case m.view.isDiagram():
		body = m.diagramView()
	case m.view == ViewStakeholders:
		body = m.stakeholdersView()
	default:
		body = m.tables[m.view].View()
	}

	bodyHeight := m.height - 2
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.NewStyle().MaxHeight(bodyHeight).Height(bodyHeight).Render(body)

	return strings.Join([]string{m.navBar(), body, m.statusLine()}, "\n")
}

func (m model) navBar() string {
	items := make([]string, 0, numViews)
	for v := View(0); v < numViews; v++ {
		label := fmt.Sprintf("%d %s", v+1, viewTitles[v])
		if v == m.view {
			items = append(items, navActive.Render(label))
		} else {
			items = append(items, navInactive.Render(label))
		}
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(lipgloss.JoinHorizontal(lipgloss.Top, items...))
}

func (m model) diagramView() string {
	pane := m.currentPane()
	surface := m.surfaceRect()
	canvas := drawSurface(surfaceView{
		layout:      pane.board.Layout(),
		markers:     pane.board.Markers(),
		pending:     pane.board.Pending(),
		selected:    pane.selected,
		showPending: true,
	}, surface, m.mapper(pane))

	chart := strings.Join(canvas.Render(), "\n")
	panel := panelStyle.Height(int(surface.Height)).Render(m.panelView(pane))
	return lipgloss.JoinHorizontal(lipgloss.Top, chart, panel)
}

func (m model) panelView(pane *Pane) string {
	layout := pane.board.Layout()
	var sb strings.Builder

	sb.WriteString(headingStyle.Render(layout.Title))
	sb.WriteString("\n")
	p := pane.board.Pending()
	fmt.Fprintf(&sb, "Pending: (%.1f, %.1f)", p.X, p.Y)
	if z := layout.Classify(p); z != "" {
		if zone, ok := layout.Zones.Lookup(z); ok {
			sb.WriteString(" " + mutedStyle.Render(zone.Title))
		}
	}
	sb.WriteString("\n\n")

	switch m.mode {
	case ModeForm:
		title := "New " + layout.Noun
		if _, ok := pane.board.Editing(); ok {
			title = "Edit " + layout.Noun
		}
		sb.WriteString(headingStyle.Render(title))
		sb.WriteString("\n")
		sb.WriteString("Label " + m.labelInput.View() + "\n")
		sb.WriteString("Color " + m.colorInput.View() + "\n")
		sb.WriteString(mutedStyle.Render("enter save · tab field · esc cancel"))
		sb.WriteString("\n\n")
	case ModeConcern:
		sb.WriteString(m.concernFormView())
	}

	markers := pane.board.Markers()
	sb.WriteString(headingStyle.Render(fmt.Sprintf("%ss (%d)", capitalize(layout.Noun), len(markers))))
	sb.WriteString("\n")
	if len(markers) == 0 {
		sb.WriteString(mutedStyle.Render("press a or click to place"))
		sb.WriteString("\n")
	}
	for _, mk := range markers {
		line := fmt.Sprintf("%s (%.1f, %.1f)", mk.Label, mk.Position.X, mk.Position.Y)
		if z, ok := layout.Zones.Lookup(mk.Zone); ok {
			line += " " + z.Title
		}
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(diagram.NormalizeColor(mk.Color, layout.DefaultColor))).Render("●")
		if mk.ID == pane.selected {
			sb.WriteString(dot + " " + selectedStyle.Render(line))
		} else {
			sb.WriteString(dot + " " + line)
		}
		sb.WriteString("\n")
	}

	if layout.Concerns {
		if mk, ok := pane.selectedMarker(); ok {
			sb.WriteString("\n")
			sb.WriteString(headingStyle.Render("Concerns of " + mk.Label))
			sb.WriteString("\n")
			sb.WriteString(m.concernList(pane, mk))
		}
	}
	return sb.String()
}

func (m model) concernFormView() string {
	var sb strings.Builder
	sb.WriteString(headingStyle.Render("New concern"))
	sb.WriteString("\n")
	sb.WriteString(m.concernInput.View())
	sb.WriteString("\n")
	sb.WriteString("Type: " + chip(m.concernType, string(m.concernType)))
	sb.WriteString("\n")
	sb.WriteString(mutedStyle.Render("enter add · ctrl+t type · esc cancel"))
	sb.WriteString("\n\n")
	return sb.String()
}

func chip(t diagram.ConcernType, text string) string {
	if t == diagram.ConcernIgnored {
		return ignoredChip.Render(text)
	}
	return importantChip.Render(text)
}

func (m model) concernList(pane *Pane, mk diagram.Marker) string {
	if len(mk.Concerns) == 0 {
		return mutedStyle.Render("none yet, press i") + "\n"
	}
	var sb strings.Builder
	for i, c := range mk.Concerns {
		cursor := "  "
		if mk.ID == pane.selected && i == pane.concern {
			cursor = "▸ "
		}
		sb.WriteString(cursor + chip(c.Type, c.Text) + "\n")
	}
	return sb.String()
}

// stakeholdersView lists every stakeholder of the influence matrix with
// its concerns.
func (m model) stakeholdersView() string {
	pane := m.currentPane()
	layout := pane.board.Layout()
	markers := pane.board.Markers()

	var sb strings.Builder
	sb.WriteString(headingStyle.Render("Stakeholders and concerns"))
	sb.WriteString("\n\n")
	if m.mode == ModeConcern {
		sb.WriteString(m.concernFormView())
	}
	if len(markers) == 0 {
		sb.WriteString(mutedStyle.Render("No stakeholders yet. Place them on the influence matrix (2)."))
		return sb.String()
	}
	for _, mk := range markers {
		name := mk.Label
		if z, ok := layout.Zones.Lookup(mk.Zone); ok {
			name += "  " + mutedStyle.Render(z.Title)
		}
		if mk.ID == pane.selected {
			sb.WriteString(selectedStyle.Render("▸ ") + headingStyle.Render(name))
		} else {
			sb.WriteString("  " + name)
		}
		sb.WriteString("\n")
		sb.WriteString(indent(m.concernList(pane, mk), "    "))
		sb.WriteString("\n")
	}
	sb.WriteString(mutedStyle.Render("tab select · i add concern · </> pick · x delete · s save"))
	return sb.String()
}

func (m model) statusLine() string {
	var status string
	switch m.mode {
	case ModeConfirm:
		var message string
		switch m.confirmAction {
		case ConfirmDeleteMarker:
			message = "Delete this marker? (y/n)"
		case ConfirmDeleteConcern:
			message = "Delete this concern? (y/n)"
		case ConfirmQuit:
			message = "Quit with unsaved changes? (y/n)"
		}
		return fmt.Sprintf("Mode: CONFIRM | %s", message)
	default:
		status = fmt.Sprintf("Mode: %s", m.modeString())
	}

	if pane := m.currentPane(); pane != nil && pane.board.Dirty() {
		status += " | modified"
	}
	if m.successMessage != "" {
		status += fmt.Sprintf(" | %s", m.successMessage)
	}
	if m.errorMessage != "" {
		status += fmt.Sprintf(" | ERROR: %s", m.errorMessage)
	} else if m.successMessage == "" {
		status += " | ? for help | q to quit"
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeNormal:
		return "NORMAL"
	case ModeForm:
		return "FORM"
	case ModeConcern:
		return "CONCERN"
	case ModeMove:
		return "MOVE"
	case ModeConfirm:
		return "CONFIRM"
	default:
		return "UNKNOWN"
	}
}

func (m model) helpView() string {
	helpLines := []string{
		"Architecture Helper",
		"===================",
		"",
		"Views:",
		"  1-5 / { }        Jump to a view / previous, next view",
		"",
		"Charts:",
		"  click            Set the pending point (or grab a marker)",
		"  drag             Move a marker",
		"  h/j/k/l, arrows  Nudge the pending point (Shift for 2x)",
		"  a, enter         Add a marker at the pending point",
		"  tab / shift+tab  Select next / previous marker",
		"  e                Edit selected marker",
		"  m                Move selected marker with keys (enter keep, esc restore)",
		"  c                Cycle selected marker color",
		"  d                Delete selected marker",
		"  s                Save",
		"  S                Export image",
		"  y                Copy marker list to clipboard",
		"  ctrl+v           Paste into the focused field",
		"",
		"Influence matrix and stakeholders:",
		"  i                Add a concern to the selected stakeholder",
		"  ctrl+t           Toggle important / ignored while adding",
		"  < / >            Pick a concern",
		"  x                Delete the picked concern",
		"",
		"Tables:",
		"  up/down          Move between characteristics",
		"  space            Count / uncount the characteristic",
		"",
		"  ? / esc          Close help",
		"  q                Quit",
	}
	return strings.Join(helpLines, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
