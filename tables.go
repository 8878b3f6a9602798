package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"archhelper/internal/refdata"
)

const labelColumnWidth = 24

func newTablePane(data *refdata.Table, stars bool) *TablePane {
	cols := []table.Column{
		{Title: "", Width: 3},
		{Title: "Characteristic", Width: labelColumnWidth},
	}
	for _, e := range data.Entities {
		w := runewidth.StringWidth(data.Heading(e))
		if w < refdata.MaxScore+1 {
			w = refdata.MaxScore + 1
		}
		cols = append(cols, table.Column{Title: data.Heading(e), Width: w})
	}

	tp := &TablePane{
		data:      data,
		selection: refdata.NewSelection(),
		table: table.New(
			table.WithColumns(cols),
			table.WithFocused(true),
			table.WithHeight(len(data.Characteristics)+2),
		),
		stars: stars,
	}
	tp.updateRows()
	return tp
}

// updateRows rebuilds the grid and the trailing totals row.
func (tp *TablePane) updateRows() {
	var rows []table.Row
	for _, c := range tp.data.Characteristics {
		check := "   "
		if tp.data.Selectable(c) {
			check = "[ ]"
			if tp.selection.Selected(c) {
				check = "[x]"
			}
		}
		row := table.Row{check, tp.characteristicLabel(c)}
		for _, e := range tp.data.Entities {
			row = append(row, tp.cell(e, c))
		}
		rows = append(rows, row)
	}
	rows = append(rows, tp.totalsRow())
	tp.table.SetRows(rows)
}

func (tp *TablePane) characteristicLabel(c string) string {
	label := refdata.Label(c)
	if runewidth.StringWidth(label) > labelColumnWidth {
		label = runewidth.Truncate(label, labelColumnWidth, "…")
	}
	return label
}

func (tp *TablePane) cell(entity, c string) string {
	score, ok := tp.data.Score(entity, c)
	if !ok {
		return tp.data.Value(entity, c)
	}
	if tp.stars {
		return refdata.Stars(score)
	}
	return strconv.Itoa(score)
}

func (tp *TablePane) totalsRow() table.Row {
	label := "Selected"
	if tp.stars {
		label = fmt.Sprintf("Selected (%d)", tp.selection.Count())
	}
	row := table.Row{"", label}
	totals, ok := tp.data.Totals(tp.selection)
	for _, e := range tp.data.Entities {
		if !ok {
			row = append(row, "-")
			continue
		}
		row = append(row, strconv.Itoa(totals[e]))
	}
	return row
}

// current is the characteristic under the cursor, empty on the totals row.
func (tp *TablePane) current() string {
	i := tp.table.Cursor()
	if i < 0 || i >= len(tp.data.Characteristics) {
		return ""
	}
	return tp.data.Characteristics[i]
}

// toggleCurrent flips the characteristic under the cursor when it counts.
func (tp *TablePane) toggleCurrent() bool {
	c := tp.current()
	if c == "" || !tp.data.Selectable(c) {
		return false
	}
	tp.selection.Toggle(c)
	tp.updateRows()
	return true
}

func (tp *TablePane) setSize(width, height int) {
	tp.table.SetWidth(width)
	h := len(tp.data.Characteristics) + 2
	if h > height-3 {
		h = height - 3
	}
	if h < 3 {
		h = 3
	}
	tp.table.SetHeight(h)
}

func (m model) handleTableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tp := m.tables[m.view]
	if tp == nil {
		return m, nil
	}
	switch msg.String() {
	case " ", "space", "x":
		tp.toggleCurrent()
		return m, nil
	}
	var cmd tea.Cmd
	tp.table, cmd = tp.table.Update(msg)
	return m, cmd
}

var (
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	goodStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#4caf50"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff9800"))
	badStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f44336"))
)

func bandStyle(b refdata.Band) lipgloss.Style {
	switch b {
	case refdata.BandGood:
		return goodStyle
	case refdata.BandBad:
		return badStyle
	default:
		return mediumStyle
	}
}

func (tp *TablePane) View() string {
	var sb strings.Builder
	sb.WriteString(tp.table.View())
	sb.WriteString("\n")

	c := tp.current()
	if c == "" {
		sb.WriteString(descStyle.Render("space toggles a row; totals count selected rows only"))
		return sb.String()
	}

	sb.WriteString(lipgloss.NewStyle().Bold(true).Render(refdata.Label(c)))
	if desc := tp.data.Description(c); desc != "" {
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render(desc))
	}
	if !tp.data.Selectable(c) {
		sb.WriteString("  ")
		sb.WriteString(descStyle.Render("(shown only, not counted)"))
	}

	byBand := map[refdata.Band][]string{}
	for _, e := range tp.data.Entities {
		if s, ok := tp.data.Score(e, c); ok {
			b := refdata.BandOf(s)
			byBand[b] = append(byBand[b], tp.data.Heading(e))
		}
	}
	for _, b := range []refdata.Band{refdata.BandGood, refdata.BandMedium, refdata.BandBad} {
		if len(byBand[b]) == 0 {
			continue
		}
		sb.WriteString("\n")
		sb.WriteString(bandStyle(b).Render(fmt.Sprintf("%-6s %s", b+":", strings.Join(byBand[b], ", "))))
	}
	return sb.String()
}
