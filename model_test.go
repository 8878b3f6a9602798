package main

import (
	"context"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"archhelper/internal/config"
	"archhelper/internal/diagram"
	"archhelper/internal/storage"
)

func newTestModel(t *testing.T, opts ...func(*config.Config)) model {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewFileStore(dir)
	require.NoError(t, err)

	c := config.DefaultConfig()
	c.DataDir = dir
	c.ExportDir = t.TempDir()
	for _, opt := range opts {
		opt(c)
	}

	m, err := newModel(context.Background(), c, store, zaptest.NewLogger(t))
	require.NoError(t, err)
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
}

func update(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm
}

func keyMsg(key string) tea.KeyMsg {
	switch key {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
}

func press(t *testing.T, m model, keys ...string) model {
	t.Helper()
	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}
	return m
}

func cellOf(m model, pane *Pane, p diagram.Point) (int, int) {
	s := m.mapper(pane).ToScreen(p, m.surfaceRect())
	return int(math.Floor(s.X)), int(math.Floor(s.Y))
}

func TestNewModelStartView(t *testing.T) {
	m := newTestModel(t, func(c *config.Config) { c.StartView = "databases" })
	assert.Equal(t, ViewDatabases, m.view)
	assert.Equal(t, ModeNormal, m.mode)
	assert.Len(t, m.panes, 2)
	assert.Equal(t, 0, m.panes[ViewDomainChart].board.Len())
}

func TestSwitchViews(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, ViewDomainChart, m.view)

	m = press(t, m, "2")
	assert.Equal(t, ViewInfluenceMatrix, m.view)
	m = press(t, m, "}")
	assert.Equal(t, ViewStakeholders, m.view)
	assert.Same(t, m.panes[ViewInfluenceMatrix], m.currentPane())

	m = press(t, m, "{", "{", "{")
	assert.Equal(t, ViewDatabases, m.view)
	assert.Nil(t, m.currentPane())
}

func TestAddMarkerThroughForm(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a")
	require.Equal(t, ModeForm, m.mode)

	m = press(t, m, "Billing", "enter")
	assert.Equal(t, ModeNormal, m.mode)

	pane := m.panes[ViewDomainChart]
	markers := pane.board.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, "Billing", markers[0].Label)
	assert.Equal(t, diagram.Point{X: 2, Y: 1.5}, markers[0].Position)
	assert.Equal(t, "core", markers[0].Zone)
	assert.Equal(t, "#ffcc00", markers[0].Color)
	assert.Equal(t, markers[0].ID, pane.selected)
	assert.True(t, pane.board.Dirty())
	assert.Contains(t, m.successMessage, "Added Billing")
}

func TestBlankLabelKeepsFormOpen(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a", "   ", "enter")
	assert.Equal(t, ModeForm, m.mode)
	assert.NotEmpty(t, m.errorMessage)
	assert.Equal(t, 0, m.panes[ViewDomainChart].board.Len())

	m = press(t, m, "esc")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 0, m.panes[ViewDomainChart].board.Len())
}

func TestInvalidColorRejected(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "a", "Search", "tab", "zzz", "enter")
	assert.Equal(t, ModeForm, m.mode)
	assert.Contains(t, m.errorMessage, "Invalid color")

	m.colorInput.SetValue("#0f0")
	m = press(t, m, "enter")
	require.Equal(t, ModeNormal, m.mode)
	markers := m.panes[ViewDomainChart].board.Markers()
	require.Len(t, markers, 1)
	assert.Equal(t, "#00ff00", markers[0].Color)
}

func TestEditSelectedMarker(t *testing.T) {
	m := newTestModel(t)
	pane := m.panes[ViewDomainChart]
	mk, ok := pane.board.Place(diagram.Point{X: 0.5, Y: 0.5}, "Auth", "")
	require.True(t, ok)
	pane.selected = mk.ID

	m = press(t, m, "e")
	require.Equal(t, ModeForm, m.mode)
	assert.Equal(t, "Auth", m.labelInput.Value())

	m.labelInput.SetValue("Identity")
	m = press(t, m, "enter")
	assert.Equal(t, ModeNormal, m.mode)
	got, ok := pane.board.Get(mk.ID)
	require.True(t, ok)
	assert.Equal(t, "Identity", got.Label)
	assert.Equal(t, 1, pane.board.Len())
}

func TestCycleSelection(t *testing.T) {
	m := newTestModel(t)
	pane := m.panes[ViewDomainChart]
	var ids []string
	for _, label := range []string{"A", "B", "C"} {
		mk, ok := pane.board.Place(diagram.Point{X: 1, Y: 1}, label, "")
		require.True(t, ok)
		ids = append(ids, mk.ID)
	}

	m = press(t, m, "tab")
	assert.Equal(t, ids[0], pane.selected)
	m = press(t, m, "tab")
	assert.Equal(t, ids[1], pane.selected)
	m = press(t, m, "shift+tab", "shift+tab")
	assert.Equal(t, ids[2], pane.selected)
}

func TestDeleteWithConfirmation(t *testing.T) {
	m := newTestModel(t)
	pane := m.panes[ViewDomainChart]
	mk, _ := pane.board.Place(diagram.Point{X: 1, Y: 1}, "Ledger", "")
	pane.selected = mk.ID

	m = press(t, m, "d")
	require.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, ConfirmDeleteMarker, m.confirmAction)
	assert.Contains(t, m.statusLine(), "Delete this marker?")

	m = press(t, m, "n")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 1, pane.board.Len())

	m = press(t, m, "d", "y")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 0, pane.board.Len())
	assert.Empty(t, pane.selected)
}

func TestDeleteWithoutConfirmation(t *testing.T) {
	m := newTestModel(t, func(c *config.Config) { c.Confirmations = false })
	pane := m.panes[ViewDomainChart]
	mk, _ := pane.board.Place(diagram.Point{X: 1, Y: 1}, "Ledger", "")
	pane.selected = mk.ID

	m = press(t, m, "d")
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, 0, pane.board.Len())
}

func TestMoveModeRestoresOnEscape(t *testing.T) {
	m := newTestModel(t)
	pane := m.panes[ViewDomainChart]
	mk, _ := pane.board.Place(diagram.Point{X: 1, Y: 1}, "Catalog", "")
	pane.selected = mk.ID

	m = press(t, m, "m")
	require.Equal(t, ModeMove, m.mode)
	m = press(t, m, "l")
	got, _ := pane.board.Get(mk.ID)
	assert.InDelta(t, 1.2, got.Position.X, 1e-9)

	m = press(t, m, "esc")
	assert.Equal(t, ModeNormal, m.mode)
	got, _ = pane.board.Get(mk.ID)
	assert.Equal(t, diagram.Point{X: 1, Y: 1}, got.Position)

	m = press(t, m, "m", "K", "enter")
	assert.Equal(t, ModeNormal, m.mode)
	got, _ = pane.board.Get(mk.ID)
	assert.InDelta(t, 1.3, got.Position.Y, 1e-9)
}

func TestNudgePending(t *testing.T) {
	m := newTestModel(t)
	pane := m.panes[ViewDomainChart]

	m = press(t, m, "L", "j")
	p := pane.board.Pending()
	assert.InDelta(t, 2.4, p.X, 1e-9)
	assert.InDelta(t, 1.35, p.Y, 1e-9)

	for i := 0; i < 50; i++ {
		m = press(t, m, "h")
	}
	assert.Equal(t, 0.0, pane.board.Pending().X)
}

func TestMouseDragMovesMarker(t *testing.T) {
	m := newTestModel(t)
	pane := m.panes[ViewDomainChart]
	mk, _ := pane.board.Place(diagram.Point{X: 1, Y: 1}, "Orders", "")

	x, y := cellOf(m, pane, mk.Position)
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	id, dragging := pane.board.Dragging()
	require.True(t, dragging)
	assert.Equal(t, mk.ID, id)
	assert.Equal(t, mk.ID, pane.selected)

	tx, ty := cellOf(m, pane, diagram.Point{X: 3, Y: 2})
	m = update(t, m, tea.MouseMsg{X: tx, Y: ty, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	got, _ := pane.board.Get(mk.ID)
	sx, sy := m.mapper(pane).Scale(m.surfaceRect())
	assert.InDelta(t, 3, got.Position.X, sx)
	assert.InDelta(t, 2, got.Position.Y, sy)
	assert.Equal(t, "core", got.Zone)

	// Motion past the surface clamps into the extent.
	m = update(t, m, tea.MouseMsg{X: 500, Y: -5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	got, _ = pane.board.Get(mk.ID)
	assert.Equal(t, diagram.Point{X: 4, Y: 3}, got.Position)

	m = update(t, m, tea.MouseMsg{X: tx, Y: ty, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	_, dragging = pane.board.Dragging()
	assert.False(t, dragging)
}

func TestDragEndsOutsideNormalMode(t *testing.T) {
	grab := func(t *testing.T) (model, *Pane, diagram.Marker) {
		m := newTestModel(t)
		pane := m.panes[ViewDomainChart]
		mk, _ := pane.board.Place(diagram.Point{X: 1, Y: 1}, "Orders", "")
		x, y := cellOf(m, pane, mk.Position)
		m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		_, dragging := pane.board.Dragging()
		require.True(t, dragging)
		return m, pane, mk
	}

	t.Run("release in another view", func(t *testing.T) {
		m, pane, mk := grab(t)
		m = press(t, m, "4")
		m = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
		_, dragging := pane.board.Dragging()
		assert.False(t, dragging)

		m = press(t, m, "1")
		x, y := cellOf(m, pane, diagram.Point{X: 3.5, Y: 2.5})
		m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
		m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
		got, _ := pane.board.Get(mk.ID)
		assert.Equal(t, diagram.Point{X: 1, Y: 1}, got.Position)
	})

	t.Run("switching view ends the drag", func(t *testing.T) {
		m, pane, _ := grab(t)
		press(t, m, "}")
		_, dragging := pane.board.Dragging()
		assert.False(t, dragging)
	})

	t.Run("release in form mode", func(t *testing.T) {
		m, pane, mk := grab(t)
		m = press(t, m, "a")
		require.Equal(t, ModeForm, m.mode)
		_, dragging := pane.board.Dragging()
		assert.False(t, dragging)

		m = update(t, m, tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
		m = press(t, m, "esc")
		x, y := cellOf(m, pane, diagram.Point{X: 3.5, Y: 2.5})
		update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
		got, _ := pane.board.Get(mk.ID)
		assert.Equal(t, diagram.Point{X: 1, Y: 1}, got.Position)
	})
}

func TestMouseClickSetsPending(t *testing.T) {
	m := newTestModel(t)
	pane := m.panes[ViewDomainChart]

	x, y := cellOf(m, pane, diagram.Point{X: 0.5, Y: 2.5})
	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	sx, sy := m.mapper(pane).Scale(m.surfaceRect())
	p := pane.board.Pending()
	assert.InDelta(t, 0.5, p.X, sx)
	assert.InDelta(t, 2.5, p.Y, sy)
	assert.Equal(t, 0, pane.board.Len())
	_, dragging := pane.board.Dragging()
	assert.False(t, dragging)

	// Clicks on the side panel are ignored.
	m = update(t, m, tea.MouseMsg{X: 90, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	assert.Equal(t, p, pane.board.Pending())
}

func TestConcernFlow(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "3")
	pane := m.currentPane()
	mk, _ := pane.board.Place(diagram.Point{X: 1.5, Y: 1.5}, "CFO", "")

	m = press(t, m, "tab", "i")
	require.Equal(t, ModeConcern, m.mode)
	m = press(t, m, "uptime", "ctrl+t", "enter")
	assert.Equal(t, ModeNormal, m.mode)

	got, _ := pane.board.Get(mk.ID)
	require.Len(t, got.Concerns, 1)
	assert.Equal(t, "uptime", got.Concerns[0].Text)
	assert.Equal(t, diagram.ConcernIgnored, got.Concerns[0].Type)
	assert.Contains(t, m.View(), "uptime")

	m = press(t, m, "x")
	require.Equal(t, ModeConfirm, m.mode)
	m = press(t, m, "y")
	got, _ = pane.board.Get(mk.ID)
	assert.Empty(t, got.Concerns)
}

func TestDomainChartHasNoConcerns(t *testing.T) {
	m := newTestModel(t)
	pane := m.panes[ViewDomainChart]
	mk, _ := pane.board.Place(diagram.Point{X: 1, Y: 1}, "Orders", "")
	pane.selected = mk.ID

	m = press(t, m, "i")
	assert.Equal(t, ModeNormal, m.mode)
}

func TestTableToggleUpdatesTotals(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "4")
	tp := m.tables[ViewArchitectures]

	totals := func() []string {
		rows := tp.table.Rows()
		return rows[len(rows)-1][2:]
	}
	for _, v := range totals() {
		assert.Equal(t, "-", v)
	}

	first := tp.data.Characteristics[0]
	m = press(t, m, "space")
	assert.True(t, tp.selection.Selected(first))
	want, ok := tp.data.Score(tp.data.Entities[0], first)
	require.True(t, ok)
	assert.Equal(t, strconv.Itoa(want), totals()[0])
	assert.Equal(t, "[x]", tp.table.Rows()[0][0])

	m = press(t, m, "x")
	assert.False(t, tp.selection.Selected(first))
	assert.Equal(t, "-", totals()[0])
}

func TestTableIgnoresUnselectableRows(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, "5")
	tp := m.tables[ViewDatabases]

	idx := -1
	for i, c := range tp.data.Characteristics {
		if !tp.data.Selectable(c) {
			idx = i
		}
	}
	require.GreaterOrEqual(t, idx, 0)
	tp.table.SetCursor(idx)

	m = press(t, m, "space")
	assert.Equal(t, 0, tp.selection.Count())
	assert.Contains(t, tp.View(), "not counted")
}

func TestSavePersistsBoard(t *testing.T) {
	m := newTestModel(t)
	pane := m.panes[ViewDomainChart]
	mk, _ := pane.board.Place(diagram.Point{X: 3, Y: 2}, "Pricing", "#123456")

	m = press(t, m, "s")
	assert.False(t, pane.board.Dirty())
	assert.Equal(t, "Saved 1 domains", m.successMessage)

	loaded := diagram.Load(context.Background(), m.store, diagram.DomainChart(), m.log)
	require.Equal(t, 1, loaded.Len())
	got := loaded.Markers()[0]
	assert.Equal(t, mk.ID, got.ID)
	assert.Equal(t, mk.Position, got.Position)
	assert.Equal(t, "#123456", got.Color)
}

func TestQuitAsksWhenDirty(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	m = next.(model)

	m.panes[ViewDomainChart].board.Place(diagram.Point{X: 1, Y: 1}, "X", "")
	m = press(t, m, "q")
	require.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, ConfirmQuit, m.confirmAction)

	_, cmd = m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestExportFromUI(t *testing.T) {
	m := newTestModel(t)
	m.panes[ViewDomainChart].board.Place(diagram.Point{X: 3, Y: 2}, "Pricing", "")

	next, cmd := m.Update(keyMsg("S"))
	require.NotNil(t, cmd)
	m = next.(model)
	assert.True(t, m.exporting)

	// A second request while running is refused.
	next, again := m.Update(keyMsg("S"))
	assert.Nil(t, again)
	m = next.(model)

	msg := cmd()
	done, ok := msg.(exportDoneMsg)
	require.True(t, ok)
	require.NoError(t, done.err)
	_, err := os.Stat(done.path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(done.path, "domain-chart.png"))

	m = update(t, m, msg)
	assert.False(t, m.exporting)
	assert.Contains(t, m.successMessage, done.path)
}

func TestViewRendersChrome(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	assert.Contains(t, out, "Domain Chart")
	assert.Contains(t, out, "Mode: NORMAL")
	assert.Contains(t, out, "Pending: (2.0, 1.5)")

	m = press(t, m, "?")
	assert.Contains(t, m.View(), "Architecture Helper")
	m = press(t, m, "esc")
	assert.False(t, m.help)
}

func plainRows(c *Canvas) []string {
	rows := make([]string, c.height)
	for y, row := range c.cells {
		var sb strings.Builder
		for _, cl := range row {
			if cl.ch != wideTail {
				sb.WriteRune(cl.ch)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func TestDrawSurface(t *testing.T) {
	layout := diagram.DomainChart()
	surface := diagram.Rect{Width: 60, Height: 24}
	mapper := layout.Mapper(diagram.Padding{X: surfacePadX, Y: surfacePadY})
	markers := []diagram.Marker{{ID: "m1", Label: "Billing", Position: diagram.Point{X: 3.5, Y: 2.5}}}

	c := drawSurface(surfaceView{
		layout:      layout,
		markers:     markers,
		pending:     layout.Pending,
		selected:    "m1",
		showPending: true,
	}, surface, mapper)
	require.Equal(t, 60, c.width)
	require.Equal(t, 24, c.height)

	text := strings.Join(plainRows(c), "\n")
	for _, want := range []string{"CORE", "SUPPORTING", "GENERIC", "Billing", "◉", "✚", "└", "Model Complexity", "Business Differentiation"} {
		assert.Contains(t, text, want)
	}

	s := mapper.ToScreen(diagram.Point{X: 2.5, Y: 1.5}, surface)
	assert.Equal(t, "#76A993", c.cells[int(s.Y)][int(s.X)].style.bg)
	s = mapper.ToScreen(diagram.Point{X: 0.5, Y: 2.5}, surface)
	assert.Equal(t, "#A2A2A2", c.cells[int(s.Y)][int(s.X)].style.bg)
	assert.Empty(t, c.cells[0][c.width-1].style.bg)
}

func TestCanvasWideRunesKeepRowWidth(t *testing.T) {
	width := func(c *Canvas) int {
		return lipgloss.Width(c.Render()[0])
	}

	c := NewCanvas(10, 1)
	c.writeString(0, 0, "日本x", cellStyle{fg: "#ffffff"})
	assert.Equal(t, 10, width(c))
	assert.Equal(t, "日本x     ", plainRows(c)[0])

	// Overwriting either half of a wide rune blanks the other half.
	c.writeString(1, 0, "a", cellStyle{})
	assert.Equal(t, 10, width(c))
	assert.Equal(t, " a本x     ", plainRows(c)[0])
	c.writeString(3, 0, "b", cellStyle{})
	assert.Equal(t, 10, width(c))
	assert.Equal(t, " a bx     ", plainRows(c)[0])

	// A wide rune in the last column does not fit.
	c = NewCanvas(4, 1)
	c.writeString(3, 0, "日", cellStyle{})
	assert.Equal(t, 4, width(c))
	assert.Equal(t, "    ", plainRows(c)[0])

	// Combining marks take no cell of their own.
	c = NewCanvas(4, 1)
	c.writeString(0, 0, "e\u0301z", cellStyle{})
	assert.Equal(t, 4, width(c))
	assert.Equal(t, "ez  ", plainRows(c)[0])
}

func TestMoveDelta(t *testing.T) {
	e := diagram.Extent{MaxX: 4, MaxY: 3}
	tests := []struct {
		key    string
		dx, dy float64
	}{
		{"h", -0.2, 0},
		{"right", 0.2, 0},
		{"k", 0, 0.15},
		{"down", 0, -0.15},
		{"L", 0.4, 0},
		{"shift+up", 0, 0.3},
		{"z", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			dx, dy := moveDelta(tt.key, getMoveSpeed(tt.key), e)
			assert.InDelta(t, tt.dx, dx, 1e-9)
			assert.InDelta(t, tt.dy, dy, 1e-9)
		})
	}
	assert.False(t, isMoveKey("a"))
	assert.True(t, isMoveKey("J"))
}

func TestCleanClipboardText(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"empty", "", ""},
		{"plain", "Order service", "Order service"},
		{"newlines", "line one\r\nline\ttwo\n", "line one line two"},
		{"rtf", "{\\rtf1 Hello}", "Hello"},
		{"rtf tables", `{\rtf1\ansi{\fonttbl\f0\fswiss Helvetica;}{\colortbl;\red255\green0\blue0;}\f0\pard Billing\par
Service}`, "Billing Service"},
		{"rtf escapes", `{\rtf1 caf\'e9 \{x\} a\\b}`, "café {x} a\\b"},
		{"rtf ignorable", `{\rtf1{\*\generator Cocoa;}Orders}`, "Orders"},
		{"control", "a\x07b", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanClipboardText(tt.in))
		})
	}
}

func TestMarkerSummary(t *testing.T) {
	l := diagram.InfluenceMatrix()
	out := markerSummary(l, []diagram.Marker{{
		Label:    "CFO",
		Position: diagram.Point{X: 1.5, Y: 1.5},
		Zone:     "manage-closely",
		Concerns: []diagram.Concern{{Text: "cost", Type: diagram.ConcernImportant}},
	}})
	assert.Equal(t, "Influence Matrix\n- CFO (1.5, 1.5) Manage Closely\n    [important] cost\n", out)
}
