package main

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"archhelper/internal/diagram"
)

type cellStyle struct {
	fg   string
	bg   string
	bold bool
}

type cell struct {
	ch    rune
	style cellStyle
}

// Canvas is a grid of styled terminal cells the diagram surface is drawn
// onto before it is turned into lines.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	cells := make([][]cell, height)
	for y := range cells {
		cells[y] = make([]cell, width)
		for x := range cells[y] {
			cells[y][x] = cell{ch: ' '}
		}
	}
	return &Canvas{width: width, height: height, cells: cells}
}

func (c *Canvas) isValidPos(x, y int) bool {
	return y >= 0 && y < c.height && x >= 0 && x < c.width
}

// wideTail marks the cell covered by the right half of a double-width rune.
// Render emits nothing for it.
const wideTail rune = -1

// set writes a rune, keeping the existing background when style has none.
// A double-width rune takes the next cell too; one that does not fit at the
// right edge is replaced by a space.
func (c *Canvas) set(x, y int, ch rune, style cellStyle) {
	if !c.isValidPos(x, y) {
		return
	}
	wide := runewidth.RuneWidth(ch) == 2
	if wide && x+1 >= c.width {
		ch, wide = ' ', false
	}
	c.unpair(x, y)
	if wide {
		c.unpair(x+1, y)
	}
	if style.bg == "" {
		style.bg = c.cells[y][x].style.bg
	}
	c.cells[y][x] = cell{ch: ch, style: style}
	if wide {
		c.cells[y][x+1] = cell{ch: wideTail, style: style}
	}
}

// unpair blanks the other half of a double-width rune overlapping (x, y)
// before that cell is overwritten.
func (c *Canvas) unpair(x, y int) {
	row := c.cells[y]
	if row[x].ch == wideTail && x > 0 {
		row[x-1].ch = ' '
	}
	if x+1 < c.width && row[x+1].ch == wideTail {
		row[x+1].ch = ' '
	}
}

func (c *Canvas) fill(x, y int, bg string) {
	if c.isValidPos(x, y) {
		c.cells[y][x].style.bg = bg
	}
}

func (c *Canvas) writeString(x, y int, s string, style cellStyle) {
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		c.set(x, y, r, style)
		x += w
	}
}

// Render turns the grid into lines, one lipgloss span per run of equally
// styled cells.
func (c *Canvas) Render() []string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var line strings.Builder
		var run []rune
		current := row[0].style
		flush := func() {
			if len(run) == 0 {
				return
			}
			line.WriteString(current.lipgloss().Render(string(run)))
			run = run[:0]
		}
		for _, cl := range row {
			if cl.ch == wideTail {
				continue
			}
			if cl.style != current {
				flush()
				current = cl.style
			}
			run = append(run, cl.ch)
		}
		flush()
		lines[y] = line.String()
	}
	return lines
}

func (s cellStyle) lipgloss() lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.fg != "" {
		st = st.Foreground(lipgloss.Color(s.fg))
	}
	if s.bg != "" {
		st = st.Background(lipgloss.Color(s.bg))
	}
	if s.bold {
		st = st.Bold(true)
	}
	return st
}

const (
	inkColor     = "#212121"
	axisColor    = "#9e9e9e"
	pendingColor = "#e91e63"
)

// surfaceView is everything drawSurface needs from one pane.
type surfaceView struct {
	layout      diagram.Layout
	markers     []diagram.Marker
	pending     diagram.Point
	selected    string
	showPending bool
}

// drawSurface renders a diagram onto a canvas the size of surface. The
// surface Left/Top offset only matters to the mapper.
func drawSurface(v surfaceView, surface diagram.Rect, mapper diagram.Mapper) *Canvas {
	c := NewCanvas(int(surface.Width), int(surface.Height))
	l := v.layout

	cellAt := func(p diagram.Point) (int, int) {
		s := mapper.ToScreen(l.Extent.Clamp(p), surface)
		x := int(math.Floor(s.X - surface.Left))
		y := int(math.Floor(s.Y - surface.Top))
		if x >= c.width {
			x = c.width - 1
		}
		if y >= c.height {
			y = c.height - 1
		}
		return x, y
	}

	// Zone backgrounds, sampled at cell centers.
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			at := diagram.Point{X: surface.Left + float64(x) + 0.5, Y: surface.Top + float64(y) + 0.5}
			if !mapper.InPlot(at, surface) {
				continue
			}
			if z, ok := l.Zones.Classify(mapper.ToLogical(at, surface), l.Extent); ok {
				c.fill(x, y, z.Color)
			}
		}
	}

	for _, z := range l.Zones {
		x, y := cellAt(z.Anchor)
		x -= runewidth.StringWidth(z.Title) / 2
		c.writeString(x, y, z.Title, cellStyle{fg: inkColor, bold: true})
	}

	// Axes sit just outside the plot area.
	originX := int(mapper.Padding.X) - 1
	originY := c.height - int(mapper.Padding.Y)
	axis := cellStyle{fg: axisColor}
	for x := originX; x < c.width-int(mapper.Padding.X)+1; x++ {
		c.set(x, originY, '─', axis)
	}
	for y := int(mapper.Padding.Y) - 1; y < originY; y++ {
		c.set(originX, y, '│', axis)
	}
	c.set(originX, originY, '└', axis)
	c.set(c.width-int(mapper.Padding.X)+1, originY, '▶', axis)
	c.set(originX, int(mapper.Padding.Y)-1, '▲', axis)

	label := cellStyle{fg: axisColor}
	for i, tick := range l.XAxis.Ticks {
		if tick == "" {
			continue
		}
		x, _ := cellAt(diagram.Point{X: float64(i)})
		x -= runewidth.StringWidth(tick) / 2
		if x < originX {
			x = originX
		}
		if over := x + runewidth.StringWidth(tick) - c.width; over > 0 {
			x -= over
		}
		c.writeString(x, originY+1, tick, label)
	}
	for i, tick := range l.YAxis.Ticks {
		if tick == "" {
			continue
		}
		_, y := cellAt(diagram.Point{Y: float64(i)})
		if y >= originY {
			y = originY - 1
		}
		x := originX - 1 - runewidth.StringWidth(tick)
		if x < 0 {
			x = 0
		}
		c.writeString(x, y, tick, label)
	}
	title := cellStyle{fg: inkColor, bold: true}
	c.writeString((c.width-runewidth.StringWidth(l.XAxis.Title))/2, c.height-1, l.XAxis.Title, title)
	c.writeString(0, 0, l.YAxis.Title, title)

	if v.showPending {
		x, y := cellAt(v.pending)
		c.set(x, y, '✚', cellStyle{fg: pendingColor, bold: true})
	}

	for _, m := range v.markers {
		x, y := cellAt(m.Position)
		color := diagram.NormalizeColor(m.Color, l.DefaultColor)
		glyph := '●'
		if m.ID == v.selected {
			glyph = '◉'
		}
		c.set(x, y, glyph, cellStyle{fg: color, bold: m.ID == v.selected})
		c.writeString(x+2, y, m.Label, cellStyle{fg: inkColor, bold: m.ID == v.selected})
	}

	return c
}
