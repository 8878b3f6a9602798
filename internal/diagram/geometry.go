package diagram

import "math"

// Point is a position either in logical diagram units or on a rendering
// surface, depending on context.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Extent is the logical size of a diagram: [0,MaxX] x [0,MaxY].
type Extent struct {
	MaxX float64
	MaxY float64
}

// Clamp pulls p into the extent component-wise.
func (e Extent) Clamp(p Point) Point {
	return Point{
		X: clamp(p.X, 0, e.MaxX),
		Y: clamp(p.Y, 0, e.MaxY),
	}
}

// Contains reports whether p lies inside the closed extent.
func (e Extent) Contains(p Point) bool {
	return p.X >= 0 && p.X <= e.MaxX && p.Y >= 0 && p.Y <= e.MaxY
}

// Rect is the on-screen bounding box of a rendering surface.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Padding is the inner margin between the surface edge and the plot area.
type Padding struct {
	X float64
	Y float64
}

// Mapper converts between surface coordinates and logical units. The Y
// axis is flipped: logical y grows upwards, screen y grows downwards.
type Mapper struct {
	Extent  Extent
	Padding Padding
}

func (m Mapper) plotSize(surface Rect) (float64, float64) {
	return surface.Width - 2*m.Padding.X, surface.Height - 2*m.Padding.Y
}

// ToLogical maps a pointer position to logical units. Input outside the
// surface is clamped, never rejected.
func (m Mapper) ToLogical(screen Point, surface Rect) Point {
	w, h := m.plotSize(surface)

	var p Point
	if w > 0 {
		p.X = (screen.X - surface.Left - m.Padding.X) / w * m.Extent.MaxX
	}
	if h > 0 {
		p.Y = m.Extent.MaxY - (screen.Y-surface.Top-m.Padding.Y)/h*m.Extent.MaxY
	}
	return m.Extent.Clamp(p)
}

// ToScreen is the inverse of ToLogical for in-bounds points.
func (m Mapper) ToScreen(p Point, surface Rect) Point {
	w, h := m.plotSize(surface)

	var s Point
	if m.Extent.MaxX > 0 {
		s.X = surface.Left + m.Padding.X + p.X/m.Extent.MaxX*w
	}
	if m.Extent.MaxY > 0 {
		s.Y = surface.Top + surface.Height - m.Padding.Y - p.Y/m.Extent.MaxY*h
	}
	return s
}

// Scale returns how many logical units one surface unit spans on each axis.
func (m Mapper) Scale(surface Rect) (float64, float64) {
	w, h := m.plotSize(surface)
	if w <= 0 || h <= 0 {
		return 0, 0
	}
	return m.Extent.MaxX / w, m.Extent.MaxY / h
}

// InPlot reports whether a surface position falls on the padded plot area.
func (m Mapper) InPlot(screen Point, surface Rect) bool {
	w, h := m.plotSize(surface)
	x := screen.X - surface.Left - m.Padding.X
	y := screen.Y - surface.Top - m.Padding.Y
	return x >= 0 && x <= w && y >= 0 && y <= h
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Max(lo, math.Min(hi, v))
}
