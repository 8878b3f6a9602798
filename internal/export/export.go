// Package export renders a diagram to a raster image and writes it to a
// file named after the diagram.
package export

import (
	"context"
	"fmt"
	"image/color"
	"image/jpeg"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"

	"archhelper/internal/diagram"
)

// Format is an output image encoding.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpeg"
)

// ParseFormat accepts png, jpeg and jpg.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	default:
		return "", fmt.Errorf("unsupported image format %q", s)
	}
}

// Ext is the file extension for the format.
func (f Format) Ext() string {
	if f == FormatJPEG {
		return ".jpg"
	}
	return ".png"
}

// Options sizes the output image in pixels.
type Options struct {
	Width   int
	Height  int
	Padding float64
}

var defaultSizes = map[string]Options{
	diagram.DomainChartName:     {Width: 700, Height: 600, Padding: 50},
	diagram.InfluenceMatrixName: {Width: 800, Height: 700, Padding: 50},
}

// DefaultOptions returns the surface size a layout is drawn at.
func DefaultOptions(l diagram.Layout) Options {
	if o, ok := defaultSizes[l.Name]; ok {
		return o
	}
	return Options{Width: 700, Height: 600, Padding: 50}
}

func (o Options) withDefaults(l diagram.Layout) Options {
	d := DefaultOptions(l)
	if o.Width <= 0 {
		o.Width = d.Width
	}
	if o.Height <= 0 {
		o.Height = d.Height
	}
	if o.Padding <= 0 {
		o.Padding = d.Padding
	}
	return o
}

// Filename is the deterministic output name for a layout.
func Filename(l diagram.Layout, f Format) string {
	return l.ExportName + f.Ext()
}

// Encode writes the rendered context in the given format.
func Encode(w io.Writer, dc *gg.Context, f Format) error {
	switch f {
	case FormatJPEG:
		return jpeg.Encode(w, dc.Image(), &jpeg.Options{Quality: 92})
	default:
		return dc.EncodePNG(w)
	}
}

// Exporter writes diagram images into a directory.
type Exporter struct {
	Dir     string
	Format  Format
	Options Options
	Log     *zap.Logger
}

// Export renders snap and writes it to Dir, returning the written path.
// The snapshot is a copy, so the live board may keep changing meanwhile.
func (e Exporter) Export(ctx context.Context, snap diagram.Snapshot) (string, error) {
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dc, err := Render(snap.Layout, snap.Markers, e.Options)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", snap.Layout.Name, err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	dir := e.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, Filename(snap.Layout, e.Format))

	if err := writeImage(path, dc, e.Format); err != nil {
		return "", err
	}

	log.Info("exported diagram",
		zap.String("diagram", snap.Layout.Name),
		zap.String("path", path),
		zap.Int("markers", len(snap.Markers)))
	return path, nil
}

type faces struct {
	title font.Face
	label font.Face
	small font.Face
}

func loadFaces() (faces, error) {
	bold, err := truetype.Parse(gobold.TTF)
	if err != nil {
		return faces{}, fmt.Errorf("failed to parse font: %v", err)
	}
	mono, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return faces{}, fmt.Errorf("failed to parse font: %v", err)
	}
	face := func(f *truetype.Font, size float64) font.Face {
		return truetype.NewFace(f, &truetype.Options{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}
	return faces{
		title: face(bold, 20),
		label: face(bold, 12),
		small: face(mono, 12),
	}, nil
}

var (
	zoneStroke  = color.RGBA{128, 128, 128, 255}
	markerInk   = color.RGBA{33, 33, 33, 255}
	fallbackInk = color.RGBA{255, 204, 0, 255}
)

const markerRadius = 8.0

// Render draws zones, axes and markers of a layout.
func Render(l diagram.Layout, markers []diagram.Marker, opts Options) (*gg.Context, error) {
	opts = opts.withDefaults(l)
	ff, err := loadFaces()
	if err != nil {
		return nil, err
	}

	w, h := float64(opts.Width), float64(opts.Height)
	surface := diagram.Rect{Width: w, Height: h}
	mapper := l.Mapper(diagram.Padding{X: opts.Padding, Y: opts.Padding})
	pad := opts.Padding

	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetColor(color.White)
	dc.Clear()

	// Zones first so axes and markers sit on top.
	for _, z := range l.Zones {
		if len(z.Outline) == 0 {
			continue
		}
		for i, p := range z.Outline {
			s := mapper.ToScreen(p, surface)
			if i == 0 {
				dc.MoveTo(s.X, s.Y)
			} else {
				dc.LineTo(s.X, s.Y)
			}
		}
		dc.ClosePath()
		fill, ok := diagram.ParseColor(z.Color)
		if !ok {
			fill = color.RGBA{238, 238, 238, 255}
		}
		dc.SetColor(fill)
		dc.FillPreserve()
		dc.SetColor(zoneStroke)
		dc.SetLineWidth(2)
		dc.Stroke()
	}

	dc.SetFontFace(ff.title)
	dc.SetColor(color.Black)
	for _, z := range l.Zones {
		a := mapper.ToScreen(z.Anchor, surface)
		dc.DrawStringAnchored(z.Title, a.X, a.Y, 0.5, 0.5)
	}

	origin := diagram.Point{X: pad, Y: h - pad}
	dc.SetLineWidth(2)
	dc.DrawLine(origin.X, origin.Y, w-pad, origin.Y)
	dc.Stroke()
	dc.DrawLine(origin.X, origin.Y, origin.X, pad)
	dc.Stroke()
	drawArrow(dc, origin.X, origin.Y, w-pad, origin.Y)
	drawArrow(dc, origin.X, origin.Y, origin.X, pad)

	dc.SetFontFace(ff.label)
	dc.DrawStringAnchored(l.XAxis.Title, w/2, h-15, 0.5, 0)
	dc.Push()
	dc.RotateAbout(gg.Radians(-90), 20, h/2)
	dc.DrawStringAnchored(l.YAxis.Title, 20, h/2, 0.5, 0.5)
	dc.Pop()

	dc.SetFontFace(ff.small)
	for i, label := range l.XAxis.Ticks {
		if label == "" {
			continue
		}
		s := mapper.ToScreen(diagram.Point{X: float64(i)}, surface)
		dc.DrawStringAnchored(label, s.X, h-pad+20, 0.5, 0)
	}
	for i, label := range l.YAxis.Ticks {
		if label == "" {
			continue
		}
		s := mapper.ToScreen(diagram.Point{Y: float64(i)}, surface)
		dc.Push()
		dc.RotateAbout(gg.Radians(-90), pad-15, s.Y)
		dc.DrawStringAnchored(label, pad-15, s.Y, 0.5, 0.5)
		dc.Pop()
	}

	dc.SetFontFace(ff.label)
	for _, m := range markers {
		s := mapper.ToScreen(mapper.Extent.Clamp(m.Position), surface)
		fill, ok := diagram.ParseColor(m.Color)
		if !ok {
			fill = fallbackInk
		}
		dc.DrawCircle(s.X, s.Y, markerRadius)
		dc.SetColor(fill)
		dc.Fill()
		dc.SetColor(markerInk)
		dc.DrawStringAnchored(m.Label, s.X, s.Y-15, 0.5, 0)
	}

	return dc, nil
}

func drawArrow(dc *gg.Context, fromX, fromY, toX, toY float64) {
	dx := toX - fromX
	dy := toY - fromY
	length := math.Sqrt(dx*dx + dy*dy)
	if length < 0.1 {
		return
	}
	dx /= length
	dy /= length

	const size = 10.0
	const spread = 0.5

	dc.MoveTo(toX, toY)
	dc.LineTo(toX-size*dx+size*dy*spread, toY-size*dy-size*dx*spread)
	dc.LineTo(toX-size*dx-size*dy*spread, toY-size*dy+size*dx*spread)
	dc.ClosePath()
	dc.SetColor(color.Black)
	dc.Fill()
}

// writeImage encodes into a temp file next to path and renames it into
// place, so a failed encode never leaves a truncated image behind.
func writeImage(path string, dc *gg.Context, f Format) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+"-*")
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, dc, f); err != nil {
		tmp.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
