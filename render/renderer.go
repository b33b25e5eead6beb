// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/vector"

	"github.com/gogpu/turtle"
)

var (
	// ErrInvalidSize is returned when the canvas size or line width is not positive.
	ErrInvalidSize = errors.New("render: invalid canvas size")

	// ErrNilWriter is returned by EncodePNG when given a nil writer.
	ErrNilWriter = errors.New("render: nil writer")
)

// Renderer draws turtle line segments onto a fixed-size canvas.
// A Renderer holds no per-drawing state and may be reused.
type Renderer struct {
	opts options
}

// New creates a renderer with the given options.
func New(opts ...Option) (*Renderer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, o.width, o.height)
	}
	if !(o.lineWidth > 0) {
		return nil, fmt.Errorf("%w: line width %v", ErrInvalidSize, o.lineWidth)
	}
	if o.palette == nil {
		o.palette = DefaultPalette()
	}
	return &Renderer{opts: o}, nil
}

// Size returns the canvas size in pixels.
func (r *Renderer) Size() (width, height int) {
	return r.opts.width, r.opts.height
}

// Render draws all segments, in order, onto a fresh target.
func (r *Renderer) Render(segments []turtle.LineSegment) *Target {
	t := r.newFrame()
	s := newStroker(r)
	for _, seg := range segments {
		s.stroke(t, seg)
	}
	return t
}

// EncodePNG renders segments and writes the result to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer, segments []turtle.LineSegment) error {
	if w == nil {
		return ErrNilWriter
	}
	return png.Encode(w, r.Render(segments).Image())
}

// SavePNG renders segments to a PNG file at path.
func (r *Renderer) SavePNG(path string, segments []turtle.LineSegment) error {
	err := writeFile(path, func(w io.Writer) error {
		return r.EncodePNG(w, segments)
	})
	if err != nil {
		return err
	}
	turtle.Logger().Info("render: wrote png", "path", path, "segments", len(segments))
	return nil
}

// writeFile creates path and fills it with write. The file is removed if
// write fails so no truncated output is left behind.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("render: encode %s: %w", path, err)
	}
	return f.Close()
}

// newFrame returns a target cleared to the background with the caption drawn.
func (r *Renderer) newFrame() *Target {
	t := NewTarget(r.opts.width, r.opts.height)
	t.Clear(r.opts.background)
	turtle.Logger().Debug("render: new frame",
		"width", t.Width(), "height", t.Height(), "format", t.Format())
	if r.opts.caption != "" {
		if err := drawCaption(t.Image(), r.opts.caption); err != nil {
			turtle.Logger().Warn("render: caption skipped", "err", err)
		}
	}
	return t
}

// toPixel maps a plane point to canvas pixel space: origin at the centre,
// Y pointing down.
func (r *Renderer) toPixel(p turtle.Point) (x, y float64) {
	w, h := float64(r.opts.width), float64(r.opts.height)
	return p.X + w/2, h - (p.Y + h/2)
}

// stroker rasterizes one segment at a time as an anti-aliased quad. The
// rasterizer is sized to each segment's visible bounding box, not the
// whole canvas.
type stroker struct {
	r    *Renderer
	ras  *vector.Rasterizer
	half float64
}

func newStroker(r *Renderer) *stroker {
	return &stroker{
		r:    r,
		ras:  vector.NewRasterizer(0, 0),
		half: r.opts.lineWidth / 2,
	}
}

func (s *stroker) stroke(t *Target, seg turtle.LineSegment) {
	x0, y0 := s.r.toPixel(seg.Start())
	x1, y1 := s.r.toPixel(seg.End())
	if !finite(x0, y0, x1, y1) {
		return
	}
	// The rasterizer works in fixed point, so far-off endpoints are first
	// cut to the canvas plus a stroke-width margin.
	m := 2*s.half + 1
	bounds := t.Image().Bounds()
	x0, y0, x1, y1, ok := clipSegment(x0, y0, x1, y1,
		float64(bounds.Min.X)-m, float64(bounds.Min.Y)-m,
		float64(bounds.Max.X)+m, float64(bounds.Max.Y)+m)
	if !ok {
		return
	}
	dx, dy := x1-x0, y1-y0
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}

	// Offset by half the width along the normal, and extend the ends by the
	// same amount so consecutive segments join without notches.
	nx, ny := -dy/length*s.half, dx/length*s.half
	ex, ey := dx/length*s.half, dy/length*s.half
	quad := [4][2]float64{
		{x0 - ex + nx, y0 - ey + ny},
		{x1 + ex + nx, y1 + ey + ny},
		{x1 + ex - nx, y1 + ey - ny},
		{x0 - ex - nx, y0 - ey - ny},
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range quad {
		minX, maxX = math.Min(minX, v[0]), math.Max(maxX, v[0])
		minY, maxY = math.Min(minY, v[1]), math.Max(maxY, v[1])
	}
	box := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	clip := box.Intersect(bounds)
	if clip.Empty() {
		return
	}

	// Vertices may sit up to the margin outside the rasterizer; it clamps
	// those to its edges.
	s.ras.Reset(clip.Dx(), clip.Dy())
	ox, oy := float64(clip.Min.X), float64(clip.Min.Y)
	s.ras.MoveTo(float32(quad[0][0]-ox), float32(quad[0][1]-oy))
	for _, v := range quad[1:] {
		s.ras.LineTo(float32(v[0]-ox), float32(v[1]-oy))
	}
	s.ras.ClosePath()

	src := image.NewUniform(s.r.opts.palette.Color(seg.Color()))
	s.ras.Draw(t.Image(), clip, src, image.Point{})
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// clipSegment clips the segment (x0,y0)-(x1,y1) to the rectangle
// [minX,maxX]x[minY,maxY] (Liang-Barsky). ok is false when nothing remains.
func clipSegment(x0, y0, x1, y1, minX, minY, maxX, maxY float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - minX},
		{dx, maxX - x0},
		{-dy, y0 - minY},
		{dy, maxY - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}
