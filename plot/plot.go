// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package plot draws point sets on the unit sphere as a static SVG scatter
// plot, seen from outside the sphere under an orthographic projection.
package plot

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/2dChan/s2vogel/s2delaunay"
	svg "github.com/ajstarks/svgo"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/s2"
)

const (
	defaultWidth  = 800
	defaultHeight = 800

	// Sphere radius as a fraction of the smaller canvas side.
	sphereScale = 0.45
	pointRadius = 3

	backgroundStyle = "fill:rgb(255,255,255)"
	sphereStyle     = "fill:none;stroke:rgb(170,170,170);stroke-width:1"
	frontEdgeStyle  = "stroke:rgb(170,170,170);stroke-width:1"
	backEdgeStyle   = "stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:0.25"
	frontPointStyle = "fill:rgb(0,0,255)"
	backPointStyle  = "fill:rgb(0,0,255);fill-opacity:0.25"
)

type Options struct {
	Width  int
	Height int
	// View angles in radians: Yaw turns the sphere about its polar axis,
	// Pitch then tilts the north pole towards the viewer.
	Yaw   float64
	Pitch float64
	// Triangulation, when set, is drawn as a wireframe under the points.
	Triangulation *s2delaunay.Triangulation
}

type Option func(*Options) error

func WithSize(width, height int) Option {
	return func(o *Options) error {
		if width <= 0 || height <= 0 {
			return fmt.Errorf("plot: size %dx%d must be positive", width, height)
		}
		o.Width = width
		o.Height = height
		return nil
	}
}

func WithView(yaw, pitch float64) Option {
	return func(o *Options) error {
		if math.IsNaN(yaw) || math.IsInf(yaw, 0) || math.IsNaN(pitch) || math.IsInf(pitch, 0) {
			return errors.New("plot: view angles must be finite")
		}
		o.Yaw = yaw
		o.Pitch = pitch
		return nil
	}
}

func WithTriangulation(dt *s2delaunay.Triangulation) Option {
	return func(o *Options) error {
		o.Triangulation = dt
		return nil
	}
}

// Render writes an SVG plot of points to w. Points on the far hemisphere
// are drawn faded and behind the near ones. It returns the first error
// from w.
func Render(w io.Writer, points s2.PointVector, setters ...Option) error {
	opts := Options{
		Width:  defaultWidth,
		Height: defaultHeight,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return err
		}
	}

	v := newView(opts)
	ew := &errWriter{w: w}

	canvas := svg.New(ew)
	canvas.Start(opts.Width, opts.Height)
	canvas.Title(fmt.Sprintf("%d points", len(points)))
	canvas.Rect(0, 0, opts.Width, opts.Height, backgroundStyle)
	canvas.Circle(int(math.Round(v.cx)), int(math.Round(v.cy)), int(math.Round(v.radius)), sphereStyle)

	if dt := opts.Triangulation; dt != nil {
		for _, e := range dt.Edges() {
			x1, y1, d1 := v.project(dt.Vertices[e[0]])
			x2, y2, d2 := v.project(dt.Vertices[e[1]])
			style := frontEdgeStyle
			if d1+d2 < 0 {
				style = backEdgeStyle
			}
			canvas.Line(x1, y1, x2, y2, style)
		}
	}

	type mark struct {
		x, y  int
		depth float64
	}
	marks := make([]mark, len(points))
	for i, p := range points {
		x, y, d := v.project(p)
		marks[i] = mark{x: x, y: y, depth: d}
	}
	// Painter's order: farthest first.
	slices.SortStableFunc(marks, func(a, b mark) int {
		return cmp.Compare(a.depth, b.depth)
	})
	for _, m := range marks {
		style := frontPointStyle
		if m.depth < 0 {
			style = backPointStyle
		}
		canvas.Circle(m.x, m.y, pointRadius, style)
	}

	canvas.End()
	return ew.err
}

// view maps sphere coordinates to the canvas. The viewer looks along +Y
// with +Z up, so depth is -Y after rotation.
type view struct {
	rot    mgl64.Mat3
	cx, cy float64
	radius float64
}

func newView(opts Options) view {
	return view{
		rot:    mgl64.Rotate3DX(opts.Pitch).Mul3(mgl64.Rotate3DZ(opts.Yaw)),
		cx:     float64(opts.Width) / 2,
		cy:     float64(opts.Height) / 2,
		radius: sphereScale * float64(min(opts.Width, opts.Height)),
	}
}

// project returns canvas coordinates of p and its depth towards the viewer,
// positive on the visible hemisphere.
func (v view) project(p s2.Point) (int, int, float64) {
	q := v.rot.Mul3x1(mgl64.Vec3{p.X, p.Y, p.Z})
	x := v.cx + v.radius*q.X()
	y := v.cy - v.radius*q.Z()
	return int(math.Round(x)), int(math.Round(y)), -q.Y()
}

type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
