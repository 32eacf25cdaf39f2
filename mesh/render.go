// SPDX-License-Identifier: MIT

package mesh

import (
	"errors"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// ErrBadCanvas indicates a non-positive preview size.
var ErrBadCanvas = errors.New("mesh: canvas size must be positive")

// RenderOptions controls the PNG preview.
type RenderOptions struct {
	Width, Height int     // canvas size in pixels
	Margin        float64 // blank border in pixels
	LineWidth     float64 // face edge width
	AtomRadius    float64 // vertex dot radius; 0 hides vertices
}

// DefaultRenderOptions returns an 800×800 canvas with thin edges and small dots.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Width: 800, Height: 800, Margin: 24, LineWidth: 1, AtomRadius: 2}
}

// RenderPNG draws an orthographic XY projection of m and encodes it as PNG.
// Faces are filled light grey and outlined, atoms drawn as dots.
func RenderPNG(w io.Writer, m *Mesh, opts RenderOptions) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return ErrBadCanvas
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	project := fitXY(m, opts)

	dc.SetLineWidth(opts.LineWidth)
	for _, t := range m.Triangles {
		x0, y0 := project(t[0])
		x1, y1 := project(t[1])
		x2, y2 := project(t[2])
		dc.MoveTo(x0, y0)
		dc.LineTo(x1, y1)
		dc.LineTo(x2, y2)
		dc.ClosePath()
		dc.SetRGBA(0.2, 0.4, 0.8, 0.15)
		dc.FillPreserve()
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.Stroke()
	}

	if opts.AtomRadius > 0 {
		dc.SetRGB(0.8, 0.1, 0.1)
		for i := range m.Vertices {
			x, y := project(i)
			dc.DrawCircle(x, y, opts.AtomRadius)
			dc.Fill()
		}
	}

	return dc.EncodePNG(w)
}

// fitXY returns a projection of vertex i into canvas pixels, uniformly scaled
// to fit inside the margins with +Y pointing up.
func fitXY(m *Mesh, opts RenderOptions) func(i int) (float64, float64) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range m.Vertices {
		minX, maxX = math.Min(minX, v.X), math.Max(maxX, v.X)
		minY, maxY = math.Min(minY, v.Y), math.Max(maxY, v.Y)
	}
	spanX, spanY := maxX-minX, maxY-minY
	availW := float64(opts.Width) - 2*opts.Margin
	availH := float64(opts.Height) - 2*opts.Margin
	scale := 1.0
	if spanX > 0 || spanY > 0 {
		scale = math.Min(availW/math.Max(spanX, 1e-12), availH/math.Max(spanY, 1e-12))
	}

	return func(i int) (float64, float64) {
		v := m.Vertices[i]
		x := opts.Margin + (v.X-minX)*scale
		y := float64(opts.Height) - opts.Margin - (v.Y-minY)*scale

		return x, y
	}
}
