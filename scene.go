package funcplot

import (
	"strings"

	"github.com/vdobler/funcplot/data"
)

// ----------------------------------------------------------------------------
// Drawing primitives

// Line is a straight line in pixel space.
type Line struct {
	From, To Point
}

// Rectangle is an axis aligned rectangle in pixel space; Min is its
// top-left corner.
type Rectangle struct {
	Min, Max Point
}

// Marker is a circle around a snapped point.
type Marker struct {
	Center Point
	Radius float64
}

// Scene is everything a renderer needs to draw one frame of a plot, in
// drawing order: grid, axes, curves (untiled ones first), ticks, bounding
// box, snap marker, title, axis labels and status text.
//
// A scene is rebuilt for every frame and never modified afterwards.
type Scene struct {
	Width, Height float64

	// Loading is set while the curves are still being sampled. Nothing
	// but the placeholder should be drawn.
	Loading bool

	// Err is the reason sampling failed. It replaces the whole plot.
	Err error

	Grid   []Line
	Axes   []Line
	Curves []CurveStrokes
	XTicks []AxisTick
	YTicks []AxisTick
	Box    *Rectangle
	Marker *Marker

	Title          string
	XLabel, YLabel string

	Status string
}

// Empty reports whether s contains no geometry, i.e. it is a placeholder
// or error scene.
func (s Scene) Empty() bool { return s.Loading || s.Err != nil }

// Axis labels of every plot.
const (
	XLabel = "X"
	YLabel = "Y"
)

// title names the plotted expressions, e.g.
// "The graph of the function: y = sin(x)".
func title(curves []data.Curve) string {
	switch len(curves) {
	case 0:
		return ""
	case 1:
		return "The graph of the function: y = " + curves[0].Expr
	}
	fs := make([]string, len(curves))
	for i, c := range curves {
		fs[i] = "y = " + c.Expr
	}
	return "The graphs of the functions: " + strings.Join(fs, ", ")
}

// MarkerRadius is the radius of the snap marker in pixels.
const MarkerRadius = 5

// gridLines returns vertical lines every spacing pixels from the left edge
// followed by horizontal lines every spacing pixels from the top edge.
func gridLines(width, height, spacing float64) []Line {
	var lines []Line
	for x := 0.0; x <= width; x += spacing {
		lines = append(lines, Line{Point{x, 0}, Point{x, height}})
	}
	for y := 0.0; y <= height; y += spacing {
		lines = append(lines, Line{Point{0, y}, Point{width, y}})
	}
	return lines
}

// axisLines returns the x axis (math y = 0) and the y axis (math x = 0).
// An axis whose zero is outside the view is clamped to the nearest edge if
// force is set and omitted otherwise.
func axisLines(t Transform, force bool) []Line {
	var lines []Line
	origin := t.ToPixel(0, 0)
	if t.View.Y.Contains(0) || force {
		y := clamp(origin.Y, 0, t.Height)
		lines = append(lines, Line{Point{0, y}, Point{t.Width, y}})
	}
	if t.View.X.Contains(0) || force {
		x := clamp(origin.X, 0, t.Width)
		lines = append(lines, Line{Point{x, 0}, Point{x, t.Height}})
	}
	return lines
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// boundingBox returns the pixel rectangle of the math rectangle b.
func boundingBox(t Transform, b Bounds) *Rectangle {
	return &Rectangle{
		Min: t.ToPixel(b.X.Min, b.Y.Max),
		Max: t.ToPixel(b.X.Max, b.Y.Min),
	}
}
