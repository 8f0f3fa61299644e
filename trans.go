// Coordinate Transformations
//
// Math space has its origin bottom-up; pixel space has its origin in the
// top-left corner of the drawing surface with y growing downwards.

package funcplot

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/plotter"
)

// A Transformation bundles two functions Trans and Inverse mapping the
// interval from onto the interval to and back.
type Transformation struct {
	Name    string
	Trans   func(from, to Interval, x float64) float64
	Inverse func(from, to Interval, y float64) float64
}

// LinearTrans implements a linear mapping of from to to. The to interval
// may be reversed (Min > Max) to flip the direction of the axis. Values far
// outside a huge from interval map to finite positions.
var LinearTrans = Transformation{
	Name: "Linear",
	Trans: func(from, to Interval, x float64) float64 {
		return to.Min + (to.Max-to.Min)*((x/2-from.Min/2)/(from.Max/2-from.Min/2))
	},
	Inverse: func(from, to Interval, y float64) float64 {
		return from.Min + (from.Max-from.Min)*((y-to.Min)/(to.Max-to.Min))
	},
}

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Transform maps between a view rectangle in math space and a drawing
// surface of Width x Height pixels.
type Transform struct {
	View          Bounds
	Width, Height float64
}

// NewTransform returns the transform of view onto a width x height surface.
// A degenerate view or surface is an internal invariant violation and
// makes NewTransform panic.
func NewTransform(view Bounds, width, height float64) Transform {
	if !view.Valid() {
		panic(fmt.Sprintf("funcplot: degenerate view bounds %v", view))
	}
	if !(width > 0 && height > 0) {
		panic(fmt.Sprintf("funcplot: degenerate surface %gx%g", width, height))
	}
	return Transform{View: view, Width: width, Height: height}
}

func (t Transform) xPixels() Interval { return Interval{0, t.Width} }
func (t Transform) yPixels() Interval { return Interval{t.Height, 0} }

// ToPixel maps the math point (x,y) to pixel space.
func (t Transform) ToPixel(x, y float64) Point {
	return Point{
		X: LinearTrans.Trans(t.View.X, t.xPixels(), x),
		Y: LinearTrans.Trans(t.View.Y, t.yPixels(), y),
	}
}

// ToMath maps the pixel p back to math space.
func (t Transform) ToMath(p Point) plotter.XY {
	return plotter.XY{
		X: LinearTrans.Inverse(t.View.X, t.xPixels(), p.X),
		Y: LinearTrans.Inverse(t.View.Y, t.yPixels(), p.Y),
	}
}
