package funcplot

import (
	"fmt"
	"math"

	"github.com/vdobler/funcplot/data"
	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// set determined.
type Interval struct {
	Min, Max float64
}

func unsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// Same reports whether i and j have the same edges. Unset edges are
// the same as each other.
func (i Interval) Same(j Interval) bool {
	same := func(a, b float64) bool { return a == b || (math.IsNaN(a) && math.IsNaN(b)) }
	return same(i.Min, j.Min) && same(i.Max, j.Max)
}

// Len returns the width of i.
func (i Interval) Len() float64 { return i.Max - i.Min }

// Center returns the midpoint of i. It does not overflow for finite edges.
func (i Interval) Center() float64 { return i.Min/2 + i.Max/2 }

// Contains reports whether x lies in i.
func (i Interval) Contains(x float64) bool { return x >= i.Min && x <= i.Max }

// valid reports whether i and its length are finite, i is non-degenerate
// and wide enough to be resolved at the magnitude of its edges.
func (i Interval) valid() bool {
	if math.IsNaN(i.Min) || math.IsNaN(i.Max) || math.IsInf(i.Min, 0) || math.IsInf(i.Max, 0) {
		return false
	}
	if math.IsInf(i.Len(), 0) {
		return false
	}
	if !(i.Min < i.Max) {
		return false
	}
	scale := math.Max(1, math.Max(math.Abs(i.Min), math.Abs(i.Max)))
	return i.Len() > minResolution*scale
}

// minResolution is the smallest interval width, relative to the magnitude
// of its edges, a view may shrink to.
const minResolution = 1e-12

// ----------------------------------------------------------------------------
// Bounds

// Bounds is a rectangle in math space.
type Bounds struct {
	X, Y Interval
}

// Rect returns the bounds [xmin,xmax] x [ymin,ymax].
func Rect(xmin, xmax, ymin, ymax float64) Bounds {
	return Bounds{X: Interval{xmin, xmax}, Y: Interval{ymin, ymax}}
}

// Valid reports whether both ranges of b are finite and non-degenerate.
func (b Bounds) Valid() bool { return b.X.valid() && b.Y.valid() }

// Translate returns b moved by (dx, dy).
func (b Bounds) Translate(dx, dy float64) Bounds {
	return Rect(b.X.Min+dx, b.X.Max+dx, b.Y.Min+dy, b.Y.Max+dy)
}

func (b Bounds) String() string {
	return fmt.Sprintf("[%g:%g]x[%g:%g]", b.X.Min, b.X.Max, b.Y.Min, b.Y.Max)
}

// DefaultBounds is used if there is no data at all.
var DefaultBounds = Rect(-10, 10, -10, 10)

// Margin is the fraction of the data range added on each side of the data
// to form the graph bounds.
const Margin = 0.1

// GraphBounds returns the margin-expanded rectangle enclosing all samples
// of all curves. The margin is taken of a range of at least 1, so constant
// curves and single points yield a usable rectangle.
func GraphBounds(curves []data.Curve) Bounds {
	x, y := unsetInterval(), unsetInterval()
	for _, c := range curves {
		if c.Len() == 0 {
			continue
		}
		var dr plot.DataRanger = c
		xmin, xmax, ymin, ymax := dr.DataRange()
		x.Update(xmin, xmax)
		y.Update(ymin, ymax)
	}
	if math.IsNaN(x.Min) {
		return DefaultBounds
	}
	return Bounds{X: expand(x), Y: expand(y)}
}

// maxHalfWidth bounds half the width of an expanded interval, keeping its
// length and the transform's intermediate values finite.
const maxHalfWidth = math.MaxFloat64 / 4

// expand adds the margin on both sides of i. Data spanning more than the
// float range yields the widest representable interval around its center
// instead of an infinite one.
func expand(i Interval) Interval {
	half := i.Max/2 - i.Min/2
	ext := 2 * Margin * math.Max(half, 0.5)
	lo, hi := i.Min-ext, i.Max+ext
	if !math.IsInf(hi-lo, 0) {
		return Interval{lo, hi}
	}
	c := i.Center()
	return Interval{c - maxHalfWidth, c + maxHalfWidth}
}
