package funcplot

import (
	"math"

	"gonum.org/v1/plot/plotter"
)

// JumpFraction is the fraction of the visible y range a step between two
// consecutive samples may span before the polyline is broken. Larger steps
// are taken to be discontinuities like the poles of tan(x).
var JumpFraction = 0.25

// A Stroke is a connected sequence of pixel points.
type Stroke []Point

// Segments transforms the samples xys, shifted by (dx, dy), into pixel
// space and splits them into runs wherever consecutive samples jump by
// more than JumpFraction of the view's y range. Samples which leave the
// float range when shifted or mapped are skipped and split the run as
// well. Runs may consist of a single point.
func Segments(xys plotter.XYer, dx, dy float64, t Transform) []Stroke {
	threshold := t.View.Y.Len() * JumpFraction

	var runs []Stroke
	var cur Stroke
	prevY := math.NaN()
	for i := 0; i < xys.Len(); i++ {
		x, y := xys.XY(i)
		x, y = x+dx, y+dy
		p := t.ToPixel(x, y)
		if !finite(x) || !finite(y) || !finite(p.X) || !finite(p.Y) {
			// Shifted or mapped out of the float range: a gap.
			if len(cur) > 0 {
				runs = append(runs, cur)
				cur = nil
			}
			continue
		}
		if len(cur) > 0 && math.Abs(y-prevY) > threshold {
			runs = append(runs, cur)
			cur = nil
		}
		cur = append(cur, p)
		prevY = y
	}
	if len(cur) > 0 {
		runs = append(runs, cur)
	}
	return runs
}

// Polyline returns the drawable strokes of xys: the Segments with at least
// two points.
func Polyline(xys plotter.XYer, dx, dy float64, t Transform) []Stroke {
	runs := Segments(xys, dx, dy, t)
	strokes := runs[:0]
	for _, r := range runs {
		if len(r) >= 2 {
			strokes = append(strokes, r)
		}
	}
	if len(strokes) == 0 {
		return nil
	}
	return strokes
}
