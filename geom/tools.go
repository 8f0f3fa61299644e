package geom

import (
	"github.com/vdobler/funcplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// mapper maps pixel-space points of a scene onto a canvas, flipping the
// y axis: vg's origin is at the bottom left.
type mapper struct {
	min, max vg.Point
	kx, ky   float64
}

func newMapper(c draw.Canvas, s funcplot.Scene) mapper {
	size := c.Size()
	return mapper{
		min: c.Min,
		max: c.Max,
		kx:  float64(size.X) / s.Width,
		ky:  float64(size.Y) / s.Height,
	}
}

func (m mapper) point(p funcplot.Point) vg.Point {
	return vg.Point{
		X: m.min.X + vg.Length(p.X*m.kx),
		Y: m.max.Y - vg.Length(p.Y*m.ky),
	}
}

func (m mapper) points(ps []funcplot.Point) []vg.Point {
	pts := make([]vg.Point, len(ps))
	for i, p := range ps {
		pts[i] = m.point(p)
	}
	return pts
}

// CanonicRectangle returns the canonical form of r, i.e. its Min points
// having smaller coordinates than its Max point.
func CanonicRectangle(r vg.Rectangle) vg.Rectangle {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}
