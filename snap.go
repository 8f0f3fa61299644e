package funcplot

import (
	"github.com/vdobler/funcplot/data"
	"gonum.org/v1/plot/plotter"
)

// DefaultSnapRadius is the default snap distance in pixels.
const DefaultSnapRadius = 10

// Snap is the plotted point the cursor snapped to.
type Snap struct {
	Math   plotter.XY
	Pixel  Point
	Origin bool // the snap target is the math origin, not a sample
}

// SnapSearch returns the sample of curves nearest to cursor if it is closer
// than radius pixels. The math origin competes as well but is checked last:
// it only wins when strictly closer than every sample, and of several
// samples at the same distance the first one wins.
// Tiled copies are never snap targets.
func SnapSearch(curves []data.Curve, t Transform, cursor Point, radius float64) (Snap, bool) {
	var best Snap
	found := false
	bestDist := radius

	for _, c := range curves {
		for _, s := range c.Samples {
			p := t.ToPixel(s.X, s.Y)
			if d := p.Dist(cursor); d < bestDist {
				best, bestDist, found = Snap{Math: s, Pixel: p}, d, true
			}
		}
	}

	origin := t.ToPixel(0, 0)
	if d := origin.Dist(cursor); d < bestDist {
		best, found = Snap{Pixel: origin, Origin: true}, true
	}
	return best, found
}
