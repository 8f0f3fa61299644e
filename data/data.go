// Package data contains the curve type produced by sampling expressions of
// one variable and the sampler itself.
package data

import (
	"math"
	"strings"

	"gonum.org/v1/plot/plotter"
)

// Func is a function of one variable. A non-nil error marks x as outside
// the function's domain.
type Func func(x float64) (float64, error)

// A Compiler turns the source text of an expression of x into a Func.
type Compiler func(src string) (Func, error)

// Curve is the sampled form of one expression. Curves are never modified
// after the sampler produced them.
type Curve struct {
	// Expr is the source expression.
	Expr string

	// Color is the index of the curve in its code block and selects the
	// curve's color.
	Color int

	// Samples contains the finite samples in increasing x.
	Samples plotter.XYs
}

// Len implements plotter.XYer.
func (c Curve) Len() int { return len(c.Samples) }

// XY implements plotter.XYer.
func (c Curve) XY(i int) (x, y float64) { return c.Samples[i].X, c.Samples[i].Y }

// DataRange implements plot.DataRanger. An empty curve reports
// +Inf, -Inf, +Inf, -Inf.
func (c Curve) DataRange() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange(c.Samples)
}

// ----------------------------------------------------------------------------
// Domain

// Domain is the set of evenly spaced x values an expression is sampled at.
type Domain struct {
	Min, Max float64
	N        int // number of points, at least 2
}

// DefaultDomain samples 401 points over [-10, 10].
var DefaultDomain = Domain{Min: -10, Max: 10, N: 401}

// X returns the i'th sample position of d.
func (d Domain) X(i int) float64 {
	return d.Min + (d.Max-d.Min)*float64(i)/float64(d.N-1)
}

func (d Domain) valid() bool {
	return d.N >= 2 && d.Min < d.Max && !math.IsInf(d.Min, 0) && !math.IsInf(d.Max, 0)
}

// Sample evaluates f at every point of d. Points where f fails or yields
// a non-finite value are dropped and counted.
func Sample(f Func, d Domain) (xy plotter.XYs, dropped int) {
	xy = make(plotter.XYs, 0, d.N)
	for i := 0; i < d.N; i++ {
		x := d.X(i)
		y, err := f(x)
		if err != nil || math.IsNaN(y) || math.IsInf(y, 0) {
			dropped++
			continue
		}
		xy = append(xy, plotter.XY{X: x, Y: y})
	}
	return xy, dropped
}

// ParseBlock splits a code block into its expressions, one per non-blank
// line.
func ParseBlock(block string) []string {
	var exprs []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			exprs = append(exprs, line)
		}
	}
	return exprs
}
