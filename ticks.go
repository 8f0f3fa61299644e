package funcplot

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// EvenTicks is a plot.Ticker producing N evenly spaced ticks from min to
// max inclusive, labelled with Prec decimal places.
type EvenTicks struct {
	N    int
	Prec int
}

var _ plot.Ticker = EvenTicks{}

// Ticks implements plot.Ticker.
func (t EvenTicks) Ticks(min, max float64) []plot.Tick {
	n := t.N
	if n < 2 {
		n = 2
	}
	ticks := make([]plot.Tick, n)
	for i := range ticks {
		v := min + float64(i)*(max-min)/float64(n-1)
		ticks[i] = plot.Tick{Value: v, Label: formatTick(v, t.Prec)}
	}
	return ticks
}

// formatTick formats v with prec decimals, avoiding "-0.00" for values
// which round to zero.
func formatTick(v float64, prec int) string {
	if math.Abs(v) < 0.5*math.Pow10(-prec) {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// AxisTick is a tick together with its pixel position along its axis.
type AxisTick struct {
	plot.Tick
	Pos float64
}

// XTicks returns n ticks spanning the view's x range, positioned along the
// surface width.
func (t Transform) XTicks(n, prec int) []AxisTick {
	ticks := EvenTicks{N: n, Prec: prec}.Ticks(t.View.X.Min, t.View.X.Max)
	at := make([]AxisTick, len(ticks))
	for i, tick := range ticks {
		at[i] = AxisTick{Tick: tick, Pos: float64(i) / float64(len(ticks)-1) * t.Width}
	}
	return at
}

// YTicks returns n ticks spanning the view's y range, positioned from the
// bottom of the surface upwards.
func (t Transform) YTicks(n, prec int) []AxisTick {
	ticks := EvenTicks{N: n, Prec: prec}.Ticks(t.View.Y.Min, t.View.Y.Max)
	at := make([]AxisTick, len(ticks))
	for i, tick := range ticks {
		at[i] = AxisTick{Tick: tick, Pos: t.Height - float64(i)/float64(len(ticks)-1)*t.Height}
	}
	return at
}
