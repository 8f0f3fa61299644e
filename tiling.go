package funcplot

import (
	"fmt"
	"strings"

	"github.com/vdobler/funcplot/data"
	"gonum.org/v1/plot/plotter"
)

// RepeatMode selects which translated copies of the curves are drawn.
type RepeatMode int

const (
	RepeatOff RepeatMode = iota
	RepeatHorizontal
	RepeatVertical
	RepeatBoth
)

var repeatModeNames = []string{"off", "horizontal", "vertical", "both"}

// String returns the settings name of m.
func (m RepeatMode) String() string {
	if m < 0 || int(m) >= len(repeatModeNames) {
		return fmt.Sprintf("RepeatMode(%d)", int(m))
	}
	return repeatModeNames[m]
}

// ParseRepeatMode parses one of "off", "horizontal", "vertical" or "both".
// The empty string is "off".
func ParseRepeatMode(s string) (RepeatMode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return RepeatOff, nil
	}
	for i, name := range repeatModeNames {
		if s == name {
			return RepeatMode(i), nil
		}
	}
	return RepeatOff, fmt.Errorf("funcplot: unknown repeat mode %q", s)
}

// TileOffsets returns the math-space offsets of the copies drawn in mode.
// The copies are shifted by the width dx and height dy of graph:
// horizontal copies first, then vertical ones, then the diagonals.
func TileOffsets(graph Bounds, mode RepeatMode) []plotter.XY {
	dx, dy := graph.X.Len(), graph.Y.Len()
	horizontal := []plotter.XY{{X: -dx}, {X: dx}}
	vertical := []plotter.XY{{Y: -dy}, {Y: dy}}

	switch mode {
	case RepeatHorizontal:
		return horizontal
	case RepeatVertical:
		return vertical
	case RepeatBoth:
		offsets := append(horizontal, vertical...)
		for _, sx := range []float64{-dx, dx} {
			for _, sy := range []float64{-dy, dy} {
				offsets = append(offsets, plotter.XY{X: sx, Y: sy})
			}
		}
		return offsets
	}
	return nil
}

// CurveStrokes are the strokes of one curve or of one translated copy of it.
type CurveStrokes struct {
	Color   int
	Expr    string
	Offset  plotter.XY
	Tiled   bool
	Strokes []Stroke
}

// Tiles returns the strokes of all copies of curves required by mode,
// grouped by offset in TileOffsets order.
func Tiles(curves []data.Curve, graph Bounds, mode RepeatMode, t Transform) []CurveStrokes {
	var tiles []CurveStrokes
	for _, off := range TileOffsets(graph, mode) {
		for _, c := range curves {
			tiles = append(tiles, CurveStrokes{
				Color:   c.Color,
				Expr:    c.Expr,
				Offset:  off,
				Tiled:   true,
				Strokes: Polyline(c, off.X, off.Y, t),
			})
		}
	}
	return tiles
}
