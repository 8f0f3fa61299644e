package funcplot

import (
	"fmt"
	"math"
)

// Direction selects one of the four pan directions.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// String returns the name of d.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ----------------------------------------------------------------------------
// Viewport

// Viewport owns the visible math-space rectangle of one plot.
//
// The view is unset until Initialize is called with the first graph bounds.
// Afterwards only Zoom, Pan, PanByFraction and Reset change it. With a fixed
// range the view always equals the graph bounds and every navigation request
// is ignored.
//
// Methods which change the view report whether they did so, i.e. whether a
// redraw is due.
type Viewport struct {
	view       Bounds
	hasView    bool
	graph      Bounds
	fixedRange bool

	zoomFactor  float64
	panFraction float64
}

// NewViewport returns an uninitialized viewport.
func NewViewport(zoomFactor, panFraction float64, fixedRange bool) *Viewport {
	return &Viewport{
		zoomFactor:  zoomFactor,
		panFraction: panFraction,
		fixedRange:  fixedRange,
	}
}

// View returns the current view. The second result is false until the
// viewport has been initialized.
func (v *Viewport) View() (Bounds, bool) { return v.view, v.hasView }

// Graph returns the graph bounds last passed to Initialize.
func (v *Viewport) Graph() Bounds { return v.graph }

// Locked reports whether the viewport has a fixed range.
func (v *Viewport) Locked() bool { return v.fixedRange }

// Initialize records graph as the current graph bounds. The view is set to
// graph if it was unset or the range is fixed; otherwise the user's
// navigation is kept.
func (v *Viewport) Initialize(graph Bounds) {
	v.graph = graph
	if !v.hasView || v.fixedRange {
		v.view, v.hasView = graph, true
	}
}

func (v *Viewport) navigable() bool { return v.hasView && !v.fixedRange }

// Zoom scales the view by factor around its center. A factor < 1 zooms in,
// a factor > 1 zooms out. Non-positive or non-finite factors and zooms
// which would collapse the view are ignored.
func (v *Viewport) Zoom(factor float64) bool {
	if !v.navigable() || !(factor > 0) || math.IsInf(factor, 0) || factor == 1 {
		return false
	}
	zoomed := Bounds{X: scaleInterval(v.view.X, factor), Y: scaleInterval(v.view.Y, factor)}
	if !zoomed.Valid() {
		return false
	}
	v.view = zoomed
	return true
}

func scaleInterval(i Interval, factor float64) Interval {
	c, h := i.Center(), i.Len()/2*factor
	return Interval{c - h, c + h}
}

// ZoomIn zooms by the configured zoom factor.
func (v *Viewport) ZoomIn() bool { return v.Zoom(v.zoomFactor) }

// ZoomOut undoes ZoomIn.
func (v *Viewport) ZoomOut() bool { return v.Zoom(1 / v.zoomFactor) }

// Pan moves the view by (dx, dy) math units.
func (v *Viewport) Pan(dx, dy float64) bool {
	if !v.navigable() || (dx == 0 && dy == 0) {
		return false
	}
	moved := v.view.Translate(dx, dy)
	if !moved.Valid() {
		return false
	}
	v.view = moved
	return true
}

// PanByFraction moves the view in direction dir by the configured fraction
// of its width or height.
func (v *Viewport) PanByFraction(dir Direction) bool {
	if !v.navigable() {
		return false
	}
	shiftX := v.view.X.Len() * v.panFraction
	shiftY := v.view.Y.Len() * v.panFraction
	switch dir {
	case Left:
		return v.Pan(-shiftX, 0)
	case Right:
		return v.Pan(shiftX, 0)
	case Up:
		return v.Pan(0, shiftY)
	case Down:
		return v.Pan(0, -shiftY)
	}
	return false
}

// Reset returns the view to the graph bounds.
func (v *Viewport) Reset() bool {
	if !v.navigable() || v.view == v.graph {
		return false
	}
	v.view = v.graph
	return true
}
