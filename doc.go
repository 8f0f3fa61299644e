// Package funcplot is the engine of an interactive plotter for functions
// of one variable.
//
// It uses and extends gonum.org/v1/plot: curves are plotter.XYer, data
// ranges are learned through plot.DataRanger and ticks come from a
// plot.Ticker.
//
// Coordinates
//
// Two coordinate systems are in use:
//   - math space   the (x, y) values of the sampled functions
//   - pixel space  the drawing surface, origin top left, y grows downwards
//
// A Transform maps the current view (a Bounds in math space) linearly onto
// a surface of a given pixel size and back.
//
// Views
//
// The graph bounds are the bounding box of all samples plus a Margin on
// each side. The Viewport starts at the graph bounds and is changed by
// zooming and panning. A zoom or pan which would produce an empty or
// unresolvable view is refused and the view stays unchanged. With a fixed
// range the view never moves.
//
// Drawing
//
// A Plot does not draw itself. Scene computes everything needed for one
// frame (grid lines, axes, curve strokes, ticks, bounding box, snap marker
// and status line) in pixel space and package geom renders a Scene onto a
// gonum draw.Canvas. Curves are split into strokes wherever two
// consecutive samples are more than JumpFraction of the view apart
// vertically, which keeps asymptotes like those of tan(x) from being
// connected.
//
// Sampling
//
// Expressions are compiled and sampled by package data in a background
// goroutine. Plot.Ready polls the result without blocking; until then
// Scene only shows a loading message.
package funcplot
