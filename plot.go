package funcplot

import (
	"context"
	"fmt"

	"github.com/vdobler/funcplot/data"
	"github.com/vdobler/funcplot/internal/logging"
	"go.uber.org/zap"
	"gonum.org/v1/plot/plotter"
)

// Plot is the interactive state of one plotted code block: its sampling
// job, the curves once they arrive, the viewport and the cursor.
//
// Sampling runs on the job's goroutine. Everything else, including all
// methods of Plot, must be called from a single goroutine, typically the
// UI thread. The job's result is adopted by the first method call after
// the job finished.
type Plot struct {
	cfg  Config
	job  *data.Job
	view *Viewport

	ready  bool
	curves []data.Curve
	err    error

	cursor *cursor
}

type cursor struct {
	pos           Point
	width, height float64
}

// New returns a plot showing the result of job. The configuration is
// validated once here.
func New(cfg Config, job *data.Job) (*Plot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if job == nil {
		return nil, fmt.Errorf("funcplot: nil job")
	}
	return &Plot{
		cfg:  cfg,
		job:  job,
		view: NewViewport(cfg.ZoomFactor, cfg.PanFraction, cfg.FixedRange),
	}, nil
}

// Start samples block with the domain of cfg in the background and returns
// a plot for it.
func Start(ctx context.Context, cfg Config, block string, opts ...data.Option) (*Plot, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	opts = append([]data.Option{data.WithDomain(cfg.Domain)}, opts...)
	return New(cfg, data.Start(ctx, block, opts...))
}

// Ready reports whether sampling has finished, successfully or not.
// It never blocks.
func (p *Plot) Ready() bool {
	if p.ready {
		return true
	}
	select {
	case <-p.job.Done():
	default:
		return false
	}
	p.adopt(p.job.Result())
	return true
}

// Wait blocks until sampling has finished or ctx is done. It returns the
// sampling error, if any.
func (p *Plot) Wait(ctx context.Context) error {
	select {
	case <-p.job.Done():
	case <-ctx.Done():
		return ctx.Err()
	}
	p.Ready()
	return p.err
}

func (p *Plot) adopt(curves []data.Curve, err error) {
	p.ready = true
	log := logging.Logger()
	if err != nil {
		p.err = err
		log.Warn("plot shows sampling error", zap.Error(err))
		return
	}
	p.curves = curves
	p.view.Initialize(GraphBounds(curves))
	log.Debug("plot ready",
		zap.Int("curves", len(curves)),
		zap.Stringer("graph", p.view.Graph()))
}

// Err returns the sampling error.
func (p *Plot) Err() error {
	p.Ready()
	return p.err
}

// Curves returns the sampled curves, nil while loading or on error.
func (p *Plot) Curves() []data.Curve {
	p.Ready()
	return p.curves
}

// Viewport returns the plot's viewport.
func (p *Plot) Viewport() *Viewport {
	p.Ready()
	return p.view
}

// ----------------------------------------------------------------------------
// User actions

func (p *Plot) navigate(action string, f func() bool) bool {
	if !p.Ready() || p.err != nil {
		return false
	}
	changed := f()
	if changed {
		view, _ := p.view.View()
		logging.Logger().Debug("view changed",
			zap.String("action", action),
			zap.Stringer("view", view))
	}
	return changed
}

// ZoomIn zooms in by the configured factor. It reports whether a redraw
// is required.
func (p *Plot) ZoomIn() bool { return p.navigate("zoom in", p.view.ZoomIn) }

// ZoomOut undoes one ZoomIn.
func (p *Plot) ZoomOut() bool { return p.navigate("zoom out", p.view.ZoomOut) }

// Pan moves the view one step in direction dir.
func (p *Plot) Pan(dir Direction) bool {
	return p.navigate("pan "+dir.String(), func() bool { return p.view.PanByFraction(dir) })
}

// ResetView returns to the initial view.
func (p *Plot) ResetView() bool { return p.navigate("reset", p.view.Reset) }

// Hover records the cursor position pos on a width x height surface and
// returns the point it snaps to. The cursor is kept for the following
// scenes until Leave is called.
func (p *Plot) Hover(pos Point, width, height float64) (Snap, bool) {
	if !p.Ready() || p.err != nil || !(width > 0 && height > 0) {
		return Snap{}, false
	}
	p.cursor = &cursor{pos: pos, width: width, height: height}
	view, _ := p.view.View()
	return SnapSearch(p.curves, NewTransform(view, width, height), pos, p.cfg.SnapRadius)
}

// Leave forgets the cursor.
func (p *Plot) Leave() { p.cursor = nil }

// ----------------------------------------------------------------------------
// Scene

// Scene returns the drawing primitives for a width x height surface.
// While sampling is in progress the scene only has Loading set, after a
// failure only Err. A surface without area yields an empty scene.
//
// Scene has no side effects besides adopting a finished job and may be
// called any number of times.
func (p *Plot) Scene(width, height float64) Scene {
	s := Scene{Width: width, Height: height}
	if !p.Ready() {
		s.Loading = true
		return s
	}
	if p.err != nil {
		s.Err = p.err
		return s
	}
	if !(width > 0 && height > 0) {
		return s
	}

	view, _ := p.view.View()
	graph := p.view.Graph()
	t := NewTransform(view, width, height)

	s.Grid = gridLines(width, height, p.cfg.GridDensity)
	s.Axes = axisLines(t, p.cfg.ShowAxes)
	for _, c := range p.curves {
		s.Curves = append(s.Curves, CurveStrokes{
			Color:   c.Color,
			Expr:    c.Expr,
			Strokes: Polyline(c, 0, 0, t),
		})
	}
	s.Curves = append(s.Curves, Tiles(p.curves, graph, p.cfg.Repeat, t)...)
	s.XTicks = t.XTicks(p.cfg.TickCount, p.cfg.TickPrecision)
	s.YTicks = t.YTicks(p.cfg.TickCount, p.cfg.TickPrecision)
	if p.cfg.ShowBoundingBox {
		s.Box = boundingBox(t, graph)
	}
	s.Title = title(p.curves)
	s.XLabel, s.YLabel = XLabel, YLabel

	if p.cursor != nil {
		// The cursor was recorded on a surface of possibly different
		// size; scale it onto this one.
		pos := Point{
			X: p.cursor.pos.X / p.cursor.width * width,
			Y: p.cursor.pos.Y / p.cursor.height * height,
		}
		snap, ok := SnapSearch(p.curves, t, pos, p.cfg.SnapRadius)
		if ok {
			s.Marker = &Marker{Center: snap.Pixel, Radius: MarkerRadius}
		}
		s.Status = status(t.ToMath(pos), snap, ok)
	}
	return s
}

// status describes the cursor position m or the snap target.
func status(m plotter.XY, snap Snap, snapped bool) string {
	switch {
	case snapped && snap.Origin:
		return "x = 0.00, y = 0.00 (origin)"
	case snapped:
		return fmt.Sprintf("x = %s, y = %s (snapped)",
			formatTick(snap.Math.X, 2), formatTick(snap.Math.Y, 2))
	}
	return fmt.Sprintf("x = %s, y = %s", formatTick(m.X, 2), formatTick(m.Y, 2))
}
