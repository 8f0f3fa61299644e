// Package geom draws the scenes of package funcplot onto gonum/plot
// canvases.
//
// Scenes are in pixel space with the origin at the top left. The scene's
// Width x Height is stretched onto the full canvas, so a canvas created
// with 72 dpi and the scene's size in points maps one scene pixel onto one
// image pixel.
package geom

import (
	"github.com/vdobler/funcplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Loading and error messages replacing the plot.
const (
	LoadingMessage = "Loading…"
	ErrorMessage   = "Error generating graph. Check the input function."
)

// Draw draws s onto c.
func Draw(c draw.Canvas, s funcplot.Scene, sty Style) {
	if sty.Background != nil {
		c.SetColor(sty.Background)
		c.Fill(c.Rectangle.Path())
	}

	switch {
	case s.Loading:
		c.FillText(sty.Message, c.Center(), LoadingMessage)
		return
	case s.Err != nil:
		c.FillText(sty.Message, c.Center(), ErrorMessage)
		return
	case !(s.Width > 0 && s.Height > 0):
		return
	}

	m := newMapper(c, s)

	for _, l := range s.Grid {
		strokeLine(c, m, sty.Grid, l)
	}
	for _, l := range s.Axes {
		strokeLine(c, m, sty.Axis, l)
	}
	for _, cs := range s.Curves {
		ls := sty.Curve
		if sty.Palette != nil {
			ls.Color = sty.Palette(cs.Color)
		}
		for _, stroke := range cs.Strokes {
			c.StrokeLines(ls, m.points(stroke))
		}
	}
	drawTicks(c, m, s, sty)

	if s.Box != nil {
		r := CanonicRectangle(vg.Rectangle{Min: m.point(s.Box.Min), Max: m.point(s.Box.Max)})
		c.SetColor(sty.Box.Color)
		c.SetLineWidth(sty.Box.Width)
		c.SetLineDash(sty.Box.Dashes, sty.Box.DashOffs)
		c.Stroke(r.Path())
	}

	if s.Marker != nil {
		gs := sty.Marker
		gs.Radius = vg.Length(s.Marker.Radius * m.kx)
		c.DrawGlyph(gs, m.point(s.Marker.Center))
	}

	drawTitles(c, s, sty)

	if s.Status != "" {
		pad := sty.Tick.Pad
		y := c.Min.Y + sty.Tick.Length + 2*pad + sty.Tick.Label.Height("0")
		c.FillText(sty.Status, vg.Point{X: c.Min.X + pad, Y: y}, s.Status)
	}
}

func strokeLine(c draw.Canvas, m mapper, sty draw.LineStyle, l funcplot.Line) {
	from, to := m.point(l.From), m.point(l.To)
	c.StrokeLine2(sty, from.X, from.Y, to.X, to.Y)
}

// drawTitles draws the title at the top center, the x label at the right
// above the x tick labels and the y label at the left below the topmost y
// tick label.
func drawTitles(c draw.Canvas, s funcplot.Scene, sty Style) {
	pad := sty.Tick.Pad
	if s.Title != "" {
		c.FillText(sty.Title, vg.Point{X: c.Center().X, Y: c.Max.Y - pad}, s.Title)
	}

	tickLabel := sty.Tick.Label.Height("0")
	label := sty.Label
	if s.XLabel != "" {
		label.XAlign, label.YAlign = draw.XRight, draw.YBottom
		y := c.Min.Y + sty.Tick.Length + 2*pad + tickLabel
		c.FillText(label, vg.Point{X: c.Max.X - pad, Y: y}, s.XLabel)
	}
	if s.YLabel != "" {
		label.XAlign, label.YAlign = draw.XLeft, draw.YTop
		x := c.Min.X + sty.Tick.Length + pad
		c.FillText(label, vg.Point{X: x, Y: c.Max.Y - tickLabel - pad}, s.YLabel)
	}
}

// drawTicks draws the x ticks upwards from the bottom edge and the y ticks
// rightwards from the left edge, each labelled inside the plot area.
func drawTicks(c draw.Canvas, m mapper, s funcplot.Scene, sty Style) {
	length, pad := sty.Tick.Length, sty.Tick.Pad

	label := sty.Tick.Label
	label.YAlign = draw.YBottom
	for i, tick := range s.XTicks {
		x := m.point(funcplot.Point{X: tick.Pos}).X
		y0 := c.Min.Y
		c.StrokeLine2(sty.Tick.LineStyle, x, y0, x, y0+length)

		switch i {
		case 0:
			label.XAlign = draw.XLeft
		case len(s.XTicks) - 1:
			label.XAlign = draw.XRight
		default:
			label.XAlign = draw.XCenter
		}
		c.FillText(label, vg.Point{X: x, Y: y0 + length + pad}, tick.Label)
	}

	label = sty.Tick.Label
	label.XAlign = draw.XLeft
	for i, tick := range s.YTicks {
		y := m.point(funcplot.Point{Y: tick.Pos}).Y
		x0 := c.Min.X
		c.StrokeLine2(sty.Tick.LineStyle, x0, y, x0+length, y)

		switch i {
		case 0:
			label.YAlign = draw.YBottom
		case len(s.YTicks) - 1:
			label.YAlign = draw.YTop
		default:
			label.YAlign = draw.YCenter
		}
		c.FillText(label, vg.Point{X: x0 + length + pad, Y: y}, tick.Label)
	}
}
