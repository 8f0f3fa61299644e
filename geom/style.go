package geom

import (
	"image/color"
	"math"

	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style controls how a scene is drawn.
type Style struct {
	Background color.Color

	Grid draw.LineStyle
	Axis draw.LineStyle

	// Curve is the line style of curve i with its color taken from
	// Palette(i).
	Curve   draw.LineStyle
	Palette func(i int) color.Color

	Tick struct {
		draw.LineStyle
		Length vg.Length
		Pad    vg.Length
		Label  draw.TextStyle
	}

	Box    draw.LineStyle
	Marker draw.GlyphStyle

	// Title is drawn centered at the top, Label is used for the axis
	// labels.
	Title draw.TextStyle
	Label draw.TextStyle

	Status  draw.TextStyle
	Message draw.TextStyle
}

// DefaultStyle returns the default Style. The baseFontSize is the font size
// of the loading and error messages; tick labels and the status line are a
// bit smaller.
func DefaultStyle(baseFontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}

	baseFont, err := vg.MakeFont("Helvetica", baseFontSize)
	if err != nil {
		panic(err)
	}
	smallFont, err := vg.MakeFont("Helvetica", scale(baseFontSize, 1/1.2))
	if err != nil {
		panic(err)
	}

	gray := color.Gray16{0x8888}

	s := Style{}
	s.Background = color.White

	s.Grid.Color = color.Gray16{0xeeee}
	s.Grid.Width = vg.Length(0.5)

	s.Axis.Color = gray
	s.Axis.Width = vg.Length(1)

	s.Curve.Width = vg.Length(2)
	s.Palette = plotutil.Color

	s.Tick.Color = gray
	s.Tick.Width = vg.Length(1)
	s.Tick.Length = vg.Length(5)
	s.Tick.Pad = vg.Length(2)
	s.Tick.Label.Color = gray
	s.Tick.Label.Font = smallFont

	s.Box.Color = gray
	s.Box.Width = vg.Length(1)
	s.Box.Dashes = []vg.Length{vg.Length(4), vg.Length(3)}

	s.Marker.Color = color.RGBA{R: 0xdd, G: 0x22, B: 0x22, A: 0xff}
	s.Marker.Shape = draw.RingGlyph{}

	s.Title.Color = gray
	s.Title.Font = baseFont
	s.Title.XAlign = draw.XCenter
	s.Title.YAlign = draw.YTop

	s.Label.Color = gray
	s.Label.Font = smallFont

	s.Status.Color = gray
	s.Status.Font = smallFont
	s.Status.XAlign = draw.XLeft
	s.Status.YAlign = draw.YBottom

	s.Message.Color = gray
	s.Message.Font = baseFont
	s.Message.XAlign = draw.XCenter
	s.Message.YAlign = draw.YCenter

	return s
}
