package geom

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/vdobler/funcplot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

func horizontalLineScene() funcplot.Scene {
	return funcplot.Scene{
		Width:  100,
		Height: 100,
		Curves: []funcplot.CurveStrokes{{
			Color:   0,
			Strokes: []funcplot.Stroke{{{X: 0, Y: 30}, {X: 100, Y: 30}}},
		}},
	}
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r == 0xffff && g == 0xffff && b == 0xffff
}

func TestDrawCurve(t *testing.T) {
	img := vgimg.NewWith(vgimg.UseWH(100, 100), vgimg.UseDPI(72))
	Draw(draw.New(img), horizontalLineScene(), DefaultStyle(12))

	im := img.Image()
	if got := im.At(50, 30); isWhite(got) {
		t.Errorf("pixel on the curve is white")
	}
	if got := im.At(50, 70); !isWhite(got) {
		t.Errorf("pixel away from the curve is %v", got)
	}
}

func TestMapper(t *testing.T) {
	img := vgimg.NewWith(vgimg.UseWH(200, 100), vgimg.UseDPI(72))
	m := newMapper(draw.New(img), funcplot.Scene{Width: 400, Height: 100})

	for _, tc := range []struct {
		p    funcplot.Point
		want vg.Point
	}{
		{funcplot.Point{X: 0, Y: 0}, vg.Point{X: 0, Y: 100}},
		{funcplot.Point{X: 400, Y: 100}, vg.Point{X: 200, Y: 0}},
		{funcplot.Point{X: 100, Y: 25}, vg.Point{X: 50, Y: 75}},
	} {
		if got := m.point(tc.p); got != tc.want {
			t.Errorf("point(%v) = %v, want %v", tc.p, got, tc.want)
		}
	}
}

func TestCanonicRectangle(t *testing.T) {
	r := CanonicRectangle(vg.Rectangle{Min: vg.Point{X: 5, Y: 1}, Max: vg.Point{X: 2, Y: 8}})
	want := vg.Rectangle{Min: vg.Point{X: 2, Y: 1}, Max: vg.Point{X: 5, Y: 8}}
	if r != want {
		t.Errorf("got %v, want %v", r, want)
	}
}

func fullScene() funcplot.Scene {
	s := horizontalLineScene()
	s.Grid = []funcplot.Line{{From: funcplot.Point{X: 20}, To: funcplot.Point{X: 20, Y: 100}}}
	s.Axes = []funcplot.Line{{From: funcplot.Point{Y: 50}, To: funcplot.Point{X: 100, Y: 50}}}
	tr := funcplot.NewTransform(funcplot.Rect(-1, 1, -1, 1), 100, 100)
	s.XTicks = tr.XTicks(3, 2)
	s.YTicks = tr.YTicks(3, 2)
	s.Box = &funcplot.Rectangle{Min: funcplot.Point{X: 10, Y: 10}, Max: funcplot.Point{X: 90, Y: 90}}
	s.Marker = &funcplot.Marker{Center: funcplot.Point{X: 50, Y: 30}, Radius: funcplot.MarkerRadius}
	s.Title = "The graph of the function: y = x < 2"
	s.XLabel, s.YLabel = "X", "Y"
	s.Status = "x = 0.00, y = 0.40 (snapped)"
	return s
}

func TestWrite(t *testing.T) {
	sty := DefaultStyle(12)
	for _, tc := range []struct {
		format string
		magic  string
	}{
		{"png", "\x89PNG"},
		{"PNG", "\x89PNG"},
		{"svg", "<svg"},
	} {
		for name, s := range map[string]funcplot.Scene{
			"full":    fullScene(),
			"loading": {Width: 100, Height: 100, Loading: true},
			"error":   {Width: 100, Height: 100, Err: errors.New("boom")},
		} {
			t.Run(tc.format+"/"+name, func(t *testing.T) {
				var buf bytes.Buffer
				if err := Write(&buf, tc.format, s, sty); err != nil {
					t.Fatal(err)
				}
				out := buf.String()
				if len(out) > 512 {
					out = out[:512]
				}
				if !strings.Contains(out, tc.magic) {
					t.Errorf("no %q in output %q", tc.magic, out)
				}
			})
		}
	}
}

func TestWriteTitles(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, "svg", fullScene(), DefaultStyle(12)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, text := range []string{
		">The graph of the function: y = x &lt; 2</text>",
		">X</text>",
		">Y</text>",
		">x = 0.00, y = 0.40 (snapped)</text>",
	} {
		if !strings.Contains(out, text) {
			t.Errorf("no %q in svg", text)
		}
	}

	buf.Reset()
	s := fullScene()
	s.Err = errors.New("boom")
	if err := Write(&buf, "svg", s, DefaultStyle(12)); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); strings.Contains(out, "The graph of") || !strings.Contains(out, ">"+ErrorMessage+"</text>") {
		t.Errorf("error scene shows the title or lacks the message")
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	if err := Write(new(bytes.Buffer), "gif", fullScene(), DefaultStyle(12)); err == nil {
		t.Error("gif accepted")
	}
}
