package funcplot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vdobler/funcplot/data"
	"gonum.org/v1/plot/plotter"
)

// Views in these tests map one math unit onto 10 pixels.
var snapTransform = NewTransform(Rect(-10, 10, -10, 10), 200, 200)

func TestSnapNearestSample(t *testing.T) {
	curves := []data.Curve{curve(0, 2, 2, 3, 3), curve(1, 2.5, 3)}
	cursor := snapTransform.ToPixel(2.6, 3.1)

	got, ok := SnapSearch(curves, snapTransform, cursor, DefaultSnapRadius)
	if !ok {
		t.Fatal("no snap")
	}
	want := Snap{Math: plotter.XY{X: 2.5, Y: 3}, Pixel: snapTransform.ToPixel(2.5, 3)}
	if d := cmp.Diff(want, got, approx); d != "" {
		t.Error(d)
	}
}

func TestSnapNothingInRange(t *testing.T) {
	curves := []data.Curve{curve(0, 5, 5)}
	cursor := snapTransform.ToPixel(6, 5) // exactly 10 pixels away
	if got, ok := SnapSearch(curves, snapTransform, cursor, 10); ok {
		t.Errorf("snapped to %+v", got)
	}
	if _, ok := SnapSearch(nil, snapTransform, Point{0, 0}, 10); ok {
		t.Error("snapped without curves far from the origin")
	}
}

func TestSnapPrefersCloserSampleOverOrigin(t *testing.T) {
	// Sample 3 pixels, origin 4 pixels from the cursor.
	curves := []data.Curve{curve(0, 0.7, 0)}
	cursor := snapTransform.ToPixel(0.4, 0)

	got, ok := SnapSearch(curves, snapTransform, cursor, DefaultSnapRadius)
	if !ok || got.Origin || got.Math != (plotter.XY{X: 0.7, Y: 0}) {
		t.Errorf("got %+v, %v; want the sample", got, ok)
	}
}

func TestSnapOriginWinsWhenCloser(t *testing.T) {
	curves := []data.Curve{curve(0, 0.8, 0)}
	cursor := snapTransform.ToPixel(0.3, 0)

	got, ok := SnapSearch(curves, snapTransform, cursor, DefaultSnapRadius)
	if !ok || !got.Origin {
		t.Fatalf("got %+v, %v; want the origin", got, ok)
	}
	if d := cmp.Diff(Point{100, 100}, got.Pixel, approx); d != "" {
		t.Error(d)
	}
}

func TestSnapTies(t *testing.T) {
	// Two samples and the origin all 5 pixels from the cursor at (0.5, 0):
	// the first sample enumerated wins.
	curves := []data.Curve{curve(0, 1, 0), curve(1, 0.5, 0.5)}
	cursor := snapTransform.ToPixel(0.5, 0)

	got, ok := SnapSearch(curves, snapTransform, cursor, DefaultSnapRadius)
	if !ok || got.Origin || got.Math != (plotter.XY{X: 1, Y: 0}) {
		t.Errorf("got %+v, %v; want the first sample", got, ok)
	}
}
