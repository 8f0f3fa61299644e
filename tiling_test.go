package funcplot

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vdobler/funcplot/data"
	"gonum.org/v1/plot/plotter"
)

func TestTileOffsets(t *testing.T) {
	graph := Rect(0, 10, 0, 5)
	for _, tc := range []struct {
		mode RepeatMode
		want []plotter.XY
	}{
		{RepeatOff, nil},
		{RepeatHorizontal, []plotter.XY{{X: -10}, {X: 10}}},
		{RepeatVertical, []plotter.XY{{Y: -5}, {Y: 5}}},
		{RepeatBoth, []plotter.XY{
			{X: -10}, {X: 10}, {Y: -5}, {Y: 5},
			{X: -10, Y: -5}, {X: -10, Y: 5}, {X: 10, Y: -5}, {X: 10, Y: 5},
		}},
	} {
		t.Run(tc.mode.String(), func(t *testing.T) {
			if d := cmp.Diff(tc.want, TileOffsets(graph, tc.mode)); d != "" {
				t.Error(d)
			}
		})
	}
}

func TestRepeatModeParse(t *testing.T) {
	for _, m := range []RepeatMode{RepeatOff, RepeatHorizontal, RepeatVertical, RepeatBoth} {
		got, err := ParseRepeatMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseRepeatMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got, err := ParseRepeatMode(" Both "); err != nil || got != RepeatBoth {
		t.Errorf("ParseRepeatMode(\" Both \") = %v, %v", got, err)
	}
	if _, err := ParseRepeatMode("diagonal"); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestTiles(t *testing.T) {
	curves := []data.Curve{curve(0, 0, 0, 10, 5), curve(1, 0, 5, 10, 0), curve(2)}
	graph := Rect(0, 10, 0, 5)
	tr := NewTransform(Rect(-10, 20, -20, 25), 30, 45)

	tiles := Tiles(curves, graph, RepeatBoth, tr)
	if len(tiles) != 8*len(curves) {
		t.Fatalf("got %d tiles, want %d", len(tiles), 8*len(curves))
	}
	for _, tile := range tiles {
		if !tile.Tiled {
			t.Errorf("tile %+v not marked as tiled", tile)
		}
	}

	// Second curve shifted right by one graph width.
	right := tiles[1*len(curves)+1]
	if right.Color != 1 || right.Offset != (plotter.XY{X: 10}) {
		t.Fatalf("unexpected tile %+v", right)
	}
	want := []Stroke{{tr.ToPixel(10, 5), tr.ToPixel(20, 0)}}
	if d := cmp.Diff(want, right.Strokes, approx); d != "" {
		t.Error(d)
	}

	if got := Tiles(curves, graph, RepeatOff, tr); got != nil {
		t.Errorf("RepeatOff produced %d tiles", len(got))
	}
}
