package funcplot

import (
	"fmt"
	"math"
	"testing"
)

var transformationTests = []struct {
	trans   Transformation
	a, b    float64 // from
	u, v    float64 // to
	x, want float64
}{
	{LinearTrans, 10, 20, 10, 20, 12, 12},
	{LinearTrans, 10, 20, 100, 200, 12, 120},
	{LinearTrans, 3, 5, 0, 1, 3, 0},
	{LinearTrans, 3, 5, 0, 1, 4, 0.5},
	{LinearTrans, 3, 5, 0, 1, 5, 1},
	{LinearTrans, 0, 10, 400, 0, 0, 400},
	{LinearTrans, 0, 10, 400, 0, 2.5, 300},
	{LinearTrans, 0, 10, 400, 0, 10, 0},
}

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Abs(b))
}

func TestTransform(t *testing.T) {
	for i, tc := range transformationTests {
		t.Run(fmt.Sprintf("%s/%d", tc.trans.Name, i), func(t *testing.T) {
			from, to := Interval{tc.a, tc.b}, Interval{tc.u, tc.v}
			got := tc.trans.Trans(from, to, tc.x)
			if !equal64(got, tc.want) {
				t.Errorf("%s.Trans(%v,%v,%f) = %f, want %f",
					tc.trans.Name, from, to, tc.x, got, tc.want)
			}
			if back := tc.trans.Inverse(from, to, got); !equal64(back, tc.x) {
				t.Errorf("%s.Inverse(%v,%v,%f) = %f, want %f",
					tc.trans.Name, from, to, got, back, tc.x)
			}
		})
	}
}

func TestToPixel(t *testing.T) {
	tr := NewTransform(Rect(-10, 10, -5, 5), 400, 200)
	for _, tc := range []struct {
		x, y float64
		want Point
	}{
		{-10, -5, Point{0, 200}},
		{10, 5, Point{400, 0}},
		{0, 0, Point{200, 100}},
		{5, 2.5, Point{300, 50}},
		{20, -10, Point{600, 300}},
	} {
		if got := tr.ToPixel(tc.x, tc.y); !equal64(got.X, tc.want.X) || !equal64(got.Y, tc.want.Y) {
			t.Errorf("ToPixel(%g,%g) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestTransformRoundTrip(t *testing.T) {
	views := []Bounds{
		Rect(-10, 10, -10, 10),
		Rect(-1, 11, -1, 11),
		Rect(1e3, 1e3+0.5, -2e-3, 7e-3),
		Rect(-1e8, 3e8, -4, -3),
	}
	sizes := [][2]float64{{400, 400}, {1, 1}, {1920, 17}}
	points := [][2]float64{{0, 0}, {1, -1}, {-123.25, 42}, {1e3 + 0.1, 5e-3}, {7e7, -3.5}}
	for _, v := range views {
		for _, s := range sizes {
			tr := NewTransform(v, s[0], s[1])
			for _, p := range points {
				got := tr.ToMath(tr.ToPixel(p[0], p[1]))
				tolX := 1e-9 * math.Max(math.Abs(p[0]), v.X.Len())
				tolY := 1e-9 * math.Max(math.Abs(p[1]), v.Y.Len())
				if math.Abs(got.X-p[0]) > tolX || math.Abs(got.Y-p[1]) > tolY {
					t.Errorf("view %v size %v: round trip of %v = %v", v, s, p, got)
				}
			}
		}
	}
}

func TestNewTransformPanics(t *testing.T) {
	for _, tc := range []struct {
		view Bounds
		w, h float64
	}{
		{Rect(0, 0, 0, 1), 10, 10},
		{Rect(0, 1, 3, 3), 10, 10},
		{Rect(0, 1, 0, 1), 0, 10},
		{Rect(0, 1, 0, 1), 10, -1},
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewTransform(%v, %g, %g) did not panic", tc.view, tc.w, tc.h)
				}
			}()
			NewTransform(tc.view, tc.w, tc.h)
		}()
	}
}
