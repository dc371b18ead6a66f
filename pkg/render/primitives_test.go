package render

import (
	"fmt"
	"slices"
	"testing"
)

type point struct{ x, y int }

func collectLine(x0, y0, x1, y1 int) []point {
	var pts []point
	Line(x0, y0, x1, y1, func(x, y int) { pts = append(pts, point{x, y}) })
	return pts
}

func TestLine(t *testing.T) {
	tests := []struct {
		name           string
		x0, y0, x1, y1 int
		want           []point
	}{
		{"horizontal", 0, 0, 3, 0, []point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"reversed", 3, 0, 0, 0, []point{{3, 0}, {2, 0}, {1, 0}, {0, 0}}},
		{"vertical", 1, 1, 1, 4, []point{{1, 1}, {1, 2}, {1, 3}, {1, 4}}},
		{"diagonal", 0, 0, 3, 3, []point{{0, 0}, {1, 1}, {2, 2}, {3, 3}}},
		{"single point", 2, 2, 2, 2, []point{{2, 2}}},
		{"shallow", 0, 0, 4, 2, []point{{0, 0}, {1, 1}, {2, 1}, {3, 2}, {4, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectLine(tt.x0, tt.y0, tt.x1, tt.y1)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Line(%d,%d,%d,%d) visited %v, want %v", tt.x0, tt.y0, tt.x1, tt.y1, got, tt.want)
			}
		})
	}
}

func TestLineIsConnected(t *testing.T) {
	pts := collectLine(-7, 3, 12, -20)
	for i := 1; i < len(pts); i++ {
		dx, dy := abs(pts[i].x-pts[i-1].x), abs(pts[i].y-pts[i-1].y)
		if dx > 1 || dy > 1 || dx+dy == 0 {
			t.Fatalf("step %d from %v to %v is not a unit step", i, pts[i-1], pts[i])
		}
	}
	if last := pts[len(pts)-1]; last != (point{12, -20}) {
		t.Errorf("last point = %v, want (12, -20)", last)
	}
}

func TestCircleSymmetry(t *testing.T) {
	const cx, cy = 30, 20

	for r := 0; r <= 25; r++ {
		t.Run(fmt.Sprintf("r=%d", r), func(t *testing.T) {
			set := map[point]bool{}
			Circle(cx, cy, r, func(x, y int) { set[point{x, y}] = true })

			if len(set) == 0 {
				t.Fatal("circle drew nothing")
			}
			for p := range set {
				if !set[point{2*cx - p.x, p.y}] {
					t.Errorf("%v has no mirror across the vertical axis", p)
				}
				if !set[point{p.x, 2*cy - p.y}] {
					t.Errorf("%v has no mirror across the horizontal axis", p)
				}
			}
			if !set[point{cx + r, cy}] || !set[point{cx, cy + r}] {
				t.Errorf("outline misses the axis extremes")
			}
		})
	}
}

func TestCircleNegativeRadius(t *testing.T) {
	called := false
	Circle(0, 0, -1, func(x, y int) { called = true })
	if called {
		t.Error("negative radius should draw nothing")
	}
}

func TestFilledCircle(t *testing.T) {
	fb := NewFramebuffer(40, 40)
	fb.DrawFilledCircle(20, 20, 6, ColorWhite)

	for _, p := range []point{{20, 20}, {26, 20}, {14, 20}, {20, 26}, {20, 14}, {23, 23}} {
		if !fb.Lit(p.x, p.y) {
			t.Errorf("pixel %v should be lit", p)
		}
	}
	if fb.Lit(27, 20) || fb.Lit(20, 27) {
		t.Error("filled circle leaked past its radius")
	}
}

func TestPrimitivesClipAtEdges(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.DrawLine(-10, 4, 20, 4, ColorWhite)
	fb.DrawCircle(0, 0, 5, ColorWhite)
	fb.SetPixel(-1, -1, ColorWhite)
	fb.SetPixel(8, 0, ColorWhite)

	for x := range 8 {
		if !fb.Lit(x, 4) {
			t.Errorf("pixel (%d, 4) should be lit", x)
		}
	}
	if got := fb.GetPixel(100, 100); got != (Color{}) {
		t.Errorf("GetPixel out of range = %v, want zero", got)
	}
}

func BenchmarkLine(b *testing.B) {
	fb := NewFramebuffer(320, 200)
	for b.Loop() {
		fb.DrawLine(0, 0, 319, 199, ColorWhite)
	}
}

func BenchmarkFilledCircle(b *testing.B) {
	fb := NewFramebuffer(320, 200)
	for b.Loop() {
		fb.DrawFilledCircle(160, 100, 80, ColorWhite)
	}
}
