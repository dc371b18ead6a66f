package models

import (
	"math"
	"testing"

	"github.com/taigrr/bren/pkg/math3d"
)

func approx(a, b math3d.Vec3) bool {
	const eps = 1e-9
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

func TestNewModelRejectsBadIndex(t *testing.T) {
	verts := []math3d.Vec3{{}, {X: 1}, {Y: 1}}
	tests := []struct {
		name string
		face Face
	}{
		{"zero", Face{V: [3]int{0, 1, 2}}},
		{"past end", Face{V: [3]int{1, 2, 4}}},
		{"negative", Face{V: [3]int{-1, 1, 2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewModel("tri", verts, []Face{tt.face})
			if _, ok := err.(*IndexError); !ok {
				t.Errorf("NewModel error = %v, want *IndexError", err)
			}
		})
	}
}

func TestNewModelCopiesInput(t *testing.T) {
	verts := []math3d.Vec3{{}, {X: 1}, {Y: 1}}
	faces := []Face{{V: [3]int{1, 2, 3}}}
	m, err := NewModel("tri", verts, faces)
	if err != nil {
		t.Fatal(err)
	}

	verts[1] = math3d.V3(9, 9, 9)
	faces[0] = Face{V: [3]int{3, 2, 1}}

	if got := m.Vertex(1); got != math3d.V3(1, 0, 0) {
		t.Errorf("Vertex(1) = %v after caller edit, want (1, 0, 0)", got)
	}
	if got := m.FaceIndices(0); got != [3]int{1, 2, 3} {
		t.Errorf("FaceIndices(0) = %v after caller edit, want [1 2 3]", got)
	}
	if _, hi := m.Bounds(); hi != math3d.V3(1, 1, 0) {
		t.Errorf("bounds max = %v, want (1, 1, 0)", hi)
	}
}

func TestTransformSettersReplace(t *testing.T) {
	m := NewCube(1)

	m.Rotate(10, 0, 0)
	m.Rotate(0, 20, 0)
	if got := m.Transform().Rotation; got != math3d.V3(0, 20, 0) {
		t.Errorf("Rotation after two calls = %v, want (0, 20, 0)", got)
	}

	m.Translate(1, 2, 3)
	m.Translate(4, 5, 6)
	if got := m.Transform().Position; got != math3d.V3(4, 5, 6) {
		t.Errorf("Position after two calls = %v, want (4, 5, 6)", got)
	}

	m.Scale(2, 2, 2)
	m.Scale(3, 1, 1)
	if got := m.Transform().Scale; got != math3d.V3(3, 1, 1) {
		t.Errorf("Scale after two calls = %v, want (3, 1, 1)", got)
	}
}

func TestTransformedVertexOrder(t *testing.T) {
	verts := []math3d.Vec3{{X: 1}, {Y: 1}, {Z: 1}}
	m, err := NewModel("tri", verts, []Face{{V: [3]int{1, 2, 3}}})
	if err != nil {
		t.Fatal(err)
	}

	// Translate then scale must not scale the translation.
	m.Translate(10, 0, 0)
	m.Scale(2, 2, 2)
	if got, want := m.TransformedVertex(0), math3d.V3(12, 0, 0); !approx(got, want) {
		t.Errorf("TransformedVertex(0) = %v, want %v", got, want)
	}

	// Rotation is applied before scale: a quarter turn about z moves x onto
	// y, where the y scale then applies.
	m.Translate(0, 0, 0)
	m.Scale(1, 5, 1)
	m.Rotate(0, 0, 90)
	if got, want := m.TransformedVertex(0), math3d.V3(0, 5, 0); !approx(got, want) {
		t.Errorf("TransformedVertex(0) = %v, want %v", got, want)
	}

	if got := m.Vertex(0); got != math3d.V3(1, 0, 0) {
		t.Errorf("stored vertex changed to %v", got)
	}
}

func TestBounds(t *testing.T) {
	m := NewCube(2)
	lo, hi := m.Bounds()
	if lo != math3d.V3(-1, -1, -1) || hi != math3d.V3(1, 1, 1) {
		t.Errorf("Bounds() = %v, %v, want (-1,-1,-1), (1,1,1)", lo, hi)
	}
	if got := m.Size(); got != math3d.V3(2, 2, 2) {
		t.Errorf("Size() = %v, want (2, 2, 2)", got)
	}
	if got := m.Center(); got != math3d.V3(0, 0, 0) {
		t.Errorf("Center() = %v, want origin", got)
	}
}

func TestRecenteredAndFit(t *testing.T) {
	verts := []math3d.Vec3{{X: 10, Y: 10}, {X: 14, Y: 10}, {X: 10, Y: 12}}
	m, err := NewModel("tri", verts, []Face{{V: [3]int{1, 2, 3}}})
	if err != nil {
		t.Fatal(err)
	}

	c := m.Recentered()
	if got := c.Center(); got != math3d.V3(0, 0, 0) {
		t.Errorf("Recentered().Center() = %v, want origin", got)
	}
	if got := m.Center(); got != math3d.V3(12, 11, 0) {
		t.Errorf("original Center() = %v, want (12, 11, 0)", got)
	}

	tr := m.FitTransform(2, math3d.V3(0, 0, -5))
	if tr.Scale != math3d.V3(0.5, 0.5, 0.5) {
		t.Errorf("FitTransform scale = %v, want 0.5", tr.Scale)
	}
	if got, want := tr.Apply(m.Center()), math3d.V3(0, 0, -5); !approx(got, want) {
		t.Errorf("fitted center = %v, want %v", got, want)
	}
}
