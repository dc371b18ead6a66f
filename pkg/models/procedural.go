package models

import (
	"fmt"
	"math"

	"github.com/taigrr/bren/pkg/math3d"
)

// NewPlane creates a flat square grid of div x div cells centered on the
// origin in the XY plane, width units across. Faces are wound
// counter-clockwise when seen from +Z.
func NewPlane(div int, width float64) (*Model, error) {
	return NewHeightField(div, width, nil)
}

// NewHeightField creates a grid like NewPlane with each vertex raised to
// z = height(x, y). A nil height gives a flat plane.
func NewHeightField(div int, width float64, height func(x, y float64) float64) (*Model, error) {
	if div < 1 {
		return nil, fmt.Errorf("plane divisions must be positive, got %d", div)
	}

	step := width / float64(div)
	offset := width / 2
	n := div + 1

	vertices := make([]math3d.Vec3, 0, n*n)
	for x := range n {
		for y := range n {
			px := float64(x)*step - offset
			py := float64(y)*step - offset
			var pz float64
			if height != nil {
				pz = height(px, py)
			}
			vertices = append(vertices, math3d.V3(px, py, pz))
		}
	}

	faces := make([]Face, 0, 2*div*div)
	for y := range div {
		for x := range div {
			cur := (x + 1) + y*n
			faces = append(faces,
				Face{V: [3]int{cur, cur + n, cur + 1}},
				Face{V: [3]int{cur + 1, cur + n, cur + 1 + n}},
			)
		}
	}

	return NewModel("plane", vertices, faces)
}

// Wave returns the rippling height function used by the plane demo at time t.
func Wave(t float64) func(x, y float64) float64 {
	return func(x, y float64) float64 {
		return math.Sin(math.Pi*(x+t/math.Pi)) / 1.5 *
			(math.Sin(math.Pi*(y+t/math.Pi)) / 1.5)
	}
}

// NewCube creates an axis-aligned cube of the given edge length centered on
// the origin, with outward facing counter-clockwise faces.
func NewCube(size float64) *Model {
	h := size / 2
	vertices := []math3d.Vec3{
		{X: -h, Y: -h, Z: -h}, {X: h, Y: -h, Z: -h}, {X: h, Y: h, Z: -h}, {X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h}, {X: h, Y: -h, Z: h}, {X: h, Y: h, Z: h}, {X: -h, Y: h, Z: h},
	}
	faces := []Face{
		{V: [3]int{5, 6, 7}}, {V: [3]int{5, 7, 8}}, // +z
		{V: [3]int{2, 1, 4}}, {V: [3]int{2, 4, 3}}, // -z
		{V: [3]int{6, 2, 3}}, {V: [3]int{6, 3, 7}}, // +x
		{V: [3]int{1, 5, 8}}, {V: [3]int{1, 8, 4}}, // -x
		{V: [3]int{8, 7, 3}}, {V: [3]int{8, 3, 4}}, // +y
		{V: [3]int{1, 2, 6}}, {V: [3]int{1, 6, 5}}, // -y
	}

	m, _ := NewModel("cube", vertices, faces) // indices are fixed and valid
	return m
}
