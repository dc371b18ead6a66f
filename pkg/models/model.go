// Package models holds renderable geometry: a vertex buffer, a triangle list
// and one transform per model, plus loaders and procedural generators.
package models

import (
	"slices"

	"github.com/taigrr/bren/pkg/math3d"
)

// Face is a triangle referencing vertices by 1-based index, as in OBJ files.
type Face struct {
	V [3]int
}

// Model is a triangle mesh with its own transform. Vertices are never
// modified after construction; Translate, Scale and Rotate only touch the
// transform.
type Model struct {
	Name string

	vertices  []math3d.Vec3
	faces     []Face
	transform math3d.Transform

	boundsMin math3d.Vec3
	boundsMax math3d.Vec3
}

// NewModel builds a model from a vertex list and 1-based faces. Both slices
// are copied. It returns an *IndexError if any face references a vertex that
// does not exist.
func NewModel(name string, vertices []math3d.Vec3, faces []Face) (*Model, error) {
	for i, f := range faces {
		for _, idx := range f.V {
			if idx < 1 || idx > len(vertices) {
				return nil, &IndexError{Path: name, Face: i, Index: idx, Count: len(vertices)}
			}
		}
	}

	m := &Model{
		Name:      name,
		vertices:  slices.Clone(vertices),
		faces:     slices.Clone(faces),
		transform: math3d.NewTransform(),
	}
	m.calculateBounds()
	return m, nil
}

func (m *Model) calculateBounds() {
	if len(m.vertices) == 0 {
		return
	}

	m.boundsMin = m.vertices[0]
	m.boundsMax = m.vertices[0]
	for _, v := range m.vertices[1:] {
		m.boundsMin = m.boundsMin.Min(v)
		m.boundsMax = m.boundsMax.Max(v)
	}
}

// Translate replaces the model position.
func (m *Model) Translate(x, y, z float64) {
	m.transform.Position = math3d.V3(x, y, z)
}

// Scale replaces the model scale.
func (m *Model) Scale(x, y, z float64) {
	m.transform.Scale = math3d.V3(x, y, z)
}

// Rotate replaces the model rotation. Angles are in degrees. Calling Rotate
// twice keeps only the second set of angles.
func (m *Model) Rotate(x, y, z float64) {
	m.transform.Rotation = math3d.V3(x, y, z)
}

// Transform returns the current transform.
func (m *Model) Transform() math3d.Transform {
	return m.transform
}

// SetTransform replaces the whole transform.
func (m *Model) SetTransform(t math3d.Transform) {
	m.transform = t
}

// ModelMatrix returns Translate(position) * rotation. Scale is applied to
// each vertex before this matrix.
func (m *Model) ModelMatrix() math3d.Mat4 {
	return m.transform.Matrix()
}

// VertexCount returns the number of vertices.
func (m *Model) VertexCount() int {
	return len(m.vertices)
}

// FaceCount returns the number of triangles.
func (m *Model) FaceCount() int {
	return len(m.faces)
}

// Vertex returns vertex i (0-based) in model space.
func (m *Model) Vertex(i int) math3d.Vec3 {
	return m.vertices[i]
}

// Face returns face i with its 1-based indices.
func (m *Model) Face(i int) Face {
	return m.faces[i]
}

// TransformedVertex returns vertex i (0-based) after rotate, scale and
// translate.
func (m *Model) TransformedVertex(i int) math3d.Vec3 {
	return m.transform.Apply(m.vertices[i])
}

// Bounds returns the axis-aligned bounding box in model space.
func (m *Model) Bounds() (lo, hi math3d.Vec3) {
	return m.boundsMin, m.boundsMax
}

// Center returns the center of the bounding box.
func (m *Model) Center() math3d.Vec3 {
	return m.boundsMin.Add(m.boundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Model) Size() math3d.Vec3 {
	return m.boundsMax.Sub(m.boundsMin)
}

// FitTransform returns a transform that scales the model uniformly so its
// largest dimension equals size and puts its bounding box center at pos.
// Rotations happen about the model origin, so spinning models should be
// Recentered first.
func (m *Model) FitTransform(size float64, pos math3d.Vec3) math3d.Transform {
	t := math3d.NewTransform()
	extent := m.Size().MaxComponent()
	if extent <= 0 {
		t.Position = pos
		return t
	}

	s := size / extent
	t.Scale = math3d.V3(s, s, s)
	t.Position = pos.Sub(m.Center().Scale(s))
	return t
}

// Recentered returns a copy of the model whose vertices are shifted so the
// bounding box center sits at the origin. Rotations then spin the model in
// place. The receiver is not modified.
func (m *Model) Recentered() *Model {
	c := m.Center()
	verts := make([]math3d.Vec3, len(m.vertices))
	for i, v := range m.vertices {
		verts[i] = v.Sub(c)
	}

	out := &Model{
		Name:      m.Name,
		vertices:  verts,
		faces:     m.faces,
		transform: m.transform,
	}
	out.calculateBounds()
	return out
}

// FaceIndices returns the 1-based vertex indices of face i.
func (m *Model) FaceIndices(i int) [3]int {
	return m.Face(i).V
}
