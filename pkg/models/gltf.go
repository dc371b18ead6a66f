package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/taigrr/bren/pkg/math3d"
)

// LoadGLB loads a glTF 2.0 file (.glb or .gltf with embedded buffers). The
// positions and triangle indices of every mesh are merged into one model.
// Winding is kept as authored (counter-clockwise front faces).
func LoadGLB(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return fromDocument(doc, filepath.Base(path))
}

func fromDocument(doc *gltf.Document, name string) (*Model, error) {
	var (
		vertices []math3d.Vec3
		faces    []Face
	)

	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
				// Lines and points have no faces to draw.
				continue
			}

			posIdx, ok := prim.Attributes[gltf.POSITION]
			if !ok {
				continue
			}

			positions, err := readPositions(doc, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %q: read positions: %w", m.Name, err)
			}

			// Faces are 1-based; base is the index of the first vertex of
			// this primitive.
			base := len(vertices) + 1
			vertices = append(vertices, positions...)

			var indices []int
			if prim.Indices != nil {
				indices, err = readIndices(doc, *prim.Indices)
				if err != nil {
					return nil, fmt.Errorf("mesh %q: read indices: %w", m.Name, err)
				}
			} else {
				indices = make([]int, len(positions))
				for i := range indices {
					indices[i] = i
				}
			}

			for i := 0; i+2 < len(indices); i += 3 {
				faces = append(faces, Face{V: [3]int{
					base + indices[i],
					base + indices[i+1],
					base + indices[i+2],
				}})
			}
		}
	}

	return NewModel(name, vertices, faces)
}

// accessor returns the accessor at idx.
func accessor(doc *gltf.Document, idx int) (*gltf.Accessor, error) {
	if idx < 0 || idx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", idx)
	}
	return doc.Accessors[idx], nil
}

// readPositions reads float VEC3 positions from a glTF accessor.
func readPositions(doc *gltf.Document, idx int) ([]math3d.Vec3, error) {
	acr, err := accessor(doc, idx)
	if err != nil {
		return nil, err
	}
	raw, err := modeler.ReadPosition(doc, acr, nil)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, len(raw))
	for i, p := range raw {
		result[i] = math3d.V3(float64(p[0]), float64(p[1]), float64(p[2]))
	}
	return result, nil
}

// readIndices reads SCALAR index data from a glTF accessor.
func readIndices(doc *gltf.Document, idx int) ([]int, error) {
	acr, err := accessor(doc, idx)
	if err != nil {
		return nil, err
	}
	raw, err := modeler.ReadIndices(doc, acr, nil)
	if err != nil {
		return nil, err
	}

	result := make([]int, len(raw))
	for i, v := range raw {
		result[i] = int(v)
	}
	return result, nil
}
