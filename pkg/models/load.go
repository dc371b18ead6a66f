package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load picks a loader by file extension: .obj, .glb or .gltf.
func Load(path string) (*Model, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJ(path)
	case ".glb", ".gltf":
		return LoadGLB(path)
	default:
		return nil, fmt.Errorf("unsupported model format %q", ext)
	}
}
