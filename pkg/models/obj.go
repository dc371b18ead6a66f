package models

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/bren/pkg/math3d"
)

var (
	errTooFewFields = errors.New("too few fields")
	errZeroIndex    = errors.New("vertex index 0 is not valid")
)

// LoadOBJ loads a Wavefront OBJ file. Only vertex positions and faces are
// read; normals, texture coordinates, groups and materials are ignored.
func LoadOBJ(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj: %w", err)
	}
	defer f.Close()

	return ParseOBJ(f, path)
}

// ParseOBJ reads OBJ text from r. name labels errors and becomes the model
// name (its base name, if it looks like a path).
//
// Faces may use v, v/vt, v//vn or v/vt/vn tokens; only the position index is
// kept. Negative indices count back from the last vertex read so far.
// Polygons with more than three vertices are split into a triangle fan.
func ParseOBJ(r io.Reader, name string) (*Model, error) {
	var (
		vertices []math3d.Vec3
		faces    []Face
		lines    []int
	)

	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, &ParseError{Path: name, Line: lineNo, Err: errTooFewFields}
			}
			var xyz [3]float64
			for i := range xyz {
				v, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, &ParseError{Path: name, Line: lineNo, Token: fields[i+1], Err: err}
				}
				xyz[i] = v
			}
			vertices = append(vertices, math3d.V3(xyz[0], xyz[1], xyz[2]))

		case "f":
			if len(fields) < 4 {
				return nil, &ParseError{Path: name, Line: lineNo, Err: errTooFewFields}
			}
			idx := make([]int, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				i, err := parseFaceIndex(tok, len(vertices))
				if err != nil {
					return nil, &ParseError{Path: name, Line: lineNo, Token: tok, Err: err}
				}
				idx = append(idx, i)
			}
			for i := 1; i+1 < len(idx); i++ {
				faces = append(faces, Face{V: [3]int{idx[0], idx[i], idx[i+1]}})
				lines = append(lines, lineNo)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	for i, f := range faces {
		for _, idx := range f.V {
			if idx < 1 || idx > len(vertices) {
				return nil, &IndexError{Path: name, Line: lines[i], Face: i, Index: idx, Count: len(vertices)}
			}
		}
	}

	return NewModel(filepath.Base(name), vertices, faces)
}

// parseFaceIndex returns the 1-based position index of a face token.
// Negative indices are resolved against count, the vertices read so far.
func parseFaceIndex(tok string, count int) (int, error) {
	if i := strings.IndexByte(tok, '/'); i >= 0 {
		tok = tok[:i]
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, err
	}
	switch {
	case n == 0:
		return 0, errZeroIndex
	case n < 0:
		return count + n + 1, nil
	default:
		return n, nil
	}
}
