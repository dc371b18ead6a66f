package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/taigrr/bren/internal/logger"
	"github.com/taigrr/bren/pkg/math3d"
	"github.com/taigrr/bren/pkg/models"
	"github.com/taigrr/bren/pkg/render"
	"go.uber.org/zap"
)

// Fallback size when stdout is not a terminal.
const (
	defaultCols = 80
	defaultRows = 24
)

// terminalSize reports the size of the terminal on stdout, or the fallback.
func terminalSize() (cols, rows int) {
	cols, rows, err := render.TerminalSize(os.Stdout.Fd())
	if err != nil || cols <= 0 || rows <= 0 {
		logger.Debug("terminal size unavailable", zap.Error(err))
		return defaultCols, defaultRows
	}
	return cols, rows
}

// newViewport builds the configured viewport inside a terminal of
// termCols x termRows cells. Zero sized config dimensions take whatever is
// left of the terminal after the origin.
func (a *app) newViewport(sink render.Sink, termCols, termRows int) (*render.Viewport, error) {
	vc := a.cfg.Viewport
	cols, rows := vc.Columns, vc.Rows
	if cols == 0 {
		cols = termCols - vc.X
	}
	if rows == 0 {
		rows = termRows - vc.Y
	}

	vp, err := render.NewViewport(sink, cols, rows, vc.X, vc.Y)
	if err != nil {
		return nil, err
	}
	vp.Color = a.cfg.Render.Color
	vp.ClearScreen = a.cfg.Render.ClearScreen
	return vp, nil
}

// newRenderer builds a renderer for vp. With perspective set it gets a
// camera matching the viewport aspect ratio.
func (a *app) newRenderer(vp *render.Viewport, mode render.Mode, perspective bool) (*render.Renderer, error) {
	var cam *render.Camera
	if perspective {
		cc := a.cfg.Camera
		var err error
		cam, err = render.NewCamera(vp.Aspect(), math3d.Radians(cc.FOVDegrees), cc.Near, cc.Far)
		if err != nil {
			return nil, err
		}
	}

	r := render.NewRenderer(vp, cam, mode)
	if c := r.Camera(); c != nil {
		logger.Debug("camera built",
			zap.Float64("aspect", c.Aspect()),
			zap.Float64("fov", c.FOV()),
			zap.Float64("near", c.Near()),
			zap.Float64("far", c.Far()),
		)
	}
	wire, err := a.cfg.WireRGBA()
	if err != nil {
		return nil, fmt.Errorf("wire color: %w", err)
	}
	r.WireColor = wire
	return r, nil
}

// cubeSize is the edge length of the model drawn when no file is given.
const cubeSize = 2

// loadModel reads a model file and recenters it so rotations spin it in
// place. An empty path gives a cube.
func loadModel(path string) (*models.Model, error) {
	if path == "" {
		logger.Info("no model given, drawing a cube")
		return models.NewCube(cubeSize), nil
	}

	m, err := models.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}
	logger.Info("model loaded",
		zap.String("path", filepath.Clean(path)),
		zap.Int("vertices", m.VertexCount()),
		zap.Int("faces", m.FaceCount()),
	)
	if m.FaceCount() == 0 {
		logger.Warn("model has no faces", zap.String("path", path))
	}
	return m.Recentered(), nil
}

// placeModel scales m to a unit-ish size and puts it in front of the camera.
func (a *app) placeModel(m *models.Model) math3d.Transform {
	t := m.FitTransform(2, math3d.V3(0, 0, -a.cfg.Camera.Distance))
	m.SetTransform(t)
	return t
}
