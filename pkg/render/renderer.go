package render

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/taigrr/bren/internal/logger"
	"github.com/taigrr/bren/pkg/math3d"
	"go.uber.org/zap"
)

// Mode selects how faces are rasterized.
type Mode int

const (
	// ModeWireframe draws the three edges of every face.
	ModeWireframe Mode = iota
	// ModeFilled fills lit faces with a flat shaded gray.
	ModeFilled
)

// ErrUnknownMode is returned by ParseMode for names it does not know.
var ErrUnknownMode = errors.New("unknown render mode")

func (m Mode) String() string {
	switch m {
	case ModeWireframe:
		return "wireframe"
	case ModeFilled:
		return "filled"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "wireframe" (or "wire") and "filled" (or "fill").
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wireframe", "wire":
		return ModeWireframe, nil
	case "filled", "fill":
		return ModeFilled, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// guardBand bounds projected coordinates. Anything farther from the screen
// than this is treated as a failed projection.
const guardBand = 32768

// Drawable is geometry the renderer can draw. *models.Model implements it.
type Drawable interface {
	FaceCount() int
	// FaceIndices returns 1-based vertex indices.
	FaceIndices(i int) [3]int
	// Vertex returns a 0-based model space vertex.
	Vertex(i int) math3d.Vec3
	// TransformedVertex returns vertex i after rotate, scale and translate.
	TransformedVertex(i int) math3d.Vec3
	// ModelMatrix is Translate(position) * rotation, without scale.
	ModelMatrix() math3d.Mat4
	Transform() math3d.Transform
}

// FrameStats counts what happened to faces since the last Clear.
type FrameStats struct {
	Objects  int // DrawObject calls
	Faces    int // Faces considered
	Drawn    int // Faces rasterized
	Unlit    int // Faces skipped because they face away from the light
	Rejected int // Faces skipped because a vertex did not project to a finite point
}

// Renderer draws 3D objects onto a Canvas. Without a camera, transformed
// vertex x and y are used directly as pixel coordinates.
type Renderer struct {
	*Canvas

	camera *Camera
	mode   Mode
	light  math3d.Vec3

	// WireColor is the color of wireframe edges.
	WireColor color.RGBA

	stats FrameStats
}

// NewRenderer creates a renderer drawing into vp. cam may be nil.
func NewRenderer(vp *Viewport, cam *Camera, mode Mode) *Renderer {
	r := &Renderer{
		Canvas:    NewCanvas(vp),
		camera:    cam,
		mode:      mode,
		light:     math3d.V3(0, 0, -1),
		WireColor: ColorWhite,
	}
	w, h := r.Size()
	logger.Debug("renderer created",
		zap.Stringer("mode", mode),
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Bool("camera", cam != nil),
	)
	return r
}

// Mode returns the render mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Camera returns the camera, or nil.
func (r *Renderer) Camera() *Camera {
	return r.camera
}

// Stats returns the face counts since the last Clear.
func (r *Renderer) Stats() FrameStats {
	return r.stats
}

// Clear resets the framebuffer, labels and frame statistics.
func (r *Renderer) Clear() {
	r.Canvas.Clear()
	r.stats = FrameStats{}
}

// Render writes the frame to the viewport.
func (r *Renderer) Render() error {
	logger.Debug("frame",
		zap.Int("objects", r.stats.Objects),
		zap.Int("faces", r.stats.Faces),
		zap.Int("drawn", r.stats.Drawn),
		zap.Int("unlit", r.stats.Unlit),
		zap.Int("rejected", r.stats.Rejected),
	)
	return r.Canvas.Render()
}

// DrawObject rasterizes every face of obj into the framebuffer in face
// order. Later faces overwrite earlier ones; there is no depth test.
func (r *Renderer) DrawObject(obj Drawable) {
	r.stats.Objects++

	rot := obj.Transform().RotationMatrix()
	project := r.projector(obj)

	for i := range obj.FaceCount() {
		r.stats.Faces++

		idx := obj.FaceIndices(i)
		var (
			model  [3]math3d.Vec3
			screen [3]math3d.Vec3
			ok     = true
		)
		for k, n := range idx {
			model[k] = obj.Vertex(n - 1)
			screen[k] = project(n - 1)
			if !onScreenPlane(screen[k]) {
				ok = false
			}
		}
		if !ok {
			r.stats.Rejected++
			continue
		}

		switch r.mode {
		case ModeFilled:
			intensity := faceIntensity(model, rot, r.light)
			if intensity <= 0 {
				r.stats.Unlit++
				continue
			}
			r.fillTriangle(screen, Gray(uint8(intensity)))
		default:
			r.drawEdges(screen)
		}
		r.stats.Drawn++
	}
}

// projector returns the function mapping vertex i (0-based) of obj to pixel
// coordinates.
func (r *Renderer) projector(obj Drawable) func(i int) math3d.Vec3 {
	if r.camera == nil {
		return obj.TransformedVertex
	}

	scale := obj.Transform().Scale
	mvp := r.camera.ProjectionMatrix().Mul(obj.ModelMatrix().Mul(r.camera.ViewMatrix()))
	w, h := r.Size()
	hw, hh := float64(w)/2, float64(h)/2

	return func(i int) math3d.Vec3 {
		ndc := mvp.MulVec4(math3d.V4FromV3(obj.Vertex(i).Mul(scale), 1)).PerspectiveDivide()
		return math3d.V3(ndc.X*hw+hw, ndc.Y*hh+hh, ndc.Z)
	}
}

func onScreenPlane(p math3d.Vec3) bool {
	return p.IsFinite() && math.Abs(p.X) <= guardBand && math.Abs(p.Y) <= guardBand
}

// faceIntensity returns the flat shading intensity in [-255, 255] of a
// face: the normal cross(v2-v0, v1-v0) of the model space vertices, rotated
// by rot, against the light direction. Scale does not affect the normal.
func faceIntensity(v [3]math3d.Vec3, rot math3d.Mat4, light math3d.Vec3) int {
	n := rot.MulVec3Dir(v[2].Sub(v[0]).Cross(v[1].Sub(v[0]))).Normalize()
	return int(n.Dot(light.Normalize()) * 255)
}

func (r *Renderer) drawEdges(p [3]math3d.Vec3) {
	for k := range 3 {
		a, b := p[k], p[(k+1)%3]
		r.fb.DrawLine(pixel(a.X), pixel(a.Y), pixel(b.X), pixel(b.Y), r.WireColor)
	}
}

func pixel(v float64) int {
	return int(math.Floor(v))
}

// fillTriangle lights every integer pixel whose three edge functions are
// all non-negative. Only counter-clockwise triangles (in y-up screen space)
// produce pixels.
func (r *Renderer) fillTriangle(p [3]math3d.Vec3, c color.RGBA) {
	minX := max(0, int(math.Floor(min3(p[0].X, p[1].X, p[2].X))))
	maxX := min(r.fb.Width-1, int(math.Ceil(max3(p[0].X, p[1].X, p[2].X))))
	minY := max(0, int(math.Floor(min3(p[0].Y, p[1].Y, p[2].Y))))
	maxY := min(r.fb.Height-1, int(math.Ceil(max3(p[0].Y, p[1].Y, p[2].Y))))
	if minX > maxX || minY > maxY {
		return
	}

	// Edge 0: v0 -> v1, Edge 1: v1 -> v2, Edge 2: v2 -> v0
	A0, B0, C0 := edgeCoeffs(p[0].X, p[0].Y, p[1].X, p[1].Y)
	A1, B1, C1 := edgeCoeffs(p[1].X, p[1].Y, p[2].X, p[2].Y)
	A2, B2, C2 := edgeCoeffs(p[2].X, p[2].Y, p[0].X, p[0].Y)

	for y := minY; y <= maxY; y++ {
		py := float64(y)
		for x := minX; x <= maxX; x++ {
			px := float64(x)
			if edgeFunc(A0, B0, C0, px, py) >= 0 &&
				edgeFunc(A1, B1, C1, px, py) >= 0 &&
				edgeFunc(A2, B2, C2, px, py) >= 0 {
				r.fb.SetPixel(x, y, c)
			}
		}
	}
}

// edgeCoeffs returns A, B, C for the edge function
// edge(x, y) = A*x + B*y + C, which is positive left of the edge
// (x0, y0) -> (x1, y1), negative right of it and zero on it.
func edgeCoeffs(x0, y0, x1, y1 float64) (A, B, C float64) {
	A = y0 - y1
	B = x1 - x0
	C = x0*y1 - x1*y0
	return
}

// edgeFunc evaluates an edge function at point (x, y).
func edgeFunc(A, B, C, x, y float64) float64 {
	return A*x + B*y + C
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}

func max3(a, b, c float64) float64 {
	return math.Max(a, math.Max(b, c))
}
