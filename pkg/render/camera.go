package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/taigrr/bren/pkg/math3d"
)

// ErrInvalidCamera is returned when camera parameters cannot produce a
// usable projection.
var ErrInvalidCamera = errors.New("invalid camera")

// Camera is a fixed perspective camera at the origin looking down -Z with +Y
// up. It cannot move; objects are placed in front of it instead.
type Camera struct {
	aspect float64 // Width / Height
	fov    float64 // Vertical field of view in radians
	near   float64
	far    float64

	view math3d.Mat4
	proj math3d.Mat4
}

// NewCamera creates a camera. fovy is the vertical field of view in radians
// and must lie in (0, pi); aspect must be positive; 0 < near < far.
func NewCamera(aspect, fovy, near, far float64) (*Camera, error) {
	for _, v := range []struct {
		name string
		val  float64
	}{{"aspect", aspect}, {"fov", fovy}, {"near", near}, {"far", far}} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return nil, fmt.Errorf("%w: %s is not finite", ErrInvalidCamera, v.name)
		}
	}

	switch {
	case aspect <= 0:
		return nil, fmt.Errorf("%w: aspect %v must be positive", ErrInvalidCamera, aspect)
	case fovy <= 0 || fovy >= math.Pi:
		return nil, fmt.Errorf("%w: fov %v must be in (0, pi)", ErrInvalidCamera, fovy)
	case near <= 0:
		return nil, fmt.Errorf("%w: near %v must be positive", ErrInvalidCamera, near)
	case far <= near:
		return nil, fmt.Errorf("%w: far %v must be greater than near %v", ErrInvalidCamera, far, near)
	}

	return &Camera{
		aspect: aspect,
		fov:    fovy,
		near:   near,
		far:    far,
		view:   math3d.LookAt(math3d.V3(0, 0, 0), math3d.Forward(), math3d.Up()),
		proj:   math3d.Perspective(fovy, aspect, near, far),
	}, nil
}

// DefaultCamera returns a camera with a 90 degree field of view, near plane
// at 1 and far plane at 1000.
func DefaultCamera(aspect float64) (*Camera, error) {
	return NewCamera(aspect, math.Pi/2, 1, 1000)
}

// ViewMatrix returns the view matrix.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	return c.view
}

// ProjectionMatrix returns the projection matrix.
func (c *Camera) ProjectionMatrix() math3d.Mat4 {
	return c.proj
}

// Aspect returns the aspect ratio.
func (c *Camera) Aspect() float64 { return c.aspect }

// FOV returns the vertical field of view in radians.
func (c *Camera) FOV() float64 { return c.fov }

// Near returns the near plane distance.
func (c *Camera) Near() float64 { return c.near }

// Far returns the far plane distance.
func (c *Camera) Far() float64 { return c.far }
