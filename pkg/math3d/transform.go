package math3d

// Transform places an object in the world. Rotation holds Euler angles in
// degrees about the x, y and z axes.
type Transform struct {
	Position Vec3
	Rotation Vec3
	Scale    Vec3
}

// NewTransform returns the identity transform: no translation, no rotation,
// unit scale.
func NewTransform() Transform {
	return Transform{Scale: One3()}
}

// RotationMatrix returns Rz * Ry * Rx.
func (t Transform) RotationMatrix() Mat4 {
	if t.Rotation == (Vec3{}) {
		return Identity()
	}
	return RotateZ(Radians(t.Rotation.Z)).
		Mul(RotateY(Radians(t.Rotation.Y))).
		Mul(RotateX(Radians(t.Rotation.X)))
}

// Matrix returns Translate(Position) * Rotation. Scale is not part of the
// matrix; it is applied per vertex before the matrix.
func (t Transform) Matrix() Mat4 {
	return Translate(t.Position).Mul(t.RotationMatrix())
}

// Apply maps a model-space point to world space: rotate, then scale, then
// translate.
func (t Transform) Apply(v Vec3) Vec3 {
	return t.RotationMatrix().MulVec3Dir(v).Mul(t.Scale).Add(t.Position)
}
