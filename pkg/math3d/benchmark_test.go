package math3d

import (
	"testing"
)

func BenchmarkMat4Mul(b *testing.B) {
	m1 := Translate(V3(1, 2, 3))
	m2 := RotateY(0.5)

	for b.Loop() {
		_ = m1.Mul(m2)
	}
}

func BenchmarkMat4MulVec4(b *testing.B) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5))
	v := V4(1, 2, 3, 1)

	for b.Loop() {
		_ = m.MulVec4(v)
	}
}

func BenchmarkTransformApply(b *testing.B) {
	t := Transform{Position: V3(1, 2, 3), Rotation: V3(10, 20, 30), Scale: V3(2, 2, 2)}
	v := V3(1, 2, 3)

	for b.Loop() {
		_ = t.Apply(v)
	}
}

func BenchmarkModelViewProjection(b *testing.B) {
	// Same composition the renderer performs once per object.
	t := Transform{Position: V3(0, 0, -5), Rotation: V3(30, 45, 0), Scale: One3()}
	view := LookAt(V3(0, 0, 0), Forward(), Up())
	proj := Perspective(1.5708, 16.0/9.0, 1, 1000)

	for b.Loop() {
		_ = proj.Mul(t.Matrix().Mul(view))
	}
}

func BenchmarkVec3Cross(b *testing.B) {
	v1 := V3(1, 2, 3)
	v2 := V3(4, 5, 6)

	for b.Loop() {
		_ = v1.Cross(v2).Normalize()
	}
}
