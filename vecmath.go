package shuriken

import "github.com/go-gl/mathgl/mgl32"

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func lerpVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}

func lerpVec4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return a.Add(b.Sub(a).Mul(t))
}

// mulVec4 multiplies component-wise; mgl32 only offers scalar Mul.
func mulVec4(a, b mgl32.Vec4) mgl32.Vec4 {
	return mgl32.Vec4{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

func splat3(v float32) mgl32.Vec3 { return mgl32.Vec3{v, v, v} }
