package shuriken

import "github.com/go-gl/mathgl/mgl32"

// randomInvertRotation negates angle with probability p.
func randomInvertRotation(s *sampler, angle, p float32) float32 {
	if s.draw(SlotRotationDirection) < p {
		return -angle
	}
	return angle
}

// randomInvertRotation3 flips all three axes together off a single draw.
func randomInvertRotation3(s *sampler, angles mgl32.Vec3, p float32) mgl32.Vec3 {
	if s.draw(SlotRotationDirection) < p {
		return angles.Mul(-1)
	}
	return angles
}
