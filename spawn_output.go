package shuriken

import "github.com/go-gl/mathgl/mgl32"

// FullTextureUV addresses the whole texture: sub-U, sub-V, offset-U, offset-V.
var FullTextureUV = mgl32.Vec4{1, 1, 0, 0}

// SpawnOutput is the start state of one particle. Resolve overwrites it in
// place, so callers copy what they need before the next spawn.
type SpawnOutput struct {
	Color    mgl32.Vec4
	Size     mgl32.Vec3
	Rotation mgl32.Vec3
	Lifetime float32
	UV       mgl32.Vec4
}
