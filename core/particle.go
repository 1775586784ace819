package core

// ParticleInstance is one live particle packed for the particle render pass.
// Fields are plain arrays so a slice of instances can be uploaded as is.
type ParticleInstance struct {
	Pos      [3]float32
	Age      float32 // normalized, 0 at spawn and 1 at death
	Size     [3]float32
	_        float32
	Rotation [3]float32
	_        float32
	Color    [4]float32
	UV       [4]float32 // sub-U, sub-V, offset-U, offset-V
}
