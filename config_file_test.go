package shuriken

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sparksYAML = `
name: sparks
render_mode: mesh
seed: 1234
on_spawn_error: halt
max_particles: 64
spawn_rate: 30
duration: 2
looping: true
start_speed: [1, 3]
gravity: 9.8
cone_angle: 20

start_color:
  mode: random_constants
  min: [1, 0.5, 0, 1]
  max: [1, 1, 0, 1]
start_size:
  mode: random_constants
  separate_axes: true
  min: [0.1, 0.2, 0.3]
  max: 1
start_rotation:
  mode: constant
  constant: 45
randomize_rotation_direction: 0.5
start_lifetime:
  mode: random_curves
  min_curve:
    - {time: 0, value: 1}
    - {time: 1, value: 2}
  max_curve:
    - {time: 0, value: 2}
    - {time: 1, value: 3}

color_over_lifetime:
  mode: constant
  constant: [1, 1, 1, 0.5]
size_over_lifetime:
  mode: random_curves
  min: 0.5
  max: 1.5
texture_sheet:
  tiles: [4, 2]
  start_frame:
    mode: random_constants
    min: 0
    max: 7
  frame:
    mode: curve
    curve:
      - {time: 0, value: 0}
      - {time: 1, value: 8}
  rows: single_row
  random_row: true
`

func TestDecodeEmitter(t *testing.T) {
	cfg, settings, err := DecodeEmitter([]byte(sparksYAML))
	require.NoError(t, err)

	assert.Equal(t, "sparks", cfg.Name)
	assert.False(t, cfg.AutoRandomSeed)
	assert.Equal(t, ColorRandomBetweenTwoConstants{Min: mgl32.Vec4{1, 0.5, 0, 1}, Max: mgl32.Vec4{1, 1, 0, 1}}, cfg.StartColor)
	assert.Equal(t, SizeRandomRangeSeparate{Min: mgl32.Vec3{0.1, 0.2, 0.3}, Max: mgl32.Vec3{1, 1, 1}}, cfg.StartSize)
	assert.Equal(t, RotationConstant{Angle: 45}, cfg.StartRotation)
	assert.Equal(t, float32(0.5), cfg.RandomizeRotationDirection)
	assert.Equal(t, LifetimeRandomBetweenTwoCurves{
		Min: NewGradient(GradientKey{0, 1}, GradientKey{1, 2}),
		Max: NewGradient(GradientKey{0, 2}, GradientKey{1, 3}),
	}, cfg.StartLifetime)
	assert.Equal(t, ColorConstant{Color: mgl32.Vec4{1, 1, 1, 0.5}}, cfg.ColorOverLifetime)
	assert.Equal(t, SizeRandomBetweenTwoCurves{Min: 0.5, Max: 1.5}, cfg.SizeOverLifetime)

	require.NotNil(t, cfg.TextureSheet)
	assert.Equal(t, 4, cfg.TextureSheet.TilesX)
	assert.Equal(t, 2, cfg.TextureSheet.TilesY)
	assert.Equal(t, FrameRandomRange{Min: 0, Max: 7}, cfg.TextureSheet.StartFrame)
	assert.IsType(t, FrameCurve{}, cfg.TextureSheet.FrameOverTime)
	assert.Equal(t, float32(1), cfg.TextureSheet.Cycles)
	assert.Equal(t, SheetSingleRow{RandomRow: true}, cfg.TextureSheet.Rows)

	assert.Equal(t, EmitterSettings{
		MaxParticles:     64,
		SpawnRate:        30,
		Duration:         2,
		Looping:          true,
		StartSpeedRange:  [2]float32{1, 3},
		Gravity:          9.8,
		ConeAngleDegrees: 20,
		RenderMode:       RenderMesh,
		Seed:             1234,
		ErrorPolicy:      HaltSystem,
	}, settings)
}

func TestDecodeEmitter_SeparateAxesRotation(t *testing.T) {
	doc := `
name: spin
start_color: {mode: constant, constant: [1, 1, 1, 1]}
start_size: {mode: constant, separate_axes: true, constant: [1, 2, 3]}
start_rotation: {mode: random_constants, separate_axes: true, min: [0, 0, 0], max: [10, 20, 30]}
start_lifetime: {mode: curve, curve: [{time: 0, value: 1}, {time: 1, value: 5}]}
`
	cfg, settings, err := DecodeEmitter([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, SizeConstantSeparate{Size: mgl32.Vec3{1, 2, 3}}, cfg.StartSize)
	assert.Equal(t, RotationRandomRangeSeparate{Min: mgl32.Vec3{}, Max: mgl32.Vec3{10, 20, 30}}, cfg.StartRotation)
	assert.Equal(t, LifetimeCurve{Curve: NewGradient(GradientKey{0, 1}, GradientKey{1, 5})}, cfg.StartLifetime)
	assert.Nil(t, cfg.TextureSheet)
	assert.Equal(t, RenderBillboard, settings.RenderMode)
	assert.Equal(t, SkipParticle, settings.ErrorPolicy)
}

func TestDecodeEmitter_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{
			name: "single key lifetime curve",
			doc: `
start_color: {mode: constant, constant: [1, 1, 1, 1]}
start_size: {mode: constant, constant: 1}
start_rotation: {mode: constant, constant: 0}
start_lifetime: {mode: curve, curve: [{time: 0, value: 1}]}
`,
			msg: "start_lifetime.curve",
		},
		{
			name: "unknown mode",
			doc: `
start_color: {mode: gradient}
start_size: {mode: constant, constant: 1}
start_rotation: {mode: constant, constant: 0}
start_lifetime: {mode: constant, constant: 1}
`,
			msg: `unsupported mode "gradient"`,
		},
		{
			name: "wrong color arity",
			doc: `
start_color: {mode: constant, constant: [1, 1, 1]}
start_size: {mode: constant, constant: 1}
start_rotation: {mode: constant, constant: 0}
start_lifetime: {mode: constant, constant: 1}
`,
			msg: "start_color.constant: expected 4 values",
		},
		{
			name: "probability out of range",
			doc: `
start_color: {mode: constant, constant: [1, 1, 1, 1]}
start_size: {mode: constant, constant: 1}
start_rotation: {mode: constant, constant: 0}
randomize_rotation_direction: 2
start_lifetime: {mode: constant, constant: 1}
`,
			msg: "randomize_rotation_direction",
		},
		{
			name: "row outside sheet",
			doc: `
start_color: {mode: constant, constant: [1, 1, 1, 1]}
start_size: {mode: constant, constant: 1}
start_rotation: {mode: constant, constant: 0}
start_lifetime: {mode: constant, constant: 1}
texture_sheet: {tiles: [2, 2], rows: single_row, row: 3}
`,
			msg: "texture_sheet.row 3",
		},
		{
			name: "bad render mode",
			doc: `
render_mode: sideways
start_color: {mode: constant, constant: [1, 1, 1, 1]}
start_size: {mode: constant, constant: 1}
start_rotation: {mode: constant, constant: 0}
start_lifetime: {mode: constant, constant: 1}
`,
			msg: `unknown render mode "sideways"`,
		},
		{
			name: "not yaml",
			doc:  "start_color: [",
			msg:  "invalid emitter config",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := DecodeEmitter([]byte(tt.doc))
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestEmitterConfig_ValidateCollectsAll(t *testing.T) {
	cfg := &EmitterConfig{Name: "empty", RandomizeRotationDirection: -1}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidConfig)
	for _, want := range []string{"start_color", "start_size", "start_rotation", "start_lifetime", "randomize_rotation_direction"} {
		assert.Contains(t, err.Error(), want)
	}
}
