package shuriken

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// EmitterFile is the YAML form of an emitter: playback settings plus one
// block per spawn module. Optional modules are enabled by being present.
type EmitterFile struct {
	Name           string `yaml:"name"`
	AutoRandomSeed bool   `yaml:"auto_random_seed"`
	RenderMode     string `yaml:"render_mode"`
	Seed           uint32 `yaml:"seed"`
	OnSpawnError   string `yaml:"on_spawn_error"` // skip | halt

	MaxParticles     int        `yaml:"max_particles"`
	SpawnRate        float32    `yaml:"spawn_rate"`
	Duration         float32    `yaml:"duration"`
	Looping          bool       `yaml:"looping"`
	StartSpeed       [2]float32 `yaml:"start_speed"`
	Gravity          float32    `yaml:"gravity"`
	Drag             float32    `yaml:"drag"`
	ConeAngleDegrees float32    `yaml:"cone_angle"`

	StartColor                 ModuleFile `yaml:"start_color"`
	StartSize                  ModuleFile `yaml:"start_size"`
	StartRotation              ModuleFile `yaml:"start_rotation"`
	RandomizeRotationDirection float32    `yaml:"randomize_rotation_direction"`
	StartLifetime              ModuleFile `yaml:"start_lifetime"`

	ColorOverLifetime *ModuleFile       `yaml:"color_over_lifetime"`
	SizeOverLifetime  *ModuleFile       `yaml:"size_over_lifetime"`
	TextureSheet      *TextureSheetFile `yaml:"texture_sheet"`
}

// ModuleFile is shared by every module; each mode reads only the fields it
// needs.
type ModuleFile struct {
	Mode         string    `yaml:"mode"` // constant | curve | random_constants | random_curves
	SeparateAxes bool      `yaml:"separate_axes"`
	Constant     Floats    `yaml:"constant"`
	Min          Floats    `yaml:"min"`
	Max          Floats    `yaml:"max"`
	Curve        []KeyFile `yaml:"curve"`
	MinCurve     []KeyFile `yaml:"min_curve"`
	MaxCurve     []KeyFile `yaml:"max_curve"`
}

type KeyFile struct {
	Time  float32 `yaml:"time"`
	Value Floats  `yaml:"value"`
}

type TextureSheetFile struct {
	Tiles      [2]int     `yaml:"tiles"`
	StartFrame ModuleFile `yaml:"start_frame"`
	Frame      ModuleFile `yaml:"frame"`
	Cycles     *float32   `yaml:"cycles"`
	Rows       string     `yaml:"rows"` // whole_sheet | single_row
	Row        int        `yaml:"row"`
	RandomRow  bool       `yaml:"random_row"`
}

const (
	modeConstant        = "constant"
	modeCurve           = "curve"
	modeRandomConstants = "random_constants"
	modeRandomCurves    = "random_curves"
)

// Floats accepts either a bare number or a sequence of numbers.
type Floats []float32

func (f *Floats) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var v float32
		if err := node.Decode(&v); err != nil {
			return err
		}
		*f = Floats{v}
		return nil
	case yaml.SequenceNode:
		var vs []float32
		if err := node.Decode(&vs); err != nil {
			return err
		}
		*f = vs
		return nil
	}
	return fmt.Errorf("line %d: expected number or list of numbers", node.Line)
}

func (f Floats) scalar() (float32, error) {
	if len(f) != 1 {
		return 0, fmt.Errorf("expected 1 value, got %d", len(f))
	}
	return f[0], nil
}

func (f Floats) vec3() (mgl32.Vec3, error) {
	switch len(f) {
	case 1:
		return splat3(f[0]), nil
	case 3:
		return mgl32.Vec3{f[0], f[1], f[2]}, nil
	}
	return mgl32.Vec3{}, fmt.Errorf("expected 1 or 3 values, got %d", len(f))
}

func (f Floats) vec4() (mgl32.Vec4, error) {
	if len(f) != 4 {
		return mgl32.Vec4{}, fmt.Errorf("expected 4 values, got %d", len(f))
	}
	return mgl32.Vec4{f[0], f[1], f[2], f[3]}, nil
}

// DecodeEmitter parses one YAML emitter document and converts it to a
// validated config and its settings.
func DecodeEmitter(data []byte) (*EmitterConfig, EmitterSettings, error) {
	var f EmitterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, EmitterSettings{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return f.Convert()
}

// Convert builds the typed config. Conversion problems and Validate problems
// are reported together.
func (f *EmitterFile) Convert() (*EmitterConfig, EmitterSettings, error) {
	c := &converter{}
	cfg := &EmitterConfig{
		Name:                       f.Name,
		AutoRandomSeed:             f.AutoRandomSeed,
		RandomizeRotationDirection: f.RandomizeRotationDirection,
	}
	cfg.StartColor = c.startColor("start_color", f.StartColor)
	cfg.StartSize = c.startSize("start_size", f.StartSize)
	cfg.StartRotation = c.startRotation("start_rotation", f.StartRotation)
	cfg.StartLifetime = c.startLifetime("start_lifetime", f.StartLifetime)
	if f.ColorOverLifetime != nil {
		cfg.ColorOverLifetime = c.colorOverLifetime("color_over_lifetime", *f.ColorOverLifetime)
	}
	if f.SizeOverLifetime != nil {
		cfg.SizeOverLifetime = c.sizeOverLifetime("size_over_lifetime", *f.SizeOverLifetime)
	}
	if f.TextureSheet != nil {
		cfg.TextureSheet = c.textureSheet("texture_sheet", *f.TextureSheet)
	}

	settings := EmitterSettings{
		MaxParticles:     f.MaxParticles,
		SpawnRate:        f.SpawnRate,
		Duration:         f.Duration,
		Looping:          f.Looping,
		StartSpeedRange:  f.StartSpeed,
		Gravity:          f.Gravity,
		Drag:             f.Drag,
		ConeAngleDegrees: f.ConeAngleDegrees,
		Seed:             f.Seed,
	}
	if f.RenderMode != "" {
		m, ok := ParseRenderMode(f.RenderMode)
		if !ok {
			c.failf("render_mode", "unknown render mode %q", f.RenderMode)
		}
		settings.RenderMode = m
	}
	switch f.OnSpawnError {
	case "", "skip":
		settings.ErrorPolicy = SkipParticle
	case "halt":
		settings.ErrorPolicy = HaltSystem
	default:
		c.failf("on_spawn_error", "unknown policy %q", f.OnSpawnError)
	}
	if settings.MaxParticles < 0 {
		c.failf("max_particles", "must be >= 0")
	}
	if settings.SpawnRate < 0 {
		c.failf("spawn_rate", "must be >= 0")
	}

	c.errs = append(c.errs, cfg.problems()...)
	if len(c.errs) > 0 {
		return nil, EmitterSettings{}, fmt.Errorf("%w %q: %s", ErrInvalidConfig, f.Name, strings.Join(c.errs, "; "))
	}
	return cfg, settings, nil
}

type converter struct {
	errs []string
}

func (c *converter) failf(field, format string, args ...any) {
	c.errs = append(c.errs, field+": "+fmt.Sprintf(format, args...))
}

func (c *converter) check(field string, err error) {
	if err != nil {
		c.failf(field, "%v", err)
	}
}

func (c *converter) color(field string, v Floats) mgl32.Vec4 {
	out, err := v.vec4()
	c.check(field, err)
	return out
}

func (c *converter) colorKeys(field string, keys []KeyFile) []ColorKey {
	out := make([]ColorKey, len(keys))
	for i, k := range keys {
		out[i] = ColorKey{Time: k.Time, Color: c.color(fmt.Sprintf("%s[%d]", field, i), k.Value)}
	}
	return out
}

func (c *converter) gradient(field string, keys []KeyFile) Gradient {
	g := Gradient{Keys: make([]float32, len(keys)), Values: make([]float32, len(keys))}
	for i, k := range keys {
		v, err := k.Value.scalar()
		c.check(fmt.Sprintf("%s[%d]", field, i), err)
		g.Keys[i] = k.Time
		g.Values[i] = v
	}
	return g
}

func (c *converter) scalar(field string, v Floats) float32 {
	out, err := v.scalar()
	c.check(field, err)
	return out
}

func (c *converter) vec3(field string, v Floats) mgl32.Vec3 {
	out, err := v.vec3()
	c.check(field, err)
	return out
}

func (c *converter) unsupported(field string, m ModuleFile) {
	c.failf(field, "unsupported mode %q", m.Mode)
}

func (c *converter) startColor(field string, m ModuleFile) StartColorMode {
	switch m.Mode {
	case modeConstant:
		return ColorConstant{Color: c.color(field+".constant", m.Constant)}
	case modeRandomConstants:
		return ColorRandomBetweenTwoConstants{
			Min: c.color(field+".min", m.Min),
			Max: c.color(field+".max", m.Max),
		}
	}
	c.unsupported(field, m)
	return nil
}

func (c *converter) colorOverLifetime(field string, m ModuleFile) ColorOverLifetimeMode {
	switch m.Mode {
	case modeConstant:
		return ColorConstant{Color: c.color(field+".constant", m.Constant)}
	case modeCurve:
		return ColorGradient{Keys: c.colorKeys(field+".curve", m.Curve)}
	case modeRandomConstants:
		return ColorRandomBetweenTwoConstants{
			Min: c.color(field+".min", m.Min),
			Max: c.color(field+".max", m.Max),
		}
	case modeRandomCurves:
		return ColorRandomBetweenTwoGradients{
			Min: c.colorKeys(field+".min_curve", m.MinCurve),
			Max: c.colorKeys(field+".max_curve", m.MaxCurve),
		}
	}
	c.unsupported(field, m)
	return nil
}

func (c *converter) startSize(field string, m ModuleFile) StartSizeMode {
	switch {
	case m.Mode == modeConstant && m.SeparateAxes:
		return SizeConstantSeparate{Size: c.vec3(field+".constant", m.Constant)}
	case m.Mode == modeConstant:
		return SizeConstant{Size: c.scalar(field+".constant", m.Constant)}
	case m.Mode == modeRandomConstants && m.SeparateAxes:
		return SizeRandomRangeSeparate{Min: c.vec3(field+".min", m.Min), Max: c.vec3(field+".max", m.Max)}
	case m.Mode == modeRandomConstants:
		return SizeRandomRange{Min: c.scalar(field+".min", m.Min), Max: c.scalar(field+".max", m.Max)}
	}
	c.unsupported(field, m)
	return nil
}

func (c *converter) sizeOverLifetime(field string, m ModuleFile) SizeOverLifetimeMode {
	switch {
	case m.Mode == modeCurve:
		return SizeCurve{Curve: c.gradient(field+".curve", m.Curve)}
	case m.Mode == modeRandomCurves && m.SeparateAxes:
		return SizeRandomBetweenTwoCurvesSeparate{Min: c.vec3(field+".min", m.Min), Max: c.vec3(field+".max", m.Max)}
	case m.Mode == modeRandomCurves:
		return SizeRandomBetweenTwoCurves{Min: c.scalar(field+".min", m.Min), Max: c.scalar(field+".max", m.Max)}
	}
	c.unsupported(field, m)
	return nil
}

func (c *converter) startRotation(field string, m ModuleFile) StartRotationMode {
	switch {
	case m.Mode == modeConstant && m.SeparateAxes:
		return RotationConstantSeparate{Angles: c.vec3(field+".constant", m.Constant)}
	case m.Mode == modeConstant:
		return RotationConstant{Angle: c.scalar(field+".constant", m.Constant)}
	case m.Mode == modeRandomConstants && m.SeparateAxes:
		return RotationRandomRangeSeparate{Min: c.vec3(field+".min", m.Min), Max: c.vec3(field+".max", m.Max)}
	case m.Mode == modeRandomConstants:
		return RotationRandomRange{Min: c.scalar(field+".min", m.Min), Max: c.scalar(field+".max", m.Max)}
	}
	c.unsupported(field, m)
	return nil
}

func (c *converter) startLifetime(field string, m ModuleFile) StartLifetimeMode {
	switch m.Mode {
	case modeConstant:
		return LifetimeConstant{Seconds: c.scalar(field+".constant", m.Constant)}
	case modeCurve:
		return LifetimeCurve{Curve: c.gradient(field+".curve", m.Curve)}
	case modeRandomConstants:
		return LifetimeRandomRange{Min: c.scalar(field+".min", m.Min), Max: c.scalar(field+".max", m.Max)}
	case modeRandomCurves:
		return LifetimeRandomBetweenTwoCurves{
			Min: c.gradient(field+".min_curve", m.MinCurve),
			Max: c.gradient(field+".max_curve", m.MaxCurve),
		}
	}
	c.unsupported(field, m)
	return nil
}

func (c *converter) startFrame(field string, m ModuleFile) StartFrameMode {
	switch m.Mode {
	case "":
		return FrameConstant{}
	case modeConstant:
		return FrameConstant{Frame: c.scalar(field+".constant", m.Constant)}
	case modeRandomConstants:
		return FrameRandomRange{Min: c.scalar(field+".min", m.Min), Max: c.scalar(field+".max", m.Max)}
	}
	c.unsupported(field, m)
	return nil
}

func (c *converter) frameOverTime(field string, m ModuleFile) FrameOverTimeMode {
	switch m.Mode {
	case "":
		return FrameConstant{}
	case modeConstant:
		return FrameConstant{Frame: c.scalar(field+".constant", m.Constant)}
	case modeCurve:
		return FrameCurve{Curve: c.gradient(field+".curve", m.Curve)}
	case modeRandomConstants:
		return FrameRandomRange{Min: c.scalar(field+".min", m.Min), Max: c.scalar(field+".max", m.Max)}
	case modeRandomCurves:
		return FrameRandomBetweenTwoCurves{
			Min: c.gradient(field+".min_curve", m.MinCurve),
			Max: c.gradient(field+".max_curve", m.MaxCurve),
		}
	}
	c.unsupported(field, m)
	return nil
}

func (c *converter) textureSheet(field string, f TextureSheetFile) *TextureSheetAnimation {
	ts := &TextureSheetAnimation{
		TilesX:        f.Tiles[0],
		TilesY:        f.Tiles[1],
		StartFrame:    c.startFrame(field+".start_frame", f.StartFrame),
		FrameOverTime: c.frameOverTime(field+".frame", f.Frame),
		Cycles:        1,
	}
	if f.Cycles != nil {
		ts.Cycles = *f.Cycles
	}
	switch f.Rows {
	case "", "whole_sheet":
		ts.Rows = SheetWholeSheet{}
	case "single_row":
		ts.Rows = SheetSingleRow{Row: f.Row, RandomRow: f.RandomRow}
	default:
		c.failf(field+".rows", "unknown row mode %q", f.Rows)
	}
	return ts
}
