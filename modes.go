package shuriken

import "github.com/go-gl/mathgl/mgl32"

// Each module's mode is a sealed interface; the concrete type is the mode and
// carries only the data that mode reads.

type StartColorMode interface{ startColor() }

type ColorOverLifetimeMode interface{ colorOverLifetime() }

type ColorConstant struct {
	Color mgl32.Vec4
}

type ColorRandomBetweenTwoConstants struct {
	Min, Max mgl32.Vec4
}

// ColorKey is one stop of a color gradient.
type ColorKey struct {
	Time  float32
	Color mgl32.Vec4
}

// ColorGradient is sampled over each particle's life by the renderer and has
// no effect at spawn.
type ColorGradient struct {
	Keys []ColorKey
}

// ColorRandomBetweenTwoGradients is sampled over life only, like ColorGradient.
type ColorRandomBetweenTwoGradients struct {
	Min, Max []ColorKey
}

func (ColorConstant) startColor()                  {}
func (ColorRandomBetweenTwoConstants) startColor() {}

func (ColorConstant) colorOverLifetime()                  {}
func (ColorRandomBetweenTwoConstants) colorOverLifetime() {}
func (ColorGradient) colorOverLifetime()                  {}
func (ColorRandomBetweenTwoGradients) colorOverLifetime() {}

type StartSizeMode interface{ startSize() }

type SizeConstant struct {
	Size float32
}

type SizeConstantSeparate struct {
	Size mgl32.Vec3
}

type SizeRandomRange struct {
	Min, Max float32
}

type SizeRandomRangeSeparate struct {
	Min, Max mgl32.Vec3
}

func (SizeConstant) startSize()            {}
func (SizeConstantSeparate) startSize()    {}
func (SizeRandomRange) startSize()         {}
func (SizeRandomRangeSeparate) startSize() {}

type SizeOverLifetimeMode interface{ sizeOverLifetime() }

// SizeCurve scales size over life only.
type SizeCurve struct {
	Curve Gradient
}

// SizeRandomBetweenTwoCurves picks, at spawn, a scale factor between Min and
// Max that multiplies the start size.
type SizeRandomBetweenTwoCurves struct {
	Min, Max float32
}

type SizeRandomBetweenTwoCurvesSeparate struct {
	Min, Max mgl32.Vec3
}

func (SizeCurve) sizeOverLifetime()                          {}
func (SizeRandomBetweenTwoCurves) sizeOverLifetime()         {}
func (SizeRandomBetweenTwoCurvesSeparate) sizeOverLifetime() {}

type StartRotationMode interface{ startRotation() }

type RotationConstant struct {
	Angle float32
}

type RotationConstantSeparate struct {
	Angles mgl32.Vec3
}

type RotationRandomRange struct {
	Min, Max float32
}

type RotationRandomRangeSeparate struct {
	Min, Max mgl32.Vec3
}

func (RotationConstant) startRotation()            {}
func (RotationConstantSeparate) startRotation()    {}
func (RotationRandomRange) startRotation()         {}
func (RotationRandomRangeSeparate) startRotation() {}

type StartLifetimeMode interface{ startLifetime() }

type LifetimeConstant struct {
	Seconds float32
}

// LifetimeCurve samples Curve at the system's emission time.
type LifetimeCurve struct {
	Curve Gradient
}

type LifetimeRandomRange struct {
	Min, Max float32
}

type LifetimeRandomBetweenTwoCurves struct {
	Min, Max Gradient
}

func (LifetimeConstant) startLifetime()               {}
func (LifetimeCurve) startLifetime()                  {}
func (LifetimeRandomRange) startLifetime()            {}
func (LifetimeRandomBetweenTwoCurves) startLifetime() {}

type StartFrameMode interface{ startFrame() }

type FrameOverTimeMode interface{ frameOverTime() }

type FrameConstant struct {
	Frame float32
}

type FrameRandomRange struct {
	Min, Max float32
}

// FrameCurve and FrameRandomBetweenTwoCurves drive playback after spawn and
// add nothing to the start frame.
type FrameCurve struct {
	Curve Gradient
}

type FrameRandomBetweenTwoCurves struct {
	Min, Max Gradient
}

func (FrameConstant) startFrame()    {}
func (FrameRandomRange) startFrame() {}

func (FrameConstant) frameOverTime()               {}
func (FrameRandomRange) frameOverTime()            {}
func (FrameCurve) frameOverTime()                  {}
func (FrameRandomBetweenTwoCurves) frameOverTime() {}

type SheetRowMode interface{ sheetRow() }

// SheetWholeSheet walks frames across every row of the sheet.
type SheetWholeSheet struct{}

// SheetSingleRow keeps a particle on one row, fixed or picked at spawn.
type SheetSingleRow struct {
	Row       int
	RandomRow bool
}

func (SheetWholeSheet) sheetRow() {}
func (SheetSingleRow) sheetRow()  {}

type RenderMode int

const (
	RenderBillboard RenderMode = iota
	RenderStretchedBillboard
	RenderHorizontalBillboard
	RenderVerticalBillboard
	RenderMesh
)

func (m RenderMode) String() string {
	switch m {
	case RenderBillboard:
		return "billboard"
	case RenderStretchedBillboard:
		return "stretched-billboard"
	case RenderHorizontalBillboard:
		return "horizontal-billboard"
	case RenderVerticalBillboard:
		return "vertical-billboard"
	case RenderMesh:
		return "mesh"
	}
	return "unknown"
}

// ParseRenderMode accepts the names produced by String.
func ParseRenderMode(s string) (RenderMode, bool) {
	for m := RenderBillboard; m <= RenderMesh; m++ {
		if m.String() == s {
			return m, true
		}
	}
	return 0, false
}
