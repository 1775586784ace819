package shuriken

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// resolveUV picks the start tile of a texture sheet. A nil sheet yields the
// full texture.
func resolveUV(ts *TextureSheetAnimation, s *sampler) mgl32.Vec4 {
	if ts == nil {
		return FullTextureUV
	}
	tilesX := float32(ts.TilesX)
	tilesY := float32(ts.TilesY)
	subU := 1 / tilesX
	subV := 1 / tilesY

	var frames float32
	switch m := ts.StartFrame.(type) {
	case FrameConstant:
		frames = m.Frame
	case FrameRandomRange:
		frames = lerp(m.Min, m.Max, s.draw(SlotStartFrame))
	}

	switch m := ts.FrameOverTime.(type) {
	case FrameConstant:
		frames += m.Frame * ts.Cycles
	case FrameRandomRange:
		frames += lerp(m.Min, m.Max, s.draw(SlotFrameProgression)) * ts.Cycles
	}

	var row float32
	switch m := ts.Rows.(type) {
	case SheetWholeSheet:
		row = floor32(frames / tilesX)
	case SheetSingleRow:
		if m.RandomRow {
			row = floor32(tilesY * s.draw(SlotSheetRow))
		} else {
			row = float32(m.Row)
		}
	}
	col := floor32(float32(math.Mod(float64(frames), float64(tilesX))))

	return mgl32.Vec4{subU, subV, col * subU, row * subV}
}

func floor32(v float32) float32 { return float32(math.Floor(float64(v))) }
