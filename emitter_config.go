package shuriken

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidConfig = errors.New("invalid emitter config")

// EmitterConfig is the authored, read-only description of how particles
// start. Optional modules are disabled when nil.
type EmitterConfig struct {
	Name string

	// AutoRandomSeed draws from the ambient source instead of the system's
	// RandomState. Output is then not reproducible.
	AutoRandomSeed bool

	StartColor    StartColorMode
	StartSize     StartSizeMode
	StartRotation StartRotationMode
	StartLifetime StartLifetimeMode

	// RandomizeRotationDirection is the probability in [0,1] that a
	// particle's start rotation is negated.
	RandomizeRotationDirection float32

	ColorOverLifetime ColorOverLifetimeMode
	SizeOverLifetime  SizeOverLifetimeMode
	TextureSheet      *TextureSheetAnimation
}

type TextureSheetAnimation struct {
	TilesX, TilesY int
	StartFrame     StartFrameMode
	FrameOverTime  FrameOverTimeMode
	Cycles         float32
	Rows           SheetRowMode
}

// Validate reports every problem found, wrapped in ErrInvalidConfig.
func (c *EmitterConfig) Validate() error {
	if errs := c.problems(); len(errs) > 0 {
		return fmt.Errorf("%w %q: %s", ErrInvalidConfig, c.Name, strings.Join(errs, "; "))
	}
	return nil
}

func (c *EmitterConfig) problems() []string {
	var errs []string

	if c.StartColor == nil {
		errs = append(errs, "start_color is required")
	}
	if c.StartSize == nil {
		errs = append(errs, "start_size is required")
	}
	if c.StartRotation == nil {
		errs = append(errs, "start_rotation is required")
	}
	if c.RandomizeRotationDirection < 0 || c.RandomizeRotationDirection > 1 {
		errs = append(errs, "randomize_rotation_direction must be in [0,1]")
	}

	switch lt := c.StartLifetime.(type) {
	case nil:
		errs = append(errs, "start_lifetime is required")
	case LifetimeCurve:
		if err := lt.Curve.Validate(); err != nil {
			errs = append(errs, "start_lifetime.curve: "+err.Error())
		}
	case LifetimeRandomBetweenTwoCurves:
		if err := lt.Min.Validate(); err != nil {
			errs = append(errs, "start_lifetime.min: "+err.Error())
		}
		if err := lt.Max.Validate(); err != nil {
			errs = append(errs, "start_lifetime.max: "+err.Error())
		}
	}

	if ts := c.TextureSheet; ts != nil {
		if ts.TilesX < 1 || ts.TilesY < 1 {
			errs = append(errs, "texture_sheet.tiles must be >= 1 on both axes")
		}
		if ts.StartFrame == nil {
			errs = append(errs, "texture_sheet.start_frame is required")
		}
		if ts.FrameOverTime == nil {
			errs = append(errs, "texture_sheet.frame is required")
		}
		switch rows := ts.Rows.(type) {
		case nil:
			errs = append(errs, "texture_sheet.rows is required")
		case SheetSingleRow:
			if !rows.RandomRow && (rows.Row < 0 || rows.Row >= ts.TilesY) {
				errs = append(errs, fmt.Sprintf("texture_sheet.row %d outside [0,%d)", rows.Row, ts.TilesY))
			}
		}
	}

	return errs
}
