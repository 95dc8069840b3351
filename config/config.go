// Package config loads the visualizer settings from defaults and an optional CUE file
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/lixenwraith/hanoi/constants"
	"github.com/lixenwraith/hanoi/puzzle"
)

// Config is the full set of user-tunable settings
type Config struct {
	Geometry puzzle.Geometry `json:"geometry"`
	Discs    DiscRange       `json:"discs"`
	Terminal TerminalConfig  `json:"terminal"`
	Motion   string          `json:"motion"`
	FrameMs  int             `json:"frameMs"`
	Sound    bool            `json:"sound"`
}

// DiscRange bounds the disc-count selector
type DiscRange struct {
	Min     int `json:"min"`
	Max     int `json:"max"`
	Initial int `json:"initial"`
}

// TerminalConfig sets how many canvas pixels one terminal cell covers
type TerminalConfig struct {
	CellWidth  float64 `json:"cellWidth"`
	CellHeight float64 `json:"cellHeight"`
}

// Default returns the stock 800x600 canvas settings
func Default() Config {
	return Config{
		Geometry: puzzle.DefaultGeometry(),
		Discs: DiscRange{
			Min:     constants.MinDiscs,
			Max:     constants.MaxDiscs,
			Initial: constants.InitialDiscs,
		},
		Terminal: TerminalConfig{
			CellWidth:  constants.CellWidth,
			CellHeight: constants.CellHeight,
		},
		Motion:  constants.MotionTick,
		FrameMs: int(constants.FrameUpdateInterval / time.Millisecond),
		Sound:   true,
	}
}

// FrameInterval returns the frame period
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameMs) * time.Millisecond
}

// Validate checks cross-field constraints the schema cannot express
func (c Config) Validate() error {
	if err := c.Geometry.Validate(); err != nil {
		return err
	}

	d := c.Discs
	if d.Min < 1 || d.Max > constants.DiscLimit || d.Min > d.Max {
		return fmt.Errorf("discs: need 1 <= min <= max <= %d, got min=%d max=%d", constants.DiscLimit, d.Min, d.Max)
	}
	if d.Initial < d.Min || d.Initial > d.Max {
		return fmt.Errorf("discs: initial %d outside [%d, %d]", d.Initial, d.Min, d.Max)
	}

	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return errors.New("terminal: cell size must be positive")
	}
	if c.FrameMs <= 0 {
		return errors.New("frameMs must be positive")
	}
	switch c.Motion {
	case constants.MotionTick, constants.MotionDelta:
	default:
		return fmt.Errorf("motion: unknown mode %q", c.Motion)
	}
	return nil
}
