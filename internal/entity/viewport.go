// Package entity implements the moving cubes: where each kind spawns, how
// it moves every tick, and what happens when it crosses the viewport edge.
//
// Everything here is deterministic given a *rand.Rand and never performs
// I/O. Sprites are obtained through an AssetSource supplied by the caller.
package entity

import (
	"errors"
	"fmt"
)

// ErrInvalidViewport is returned by NewViewport for unusable dimensions.
var ErrInvalidViewport = errors.New("entity: invalid viewport")

// Viewport is the visible play area in pixels plus the spawn buffer, the
// margin outside the edges inside which a cube still counts as on screen.
type Viewport struct {
	Width       int
	Height      int
	SpawnBuffer int
}

// NewViewport validates and returns a viewport. The spawn buffer must be
// non-negative and smaller than half of the shorter side so that spawn
// ranges are never empty.
func NewViewport(width, height, spawnBuffer int) (Viewport, error) {
	vp := Viewport{Width: width, Height: height, SpawnBuffer: spawnBuffer}
	if err := vp.Validate(); err != nil {
		return Viewport{}, err
	}
	return vp, nil
}

// Validate checks the viewport invariants.
func (vp Viewport) Validate() error {
	if vp.Width <= 0 || vp.Height <= 0 {
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidViewport, vp.Width, vp.Height)
	}
	if vp.SpawnBuffer < 0 {
		return fmt.Errorf("%w: spawn buffer %d is negative", ErrInvalidViewport, vp.SpawnBuffer)
	}
	if limit := min(vp.Width, vp.Height); vp.SpawnBuffer*2 >= limit {
		return fmt.Errorf("%w: spawn buffer %d must be less than half of %d", ErrInvalidViewport, vp.SpawnBuffer, limit)
	}
	return nil
}
