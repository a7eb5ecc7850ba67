package entity

import (
	"image"

	"github.com/vovakirdan/thecubes/internal/core"
)

// Entity is a positioned rectangular sprite with an integer velocity in
// pixels per tick. The game loop owns each entity exclusively.
type Entity struct {
	Kind    Kind
	Rect    core.Rect
	SpeedX  int
	SpeedY  int
	Surface image.Image // opaque to this package
}

// Move advances the rectangle by the current velocity.
func (e *Entity) Move() {
	e.Rect = e.Rect.Move(e.SpeedX, e.SpeedY)
}

// SetSpeed replaces both velocity components.
func (e *Entity) SetSpeed(x, y int) {
	e.SpeedX = x
	e.SpeedY = y
}

// Center returns the center of the entity's rectangle.
func (e *Entity) Center() (int, int) {
	return e.Rect.Center()
}

// tolerance is how far past an edge the entity may travel before it wraps.
// The player must never leave the visible area, so it gets none.
func (e *Entity) tolerance(vp Viewport) int {
	if e.Kind == KindPlayer {
		return 0
	}
	return vp.SpawnBuffer
}

// KeepOnScreen wraps the entity to the opposite side once an edge is more
// than the tolerance outside the viewport. At most one axis is corrected
// per call, checked in left, right, top, bottom order. It reports whether
// the entity was moved.
func (e *Entity) KeepOnScreen(vp Viewport) bool {
	tol := e.tolerance(vp)
	switch {
	case e.Rect.X < -tol:
		e.Rect = e.Rect.Move(vp.Width, 0)
	case e.Rect.Right() > vp.Width+tol:
		e.Rect = e.Rect.Move(-vp.Width, 0)
	case e.Rect.Y < -tol:
		e.Rect = e.Rect.Move(0, vp.Height)
	case e.Rect.Bottom() > vp.Height+tol:
		e.Rect = e.Rect.Move(0, -vp.Height)
	default:
		return false
	}
	return true
}

// IsOffScreen reports whether any edge lies more than the spawn buffer
// outside the viewport. It never modifies the entity.
func (e *Entity) IsOffScreen(vp Viewport) bool {
	b := vp.SpawnBuffer
	return e.Rect.X < -b ||
		e.Rect.Right() > vp.Width+b ||
		e.Rect.Y < -b ||
		e.Rect.Bottom() > vp.Height+b
}
