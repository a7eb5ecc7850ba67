package entity

import (
	"errors"
	"fmt"
	"image"
	"math/rand"

	"github.com/vovakirdan/thecubes/internal/core"
)

// ErrNegativeSpeed is returned when a cube is built with a negative speed.
var ErrNegativeSpeed = errors.New("entity: speed must not be negative")

// playerInset shrinks the player sprite on each axis to leave a border.
const playerInset = 5

// AssetSource supplies the sprite for a kind. The returned rectangle has
// the sprite's size; its position is ignored.
type AssetSource interface {
	Sprite(kind Kind) (image.Image, core.Rect, error)
}

// Factory builds entities for one viewport. RNG drives spawn placement
// and the diamond's coin flips.
type Factory struct {
	Viewport Viewport
	RNG      *rand.Rand
	Assets   AssetSource
}

// NewFactory returns a Factory with the given collaborators.
func NewFactory(vp Viewport, rng *rand.Rand, assets AssetSource) *Factory {
	return &Factory{Viewport: vp, RNG: rng, Assets: assets}
}

// New builds an entity of the given kind. Speed is ignored for the player
// and for rocks, which never move on their own.
func (f *Factory) New(kind Kind, speed int) (*Entity, error) {
	switch kind {
	case KindPlayer:
		return f.NewPlayer()
	case KindHorizontalLeft:
		return f.NewHorizontalLeft(speed)
	case KindHorizontalRight:
		return f.NewHorizontalRight(speed)
	case KindVerticalTop:
		return f.NewVerticalTop(speed)
	case KindVerticalBottom:
		return f.NewVerticalBottom(speed)
	case KindRock:
		return f.NewRock()
	case KindDiamond:
		return f.NewDiamond(speed)
	default:
		return nil, fmt.Errorf("entity: cannot build %s", kind)
	}
}

// NewPlayer builds the player cube, shrunk by a small inset and centered
// in the viewport, at rest.
func (f *Factory) NewPlayer() (*Entity, error) {
	e, err := f.load(KindPlayer)
	if err != nil {
		return nil, err
	}
	e.Rect = e.Rect.Inflate(-playerInset, -playerInset).
		WithCenter(f.Viewport.Width/2, f.Viewport.Height/2)
	return e, nil
}

// NewHorizontalLeft spawns on the left edge moving right.
func (f *Factory) NewHorizontalLeft(speed int) (*Entity, error) {
	return f.spawnAt(KindHorizontalLeft, DirLeft, speed, 0, speed)
}

// NewHorizontalRight spawns on the right edge moving left.
func (f *Factory) NewHorizontalRight(speed int) (*Entity, error) {
	return f.spawnAt(KindHorizontalRight, DirRight, -speed, 0, speed)
}

// NewVerticalTop spawns on the top edge moving down.
func (f *Factory) NewVerticalTop(speed int) (*Entity, error) {
	return f.spawnAt(KindVerticalTop, DirTop, 0, speed, speed)
}

// NewVerticalBottom spawns on the bottom edge moving up.
func (f *Factory) NewVerticalBottom(speed int) (*Entity, error) {
	return f.spawnAt(KindVerticalBottom, DirBottom, 0, -speed, speed)
}

// NewRock places a motionless rock anywhere inside the spawn area.
func (f *Factory) NewRock() (*Entity, error) {
	return f.spawnAt(KindRock, DirAnywhere, 0, 0, 0)
}

// NewDiamond spawns on a random edge moving diagonally with both velocity
// components at full speed. The first flip picks the axis, the second the
// edge on that axis, the third the sign of the cross-axis component.
func (f *Factory) NewDiamond(speed int) (*Entity, error) {
	if speed < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSpeed, speed)
	}

	var dir Direction
	var sx, sy int
	if coin(f.RNG) {
		if coin(f.RNG) {
			dir, sx = DirLeft, speed
		} else {
			dir, sx = DirRight, -speed
		}
		sy = signed(f.RNG, speed)
	} else {
		if coin(f.RNG) {
			dir, sy = DirTop, speed
		} else {
			dir, sy = DirBottom, -speed
		}
		sx = signed(f.RNG, speed)
	}
	return f.spawnAt(KindDiamond, dir, sx, sy, speed)
}

func signed(rng *rand.Rand, speed int) int {
	if coin(rng) {
		return speed
	}
	return -speed
}

func (f *Factory) spawnAt(kind Kind, dir Direction, sx, sy, speed int) (*Entity, error) {
	if speed < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSpeed, speed)
	}
	e, err := f.load(kind)
	if err != nil {
		return nil, err
	}
	x, y, err := SpawnPoint(f.RNG, f.Viewport, dir)
	if err != nil {
		return nil, err
	}
	e.Rect = e.Rect.WithCenter(x, y)
	e.SetSpeed(sx, sy)
	return e, nil
}

func (f *Factory) load(kind Kind) (*Entity, error) {
	surface, rect, err := f.Assets.Sprite(kind)
	if err != nil {
		return nil, fmt.Errorf("entity: load %s sprite: %w", kind, err)
	}
	return &Entity{
		Kind:    kind,
		Rect:    core.NewRect(0, 0, rect.W, rect.H),
		Surface: surface,
	}, nil
}
