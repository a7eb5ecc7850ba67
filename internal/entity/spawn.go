package entity

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrInvalidDirection is returned when a spawn direction is not recognized.
var ErrInvalidDirection = errors.New("entity: invalid spawn direction")

// SpawnPoint picks the center of a newly spawned cube. Edge directions pin
// one coordinate to the buffer line on that edge; the other coordinate, and
// both for DirAnywhere, is uniform over [buffer, size-buffer] inclusive.
func SpawnPoint(rng *rand.Rand, vp Viewport, dir Direction) (x, y int, err error) {
	b := vp.SpawnBuffer
	switch dir {
	case DirLeft:
		return b, randInclusive(rng, b, vp.Height-b), nil
	case DirRight:
		return vp.Width - b, randInclusive(rng, b, vp.Height-b), nil
	case DirTop:
		return randInclusive(rng, b, vp.Width-b), b, nil
	case DirBottom:
		return randInclusive(rng, b, vp.Width-b), vp.Height - b, nil
	case DirAnywhere:
		x = randInclusive(rng, b, vp.Width-b)
		y = randInclusive(rng, b, vp.Height-b)
		return x, y, nil
	default:
		return 0, 0, fmt.Errorf("%w: %s", ErrInvalidDirection, dir)
	}
}

func randInclusive(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// coin returns true with probability 1/2.
func coin(rng *rand.Rand) bool {
	return rng.Intn(2) == 1
}
