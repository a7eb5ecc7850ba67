package entity

import (
	"errors"
	"math/rand"
	"testing"
)

func TestSpawnPointEdges(t *testing.T) {
	vp := testViewport(t)
	rng := rand.New(rand.NewSource(42))
	b := vp.SpawnBuffer

	for i := 0; i < 500; i++ {
		x, y, err := SpawnPoint(rng, vp, DirLeft)
		if err != nil || x != b || y < b || y > vp.Height-b {
			t.Fatalf("left spawn = (%d, %d, %v)", x, y, err)
		}

		x, y, err = SpawnPoint(rng, vp, DirRight)
		if err != nil || x != vp.Width-b || y < b || y > vp.Height-b {
			t.Fatalf("right spawn = (%d, %d, %v)", x, y, err)
		}

		x, y, err = SpawnPoint(rng, vp, DirTop)
		if err != nil || y != b || x < b || x > vp.Width-b {
			t.Fatalf("top spawn = (%d, %d, %v)", x, y, err)
		}

		x, y, err = SpawnPoint(rng, vp, DirBottom)
		if err != nil || y != vp.Height-b || x < b || x > vp.Width-b {
			t.Fatalf("bottom spawn = (%d, %d, %v)", x, y, err)
		}

		x, y, err = SpawnPoint(rng, vp, DirAnywhere)
		if err != nil || x < b || x > vp.Width-b || y < b || y > vp.Height-b {
			t.Fatalf("anywhere spawn = (%d, %d, %v)", x, y, err)
		}
	}
}

func TestSpawnPointRangeIsInclusive(t *testing.T) {
	// A 10x10 viewport with buffer 4 leaves only {4, 5, 6} for the free axis.
	vp, err := NewViewport(10, 10, 4)
	if err != nil {
		t.Fatalf("NewViewport() failed: %v", err)
	}
	rng := rand.New(rand.NewSource(3))

	seen := make(map[int]bool)
	for i := 0; i < 300; i++ {
		_, y, err := SpawnPoint(rng, vp, DirLeft)
		if err != nil {
			t.Fatal(err)
		}
		seen[y] = true
	}
	for _, want := range []int{4, 5, 6} {
		if !seen[want] {
			t.Errorf("y=%d never produced; seen %v", want, seen)
		}
	}
	if len(seen) != 3 {
		t.Errorf("expected exactly 3 distinct values, got %v", seen)
	}
}

func TestSpawnPointZeroBuffer(t *testing.T) {
	vp, err := NewViewport(800, 600, 0)
	if err != nil {
		t.Fatal(err)
	}
	x, _, err := SpawnPoint(rand.New(rand.NewSource(1)), vp, DirRight)
	if err != nil || x != 800 {
		t.Errorf("right spawn with zero buffer = %d, %v", x, err)
	}
}

func TestSpawnPointInvalidDirection(t *testing.T) {
	vp := testViewport(t)
	_, _, err := SpawnPoint(rand.New(rand.NewSource(1)), vp, Direction(99))
	if !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
}

func TestParseDirection(t *testing.T) {
	for d, name := range directionNames {
		got, err := ParseDirection(" " + name + " ")
		if err != nil || got != d {
			t.Errorf("ParseDirection(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseDirection("sideways"); !errors.Is(err, ErrInvalidDirection) {
		t.Errorf("expected ErrInvalidDirection, got %v", err)
	}
}
