package entity

import "fmt"

// Policy decides what happens to a cube that drifts past the spawn buffer.
type Policy int

const (
	// PolicyDespawn drops entities once they are off screen.
	PolicyDespawn Policy = iota
	// PolicyWrap moves them to the opposite side instead.
	PolicyWrap
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case PolicyDespawn:
		return "despawn"
	case PolicyWrap:
		return "wrap"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Outcome is what Apply did to an entity.
type Outcome int

const (
	Kept Outcome = iota
	Wrapped
	Despawned
)

// Apply runs the boundary check for one entity after it has moved. The
// player always wraps regardless of the policy.
func (p Policy) Apply(e *Entity, vp Viewport) Outcome {
	if p == PolicyWrap || e.Kind == KindPlayer {
		if e.KeepOnScreen(vp) {
			return Wrapped
		}
		return Kept
	}
	if e.IsOffScreen(vp) {
		return Despawned
	}
	return Kept
}
