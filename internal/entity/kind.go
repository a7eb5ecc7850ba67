package entity

import (
	"fmt"
	"strings"
)

// Kind identifies one of the fixed cube variants.
type Kind int

const (
	KindPlayer Kind = iota
	KindHorizontalLeft
	KindHorizontalRight
	KindVerticalTop
	KindVerticalBottom
	KindRock
	KindDiamond
)

// Kinds lists every variant in declaration order.
var Kinds = []Kind{
	KindPlayer,
	KindHorizontalLeft,
	KindHorizontalRight,
	KindVerticalTop,
	KindVerticalBottom,
	KindRock,
	KindDiamond,
}

var kindNames = [...]string{
	KindPlayer:          "player",
	KindHorizontalLeft:  "hori_left",
	KindHorizontalRight: "hori_right",
	KindVerticalTop:     "verti_top",
	KindVerticalBottom:  "verti_bottom",
	KindRock:            "rock",
	KindDiamond:         "diamond",
}

// String returns the snake_case kind name used in configs and logs.
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind converts a kind name back into a Kind.
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("entity: unknown kind %q", s)
}

// kindByEdge maps a spawn edge to the kind that enters from it.
var kindByEdge = map[Direction]Kind{
	DirLeft:     KindHorizontalLeft,
	DirRight:    KindHorizontalRight,
	DirTop:      KindVerticalTop,
	DirBottom:   KindVerticalBottom,
	DirAnywhere: KindRock,
}

// ParseSpawnKind resolves a spawnable kind from its name or from the edge
// it enters through, so "left" means hori_left and "anywhere" means rock.
// The player is never spawned and is rejected.
func ParseSpawnKind(s string) (Kind, error) {
	if k, err := ParseKind(s); err == nil {
		if k == KindPlayer {
			return 0, fmt.Errorf("entity: %s is not a spawned kind", k)
		}
		return k, nil
	}
	d, err := ParseDirection(s)
	if err != nil {
		return 0, fmt.Errorf("entity: unknown kind or edge %q", strings.TrimSpace(s))
	}
	return kindByEdge[d], nil
}

// Hazard reports whether touching this kind ends the game for the player.
func (k Kind) Hazard() bool {
	return k != KindPlayer && k != KindDiamond
}
