package entity

import (
	"fmt"
	"strings"
)

// Direction selects the placement rule used when a cube spawns.
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirTop
	DirBottom
	DirAnywhere
)

var directionNames = map[Direction]string{
	DirLeft:     "left",
	DirRight:    "right",
	DirTop:      "top",
	DirBottom:   "bottom",
	DirAnywhere: "anywhere",
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection converts a name such as "left" into a Direction.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, name := range directionNames {
		if name == s {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}
