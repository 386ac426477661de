package engine

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Orientation is the direction a robot is facing.
// Values are ordered clockwise so that turning is modular arithmetic.
type Orientation int

const (
	North Orientation = iota
	East
	South
	West
)

// orientationCount is the size of the compass cycle
const orientationCount = 4

var ErrInvalidOrientation = errors.New("invalid orientation")

var orientationNames = [orientationCount]string{
	North: "NORTH",
	East:  "EAST",
	South: "SOUTH",
	West:  "WEST",
}

// String returns the upper-case compass name
func (o Orientation) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
	return orientationNames[o]
}

// Valid reports whether o is one of the four compass points
func (o Orientation) Valid() bool {
	return o >= North && o <= West
}

// MarshalText encodes the orientation by name for JSON and YAML
func (o Orientation) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOrientation, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText decodes a case-insensitive compass name
func (o *Orientation) UnmarshalText(text []byte) error {
	parsed, err := ParseOrientation(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// ParseOrientation converts a compass name (any case) into an Orientation
func ParseOrientation(name string) (Orientation, error) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for i, n := range orientationNames {
		if n == upper {
			return Orientation(i), nil
		}
	}
	return North, fmt.Errorf("%w: %q (allowed values are north, south, east, west)", ErrInvalidOrientation, name)
}

// Position is a robot's coordinates and facing.
// It holds no references, so assigning a Position always copies it.
type Position struct {
	X      int         `json:"x"`
	Y      int         `json:"y"`
	Facing Orientation `json:"facing"`
}

// String renders the position in the "x,y,FACING" form used by PLACE and REPORT
func (p Position) String() string {
	return fmt.Sprintf("%d,%d,%s", p.X, p.Y, p.Facing)
}

// Playground is the rectangular envelope robots may occupy.
// The legal envelope is [0,Width]x[0,Height] when AllowBoundaries is set,
// otherwise [0,Width)x[0,Height).
type Playground struct {
	Width           int  `json:"width"`
	Height          int  `json:"height"`
	AllowBoundaries bool `json:"allow_boundaries"`

	// CollisionsDetected is accepted from configuration but no rule consults it.
	CollisionsDetected bool `json:"collisions_detected"`
}

// LogEntry records a robot position at the moment a command was applied
type LogEntry struct {
	Time     time.Time `json:"time"`
	Position Position  `json:"position"`
}
