package level

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/pathset"
)

// ErrUnknownState indicates a reveal-state name that does not parse.
var ErrUnknownState = errors.New("level: unknown reveal state")

// RevealState says how a tile is presented at puzzle start.
type RevealState int

const (
	// Blank tiles carry no path content.
	Blank RevealState = iota
	// Fixed tiles show their solved orientation and are not part of the puzzle.
	Fixed
	// Hidden tiles start scrambled; the player must find their orientation.
	Hidden
)

var stateNames = [...]string{Blank: "blank", Fixed: "fixed", Hidden: "hidden"}

func (s RevealState) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("RevealState(%d)", int(s))
	}
	return stateNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s RevealState) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(stateNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownState, int(s))
	}
	return []byte(stateNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *RevealState) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range stateNames {
		if n == name {
			*s = RevealState(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownState, text)
}

// Tile is one board position. Solved is the permanent solution; Current is
// Solved turned Rotation steps counter-clockwise.
type Tile struct {
	Coord    hexgrid.Coord   `json:"coord" yaml:"coord"`
	Solved   pathset.PathSet `json:"solved" yaml:"solved"`
	Current  pathset.PathSet `json:"current" yaml:"current"`
	State    RevealState     `json:"state" yaml:"state"`
	Rotation int             `json:"rotation" yaml:"rotation"`
}

// Scramble sets the starting rotation of the tile.
func (t *Tile) Scramble(rotation int) {
	t.Rotation = hexgrid.NormalizeEdge(rotation)
	t.Current = t.Solved.Rotate(t.Rotation)
}

// RotateCurrent turns the current orientation k steps, as a player move.
// Fixed and blank tiles do not turn.
func (t *Tile) RotateCurrent(k int) {
	if t.State != Hidden {
		return
	}
	t.Scramble(t.Rotation + k)
}

// Occupied reports whether the solved tile carries any path.
func (t Tile) Occupied() bool {
	return !t.Solved.Empty()
}

// InPlace reports whether the current content equals the solved content.
// Rotationally symmetric tiles can be in place at a non-zero rotation.
func (t Tile) InPlace() bool {
	return t.Current == t.Solved
}
