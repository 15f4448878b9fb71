// Package level holds the result of generation: a board of tiles with their
// solved and puzzle-start orientations, plus the metadata needed to
// regenerate or identify it.
//
// A Level is owned by its caller. Methods never retain references to
// arguments, and Clone returns a fully independent copy.
package level

import (
	"slices"

	"github.com/google/uuid"

	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/pathset"
)

// Level is a generated puzzle. Tiles are in grid enumeration order.
type Level struct {
	ID          uuid.UUID        `json:"id" yaml:"id"`
	Radius      int              `json:"radius" yaml:"radius"`
	Symmetry    hexgrid.Symmetry `json:"symmetry" yaml:"symmetry"`
	Colors      pathset.ColorSet `json:"colors" yaml:"colors"`
	Seed        uint64           `json:"seed" yaml:"seed"`
	Series      uint64           `json:"series" yaml:"series"`
	Attempt     int              `json:"attempt" yaml:"attempt"`
	FixedCount  int              `json:"fixed_count" yaml:"fixed_count"`
	HiddenCount int              `json:"hidden_count" yaml:"hidden_count"`
	Tiles       []Tile           `json:"tiles" yaml:"tiles"`

	grid *hexgrid.Grid
}

// namespace scopes level IDs so they never collide with other UUIDv5 users.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/katalvlaran/hexlace/level"))

// NewID derives a stable identifier from a canonical generation key:
// identical keys give identical IDs across runs and machines.
func NewID(key []byte) uuid.UUID {
	return uuid.NewSHA1(namespace, key)
}

// New returns an all-blank level on g.
func New(g *hexgrid.Grid) *Level {
	l := &Level{
		Radius: g.Radius,
		Tiles:  make([]Tile, g.Len()),
		grid:   g,
	}
	for i, c := range g.Coords() {
		l.Tiles[i] = Tile{Coord: c, State: Blank}
	}
	return l
}

// Grid returns the board geometry of the level. A decoded level carries no
// grid, so each call then builds one in O(T); callers that walk the board
// should hold on to the result.
func (l *Level) Grid() *hexgrid.Grid {
	if l.grid != nil {
		return l.grid
	}
	g, err := hexgrid.New(l.Radius)
	if err != nil {
		g, _ = hexgrid.New(0)
	}
	return g
}

// Tile returns the tile at c, or nil when c is off the board.
func (l *Level) Tile(c hexgrid.Coord) *Tile {
	i := hexgrid.IndexOf(l.Radius, c)
	if i < 0 || i >= len(l.Tiles) {
		return nil
	}
	return &l.Tiles[i]
}

func (l *Level) at(g *hexgrid.Grid, c hexgrid.Coord) *Tile {
	i := g.Index(c)
	if i < 0 || i >= len(l.Tiles) {
		return nil
	}
	return &l.Tiles[i]
}

// Counts tallies tiles by reveal state.
func (l *Level) Counts() (fixed, hidden, blank int) {
	for _, t := range l.Tiles {
		switch t.State {
		case Fixed:
			fixed++
		case Hidden:
			hidden++
		default:
			blank++
		}
	}
	return fixed, hidden, blank
}

// Clone returns a deep copy.
func (l *Level) Clone() *Level {
	out := *l
	out.Tiles = slices.Clone(l.Tiles)
	return &out
}

// Solved returns a copy with every tile turned to its solved orientation.
func (l *Level) Solved() *Level {
	out := l.Clone()
	for i := range out.Tiles {
		out.Tiles[i].Current = out.Tiles[i].Solved
		out.Tiles[i].Rotation = 0
	}
	return out
}

// Equal reports whether both levels carry identical metadata and tiles.
func (l *Level) Equal(o *Level) bool {
	if l == nil || o == nil {
		return l == o
	}
	return l.ID == o.ID &&
		l.Radius == o.Radius &&
		l.Symmetry == o.Symmetry &&
		l.Colors == o.Colors &&
		l.Seed == o.Seed &&
		l.Series == o.Series &&
		l.Attempt == o.Attempt &&
		l.FixedCount == o.FixedCount &&
		l.HiddenCount == o.HiddenCount &&
		slices.Equal(l.Tiles, o.Tiles)
}
