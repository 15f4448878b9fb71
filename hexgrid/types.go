package hexgrid

import "fmt"

// EdgeCount is the number of edges (and neighbor directions) of every tile.
const EdgeCount = 6

// Coord is a tile position in axial coordinates. The implicit third cube
// coordinate is S = -Q-R. The board center is the zero value.
type Coord struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
}

// directions holds the axial offset of each edge index, counter-clockwise
// starting east. Rotating any offset by 60° yields the next entry.
var directions = [EdgeCount]Coord{
	{Q: 1, R: 0},
	{Q: 1, R: -1},
	{Q: 0, R: -1},
	{Q: -1, R: 0},
	{Q: -1, R: 1},
	{Q: 0, R: 1},
}

// Direction returns the axial offset for edge index e (taken modulo 6).
func Direction(e int) Coord {
	return directions[NormalizeEdge(e)]
}

// NormalizeEdge maps any integer onto 0..5.
func NormalizeEdge(e int) int {
	e %= EdgeCount
	if e < 0 {
		e += EdgeCount
	}
	return e
}

// ValidEdge reports whether e is an edge index 0..5.
func ValidEdge(e int) bool {
	return e >= 0 && e < EdgeCount
}

// Opposite returns the edge index facing e across the shared border.
func Opposite(e int) int {
	return NormalizeEdge(e + EdgeCount/2)
}

// S returns the implicit third cube coordinate.
func (c Coord) S() int {
	return -c.Q - c.R
}

// Add returns the component-wise sum.
func (c Coord) Add(o Coord) Coord {
	return Coord{Q: c.Q + o.Q, R: c.R + o.R}
}

// Neighbor returns the adjacent coordinate across edge e, ignoring board bounds.
func (c Coord) Neighbor(e int) Coord {
	return c.Add(Direction(e))
}

// Ring returns the distance of c from the board center.
func (c Coord) Ring() int {
	return Distance(Coord{}, c)
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Q, c.R)
}

// Distance returns the hex distance between two coordinates.
func Distance(a, b Coord) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Grid is an immutable hexagon-shaped board of a given radius.
// coords lists every tile in enumeration order (Q ascending, then R ascending);
// index is its inverse.
type Grid struct {
	Radius int
	coords []Coord
	index  map[Coord]int
}
