package hexgrid

import "fmt"

// TileCount returns the number of tiles on a board of the given radius:
// 3r²+3r+1 for r ≥ 0, and 0 for a negative radius.
func TileCount(radius int) int {
	if radius < 0 {
		return 0
	}
	return 3*radius*radius + 3*radius + 1
}

// New enumerates every tile within radius steps of the center.
// Returns ErrNegativeRadius for radius < 0.
// Complexity: O(T) time and memory.
func New(radius int) (*Grid, error) {
	if radius < 0 {
		return nil, fmt.Errorf("New(%d): %w", radius, ErrNegativeRadius)
	}
	n := TileCount(radius)
	g := &Grid{
		Radius: radius,
		coords: make([]Coord, 0, n),
		index:  make(map[Coord]int, n),
	}
	for q := -radius; q <= radius; q++ {
		r1 := max(-radius, -q-radius)
		r2 := min(radius, -q+radius)
		for r := r1; r <= r2; r++ {
			c := Coord{Q: q, R: r}
			g.index[c] = len(g.coords)
			g.coords = append(g.coords, c)
		}
	}

	return g, nil
}

// Len returns the tile count.
func (g *Grid) Len() int {
	return len(g.coords)
}

// Coords returns a copy of all tile positions in enumeration order.
func (g *Grid) Coords() []Coord {
	out := make([]Coord, len(g.coords))
	copy(out, g.coords)
	return out
}

// At returns the i-th tile position in enumeration order.
func (g *Grid) At(i int) Coord {
	return g.coords[i]
}

// Contains reports whether c lies on the board.
// Complexity: O(1).
func (g *Grid) Contains(c Coord) bool {
	return c.Ring() <= g.Radius
}

// Index returns the enumeration index of c, or -1 when c is off the board.
func (g *Grid) Index(c Coord) int {
	i, ok := g.index[c]
	if !ok {
		return -1
	}
	return i
}

// IndexOf returns the enumeration index of c on a board of the given radius
// without building the board, or -1 when c is off it.
// Complexity: O(radius), no allocation.
func IndexOf(radius int, c Coord) int {
	if radius < 0 || c.Ring() > radius {
		return -1
	}
	i := 0
	for q := -radius; q < c.Q; q++ {
		i += 2*radius + 1 - abs(q)
	}
	return i + c.R - max(-radius, -c.Q-radius)
}

// Neighbor returns the tile across edge e of c. The boolean is false for a
// boundary edge or when c itself is off the board.
func (g *Grid) Neighbor(c Coord, e int) (Coord, bool) {
	if !g.Contains(c) {
		return Coord{}, false
	}
	n := c.Neighbor(e)
	if !g.Contains(n) {
		return Coord{}, false
	}
	return n, true
}

// IsBoundaryEdge reports whether edge e of c has no neighbor on the board.
func (g *Grid) IsBoundaryEdge(c Coord, e int) bool {
	_, ok := g.Neighbor(c, e)
	return !ok
}
