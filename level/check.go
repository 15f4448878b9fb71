package level

import (
	"fmt"

	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/pathset"
)

// Orientation selects which content of the tiles a check reads.
type Orientation int

const (
	// OrientSolved reads Tile.Solved.
	OrientSolved Orientation = iota
	// OrientCurrent reads Tile.Current.
	OrientCurrent
)

func (t *Tile) content(o Orientation) pathset.PathSet {
	if o == OrientCurrent {
		return t.Current
	}
	return t.Solved
}

// Mismatch is a path endpoint with no matching endpoint across its edge:
// either a boundary edge or a neighbor whose facing edge is free or differs
// in color.
type Mismatch struct {
	At   hexgrid.Coord `json:"at" yaml:"at"`
	Edge int           `json:"edge" yaml:"edge"`
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s/%d", m.At, m.Edge)
}

// Mismatches lists every dangling or miscolored endpoint under o. Each
// offending endpoint is reported from its own tile, so a miscolored pair
// appears twice.
//
// Complexity: O(T·6).
func (l *Level) Mismatches(o Orientation) []Mismatch {
	g := l.Grid()
	var out []Mismatch
	for i := range l.Tiles {
		t := &l.Tiles[i]
		p := t.content(o)
		for e := 0; e < hexgrid.EdgeCount; e++ {
			col, ok := p.EdgeColor(e)
			if !ok {
				continue
			}
			nc, inside := g.Neighbor(t.Coord, e)
			if !inside {
				out = append(out, Mismatch{At: t.Coord, Edge: e})
				continue
			}
			n := l.at(g, nc)
			if n == nil {
				out = append(out, Mismatch{At: t.Coord, Edge: e})
				continue
			}
			other, ok := n.content(o).EdgeColor(hexgrid.Opposite(e))
			if !ok || other != col {
				out = append(out, Mismatch{At: t.Coord, Edge: e})
			}
		}
	}
	return out
}

// IsSolved reports whether the current orientation connects every path end
// to a matching end across the board. Any orientation that does so wins,
// not only the stored solution.
func (l *Level) IsSolved() bool {
	return len(l.Mismatches(OrientCurrent)) == 0
}

// PathComponents returns the connected regions of tiles carrying color c
// under o, each as a list of coordinates in BFS order.
func (l *Level) PathComponents(c pathset.Color, o Orientation) [][]hexgrid.Coord {
	g := l.Grid()
	include := func(at hexgrid.Coord) bool {
		t := l.at(g, at)
		return t != nil && t.content(o).HasColor(c)
	}
	linked := func(at hexgrid.Coord, e int) bool {
		col, ok := l.at(g, at).content(o).EdgeColor(e)
		return ok && col == c
	}
	var out [][]hexgrid.Coord
	for _, comp := range g.Components(include, linked) {
		cs := make([]hexgrid.Coord, len(comp))
		for i, idx := range comp {
			cs[i] = g.At(idx)
		}
		out = append(out, cs)
	}
	return out
}
