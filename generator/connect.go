package generator

import (
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/pathset"
	"github.com/katalvlaran/hexlace/seedstream"
)

// occupiedTarget is the number of domain tiles each color must reach:
// ceil(density·|domain|), at least 2 so that a path exists, at most the
// whole domain. A zero density, or a domain too small to hold a path, asks
// for nothing.
func occupiedTarget(density float64, domain int) int {
	if density <= 0 || domain < 2 {
		return 0
	}
	n := int(math.Ceil(density * float64(domain)))
	return min(max(n, 2), domain)
}

// deadEndProbability is the chance that a newly entered tile seals its
// terminal: sparse levels get short branches, dense levels long ones.
func deadEndProbability(density float64) float64 {
	return 0.5 * (1 - density)
}

// option is one way to enter a frontier tile: the representative and the
// direction, seen from it, of the connected neighbor.
type option struct {
	rep int
	dir int
}

type frontierTile struct {
	rep  int
	dirs []int
}

// colorGrowth is the per-color state of the connectivity builder.
type colorGrowth struct {
	color    pathset.Color
	set      mapset.Set[int]    // connected representatives
	rejected mapset.Set[option] // moves whose symmetric images conflicted
}

// connector grows colored paths over a canvas.
type connector struct {
	cv      *canvas
	grid    *hexgrid.Grid
	rng     *seedstream.Stream
	target  int
	deadEnd float64
}

func newConnector(cv *canvas, rng *seedstream.Stream, density float64) *connector {
	return &connector{
		cv:      cv,
		grid:    cv.dom.Grid(),
		rng:     rng,
		target:  occupiedTarget(density, cv.dom.Len()),
		deadEnd: deadEndProbability(density),
	}
}

// connect populates the canvas for every enabled color in ColorSet order,
// then, when fill is set, keeps growing round-robin until every domain tile
// carries a path.
func (b *connector) connect(colors []pathset.Color, fill bool) error {
	if b.target == 0 && !fill {
		return nil
	}
	growths := make([]*colorGrowth, 0, len(colors))
	for _, c := range colors {
		g, err := b.grow(c)
		if err != nil {
			return err
		}
		growths = append(growths, g)
	}
	if fill {
		return b.fill(growths)
	}
	return nil
}

// anchor picks the tile a color grows from: the domain anchor when it still
// has a free edge, else a uniformly drawn domain tile with one.
func (b *connector) anchor() (int, bool) {
	if a := b.cv.dom.Anchor(); b.cv.hasFreeEdge(a) {
		return a, true
	}
	var cands []int
	for ri := 0; ri < b.cv.dom.Len(); ri++ {
		if b.cv.hasFreeEdge(ri) {
			cands = append(cands, ri)
		}
	}
	if len(cands) == 0 {
		return 0, false
	}
	return cands[b.rng.Uniform(len(cands))], true
}

func (b *connector) grow(c pathset.Color) (*colorGrowth, error) {
	a, ok := b.anchor()
	if !ok {
		return nil, fmt.Errorf("grow(%s): no tile with a free edge: %w", c, ErrDensityUnsatisfiable)
	}
	g := &colorGrowth{color: c, set: mapset.New[int](), rejected: mapset.New[option]()}
	g.set.Put(a)

	for g.set.Size() < b.target {
		front := b.frontier(g, false)
		if len(front) == 0 {
			return nil, fmt.Errorf("grow(%s): frontier empty at %d of %d tiles: %w",
				c, g.set.Size(), b.target, ErrDensityUnsatisfiable)
		}
		b.step(g, front)
	}
	return g, nil
}

// fill grows into empty tiles only, one move per color per round, until the
// domain is covered or no color has a move left.
func (b *connector) fill(growths []*colorGrowth) error {
	for !b.covered() {
		moved := false
		for _, g := range growths {
			front := b.frontier(g, true)
			if len(front) == 0 {
				continue
			}
			b.step(g, front)
			moved = true
		}
		if !moved {
			return fmt.Errorf("fill: %d domain tiles left empty: %w", b.empty(), ErrDensityUnsatisfiable)
		}
	}
	return nil
}

func (b *connector) covered() bool {
	return b.empty() == 0
}

func (b *connector) empty() int {
	n := 0
	for _, p := range b.cv.tiles {
		if p.Empty() {
			n++
		}
	}
	return n
}

// frontier lists, in domain order, the representatives outside the color's
// connected set that touch it through a free edge pair. emptyOnly restricts
// the list to tiles with no content at all.
func (b *connector) frontier(g *colorGrowth, emptyOnly bool) []frontierTile {
	var out []frontierTile
	for ri := 0; ri < b.cv.dom.Len(); ri++ {
		if g.set.Has(ri) {
			continue
		}
		p := b.cv.tiles[ri]
		if emptyOnly && !p.Empty() {
			continue
		}
		t := b.cv.dom.Rep(ri)
		var dirs []int
		for d := 0; d < hexgrid.EdgeCount; d++ {
			if !p.IsEdgeFree(d) || g.rejected.Has(option{rep: ri, dir: d}) {
				continue
			}
			n, ok := b.grid.Neighbor(t, d)
			if !ok {
				continue
			}
			nr, ne, _ := b.cv.locate(n, hexgrid.Opposite(d))
			if !g.set.Has(nr) || !b.cv.tiles[nr].IsEdgeFree(ne) {
				continue
			}
			dirs = append(dirs, d)
		}
		if len(dirs) > 0 {
			out = append(out, frontierTile{rep: ri, dirs: dirs})
		}
	}
	return out
}

// step draws one frontier tile and one connected neighbor of it, and lays a
// path across their shared edge. The connected side extends one of its open
// terminals through the edge (falling back to a fresh terminal), the new side
// receives a terminal that is sealed with the dead-end probability. A move
// whose symmetric images conflict is dropped for the rest of the run.
func (b *connector) step(g *colorGrowth, front []frontierTile) bool {
	ft := front[b.rng.Uniform(len(front))]
	d := ft.dirs[b.rng.Uniform(len(ft.dirs))]

	n := b.cv.dom.Rep(ft.rep).Neighbor(d)
	nr, ne, _ := b.cv.locate(n, hexgrid.Opposite(d))

	far := edit{
		rep:   ft.rep,
		kind:  editTerminal,
		color: g.color,
		from:  pathset.NoEdge,
		to:    d,
		seal:  b.rng.Bool(b.deadEnd),
	}
	near := edit{rep: nr, kind: editTerminal, color: g.color, from: pathset.NoEdge, to: ne}

	if open := b.cv.openTerminals(nr, g.color); len(open) > 0 {
		ext := near
		ext.kind = editExtend
		ext.from = open[b.rng.Uniform(len(open))]
		if b.cv.commit(ext, far) == nil {
			g.set.Put(ft.rep)
			return true
		}
	}
	if b.cv.commit(near, far) == nil {
		g.set.Put(ft.rep)
		return true
	}
	g.rejected.Put(option{rep: ft.rep, dir: d})
	return false
}
