package generator

import (
	"fmt"

	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/pathset"
)

// canvas stores path content for fundamental-domain representatives only.
// The content of any other tile is its representative's content carried by
// the resolving operation, so every write is automatically replicated across
// the orbit. Each representative is kept invariant under its stabilizer.
type canvas struct {
	dom    *hexgrid.Domain
	tiles  []pathset.PathSet // by representative index
	sealed []uint8           // edge bits of terminals that stay dead ends
}

func newCanvas(dom *hexgrid.Domain) *canvas {
	return &canvas{
		dom:    dom,
		tiles:  make([]pathset.PathSet, dom.Len()),
		sealed: make([]uint8, dom.Len()),
	}
}

// view returns the content of any board tile.
func (cv *canvas) view(c hexgrid.Coord) (pathset.PathSet, bool) {
	ri, op, ok := cv.dom.Resolve(c)
	if !ok {
		return pathset.PathSet{}, false
	}
	return cv.tiles[ri].Transform(op), true
}

// locate maps edge e of board tile c to a representative and its edge.
func (cv *canvas) locate(c hexgrid.Coord, e int) (rep, edge int, ok bool) {
	ri, op, ok := cv.dom.Resolve(c)
	if !ok {
		return 0, 0, false
	}
	return ri, op.Inverse().ApplyEdge(e), true
}

// openTerminals lists the unsealed dead ends of color c on a representative.
func (cv *canvas) openTerminals(rep int, c pathset.Color) []int {
	p := cv.tiles[rep]
	var out []int
	for e := 0; e < hexgrid.EdgeCount; e++ {
		if cv.sealed[rep]&(1<<e) != 0 || !p.IsTerminal(e) {
			continue
		}
		if col, _ := p.EdgeColor(e); col == c {
			out = append(out, e)
		}
	}
	return out
}

// hasFreeEdge reports whether a representative has any edge left.
func (cv *canvas) hasFreeEdge(rep int) bool {
	return cv.tiles[rep].OccupiedEdgeCount() < hexgrid.EdgeCount
}

type editKind uint8

const (
	editTerminal editKind = iota
	editExtend
)

// edit is one change to a representative, expressed in its own edge frame.
type edit struct {
	rep   int
	kind  editKind
	color pathset.Color
	from  int // extended terminal; pathset.NoEdge for editTerminal
	to    int
	seal  bool
}

func (ed edit) mapped(op hexgrid.Op) edit {
	out := ed
	if ed.kind == editExtend {
		out.from = op.ApplyEdge(ed.from)
	}
	out.to = op.ApplyEdge(ed.to)
	return out
}

// commit applies the edits together with their images under each
// representative's stabilizer. Either all of them apply or none does.
func (cv *canvas) commit(edits ...edit) error {
	staged := make(map[int]pathset.PathSet, len(edits))
	sealed := make(map[int]uint8, len(edits))
	seen := make(map[edit]bool, len(edits)*2)

	for _, ed := range edits {
		for _, s := range cv.dom.Stabilizer(ed.rep) {
			img := ed.mapped(s)
			if seen[img] {
				continue
			}
			seen[img] = true

			p, ok := staged[img.rep]
			mask := sealed[img.rep]
			if !ok {
				p, mask = cv.tiles[img.rep], cv.sealed[img.rep]
			}
			if err := apply(&p, &mask, img); err != nil {
				return fmt.Errorf("commit(rep=%d): %w", img.rep, err)
			}
			staged[img.rep] = p
			sealed[img.rep] = mask
		}
	}
	for ri, p := range staged {
		cv.tiles[ri] = p
		cv.sealed[ri] = sealed[ri]
	}
	return nil
}

func apply(p *pathset.PathSet, mask *uint8, ed edit) error {
	if ed.kind == editTerminal {
		if err := p.AddTerminal(ed.color, ed.to); err != nil {
			return err
		}
		if ed.seal {
			*mask |= 1 << ed.to
		}
		return nil
	}
	// an image that coincides with the segment already laid is a no-op
	if o, ok := p.Partner(ed.from); ok && o == ed.to {
		if col, _ := p.EdgeColor(ed.from); col == ed.color {
			return nil
		}
	}
	if *mask&(1<<ed.from) != 0 {
		return fmt.Errorf("extend sealed edge %d: %w", ed.from, pathset.ErrNotTerminal)
	}
	return p.Extend(ed.color, ed.from, ed.to)
}
