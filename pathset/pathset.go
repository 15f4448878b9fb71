// Package pathset represents the colored path content of one hexagonal tile.
//
// A tile has six edges. A path enters the tile through one edge and leaves
// through another (a segment), or stops inside the tile (a terminal, i.e. a
// dead end that consumes a single edge). Segments of one tile never share an
// edge, so every edge carries at most one path endpoint.
//
// PathSet is a small value type: copying it copies the content, and two
// PathSets are equal exactly when == reports so.
package pathset

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/katalvlaran/hexlace/hexgrid"
)

// NoEdge marks the missing second end of a terminal.
const NoEdge = -1

// Segment is one colored connection inside a tile. B is NoEdge for a terminal.
type Segment struct {
	Color Color `json:"color" yaml:"color"`
	A     int   `json:"a" yaml:"a"`
	B     int   `json:"b" yaml:"b"`
}

// IsTerminal reports whether the segment is a dead end.
func (s Segment) IsTerminal() bool {
	return s.B == NoEdge
}

func (s Segment) String() string {
	if s.IsTerminal() {
		return fmt.Sprintf("%s:%d", s.Color, s.A)
	}
	return fmt.Sprintf("%s:%d-%d", s.Color, s.A, s.B)
}

// PathSet holds a tile's segments, indexed by edge. Unused slots stay zeroed
// so that == compares content.
type PathSet struct {
	used    uint8 // bit e set when edge e carries an endpoint
	color   [hexgrid.EdgeCount]Color
	partner [hexgrid.EdgeCount]int8 // other end of the segment, NoEdge for a terminal
}

func checkEdge(e int) error {
	if !hexgrid.ValidEdge(e) {
		return fmt.Errorf("%w: %d", ErrInvalidEdge, e)
	}
	return nil
}

func checkColor(c Color) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownColor, uint8(c))
	}
	return nil
}

func (p *PathSet) set(c Color, e, partner int) {
	p.used |= 1 << e
	p.color[e] = c
	p.partner[e] = int8(partner)
}

// AddSegment connects edges a and b with a path of color c.
// Fails when either edge is invalid or already carries an endpoint of any color.
func (p *PathSet) AddSegment(c Color, a, b int) error {
	if err := checkColor(c); err != nil {
		return err
	}
	if err := checkEdge(a); err != nil {
		return err
	}
	if err := checkEdge(b); err != nil {
		return err
	}
	if a == b {
		return fmt.Errorf("%w: %d", ErrSameEdge, a)
	}
	if !p.IsEdgeFree(a) {
		return fmt.Errorf("AddSegment(%s,%d,%d): %w: %d", c, a, b, ErrEdgeOccupied, a)
	}
	if !p.IsEdgeFree(b) {
		return fmt.Errorf("AddSegment(%s,%d,%d): %w: %d", c, a, b, ErrEdgeOccupied, b)
	}
	p.set(c, a, b)
	p.set(c, b, a)
	return nil
}

// AddTerminal places a dead end of color c on edge e.
func (p *PathSet) AddTerminal(c Color, e int) error {
	if err := checkColor(c); err != nil {
		return err
	}
	if err := checkEdge(e); err != nil {
		return err
	}
	if !p.IsEdgeFree(e) {
		return fmt.Errorf("AddTerminal(%s,%d): %w", c, e, ErrEdgeOccupied)
	}
	p.set(c, e, NoEdge)
	return nil
}

// Extend turns the terminal of color c on edge from into a segment that
// leaves through edge to.
func (p *PathSet) Extend(c Color, from, to int) error {
	if err := checkEdge(from); err != nil {
		return err
	}
	if err := checkEdge(to); err != nil {
		return err
	}
	if !p.IsTerminal(from) || p.color[from] != c {
		return fmt.Errorf("Extend(%s,%d,%d): %w", c, from, to, ErrNotTerminal)
	}
	if !p.IsEdgeFree(to) {
		return fmt.Errorf("Extend(%s,%d,%d): %w", c, from, to, ErrEdgeOccupied)
	}
	p.set(c, from, to)
	p.set(c, to, from)
	return nil
}

// Add inserts s as a segment or terminal.
func (p *PathSet) Add(s Segment) error {
	if s.IsTerminal() {
		return p.AddTerminal(s.Color, s.A)
	}
	return p.AddSegment(s.Color, s.A, s.B)
}

// IsEdgeFree reports whether edge e carries no endpoint. Invalid edges are never free.
func (p PathSet) IsEdgeFree(e int) bool {
	return hexgrid.ValidEdge(e) && p.used&(1<<e) == 0
}

// FreeEdges lists the free edges in ascending order.
func (p PathSet) FreeEdges() []int {
	out := make([]int, 0, hexgrid.EdgeCount)
	for e := 0; e < hexgrid.EdgeCount; e++ {
		if p.IsEdgeFree(e) {
			out = append(out, e)
		}
	}
	return out
}

// EdgeColor returns the color of the endpoint on edge e.
func (p PathSet) EdgeColor(e int) (Color, bool) {
	if !hexgrid.ValidEdge(e) || p.IsEdgeFree(e) {
		return 0, false
	}
	return p.color[e], true
}

// Partner returns the other end of the segment using edge e: NoEdge for a
// terminal, ok=false for a free or invalid edge.
func (p PathSet) Partner(e int) (int, bool) {
	if !hexgrid.ValidEdge(e) || p.IsEdgeFree(e) {
		return 0, false
	}
	return int(p.partner[e]), true
}

// IsTerminal reports whether edge e holds a dead end.
func (p PathSet) IsTerminal(e int) bool {
	o, ok := p.Partner(e)
	return ok && o == NoEdge
}

// OccupiedEdgeCount returns the number of edges carrying an endpoint.
func (p PathSet) OccupiedEdgeCount() int {
	return bits.OnesCount8(p.used)
}

// Empty reports whether the tile carries no path.
func (p PathSet) Empty() bool {
	return p.used == 0
}

// HasColor reports whether any endpoint has color c.
func (p PathSet) HasColor(c Color) bool {
	for e := 0; e < hexgrid.EdgeCount; e++ {
		if !p.IsEdgeFree(e) && p.color[e] == c {
			return true
		}
	}
	return false
}

// Colors returns the set of colors present.
func (p PathSet) Colors() ColorSet {
	var s ColorSet
	for e := 0; e < hexgrid.EdgeCount; e++ {
		if !p.IsEdgeFree(e) {
			s = s.With(p.color[e])
		}
	}
	return s
}

// Segments lists the content ordered by lowest edge index.
func (p PathSet) Segments() []Segment {
	out := make([]Segment, 0, hexgrid.EdgeCount)
	for e := 0; e < hexgrid.EdgeCount; e++ {
		if p.IsEdgeFree(e) {
			continue
		}
		o := int(p.partner[e])
		switch {
		case o == NoEdge:
			out = append(out, Segment{Color: p.color[e], A: e, B: NoEdge})
		case e < o:
			out = append(out, Segment{Color: p.color[e], A: e, B: o})
		}
	}
	return out
}

// Clear removes every segment.
func (p *PathSet) Clear() {
	*p = PathSet{}
}

// Equal reports whether both tiles carry identical content.
func (p PathSet) Equal(o PathSet) bool {
	return p == o
}

// Remap returns a copy whose edge e content moves to edge f(e). f must be a
// permutation of 0..5.
func (p PathSet) Remap(f func(int) int) PathSet {
	var out PathSet
	for e := 0; e < hexgrid.EdgeCount; e++ {
		if p.IsEdgeFree(e) {
			continue
		}
		partner := NoEdge
		if o := int(p.partner[e]); o != NoEdge {
			partner = f(o)
		}
		out.set(p.color[e], f(e), partner)
	}
	return out
}

// Rotate returns a copy turned k steps counter-clockwise.
func (p PathSet) Rotate(k int) PathSet {
	return p.Remap(func(e int) int { return hexgrid.NormalizeEdge(e + k) })
}

// Transform returns the copy obtained by applying a board symmetry to the tile.
func (p PathSet) Transform(op hexgrid.Op) PathSet {
	return p.Remap(op.ApplyEdge)
}

func (p PathSet) String() string {
	if p.Empty() {
		return "empty"
	}
	segs := p.Segments()
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, " ")
}
