package hexgrid

import "fmt"

// Domain is the fundamental domain of a grid under a symmetry group: one
// representative per orbit, plus the bookkeeping that maps every tile back to
// its representative.
type Domain struct {
	grid  *Grid
	sym   Symmetry
	reps  []Coord
	repOf map[Coord]int // tile -> index into reps
	opOf  map[Coord]Op  // tile == opOf[tile].Apply(reps[repOf[tile]])
	stab  [][]Op        // stabilizer of each representative, identity first
	orbit [][]Coord     // orbit of each representative, in discovery order
}

// NewDomain partitions g into orbits of sym. The representative of each orbit
// is its first member in enumeration order; representatives are returned in
// enumeration order.
//
// A non-trivial group is realizable only when at least one orbit is free (its
// size equals the group order). Otherwise every tile would be pinned by some
// operation and the symmetry degenerates, so ErrSymmetryInfeasible is returned.
//
// Complexity: O(T·|G|).
func NewDomain(g *Grid, sym Symmetry) (*Domain, error) {
	if g == nil {
		return nil, fmt.Errorf("NewDomain: nil grid: %w", ErrOutOfGrid)
	}
	if !sym.Valid() {
		return nil, fmt.Errorf("NewDomain: %w: %d", ErrUnknownSymmetry, int(sym))
	}
	ops := sym.Group()
	d := &Domain{
		grid:  g,
		sym:   sym,
		repOf: make(map[Coord]int, g.Len()),
		opOf:  make(map[Coord]Op, g.Len()),
	}
	free := false
	for _, c := range g.coords {
		if _, seen := d.repOf[c]; seen {
			continue
		}
		ri := len(d.reps)
		d.reps = append(d.reps, c)
		var stab []Op
		var orbit []Coord
		for _, op := range ops {
			img := op.Apply(c)
			if img == c {
				stab = append(stab, op)
			}
			if _, seen := d.repOf[img]; seen {
				continue
			}
			d.repOf[img] = ri
			d.opOf[img] = op
			orbit = append(orbit, img)
		}
		d.stab = append(d.stab, stab)
		d.orbit = append(d.orbit, orbit)
		if len(orbit) == len(ops) {
			free = true
		}
	}
	if len(ops) > 1 && !free {
		return nil, fmt.Errorf("NewDomain(radius=%d, %s): %w", g.Radius, sym, ErrSymmetryInfeasible)
	}

	return d, nil
}

// FundamentalDomain returns the ordered representatives of every orbit of the
// radius-r board under sym. The domain is empty, with an error, when the
// radius cannot realize the group.
func FundamentalDomain(radius int, sym Symmetry) ([]Coord, error) {
	g, err := New(radius)
	if err != nil {
		return nil, err
	}
	d, err := NewDomain(g, sym)
	if err != nil {
		return []Coord{}, err
	}
	return d.Representatives(), nil
}

// Grid returns the underlying board.
func (d *Domain) Grid() *Grid { return d.grid }

// Symmetry returns the group the domain was built for.
func (d *Domain) Symmetry() Symmetry { return d.sym }

// Len returns the number of representatives.
func (d *Domain) Len() int { return len(d.reps) }

// Representatives returns a copy of the representatives in enumeration order.
func (d *Domain) Representatives() []Coord {
	out := make([]Coord, len(d.reps))
	copy(out, d.reps)
	return out
}

// Rep returns the i-th representative.
func (d *Domain) Rep(i int) Coord { return d.reps[i] }

// IsRepresentative reports whether c is in the domain.
func (d *Domain) IsRepresentative(c Coord) bool {
	ri, ok := d.repOf[c]
	return ok && d.reps[ri] == c
}

// Resolve maps a tile to its representative index and the operation carrying
// the representative onto it. ok is false for tiles off the board.
func (d *Domain) Resolve(c Coord) (rep int, op Op, ok bool) {
	rep, ok = d.repOf[c]
	if !ok {
		return 0, Identity, false
	}
	return rep, d.opOf[c], true
}

// Stabilizer returns the operations fixing the i-th representative.
func (d *Domain) Stabilizer(i int) []Op {
	return d.stab[i]
}

// Orbit returns every tile derived from the i-th representative.
func (d *Domain) Orbit(i int) []Coord {
	out := make([]Coord, len(d.orbit[i]))
	copy(out, d.orbit[i])
	return out
}

// Anchor returns the index of the tile path growth starts from: the board
// center when it is a representative, else the first representative.
func (d *Domain) Anchor() int {
	if ri, ok := d.repOf[Coord{}]; ok && d.reps[ri] == (Coord{}) {
		return ri
	}
	return 0
}
