package hexgrid

import (
	"fmt"
	"strings"
)

// Op is one symmetry operation about the board center: an optional reflection
// across the axis through edge 0 followed by Rot counter-clockwise 60° steps.
// The zero value is the identity.
type Op struct {
	Rot    int
	Mirror bool
}

// Identity is the operation that leaves every tile and edge in place.
var Identity = Op{}

// Apply maps a coordinate. Mirror is (q,r)→(q+r,−r); one rotation step is
// (q,r)→(q+r,−q).
func (o Op) Apply(c Coord) Coord {
	if o.Mirror {
		c = Coord{Q: c.Q + c.R, R: -c.R}
	}
	for i := 0; i < NormalizeEdge(o.Rot); i++ {
		c = Coord{Q: c.Q + c.R, R: -c.Q}
	}
	return c
}

// ApplyEdge maps an edge index consistently with Apply:
// o.Apply(c.Neighbor(e)) == o.Apply(c).Neighbor(o.ApplyEdge(e)).
func (o Op) ApplyEdge(e int) int {
	if o.Mirror {
		e = -e
	}
	return NormalizeEdge(e + o.Rot)
}

// Inverse returns the operation undoing o.
func (o Op) Inverse() Op {
	if o.Mirror {
		// every reflection is an involution
		return Op{Rot: NormalizeEdge(o.Rot), Mirror: true}
	}
	return Op{Rot: NormalizeEdge(-o.Rot)}
}

// Compose returns the operation applying b first, then o.
func (o Op) Compose(b Op) Op {
	rot := b.Rot
	if o.Mirror {
		rot = -rot
	}
	return Op{Rot: NormalizeEdge(o.Rot + rot), Mirror: o.Mirror != b.Mirror}
}

// IsIdentity reports whether o fixes everything.
func (o Op) IsIdentity() bool {
	return !o.Mirror && NormalizeEdge(o.Rot) == 0
}

func (o Op) String() string {
	if o.Mirror {
		return fmt.Sprintf("rot%d·mirror", NormalizeEdge(o.Rot))
	}
	return fmt.Sprintf("rot%d", NormalizeEdge(o.Rot))
}

// Symmetry names a group of operations a level must be invariant under.
type Symmetry int

const (
	// SymmetryNone is the trivial group; the whole board is the domain.
	SymmetryNone Symmetry = iota
	// SymmetryMirror reflects across the axis through edge 0.
	SymmetryMirror
	// SymmetryRotate2 is 180° rotation.
	SymmetryRotate2
	// SymmetryRotate3 is 120° rotation.
	SymmetryRotate3
	// SymmetryRotate6 is 60° rotation.
	SymmetryRotate6
	// SymmetryDihedral6 is the full symmetry group of the hexagon (12 operations).
	SymmetryDihedral6
)

var symmetryNames = [...]string{
	SymmetryNone:      "none",
	SymmetryMirror:    "mirror",
	SymmetryRotate2:   "rotate2",
	SymmetryRotate3:   "rotate3",
	SymmetryRotate6:   "rotate6",
	SymmetryDihedral6: "dihedral6",
}

// Symmetries lists every supported mode in declaration order.
func Symmetries() []Symmetry {
	return []Symmetry{SymmetryNone, SymmetryMirror, SymmetryRotate2, SymmetryRotate3, SymmetryRotate6, SymmetryDihedral6}
}

// Valid reports whether s is a declared mode.
func (s Symmetry) Valid() bool {
	return s >= SymmetryNone && s <= SymmetryDihedral6
}

// String returns the canonical name; ParseSymmetry is its exact inverse.
func (s Symmetry) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Symmetry(%d)", int(s))
	}
	return symmetryNames[s]
}

// ParseSymmetry converts a canonical name back to a Symmetry. Leading and
// trailing spaces are ignored; matching is case-insensitive.
func ParseSymmetry(text string) (Symmetry, error) {
	name := strings.ToLower(strings.TrimSpace(text))
	for i, n := range symmetryNames {
		if n == name {
			return Symmetry(i), nil
		}
	}
	return SymmetryNone, fmt.Errorf("%w: %q", ErrUnknownSymmetry, text)
}

// MarshalText implements encoding.TextMarshaler.
func (s Symmetry) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSymmetry, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Symmetry) UnmarshalText(text []byte) error {
	v, err := ParseSymmetry(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Group returns the operations of s, identity first, in a fixed order.
// An undeclared mode yields the trivial group.
func (s Symmetry) Group() []Op {
	switch s {
	case SymmetryMirror:
		return []Op{Identity, {Mirror: true}}
	case SymmetryRotate2:
		return []Op{Identity, {Rot: 3}}
	case SymmetryRotate3:
		return []Op{Identity, {Rot: 2}, {Rot: 4}}
	case SymmetryRotate6:
		return []Op{Identity, {Rot: 1}, {Rot: 2}, {Rot: 3}, {Rot: 4}, {Rot: 5}}
	case SymmetryDihedral6:
		ops := make([]Op, 0, 2*EdgeCount)
		for k := 0; k < EdgeCount; k++ {
			ops = append(ops, Op{Rot: k})
		}
		for k := 0; k < EdgeCount; k++ {
			ops = append(ops, Op{Rot: k, Mirror: true})
		}
		return ops
	default:
		return []Op{Identity}
	}
}

// Order returns the number of operations in the group.
func (s Symmetry) Order() int {
	return len(s.Group())
}

// SymmetryImage returns the image of c under the opIndex-th operation of s.
// opIndex is taken modulo the group order.
func SymmetryImage(c Coord, s Symmetry, opIndex int) Coord {
	ops := s.Group()
	i := opIndex % len(ops)
	if i < 0 {
		i += len(ops)
	}
	return ops[i].Apply(c)
}
