package hexgrid

// Components finds all contiguous regions of tiles for which include reports
// true. Two included neighbors belong to the same region when linked(c, e)
// reports true for the edge e of c facing the other tile; a nil linked treats
// every shared edge as a link.
//
// Returns a slice of components; each component lists enumeration indices in
// BFS order, and components appear in order of their first tile. Use At to
// convert an index back to a coordinate.
//
// Time:   O(T·6).
// Memory: O(T) for visited flags and output.
func (g *Grid) Components(include func(Coord) bool, linked func(c Coord, e int) bool) [][]int {
	seen := make([]bool, len(g.coords))
	var comps [][]int

	for i0, c0 := range g.coords {
		if seen[i0] || !include(c0) {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []int

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			comp = append(comp, u)
			uc := g.coords[u]
			for e := 0; e < EdgeCount; e++ {
				vc, ok := g.Neighbor(uc, e)
				if !ok || !include(vc) {
					continue
				}
				if linked != nil && !linked(uc, e) {
					continue
				}
				vi := g.index[vc]
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
