package generator

import (
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/hexlace/level"
	"github.com/katalvlaran/hexlace/params"
	"github.com/katalvlaran/hexlace/pathset"
	"github.com/katalvlaran/hexlace/seedstream"
)

// reveal partitions a solved board into fixed, hidden and blank tiles.
//
//  1. FixedCount tiles are drawn uniformly from the occupied tiles.
//  2. Hidden tiles are drawn from the rest of the hidden-capable pool: the
//     remaining occupied tiles, or every remaining tile under FillAllTiles.
//     At least HiddenCount are drawn; more are drawn, up to the hidden range
//     maximum, when otherwise the leftover occupied tiles would push the
//     fixed count over its range. Each hidden tile is turned 1..5 steps,
//     preferring turns that change what the tile shows, except for
//     PurposeEdit, which keeps the solution visible.
//  3. Leftover occupied tiles stay in solved orientation and are fixed;
//     unoccupied tiles are blank.
//
// A board with too few occupied tiles fails with ErrDensityUnsatisfiable; a
// resulting fixed count above its range fails with ErrParameterRange.
func reveal(lv *level.Level, p params.GenerationParameters, rng *seedstream.Stream, purpose Purpose) error {
	var occupied []int
	for i := range lv.Tiles {
		if lv.Tiles[i].Occupied() {
			occupied = append(occupied, i)
		}
	}
	if p.FixedCount+p.HiddenCount > len(lv.Tiles) {
		return fmt.Errorf("reveal: fixed %d + hidden %d > %d tiles: %w",
			p.FixedCount, p.HiddenCount, len(lv.Tiles), ErrParameterRange)
	}
	if len(occupied) < p.FixedCount {
		return fmt.Errorf("reveal: %d occupied tiles for %d fixed: %w",
			len(occupied), p.FixedCount, ErrDensityUnsatisfiable)
	}

	fixed := mapset.New[int]()
	for _, k := range rng.Sample(len(occupied), p.FixedCount) {
		fixed.Put(occupied[k])
	}

	var pool []int
	if p.FillAllTiles {
		for i := range lv.Tiles {
			if !fixed.Has(i) {
				pool = append(pool, i)
			}
		}
	} else {
		for _, i := range occupied {
			if !fixed.Has(i) {
				pool = append(pool, i)
			}
		}
	}

	want := max(p.HiddenCount, len(occupied)-p.FixedRange.Max)
	want = min(want, p.HiddenRange.Max, len(pool))
	if want < p.HiddenCount {
		return fmt.Errorf("reveal: %d hidden-capable tiles for %d hidden: %w",
			len(pool), p.HiddenCount, ErrDensityUnsatisfiable)
	}

	picks := rng.Sample(len(pool), want)
	hidden := make([]int, len(picks))
	for k, pi := range picks {
		hidden[k] = pool[pi]
	}
	slices.Sort(hidden)

	for i := range lv.Tiles {
		t := &lv.Tiles[i]
		t.Current, t.Rotation = t.Solved, 0
		if t.Occupied() {
			t.State = level.Fixed
		} else {
			t.State = level.Blank
		}
	}
	for _, i := range hidden {
		t := &lv.Tiles[i]
		t.State = level.Hidden
		rot := 0
		if purpose != PurposeEdit {
			rot = scrambleRotation(t.Solved, rng)
		}
		t.Scramble(rot)
	}

	nFixed, nHidden, _ := lv.Counts()
	if !p.FixedRange.Contains(nFixed) {
		return fmt.Errorf("reveal: %d fixed tiles outside %s: %w", nFixed, p.FixedRange, ErrParameterRange)
	}
	lv.FixedCount, lv.HiddenCount = nFixed, nHidden
	return nil
}

// scrambleRotation draws a turn in 1..5 under which p looks different, so a
// hidden tile does not start in place. Tiles that look the same under every
// turn take any of 1..5.
func scrambleRotation(p pathset.PathSet, rng *seedstream.Stream) int {
	var moves [5]int
	n := 0
	for k := 1; k <= 5; k++ {
		if !p.Rotate(k).Equal(p) {
			moves[n] = k
			n++
		}
	}
	if n == 0 {
		return rng.Intn(1, 5)
	}
	return moves[rng.Uniform(n)]
}
