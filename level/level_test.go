package level_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hexlace/hexgrid"
	"github.com/katalvlaran/hexlace/level"
	"github.com/katalvlaran/hexlace/pathset"
)

// lineLevel builds a radius-1 board with one red path running west to east
// through the center: (-1,0) -> (0,0) -> (1,0).
func lineLevel(t *testing.T) *level.Level {
	t.Helper()
	g, err := hexgrid.New(1)
	require.NoError(t, err)
	l := level.New(g)

	west := l.Tile(hexgrid.Coord{Q: -1, R: 0})
	center := l.Tile(hexgrid.Coord{})
	east := l.Tile(hexgrid.Coord{Q: 1, R: 0})
	require.NoError(t, west.Solved.AddTerminal(pathset.Red, 0))
	require.NoError(t, center.Solved.AddSegment(pathset.Red, 0, 3))
	require.NoError(t, east.Solved.AddTerminal(pathset.Red, 3))
	for _, tl := range []*level.Tile{west, center, east} {
		tl.Current = tl.Solved
		tl.State = level.Fixed
	}
	l.Colors = pathset.NewColorSet(pathset.Red)
	return l
}

func TestNew_AllBlank(t *testing.T) {
	g, err := hexgrid.New(2)
	require.NoError(t, err)
	l := level.New(g)

	require.Len(t, l.Tiles, 19)
	fixed, hidden, blank := l.Counts()
	assert.Equal(t, [3]int{0, 0, 19}, [3]int{fixed, hidden, blank})
	for i, tl := range l.Tiles {
		assert.Equal(t, g.At(i), tl.Coord)
		assert.True(t, tl.Solved.Empty())
	}
	assert.Nil(t, l.Tile(hexgrid.Coord{Q: 3, R: 0}))
	assert.True(t, l.IsSolved())
}

func TestMismatches(t *testing.T) {
	l := lineLevel(t)
	assert.Empty(t, l.Mismatches(level.OrientSolved))
	assert.True(t, l.IsSolved())

	// a dangling endpoint on the board boundary
	edge := l.Tile(hexgrid.Coord{Q: 1, R: 0})
	require.NoError(t, edge.Solved.Extend(pathset.Red, 3, 0))
	assert.Equal(t, []level.Mismatch{{At: hexgrid.Coord{Q: 1, R: 0}, Edge: 0}}, l.Mismatches(level.OrientSolved))
}

func TestMismatches_Color(t *testing.T) {
	l := lineLevel(t)
	west := l.Tile(hexgrid.Coord{Q: -1, R: 0})
	west.Solved.Clear()
	require.NoError(t, west.Solved.AddTerminal(pathset.Blue, 0))

	got := l.Mismatches(level.OrientSolved)
	assert.ElementsMatch(t, []level.Mismatch{
		{At: hexgrid.Coord{Q: -1, R: 0}, Edge: 0},
		{At: hexgrid.Coord{}, Edge: 3},
	}, got)
}

func TestRotateCurrent(t *testing.T) {
	l := lineLevel(t)
	center := l.Tile(hexgrid.Coord{})
	center.State = level.Hidden
	center.Scramble(1)
	assert.False(t, l.IsSolved())
	assert.False(t, center.InPlace())
	assert.Equal(t, 1, center.Rotation)

	center.RotateCurrent(2)
	assert.Equal(t, 3, center.Rotation)
	// a straight segment is solved when flipped end over end
	assert.True(t, l.IsSolved())
	assert.True(t, center.InPlace())

	center.RotateCurrent(-4)
	assert.Equal(t, 5, center.Rotation)
	assert.False(t, l.IsSolved())

	fixed := l.Tile(hexgrid.Coord{Q: 1, R: 0})
	fixed.RotateCurrent(1)
	assert.Equal(t, 0, fixed.Rotation, "fixed tiles do not turn")
}

func TestSolvedAndClone(t *testing.T) {
	l := lineLevel(t)
	l.Tile(hexgrid.Coord{}).State = level.Hidden
	l.Tile(hexgrid.Coord{}).Scramble(2)

	s := l.Solved()
	assert.True(t, s.IsSolved())
	assert.Equal(t, 0, s.Tile(hexgrid.Coord{}).Rotation)
	assert.Equal(t, 2, l.Tile(hexgrid.Coord{}).Rotation, "Solved must not touch the receiver")

	c := l.Clone()
	assert.True(t, c.Equal(l))
	c.Tiles[0].State = level.Hidden
	assert.False(t, c.Equal(l))
	assert.True(t, (*level.Level)(nil).Equal(nil))
	assert.False(t, l.Equal(nil))
}

func TestPathComponents(t *testing.T) {
	l := lineLevel(t)
	comps := l.PathComponents(pathset.Red, level.OrientSolved)
	require.Len(t, comps, 1)
	assert.ElementsMatch(t, []hexgrid.Coord{{Q: -1, R: 0}, {}, {Q: 1, R: 0}}, comps[0])
	assert.Empty(t, l.PathComponents(pathset.Blue, level.OrientSolved))
}

func TestNewID(t *testing.T) {
	a := level.NewID([]byte("seed=42"))
	assert.Equal(t, a, level.NewID([]byte("seed=42")))
	assert.NotEqual(t, a, level.NewID([]byte("seed=43")))
	assert.Equal(t, 5, int(a.Version()))
}

func TestLevel_Codecs(t *testing.T) {
	l := lineLevel(t)
	l.ID = level.NewID([]byte("codec"))
	l.Tile(hexgrid.Coord{}).State = level.Hidden
	l.Tile(hexgrid.Coord{}).Scramble(4)

	data, err := json.Marshal(l)
	require.NoError(t, err)
	var fromJSON level.Level
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.True(t, fromJSON.Equal(l))
	assert.False(t, fromJSON.IsSolved())

	data, err = yaml.Marshal(l)
	require.NoError(t, err)
	var fromYAML level.Level
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.True(t, fromYAML.Equal(l))

	center := fromJSON.Tile(hexgrid.Coord{})
	require.NotNil(t, center, "decoded level resolves tiles without a grid")
	assert.Equal(t, hexgrid.Coord{}, center.Coord)
	assert.Equal(t, hexgrid.Coord{Q: 1, R: -1}, fromJSON.Tile(hexgrid.Coord{Q: 1, R: -1}).Coord)
	assert.Nil(t, fromJSON.Tile(hexgrid.Coord{Q: 2}))

	var st level.RevealState
	assert.ErrorIs(t, st.UnmarshalText([]byte("lost")), level.ErrUnknownState)
}
