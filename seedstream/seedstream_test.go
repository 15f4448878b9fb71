package seedstream_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexlace/seedstream"
)

// draw collects n values so that two streams can be compared wholesale.
func draw(s *seedstream.Stream, n int) []uint64 {
	out := make([]uint64, n)
	for i := range out {
		out[i] = s.Uint64()
	}
	return out
}

func TestStream_SameInputsSameDraws(t *testing.T) {
	a := seedstream.New(42, 7, 3)
	b := seedstream.New(42, 7, 3)
	assert.Equal(t, draw(a, 64), draw(b, 64))
}

func TestStream_DistinctInputsDiverge(t *testing.T) {
	base := draw(seedstream.New(42, 0, 0), 8)
	others := [][3]uint64{
		{43, 0, 0},
		{42, 1, 0},
		{42, 0, 1},
		{0, 42, 0},
		{0, 0, 42},
	}
	for _, in := range others {
		got := draw(seedstream.New(in[0], in[1], in[2]), 8)
		assert.NotEqual(t, base, got, "inputs %v alias (42,0,0)", in)
	}
	// attempt n+1 must not be attempt n shifted by one draw
	a0 := draw(seedstream.New(1, 1, 0), 9)
	a1 := draw(seedstream.New(1, 1, 1), 8)
	assert.NotEqual(t, a0[1:], a1)
}

func TestStream_UniformBounds(t *testing.T) {
	s := seedstream.New(9, 9, 9)
	counts := make([]int, 6)
	for i := 0; i < 6000; i++ {
		v := s.Uniform(6)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 6)
		counts[v]++
	}
	for v, n := range counts {
		assert.Greater(t, n, 800, "value %d drawn %d times", v, n)
	}
	assert.Equal(t, 0, s.Uniform(0))
	assert.Equal(t, 0, s.Uniform(1))
	assert.Equal(t, 0, s.Uniform(-5))
}

func TestStream_Bool(t *testing.T) {
	s := seedstream.New(1, 2, 3)
	for i := 0; i < 100; i++ {
		assert.False(t, s.Bool(0))
		assert.True(t, s.Bool(1))
	}
	hits := 0
	for i := 0; i < 10000; i++ {
		if s.Bool(0.25) {
			hits++
		}
	}
	assert.InDelta(t, 2500, hits, 300)
}

func TestStream_Intn(t *testing.T) {
	s := seedstream.New(5, 0, 0)
	for i := 0; i < 200; i++ {
		v := s.Intn(1, 5)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 5)
	}
	assert.Equal(t, 3, s.Intn(3, 2))
}

func TestStream_PermAndSample(t *testing.T) {
	s := seedstream.New(11, 0, 0)
	p := s.Perm(10)
	require.Len(t, p, 10)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, p)

	k := s.Sample(10, 4)
	assert.Len(t, k, 4)
	seen := map[int]bool{}
	for _, v := range k {
		assert.False(t, seen[v])
		seen[v] = true
	}
	assert.Len(t, s.Sample(3, 9), 3)
	assert.Empty(t, s.Sample(3, -1))
	assert.Empty(t, s.Perm(-2))
}

func TestParseSeed(t *testing.T) {
	cases := []struct {
		in   string
		want uint64
	}{
		{"42", 42},
		{"  42 ", 42},
		{"0x2a", 42},
		{"0b101010", 42},
		{"18446744073709551615", ^uint64(0)},
		{"-1", ^uint64(0)},
		{"0042", 42},
		{"09", 9},
		{"010", 10},
		{"0o52", 42},
		{"0X2A", 42},
		{"-0x1", ^uint64(0)},
		{"-9223372036854775808", 1 << 63},
	}
	for _, tc := range cases {
		got, err := seedstream.ParseSeed(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "   ", "forty-two", "12abc", "0xZZ", "18446744073709551616", "0x", "--1", "-+1", "-9223372036854775809"} {
		_, err := seedstream.ParseSeed(bad)
		assert.ErrorIs(t, err, seedstream.ErrSeedParse, "%q", bad)
	}
}

func TestFormatSeed_RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 42, ^uint64(0)} {
		got, err := seedstream.ParseSeed(seedstream.FormatSeed(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
}

func TestTimeSeed(t *testing.T) {
	t0 := time.Unix(1700000000, 0)
	assert.Equal(t, seedstream.TimeSeed(t0), seedstream.TimeSeed(t0))
	assert.NotEqual(t, seedstream.TimeSeed(t0), seedstream.TimeSeed(t0.Add(time.Nanosecond)))
}
