package navigation_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexlace/generator"
	"github.com/katalvlaran/hexlace/level"
	"github.com/katalvlaran/hexlace/navigation"
	"github.com/katalvlaran/hexlace/params"
	"github.com/katalvlaran/hexlace/pathset"
)

func TestFormatElapsed(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{59*time.Second + 900*time.Millisecond, "0:59"},
		{61 * time.Second, "1:01"},
		{59*time.Minute + 59*time.Second, "59:59"},
		{time.Hour, "1:00:00"},
		{2*time.Hour + 3*time.Minute + 4*time.Second, "2:03:04"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, navigation.FormatElapsed(c.d), c.d.String())
	}
}

func TestModeString(t *testing.T) {
	assert.Equal(t, "title", navigation.ModeTitle.String())
	assert.Equal(t, "options", navigation.ModeOptions.String())
	assert.Equal(t, "Mode(9)", navigation.Mode(9).String())
}

func TestController_TableAndBack(t *testing.T) {
	c := navigation.NewController(navigation.ModeTitle)
	var log []string
	c.Allow(navigation.ModeTitle, navigation.ModeOptions, navigation.Hooks{
		Exit:  func(s *navigation.Session) error { log = append(log, "exit "+s.Mode.String()); return nil },
		Enter: func(s *navigation.Session) error { log = append(log, "enter "+s.Mode.String()); return nil },
	})
	c.Allow(navigation.ModeOptions, navigation.ModeTitle, navigation.Hooks{})

	err := c.Back()
	require.ErrorIs(t, err, navigation.ErrNoPrevious)

	require.ErrorIs(t, c.Go(navigation.ModePlay), navigation.ErrInvalidTransition)
	assert.Equal(t, navigation.ModeTitle, c.Session().Mode)

	require.NoError(t, c.Go(navigation.ModeOptions))
	assert.Equal(t, []string{"exit title", "enter options"}, log)
	s := c.Session()
	assert.Equal(t, navigation.ModeOptions, s.Mode)
	assert.Equal(t, navigation.ModeTitle, s.LastMode)
	assert.True(t, s.HasLast)

	require.NoError(t, c.Back())
	assert.Equal(t, navigation.ModeTitle, c.Session().Mode)
	assert.True(t, c.Allowed(navigation.ModeOptions, navigation.ModeTitle))
	assert.False(t, c.Allowed(navigation.ModeOptions, navigation.ModePlay))
}

func TestController_HookFailures(t *testing.T) {
	boom := errors.New("boom")

	c := navigation.NewController(navigation.ModeTitle)
	c.Allow(navigation.ModeTitle, navigation.ModeBrowse, navigation.Hooks{
		Exit: func(*navigation.Session) error { return boom },
	})
	require.ErrorIs(t, c.Go(navigation.ModeBrowse), boom)
	assert.Equal(t, navigation.ModeTitle, c.Session().Mode)
	assert.False(t, c.Session().HasLast)

	started := time.Unix(100, 0)
	c.Allow(navigation.ModeTitle, navigation.ModeEdit, navigation.Hooks{
		Exit:  func(s *navigation.Session) error { s.Started = started; return nil },
		Enter: func(*navigation.Session) error { return boom },
	})
	require.ErrorIs(t, c.Go(navigation.ModeEdit), boom)
	s := c.Session()
	assert.Equal(t, navigation.ModeTitle, s.Mode)
	assert.Equal(t, started, s.Started, "exit effects survive a failed enter")
}

func TestSession_Elapsed(t *testing.T) {
	start := time.Unix(1000, 0)
	s := navigation.Session{Started: start}
	assert.Equal(t, 90*time.Second, s.Elapsed(start.Add(90*time.Second)))
	assert.Zero(t, s.Elapsed(start.Add(-time.Second)))
	assert.Zero(t, navigation.Session{}.Elapsed(start))
}

func gameParams() navigation.Params {
	p := params.Defaults()
	p.Radius = 2
	p.Seed = 7
	p.Colors = pathset.NewColorSet(pathset.Green)
	p.FixedRange = params.IntRange{Min: 1, Max: 19}
	p.HiddenRange = params.IntRange{Min: 2, Max: 19}
	p.FixedCount, p.HiddenCount = 2, 4
	return navigation.Params{Level: p}
}

func TestGameController_PlayFlow(t *testing.T) {
	now := time.Unix(5000, 0)
	c := navigation.NewGameController(context.Background(), gameParams(),
		navigation.WithClock(func() time.Time { return now }))

	require.NoError(t, c.Go(navigation.ModePlay))
	s := c.Session()
	require.NotNil(t, s.Level)
	assert.Equal(t, uint64(7), s.Level.Seed)
	assert.Equal(t, now, s.Started)

	now = now.Add(75 * time.Second)
	assert.Equal(t, "1:15", navigation.FormatElapsed(c.Session().Elapsed(now)))

	require.NoError(t, c.Back())
	s = c.Session()
	assert.Equal(t, navigation.ModeTitle, s.Mode)
	assert.True(t, s.Started.IsZero())

	require.NoError(t, c.Go(navigation.ModeOptions))
	require.ErrorIs(t, c.Go(navigation.ModePlay), navigation.ErrInvalidTransition)
}

func TestGameController_EditThenPlay(t *testing.T) {
	c := navigation.NewGameController(context.Background(), gameParams())
	require.NoError(t, c.Go(navigation.ModeEdit))
	lv := c.Session().Level
	require.NotNil(t, lv)
	_, _, blank := lv.Counts()
	assert.Equal(t, len(lv.Tiles), blank)

	require.NoError(t, c.Go(navigation.ModePlay))
	assert.Same(t, lv, c.Session().Level, "play keeps the edited board")
	assert.False(t, c.Session().Started.IsZero())
}

func TestGameController_GenerationFailureStaysOnTitle(t *testing.T) {
	gp := gameParams()
	gp.Level.Colors = 0
	c := navigation.NewGameController(context.Background(), gp)
	err := c.Go(navigation.ModePlay)
	require.ErrorIs(t, err, generator.ErrParameterRange)
	assert.Equal(t, navigation.ModeTitle, c.Session().Mode)
	assert.Nil(t, c.Session().Level)
}

func TestTitleBackground_PublishesLatest(t *testing.T) {
	ctx := context.Background()
	b := navigation.NewTitleBackground()
	lv, _ := b.Level()
	assert.Nil(t, lv)

	b.Refresh(ctx, 11)
	require.NoError(t, b.Wait(ctx))
	lv, seed := b.Level()
	require.NotNil(t, lv)
	assert.Equal(t, uint64(11), seed)
	assert.NotEmpty(t, lv.Tiles)
}

func TestTitleBackground_RefreshCancelsPrevious(t *testing.T) {
	ctx := context.Background()
	release := make(chan struct{})
	var cancelled atomic.Int32
	gen := func(ctx context.Context, seed uint64) *level.Level {
		if seed == 1 {
			<-ctx.Done()
			cancelled.Add(1)
			<-release
		}
		return generator.GenerateBlankLevel(int(seed))
	}
	b := navigation.NewTitleBackground(navigation.WithTitleFunc(gen))

	b.Refresh(ctx, 1)
	b.Refresh(ctx, 2)
	require.NoError(t, b.Wait(ctx))
	lv, seed := b.Level()
	require.NotNil(t, lv)
	assert.Equal(t, uint64(2), seed)
	assert.Equal(t, 2, lv.Radius)

	require.Eventually(t, func() bool { return cancelled.Load() == 1 }, time.Second, time.Millisecond)
	close(release)
	time.Sleep(10 * time.Millisecond)
	_, seed = b.Level()
	assert.Equal(t, uint64(2), seed, "superseded run must not publish")
}

func TestTitleBackground_Stop(t *testing.T) {
	ctx := context.Background()
	gen := func(ctx context.Context, seed uint64) *level.Level {
		<-ctx.Done()
		return generator.GenerateBlankLevel(1)
	}
	b := navigation.NewTitleBackground(navigation.WithTitleFunc(gen))
	b.Refresh(ctx, 3)
	b.Stop()
	require.NoError(t, b.Wait(ctx))
	lv, _ := b.Level()
	assert.Nil(t, lv)
}
