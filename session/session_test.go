package session_test

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"testing"
	"time"

	"github.com/plus3/blockfall/session"
	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.New(tetris.ClassicConfig(), tetris.WithRand(rand.New(rand.NewPCG(1, 2))))
	require.NoError(t, err)
	return s
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := tetris.ClassicConfig()
	cfg.LinesPerLevel = 0

	_, err := session.New(cfg)
	assert.ErrorIs(t, err, tetris.ErrInvalidConfig)
}

func TestOnceAppliesOneCommandPerStep(t *testing.T) {
	s := newSession(t)
	start := s.Snapshot().Active.Piece

	s.Push(tetris.MoveLeft)
	s.Push(tetris.MoveLeft)
	assert.Equal(t, 2, s.Pending())

	snap := s.Once(0)
	assert.Equal(t, start.Moved(-1, 0), snap.Active.Piece)
	assert.Equal(t, 1, s.Pending())

	snap = s.Once(0)
	assert.Equal(t, start.Moved(-2, 0), snap.Active.Piece)
	assert.Equal(t, 0, s.Pending())
}

func TestOnceAppliesInputBeforeGravity(t *testing.T) {
	s := newSession(t)
	start := s.Snapshot().Active.Piece

	s.Push(tetris.MoveRight)
	snap := s.Once(tetris.ClassicConfig().BaseFallInterval)

	assert.Equal(t, start.Moved(1, 1), snap.Active.Piece)
}

func TestPause(t *testing.T) {
	s := newSession(t)
	before := s.Snapshot()

	s.Push(tetris.MoveLeft)
	assert.True(t, s.TogglePause())
	assert.True(t, s.Paused())
	assert.Equal(t, 0, s.Pending())
	assert.False(t, s.Push(tetris.MoveLeft))

	snap := s.Once(time.Hour)
	assert.Equal(t, before, snap)

	assert.False(t, s.TogglePause())
	snap = s.Once(time.Hour)
	assert.Equal(t, before.Active.Piece.Moved(0, 1), snap.Active.Piece)
}

func TestRestart(t *testing.T) {
	s := newSession(t)

	s.Push(tetris.Quit)
	require.True(t, s.Once(0).GameOver)

	require.NoError(t, s.Restart())
	assert.Equal(t, 2, s.Games())
	assert.False(t, s.Snapshot().GameOver)
	assert.False(t, s.Game().GameOver())
}

func TestRestartOffsetsFixedSeed(t *testing.T) {
	cfg := tetris.ClassicConfig()
	cfg.Seed = 99

	a, err := session.New(cfg)
	require.NoError(t, err)
	b, err := session.New(cfg)
	require.NoError(t, err)

	assert.Equal(t, a.Snapshot().Next, b.Snapshot().Next)
	assert.Equal(t, a.Snapshot().Active.Piece, b.Snapshot().Active.Piece)

	require.NoError(t, a.Restart())
	require.NoError(t, b.Restart())
	assert.Equal(t, a.Snapshot().Next, b.Snapshot().Next)
}

func TestStepStats(t *testing.T) {
	s := newSession(t)
	assert.Equal(t, session.StepStats{}, s.Stats())

	for range 5 {
		s.Once(time.Millisecond)
	}

	stats := s.Stats()
	assert.Equal(t, int64(5), stats.Steps)
	assert.LessOrEqual(t, stats.MinDuration, stats.AvgDuration)
	assert.LessOrEqual(t, stats.AvgDuration, stats.MaxDuration)
	assert.LessOrEqual(t, stats.MaxDuration, stats.TotalDuration)
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newSession(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var frames atomic.Int64
	done := make(chan struct{})
	go func() {
		s.Run(ctx, time.Millisecond, func(tetris.Snapshot) {
			frames.Add(1)
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}

	assert.Positive(t, frames.Load())
	assert.Equal(t, frames.Load(), s.Stats().Steps)
}
