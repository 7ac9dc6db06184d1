// Package session drives a tetris.Game from a host loop. It buffers decoded
// input, feeds at most one command and one elapsed-time slice to the game
// per step, and keeps timing statistics about those steps.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/plus3/blockfall/tetris"
)

// StepStats summarizes how long Once took over the life of a session.
type StepStats struct {
	Steps         int64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type stepStatsInternal struct {
	steps         int64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// Session owns one game at a time plus the input queue feeding it.
// All methods are safe to call from multiple goroutines.
type Session struct {
	mu     sync.Mutex
	cfg    tetris.Config
	opts   []tetris.Option
	game   *tetris.Game
	queue  CommandQueue
	paused bool
	games  int
	stats  stepStatsInternal
}

// New starts a session with its first game. opts are passed to every game
// the session creates.
func New(cfg tetris.Config, opts ...tetris.Option) (*Session, error) {
	s := &Session{
		cfg:  cfg,
		opts: opts,
		stats: stepStatsInternal{
			minDuration: time.Duration(1<<63 - 1),
		},
	}

	if err := s.newGame(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) newGame() error {
	cfg := s.cfg
	if cfg.Seed != 0 {
		cfg.Seed += uint64(s.games)
	}

	game, err := tetris.NewGame(cfg, s.opts...)
	if err != nil {
		return fmt.Errorf("failed to start game %d: %w", s.games+1, err)
	}

	s.game = game
	s.games++
	s.queue.Clear()
	return nil
}

// Push buffers a command for a later step. It reports false when the queue
// is full or the session is paused.
func (s *Session) Push(cmd tetris.Command) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return false
	}
	return s.queue.Push(cmd)
}

// Once runs a single step: the oldest buffered command, if any, followed by
// dt of gravity. A paused session returns the current state unchanged.
func (s *Session) Once(dt time.Duration) tetris.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.paused {
		return s.game.Snapshot()
	}

	start := time.Now()
	cmd, _ := s.queue.Pop()
	snap := s.game.Step(dt, cmd)
	duration := time.Since(start)

	s.stats.steps++
	s.stats.lastDuration = duration
	s.stats.totalDuration += duration

	if duration < s.stats.minDuration {
		s.stats.minDuration = duration
	}
	if duration > s.stats.maxDuration {
		s.stats.maxDuration = duration
	}

	return snap
}

// Run steps the session at the given interval until ctx is cancelled,
// handing every resulting snapshot to render.
func (s *Session) Run(ctx context.Context, interval time.Duration, render func(tetris.Snapshot)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime)
			lastTime = now
			snap := s.Once(dt)
			if render != nil {
				render(snap)
			}
		}
	}
}

// TogglePause pauses or resumes the session and returns the new state.
// Commands buffered before pausing are discarded.
func (s *Session) TogglePause() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paused = !s.paused
	s.queue.Clear()
	return s.paused
}

func (s *Session) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

// Restart abandons the current game and starts a new one. A fixed seed is
// offset by the number of games played so each game deals a new sequence.
func (s *Session) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.paused = false
	return s.newGame()
}

// Snapshot returns the state of the current game.
func (s *Session) Snapshot() tetris.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Game returns the current game. Callers must not use it concurrently with
// the session.
func (s *Session) Game() *tetris.Game {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game
}

// Games returns how many games this session has started.
func (s *Session) Games() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.games
}

func (s *Session) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Stats returns step timing statistics.
func (s *Session) Stats() StepStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := StepStats{
		Steps:         s.stats.steps,
		MaxDuration:   s.stats.maxDuration,
		LastDuration:  s.stats.lastDuration,
		TotalDuration: s.stats.totalDuration,
	}
	if s.stats.steps > 0 {
		stats.MinDuration = s.stats.minDuration
		stats.AvgDuration = s.stats.totalDuration / time.Duration(s.stats.steps)
	}
	return stats
}
