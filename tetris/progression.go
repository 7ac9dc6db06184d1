package tetris

import "time"

// ScoreForClear returns the points awarded for clearing n rows with one lock.
func ScoreForClear(n int) int {
	return n * n * 100
}

// Progression tracks score, level and gravity speed.
type Progression struct {
	Score        int
	Level        int
	Lines        int
	FallInterval time.Duration
}

// NewProgression returns the level 1 state for cfg.
func NewProgression(cfg Config) Progression {
	return Progression{
		Level:        1,
		FallInterval: cfg.FallInterval(1),
	}
}

// Record applies one lock that cleared n rows. n may be zero.
func (p *Progression) Record(n int, cfg Config) {
	p.Score += ScoreForClear(n)
	p.Lines += n
	p.Level = cfg.LevelFor(p.Lines)
	p.FallInterval = cfg.FallInterval(p.Level)
}
