package tetris

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Game is the progression controller. It owns the board, the randomizer,
// the active piece and the score, and advances only when its host calls
// Submit or Advance. A Game is not safe for concurrent use.
type Game struct {
	cfg      Config
	board    Board
	bag      *Bag
	next     *Lookahead
	active   Piece
	hold     Shape
	hasHold  bool
	canHold  bool
	progress Progression
	state    State
	elapsed  time.Duration
	stats    *Stats
}

// Option customizes a Game under construction.
type Option func(*Game)

// WithRand draws pieces from rng instead of a generator seeded from Config.Seed.
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.bag = NewBag(rng)
	}
}

// WithBoard starts the game on a pre-filled board. The first piece spawns
// onto it, so a board that blocks the spawn area ends the game at once.
func WithBoard(board Board) Option {
	return func(g *Game) {
		g.board = board
	}
}

// NewGame validates cfg and returns a game with its first piece spawned.
func NewGame(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	g := &Game{
		cfg:      cfg,
		canHold:  true,
		progress: NewProgression(cfg),
		state:    StateSpawning,
		stats:    newStats(),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.bag == nil {
		g.bag = NewBag(newRand(cfg.Seed))
	}
	g.next = NewLookahead(g.bag)
	g.spawnNext()

	return g, nil
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Submit applies one command immediately. Illegal moves are dropped
// silently. After game over every command is ignored.
func (g *Game) Submit(cmd Command) Snapshot {
	if g.state != StateGameOver {
		g.apply(cmd)
	}
	return g.Snapshot()
}

// Advance accumulates elapsed time and applies one gravity tick once the
// current fall interval has been reached. At most one tick is applied per
// call; the accumulator restarts from zero after it.
func (g *Game) Advance(elapsed time.Duration) Snapshot {
	if g.state == StateGameOver {
		return g.Snapshot()
	}

	g.elapsed += elapsed
	if g.elapsed >= g.progress.FallInterval {
		g.elapsed = 0
		g.tick()
	}

	return g.Snapshot()
}

// Step processes one host loop iteration: cmd (if not CommandNone) is
// applied before gravity gets its chance to move the piece.
func (g *Game) Step(elapsed time.Duration, cmd Command) Snapshot {
	if cmd != CommandNone {
		g.Submit(cmd)
	}
	return g.Advance(elapsed)
}

func (g *Game) apply(cmd Command) {
	switch cmd {
	case MoveLeft:
		g.try(g.active.Moved(-1, 0))
	case MoveRight:
		g.try(g.active.Moved(1, 0))
	case SoftDrop:
		g.try(g.active.Moved(0, 1))
	case RotateCW:
		g.try(g.active.Rotated(1))
	case RotateCCW:
		g.try(g.active.Rotated(-1))
	case HardDrop:
		g.active = g.board.Drop(g.active)
		g.elapsed = 0
		g.lock()
	case Hold:
		g.holdActive()
	case Quit:
		g.state = StateGameOver
	}
}

// try commits candidate when it fits.
func (g *Game) try(candidate Piece) bool {
	if !g.board.Fits(candidate) {
		return false
	}
	g.active = candidate
	return true
}

func (g *Game) tick() {
	if g.try(g.active.Moved(0, 1)) {
		return
	}
	g.lock()
}

func (g *Game) lock() {
	g.state = StateLocking

	g.board.Merge(g.active)
	cleared := g.board.ClearFullRows()
	g.progress.Record(cleared, g.cfg)
	g.stats.recordLock(cleared)
	g.canHold = true

	g.spawnNext()
}

func (g *Game) holdActive() {
	if !g.canHold {
		return
	}
	g.canHold = false

	if !g.hasHold {
		g.hold = g.active.Shape
		g.hasHold = true
		g.spawnNext()
		return
	}

	shape := g.hold
	g.hold = g.active.Shape
	g.place(shape)
}

func (g *Game) spawnNext() {
	shape := g.next.Pop()
	g.stats.recordSpawn(shape)
	g.place(shape)
}

// place puts shape at the spawn anchor and ends the game if it does not fit.
func (g *Game) place(shape Shape) {
	g.state = StateSpawning
	g.active = SpawnPiece(shape)

	if !g.board.Fits(g.active) {
		g.state = StateGameOver
		return
	}
	g.state = StateFalling
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board: g.board,
		Active: ActiveView{
			Piece: g.active,
			Cells: g.active.Cells(),
			Ghost: g.board.Drop(g.active).Cells(),
		},
		Hold:         g.hold,
		HasHold:      g.hasHold,
		CanHold:      g.canHold,
		Next:         g.next.Peek(),
		Score:        g.progress.Score,
		Level:        g.progress.Level,
		Lines:        g.progress.Lines,
		FallInterval: g.progress.FallInterval,
		State:        g.state,
		GameOver:     g.state == StateGameOver,
	}
}

func (g *Game) Config() Config {
	return g.cfg
}

// Stats returns the running counters of this game.
func (g *Game) Stats() *Stats {
	return g.stats
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) GameOver() bool {
	return g.state == StateGameOver
}
