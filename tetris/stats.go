package tetris

import "github.com/kamstrup/intmap"

// MaxClear is the most rows a single lock can clear.
const MaxClear = 4

// Stats counts spawned shapes and line clears over one game.
type Stats struct {
	spawns *intmap.Map[Shape, int]
	clears *intmap.Map[int, int]
	locked int
}

func newStats() *Stats {
	return &Stats{
		spawns: intmap.New[Shape, int](ShapeCount),
		clears: intmap.New[int, int](MaxClear),
	}
}

func (s *Stats) recordSpawn(shape Shape) {
	n, _ := s.spawns.Get(shape)
	s.spawns.Put(shape, n+1)
}

func (s *Stats) recordLock(cleared int) {
	s.locked++
	if cleared == 0 {
		return
	}
	n, _ := s.clears.Get(cleared)
	s.clears.Put(cleared, n+1)
}

// Spawned returns how many pieces of shape have been drawn from the
// lookahead queue. Pieces swapped back in from the hold slot are not counted.
func (s *Stats) Spawned(shape Shape) int {
	n, _ := s.spawns.Get(shape)
	return n
}

// TotalSpawned sums Spawned over every shape.
func (s *Stats) TotalSpawned() int {
	total := 0
	for _, shape := range AllShapes() {
		total += s.Spawned(shape)
	}
	return total
}

// Clears returns how many locks cleared exactly rows rows.
func (s *Stats) Clears(rows int) int {
	n, _ := s.clears.Get(rows)
	return n
}

// Locked returns the number of pieces merged into the board.
func (s *Stats) Locked() int {
	return s.locked
}
