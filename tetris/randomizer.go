package tetris

import "math/rand/v2"

// PreviewSize is the number of upcoming shapes kept in the lookahead queue.
const PreviewSize = 4

// Bag deals shapes in shuffled rounds of seven: every round contains each
// shape exactly once.
type Bag struct {
	rng    *rand.Rand
	order  [ShapeCount]Shape
	cursor int
}

// NewBag returns a bag drawing from rng. The first draw triggers a shuffle.
func NewBag(rng *rand.Rand) *Bag {
	return &Bag{
		rng:    rng,
		cursor: ShapeCount,
	}
}

// Shuffle refills the bag with a uniform Fisher-Yates permutation of all
// seven shapes and rewinds the cursor.
func (b *Bag) Shuffle() {
	for i := range ShapeCount {
		b.order[i] = Shape(i)
	}

	for i := ShapeCount - 1; i > 0; i-- {
		j := b.rng.IntN(i + 1)
		b.order[i], b.order[j] = b.order[j], b.order[i]
	}

	b.cursor = 0
}

// Next draws one shape, reshuffling once the current round is exhausted.
func (b *Bag) Next() Shape {
	if b.cursor >= ShapeCount {
		b.Shuffle()
	}
	s := b.order[b.cursor]
	b.cursor++
	return s
}

// Remaining returns how many shapes are left in the current round.
func (b *Bag) Remaining() int {
	return ShapeCount - b.cursor
}

// Lookahead is a fixed-length queue of upcoming shapes fed by a Bag.
type Lookahead struct {
	bag   *Bag
	queue [PreviewSize]Shape
}

// NewLookahead fills a queue with PreviewSize draws from bag.
func NewLookahead(bag *Bag) *Lookahead {
	l := &Lookahead{bag: bag}
	for i := range PreviewSize {
		l.queue[i] = bag.Next()
	}
	return l
}

// Pop removes the front shape, shifts the rest forward and appends one new
// draw, so the queue stays full.
func (l *Lookahead) Pop() Shape {
	front := l.queue[0]
	copy(l.queue[:], l.queue[1:])
	l.queue[PreviewSize-1] = l.bag.Next()
	return front
}

// Peek returns the queued shapes, front first.
func (l *Lookahead) Peek() [PreviewSize]Shape {
	return l.queue
}

func (l *Lookahead) Len() int {
	return len(l.queue)
}
