package session

import "github.com/plus3/blockfall/tetris"

// QueueCapacity bounds the number of commands buffered between steps.
const QueueCapacity = 10

// CommandQueue is a fixed-size FIFO of decoded input. Pushing onto a full
// queue drops the command.
type CommandQueue struct {
	buf   [QueueCapacity]tetris.Command
	start int
	n     int
}

// Push appends cmd and reports whether there was room for it.
func (q *CommandQueue) Push(cmd tetris.Command) bool {
	if q.n == QueueCapacity {
		return false
	}
	q.buf[(q.start+q.n)%QueueCapacity] = cmd
	q.n++
	return true
}

// Pop removes the oldest command.
func (q *CommandQueue) Pop() (tetris.Command, bool) {
	if q.n == 0 {
		return tetris.CommandNone, false
	}
	cmd := q.buf[q.start]
	q.start = (q.start + 1) % QueueCapacity
	q.n--
	return cmd, true
}

func (q *CommandQueue) Len() int {
	return q.n
}

// Clear drops every buffered command.
func (q *CommandQueue) Clear() {
	q.start = 0
	q.n = 0
}
