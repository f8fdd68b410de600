package display

import "soulstar.dev/internal/animation"

// pendingQueue is the bounded FIFO backlog of animations waiting to be
// shown. Push drops on full. Peek and Drop are separate so the display task
// can check the head against the current animation's interruptability and
// only commit to the dequeue once it decides to switch.
type pendingQueue struct {
	buf   []animation.Animation
	head  int
	count int
}

func newPendingQueue(capacity int) *pendingQueue {
	return &pendingQueue{buf: make([]animation.Animation, capacity)}
}

// Push appends an animation, reporting false when the queue is full.
func (q *pendingQueue) Push(a animation.Animation) bool {
	if q.count == len(q.buf) {
		return false
	}
	q.buf[(q.head+q.count)%len(q.buf)] = a
	q.count++
	return true
}

// Peek returns the head without removing it.
func (q *pendingQueue) Peek() (animation.Animation, bool) {
	if q.count == 0 {
		return animation.Animation{}, false
	}
	return q.buf[q.head], true
}

// Drop discards the head. Only meaningful after a successful Peek.
func (q *pendingQueue) Drop() {
	if q.count == 0 {
		return
	}
	q.buf[q.head] = animation.Animation{}
	q.head = (q.head + 1) % len(q.buf)
	q.count--
}

// Pop removes and returns the head.
func (q *pendingQueue) Pop() (animation.Animation, bool) {
	a, ok := q.Peek()
	if ok {
		q.Drop()
	}
	return a, ok
}

func (q *pendingQueue) Len() int {
	return q.count
}
