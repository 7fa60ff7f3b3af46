package drill

import "math/rand"

// Queue is the ordered working set of a session. Items drawn and answered
// correctly never re-enter; items answered incorrectly are re-appended at
// the back so they reappear later in the same session.
type Queue struct {
	items []*Item
	rng   *rand.Rand
}

// NewQueue builds a queue over the given items. The randomness source is
// explicit so sessions are reproducible under test with a fixed seed.
func NewQueue(items []*Item, rng *rand.Rand) *Queue {
	q := &Queue{
		items: make([]*Item, len(items)),
		rng:   rng,
	}
	copy(q.items, items)
	return q
}

// Shuffle randomizes the queue order in place.
func (q *Queue) Shuffle() {
	q.rng.Shuffle(len(q.items), func(i, j int) {
		q.items[i], q.items[j] = q.items[j], q.items[i]
	})
}

// Truncate caps the queue at n items. n <= 0 leaves the queue unchanged.
func (q *Queue) Truncate(n int) {
	if n > 0 && len(q.items) > n {
		q.items = q.items[:n]
	}
}

// Len returns the number of items still eligible to be drawn.
func (q *Queue) Len() int {
	return len(q.items)
}

// Draw removes and returns one item uniformly at random, or nil when the
// queue is empty.
func (q *Queue) Draw() *Item {
	if len(q.items) == 0 {
		return nil
	}
	i := q.rng.Intn(len(q.items))
	it := q.items[i]
	q.items = append(q.items[:i], q.items[i+1:]...)
	return it
}

// Requeue puts a missed item back at the end of the queue.
func (q *Queue) Requeue(it *Item) {
	q.items = append(q.items, it)
}
