package queue

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fqueue"
	"github.com/npillmayer/fqueue/maybe"
	"github.com/npillmayer/fqueue/persistent"
	"github.com/npillmayer/fqueue/persistent/chain"
)

// Queue is an immutable FIFO queue. An empty instance is usable as an empty queue,
// i.e. this is legal:
//
//     q := queue.Queue[int]{}.Enqueue(1)
//
type Queue[T comparable] struct {
	front    chain.Chain[T] // recently enqueued values, most recent on top
	lenFront int
	back     chain.Chain[T] // head of the queue, in dequeue order
	lenBack  int
}

// Immutable creates an empty queue.
//
//     q := queue.Immutable[string]()
//     q = q.Enqueue("Galaxy")
//     v, q, ok := q.Dequeue()   // returns "Galaxy"
//
func Immutable[T comparable]() Queue[T] {
	return Queue[T]{}
}

// Normalize assembles a queue from a front chain and a back chain, together with their
// lengths. The lengths are trusted to be the true lengths of the chains.
//
// If lenFront exceeds lenBack, the front chain is reversed and appended to the back
// chain, leaving an empty front. Otherwise the chains are used unchanged. This is the
// only place where the invariant len(front) ≤ len(back) is re-established.
func Normalize[T comparable](front chain.Chain[T], lenFront int, back chain.Chain[T], lenBack int) Queue[T] {
	assertThat(lenFront >= 0 && lenBack >= 0, "negative chain length: front=%d, back=%d", lenFront, lenBack)
	if lenFront <= lenBack {
		return Queue[T]{front: front, lenFront: lenFront, back: back, lenBack: lenBack}
	}
	tracer().Debugf("rebalance: moving %d values from front onto back of length %d", lenFront, lenBack)
	return Queue[T]{
		back:    chain.Concat(back, front.Reverse()),
		lenBack: lenFront + lenBack,
	}
}

// --- API -------------------------------------------------------------------

// IsEmpty is a predicate: does q hold no values?
func (q Queue[T]) IsEmpty() bool {
	return q.lenFront == 0 && q.lenBack == 0
}

// Len returns the number of values in q. Lengths are cached, so this is O(1).
func (q Queue[T]) Len() int {
	return q.lenFront + q.lenBack
}

// Enqueue returns a copy of q with value appended at the end.
func (q Queue[T]) Enqueue(value T) Queue[T] {
	return Normalize(q.front.Push(value), q.lenFront+1, q.back, q.lenBack)
}

// Dequeue removes the head of q. It returns the head value together with a new
// incarnation of the queue. If q is empty, ok is false and q is returned unchanged.
//
// Dequeue may trigger a rebalance, as shrinking the back chain may break
// len(front) ≤ len(back).
func (q Queue[T]) Dequeue() (value T, rest Queue[T], ok bool) {
	value, back, ok := q.back.Pop()
	if !ok {
		assertThat(q.lenFront == 0, "inconsistency: empty back chain with front of length %d", q.lenFront)
		return value, q, false
	}
	return value, Normalize(q.front, q.lenFront, back, q.lenBack-1), true
}

// Pop is Dequeue in the form of an optional value. It returns Nothing for an empty queue.
func (q Queue[T]) Pop() maybe.Maybe[fqueue.Pair[T, Queue[T]]] {
	v, rest, ok := q.Dequeue()
	return maybe.Of(fqueue.P(v, rest), ok)
}

// Drop removes the head of q and discards it. It returns Nothing for an empty queue.
func (q Queue[T]) Drop() maybe.Maybe[Queue[T]] {
	_, rest, ok := q.Dequeue()
	return maybe.Of(rest, ok)
}

// Peek returns the head of q without removing it.
func (q Queue[T]) Peek() maybe.Maybe[T] {
	return q.back.Head()
}

// Slice returns the values of q in dequeue order.
func (q Queue[T]) Slice() []T {
	return append(q.back.Slice(), q.front.Reverse().Slice()...)
}

// Front returns the front chain of q together with its cached length.
func (q Queue[T]) Front() (chain.Chain[T], int) {
	return q.front, q.lenFront
}

// Back returns the back chain of q together with its cached length.
func (q Queue[T]) Back() (chain.Chain[T], int) {
	return q.back, q.lenBack
}

// State classifies q by which of its chains hold values. Queues are never
// observed in state FrontOnly.
func (q Queue[T]) State() persistent.State {
	return persistent.StateOf(q.front.IsEmpty(), q.back.IsEmpty())
}

// Equal compares two queues structurally: both chains and their lengths must be equal.
// Two queues holding the same values in the same order may still differ in the way the
// values are distributed between the chains; use SameValues to compare values only.
func (q Queue[T]) Equal(other Queue[T]) bool {
	return q.lenFront == other.lenFront && q.lenBack == other.lenBack &&
		chain.Equal(q.front, other.front) && chain.Equal(q.back, other.back)
}

// SameValues is a predicate: do q and other hold the same values in the same order?
func (q Queue[T]) SameValues(other Queue[T]) bool {
	if q.Len() != other.Len() {
		return false
	}
	a, b := q.Slice(), other.Slice()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (q Queue[T]) String() string {
	b := strings.Builder{}
	b.WriteString("Queue[")
	for i, v := range q.Slice() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", v))
	}
	b.WriteByte(']')
	return b.String()
}
