package deque

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fqueue"
	"github.com/npillmayer/fqueue/maybe"
	"github.com/npillmayer/fqueue/persistent"
	"github.com/npillmayer/fqueue/persistent/chain"
)

// Deque is an immutable double-ended queue. An empty instance is usable as an
// empty deque.
type Deque[T comparable] struct {
	front chain.Chain[T] // values pushed to the end, most recent on top
	back  chain.Chain[T] // head of the deque, in dequeue order
}

// Immutable creates an empty deque.
func Immutable[T comparable]() Deque[T] {
	return Deque[T]{}
}

// Normalize assembles a deque from a front chain and a back chain. If back is empty
// while front is not, back becomes the reversal of front and front is emptied.
// Otherwise the chains are used unchanged.
func Normalize[T comparable](front, back chain.Chain[T]) Deque[T] {
	if back.IsEmpty() && !front.IsEmpty() {
		return Deque[T]{back: front.Reverse()}
	}
	return Deque[T]{front: front, back: back}
}

// --- API -------------------------------------------------------------------

// IsEmpty is a predicate: does d hold no values?
func (d Deque[T]) IsEmpty() bool {
	return d.front.IsEmpty() && d.back.IsEmpty()
}

// Len counts the values of d. Deques do not cache lengths, thus this is O(n).
func (d Deque[T]) Len() int {
	return d.front.Len() + d.back.Len()
}

// Enqueue returns a copy of d with value appended at the end.
func (d Deque[T]) Enqueue(value T) Deque[T] {
	return Normalize(d.front.Push(value), d.back)
}

// EnqueueR returns a copy of d with value prepended at the head.
// Pushing onto the back chain cannot break the invariant, so no normalization happens.
func (d Deque[T]) EnqueueR(value T) Deque[T] {
	return Deque[T]{front: d.front, back: d.back.Push(value)}
}

// Dequeue removes the head of d, returning it together with a new incarnation of the
// deque. If d is empty, ok is false and d is returned unchanged.
//
// The front chain is left untouched. Only if the back chain runs empty while the front
// chain still holds values, the result is normalized.
func (d Deque[T]) Dequeue() (value T, rest Deque[T], ok bool) {
	value, back, ok := d.back.Pop()
	if !ok {
		return value, d, false
	}
	return value, Normalize(d.front, back), true
}

// DequeueR removes the end of d, returning it together with a new incarnation of the
// deque. If d is empty, ok is false and d is returned unchanged.
//
// With a non-empty front chain this is O(1). Otherwise the back chain is reversed,
// its new top split off, and the remainder reversed back into dequeue order, which is O(n).
func (d Deque[T]) DequeueR() (value T, rest Deque[T], ok bool) {
	if value, front, ok := d.front.Pop(); ok {
		return value, Deque[T]{front: front, back: d.back}, true
	}
	if d.back.IsEmpty() {
		return value, d, false
	}
	tracer().Debugf("dequeue from end: rebuilding back chain (front is empty)")
	value, reversed, _ := d.back.Reverse().Pop()
	return value, Deque[T]{back: reversed.Reverse()}, true
}

// Pop is Dequeue in the form of an optional value.
func (d Deque[T]) Pop() maybe.Maybe[fqueue.Pair[T, Deque[T]]] {
	v, rest, ok := d.Dequeue()
	return maybe.Of(fqueue.P(v, rest), ok)
}

// PopR is DequeueR in the form of an optional value.
func (d Deque[T]) PopR() maybe.Maybe[fqueue.Pair[T, Deque[T]]] {
	v, rest, ok := d.DequeueR()
	return maybe.Of(fqueue.P(v, rest), ok)
}

// Drop removes the head of d and discards it.
func (d Deque[T]) Drop() maybe.Maybe[Deque[T]] {
	_, rest, ok := d.Dequeue()
	return maybe.Of(rest, ok)
}

// DropR removes the end of d and discards it.
func (d Deque[T]) DropR() maybe.Maybe[Deque[T]] {
	_, rest, ok := d.DequeueR()
	return maybe.Of(rest, ok)
}

// Peek returns the head of d without removing it.
func (d Deque[T]) Peek() maybe.Maybe[T] {
	return d.back.Head()
}

// PeekR returns the end of d without removing it. This is O(n) if the front chain
// is empty.
func (d Deque[T]) PeekR() maybe.Maybe[T] {
	if v, _, ok := d.front.Pop(); ok {
		return maybe.Just(v)
	}
	return d.back.FindLast(func(T) bool { return true })
}

// Slice returns the values of d from head to end.
func (d Deque[T]) Slice() []T {
	return append(d.back.Slice(), d.front.Reverse().Slice()...)
}

// Front returns the front chain of d.
func (d Deque[T]) Front() chain.Chain[T] {
	return d.front
}

// Back returns the back chain of d.
func (d Deque[T]) Back() chain.Chain[T] {
	return d.back
}

// State classifies d by which of its chains hold values.
func (d Deque[T]) State() persistent.State {
	return persistent.StateOf(d.front.IsEmpty(), d.back.IsEmpty())
}

// Equal compares two deques structurally, chain by chain.
func (d Deque[T]) Equal(other Deque[T]) bool {
	return chain.Equal(d.front, other.front) && chain.Equal(d.back, other.back)
}

// SameValues is a predicate: do d and other hold the same values in the same order?
func (d Deque[T]) SameValues(other Deque[T]) bool {
	a, b := d.Slice(), other.Slice()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (d Deque[T]) String() string {
	b := strings.Builder{}
	b.WriteString("Deque[")
	for i, v := range d.Slice() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", v))
	}
	b.WriteByte(']')
	return b.String()
}
