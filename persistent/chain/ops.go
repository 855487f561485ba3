package chain

import "github.com/npillmayer/fqueue/maybe"

// Reverse returns a new chain holding the values of c in opposite order.
// It allocates one node per value.
func (c Chain[T]) Reverse() Chain[T] {
	var r Chain[T]
	for l := c.top; l != nil; l = l.rest.top {
		r = Cons(l.value, r)
	}
	return r
}

// Concat returns a chain with the values of a followed by the values of b.
// Every value of a is pushed onto b, last value first; b itself is shared.
// Concat is O(len(a)).
func Concat[T comparable](a, b Chain[T]) Chain[T] {
	if a.top == nil {
		return b
	}
	values := a.Slice()
	tracer().Debugf("concat: pushing %d values onto chain", len(values))
	for i := len(values) - 1; i >= 0; i-- {
		b = Cons(values[i], b)
	}
	return b
}

// Equal compares two chains value by value. It returns early on the first
// mismatch, on a difference in length, or on reaching a suffix shared by a and b.
func Equal[T comparable](a, b Chain[T]) bool {
	x, y := a.top, b.top
	for x != nil && y != nil {
		if x == y { // shared suffix
			return true
		}
		if x.value != y.value {
			return false
		}
		x, y = x.rest.top, y.rest.top
	}
	return x == nil && y == nil
}

// Equal is the method version of the function Equal.
func (c Chain[T]) Equal(other Chain[T]) bool {
	return Equal(c, other)
}

// --- Traversal -------------------------------------------------------------

// Any is a predicate: does at least one value of c satisfy pred?
func (c Chain[T]) Any(pred func(T) bool) bool {
	for l := c.top; l != nil; l = l.rest.top {
		if pred(l.value) {
			return true
		}
	}
	return false
}

// All is a predicate: do all values of c satisfy pred? All is true for an empty chain.
func (c Chain[T]) All(pred func(T) bool) bool {
	for l := c.top; l != nil; l = l.rest.top {
		if !pred(l.value) {
			return false
		}
	}
	return true
}

// Find returns the first value from the head satisfying pred.
func (c Chain[T]) Find(pred func(T) bool) maybe.Maybe[T] {
	for l := c.top; l != nil; l = l.rest.top {
		if pred(l.value) {
			return maybe.Just(l.value)
		}
	}
	return maybe.Nothing[T]()
}

// FindLast returns the last value (i.e., the one nearest to the end of the chain)
// satisfying pred.
func (c Chain[T]) FindLast(pred func(T) bool) maybe.Maybe[T] {
	var found T
	var ok bool
	for l := c.top; l != nil; l = l.rest.top {
		if pred(l.value) {
			found, ok = l.value, true
		}
	}
	return maybe.Of(found, ok)
}

// Map returns a new chain with f applied to every value.
func (c Chain[T]) Map(f func(T) T) Chain[T] {
	values := c.Slice()
	var r Chain[T]
	for i := len(values) - 1; i >= 0; i-- {
		r = Cons(f(values[i]), r)
	}
	return r
}

// Filter returns a new chain holding the values satisfying pred, in their original order.
// The longest suffix of c in which every value satisfies pred is shared, not copied.
func (c Chain[T]) Filter(pred func(T) bool) Chain[T] {
	var kept []T
	var run *node[T] // first node of the current run of accepted values
	for l := c.top; l != nil; l = l.rest.top {
		if pred(l.value) {
			if run == nil {
				run = l
			}
			continue
		}
		for k := run; k != nil && k != l; k = k.rest.top {
			kept = append(kept, k.value)
		}
		run = nil
	}
	r := Chain[T]{top: run}
	for i := len(kept) - 1; i >= 0; i-- {
		r = Cons(kept[i], r)
	}
	return r
}

// Fold reduces a chain from the head, starting with zero.
//
//     sum := chain.Fold(c, 0, func(acc, n int) int { return acc + n })
//
func Fold[T comparable, R any](c Chain[T], zero R, f func(R, T) R) R {
	acc := zero
	for l := c.top; l != nil; l = l.rest.top {
		acc = f(acc, l.value)
	}
	return acc
}
