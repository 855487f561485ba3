/*
Package fqueue is the root of a small library of purely functional linear collections.

All collections in this module are immutable and persistent: every operation which
looks like a modification returns a new incarnation of the collection, leaving the
original untouched. Unchanged parts of a collection are shared between incarnations.

Sub-packages

   persistent/chain    // immutable singly linked chain, the storage primitive
   persistent/queue    // banker's queue with amortized O(1) enqueue/dequeue
   persistent/deque    // two-stack double-ended queue
   maybe               // optional values, used to signal empty collections
   result              // values or errors, used for outcomes of script steps

The command fqueue (cmd/fqueue) runs scripts of queue operations and checks both
queue kinds against a model with randomized runs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fqueue

// --- Pair ------------------------------------------------------------------

// Pair holds two values of possibly different types. Queues use it to return an
// extracted element together with the remaining queue.
type Pair[A, B any] struct {
	Left  A
	Right B
}

// P creates a pair.
func P[A, B any](x A, y B) Pair[A, B] {
	return Pair[A, B]{x, y}
}

// Decompose returns both components of a pair.
//
//     value, q := pair.Decompose()
//
func (p Pair[A, B]) Decompose() (A, B) {
	return p.Left, p.Right
}

// Swap returns a pair with components exchanged.
func (p Pair[A, B]) Swap() Pair[B, A] {
	return Pair[B, A]{p.Right, p.Left}
}
