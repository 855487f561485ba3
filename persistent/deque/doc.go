/*
Package deque implements an immutable persistent double-ended queue.

A deque is made of two chains, like a banker's queue, but without cached lengths.
The front chain holds values pushed to the end of the deque, most recent on top;
the back chain holds the head of the deque in dequeue order. A deque maintains the
invariant

    deque is non-empty ⇒ back chain is non-empty

Values may be added and removed at both ends:

    Enqueue(v)   // add v at the end               amortized O(1)
    EnqueueR(v)  // add v at the head              O(1)
    Dequeue()    // remove the head                O(1)
    DequeueR()   // remove the end                 O(1) if the front chain is non-empty,
                 //                                O(n) otherwise

Removing the end of a deque with an empty front chain has to rebuild the back chain
by reversing it twice. This cost is not amortized: alternating EnqueueR and DequeueR
on a deque with an empty front chain pays O(n) on every DequeueR. Clients needing
worst-case O(1) at both ends should use a real-time deque instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package deque

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.deque'.
func tracer() tracing.Trace {
	return tracing.Select("fp.deque")
}
