/*
Package queue implements an immutable persistent FIFO queue, known as the banker's queue.

A queue is made of two chains: the front chain collects enqueued values, the most recent
one on top; the back chain holds the head of the queue in dequeue order. Both chains carry
a cached length, and a queue maintains the invariant

    len(front) ≤ len(back)

Whenever an operation would violate it, the front chain is reversed and appended to the
back chain in one step. Thus a non-empty queue always has its head on top of the back chain.

Complexity

Enqueue and Dequeue are amortized O(1). Think of every value as carrying one credit
while it waits on the front chain. A rebalance moving k values from front to back costs
O(k), but it is paid for by the k credits collected when the values were enqueued.

The argument holds for any sequence of operations starting from an empty queue and
proceeding from each result to the next. As queues are persistent, a client may keep
an old incarnation and dequeue from it again; every replay pays for the same rebalance
again. This is inherent to amortization in persistent structures and is not compensated.

Status

Used by the fqueue command line tool and its model checker.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package queue

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.queue'.
func tracer() tracing.Trace {
	return tracing.Select("fp.queue")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queue: "+msg, msgargs...)
		panic(msg)
	}
}
