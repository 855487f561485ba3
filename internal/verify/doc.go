/*
Package verify runs randomized model checks of the queue engines.

Every run starts from one shared snapshot of a queue, applies a random sequence
of operations and compares each outcome with a plain slice holding the same values.
Runs are executed concurrently by a bounded pool of workers. As all runs derive
their incarnations from the same snapshot, a check also demonstrates that
concurrent readers never observe changes made by other readers: the snapshot is
compared with its initial content once all workers are done.

The operations drawn depend on the kind of queue. A deque is additionally exercised
at its end, i.e. with enqueue_r, dequeue_r and peek_r.
*/
package verify

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fqueue.verify'.
func tracer() tracing.Trace {
	return tracing.Select("fqueue.verify")
}
