/*
Package script interprets line-based scripts of queue operations.

A script drives a single queue, either a banker's queue or a deque, through a sequence
of operations. Every line holds one operation, optionally followed by arguments:

    # comments start with a hash
    enqueue   a b c     # append values at the end
    enqueue_r z         # prepend at the head (deque only)
    dequeue             # remove and print the head
    dequeue_r           # remove and print the end (deque only)
    drop                # remove the head silently
    peek | peek_r       # print head or end
    len | empty | print # inspect the queue
    dump                # print the internal layout
    save NAME           # remember the current incarnation
    load NAME           # continue with a remembered incarnation

As queues are persistent, `save` costs nothing but a map entry, and `load` makes
the interpreter continue from an earlier incarnation which is guaranteed to be
unchanged by anything that happened in-between.

Removing from an empty queue is not an error of the script: the step reports the
empty collection and the script continues. Syntax errors and operations the queue
kind does not support are detected before any step is executed.
*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fqueue.script'.
func tracer() tracing.Trace {
	return tracing.Select("fqueue.script")
}
