/*
Package persistent holds immutable persistent collections.

Immutable persistent data structures are data structures which can be copied and modified
efficiently, leaving the original unchanged. Functional programming languages like Lisp have long
relied on using them.
This package and its sub-packages offer linear collections with similar properties:
a singly linked chain, a banker's queue and a double-ended queue.

Queues in this module are made of two chains, a front chain collecting recently added values
in reverse order, and a back chain holding the head of the queue. Every operation on a queue
returns a new incarnation, which shares the unchanged parts of both chains with its
predecessor. Older incarnations stay valid and unchanged, so clients may keep them as
snapshots and may hand them to concurrent readers without locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package persistent
