/*
Package chain implements an immutable singly linked chain of values.

A chain is either empty or a node holding a value and the rest of the chain.
Prepending a value creates a new node in front of an existing chain, leaving the
existing chain unchanged and shared:

    c := chain.Of(2, 3)       // [2 3]
    d := c.Push(1)            // [1 2 3], sharing [2 3] with c

Chains are the sole storage primitive for the queues of this module. They are never
modified after creation and therefore are safe for concurrent use.

Inspecting a chain is done either with Pop, which follows the Go (value, ok) idiom,
or by pattern matching:

    var v int
    var rest chain.Chain[int]
    switch m := c.Match(); m {
    case m.Node(&v, &rest):
        …
    case m.Empty():
        …
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chain

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.chain'.
func tracer() tracing.Trace {
	return tracing.Select("fp.chain")
}
