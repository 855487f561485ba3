/*
Package layout renders the internal two-chain layout of queues and deques.

Clients of a queue never need to know how values are distributed between the front
chain and the back chain. For debugging and for demonstrating rebalancing it is,
however, instructive to look at it:

    Queue (len=8, BOTH-NONEMPTY)
    ├── back  (4)  [0 1 2 3]
    └── front (4)  [7 6 5 4]

The front chain is printed top first, i.e. the most recently enqueued value leads.
*/
package layout

import (
	"fmt"

	"github.com/npillmayer/fqueue/persistent/chain"
	"github.com/npillmayer/fqueue/persistent/deque"
	"github.com/npillmayer/fqueue/persistent/queue"
	tp "github.com/xlab/treeprint"
)

// Queue renders the layout of a banker's queue, including its cached lengths.
func Queue[T comparable](q queue.Queue[T]) string {
	printer := tp.NewWithRoot(fmt.Sprintf("Queue (len=%d, %s)", q.Len(), q.State()))
	back, lenBack := q.Back()
	front, lenFront := q.Front()
	addChain(printer, "back ", back, lenBack)
	addChain(printer, "front", front, lenFront)
	return printer.String()
}

// Deque renders the layout of a deque. Deques do not cache lengths, so they are
// counted here.
func Deque[T comparable](d deque.Deque[T]) string {
	printer := tp.NewWithRoot(fmt.Sprintf("Deque (len=%d, %s)", d.Len(), d.State()))
	addChain(printer, "back ", d.Back(), d.Back().Len())
	addChain(printer, "front", d.Front(), d.Front().Len())
	return printer.String()
}

func addChain[T comparable](printer tp.Tree, name string, c chain.Chain[T], length int) {
	printer.AddNode(fmt.Sprintf("%s (%d)  %s", name, length, c))
}
