package script

import (
	"github.com/npillmayer/fqueue/internal/layout"
	"github.com/npillmayer/fqueue/maybe"
	"github.com/npillmayer/fqueue/persistent/deque"
	"github.com/npillmayer/fqueue/persistent/queue"
)

// Kind selects the queue engine a script runs against.
type Kind string

// Known kinds of queues.
const (
	Banker Kind = "banker"
	Double Kind = "deque"
)

// ParseKind checks a kind given by name.
func ParseKind(name string) (Kind, bool) {
	switch Kind(name) {
	case Banker, Double:
		return Kind(name), true
	}
	return "", false
}

// Collection is the common view of both queue kinds used by the interpreter.
// Every method returning a Collection returns a new incarnation.
type Collection interface {
	Enqueue(string) Collection
	Dequeue() (string, Collection, bool)
	Peek() maybe.Maybe[string]
	Len() int
	IsEmpty() bool
	Slice() []string
	Layout() string
	String() string
}

// DoubleEndedCollection is a Collection which supports operations at its end.
type DoubleEndedCollection interface {
	Collection
	EnqueueR(string) Collection
	DequeueR() (string, Collection, bool)
	PeekR() maybe.Maybe[string]
}

// NewCollection creates an empty collection of the given kind.
func NewCollection(kind Kind) Collection {
	if kind == Double {
		return doubleQueue{deque.Immutable[string]()}
	}
	return bankerQueue{queue.Immutable[string]()}
}

// --- Banker's queue --------------------------------------------------------

type bankerQueue struct {
	q queue.Queue[string]
}

var _ Collection = bankerQueue{}

func (b bankerQueue) Enqueue(v string) Collection {
	return bankerQueue{b.q.Enqueue(v)}
}

func (b bankerQueue) Dequeue() (string, Collection, bool) {
	v, rest, ok := b.q.Dequeue()
	return v, bankerQueue{rest}, ok
}

func (b bankerQueue) Peek() maybe.Maybe[string] { return b.q.Peek() }
func (b bankerQueue) Len() int                  { return b.q.Len() }
func (b bankerQueue) IsEmpty() bool             { return b.q.IsEmpty() }
func (b bankerQueue) Slice() []string           { return b.q.Slice() }
func (b bankerQueue) Layout() string            { return layout.Queue(b.q) }
func (b bankerQueue) String() string            { return b.q.String() }

// --- Deque -----------------------------------------------------------------

type doubleQueue struct {
	d deque.Deque[string]
}

var _ DoubleEndedCollection = doubleQueue{}

func (dq doubleQueue) Enqueue(v string) Collection {
	return doubleQueue{dq.d.Enqueue(v)}
}

func (dq doubleQueue) EnqueueR(v string) Collection {
	return doubleQueue{dq.d.EnqueueR(v)}
}

func (dq doubleQueue) Dequeue() (string, Collection, bool) {
	v, rest, ok := dq.d.Dequeue()
	return v, doubleQueue{rest}, ok
}

func (dq doubleQueue) DequeueR() (string, Collection, bool) {
	v, rest, ok := dq.d.DequeueR()
	return v, doubleQueue{rest}, ok
}

func (dq doubleQueue) Peek() maybe.Maybe[string]  { return dq.d.Peek() }
func (dq doubleQueue) PeekR() maybe.Maybe[string] { return dq.d.PeekR() }
func (dq doubleQueue) Len() int                   { return dq.d.Len() }
func (dq doubleQueue) IsEmpty() bool              { return dq.d.IsEmpty() }
func (dq doubleQueue) Slice() []string            { return dq.d.Slice() }
func (dq doubleQueue) Layout() string             { return layout.Deque(dq.d) }
func (dq doubleQueue) String() string             { return dq.d.String() }
