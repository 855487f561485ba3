package chain

import (
	"fmt"
	"strings"

	"github.com/npillmayer/fqueue/maybe"
)

// Chain is an immutable sequence of values. The zero value is an empty chain,
// i.e. this is legal:
//
//     c := chain.Chain[int]{}.Push(1)
//
type Chain[T comparable] struct {
	top *node[T]
}

// node is a cell of a chain. Its rest is never altered after creation.
type node[T comparable] struct {
	value T
	rest  Chain[T]
}

// Empty returns the empty chain.
func Empty[T comparable]() Chain[T] {
	return Chain[T]{}
}

// Cons returns a new chain with value as its head and c as its rest.
func Cons[T comparable](value T, c Chain[T]) Chain[T] {
	return Chain[T]{top: &node[T]{value: value, rest: c}}
}

// Of creates a chain from a list of values. The first value becomes the head.
func Of[T comparable](values ...T) Chain[T] {
	var c Chain[T]
	for i := len(values) - 1; i >= 0; i-- {
		c = Cons(values[i], c)
	}
	return c
}

// --- API -------------------------------------------------------------------

// Push returns a new chain with value prepended. c is shared, not copied.
func (c Chain[T]) Push(value T) Chain[T] {
	return Cons(value, c)
}

// Pop splits a chain into its head value and the rest. If c is empty,
// Pop returns the zero value of T, an empty chain and false.
func (c Chain[T]) Pop() (T, Chain[T], bool) {
	if c.top == nil {
		var none T
		return none, c, false
	}
	return c.top.value, c.top.rest, true
}

// Head returns the first value of a chain, if any.
func (c Chain[T]) Head() maybe.Maybe[T] {
	if c.top == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(c.top.value)
}

// Split returns the head of a chain, if any, together with the rest.
// The rest of an empty chain is empty.
func (c Chain[T]) Split() (maybe.Maybe[T], Chain[T]) {
	v, rest, ok := c.Pop()
	return maybe.Of(v, ok), rest
}

// IsEmpty is a predicate: does c contain no values?
func (c Chain[T]) IsEmpty() bool {
	return c.top == nil
}

// Len counts the values of a chain. This is O(n); clients who need the length
// frequently should cache it.
func (c Chain[T]) Len() int {
	n := 0
	for l := c.top; l != nil; l = l.rest.top {
		n++
	}
	return n
}

// Slice returns the values of a chain, head first.
func (c Chain[T]) Slice() []T {
	s := make([]T, 0, 8)
	for l := c.top; l != nil; l = l.rest.top {
		s = append(s, l.value)
	}
	return s
}

// ForEach calls f for every value, head first.
func (c Chain[T]) ForEach(f func(T)) {
	for l := c.top; l != nil; l = l.rest.top {
		f(l.value)
	}
}

func (c Chain[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for l := c.top; l != nil; l = l.rest.top {
		if l != c.top {
			b.WriteByte(' ')
		}
		b.WriteString(fmt.Sprintf("%v", l.value))
	}
	b.WriteByte(']')
	return b.String()
}

// --- Matching --------------------------------------------------------------

// Match returns a matcher for the two variants of a chain: Empty and Node.
func (c Chain[T]) Match() Matcher[T] {
	return matcher[T]{c: c}
}

// Matcher is used for pattern matching on a chain, see the package documentation.
type Matcher[T comparable] interface {
	Empty() Matcher[T]
	Node(*T, *Chain[T]) Matcher[T]
}

type matcher[T comparable] struct {
	c Chain[T]
}

func (cm matcher[T]) Empty() Matcher[T] {
	if cm.c.top == nil {
		return cm
	}
	return nil
}

// Node matches a non-empty chain. value and rest may be nil if the caller is not
// interested in them.
func (cm matcher[T]) Node(value *T, rest *Chain[T]) Matcher[T] {
	if cm.c.top == nil {
		return nil
	}
	if value != nil {
		*value = cm.c.top.value
	}
	if rest != nil {
		*rest = cm.c.top.rest
	}
	return cm
}
