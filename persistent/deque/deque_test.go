package deque

import (
	"testing"

	"github.com/npillmayer/fqueue/persistent"
	"github.com/npillmayer/fqueue/persistent/chain"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fixtures --------------------------------------------------------------

func dequeFilledOnBack() Deque[int] {
	return Deque[int]{back: chain.Of(0, 1, 2, 3)}
}

func dequeFilledOnBoth() Deque[int] {
	return Deque[int]{
		front: chain.Of(7, 6, 5, 4),
		back:  chain.Of(0, 1, 2, 3),
	}
}

func assertDeque(t *testing.T, expected, d Deque[int]) {
	t.Helper()
	if !d.Equal(expected) {
		t.Logf("expected front=%s, back=%s", expected.front, expected.back)
		t.Logf("actual   front=%s, back=%s", d.front, d.back)
		t.Error("deque differs from expected layout")
	}
}

// --- Construction ----------------------------------------------------------

func TestDequeImmutable(t *testing.T) {
	d := Immutable[int]()
	assertDeque(t, Deque[int]{}, d)
	assert.True(t, d.IsEmpty())
	assert.Equal(t, persistent.Empty, d.State())
}

func TestDequeNormalize(t *testing.T) {
	assertDeque(t, Deque[int]{}, Normalize(chain.Empty[int](), chain.Empty[int]()))
	assertDeque(t, dequeFilledOnBack(), Normalize(chain.Of(3, 2, 1, 0), chain.Empty[int]()))
	assertDeque(t, dequeFilledOnBack(), Normalize(chain.Empty[int](), chain.Of(0, 1, 2, 3)))
	assertDeque(t, dequeFilledOnBoth(), Normalize(chain.Of(7, 6, 5, 4), chain.Of(0, 1, 2, 3)))
}

func TestDequeIsEmpty(t *testing.T) {
	assert.True(t, Deque[int]{}.IsEmpty())
	assert.False(t, dequeFilledOnBack().IsEmpty())
	assert.False(t, dequeFilledOnBoth().IsEmpty())
}

// --- Enqueue ---------------------------------------------------------------

func TestDequeEnqueue(t *testing.T) {
	assertDeque(t, Deque[int]{back: chain.Of(0)}, Deque[int]{}.Enqueue(0))

	orig := dequeFilledOnBack()
	assertDeque(t, Deque[int]{front: chain.Of(4), back: orig.back}, orig.Enqueue(4))

	orig = dequeFilledOnBoth()
	d := orig.Enqueue(8)
	assertDeque(t, Deque[int]{front: chain.Of(8, 7, 6, 5, 4), back: orig.back}, d)
	assert.True(t, d.back == orig.back, "expected back chain to be shared")
}

func TestDequeEnqueueR(t *testing.T) {
	assertDeque(t, Deque[int]{back: chain.Of(0)}, Deque[int]{}.EnqueueR(0))

	orig := dequeFilledOnBack()
	assertDeque(t, Deque[int]{back: chain.Of(-1, 0, 1, 2, 3)}, orig.EnqueueR(-1))

	orig = dequeFilledOnBoth()
	d := orig.EnqueueR(-1)
	assertDeque(t, Deque[int]{front: orig.front, back: chain.Of(-1, 0, 1, 2, 3)}, d)
	assert.True(t, d.front == orig.front, "expected front chain to be shared")
}

// --- Dequeue ---------------------------------------------------------------

func TestDequeDequeue(t *testing.T) {
	_, _, ok := Deque[int]{}.Dequeue()
	assert.False(t, ok)

	v, d, ok := dequeFilledOnBack().Dequeue()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	assertDeque(t, Deque[int]{back: chain.Of(1, 2, 3)}, d)

	orig := dequeFilledOnBoth()
	v, d, ok = orig.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	assertDeque(t, Deque[int]{front: chain.Of(7, 6, 5, 4), back: chain.Of(1, 2, 3)}, d)
	assert.True(t, d.front == orig.front, "expected front chain to be untouched")
}

func TestDequeDequeueLastOfBack(t *testing.T) {
	orig := Deque[int]{front: chain.Of(2, 1), back: chain.Of(0)}
	v, d, ok := orig.Dequeue()
	require.True(t, ok)
	assert.Equal(t, 0, v)
	assertDeque(t, Deque[int]{back: chain.Of(1, 2)}, d)
	assert.NotEqual(t, persistent.FrontOnly, d.State())
}

func TestDequeDequeueR(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fp.deque")
	defer teardown()
	//
	_, _, ok := Deque[int]{}.DequeueR()
	assert.False(t, ok)

	v, d, ok := dequeFilledOnBack().DequeueR()
	require.True(t, ok)
	assert.Equal(t, 3, v)
	assertDeque(t, Deque[int]{back: chain.Of(0, 1, 2)}, d)

	orig := dequeFilledOnBoth()
	v, d, ok = orig.DequeueR()
	require.True(t, ok)
	assert.Equal(t, 7, v)
	assertDeque(t, Deque[int]{front: chain.Of(6, 5, 4), back: chain.Of(0, 1, 2, 3)}, d)

	v, d, ok = Deque[int]{back: chain.Of(9)}.DequeueR()
	require.True(t, ok)
	assert.Equal(t, 9, v)
	assert.True(t, d.IsEmpty())
}

func TestDequeOptionalForms(t *testing.T) {
	empty := Immutable[int]()
	assert.True(t, empty.Pop().IsNothing())
	assert.True(t, empty.PopR().IsNothing())
	assert.True(t, empty.Drop().IsNothing())
	assert.True(t, empty.DropR().IsNothing())
	assert.True(t, empty.Peek().IsNothing())
	assert.True(t, empty.PeekR().IsNothing())

	d := dequeFilledOnBoth()
	p, ok := d.PopR().Get()
	require.True(t, ok)
	assert.Equal(t, 7, p.Left)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, p.Right.Slice())

	rest, ok := d.Drop().Get()
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, rest.Slice())

	rest, ok = d.DropR().Get()
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, rest.Slice())

	v, _ := d.Peek().Get()
	assert.Equal(t, 0, v)
	v, _ = d.PeekR().Get()
	assert.Equal(t, 7, v)
	v, _ = dequeFilledOnBack().PeekR().Get()
	assert.Equal(t, 3, v)
}

func TestDequeAccessors(t *testing.T) {
	d := dequeFilledOnBoth()
	assert.Equal(t, 8, d.Len())
	assert.Equal(t, "Deque[0 1 2 3 4 5 6 7]", d.String())
	assert.Equal(t, persistent.BothNonEmpty, d.State())
	assert.Equal(t, persistent.BackOnly, dequeFilledOnBack().State())
	assert.True(t, d.Front() == d.front && d.Back() == d.back)
	other := Deque[int]{back: chain.Of(0, 1, 2, 3, 4, 5, 6, 7)}
	assert.False(t, d.Equal(other))
	assert.True(t, d.SameValues(other))
	assert.False(t, d.SameValues(dequeFilledOnBack()))
}
