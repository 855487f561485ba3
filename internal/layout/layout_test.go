package layout

import (
	"strings"
	"testing"

	"github.com/npillmayer/fqueue/persistent/chain"
	"github.com/npillmayer/fqueue/persistent/deque"
	"github.com/npillmayer/fqueue/persistent/queue"
)

func TestLayoutQueue(t *testing.T) {
	q := queue.Normalize(chain.Of(7, 6, 5, 4), 4, chain.Of(0, 1, 2, 3), 4)
	s := Queue(q)
	t.Logf("\n%s", s)
	for _, expected := range []string{
		"Queue (len=8, BOTH-NONEMPTY)",
		"back  (4)  [0 1 2 3]",
		"front (4)  [7 6 5 4]",
	} {
		if !strings.Contains(s, expected) {
			t.Errorf("expected layout to contain %q, doesn't", expected)
		}
	}
	if strings.Index(s, "back") > strings.Index(s, "front") {
		t.Error("expected back chain to be printed first")
	}
}

func TestLayoutDeque(t *testing.T) {
	d := deque.Immutable[string]().Enqueue("a").Enqueue("b")
	s := Deque(d)
	t.Logf("\n%s", s)
	for _, expected := range []string{
		"Deque (len=2, BOTH-NONEMPTY)",
		"back  (1)  [a]",
		"front (1)  [b]",
	} {
		if !strings.Contains(s, expected) {
			t.Errorf("expected layout to contain %q, doesn't", expected)
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	s := Queue(queue.Immutable[int]())
	if !strings.Contains(s, "Queue (len=0, EMPTY)") || !strings.Contains(s, "front (0)  []") {
		t.Errorf("unexpected layout of empty queue:\n%s", s)
	}
}
