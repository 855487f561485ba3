package fqueue_test

import (
	"testing"

	"github.com/npillmayer/fqueue"
)

func TestPairDecompose(t *testing.T) {
	p := fqueue.P(7, "seven")
	n, s := p.Decompose()
	if n != 7 || s != "seven" {
		t.Logf("pair = %v", p)
		t.Errorf("expected pair to decompose to (7, seven), is (%d, %s)", n, s)
	}
}

func TestPairSwap(t *testing.T) {
	p := fqueue.P(1, 2.5).Swap()
	if p.Left != 2.5 || p.Right != 1 {
		t.Logf("swapped = %v", p)
		t.Error("expected swapped pair to be (2.5, 1), isn't")
	}
}
