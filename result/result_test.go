package result_test

import (
	"errors"
	"strconv"
	"testing"

	. "github.com/npillmayer/fqueue/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultOf(t *testing.T) {
	r := Of(strconv.Atoi("12"))
	if !r.IsOk() {
		t.Error("expected Of(Atoi(12)) to be Ok, isn't")
	}
	r = Of(strconv.Atoi("twelve"))
	if r.IsOk() {
		t.Error("expected Of(Atoi(twelve)) to be an error, isn't")
	}
}

func TestResultMap(t *testing.T) {
	s := Map(strconv.Itoa, Ok(42))
	if v, err := s.Get(); err != nil || v != "42" {
		t.Errorf("expected Map(Itoa, Ok 42) to be Ok(\"42\"), is (%q, %v)", v, err)
	}
	boom := errors.New("boom")
	s = Map(strconv.Itoa, Err[int](boom))
	if _, err := s.Get(); err != boom {
		t.Errorf("expected error to pass through Map, is %v", err)
	}
}
