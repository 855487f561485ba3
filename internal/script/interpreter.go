package script

import (
	"io"
	"strconv"

	"github.com/npillmayer/fqueue/maybe"
	"github.com/npillmayer/fqueue/result"
	"github.com/pkg/errors"
)

// ErrEmptyCollection is reported by steps which try to remove or inspect a value
// of an empty queue.
var ErrEmptyCollection = errors.New("empty collection")

// Outcome is the result of executing a single step.
type Outcome struct {
	Step   Step
	Result result.Result[string]
}

// Interpreter executes scripts against a queue of a given kind. It keeps the
// current incarnation of the queue and a set of named snapshots.
type Interpreter struct {
	kind      Kind
	current   Collection
	snapshots map[string]Collection
}

// NewInterpreter creates an interpreter starting with an empty queue.
func NewInterpreter(kind Kind) *Interpreter {
	return &Interpreter{
		kind:      kind,
		current:   NewCollection(kind),
		snapshots: make(map[string]Collection),
	}
}

// Current returns the current incarnation of the queue.
func (in *Interpreter) Current() Collection {
	return in.current
}

// Check verifies that every step is supported by the interpreter's queue kind.
func (in *Interpreter) Check(steps []Step) error {
	if in.kind == Double {
		return nil
	}
	for _, step := range steps {
		if step.Op.DoubleEnded() {
			return errors.Errorf("line %d: %s is not supported by a %s queue", step.Line, step.Op, in.kind)
		}
	}
	return nil
}

// Execute parses a script, checks it and runs all of its steps.
func (in *Interpreter) Execute(r io.Reader) ([]Outcome, error) {
	steps, err := Parse(r)
	if err != nil {
		return nil, err
	}
	if err = in.Check(steps); err != nil {
		return nil, err
	}
	return in.Run(steps), nil
}

// Run executes steps in order. Steps are expected to have passed Check.
// A failing step does not stop the run.
func (in *Interpreter) Run(steps []Step) []Outcome {
	outcomes := make([]Outcome, 0, len(steps))
	for _, step := range steps {
		r := in.step(step)
		tracer().Debugf("line %d: %s %v → %s", step.Line, step.Op, step.Args, in.current)
		outcomes = append(outcomes, Outcome{Step: step, Result: r})
	}
	return outcomes
}

func (in *Interpreter) step(step Step) result.Result[string] {
	switch step.Op {
	case OpEnqueue:
		for _, v := range step.Args {
			in.current = in.current.Enqueue(v)
		}
		return result.Ok(in.current.String())
	case OpEnqueueR:
		de := in.current.(DoubleEndedCollection)
		for _, v := range step.Args {
			de = de.EnqueueR(v).(DoubleEndedCollection)
		}
		in.current = de
		return result.Ok(in.current.String())
	case OpDequeue:
		return in.remove(in.current.Dequeue)
	case OpDequeueR:
		return in.remove(in.current.(DoubleEndedCollection).DequeueR)
	case OpDrop:
		r := in.remove(in.current.Dequeue)
		return result.Map(func(string) string { return in.current.String() }, r)
	case OpPeek:
		return fromMaybe(in.current.Peek())
	case OpPeekR:
		return fromMaybe(in.current.(DoubleEndedCollection).PeekR())
	case OpLen:
		return result.Ok(strconv.Itoa(in.current.Len()))
	case OpEmpty:
		return result.Ok(strconv.FormatBool(in.current.IsEmpty()))
	case OpPrint:
		return result.Ok(in.current.String())
	case OpDump:
		return result.Ok(in.current.Layout())
	case OpSave:
		in.snapshots[step.Args[0]] = in.current
		return result.Ok("saved " + step.Args[0])
	case OpLoad:
		snapshot, ok := in.snapshots[step.Args[0]]
		if !ok {
			return result.Err[string](errors.Errorf("no snapshot named %q", step.Args[0]))
		}
		in.current = snapshot
		return result.Ok(in.current.String())
	}
	return result.Err[string](errors.Errorf("line %d: cannot execute %s", step.Line, step.Op))
}

// remove applies a removal and makes its result the current incarnation.
func (in *Interpreter) remove(f func() (string, Collection, bool)) result.Result[string] {
	v, rest, ok := f()
	if !ok {
		return result.Err[string](ErrEmptyCollection)
	}
	in.current = rest
	return result.Ok(v)
}

func fromMaybe(m maybe.Maybe[string]) result.Result[string] {
	if v, ok := m.Get(); ok {
		return result.Ok(v)
	}
	return result.Err[string](ErrEmptyCollection)
}
