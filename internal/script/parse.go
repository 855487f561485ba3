package script

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Op is an operation of a script.
type Op uint8

// Operations understood by the interpreter.
const (
	OpEnqueue Op = iota + 1
	OpEnqueueR
	OpDequeue
	OpDequeueR
	OpDrop
	OpPeek
	OpPeekR
	OpLen
	OpEmpty
	OpPrint
	OpDump
	OpSave
	OpLoad
)

type opSpec struct {
	name        string
	minArgs     int
	maxArgs     int // -1 for unbounded
	doubleEnded bool
}

var opSpecs = map[Op]opSpec{
	OpEnqueue:  {"enqueue", 1, -1, false},
	OpEnqueueR: {"enqueue_r", 1, -1, true},
	OpDequeue:  {"dequeue", 0, 0, false},
	OpDequeueR: {"dequeue_r", 0, 0, true},
	OpDrop:     {"drop", 0, 0, false},
	OpPeek:     {"peek", 0, 0, false},
	OpPeekR:    {"peek_r", 0, 0, true},
	OpLen:      {"len", 0, 0, false},
	OpEmpty:    {"empty", 0, 0, false},
	OpPrint:    {"print", 0, 0, false},
	OpDump:     {"dump", 0, 0, false},
	OpSave:     {"save", 1, 1, false},
	OpLoad:     {"load", 1, 1, false},
}

var opsByName = func() map[string]Op {
	m := make(map[string]Op, len(opSpecs))
	for op, spec := range opSpecs {
		m[spec.name] = op
	}
	return m
}()

func (op Op) String() string {
	if spec, ok := opSpecs[op]; ok {
		return spec.name
	}
	return "<unknown op>"
}

// DoubleEnded is a predicate: does op need a deque?
func (op Op) DoubleEnded() bool {
	return opSpecs[op].doubleEnded
}

// Step is a single operation of a script, together with its arguments and the
// line number it stems from.
type Step struct {
	Line int
	Op   Op
	Args []string
}

// Parse reads a script. It returns an error for unknown operations and for
// operations with a wrong number of arguments, naming the offending line.
func Parse(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		op, ok := opsByName[strings.ToLower(fields[0])]
		if !ok {
			return nil, errors.Errorf("line %d: unknown operation %q", line, fields[0])
		}
		args := fields[1:]
		spec := opSpecs[op]
		if len(args) < spec.minArgs || (spec.maxArgs >= 0 && len(args) > spec.maxArgs) {
			return nil, errors.Errorf("line %d: wrong number of arguments for %s: %d", line, op, len(args))
		}
		steps = append(steps, Step{Line: line, Op: op, Args: args})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading script")
	}
	tracer().Debugf("parsed %d steps from %d lines", len(steps), line)
	return steps, nil
}
