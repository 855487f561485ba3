package verify

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"strconv"

	"github.com/npillmayer/fqueue/internal/script"
	"github.com/pkg/errors"
	"github.com/sourcegraph/conc/pool"
)

// Config parameterizes a model check.
type Config struct {
	Kind    script.Kind
	Runs    int   // number of independent runs
	Ops     int   // operations per run
	Workers int   // maximum number of concurrent runs
	Seed    int64 // run i uses Seed+i

	// NewCollection creates the empty collection to check. If nil, the
	// collection is created from Kind.
	NewCollection func() script.Collection
}

// Failure describes the first divergence of a run from the model.
type Failure struct {
	Run      int
	Step     int
	Op       script.Op
	Expected string
	Got      string
}

func (f Failure) String() string {
	return fmt.Sprintf("run %d, step %d: %s: expected %s, got %s", f.Run, f.Step, f.Op, f.Expected, f.Got)
}

// Report summarizes a model check.
type Report struct {
	Kind     script.Kind
	Runs     int
	Steps    int // total number of operations executed
	Failures []Failure
}

// OK is a predicate: did all runs agree with the model?
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

type runResult struct {
	steps   int
	failure *Failure
}

// Check executes conf.Runs randomized runs with at most conf.Workers runs at a time.
// It returns an error for an invalid configuration or if ctx is cancelled;
// divergences from the model are reported as failures of the Report.
func Check(ctx context.Context, conf Config) (Report, error) {
	report := Report{Kind: conf.Kind, Runs: conf.Runs}
	if _, ok := script.ParseKind(string(conf.Kind)); !ok {
		return report, errors.Errorf("unknown queue kind %q", conf.Kind)
	}
	if conf.Runs < 0 || conf.Ops < 0 {
		return report, errors.Errorf("runs and ops must not be negative, are %d and %d", conf.Runs, conf.Ops)
	}
	workers := conf.Workers
	if workers < 1 {
		workers = 1
	}
	newCollection := conf.NewCollection
	if newCollection == nil {
		newCollection = func() script.Collection { return script.NewCollection(conf.Kind) }
	}
	snapshot, prefix := buildSnapshot(newCollection(), conf.Ops/2)
	tracer().Infof("checking %d runs of %d ops on a %s queue, %d workers", conf.Runs, conf.Ops, conf.Kind, workers)
	//
	p := pool.NewWithResults[runResult]().
		WithContext(ctx).
		WithCancelOnError().
		WithFirstError().
		WithMaxGoroutines(workers)
	for run := 0; run < conf.Runs; run++ {
		p.Go(func(ctx context.Context) (runResult, error) {
			r := runner{
				run:   run,
				kind:  conf.Kind,
				rnd:   rand.New(rand.NewSource(conf.Seed + int64(run))),
				coll:  snapshot,
				model: slices.Clone(prefix),
			}
			return r.execute(ctx, conf.Ops)
		})
	}
	results, err := p.Wait()
	if err != nil {
		return report, err
	}
	for _, r := range results {
		report.Steps += r.steps
		if r.failure != nil {
			report.Failures = append(report.Failures, *r.failure)
		}
	}
	if !slices.Equal(snapshot.Slice(), prefix) {
		report.Failures = append(report.Failures, Failure{
			Run:      -1,
			Op:       script.OpPrint,
			Expected: fmt.Sprint(prefix),
			Got:      fmt.Sprint(snapshot.Slice()),
		})
	}
	slices.SortFunc(report.Failures, func(a, b Failure) int { return a.Run - b.Run })
	tracer().Infof("%d steps executed, %d failures", report.Steps, len(report.Failures))
	return report, nil
}

// buildSnapshot enqueues n values, alternating between both ends for a deque.
func buildSnapshot(c script.Collection, n int) (script.Collection, []string) {
	var model []string
	for i := 0; i < n; i++ {
		v := "s" + strconv.Itoa(i)
		if de, ok := c.(script.DoubleEndedCollection); ok && i%2 == 1 {
			c = de.EnqueueR(v)
			model = append([]string{v}, model...)
			continue
		}
		c = c.Enqueue(v)
		model = append(model, v)
	}
	return c, model
}

// --- Runs ------------------------------------------------------------------

type runner struct {
	run   int
	kind  script.Kind
	rnd   *rand.Rand
	coll  script.Collection
	model []string
}

var (
	bankerOps = []script.Op{
		script.OpEnqueue, script.OpEnqueue, script.OpEnqueue,
		script.OpDequeue, script.OpDequeue,
		script.OpPeek, script.OpLen, script.OpEmpty,
	}
	dequeOps = append(slices.Clone(bankerOps),
		script.OpEnqueueR, script.OpEnqueueR,
		script.OpDequeueR, script.OpDequeueR,
		script.OpPeekR,
	)
)

func (r *runner) execute(ctx context.Context, ops int) (runResult, error) {
	choices := bankerOps
	if r.kind == script.Double {
		choices = dequeOps
	}
	for i := 0; i < ops; i++ {
		if err := ctx.Err(); err != nil {
			return runResult{steps: i}, errors.Wrapf(err, "run %d", r.run)
		}
		op := choices[r.rnd.Intn(len(choices))]
		if f := r.apply(i, op); f != nil {
			tracer().Debugf("run %d diverges: %s", r.run, f)
			return runResult{steps: i + 1, failure: f}, nil
		}
	}
	if f := r.compare(ops, script.OpPrint, fmt.Sprint(r.model), fmt.Sprint(r.coll.Slice())); f != nil {
		return runResult{steps: ops, failure: f}, nil
	}
	return runResult{steps: ops}, nil
}

// apply executes op on both the collection and the model.
func (r *runner) apply(step int, op script.Op) *Failure {
	v := "v" + strconv.Itoa(step)
	switch op {
	case script.OpEnqueue:
		r.coll = r.coll.Enqueue(v)
		r.model = append(r.model, v)
	case script.OpEnqueueR:
		r.coll = r.coll.(script.DoubleEndedCollection).EnqueueR(v)
		r.model = append([]string{v}, r.model...)
	case script.OpDequeue:
		got, rest, ok := r.coll.Dequeue()
		r.coll = rest
		expected := r.removeHead()
		return r.compare(step, op, expected, present(got, ok))
	case script.OpDequeueR:
		got, rest, ok := r.coll.(script.DoubleEndedCollection).DequeueR()
		r.coll = rest
		expected := r.removeEnd()
		return r.compare(step, op, expected, present(got, ok))
	case script.OpPeek:
		got, ok := r.coll.Peek().Get()
		return r.compare(step, op, r.head(), present(got, ok))
	case script.OpPeekR:
		got, ok := r.coll.(script.DoubleEndedCollection).PeekR().Get()
		return r.compare(step, op, r.end(), present(got, ok))
	case script.OpLen:
		return r.compare(step, op, strconv.Itoa(len(r.model)), strconv.Itoa(r.coll.Len()))
	case script.OpEmpty:
		return r.compare(step, op, strconv.FormatBool(len(r.model) == 0), strconv.FormatBool(r.coll.IsEmpty()))
	}
	return nil
}

func (r *runner) compare(step int, op script.Op, expected, got string) *Failure {
	if expected == got {
		return nil
	}
	return &Failure{Run: r.run, Step: step, Op: op, Expected: expected, Got: got}
}

const nothing = "<empty>"

func present(v string, ok bool) string {
	if !ok {
		return nothing
	}
	return v
}

func (r *runner) head() string {
	if len(r.model) == 0 {
		return nothing
	}
	return r.model[0]
}

func (r *runner) end() string {
	if len(r.model) == 0 {
		return nothing
	}
	return r.model[len(r.model)-1]
}

func (r *runner) removeHead() string {
	v := r.head()
	if len(r.model) > 0 {
		r.model = r.model[1:]
	}
	return v
}

func (r *runner) removeEnd() string {
	v := r.end()
	if len(r.model) > 0 {
		r.model = r.model[:len(r.model)-1]
	}
	return v
}
