// SPDX-License-Identifier: MIT

package sorting

import (
	"fmt"
	"slices"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/sortsteps/step"
)

// tracer owns the single working buffer of one generator run and records a
// step snapshot at every emission point.
//
// Once err is set, emit becomes a no-op and stopped reports true; generators
// check stopped in their outer loops to return early.
type tracer struct {
	id       AlgorithmID
	buf      []float64
	steps    []step.Step
	counters step.Counters
	opts     Options
	err      error
}

func newTracer(id AlgorithmID, input []float64, opts Options) *tracer {
	return &tracer{
		id:   id,
		buf:  slices.Clone(input),
		opts: opts,
	}
}

func (t *tracer) stopped() bool { return t.err != nil }

func (t *tracer) n() int { return len(t.buf) }

// emit snapshots the buffer.
func (t *tracer) emit(line int, h step.Highlight, format string, args ...any) {
	t.emitNotes(line, h, nil, format, args...)
}

// emitNotes snapshots the buffer with per-index notes attached.
func (t *tracer) emitNotes(line int, h step.Highlight, notes map[int]string, format string, args ...any) {
	if t.err != nil {
		return
	}
	// 1. limits and cancellation
	if t.opts.MaxSteps > 0 && len(t.steps) >= t.opts.MaxSteps {
		t.err = errors.Wrapf(ErrStepLimit, "%s: more than %d steps", t.id, t.opts.MaxSteps)
		return
	}
	if err := t.opts.Ctx.Err(); err != nil {
		t.err = errors.Wrapf(err, "%s: step %d", t.id, len(t.steps))
		return
	}

	// 2. snapshot
	s := step.New(t.buf, line, h, fmt.Sprintf(format, args...))
	if notes != nil && t.opts.Notes {
		s = s.WithNotes(notes)
	}
	t.steps = append(t.steps, s)

	// 3. observer
	if t.opts.OnStep != nil {
		if err := t.opts.OnStep(len(t.steps)-1, s); err != nil {
			t.err = errors.Wrapf(err, "%s: step hook", t.id)
		}
	}
}

// compareNotes annotates a pair of compared positions.
func (t *tracer) compareNotes(i, j int) map[int]string {
	if !t.opts.Notes {
		return nil
	}
	a, b := step.FormatValue(t.buf[i]), step.FormatValue(t.buf[j])
	return map[int]string{
		i: fmt.Sprintf("%s vs [%d]=%s", a, j, b),
		j: fmt.Sprintf("%s vs [%d]=%s", b, i, a),
	}
}

// greater counts one comparison and reports a > b. NaN is never greater.
func (t *tracer) greater(a, b float64) bool {
	t.counters.Comparisons++
	return a > b
}

// less counts one comparison and reports a < b.
func (t *tracer) less(a, b float64) bool {
	t.counters.Comparisons++
	return a < b
}

// lessOrEqual counts one comparison and reports a <= b. The stable merge
// takes from the left run on ties.
func (t *tracer) lessOrEqual(a, b float64) bool {
	t.counters.Comparisons++
	return a <= b
}

// swap exchanges two buffer positions.
func (t *tracer) swap(i, j int) {
	t.counters.Swaps++
	t.buf[i], t.buf[j] = t.buf[j], t.buf[i]
}

// rotate moves the value at from down to position to (to <= from), shifting
// buf[to:from] one slot right. It counts as a single write: the algorithm
// stores one value, the rotation only keeps the displaced values visible.
func (t *tracer) rotate(to, from int) {
	t.counters.Writes++
	if to >= from {
		return
	}
	v := t.buf[from]
	copy(t.buf[to+1:from+1], t.buf[to:from])
	t.buf[to] = v
}

// shift moves a held key one hole to the left: the value at hole-gap moves
// right into the hole and the key takes its place. One write.
func (t *tracer) shift(hole, gap int) {
	t.counters.Writes++
	t.buf[hole], t.buf[hole-gap] = t.buf[hole-gap], t.buf[hole]
}

// trace finalizes the run.
func (t *tracer) trace() (*step.Trace, error) {
	if t.err != nil {
		return nil, t.err
	}
	return step.NewTrace(string(t.id), t.steps, t.counters)
}

func fv(v float64) string { return step.FormatValue(v) }
