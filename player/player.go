// SPDX-License-Identifier: MIT

package player

import (
	"sync"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/sortsteps/step"
)

var (
	// ErrInvalidTrace is returned by Load for a nil or empty trace.
	ErrInvalidTrace = errors.New("player: invalid trace")

	// ErrNotLoaded is returned by navigation before the first Load.
	ErrNotLoaded = errors.New("player: no trace loaded")
)

// State is the lifecycle state of a Player.
type State int

const (
	Empty State = iota
	Ready
)

// String implements fmt.Stringer.
func (s State) String() string {
	if s == Ready {
		return "ready"
	}
	return "empty"
}

// Option configures a Player.
type Option func(*Player)

// WithOnMove installs fn, called after Load and after every navigation that
// changes the cursor. fn runs with the player's lock released.
func WithOnMove(fn func(from, to int)) Option {
	return func(p *Player) {
		p.onMove = fn
	}
}

// Player holds a trace and a cursor into it.
type Player struct {
	mu     sync.RWMutex
	trace  *step.Trace
	cursor int
	onMove func(from, to int)
}

// New returns an Empty player.
func New(opts ...Option) *Player {
	p := &Player{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Load replaces the current trace with t and rewinds to step 0.
// Returns ErrInvalidTrace if t is nil or has no steps; the player is left
// unchanged in that case.
func (p *Player) Load(t *step.Trace) error {
	if t == nil || t.Len() == 0 {
		return ErrInvalidTrace
	}

	p.mu.Lock()
	from := p.cursor
	p.trace, p.cursor = t, 0
	p.mu.Unlock()

	p.notify(from, 0)
	return nil
}

// Next advances one step. At the last step it is a no-op.
func (p *Player) Next() (step.Step, error) {
	return p.move(func(cur, _ int) int { return cur + 1 })
}

// Previous goes back one step. At step 0 it is a no-op.
func (p *Player) Previous() (step.Step, error) {
	return p.move(func(cur, _ int) int { return cur - 1 })
}

// Seek jumps to step i, clamped to [0, Len()-1].
func (p *Player) Seek(i int) (step.Step, error) {
	return p.move(func(_, _ int) int { return i })
}

// First jumps to step 0.
func (p *Player) First() (step.Step, error) { return p.Seek(0) }

// Last jumps to the final step.
func (p *Player) Last() (step.Step, error) {
	return p.move(func(_, n int) int { return n - 1 })
}

// Current returns the step at the cursor without moving it.
func (p *Player) Current() (step.Step, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.trace == nil {
		return step.Step{}, ErrNotLoaded
	}
	return p.trace.At(p.cursor), nil
}

// Cursor returns the current index (0 when Empty).
func (p *Player) Cursor() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.cursor
}

// Len returns the loaded trace length (0 when Empty).
func (p *Player) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.trace == nil {
		return 0
	}
	return p.trace.Len()
}

// State reports Empty or Ready.
func (p *Player) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.trace == nil {
		return Empty
	}
	return Ready
}

// AtStart reports whether the cursor is on the first step.
func (p *Player) AtStart() bool { return p.Cursor() == 0 }

// AtEnd reports whether the cursor is on the last step. False when Empty.
func (p *Player) AtEnd() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.trace != nil && p.cursor == p.trace.Len()-1
}

// Trace returns the loaded trace, nil when Empty.
func (p *Player) Trace() *step.Trace {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.trace
}

// move computes a target from the current cursor and trace length, clamps
// it and stores it.
func (p *Player) move(target func(cur, n int) int) (step.Step, error) {
	p.mu.Lock()
	if p.trace == nil {
		p.mu.Unlock()
		return step.Step{}, ErrNotLoaded
	}
	from := p.cursor
	p.cursor = clamp(target(from, p.trace.Len()), 0, p.trace.Len()-1)
	to, s := p.cursor, p.trace.At(p.cursor)
	p.mu.Unlock()

	if to != from {
		p.notify(from, to)
	}
	return s, nil
}

func (p *Player) notify(from, to int) {
	if p.onMove != nil {
		p.onMove(from, to)
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
