// SPDX-License-Identifier: MIT

package step

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Step is one immutable snapshot of an algorithm's visible state.
//
// The zero Step is an empty sequence with no highlight; generators build
// steps with New.
type Step struct {
	seq   []float64
	line  int
	hl    Highlight
	desc  string
	notes map[int]string
}

// New returns a Step holding a private copy of seq and a clone of h.
// A line <= 0 means no pseudo-code line applies. A nil h is stored as None.
// Complexity: O(len(seq)).
func New(seq []float64, line int, h Highlight, desc string) Step {
	if h == nil {
		h = None{}
	}
	if line < 0 {
		line = 0
	}

	return Step{
		seq:  slices.Clone(seq),
		line: line,
		hl:   h.clone(),
		desc: desc,
	}
}

// WithNotes returns a copy of s annotated with per-index notes. The map is
// copied; a nil or empty map clears any notes.
func (s Step) WithNotes(notes map[int]string) Step {
	if len(notes) == 0 {
		s.notes = nil
		return s
	}
	s.notes = maps.Clone(notes)
	return s
}

// Len returns the number of elements in the snapshot.
func (s Step) Len() int { return len(s.seq) }

// At returns the value at index i. It panics if i is out of range, like a
// slice index.
func (s Step) At(i int) float64 { return s.seq[i] }

// Sequence returns a fresh copy of the snapshot's values.
func (s Step) Sequence() []float64 { return slices.Clone(s.seq) }

// Description returns the human-readable summary of the step.
func (s Step) Description() string { return s.desc }

// CodeLine returns the 1-based pseudo-code line of the step, and false when
// no specific line applies.
func (s Step) CodeLine() (int, bool) { return s.line, s.line > 0 }

// Highlight returns a copy of the step's highlight. Never nil.
func (s Step) Highlight() Highlight {
	if s.hl == nil {
		return None{}
	}
	return s.hl.clone()
}

// Kind is shorthand for s.Highlight().Kind() without the copy.
func (s Step) Kind() Kind {
	if s.hl == nil {
		return KindNone
	}
	return s.hl.Kind()
}

// Notes returns a copy of the per-index annotations, nil if there are none.
func (s Step) Notes() map[int]string {
	if len(s.notes) == 0 {
		return nil
	}
	return maps.Clone(s.notes)
}

// Equal reports whether two steps carry the same sequence (bitwise), line,
// highlight, description and notes.
func (s Step) Equal(o Step) bool {
	if s.line != o.line || s.desc != o.desc || len(s.seq) != len(o.seq) {
		return false
	}
	for i := range s.seq {
		if !sameFloat(s.seq[i], o.seq[i]) {
			return false
		}
	}
	if s.Highlight().String() != o.Highlight().String() || s.Kind() != o.Kind() {
		return false
	}
	return maps.Equal(s.notes, o.notes)
}

// String renders the step on one line, e.g.
//
//	L6 cmp[2 3] [3 5 8 9] Comparing indices 2 and 3
func (s Step) String() string {
	var b strings.Builder
	if s.line > 0 {
		fmt.Fprintf(&b, "L%d ", s.line)
	} else {
		b.WriteString("L- ")
	}
	b.WriteString(s.Highlight().String())
	b.WriteByte(' ')
	b.WriteString(FormatValues(s.seq))
	if s.desc != "" {
		b.WriteByte(' ')
		b.WriteString(s.desc)
	}
	return b.String()
}

// Snapshot is the exported, plain-data form of a Step, suitable for JSON
// encoding and debug printing.
type Snapshot struct {
	Sequence    []float64      `json:"sequence"`
	CodeLine    int            `json:"codeLine,omitempty"`
	Kind        string         `json:"kind"`
	Highlight   Highlight      `json:"highlight"`
	Description string         `json:"description"`
	Notes       map[int]string `json:"notes,omitempty"`
}

// Snapshot returns a deep copy of s as a Snapshot.
func (s Step) Snapshot() Snapshot {
	return Snapshot{
		Sequence:    s.Sequence(),
		CodeLine:    s.line,
		Kind:        s.Kind().String(),
		Highlight:   s.Highlight(),
		Description: s.desc,
		Notes:       s.Notes(),
	}
}

// FormatValues renders values compactly: "[5 3 8]".
func FormatValues(vals []float64) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vals {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(FormatValue(v))
	}
	b.WriteByte(']')
	return b.String()
}

// FormatValue renders a single value in its shortest exact form ("3", "2.5").
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
