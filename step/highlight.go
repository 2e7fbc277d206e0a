// SPDX-License-Identifier: MIT

package step

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/redact"
)

// Absent marks an optional index field that does not apply to a step.
const Absent = -1

// Kind identifies the active Highlight variant of a step.
type Kind int

const (
	KindNone          Kind = iota // nothing highlighted
	KindComparison                // two or more indices being compared or swapped
	KindSelection                 // selection sort: current position + running minimum
	KindInsertion                 // insertion-style key being placed
	KindMergeRange                // inclusive range being split or merged
	KindPivot                     // quick sort pivot
	KindHeapNodes                 // heapify root/children/largest
	KindTimPhase                  // tim sort run (insertion) or merge window
	KindCocktailRange             // cocktail shaker pass window and direction
	KindStrand                    // strand sort input/sublist/result partition
)

var kindNames = [...]string{
	KindNone:          "none",
	KindComparison:    "comparison",
	KindSelection:     "selection",
	KindInsertion:     "insertion",
	KindMergeRange:    "merge-range",
	KindPivot:         "pivot",
	KindHeapNodes:     "heap-nodes",
	KindTimPhase:      "tim-phase",
	KindCocktailRange: "cocktail-range",
	KindStrand:        "strand",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kindNames[k]
}

// SafeValue implements redact.SafeValue.
func (Kind) SafeValue() {}

var _ redact.SafeValue = Kind(0)

// Highlight describes which indices of a step's sequence currently play which
// algorithmic role. The set of implementations is closed.
type Highlight interface {
	// Kind reports the variant tag.
	Kind() Kind
	// Refs returns every index the highlight refers to, optional fields
	// that are Absent excluded. Used for validation and generic rendering.
	Refs() []int
	// String renders a compact form such as "cmp[2 3]".
	String() string

	clone() Highlight
}

// Direction is the travel direction of a cocktail shaker pass.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// TimKind is the phase of a tim sort highlight.
type TimKind int

const (
	TimInsertion TimKind = iota
	TimMerge
)

// String implements fmt.Stringer.
func (t TimKind) String() string {
	if t == TimMerge {
		return "merge"
	}
	return "insertion"
}

// MarshalText implements encoding.TextMarshaler.
func (t TimKind) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// None highlights nothing.
type None struct{}

func (None) Kind() Kind         { return KindNone }
func (None) Refs() []int        { return nil }
func (None) String() string     { return "none" }
func (n None) clone() Highlight { return n }

// Comparison highlights indices being compared (or just swapped).
type Comparison struct {
	Indices []int `json:"indices"`
}

// Compare is shorthand for a two-index Comparison.
func Compare(i, j int) Comparison {
	return Comparison{Indices: []int{i, j}}
}

func (Comparison) Kind() Kind    { return KindComparison }
func (c Comparison) Refs() []int { return slices.Clone(c.Indices) }
func (c Comparison) String() string {
	return fmt.Sprintf("cmp%v", c.Indices)
}
func (c Comparison) clone() Highlight { return Comparison{Indices: slices.Clone(c.Indices)} }

// Selection highlights the position being filled and the running minimum.
// Both indices are required; they coincide while the minimum is still the
// current element.
type Selection struct {
	Current int `json:"current"`
	Minimum int `json:"minimum"`
}

func (Selection) Kind() Kind    { return KindSelection }
func (s Selection) Refs() []int { return []int{s.Current, s.Minimum} }
func (s Selection) String() string {
	return fmt.Sprintf("sel[cur=%d min=%d]", s.Current, s.Minimum)
}
func (s Selection) clone() Highlight { return s }

// Insertion highlights the key currently being inserted.
type Insertion struct {
	Key int `json:"key"`
}

func (Insertion) Kind() Kind         { return KindInsertion }
func (i Insertion) Refs() []int      { return []int{i.Key} }
func (i Insertion) String() string   { return fmt.Sprintf("key[%d]", i.Key) }
func (i Insertion) clone() Highlight { return i }

// MergeRange highlights the inclusive range [Left, Right].
type MergeRange struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}

func (MergeRange) Kind() Kind         { return KindMergeRange }
func (m MergeRange) Refs() []int      { return []int{m.Left, m.Right} }
func (m MergeRange) String() string   { return fmt.Sprintf("range[%d..%d]", m.Left, m.Right) }
func (m MergeRange) clone() Highlight { return m }

// Pivot highlights the quick sort pivot.
type Pivot struct {
	Index int `json:"index"`
}

func (Pivot) Kind() Kind         { return KindPivot }
func (p Pivot) Refs() []int      { return []int{p.Index} }
func (p Pivot) String() string   { return fmt.Sprintf("pivot[%d]", p.Index) }
func (p Pivot) clone() Highlight { return p }

// HeapNodes highlights a heapify call: the root, its children and the largest
// of the three found so far. Left, Right and Largest may be Absent.
type HeapNodes struct {
	Root    int `json:"root"`
	Left    int `json:"left"`
	Right   int `json:"right"`
	Largest int `json:"largest"`
}

func (HeapNodes) Kind() Kind { return KindHeapNodes }
func (h HeapNodes) Refs() []int {
	return optRefs(h.Root, h.Left, h.Right, h.Largest)
}
func (h HeapNodes) String() string {
	return fmt.Sprintf("heap[root=%d l=%s r=%s max=%s]",
		h.Root, optString(h.Left), optString(h.Right), optString(h.Largest))
}
func (h HeapNodes) clone() Highlight { return h }

// TimPhase highlights a tim sort run being insertion sorted, or a merge
// window [Start, End] split after Mid. Mid is Absent for insertion runs.
type TimPhase struct {
	Phase TimKind `json:"phase"`
	Start int     `json:"start"`
	End   int     `json:"end"`
	Mid   int     `json:"mid"`
}

func (TimPhase) Kind() Kind    { return KindTimPhase }
func (t TimPhase) Refs() []int { return optRefs(t.Start, t.End, t.Mid) }
func (t TimPhase) String() string {
	return fmt.Sprintf("tim-%s[%d..%d mid=%s]", t.Phase, t.Start, t.End, optString(t.Mid))
}
func (t TimPhase) clone() Highlight { return t }

// CocktailRange highlights the active window of a cocktail shaker pass.
type CocktailRange struct {
	Start     int       `json:"start"`
	End       int       `json:"end"`
	Direction Direction `json:"direction"`
}

func (CocktailRange) Kind() Kind    { return KindCocktailRange }
func (c CocktailRange) Refs() []int { return []int{c.Start, c.End} }
func (c CocktailRange) String() string {
	return fmt.Sprintf("cocktail-%s[%d..%d]", c.Direction, c.Start, c.End)
}
func (c CocktailRange) clone() Highlight { return c }

// StrandCompare names the result and sublist positions compared while a
// strand is merged into the result. Both are Absent outside a merge.
type StrandCompare struct {
	Result  int `json:"result"`
	Sublist int `json:"sublist"`
}

// NoStrandCompare is the empty StrandCompare.
var NoStrandCompare = StrandCompare{Result: Absent, Sublist: Absent}

// Strand partitions the visible array into the three strand sort lists.
// The three index sets are disjoint.
type Strand struct {
	Input   []int         `json:"input"`
	Sublist []int         `json:"sublist"`
	Result  []int         `json:"result"`
	Compare StrandCompare `json:"compare"`
}

func (Strand) Kind() Kind { return KindStrand }
func (s Strand) Refs() []int {
	refs := make([]int, 0, len(s.Input)+len(s.Sublist)+len(s.Result)+2)
	refs = append(refs, s.Input...)
	refs = append(refs, s.Sublist...)
	refs = append(refs, s.Result...)
	return append(refs, optRefs(s.Compare.Result, s.Compare.Sublist)...)
}
func (s Strand) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "strand[in=%v sub=%v res=%v", s.Input, s.Sublist, s.Result)
	if s.Compare.Result != Absent {
		fmt.Fprintf(&b, " cmp=%d/%d", s.Compare.Result, s.Compare.Sublist)
	}
	b.WriteByte(']')
	return b.String()
}
func (s Strand) clone() Highlight {
	return Strand{
		Input:   slices.Clone(s.Input),
		Sublist: slices.Clone(s.Sublist),
		Result:  slices.Clone(s.Result),
		Compare: s.Compare,
	}
}

// optRefs collects the indices that are not Absent.
func optRefs(idx ...int) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if i != Absent {
			out = append(out, i)
		}
	}
	return out
}

func optString(i int) string {
	if i == Absent {
		return "-"
	}
	return fmt.Sprint(i)
}
