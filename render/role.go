// SPDX-License-Identifier: MIT

package render

import (
	"github.com/katalvlaran/sortsteps/step"
)

// Role is the display role of one index in a step.
type Role int

const (
	RoleDefault Role = iota
	RoleCompare
	RoleMinimum
	RoleCurrent
	RoleKey
	RoleMergeRange
	RolePivot
	RoleHeapNode
	RoleHeapLargest
	RoleTimInsertion
	RoleTimMerge
	RoleCocktailForward
	RoleCocktailBackward
	RoleStrandInput
	RoleStrandSublist
	RoleStrandResult
	RoleStrandCompare
	numRoles
)

var roleNames = [numRoles]string{
	RoleDefault:          "default",
	RoleCompare:          "compare",
	RoleMinimum:          "minimum",
	RoleCurrent:          "current",
	RoleKey:              "key",
	RoleMergeRange:       "merge-range",
	RolePivot:            "pivot",
	RoleHeapNode:         "heap-node",
	RoleHeapLargest:      "heap-largest",
	RoleTimInsertion:     "tim-insertion",
	RoleTimMerge:         "tim-merge",
	RoleCocktailForward:  "cocktail-forward",
	RoleCocktailBackward: "cocktail-backward",
	RoleStrandInput:      "strand-input",
	RoleStrandSublist:    "strand-sublist",
	RoleStrandResult:     "strand-result",
	RoleStrandCompare:    "strand-compare",
}

// String implements fmt.Stringer.
func (r Role) String() string {
	if r < 0 || r >= numRoles {
		return "unknown"
	}
	return roleNames[r]
}

// Roles returns one role per index of s.
//
// When a highlight names an index more than once the stronger role wins:
//
//	heap largest > heap node > pivot > key > current > minimum > compare >
//	strand compare > strand sublist > strand result > strand input >
//	cocktail range > tim run > merge range > default
//
// Ranges are inclusive. Indices outside the sequence are ignored.
func Roles(s step.Step) []Role {
	roles := make([]Role, s.Len())
	set := func(i int, r Role) {
		if i >= 0 && i < len(roles) && rank(r) > rank(roles[i]) {
			roles[i] = r
		}
	}
	span := func(lo, hi int, r Role) {
		for i := lo; i <= hi; i++ {
			set(i, r)
		}
	}

	switch h := s.Highlight().(type) {
	case step.Comparison:
		for _, i := range h.Indices {
			set(i, RoleCompare)
		}
	case step.Selection:
		set(h.Current, RoleCurrent)
		set(h.Minimum, RoleMinimum)
	case step.Insertion:
		set(h.Key, RoleKey)
	case step.MergeRange:
		span(h.Left, h.Right, RoleMergeRange)
	case step.Pivot:
		set(h.Index, RolePivot)
	case step.HeapNodes:
		set(h.Root, RoleHeapNode)
		set(h.Left, RoleHeapNode)
		set(h.Right, RoleHeapNode)
		set(h.Largest, RoleHeapLargest)
	case step.TimPhase:
		r := RoleTimInsertion
		if h.Phase == step.TimMerge {
			r = RoleTimMerge
		}
		span(h.Start, h.End, r)
	case step.CocktailRange:
		r := RoleCocktailForward
		if h.Direction == step.Backward {
			r = RoleCocktailBackward
		}
		span(h.Start, h.End, r)
	case step.Strand:
		for _, i := range h.Input {
			set(i, RoleStrandInput)
		}
		for _, i := range h.Result {
			set(i, RoleStrandResult)
		}
		for _, i := range h.Sublist {
			set(i, RoleStrandSublist)
		}
		set(h.Compare.Result, RoleStrandCompare)
		set(h.Compare.Sublist, RoleStrandCompare)
	}
	return roles
}

// priority lists roles from weakest to strongest.
var priority = [...]Role{
	RoleDefault,
	RoleMergeRange,
	RoleTimMerge,
	RoleTimInsertion,
	RoleCocktailBackward,
	RoleCocktailForward,
	RoleStrandInput,
	RoleStrandResult,
	RoleStrandSublist,
	RoleStrandCompare,
	RoleCompare,
	RoleMinimum,
	RoleCurrent,
	RoleKey,
	RolePivot,
	RoleHeapNode,
	RoleHeapLargest,
}

var ranks = func() [numRoles]int {
	var out [numRoles]int
	for i, r := range priority {
		out[r] = i
	}
	return out
}()

func rank(r Role) int { return ranks[r] }
