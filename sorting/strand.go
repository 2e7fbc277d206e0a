// SPDX-License-Identifier: MIT

package sorting

import "github.com/katalvlaran/sortsteps/step"

var strandListing = []string{
	"func strandSort(input []float64) []float64 {",
	"  var result []float64",
	"  for len(input) > 0 {",
	"    sub := []float64{input[0]}",
	"    input = input[1:]",
	"    for i := 0; i < len(input); {",
	"      if input[i] >= sub[len(sub)-1] {",
	"        sub = append(sub, input[i])",
	"        input = remove(input, i)",
	"      } else {",
	"        i++",
	"      }",
	"    }",
	"    result = merge(result, sub)",
	"  }",
	"  return result",
	"}",
	"",
	"func merge(res, sub []float64) []float64 {",
	"  out := make([]float64, 0, len(res)+len(sub))",
	"  i, j := 0, 0",
	"  for i < len(res) && j < len(sub) {",
	"    if res[i] <= sub[j] {",
	"      out = append(out, res[i]); i++",
	"    } else {",
	"      out = append(out, sub[j]); j++",
	"    }",
	"  }",
	"  return append(append(out, res[i:]...), sub[j:]...)",
	"}",
}

const (
	strandLineTakeFirst = 4
	strandLineCompare   = 7
	strandLineAppend    = 8
	strandLineMerge     = 14
	strandLineMergeCmp  = 23
	strandLineTakeRes   = 24
	strandLineTakeSub   = 26
	strandLineRest      = 29
)

// strandSort extracts an increasing strand from the remaining input and
// merges it into the result until the input is empty.
//
// The buffer is laid out as result ++ sublist ++ input. Moving a value into
// the strand rotates it down to the end of the sublist, and the merge keeps
// merged ++ resultRest ++ sublistRest, so the input multiset is visible at
// every step.
func strandSort(t *tracer) {
	n := t.n()
	res, sub := 0, 0 // lengths of the result and sublist segments

	for res < n && !t.stopped() {
		// 1. the first remaining input value starts a strand
		sub = 1
		t.counters.Writes++
		t.emit(strandLineTakeFirst, strandState(res, sub, n, step.NoStrandCompare),
			"Start a strand with %s", fv(t.buf[res]))

		// 2. scan the input, pulling every value >= the strand tail
		for p := res + sub; p < n; {
			tail := res + sub - 1
			t.emitNotes(strandLineCompare, step.Compare(tail, p), t.compareNotes(tail, p),
				"Is %s >= strand tail %s?", fv(t.buf[p]), fv(t.buf[tail]))
			t.counters.Comparisons++
			if !(t.buf[p] >= t.buf[tail]) {
				p++
				continue
			}
			t.rotate(tail+1, p)
			sub++
			p++
			t.emit(strandLineAppend, strandState(res, sub, n, step.NoStrandCompare),
				"Appended %s to the strand", fv(t.buf[tail+1]))
		}

		// 3. merge the strand into the result
		t.emit(strandLineMerge, strandState(res, sub, n, step.NoStrandCompare),
			"Merge the %d-value strand into the %d-value result", sub, res)
		strandMerge(t, res, sub)
		res += sub
		sub = 0
	}
}

// strandMerge merges the sublist buf[res:res+sub] into the result buf[:res].
func strandMerge(t *tracer, res, sub int) {
	n := t.n()
	i, j, k := 0, 0, 0
	for i < res && j < sub {
		ri, si := k, k+res-i
		// result-side segment is merged ++ result rest; the rest follows.
		hl := strandState(k+res-i, sub-j, n, step.StrandCompare{Result: ri, Sublist: si})
		t.emitNotes(strandLineMergeCmp, hl, t.compareNotes(ri, si),
			"Is result %s <= strand %s?", fv(t.buf[ri]), fv(t.buf[si]))
		if t.lessOrEqual(t.buf[ri], t.buf[si]) {
			t.counters.Writes++
			i++
			t.emit(strandLineTakeRes, strandState(k+1+res-i, sub-j, n, step.NoStrandCompare),
				"Kept result value %s at index %d", fv(t.buf[k]), k)
		} else {
			t.rotate(k, si)
			j++
			t.emit(strandLineTakeSub, strandState(k+1+res-i, sub-j, n, step.NoStrandCompare),
				"Moved strand value %s to index %d", fv(t.buf[k]), k)
		}
		k++
	}

	if left := res + sub - k; left > 0 {
		t.counters.Writes += left
		t.emit(strandLineRest, strandState(res+sub, 0, n, step.NoStrandCompare),
			"Appended the %d remaining value(s)", left)
	}
}

// strandState builds the three disjoint index sets for a buffer laid out as
// [0,res) result, [res,res+sub) sublist, [res+sub,n) input.
func strandState(res, sub, n int, cmp step.StrandCompare) step.Strand {
	return step.Strand{
		Result:  span(0, res),
		Sublist: span(res, res+sub),
		Input:   span(res+sub, n),
		Compare: cmp,
	}
}

func span(lo, hi int) []int {
	if hi <= lo {
		return nil
	}
	out := make([]int, hi-lo)
	for i := range out {
		out[i] = lo + i
	}
	return out
}
