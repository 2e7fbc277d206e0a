// SPDX-License-Identifier: MIT

package render_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortsteps/render"
	"github.com/katalvlaran/sortsteps/sorting"
	"github.com/katalvlaran/sortsteps/step"
)

func TestRoles(t *testing.T) {
	t.Parallel()

	const (
		d  = render.RoleDefault
		c  = render.RoleCompare
		mn = render.RoleMinimum
		cu = render.RoleCurrent
	)
	seq := []float64{4, 3, 2, 1, 0}
	cases := []struct {
		name string
		h    step.Highlight
		want []render.Role
	}{
		{"none", step.None{}, []render.Role{d, d, d, d, d}},
		{"comparison", step.Compare(1, 3), []render.Role{d, c, d, c, d}},
		{"selection", step.Selection{Current: 0, Minimum: 2}, []render.Role{cu, d, mn, d, d}},
		{"selection same index", step.Selection{Current: 2, Minimum: 2}, []render.Role{d, d, cu, d, d}},
		{"key", step.Insertion{Key: 4}, []render.Role{d, d, d, d, render.RoleKey}},
		{"pivot", step.Pivot{Index: 0}, []render.Role{render.RolePivot, d, d, d, d}},
		{
			"merge range", step.MergeRange{Left: 1, Right: 3},
			[]render.Role{d, render.RoleMergeRange, render.RoleMergeRange, render.RoleMergeRange, d},
		},
		{
			"heap", step.HeapNodes{Root: 0, Left: 1, Right: 2, Largest: 2},
			[]render.Role{render.RoleHeapNode, render.RoleHeapNode, render.RoleHeapLargest, d, d},
		},
		{
			"heap leaf", step.HeapNodes{Root: 3, Left: step.Absent, Right: step.Absent, Largest: step.Absent},
			[]render.Role{d, d, d, render.RoleHeapNode, d},
		},
		{
			"tim merge", step.TimPhase{Phase: step.TimMerge, Start: 0, End: 1, Mid: 0},
			[]render.Role{render.RoleTimMerge, render.RoleTimMerge, d, d, d},
		},
		{
			"tim insertion", step.TimPhase{Phase: step.TimInsertion, Start: 3, End: 4, Mid: step.Absent},
			[]render.Role{d, d, d, render.RoleTimInsertion, render.RoleTimInsertion},
		},
		{
			"cocktail backward", step.CocktailRange{Start: 2, End: 4, Direction: step.Backward},
			[]render.Role{d, d, render.RoleCocktailBackward, render.RoleCocktailBackward, render.RoleCocktailBackward},
		},
		{
			"strand", step.Strand{
				Input:   []int{4},
				Sublist: []int{2, 3},
				Result:  []int{0, 1},
				Compare: step.StrandCompare{Result: 1, Sublist: 2},
			},
			[]render.Role{
				render.RoleStrandResult, render.RoleStrandCompare, render.RoleStrandCompare,
				render.RoleStrandSublist, render.RoleStrandInput,
			},
		},
	}
	for _, tc := range cases {
		s := step.New(seq, 1, tc.h, "")
		assert.Equal(t, tc.want, render.Roles(s), tc.name)
	}
}

func TestRoles_EveryAlgorithmStaysInBounds(t *testing.T) {
	t.Parallel()

	input := []float64{5, 3, 8, 9, 10, 2, 1, 4, 6, 7}
	for _, id := range sorting.Algorithms() {
		tr := sorting.MustGenerate(id, input)
		for i, s := range tr.Steps() {
			roles := render.Roles(s)
			require.Len(t, roles, s.Len(), "%s step %d", id, i)
			if s.Kind() != step.KindNone {
				assert.NotEqual(t, make([]render.Role, s.Len()), roles,
					"%s step %d highlights nothing", id, i)
			}
		}
	}
}

func TestPalette(t *testing.T) {
	t.Parallel()

	p := render.DefaultPalette()
	assert.Equal(t, "#ff0000", p.Color(render.RoleCompare))

	sparse := render.Palette{render.RoleDefault: "#111111"}
	assert.Equal(t, "#111111", sparse.Color(render.RolePivot))
	assert.Equal(t, "#007fff", render.Palette{}.Color(render.RolePivot))
	assert.Equal(t, "heap-largest", render.RoleHeapLargest.String())
	assert.Equal(t, "unknown", render.Role(99).String())
}

func TestBarHeights(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 5, 3}, render.BarHeights([]float64{0, 10, 5}, 5))
	assert.Equal(t, []int{4, 4}, render.BarHeights([]float64{2, 2}, 4))
	assert.Equal(t, []int{1, 0, 3}, render.BarHeights([]float64{1, math.NaN(), 2}, 3))
	assert.Equal(t, []int{3, 3, 1}, render.BarHeights([]float64{math.Inf(1), 0, math.Inf(-1)}, 3))
	assert.Equal(t, []int{3, 1, 3}, render.BarHeights([]float64{4, math.Inf(-1), math.Inf(1)}, 3))
	assert.Empty(t, render.BarHeights(nil, 3))
}

func TestText(t *testing.T) {
	t.Parallel()

	s := step.New([]float64{1, 2}, 2, step.Compare(0, 1), "Comparing 1 and 2")
	var buf bytes.Buffer
	r := &render.Text{Height: 2, Listing: []string{"a", "b"}}
	require.NoError(t, r.Render(&buf, s))

	want := strings.Join([]string{
		"   ██",
		"██ ██",
		" 1  2",
		"",
		"   1  a",
		"▶  2  b",
		"",
		"Comparing 1 and 2",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestText_Notes(t *testing.T) {
	t.Parallel()

	tr := sorting.MustGenerate(sorting.Bubble, []float64{3, 1, 2})
	s := tr.At(2) // cmp[0 1]
	var buf bytes.Buffer
	require.NoError(t, (&render.Text{Height: 1}).Render(&buf, s))

	lines := strings.Split(buf.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, " 3  1  2", lines[1])
	assert.Equal(t, "[0] 3 vs [1]=1  [1] 1 vs [0]=3", lines[2])
}

func TestNoteLine(t *testing.T) {
	t.Parallel()

	s := step.New([]float64{1, 2, 3}, 1, step.Compare(0, 2), "")
	assert.Empty(t, render.NoteLine(s))

	s = s.WithNotes(map[int]string{2: "b", 0: "a"})
	assert.Equal(t, "[0] a  [2] b", render.NoteLine(s))

	tr := sorting.MustGenerate(sorting.Bubble, []float64{3, 1, 2}, sorting.WithoutNotes())
	assert.Empty(t, render.NoteLine(tr.At(2)))
}

func TestText_WideValues(t *testing.T) {
	t.Parallel()

	s := step.New([]float64{100, 2.5}, 0, nil, "")
	var buf bytes.Buffer
	require.NoError(t, (&render.Text{Height: 1}).Render(&buf, s))
	assert.Equal(t, "███ ███\n100 2.5\n", buf.String())
}

func TestLine(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := step.New([]float64{2, 1}, 3, step.Compare(0, 1), "Comparing 2 and 1")
	require.NoError(t, render.Line{}.Render(&buf, s))
	assert.Equal(t, "L3 cmp[0 1] [2 1] Comparing 2 and 1\n", buf.String())
}

func TestTable(t *testing.T) {
	t.Parallel()

	tr := sorting.MustGenerate(sorting.Bubble, []float64{2, 1})
	var buf bytes.Buffer
	require.NoError(t, render.Table(&buf, tr))

	out := buf.String()
	for _, want := range []string{"HIGHLIGHT", "cmp[0 1]", "[2 1]", "[1 2]", "Sorted"} {
		assert.Contains(t, out, want)
	}
	// Header, two rules and a border line around tr.Len() rows.
	assert.Equal(t, tr.Len()+4, strings.Count(out, "\n"))
}

func TestCounters(t *testing.T) {
	t.Parallel()

	input := []float64{3, 1, 2}
	var rows []render.CounterRow
	for _, id := range []sorting.AlgorithmID{sorting.Bubble, sorting.Selection} {
		rows = append(rows, render.RowOf(string(id), sorting.MustGenerate(id, input)))
	}
	assert.Equal(t, step.Counters{Comparisons: 3, Swaps: 2}, rows[1].Counters)

	var buf bytes.Buffer
	require.NoError(t, render.Counters(&buf, rows))
	out := buf.String()
	assert.Contains(t, out, "COMPARISONS")
	assert.Contains(t, out, "bubble")
	assert.Contains(t, out, "selection")
}

func TestInversions(t *testing.T) {
	t.Parallel()

	brute := func(a []float64) int {
		n := 0
		for i := range a {
			for j := i + 1; j < len(a); j++ {
				if a[i] > a[j] {
					n++
				}
			}
		}
		return n
	}
	for _, seq := range [][]float64{
		nil,
		{1},
		{1, 2, 3},
		{3, 2, 1},
		{5, 3, 8, 9, 10, 2, 1, 4, 6, 7},
		{2, 2, 1, 1},
		{0.5, -1, 3, -7, 0, 2.75, 2.75},
	} {
		in := append([]float64(nil), seq...)
		assert.Equal(t, brute(seq), render.Inversions(seq), "%v", seq)
		assert.Equal(t, in, seq, "input must not be modified")
	}
	assert.Equal(t, 1, render.Inversions([]float64{2, math.NaN(), 1}))
}

func TestProgress(t *testing.T) {
	t.Parallel()

	tr := sorting.MustGenerate(sorting.Bubble, []float64{3, 2, 1})
	out := render.Progress(tr, 3)
	assert.Contains(t, out, "bubble: inversions per step")
	assert.Contains(t, out, "3")

	assert.NotEmpty(t, render.Progress(tr, 0))
}
