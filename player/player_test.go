// SPDX-License-Identifier: MIT

package player_test

import (
	"fmt"
	"math"
	"strconv"
	"sync"
	"testing"

	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sortsteps/player"
	"github.com/katalvlaran/sortsteps/sorting"
	"github.com/katalvlaran/sortsteps/step"
)

// syntheticTrace returns a trace of n steps described "step 0".."step n-1".
func syntheticTrace(t testing.TB, n int) *step.Trace {
	t.Helper()
	steps := make([]step.Step, n)
	for i := range steps {
		steps[i] = step.New([]float64{1}, 0, nil, fmt.Sprintf("step %d", i))
	}
	tr, err := step.NewTrace("synthetic", steps, step.Counters{})
	require.NoError(t, err)
	return tr
}

func TestEmptyPlayer(t *testing.T) {
	t.Parallel()

	p := player.New()
	assert.Equal(t, player.Empty, p.State())
	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Trace())
	assert.False(t, p.AtEnd())

	for name, op := range map[string]func() (step.Step, error){
		"next":     p.Next,
		"previous": p.Previous,
		"current":  p.Current,
		"last":     p.Last,
		"seek":     func() (step.Step, error) { return p.Seek(3) },
	} {
		_, err := op()
		assert.True(t, errors.Is(err, player.ErrNotLoaded), name)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Parallel()

	p := player.New()
	assert.True(t, errors.Is(p.Load(nil), player.ErrInvalidTrace))
	assert.True(t, errors.Is(p.Load(&step.Trace{}), player.ErrInvalidTrace))
	assert.Equal(t, player.Empty, p.State())

	// A failed load leaves a loaded player untouched.
	tr := syntheticTrace(t, 3)
	require.NoError(t, p.Load(tr))
	_, _ = p.Seek(2)
	assert.Error(t, p.Load(nil))
	assert.Same(t, tr, p.Trace())
	assert.Equal(t, 2, p.Cursor())
}

// Scenario: ten Next calls on a five-step trace stop at index 4.
func TestNext_StopsAtEnd(t *testing.T) {
	t.Parallel()

	p := player.New()
	require.NoError(t, p.Load(syntheticTrace(t, 5)))
	for i := 0; i < 10; i++ {
		_, err := p.Next()
		require.NoError(t, err)
	}
	assert.Equal(t, 4, p.Cursor())
	assert.True(t, p.AtEnd())

	s, err := p.Current()
	require.NoError(t, err)
	assert.Equal(t, "step 4", s.Description())
}

func TestPrevious_StopsAtStart(t *testing.T) {
	t.Parallel()

	p := player.New()
	require.NoError(t, p.Load(syntheticTrace(t, 3)))
	s, err := p.Previous()
	require.NoError(t, err)
	assert.Equal(t, "step 0", s.Description())
	assert.True(t, p.AtStart())
}

func TestSeek_Clamps(t *testing.T) {
	t.Parallel()

	p := player.New()
	require.NoError(t, p.Load(syntheticTrace(t, 7)))

	for in, want := range map[int]int{
		-5:          0,
		0:           0,
		3:           3,
		6:           6,
		10_000:      6,
		math.MaxInt: 6,
		math.MinInt: 0,
	} {
		_, err := p.Seek(in)
		require.NoError(t, err)
		assert.Equal(t, want, p.Cursor(), "seek(%d)", in)
	}
}

func TestLoad_ReplacesAndRewinds(t *testing.T) {
	t.Parallel()

	p := player.New()
	require.NoError(t, p.Load(syntheticTrace(t, 4)))
	_, _ = p.Last()
	assert.Equal(t, 3, p.Cursor())

	next := sorting.MustGenerate(sorting.Bubble, []float64{2, 1})
	require.NoError(t, p.Load(next))
	assert.Equal(t, 0, p.Cursor())
	assert.Equal(t, next.Len(), p.Len())
	assert.Equal(t, player.Ready, p.State())
}

func TestOnMove(t *testing.T) {
	t.Parallel()

	type move struct{ from, to int }
	var moves []move
	p := player.New(player.WithOnMove(func(from, to int) {
		moves = append(moves, move{from, to})
	}))

	require.NoError(t, p.Load(syntheticTrace(t, 3)))
	_, _ = p.Next()
	_, _ = p.Next()
	_, _ = p.Next() // no-op at end
	_, _ = p.Seek(-1)
	_, _ = p.Previous() // no-op at start

	assert.Equal(t, []move{{0, 0}, {0, 1}, {1, 2}, {2, 0}}, moves)
}

func TestConcurrentNavigation(t *testing.T) {
	t.Parallel()

	p := player.New()
	tr := syntheticTrace(t, 50)
	require.NoError(t, p.Load(tr))

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				switch (g + i) % 4 {
				case 0:
					_, _ = p.Next()
				case 1:
					_, _ = p.Previous()
				case 2:
					_, _ = p.Seek(i)
				default:
					_, _ = p.Current()
				}
			}
		}(g)
	}
	wg.Wait()

	c := p.Cursor()
	assert.GreaterOrEqual(t, c, 0)
	assert.Less(t, c, tr.Len())
}

// TestDataDriven replays navigation scripts from testdata/navigation.
//
//	new                   fresh Empty player
//	load steps=<n>        load a synthetic trace (n = 0 tries an empty one)
//	next|prev [times=<k>] repeat the command k times (default 1)
//	seek i=<index>
//	first | last | current
//
// Every command prints the resulting cursor and step description, or the
// error.
func TestDataDriven(t *testing.T) {
	var p *player.Player
	datadriven.RunTest(t, "testdata/navigation", func(t *testing.T, td *datadriven.TestData) string {
		args := map[string]int{"times": 1}
		for _, arg := range td.CmdArgs {
			v, err := strconv.Atoi(arg.Vals[0])
			if err != nil {
				return err.Error()
			}
			args[arg.Key] = v
		}

		var (
			s   step.Step
			err error
		)
		switch td.Cmd {
		case "new":
			p = player.New()
			return fmt.Sprintf("state=%s\n", p.State())
		case "load":
			var tr *step.Trace
			if n := args["steps"]; n > 0 {
				tr = syntheticTrace(t, n)
			}
			if err := p.Load(tr); err != nil {
				return err.Error()
			}
			return fmt.Sprintf("state=%s len=%d cursor=%d\n", p.State(), p.Len(), p.Cursor())
		case "next", "prev":
			for i := 0; i < args["times"]; i++ {
				if td.Cmd == "next" {
					s, err = p.Next()
				} else {
					s, err = p.Previous()
				}
			}
		case "seek":
			s, err = p.Seek(args["i"])
		case "first":
			s, err = p.First()
		case "last":
			s, err = p.Last()
		case "current":
			s, err = p.Current()
		default:
			return fmt.Sprintf("unknown command %q", td.Cmd)
		}
		if err != nil {
			return err.Error()
		}
		return fmt.Sprintf("cursor=%d %s\n", p.Cursor(), s.Description())
	})
}
