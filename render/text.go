// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/sortsteps/step"
)

// Renderer draws a single step.
type Renderer interface {
	Render(w io.Writer, s step.Step) error
}

var (
	_ Renderer = Line{}
	_ Renderer = (*Text)(nil)
)

// Line writes Step.String followed by a newline.
type Line struct{}

// Render implements Renderer.
func (Line) Render(w io.Writer, s step.Step) error {
	_, err := fmt.Fprintln(w, s)
	return errors.Wrap(err, "render: line")
}

const (
	// DefaultHeight is the bar height of a Text renderer left at zero.
	DefaultHeight = 8

	barGlyph    = '█'
	minColWidth = 2
	activeMark  = "▶ "
	idleMark    = "  "
)

// Text draws a step as vertical bars, one column per index, each coloured
// by its Role. Below the bars it prints the values, the listing with the
// per-index notes, the listing with the step's code line marked, and the
// description.
//
// Colour is emitted only when w is a terminal that supports it; rendering
// into a buffer yields plain text. The zero value is ready to use.
type Text struct {
	// Height is the number of bar rows; 0 means DefaultHeight.
	Height int
	// Listing is the algorithm's pseudo-code. Empty omits the code panel.
	Listing []string
	// Palette colours the bars; nil means DefaultPalette().
	Palette Palette
}

// Render implements Renderer.
func (t *Text) Render(w io.Writer, s step.Step) error {
	r := lipgloss.NewRenderer(w)
	var b strings.Builder

	height := t.Height
	if height <= 0 {
		height = DefaultHeight
	}
	palette := t.Palette
	if palette == nil {
		palette = DefaultPalette()
	}

	vals := s.Sequence()
	labels := make([]string, len(vals))
	width := minColWidth
	for i, v := range vals {
		labels[i] = step.FormatValue(v)
		width = max(width, utf8.RuneCountInString(labels[i]))
	}
	heights := BarHeights(vals, height)
	styles := make([]lipgloss.Style, len(vals))
	for i, role := range Roles(s) {
		styles[i] = r.NewStyle().Foreground(lipgloss.Color(palette.Color(role)))
	}

	bar := strings.Repeat(string(barGlyph), width)
	blank := strings.Repeat(" ", width)
	for row := height; row >= 1; row-- {
		cells := make([]string, len(vals))
		for i := range vals {
			cells[i] = blank
			if heights[i] >= row {
				cells[i] = styles[i].Render(bar)
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteByte('\n')
	}
	for i, l := range labels {
		labels[i] = fmt.Sprintf("%*s", width, l)
	}
	b.WriteString(strings.TrimRight(strings.Join(labels, " "), " "))
	b.WriteByte('\n')
	if notes := NoteLine(s); notes != "" {
		b.WriteString(notes)
		b.WriteByte('\n')
	}

	if len(t.Listing) > 0 {
		b.WriteByte('\n')
		active, _ := s.CodeLine()
		mark := r.NewStyle().Bold(true)
		for i, src := range t.Listing {
			line := fmt.Sprintf("%2d  %s", i+1, src)
			if i+1 == active {
				b.WriteString(mark.Render(activeMark + line))
			} else {
				b.WriteString(idleMark + line)
			}
			b.WriteByte('\n')
		}
	}

	if d := s.Description(); d != "" {
		b.WriteByte('\n')
		b.WriteString(d)
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "render: text")
}

// BarHeights scales vals linearly onto bar heights 1..height; the smallest
// value gets 1 and the largest gets height. When every value is equal all
// bars are full. NaN values get height 0; infinities sit at the extremes.
func BarHeights(vals []float64, height int) []int {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}

	out := make([]int, len(vals))
	for i, v := range vals {
		switch {
		case math.IsNaN(v):
			out[i] = 0
		case math.IsInf(v, -1):
			out[i] = 1
		case math.IsInf(v, 1), hi <= lo:
			out[i] = height
		default:
			out[i] = 1 + int(math.Round((v-lo)/(hi-lo)*float64(height-1)))
		}
	}
	return out
}
