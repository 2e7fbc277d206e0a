// SPDX-License-Identifier: MIT

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/sortsteps/player"
	"github.com/katalvlaran/sortsteps/render"
	"github.com/katalvlaran/sortsteps/step"
)

const (
	DefaultInterval = 300 * time.Millisecond
	MinInterval     = 25 * time.Millisecond
	MaxInterval     = 2 * time.Second

	minBarRows = 3
	helpLine   = "←/→ step  g/G ends  space play  +/- speed  q quit"
)

// Sink receives the current step whenever the cursor moves.
type Sink interface {
	Play(s step.Step)
}

// Option configures a UI.
type Option func(*UI)

// WithInterval sets the initial autoplay interval, clamped to
// [MinInterval, MaxInterval].
func WithInterval(d time.Duration) Option {
	return func(u *UI) { u.interval = clampInterval(d) }
}

// WithSink plays every step the cursor lands on.
func WithSink(s Sink) Option {
	return func(u *UI) { u.sink = s }
}

// WithPalette overrides the bar colours.
func WithPalette(p render.Palette) Option {
	return func(u *UI) { u.palette = p }
}

// WithTitle sets the header text, usually the algorithm title.
func WithTitle(title string) Option {
	return func(u *UI) { u.title = title }
}

// UI draws a player's current step on a tcell screen and maps keys to
// player operations. A UI is driven from a single goroutine.
type UI struct {
	screen   tcell.Screen
	player   *player.Player
	listing  []string
	palette  render.Palette
	title    string
	sink     Sink
	interval time.Duration
	playing  bool
}

// New returns a UI over an initialized screen. listing is the pseudo-code
// shown beside the bars; it may be empty.
func New(screen tcell.Screen, p *player.Player, listing []string, opts ...Option) *UI {
	u := &UI{
		screen:   screen,
		player:   p,
		listing:  listing,
		palette:  render.DefaultPalette(),
		interval: DefaultInterval,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Playing reports whether autoplay is on.
func (u *UI) Playing() bool { return u.playing }

// Interval returns the autoplay interval.
func (u *UI) Interval() time.Duration { return u.interval }

// HandleEvent applies one terminal event and reports whether the user asked
// to quit.
func (u *UI) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRight:
			u.navigate(u.player.Next)
		case tcell.KeyLeft:
			u.navigate(u.player.Previous)
		case tcell.KeyHome:
			u.navigate(u.player.First)
		case tcell.KeyEnd:
			u.navigate(u.player.Last)
		case tcell.KeyRune:
			return u.handleRune(ev.Rune())
		}
	}
	return false
}

func (u *UI) handleRune(r rune) (quit bool) {
	switch r {
	case 'q', 'Q':
		return true
	case 'l', 'n':
		u.navigate(u.player.Next)
	case 'h', 'p':
		u.navigate(u.player.Previous)
	case 'g':
		u.navigate(u.player.First)
	case 'G':
		u.navigate(u.player.Last)
	case ' ':
		u.playing = !u.playing
		if u.playing && u.player.AtEnd() {
			u.navigate(u.player.First)
		}
	case '+', '=':
		u.interval = clampInterval(u.interval / 2)
	case '-', '_':
		u.interval = clampInterval(u.interval * 2)
	}
	return false
}

// Tick advances autoplay by one step and stops it on the last step. It is a
// no-op while paused.
func (u *UI) Tick() {
	if !u.playing {
		return
	}
	u.navigate(u.player.Next)
	if u.player.AtEnd() {
		u.playing = false
	}
}

// navigate runs one player operation and feeds the sink if the cursor moved.
func (u *UI) navigate(op func() (step.Step, error)) {
	before := u.player.Cursor()
	s, err := op()
	if err != nil || u.sink == nil || u.player.Cursor() == before {
		return
	}
	u.sink.Play(s)
}

// Run draws, then handles events and autoplay ticks until the user quits
// (nil) or ctx is done (ctx.Err()). The caller owns the screen and calls
// Fini after Run returns.
func (u *UI) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := u.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	u.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if u.HandleEvent(ev) {
				return nil
			}
			ticker.Reset(u.interval)
		case <-ticker.C:
			if !u.playing {
				continue
			}
			u.Tick()
		}
		u.Draw()
	}
}

// Draw paints the current frame: header, bars, values, description,
// per-index notes, listing and key help.
func (u *UI) Draw() {
	u.screen.Clear()
	w, h := u.screen.Size()
	plain := tcell.StyleDefault
	bold := plain.Bold(true)

	s, err := u.player.Current()
	if err != nil {
		u.text(0, 0, w, bold, "no trace loaded")
		u.screen.Show()
		return
	}

	state := "paused"
	if u.playing {
		state = "playing " + u.interval.String()
	}
	header := fmt.Sprintf("%s  step %d/%d  %s", u.title, u.player.Cursor()+1, u.player.Len(), state)
	u.text(0, 0, w, bold, strings.TrimSpace(header))

	// Rows below the bars: values, description, notes, blank, listing,
	// blank, help.
	rows := max(minBarRows, h-len(u.listing)-7)
	u.bars(s, 1, w, rows)
	y := 1 + rows

	u.values(s, y, w)
	y++
	u.text(0, y, w, plain, s.Description())
	y++
	u.text(0, y, w, plain.Italic(true), render.NoteLine(s))
	y += 2

	active, _ := s.CodeLine()
	for i, src := range u.listing {
		style, mark := plain, "  "
		if i+1 == active {
			style, mark = plain.Reverse(true), "▶ "
		}
		u.text(0, y, w, style, fmt.Sprintf("%s%2d  %s", mark, i+1, src))
		y++
	}
	u.text(0, h-1, w, plain.Dim(true), helpLine)
	u.screen.Show()
}

// columnWidth returns the cells per index when n bars share w columns; the
// last cell of each column is a gap when there is room for one.
func columnWidth(n, w int) int {
	if n == 0 {
		return 1
	}
	return max(1, w/n)
}

func (u *UI) bars(s step.Step, top, w, rows int) {
	n := s.Len()
	col := columnWidth(n, w)
	barW := max(1, col-1)
	heights := render.BarHeights(s.Sequence(), rows)
	for i, role := range render.Roles(s) {
		style := tcell.StyleDefault.Foreground(tcell.GetColor(u.palette.Color(role)))
		x0 := i * col
		for r := 0; r < heights[i]; r++ {
			y := top + rows - 1 - r
			for x := x0; x < x0+barW && x < w; x++ {
				u.screen.SetContent(x, y, '█', nil, style)
			}
		}
	}
}

func (u *UI) values(s step.Step, y, w int) {
	col := columnWidth(s.Len(), w)
	for i := 0; i < s.Len(); i++ {
		label := step.FormatValue(s.At(i))
		if len(label) > max(1, col-1) {
			label = "·"
		}
		u.text(i*col, y, w, tcell.StyleDefault, label)
	}
}

// text draws str from (x, y), clipped at column w.
func (u *UI) text(x, y, w int, style tcell.Style, str string) {
	for _, r := range str {
		if x >= w {
			return
		}
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func clampInterval(d time.Duration) time.Duration {
	return max(MinInterval, min(d, MaxInterval))
}
