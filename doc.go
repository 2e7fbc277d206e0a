// Package sortsteps records sorting algorithms as step-by-step traces and
// replays them: forward, backward, one step at a time or on autoplay.
//
// 🚀 What is sortsteps?
//
//	A small library and CLI that turns a sort into a movie:
//		• 13 algorithms: bubble, selection, insertion, merge, quick, heap,
//		  shell, tree, tim, cocktail shaker, comb, gnome, strand
//		• every step carries the whole sequence, a typed highlight,
//		  the active pseudo-code line and a plain-language description
//		• a clamped, thread-safe player to scrub through a trace
//		• renderers for bars, tables, inversion curves, sound and a
//		  terminal UI
//
// ✨ Guarantees
//
//   - Every step holds the same multiset of values as the input.
//   - The final step is sorted and highlights nothing.
//   - The same input always yields the same trace.
//   - Generation never touches the caller's slice and never sleeps:
//     timing belongs to the front end.
//
// Packages:
//
//	step/     — immutable Step, Highlight variants, Trace, Validate
//	sorting/  — GenerateTrace and the algorithm catalog (listing, title)
//	player/   — cursor over a Trace: Next, Previous, Seek, First, Last
//	inputs/   — default array, synthetic datasets, value parsing
//	render/   — roles and palette, text bars, tables, progress plot
//	sonify/   — tones pitched by value for highlighted indices
//	tui/      — interactive terminal player
//	cmd/sortviz — list, trace, stats and play from the command line
//
// Quick start:
//
//	tr, err := sorting.GenerateTrace(sorting.Quick, inputs.Default())
//	if err != nil {
//		log.Fatal(err)
//	}
//	p := player.New()
//	_ = p.Load(tr)
//	for !p.AtEnd() {
//		s, _ := p.Next()
//		fmt.Println(s)
//	}
package sortsteps
