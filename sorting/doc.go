// SPDX-License-Identifier: MIT

// Package sorting turns classic in-memory sorting algorithms into complete,
// replayable step traces.
//
// What:
//
//	GenerateTrace(id, input, opts...) runs one algorithm over a private copy
//	of input and records a step.Step at every point of algorithmic interest:
//	loop entries, every comparison, every data movement, and a final
//	"Sorted" step with no highlight and no code line.
//
//	Supported algorithms (Algorithms() order):
//	  bubble, selection, insertion, merge, quick, heap, shell,
//	  tree, tim, cocktail, comb, gnome, strand
//
// Why:
//
//   - Generation is pure and synchronous: no timing, no goroutines. How long a
//     frame stays on screen is the renderer's business.
//   - Each step's code line indexes Listing(id), so a front end can highlight
//     the executing pseudo-code line.
//
// Guarantees:
//
//   - Deterministic: the same input yields an identical trace.
//   - Total: every finite input terminates, including length 0 and 1.
//     Out-of-order tests are strict, so NaN never triggers movement and
//     generators still terminate (the order is then unspecified).
//   - Every snapshot holds the input multiset. Algorithms that conceptually
//     use scratch storage (merge, tim, tree, strand, and the held key of
//     insertion-style passes) expose a visible arrangement of the same values.
//   - Counters report the textbook comparison, swap and write counts.
//
// Options:
//
//   - WithMaxSteps(n)   abort with ErrStepLimit past n steps
//   - WithOnStep(fn)    observe each step as it is emitted
//   - WithMinMerge(k)   tim sort MIN_MERGE threshold (default 32)
//   - WithoutNotes()    drop per-index annotations
//   - WithContext(ctx)  abort when ctx is done
//
// Complexity:
//
//   - Time: the algorithm's own cost plus O(n) per emitted step (snapshot).
//   - Memory: O(T·n) for a trace of T steps.
//
// Errors:
//
//   - ErrUnknownAlgorithm  id is not one of Algorithms()
//   - ErrStepLimit         the trace would exceed WithMaxSteps
package sorting
