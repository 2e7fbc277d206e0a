// SPDX-License-Identifier: MIT

package sorting

import "slices"

// entry binds an identifier to its generator and catalog texts.
type entry struct {
	id       AlgorithmID
	title    string
	describe string
	listing  []string
	run      func(t *tracer)
}

// catalog is ordered as shown to users.
var catalog = []entry{
	{Bubble, "Bubble Sort",
		"Compares adjacent elements and swaps them when out of order, repeating passes until one makes no swap. Each pass parks the largest remaining value at the end. O(n^2).",
		bubbleListing, bubbleSort},
	{Selection, "Selection Sort",
		"Scans the unsorted suffix for its minimum and swaps it into the first unsorted position. Always n(n-1)/2 comparisons, at most n-1 swaps. O(n^2).",
		selectionListing, selectionSort},
	{Insertion, "Insertion Sort",
		"Grows a sorted prefix one key at a time, shifting larger elements right until the key's slot is found. Fast on small or nearly sorted data, O(n^2) worst case.",
		insertionListing, insertionSort},
	{Merge, "Merge Sort",
		"Splits the range in half, sorts both halves recursively and merges them, taking from the left half on ties. Stable, O(n log n), O(n) extra space.",
		mergeListing, mergeSort},
	{Quick, "Quick Sort",
		"Partitions the range around its last element (Lomuto scheme) so smaller values end up before the pivot, then recurses on both sides. O(n log n) on average, O(n^2) worst case.",
		quickListing, quickSort},
	{Heap, "Heap Sort",
		"Builds a max heap bottom-up, then repeatedly swaps the root with the last heap slot and sifts the new root down. O(n log n), in place.",
		heapListing, heapSort},
	{Shell, "Shell Sort",
		"Insertion sort over elements a gap apart, halving the gap each round until it reaches 1. Moves far-away elements early.",
		shellListing, shellSort},
	{Tree, "Tree Sort",
		"Inserts every element into a binary search tree (duplicates to the right) and reads it back in order. O(n log n) on average, O(n^2) for degenerate trees.",
		treeListing, treeSort},
	{Tim, "Tim Sort",
		"Insertion sorts fixed-size runs derived from the input length, then merges neighbouring runs, doubling the merge width each round. Stable, O(n log n).",
		timListing, timSort},
	{Cocktail, "Cocktail Shaker Sort",
		"Bubble sort that alternates forward and backward passes, shrinking the window from both ends. Moves small values at the end forward quickly. O(n^2).",
		cocktailListing, cocktailSort},
	{Comb, "Comb Sort",
		"Bubble sort with a gap that starts at the array length and shrinks by 10/13 each round, removing small values near the end early. Finishes with gap 1 passes.",
		combListing, combSort},
	{Gnome, "Gnome Sort",
		"A single cursor walks forward while neighbours are in order and swaps then steps back when they are not. O(n^2), like insertion sort done with swaps.",
		gnomeListing, gnomeSort},
	{Strand, "Strand Sort",
		"Repeatedly pulls an increasing strand out of the remaining input and merges it into the sorted result. Fast on data with long ordered runs, O(n^2) worst case.",
		strandListing, strandSort},
}

func lookup(id AlgorithmID) (entry, bool) {
	for _, e := range catalog {
		if e.id == id {
			return e, true
		}
	}
	return entry{}, false
}

// Listing returns the pseudo-code of id, one line per element. Step code
// lines index into it 1-based. Unknown ids yield nil.
func Listing(id AlgorithmID) []string {
	e, _ := lookup(id)
	return slices.Clone(e.listing)
}

// Describe returns a one-paragraph description of id, or "".
func Describe(id AlgorithmID) string {
	e, _ := lookup(id)
	return e.describe
}

// Title returns the display name of id, e.g. "Quick Sort", or "".
func Title(id AlgorithmID) string {
	e, _ := lookup(id)
	return e.title
}
