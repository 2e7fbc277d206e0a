// SPDX-License-Identifier: MIT

// Package render turns steps and traces into something a person can look at.
//
// The contract between the sorting core and any display is narrow: a
// renderer receives one immutable step.Step and derives everything from its
// sequence, highlight, code line and description. Roles maps a highlight to
// one Role per index without knowing which algorithm produced it, so every
// front end (terminal bars, tables, audio) colours indices the same way.
//
// Renderers provided here:
//
//	Text      vertical bars coloured by role, notes, listing and description
//	NoteLine  the per-index notes of a step on one line
//	Line      the compact one-line Step.String form
//	Table     a whole trace as a table, one row per step
//	Counters  operation counts of several traces side by side
//	Progress  an inversion-count curve over a trace
package render
