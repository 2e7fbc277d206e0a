// SPDX-License-Identifier: MIT

// Package tui is an interactive terminal front end for a player.Player.
//
// The UI owns presentation and timing only. Every key maps to one Player
// operation, autoplay is a ticker calling Next, and the bars are coloured
// through render.Roles, so nothing here knows which algorithm produced the
// trace.
//
// Keys:
//
//	→ l n      next step
//	← h p      previous step
//	Home g     first step
//	End G      last step
//	space      toggle autoplay
//	+ -        faster / slower autoplay
//	q Esc ^C   quit
package tui
