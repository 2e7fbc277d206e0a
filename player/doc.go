// SPDX-License-Identifier: MIT

// Package player replays a step.Trace one step at a time, like a debugger
// scrubbing through a recording.
//
// A Player has two states:
//
//	Empty  no trace loaded; only Load is valid, navigation returns ErrNotLoaded
//	Ready  a trace is loaded; every operation is valid
//
// Load is the only Empty→Ready transition. Loading again replaces the trace
// in place and rewinds to 0; there is no way back to Empty.
//
// Navigation never fails in Ready. Next and Previous stop at the ends (no
// wrap-around), and Seek clamps any integer into [0, Len()-1].
//
// Timing is not the player's concern: it holds no clock, and a front end
// that autoplays simply calls Next on its own schedule.
//
// A Player is safe for concurrent use; a single RWMutex guards the cursor.
// Traces are immutable and may be shared between players.
package player
