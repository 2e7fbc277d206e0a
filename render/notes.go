// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/katalvlaran/sortsteps/step"
)

const noteSep = "  "

// NoteLine joins the step's per-index notes in index order, each prefixed
// with its index: "[0] 3 vs [1]=1  [1] 1 vs [0]=3". It returns "" when the
// step has no notes.
func NoteLine(s step.Step) string {
	notes := s.Notes()
	if len(notes) == 0 {
		return ""
	}
	parts := make([]string, 0, len(notes))
	for _, i := range slices.Sorted(maps.Keys(notes)) {
		parts = append(parts, fmt.Sprintf("[%d] %s", i, notes[i]))
	}
	return strings.Join(parts, noteSep)
}
