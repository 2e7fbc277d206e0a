// SPDX-License-Identifier: MIT

package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/sortsteps/step"
)

// Table writes t as a table with one row per step.
func Table(w io.Writer, t *step.Trace) error {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"#", "Line", "Highlight", "Sequence", "Description"})
	tbl.SetAutoWrapText(false)
	for i, s := range t.Steps() {
		line := "-"
		if l, ok := s.CodeLine(); ok {
			line = strconv.Itoa(l)
		}
		tbl.Append([]string{
			strconv.Itoa(i),
			line,
			s.Highlight().String(),
			step.FormatValues(s.Sequence()),
			s.Description(),
		})
	}
	tbl.Render()
	return nil
}

// CounterRow is one line of a Counters table.
type CounterRow struct {
	Algorithm string
	Steps     int
	step.Counters
}

// RowOf summarizes t as a CounterRow labelled name.
func RowOf(name string, t *step.Trace) CounterRow {
	return CounterRow{Algorithm: name, Steps: t.Len(), Counters: t.Counters()}
}

// Counters writes the operation counts of rows as a table, in row order.
func Counters(w io.Writer, rows []CounterRow) error {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Algorithm", "Steps", "Comparisons", "Swaps", "Writes"})
	tbl.SetAlignment(tablewriter.ALIGN_RIGHT)
	for _, r := range rows {
		tbl.Append([]string{
			r.Algorithm,
			fmt.Sprint(r.Steps),
			fmt.Sprint(r.Comparisons),
			fmt.Sprint(r.Swaps),
			fmt.Sprint(r.Writes),
		})
	}
	tbl.Render()
	return nil
}
