// SPDX-License-Identifier: MIT

package main

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/sortsteps/sorting"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the supported algorithms",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tbl := tablewriter.NewWriter(cmd.OutOrStdout())
			tbl.SetHeader([]string{"ID", "Name", "Description"})
			tbl.SetColWidth(60)
			for _, id := range sorting.Algorithms() {
				tbl.Append([]string{string(id), sorting.Title(id), sorting.Describe(id)})
			}
			tbl.Render()
			return nil
		},
	}
}
