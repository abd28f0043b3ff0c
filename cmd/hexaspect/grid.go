package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexaspect/hexgrid"
)

func newGridCmd() *cobra.Command {
	var radius int
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the cells of a grid and their neighbours",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := hexgrid.New(radius)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCELL\tNEIGHBOURS")
			for _, c := range g.Cells() {
				var ns []string
				for _, n := range g.Neighbors(c.ID) {
					ns = append(ns, g.Cell(n).Coord.String())
				}
				fmt.Fprintf(tw, "%d\t%s\t%s\n", c.ID, c.Coord, strings.Join(ns, " "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&radius, "radius", "r", 1, "grid radius")
	return cmd
}
