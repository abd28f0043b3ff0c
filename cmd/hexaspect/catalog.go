package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hexaspect/catalog"
	"github.com/katalvlaran/hexaspect/labelgraph"
)

func newCatalogCmd(root *rootOptions) *cobra.Command {
	var asYAML bool
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "List the labels of the catalog with their weights and components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat, err := root.loadCatalog()
			if err != nil {
				return err
			}
			if asYAML {
				data, err := catalog.Marshal(cat)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			lg, err := labelgraph.New(cat)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "LABEL\tWEIGHT\tCOMPONENTS\tCOMPATIBLE")
			for _, l := range cat.Labels() {
				comps := "-"
				if l.IsComposite() {
					comps = strings.Join(l.Components, "+")
				}
				fmt.Fprintf(tw, "%s\t%d\t%s\t%d\n", l.Name, l.Weight, comps, len(lg.Neighbors(l.Name)))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the catalog as YAML with resolved weights")
	return cmd
}
