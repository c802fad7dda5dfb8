package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notjagan/teamtype/pkg/typechart"
)

func typesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the type chart used for analysis",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, typ := range typechart.All() {
				rel := typechart.Of(typ)
				fmt.Fprintf(out, "%-8s weak: %v  resist: %v  immune: %v\n", typ, rel.Weak, rel.Resist, rel.Immune)
			}
		},
	}
}
