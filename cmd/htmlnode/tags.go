package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/pkg/markup"
)

func tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List tag types with special behavior",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "TAG\tFLAGS\tDEFAULTS\tREQUIRES")
			for _, typ := range registeredTypes() {
				defaults, err := markup.FormatAttributes(markup.NewAttributes(typ.DefaultAttributes...))
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
					typ.Name,
					dash(flags(typ)),
					dash(defaults),
					dash(strings.Join(typ.RequiredAttributes, ", ")),
				)
			}
			return tw.Flush()
		},
	}
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
