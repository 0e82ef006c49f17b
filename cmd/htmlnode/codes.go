package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vango-dev/htmlnode/internal/errors"
)

func codesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "codes [code]",
		Short: "List error codes, or explain one",
		Long: `List every error code htmlnode can report, or print the
explanation of a single code.

Examples:
  htmlnode codes
  htmlnode codes H006`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				code := strings.ToUpper(args[0])
				t, ok := errors.GetTemplate(code)
				if !ok {
					return errors.New(errors.CodeInvalidArgs).
						WithDetailf("unknown error code %q", args[0]).
						WithSuggestion("Run 'htmlnode codes' to list them")
				}
				fmt.Fprintf(out, "%s %s (%s)\n\n", code, t.Message, t.Category)
				fmt.Fprintf(out, "  %s\n\n", t.Detail)
				fmt.Fprintf(out, "  %s\n", t.DocURL)
				return nil
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "CODE\tCATEGORY\tMESSAGE")
			for _, code := range errors.GetAllCodes() {
				t, _ := errors.GetTemplate(code)
				fmt.Fprintf(tw, "%s\t%s\t%s\n", code, t.Category, t.Message)
			}
			return tw.Flush()
		},
	}
}
