package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"custdesk/internal/usecase"
)

var importCmd = &cobra.Command{
	Use:   "import <workbook.xlsx>",
	Short: "Bulk-add customers from a spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp(cmd.Context())
		if err != nil {
			return err
		}
		rep, err := a.Entry.ImportWorkbook(cmd.Context(), args[0])
		if rep != nil {
			printReport(cmd, rep)
		}
		return err
	},
}

func printReport(cmd *cobra.Command, rep *usecase.ImportReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Imported %d of %d rows\n", rep.Inserted, rep.Total)
	for _, row := range rep.Failed {
		fmt.Fprintf(out, "row %d:\n", row.Row)
		for _, v := range row.Violations {
			fmt.Fprintln(out, "  - "+v)
		}
	}
}
