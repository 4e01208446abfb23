package main

import (
	"fmt"
	"io"

	"marquee/internal/report"
	"marquee/internal/trending"
)

func printReport(out io.Writer, rep trending.Report, meta report.Meta) {
	s := rep.Summary
	fmt.Fprintf(out, "Comparing %s (%d entries) to %s (%d entries): %d common, %d new, %d dropped\n",
		meta.OldLabel, s.OldEntries, meta.NewLabel, s.NewEntries, s.Common, s.NewOnly, s.DroppedOnly)

	rounded := stdoutIsTerminal()
	for _, section := range report.Tables(rep, meta) {
		fmt.Fprintf(out, "\n%s\n", section.Title)
		if len(section.Rows) == 0 {
			fmt.Fprintln(out, "No rows")
			continue
		}
		aligns := alignmentsForNumericColumns(len(section.Headers), section.NumericColumns)
		fmt.Fprintln(out, renderTable(section.Headers, section.Rows, aligns, rounded))
	}
}
