package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jonathan/jobmatch/internal/export"
	"github.com/jonathan/jobmatch/internal/matching"
	"github.com/jonathan/jobmatch/internal/observability"
	"github.com/olekukonko/tablewriter"
)

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	return table
}

// writeTables prints the match line followed by simulation and recommendation tables.
func writeTables(w io.Writer, eval matching.Evaluation) error {
	if _, err := fmt.Fprintf(w, "Match: %d/%d (%s%%)\n\n",
		eval.Match.MatchCount, eval.Match.TotalCount, export.FormatPercentage(eval.Match.MatchPercentage)); err != nil {
		return err
	}

	sims := newTable(w, []string{"Parameter", "Current", "New", "Candidates", "Increase"})
	for _, s := range eval.Simulations {
		sims.Append([]string{
			string(s.Change.Field()),
			observability.FormatValue(s.Change.CurrentValue()),
			observability.FormatValue(s.Change.ProposedValue()),
			"+" + strconv.Itoa(s.MatchIncrease),
			fmt.Sprintf("+%.1f%%", s.PercentageIncrease),
		})
	}
	sims.Render()

	if len(eval.Recommendations) == 0 {
		_, err := fmt.Fprintln(w, "\nNo recommendations: the match target is already reached.")
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	recs := newTable(w, []string{"#", "Priority", "Parameter", "Current", "Suggested", "Potential"})
	for i, r := range eval.Recommendations {
		recs.Append([]string{
			strconv.Itoa(i + 1),
			string(r.Priority),
			string(r.Change.Field()),
			observability.FormatValue(r.Change.CurrentValue()),
			observability.FormatValue(r.Change.ProposedValue()),
			fmt.Sprintf("+%.1f%%", r.PotentialIncrease),
		})
	}
	recs.Render()
	return nil
}
