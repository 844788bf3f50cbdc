// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobmatch/internal/export"
	"github.com/jonathan/jobmatch/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for the evaluate and tune commands
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintRequirements outputs the requirement set in its display form.
func (p *Printer) PrintRequirements(req types.JobRequirement) {
	f := export.FormatRequirements(req)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("職種:     %s / %s\n", f.Major, f.Middle))
	if f.Minor != "" {
		sb.WriteString(fmt.Sprintf("タグ:     %s\n", f.Minor))
	}
	sb.WriteString(fmt.Sprintf("時給:     %s\n", f.HourlyWage))
	sb.WriteString(fmt.Sprintf("勤務地:   %s %s\n", f.Prefecture, f.Cities))
	sb.WriteString(fmt.Sprintf("スキル:   %s\n", f.Skills))
	sb.WriteString(fmt.Sprintf("勤務時間: %s\n", f.WorkHours))
	sb.WriteString(fmt.Sprintf("勤務曜日: %s\n", f.WorkDays))
	sb.WriteString(fmt.Sprintf("被扶養:   %s", f.DependentStatus))

	p.printBox("JOB REQUIREMENTS", sb.String())
}

// PrintMatch outputs the match result. When previous is non-nil the change since then is shown.
func (p *Printer) PrintMatch(match types.CandidateMatch, previous *types.CandidateMatch) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Candidates: %d / %d\n", match.MatchCount, match.TotalCount))
	sb.WriteString(fmt.Sprintf("Match rate: %s%%", export.FormatPercentage(match.MatchPercentage)))

	if previous != nil {
		delta := match.MatchCount - previous.MatchCount
		sb.WriteString(fmt.Sprintf("\nChange:     %+d (was %d)", delta, previous.MatchCount))
	}

	p.printBox("CANDIDATE MATCH", sb.String())
}

// PrintSimulations outputs the improving single-field changes.
func (p *Printer) PrintSimulations(sims []types.RequirementSimulation) {
	if len(sims) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(sims), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := sims[i]
		sb.WriteString(fmt.Sprintf("• %s: %v → %v\n", s.Change.Field(), FormatValue(s.Change.CurrentValue()), FormatValue(s.Change.ProposedValue())))
		sb.WriteString(fmt.Sprintf("    +%d candidates (+%.1f%%)", s.MatchIncrease, s.PercentageIncrease))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(sims) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(sims)-maxItemsToShow))
	}

	p.printBox("SIMULATIONS", sb.String())
}

// PrintRecommendations outputs the suggested changes in priority order.
func (p *Printer) PrintRecommendations(recs []types.Recommendation) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(recs), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := recs[i]
		sb.WriteString(fmt.Sprintf("#%d [%s] %s: %v → %v\n", i+1, r.Priority, r.Change.Field(), FormatValue(r.Change.CurrentValue()), FormatValue(r.Change.ProposedValue())))
		sb.WriteString(fmt.Sprintf("    potential +%.1f%%", r.PotentialIncrease))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	if len(recs) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more", len(recs)-maxItemsToShow))
	}

	p.printBox("RECOMMENDATIONS", sb.String())
}

// FormatValue renders a change value, joining lists with 、.
func FormatValue(v any) string {
	if list, ok := v.([]string); ok {
		return "[" + strings.Join(list, "、") + "]"
	}
	return fmt.Sprint(v)
}
