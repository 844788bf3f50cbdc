package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jonathan/jobmatch/internal/matching"
	"github.com/jonathan/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintRequirements(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRequirements(types.DefaultRequirement())
	output := buf.String()

	assert.Contains(t, output, "JOB REQUIREMENTS")
	assert.Contains(t, output, "営業・販売 / 営業")
	assert.Contains(t, output, "1200円")
	assert.Contains(t, output, "09:00～18:00")
}

func TestPrintMatch(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatch(matching.Score(types.DefaultRequirement()), nil)
	output := buf.String()

	assert.Contains(t, output, "CANDIDATE MATCH")
	assert.Contains(t, output, "Candidates: 120 / 1000")
	assert.Contains(t, output, "Match rate: 27.0%")
	assert.NotContains(t, output, "Change:")
}

func TestPrintMatch_WithPrevious(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	prev := types.CandidateMatch{TotalCount: 1000, MatchCount: 120}
	p.PrintMatch(types.CandidateMatch{TotalCount: 1000, MatchCount: 130}, &prev)

	assert.Contains(t, buf.String(), "Change:     +10 (was 120)")
}

func TestPrintSimulations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSimulations(matching.Simulate(types.DefaultRequirement()))
	output := buf.String()

	assert.Contains(t, output, "SIMULATIONS")
	assert.Contains(t, output, "hourlyWage: 1200 → 1300")
	assert.Contains(t, output, "+10 candidates")
	assert.Contains(t, output, "[Excel、Word]")
}

func TestPrintSimulations_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSimulations(nil)

	assert.Empty(t, buf.String())
}

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]types.Recommendation{
		{Change: types.PrefectureChange{From: "埼玉県", To: "東京都"}, PotentialIncrease: 12.5, Priority: types.PriorityHigh},
		{Change: types.HourlyWageChange{From: 2400, To: 2700}, PotentialIncrease: 4, Priority: types.PriorityMedium},
	})
	output := buf.String()

	assert.Contains(t, output, "#1 [high] workArea.prefecture: 埼玉県 → 東京都")
	assert.Contains(t, output, "potential +12.5%")
	assert.Contains(t, output, "#2 [medium] hourlyWage: 2400 → 2700")
}

func TestPrintRecommendations_Truncated(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	recs := make([]types.Recommendation, 7)
	for i := range recs {
		recs[i] = types.Recommendation{Change: types.HourlyWageChange{From: 1000, To: 1100 + i*100}, Priority: types.PriorityLow}
	}
	p.PrintRecommendations(recs)

	assert.Contains(t, buf.String(), "... and 2 more")
}

func TestTruncate_RuneAware(t *testing.T) {
	long := strings.Repeat("東", 80)

	got := truncate(long, 10)

	assert.Equal(t, strings.Repeat("東", 7)+"...", got)
	assert.Equal(t, "short", truncate("short", 10))
}
