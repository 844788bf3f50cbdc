package matching

import (
	"testing"

	"github.com/jonathan/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simulationFields(sims []types.RequirementSimulation) []types.Field {
	fields := make([]types.Field, 0, len(sims))
	for _, s := range sims {
		fields = append(fields, s.Change.Field())
	}
	return fields
}

func TestSimulate_DefaultRequirement(t *testing.T) {
	sims := Simulate(types.DefaultRequirement())

	// The prefecture swap to 大阪府 lowers the count and is dropped.
	require.Equal(t, []types.Field{
		types.FieldHourlyWage,
		types.FieldJobTypeMajor,
		types.FieldSkillRequirements,
	}, simulationFields(sims))

	wage := sims[0]
	assert.Equal(t, types.HourlyWageChange{From: 1200, To: 1300}, wage.Change)
	assert.Equal(t, 10, wage.MatchIncrease)
	assert.InDelta(t, (130.0/120.0-1)*100, wage.PercentageIncrease, 1e-9)

	jobType := sims[1]
	assert.Equal(t, types.JobTypeMajorChange{From: "営業・販売", To: "事務・オフィスワーク"}, jobType.Change)
	assert.Equal(t, 32, jobType.MatchIncrease)

	skills := sims[2]
	assert.Equal(t, []string{"Excel", "Word"}, skills.Change.ProposedValue())
	assert.Equal(t, 13, skills.MatchIncrease)
}

func TestSimulate_OnlyPositiveIncreases(t *testing.T) {
	reqs := []types.JobRequirement{
		types.DefaultRequirement(),
		plainRequirement(),
		func() types.JobRequirement {
			r := plainRequirement()
			r.WorkDays = []string{"月", "火", "水", "木", "金", "土", "日"}
			r.SkillRequirements = []string{"Excel", "Word", "VBA"}
			return r
		}(),
	}

	for _, req := range reqs {
		for _, sim := range Simulate(req) {
			assert.Greater(t, sim.PercentageIncrease, 0.0)
			assert.Greater(t, sim.MatchIncrease, 0)
		}
	}
}

func TestSimulate_WeekendRemoval(t *testing.T) {
	req := plainRequirement()
	req.WorkDays = []string{"月", "火", "水", "木", "金", "土"}

	sims := Simulate(req)

	var found bool
	for _, sim := range sims {
		if sim.Change.Field() == types.FieldWorkDays {
			found = true
			assert.Equal(t, []string{"月", "火", "水", "木", "金", "土"}, sim.Change.CurrentValue())
			assert.Equal(t, []string{"月", "火", "水", "木", "金"}, sim.Change.ProposedValue())
			assert.Equal(t, 10, sim.MatchIncrease)
		}
	}
	assert.True(t, found, "expected a workdays simulation")
}

func TestSimulate_AlternatesFromTokyo(t *testing.T) {
	req := plainRequirement()
	req.WorkArea = types.WorkArea{Prefecture: "福岡県", City: []string{"久留米市"}}

	sims := Simulate(req)
	require.NotEmpty(t, sims)

	var pref types.Change
	for _, sim := range sims {
		if sim.Change.Field() == types.FieldPrefecture {
			pref = sim.Change
		}
	}
	require.NotNil(t, pref)
	assert.Equal(t, types.PrefectureChange{From: "福岡県", To: "東京都"}, pref)
}

func TestSimulate_SingleSkillNotDropped(t *testing.T) {
	req := plainRequirement()
	req.SkillRequirements = []string{"Excel"}

	for _, sim := range Simulate(req) {
		assert.NotEqual(t, types.FieldSkillRequirements, sim.Change.Field())
	}
}

func TestSimulate_WageSaturatesAtUpperBound(t *testing.T) {
	req := plainRequirement()
	req.HourlyWage = types.MaxHourlyWage

	for _, sim := range Simulate(req) {
		assert.NotEqual(t, types.FieldHourlyWage, sim.Change.Field())
	}
}

func TestSimulate_ZeroBaselineReportsNothing(t *testing.T) {
	req := plainRequirement()
	req.JobType.Minor = []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	require.Equal(t, 0, Score(req).MatchCount)

	assert.Empty(t, Simulate(req))
}
