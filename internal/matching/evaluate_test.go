package matching

import (
	"encoding/json"
	"testing"

	"github.com/jonathan/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_ClampsWage(t *testing.T) {
	req := types.DefaultRequirement()
	req.HourlyWage = 5000

	eval := Evaluate(req)

	assert.Equal(t, types.MaxHourlyWage, eval.Requirements.HourlyWage)
	assert.Equal(t, Score(eval.Requirements), eval.Match)
	assert.Equal(t, 5000, req.HourlyWage, "input must not be mutated")
}

func TestEvaluate_DerivesAllParts(t *testing.T) {
	req := types.DefaultRequirement()
	eval := Evaluate(req)

	assert.Equal(t, 120, eval.Match.MatchCount)
	assert.Len(t, eval.Simulations, 3)
	assert.NotNil(t, eval.Recommendations)
	assert.Empty(t, eval.Recommendations)
}

func TestEvaluate_JSONShape(t *testing.T) {
	eval := Evaluate(types.DefaultRequirement())

	data, err := json.Marshal(eval)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Contains(t, decoded, "requirements")
	assert.Contains(t, decoded, "matchData")
	assert.Equal(t, []any{}, decoded["recommendations"])

	sims, ok := decoded["simulations"].([]any)
	require.True(t, ok)
	first := sims[0].(map[string]any)
	assert.Equal(t, "hourlyWage", first["parameter"])
	assert.Equal(t, float64(1200), first["currentValue"])
	assert.Equal(t, float64(1300), first["newValue"])
}

func TestEvaluatorFunc(t *testing.T) {
	calls := 0
	var ev Evaluator = EvaluatorFunc(func(r types.JobRequirement) Evaluation {
		calls++
		return Evaluate(r)
	})

	ev.Evaluate(types.DefaultRequirement())
	assert.Equal(t, 1, calls)
}

func TestCachedEvaluator_MatchesEvaluate(t *testing.T) {
	cached, err := NewCachedEvaluator(100)
	require.NoError(t, err)
	defer cached.Close()

	req := types.DefaultRequirement()
	first := cached.Evaluate(req)
	cached.Wait()
	second := cached.Evaluate(req)

	want := Evaluate(req)
	assert.Equal(t, want.Match, first.Match)
	assert.Equal(t, want.Match, second.Match)
	assert.Equal(t, want.Simulations, second.Simulations)
}

func TestCachedEvaluator_KeysOnNormalizedRequirement(t *testing.T) {
	cached, err := NewCachedEvaluator(0)
	require.NoError(t, err)
	defer cached.Close()

	high := types.DefaultRequirement()
	high.HourlyWage = 9999
	capped := types.DefaultRequirement()
	capped.HourlyWage = types.MaxHourlyWage

	a := cached.Evaluate(high)
	cached.Wait()
	b := cached.Evaluate(capped)

	assert.Equal(t, a.Match, b.Match)
	assert.Equal(t, types.MaxHourlyWage, a.Requirements.HourlyWage)
}
