package matching

import "github.com/jonathan/jobmatch/internal/types"

// Evaluation is everything derived from one requirement set. It is replaced, never mutated,
// when the requirement changes.
type Evaluation struct {
	Requirements    types.JobRequirement          `json:"requirements"`
	Match           types.CandidateMatch          `json:"matchData"`
	Simulations     []types.RequirementSimulation `json:"simulations"`
	Recommendations []types.Recommendation        `json:"recommendations"`
}

// Evaluate clamps the wage and derives the match, simulations and recommendations.
func Evaluate(req types.JobRequirement) Evaluation {
	normalized := req.Normalized()
	return Evaluation{
		Requirements:    normalized,
		Match:           Score(normalized),
		Simulations:     Simulate(normalized),
		Recommendations: Recommend(normalized),
	}
}

// Evaluator computes evaluations. Implementations must behave like Evaluate.
type Evaluator interface {
	Evaluate(req types.JobRequirement) Evaluation
}

// EvaluatorFunc adapts a function to the Evaluator interface.
type EvaluatorFunc func(types.JobRequirement) Evaluation

// Evaluate calls f(req).
func (f EvaluatorFunc) Evaluate(req types.JobRequirement) Evaluation {
	return f(req)
}
