package types

import "encoding/json"

// CandidateMatch is the scoring result for a requirement set.
type CandidateMatch struct {
	TotalCount      int     `json:"totalCount"`
	MatchCount      int     `json:"matchCount"`
	MatchPercentage float64 `json:"matchPercentage"`
}

// Priority ranks a recommendation.
type Priority string

// Recommendation priorities
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the sort weight of a priority (higher sorts first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// RequirementSimulation is a hypothetical single-field change evaluated against the current baseline.
type RequirementSimulation struct {
	Change             Change
	MatchIncrease      int
	PercentageIncrease float64
}

// MarshalJSON flattens the change into parameter/currentValue/newValue.
func (s RequirementSimulation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Parameter          Field   `json:"parameter"`
		CurrentValue       any     `json:"currentValue"`
		NewValue           any     `json:"newValue"`
		MatchIncrease      int     `json:"matchIncrease"`
		PercentageIncrease float64 `json:"percentageIncrease"`
	}{
		Parameter:          s.Change.Field(),
		CurrentValue:       s.Change.CurrentValue(),
		NewValue:           s.Change.ProposedValue(),
		MatchIncrease:      s.MatchIncrease,
		PercentageIncrease: s.PercentageIncrease,
	})
}

// Recommendation is a change suggested to reach the match target.
type Recommendation struct {
	Change            Change
	PotentialIncrease float64
	Priority          Priority
}

// MarshalJSON flattens the change into parameter/currentValue/suggestedValue.
func (r Recommendation) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Parameter         Field    `json:"parameter"`
		CurrentValue      any      `json:"currentValue"`
		SuggestedValue    any      `json:"suggestedValue"`
		PotentialIncrease float64  `json:"potentialIncrease"`
		Priority          Priority `json:"priority"`
	}{
		Parameter:         r.Change.Field(),
		CurrentValue:      r.Change.CurrentValue(),
		SuggestedValue:    r.Change.ProposedValue(),
		PotentialIncrease: r.PotentialIncrease,
		Priority:          r.Priority,
	})
}
