package matching

import (
	"slices"

	"github.com/jonathan/jobmatch/internal/types"
)

const (
	simulatedWageStep = 100

	primaryPrefecture   = "東京都"
	secondaryPrefecture = "大阪府"

	primaryJobType   = "営業・販売"
	secondaryJobType = "事務・オフィスワーク"
)

// simulationChanges builds the fixed candidate changes in generation order:
// wage, prefecture, job type, skills, workdays. The wage step saturates at the upper bound.
func simulationChanges(req types.JobRequirement) []types.Change {
	changes := []types.Change{
		types.HourlyWageChange{From: req.HourlyWage, To: types.ClampWage(req.HourlyWage + simulatedWageStep)},
		types.PrefectureChange{From: req.WorkArea.Prefecture, To: alternate(req.WorkArea.Prefecture, primaryPrefecture, secondaryPrefecture)},
		types.JobTypeMajorChange{From: req.JobType.Major, To: alternate(req.JobType.Major, primaryJobType, secondaryJobType)},
	}

	if n := len(req.SkillRequirements); n > 1 {
		changes = append(changes, types.SkillRequirementsChange{
			From: slices.Clone(req.SkillRequirements),
			To:   slices.Clone(req.SkillRequirements[:n-1]),
		})
	}

	if len(req.WeekendDays()) > 0 {
		changes = append(changes, types.WorkDaysChange{
			From: slices.Clone(req.WorkDays),
			To:   req.WeekdaysOnly(),
		})
	}

	return changes
}

// Simulate evaluates each fixed single-field change against the current baseline and keeps
// those with a strictly positive relative increase, in generation order.
func Simulate(req types.JobRequirement) []types.RequirementSimulation {
	base := Score(req)
	simulations := make([]types.RequirementSimulation, 0, 5)

	for _, change := range simulationChanges(req) {
		next := Score(change.Apply(req))
		increase := RelativeIncrease(base.MatchCount, next.MatchCount)
		if increase <= 0 {
			continue
		}
		simulations = append(simulations, types.RequirementSimulation{
			Change:             change,
			MatchIncrease:      next.MatchCount - base.MatchCount,
			PercentageIncrease: increase,
		})
	}

	return simulations
}

// alternate returns second when current equals first, otherwise first.
func alternate(current, first, second string) string {
	if current == first {
		return second
	}
	return first
}
