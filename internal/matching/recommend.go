package matching

import (
	"slices"

	"github.com/jonathan/jobmatch/internal/types"
)

const (
	wageProbeStep = 100
	wageProbeMax  = 500
	// wage increases at or below this are high priority
	highPriorityWageIncrease = 200
)

var (
	bestPrefectures = []string{"東京都", "大阪府", "神奈川県"}
	bestJobTypes    = []string{"営業・販売", "事務・オフィスワーク"}
)

// Recommend searches single-field changes that lift the match percentage to TargetPercentage.
// It returns an empty list when the baseline already meets the target. Results are ordered by priority,
// keeping generation order within a priority.
func Recommend(req types.JobRequirement) []types.Recommendation {
	base := Score(req)
	recs := []types.Recommendation{}
	if base.MatchPercentage >= TargetPercentage {
		return recs
	}

	accept := func(change types.Change, priority types.Priority) bool {
		next := Score(change.Apply(req))
		if next.MatchPercentage < TargetPercentage {
			return false
		}
		recs = append(recs, types.Recommendation{
			Change:            change,
			PotentialIncrease: RelativeIncrease(base.MatchCount, next.MatchCount),
			Priority:          priority,
		})
		return true
	}

	// Wage steps stop once the clamped wage no longer moves.
	prevWage := req.HourlyWage
	for step := wageProbeStep; step <= wageProbeMax; step += wageProbeStep {
		wage := types.ClampWage(req.HourlyWage + step)
		if wage == prevWage {
			break
		}
		prevWage = wage
		priority := types.PriorityMedium
		if step <= highPriorityWageIncrease {
			priority = types.PriorityHigh
		}
		if accept(types.HourlyWageChange{From: req.HourlyWage, To: wage}, priority) {
			break
		}
	}

	for _, pref := range bestPrefectures {
		if pref == req.WorkArea.Prefecture {
			continue
		}
		if accept(types.PrefectureChange{From: req.WorkArea.Prefecture, To: pref}, types.PriorityHigh) {
			break
		}
	}

	for _, major := range bestJobTypes {
		if major == req.JobType.Major {
			continue
		}
		if accept(types.JobTypeMajorChange{From: req.JobType.Major, To: major}, types.PriorityMedium) {
			break
		}
	}

	if len(req.SkillRequirements) > includedSkills {
		accept(types.SkillRequirementsChange{
			From: slices.Clone(req.SkillRequirements),
			To:   slices.Clone(req.SkillRequirements[:includedSkills]),
		}, types.PriorityMedium)
	}

	if len(req.WeekendDays()) > 0 {
		accept(types.WorkDaysChange{
			From: slices.Clone(req.WorkDays),
			To:   req.WeekdaysOnly(),
		}, types.PriorityMedium)
	}

	slices.SortStableFunc(recs, func(a, b types.Recommendation) int {
		return b.Priority.Rank() - a.Priority.Rank()
	})

	return recs
}
