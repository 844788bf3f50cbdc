// Package matching estimates how many synthetic candidates a job requirement set would match,
// and searches single-field changes that raise that estimate.
package matching

import (
	"math"
	"strconv"
	"strings"

	"github.com/jonathan/jobmatch/internal/types"
)

const (
	// TotalCandidates is the size of the synthetic candidate pool.
	TotalCandidates = 1000
	// FullMatchCount is the match count that maps to 100%.
	FullMatchCount = 444
	// TargetPercentage is the match percentage recommendations aim for.
	TargetPercentage = 80.0

	baseShare = 0.1
)

// Scoring adjustments
const (
	middleCategoryFactor = 0.8
	minorTagPenalty      = 0.1
	wageStep             = 100.0
	wageStepGain         = 0.1
	wagePivot            = 1000
	extraCityPenalty     = 0.05
	unusualHoursFactor   = 0.8
	longHoursFactor      = 0.9
	earliestStartHour    = 8
	latestEndHour        = 19
	maxShiftHours        = 8
	weekendDayPenalty    = 0.1
	fullWeekDays         = 5
	partTimeFactor       = 1.1
	includedSkills       = 2
	extraSkillPenalty    = 0.1
	dependentFactor      = 0.7

	unknownJobTypeFactor    = 1.0
	unknownPrefectureFactor = 0.6
)

var jobTypeMultipliers = map[string]float64{
	"IT・エンジニア":    0.7,
	"営業・販売":       1.2,
	"事務・オフィスワーク":  1.1,
	"製造・技術":       0.9,
	"サービス・接客":     1.0,
	"医療・介護":       0.8,
	"教育・保育":       0.6,
	"建設・土木":       0.7,
}

var prefectureMultipliers = map[string]float64{
	"東京都":  1.5,
	"大阪府":  1.2,
	"愛知県":  0.9,
	"神奈川県": 1.3,
	"埼玉県":  1.1,
	"千葉県":  1.0,
	"兵庫県":  0.8,
	"福岡県":  0.7,
}

// JobTypeMultiplier returns the scoring factor for a major job category.
func JobTypeMultiplier(major string) float64 {
	if m, ok := jobTypeMultipliers[major]; ok {
		return m
	}
	return unknownJobTypeFactor
}

// PrefectureMultiplier returns the scoring factor for a prefecture.
func PrefectureMultiplier(prefecture string) float64 {
	if m, ok := prefectureMultipliers[prefecture]; ok {
		return m
	}
	return unknownPrefectureFactor
}

// Score computes the candidate match for a requirement set. It is deterministic and
// performs no I/O. Each adjustment factor is floored at zero so that two negative
// penalties cannot cancel into a positive product.
func Score(req types.JobRequirement) types.CandidateMatch {
	count := TotalCandidates * baseShare

	count *= JobTypeMultiplier(req.JobType.Major)

	if req.JobType.Middle != "" {
		count *= middleCategoryFactor
	}

	if n := len(req.JobType.Minor); n > 0 {
		count *= penalty(n, minorTagPenalty)
	}

	count *= nonNegative(1 + (float64(req.HourlyWage-wagePivot)/wageStep)*wageStepGain)

	count *= PrefectureMultiplier(req.WorkArea.Prefecture)

	if n := len(req.WorkArea.City); n > 0 {
		count *= penalty(n-1, extraCityPenalty)
	}

	count *= hoursFactor(req.WorkHours)

	if weekend := len(req.WeekendDays()); weekend > 0 {
		count *= penalty(weekend, weekendDayPenalty)
	}

	if len(req.WorkDays) < fullWeekDays {
		count *= partTimeFactor
	}

	count *= penalty(len(req.SkillRequirements)-includedSkills, extraSkillPenalty)

	if req.DependentStatus {
		count *= dependentFactor
	}

	matchCount := int(math.Min(math.Round(math.Max(count, 0)), TotalCandidates))

	return types.CandidateMatch{
		TotalCount:      TotalCandidates,
		MatchCount:      matchCount,
		MatchPercentage: Percentage(matchCount),
	}
}

// Percentage converts a match count to a match percentage.
func Percentage(matchCount int) float64 {
	if matchCount >= FullMatchCount {
		return 100
	}
	return float64(matchCount) / FullMatchCount * 100
}

// RelativeIncrease returns (next/base - 1) * 100, or 0 when base is 0.
func RelativeIncrease(base, next int) float64 {
	if base <= 0 {
		return 0
	}
	return (float64(next)/float64(base) - 1) * 100
}

// hoursFactor applies the unusual-hours and long-shift penalties. Only the hour component
// of each time is considered. Each bound is checked on its own, so an unparseable time only
// skips the rules that need it.
func hoursFactor(h types.WorkHours) float64 {
	start, okStart := parseHour(h.Start)
	end, okEnd := parseHour(h.End)

	factor := 1.0
	if (okStart && start < earliestStartHour) || (okEnd && end > latestEndHour) {
		factor *= unusualHoursFactor
	}
	if okStart && okEnd && end-start > maxShiftHours {
		factor *= longHoursFactor
	}
	return factor
}

func parseHour(hhmm string) (int, bool) {
	hour, _, _ := strings.Cut(strings.TrimSpace(hhmm), ":")
	h, err := strconv.Atoi(hour)
	if err != nil {
		return 0, false
	}
	return h, true
}

// penalty returns 1 - step*n, with n below zero treated as zero.
func penalty(n int, step float64) float64 {
	if n <= 0 {
		return 1
	}
	return nonNegative(1 - float64(n)*step)
}

func nonNegative(f float64) float64 {
	if f < 0 {
		return 0
	}
	return f
}
