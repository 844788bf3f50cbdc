package matching

import (
	"testing"

	"github.com/jonathan/jobmatch/internal/types"
	"github.com/stretchr/testify/assert"
)

// plainRequirement has every optional penalty switched off so factors can be read directly.
func plainRequirement() types.JobRequirement {
	return types.JobRequirement{
		JobType:           types.JobType{Major: "サービス・接客", Minor: []string{}},
		HourlyWage:        1000,
		WorkArea:          types.WorkArea{Prefecture: "千葉県", City: []string{}},
		SkillRequirements: []string{},
		WorkHours:         types.WorkHours{Start: "09:00", End: "17:00"},
		WorkDays:          []string{"月", "火", "水", "木", "金"},
	}
}

func TestScore_DefaultRequirement(t *testing.T) {
	match := Score(types.DefaultRequirement())

	// 100 * 1.2 * 0.8 * 0.9 * 1.2 * 1.5 * 0.95 * 0.9 * 0.9 = 119.67
	assert.Equal(t, TotalCandidates, match.TotalCount)
	assert.Equal(t, 120, match.MatchCount)
	assert.InDelta(t, 120.0/444.0*100, match.MatchPercentage, 1e-9)
}

func TestScore_PlainRequirementIsBaseShare(t *testing.T) {
	match := Score(plainRequirement())
	assert.Equal(t, 100, match.MatchCount)
}

func TestScore_WageIncreaseRaisesCount(t *testing.T) {
	req := types.DefaultRequirement()
	base := Score(req)

	req.HourlyWage += 100
	raised := Score(req)

	assert.Greater(t, raised.MatchCount, base.MatchCount)
	assert.Equal(t, 130, raised.MatchCount)
}

func TestScore_MonotonicInWage(t *testing.T) {
	req := types.DefaultRequirement()
	prev := -1
	for wage := types.MinHourlyWage; wage <= types.MaxHourlyWage; wage += 10 {
		req.HourlyWage = wage
		count := Score(req).MatchCount
		assert.GreaterOrEqual(t, count, prev, "wage %d", wage)
		prev = count
	}
}

func TestScore_UnknownCategoriesUseDefaults(t *testing.T) {
	req := plainRequirement()
	req.JobType.Major = "宇宙飛行士"
	req.WorkArea.Prefecture = "北海道"

	// 100 * 1.0 * 0.6
	assert.Equal(t, 60, Score(req).MatchCount)
}

func TestScore_JobTypeMultipliers(t *testing.T) {
	tests := []struct {
		major string
		want  int
	}{
		{"IT・エンジニア", 70},
		{"営業・販売", 120},
		{"事務・オフィスワーク", 110},
		{"製造・技術", 90},
		{"サービス・接客", 100},
		{"医療・介護", 80},
		{"教育・保育", 60},
		{"建設・土木", 70},
	}

	for _, tt := range tests {
		t.Run(tt.major, func(t *testing.T) {
			req := plainRequirement()
			req.JobType.Major = tt.major
			assert.Equal(t, tt.want, Score(req).MatchCount)
		})
	}
}

func TestScore_PrefectureMultipliers(t *testing.T) {
	tests := []struct {
		prefecture string
		want       int
	}{
		{"東京都", 150},
		{"大阪府", 120},
		{"愛知県", 90},
		{"神奈川県", 130},
		{"埼玉県", 110},
		{"千葉県", 100},
		{"兵庫県", 80},
		{"福岡県", 70},
	}

	for _, tt := range tests {
		t.Run(tt.prefecture, func(t *testing.T) {
			req := plainRequirement()
			req.WorkArea.Prefecture = tt.prefecture
			assert.Equal(t, tt.want, Score(req).MatchCount)
		})
	}
}

func TestScore_CategoryPenalties(t *testing.T) {
	req := plainRequirement()
	req.JobType.Middle = "飲食"
	assert.Equal(t, 80, Score(req).MatchCount)

	req.JobType.Minor = []string{"ホール", "キッチン"}
	// 100 * 0.8 * 0.8
	assert.Equal(t, 64, Score(req).MatchCount)
}

func TestScore_CityPenaltyAppliesBeyondFirst(t *testing.T) {
	req := plainRequirement()
	req.WorkArea.City = []string{"船橋市"}
	assert.Equal(t, 100, Score(req).MatchCount)

	req.WorkArea.City = []string{"船橋市", "松戸市", "柏市"}
	assert.Equal(t, 90, Score(req).MatchCount)
}

func TestScore_WorkHours(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		want  int
	}{
		{"regular day", "09:00", "17:00", 100},
		{"early start", "07:00", "15:00", 80},
		{"late finish", "11:00", "20:00", 72},
		{"long shift", "08:00", "19:00", 90},
		{"end minutes ignored", "11:00", "19:30", 100},
		{"unparseable", "", "17:00", 100},
		{"early start with unparseable end", "07:00", "later", 80},
		{"late finish with unparseable start", "", "20:00", 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := plainRequirement()
			req.WorkHours = types.WorkHours{Start: tt.start, End: tt.end}
			assert.Equal(t, tt.want, Score(req).MatchCount)
		})
	}
}

func TestScore_WorkDays(t *testing.T) {
	req := plainRequirement()
	req.WorkDays = []string{"月", "火", "水", "木", "金", "土", "日"}
	// weekend penalty 1 - 0.2
	assert.Equal(t, 80, Score(req).MatchCount)

	req.WorkDays = []string{"月", "水", "金"}
	// part-time bonus
	assert.Equal(t, 110, Score(req).MatchCount)

	req.WorkDays = []string{"土", "日"}
	// 100 * 0.8 * 1.1
	assert.Equal(t, 88, Score(req).MatchCount)
}

func TestScore_SkillPenaltyIsLinearBeyondTwo(t *testing.T) {
	req := plainRequirement()
	req.HourlyWage = 3000
	req.WorkArea.Prefecture = "東京都"
	// 100 * 3.0 * 1.5 = 450 before skills

	req.SkillRequirements = []string{"Excel", "Word"}
	assert.Equal(t, 450, Score(req).MatchCount)

	req.SkillRequirements = []string{"Excel", "Word", "VBA", "Access", "SQL"}
	five := Score(req).MatchCount
	assert.Equal(t, 315, five)

	req.SkillRequirements = append(req.SkillRequirements, "英語")
	six := Score(req).MatchCount
	assert.Equal(t, 270, six)
	assert.InDelta(t, float64(five)*0.6/0.7, float64(six), 1)
}

func TestScore_DependentStatus(t *testing.T) {
	req := plainRequirement()
	req.DependentStatus = true
	assert.Equal(t, 70, Score(req).MatchCount)
}

func TestScore_NegativeFactorsFloorAtZero(t *testing.T) {
	req := plainRequirement()
	req.JobType.Minor = make([]string, 11)
	for i := range req.JobType.Minor {
		req.JobType.Minor[i] = "tag"
	}
	req.SkillRequirements = make([]string, 13)
	for i := range req.SkillRequirements {
		req.SkillRequirements[i] = "skill"
	}

	match := Score(req)
	assert.Equal(t, 0, match.MatchCount)
	assert.Equal(t, 0.0, match.MatchPercentage)
}

func TestScore_BoundsAndPercentage(t *testing.T) {
	req := plainRequirement()
	req.JobType.Major = "営業・販売"
	req.WorkArea.Prefecture = "東京都"
	req.HourlyWage = 3000
	req.WorkDays = []string{"月"}

	match := Score(req)
	assert.LessOrEqual(t, match.MatchCount, TotalCandidates)
	assert.GreaterOrEqual(t, match.MatchCount, FullMatchCount)
	assert.Equal(t, 100.0, match.MatchPercentage)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, 0.0, Percentage(0))
	assert.InDelta(t, 50.0, Percentage(222), 1e-9)
	assert.InDelta(t, 443.0/444.0*100, Percentage(443), 1e-9)
	assert.Equal(t, 100.0, Percentage(444))
	assert.Equal(t, 100.0, Percentage(1000))
}

func TestRelativeIncrease(t *testing.T) {
	assert.InDelta(t, 25.0, RelativeIncrease(100, 125), 1e-9)
	assert.InDelta(t, -50.0, RelativeIncrease(100, 50), 1e-9)
	assert.Equal(t, 0.0, RelativeIncrease(0, 40))
}
