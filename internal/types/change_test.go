package types

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeApply_DoesNotMutateInput(t *testing.T) {
	req := DefaultRequirement()

	changes := []Change{
		HourlyWageChange{From: 1200, To: 1500},
		PrefectureChange{From: "東京都", To: "大阪府"},
		JobTypeMajorChange{From: "営業・販売", To: "事務・オフィスワーク"},
		SkillRequirementsChange{From: req.SkillRequirements, To: []string{"Excel"}},
		WorkDaysChange{From: req.WorkDays, To: []string{Monday}},
	}

	for _, c := range changes {
		t.Run(string(c.Field()), func(t *testing.T) {
			_ = c.Apply(req)
			assert.Equal(t, DefaultRequirement(), req)
		})
	}
}

func TestHourlyWageChange_Clamps(t *testing.T) {
	req := DefaultRequirement()

	assert.Equal(t, MaxHourlyWage, HourlyWageChange{To: 3500}.Apply(req).HourlyWage)
	assert.Equal(t, MinHourlyWage, HourlyWageChange{To: 100}.Apply(req).HourlyWage)
	assert.Equal(t, 1800, HourlyWageChange{To: 1800}.Apply(req).HourlyWage)
}

func TestPrefectureChange_ClearsCities(t *testing.T) {
	out := PrefectureChange{From: "東京都", To: "神奈川県"}.Apply(DefaultRequirement())

	assert.Equal(t, "神奈川県", out.WorkArea.Prefecture)
	assert.Empty(t, out.WorkArea.City)
	assert.NotNil(t, out.WorkArea.City)
}

func TestJobTypeMajorChange_ClearsSubcategories(t *testing.T) {
	out := JobTypeMajorChange{From: "営業・販売", To: "医療・介護"}.Apply(DefaultRequirement())

	assert.Equal(t, JobType{Major: "医療・介護", Middle: "", Minor: []string{}}, out.JobType)
}

func TestChangeRequest_Decode(t *testing.T) {
	req := DefaultRequirement()

	tests := []struct {
		name string
		body string
		want Change
	}{
		{
			name: "wage via value",
			body: `{"parameter":"hourlyWage","value":1300}`,
			want: HourlyWageChange{From: 1200, To: 1300},
		},
		{
			name: "prefecture via newValue",
			body: `{"parameter":"workArea.prefecture","newValue":"大阪府"}`,
			want: PrefectureChange{From: "東京都", To: "大阪府"},
		},
		{
			name: "job type via suggestedValue",
			body: `{"parameter":"jobType.major","suggestedValue":"事務・オフィスワーク"}`,
			want: JobTypeMajorChange{From: "営業・販売", To: "事務・オフィスワーク"},
		},
		{
			name: "skills list",
			body: `{"parameter":"skillRequirements","value":["Excel","Word"]}`,
			want: SkillRequirementsChange{From: []string{"Excel", "Word", "営業経験"}, To: []string{"Excel", "Word"}},
		},
		{
			name: "workdays single value",
			body: `{"parameter":"workDays","value":"月"}`,
			want: WorkDaysChange{From: []string{"月", "火", "水", "木", "金"}, To: []string{"月"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var cr ChangeRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &cr))

			got, err := cr.Decode(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChangeRequest_DecodeErrors(t *testing.T) {
	req := DefaultRequirement()

	var unknown *ErrUnknownField
	_, err := ChangeRequest{Parameter: "workHours.start", Value: json.RawMessage(`"07:00"`)}.Decode(req)
	require.Error(t, err)
	assert.True(t, errors.As(err, &unknown))
	assert.Equal(t, "workHours.start", unknown.Field)

	_, err = ChangeRequest{Parameter: FieldHourlyWage}.Decode(req)
	assert.Error(t, err)

	_, err = ChangeRequest{Parameter: FieldHourlyWage, Value: json.RawMessage(`"lots"`)}.Decode(req)
	assert.Error(t, err)
}

func TestApplyAll(t *testing.T) {
	req := DefaultRequirement()
	out := ApplyAll(req,
		HourlyWageChange{From: 1200, To: 2900},
		PrefectureChange{From: "東京都", To: "大阪府"},
		WorkDaysChange{From: req.WorkDays, To: []string{Monday, Saturday}},
	)

	assert.Equal(t, 2900, out.HourlyWage)
	assert.Equal(t, "大阪府", out.WorkArea.Prefecture)
	assert.Equal(t, []string{Saturday}, out.WeekendDays())
	assert.Equal(t, []string{Monday}, out.WeekdaysOnly())
}
