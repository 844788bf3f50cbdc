// Package types provides type definitions for the job requirement model and its derived match data.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"slices"

	"github.com/go-playground/validator/v10"
)

// Wage bounds applied on every mutation of a requirement.
const (
	MinHourlyWage = 900
	MaxHourlyWage = 3000
)

// Weekday tags used in WorkDays.
const (
	Monday    = "月"
	Tuesday   = "火"
	Wednesday = "水"
	Thursday  = "木"
	Friday    = "金"
	Saturday  = "土"
	Sunday    = "日"
)

// Weekdays lists the weekday tags in calendar order.
var Weekdays = []string{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// JobRequirement describes a job opening as configured by a recruiter.
type JobRequirement struct {
	JobType           JobType   `json:"jobType"`
	HourlyWage        int       `json:"hourlyWage"`
	WorkArea          WorkArea  `json:"workArea"`
	SkillRequirements []string  `json:"skillRequirements" validate:"dive,required"`
	WorkHours         WorkHours `json:"workHours"`
	WorkDays          []string  `json:"workDays" validate:"unique,dive,oneof=月 火 水 木 金 土 日"`
	DependentStatus   bool      `json:"dependentStatus"`
}

// JobType is the three-level job category selection.
type JobType struct {
	Major  string   `json:"major" validate:"required"`
	Middle string   `json:"middle"`
	Minor  []string `json:"minor" validate:"dive,required"`
}

// WorkArea is the prefecture plus the selected cities inside it.
type WorkArea struct {
	Prefecture string   `json:"prefecture" validate:"required"`
	City       []string `json:"city" validate:"dive,required"`
}

// WorkHours is a daily time-of-day window in "HH:MM" form.
type WorkHours struct {
	Start string `json:"start" validate:"required,datetime=15:04"`
	End   string `json:"end" validate:"required,datetime=15:04"`
}

// DefaultRequirement returns the configuration a new session starts with.
func DefaultRequirement() JobRequirement {
	return JobRequirement{
		JobType: JobType{
			Major:  "営業・販売",
			Middle: "営業",
			Minor:  []string{"法人営業"},
		},
		HourlyWage: 1200,
		WorkArea: WorkArea{
			Prefecture: "東京都",
			City:       []string{"新宿区", "渋谷区"},
		},
		SkillRequirements: []string{"Excel", "Word", "営業経験"},
		WorkHours: WorkHours{
			Start: "09:00",
			End:   "18:00",
		},
		WorkDays:        []string{Monday, Tuesday, Wednesday, Thursday, Friday},
		DependentStatus: false,
	}
}

// Validate checks the requirement's shape. Wage is not validated; it is clamped instead.
func (r *JobRequirement) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// ClampWage bounds a wage to [MinHourlyWage, MaxHourlyWage].
func ClampWage(wage int) int {
	return max(MinHourlyWage, min(MaxHourlyWage, wage))
}

// Normalized returns a deep copy with the wage clamped and nil lists replaced by empty ones.
func (r JobRequirement) Normalized() JobRequirement {
	out := r.Clone()
	out.HourlyWage = ClampWage(out.HourlyWage)
	return out
}

// Clone returns a deep copy of the requirement.
func (r JobRequirement) Clone() JobRequirement {
	out := r
	out.JobType.Minor = cloneStrings(r.JobType.Minor)
	out.WorkArea.City = cloneStrings(r.WorkArea.City)
	out.SkillRequirements = cloneStrings(r.SkillRequirements)
	out.WorkDays = cloneStrings(r.WorkDays)
	return out
}

// IsWeekend reports whether a weekday tag falls on Saturday or Sunday.
func IsWeekend(day string) bool {
	return day == Saturday || day == Sunday
}

// WeekendDays returns the weekend tags selected in the requirement, in selection order.
func (r *JobRequirement) WeekendDays() []string {
	var days []string
	for _, d := range r.WorkDays {
		if IsWeekend(d) {
			days = append(days, d)
		}
	}
	return days
}

// WeekdaysOnly returns WorkDays with the weekend tags removed.
func (r *JobRequirement) WeekdaysOnly() []string {
	days := make([]string, 0, len(r.WorkDays))
	for _, d := range r.WorkDays {
		if !IsWeekend(d) {
			days = append(days, d)
		}
	}
	return days
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
