package types

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Field identifies a requirement field that simulations and recommendations can change.
type Field string

// Fields touched by the simulation and recommendation search.
const (
	FieldHourlyWage        Field = "hourlyWage"
	FieldPrefecture        Field = "workArea.prefecture"
	FieldJobTypeMajor      Field = "jobType.major"
	FieldSkillRequirements Field = "skillRequirements"
	FieldWorkDays          Field = "workDays"
)

// Change is a single-field edit of a JobRequirement. The set of implementations is closed:
// HourlyWageChange, PrefectureChange, JobTypeMajorChange, SkillRequirementsChange and
// WorkDaysChange.
type Change interface {
	// Field returns the identifier of the field this change edits.
	Field() Field
	// Apply returns a copy of r with the change applied.
	Apply(r JobRequirement) JobRequirement
	// CurrentValue returns the value the field had when the change was built.
	CurrentValue() any
	// ProposedValue returns the value the change sets.
	ProposedValue() any

	isChange()
}

// HourlyWageChange sets the hourly wage. Applying it clamps the wage.
type HourlyWageChange struct {
	From int
	To   int
}

func (HourlyWageChange) Field() Field { return FieldHourlyWage }

func (c HourlyWageChange) Apply(r JobRequirement) JobRequirement {
	out := r.Clone()
	out.HourlyWage = ClampWage(c.To)
	return out
}

func (c HourlyWageChange) CurrentValue() any  { return c.From }
func (c HourlyWageChange) ProposedValue() any { return c.To }
func (HourlyWageChange) isChange()            {}

// PrefectureChange moves the work area to another prefecture and clears the city selection.
type PrefectureChange struct {
	From string
	To   string
}

func (PrefectureChange) Field() Field { return FieldPrefecture }

func (c PrefectureChange) Apply(r JobRequirement) JobRequirement {
	out := r.Clone()
	out.WorkArea = WorkArea{Prefecture: c.To, City: []string{}}
	return out
}

func (c PrefectureChange) CurrentValue() any  { return c.From }
func (c PrefectureChange) ProposedValue() any { return c.To }
func (PrefectureChange) isChange()            {}

// JobTypeMajorChange switches the major job category and clears the middle and minor selections.
type JobTypeMajorChange struct {
	From string
	To   string
}

func (JobTypeMajorChange) Field() Field { return FieldJobTypeMajor }

func (c JobTypeMajorChange) Apply(r JobRequirement) JobRequirement {
	out := r.Clone()
	out.JobType = JobType{Major: c.To, Middle: "", Minor: []string{}}
	return out
}

func (c JobTypeMajorChange) CurrentValue() any  { return c.From }
func (c JobTypeMajorChange) ProposedValue() any { return c.To }
func (JobTypeMajorChange) isChange()            {}

// SkillRequirementsChange replaces the required skill list.
type SkillRequirementsChange struct {
	From []string
	To   []string
}

func (SkillRequirementsChange) Field() Field { return FieldSkillRequirements }

func (c SkillRequirementsChange) Apply(r JobRequirement) JobRequirement {
	out := r.Clone()
	out.SkillRequirements = cloneStrings(c.To)
	return out
}

func (c SkillRequirementsChange) CurrentValue() any  { return cloneStrings(c.From) }
func (c SkillRequirementsChange) ProposedValue() any { return cloneStrings(c.To) }
func (SkillRequirementsChange) isChange()            {}

// WorkDaysChange replaces the active weekday selection.
type WorkDaysChange struct {
	From []string
	To   []string
}

func (WorkDaysChange) Field() Field { return FieldWorkDays }

func (c WorkDaysChange) Apply(r JobRequirement) JobRequirement {
	out := r.Clone()
	out.WorkDays = cloneStrings(c.To)
	return out
}

func (c WorkDaysChange) CurrentValue() any  { return cloneStrings(c.From) }
func (c WorkDaysChange) ProposedValue() any { return cloneStrings(c.To) }
func (WorkDaysChange) isChange()            {}

// ErrUnknownField indicates a change request named a field outside the closed set.
type ErrUnknownField struct {
	Field string
}

func (e *ErrUnknownField) Error() string {
	return fmt.Sprintf("unknown requirement field: %q", e.Field)
}

// ChangeRequest is the wire form of an inbound change. The proposed value may be sent as
// "value", "newValue" (as in a simulation) or "suggestedValue" (as in a recommendation).
type ChangeRequest struct {
	Parameter      Field           `json:"parameter"`
	Value          json.RawMessage `json:"value,omitempty"`
	NewValue       json.RawMessage `json:"newValue,omitempty"`
	SuggestedValue json.RawMessage `json:"suggestedValue,omitempty"`
}

func (cr ChangeRequest) rawValue() json.RawMessage {
	switch {
	case len(cr.Value) > 0:
		return cr.Value
	case len(cr.NewValue) > 0:
		return cr.NewValue
	default:
		return cr.SuggestedValue
	}
}

// Decode converts the request into a typed Change against the current requirement.
func (cr ChangeRequest) Decode(current JobRequirement) (Change, error) {
	raw := cr.rawValue()
	if len(raw) == 0 {
		return nil, fmt.Errorf("change for %q has no value", cr.Parameter)
	}

	switch cr.Parameter {
	case FieldHourlyWage:
		var wage int
		if err := json.Unmarshal(raw, &wage); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", cr.Parameter, err)
		}
		return HourlyWageChange{From: current.HourlyWage, To: wage}, nil
	case FieldPrefecture:
		var pref string
		if err := json.Unmarshal(raw, &pref); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", cr.Parameter, err)
		}
		return PrefectureChange{From: current.WorkArea.Prefecture, To: pref}, nil
	case FieldJobTypeMajor:
		var major string
		if err := json.Unmarshal(raw, &major); err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", cr.Parameter, err)
		}
		return JobTypeMajorChange{From: current.JobType.Major, To: major}, nil
	case FieldSkillRequirements:
		skills, err := decodeStringList(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", cr.Parameter, err)
		}
		return SkillRequirementsChange{From: slices.Clone(current.SkillRequirements), To: skills}, nil
	case FieldWorkDays:
		days, err := decodeStringList(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %w", cr.Parameter, err)
		}
		return WorkDaysChange{From: slices.Clone(current.WorkDays), To: days}, nil
	default:
		return nil, &ErrUnknownField{Field: string(cr.Parameter)}
	}
}

// decodeStringList accepts either a JSON array of strings or a single string.
func decodeStringList(raw json.RawMessage) ([]string, error) {
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return cloneStrings(list), nil
	}
	var single string
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []string{single}, nil
}

// ApplyAll applies changes in order and clamps the wage of the result.
func ApplyAll(r JobRequirement, changes ...Change) JobRequirement {
	out := r.Clone()
	for _, c := range changes {
		out = c.Apply(out)
	}
	out.HourlyWage = ClampWage(out.HourlyWage)
	return out
}
