package export

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/jobmatch/internal/types"
)

// FileName is the default download name of an exported document.
const FileName = "求人条件分析結果.json"

// TimestampLayout formats the export time as yyyy/m/d hh:mm:ss.
const TimestampLayout = "2006/1/2 15:04:05"

const listSeparator = "、"

// Requirements is the display form of a JobRequirement.
type Requirements struct {
	Major           string `json:"職種大"`
	Middle          string `json:"職種中"`
	Minor           string `json:"職種小"`
	HourlyWage      string `json:"時給"`
	Prefecture      string `json:"都道府県"`
	Cities          string `json:"市区町村"`
	Skills          string `json:"スキル要件"`
	WorkHours       string `json:"勤務時間"`
	WorkDays        string `json:"勤務曜日"`
	DependentStatus string `json:"被扶養希望"`
}

// Match is the display form of a CandidateMatch.
type Match struct {
	Candidates string `json:"候補者数"`
	Rate       string `json:"マッチ率"`
}

// Document is the exported analysis result.
type Document struct {
	Requirements Requirements `json:"求人条件"`
	Match        Match        `json:"候補者マッチング"`
	ExportedAt   string       `json:"エクスポート日時"`
}

// FormatRequirements converts a requirement into its display strings.
func FormatRequirements(r types.JobRequirement) Requirements {
	dependent := "なし"
	if r.DependentStatus {
		dependent = "あり"
	}
	return Requirements{
		Major:           r.JobType.Major,
		Middle:          r.JobType.Middle,
		Minor:           strings.Join(r.JobType.Minor, listSeparator),
		HourlyWage:      fmt.Sprintf("%d円", r.HourlyWage),
		Prefecture:      r.WorkArea.Prefecture,
		Cities:          strings.Join(r.WorkArea.City, listSeparator),
		Skills:          strings.Join(r.SkillRequirements, listSeparator),
		WorkHours:       fmt.Sprintf("%s～%s", r.WorkHours.Start, r.WorkHours.End),
		WorkDays:        strings.Join(r.WorkDays, listSeparator),
		DependentStatus: dependent,
	}
}

// FormatMatch converts a match result into its display strings.
func FormatMatch(m types.CandidateMatch) Match {
	return Match{
		Candidates: fmt.Sprintf("%d/%d人", m.MatchCount, m.TotalCount),
		Rate:       FormatPercentage(m.MatchPercentage) + "%",
	}
}

// FormatPercentage renders a percentage with one decimal place.
func FormatPercentage(p float64) string {
	return fmt.Sprintf("%.1f", p)
}

// NewDocument builds the export document for a requirement and its match at the given time.
func NewDocument(r types.JobRequirement, m types.CandidateMatch, at time.Time) Document {
	return Document{
		Requirements: FormatRequirements(r),
		Match:        FormatMatch(m),
		ExportedAt:   at.Format(TimestampLayout),
	}
}

// MarshalIndent encodes the document the way it is downloaded: two-space indent, no HTML escaping.
func (d Document) MarshalIndent() ([]byte, error) {
	var b strings.Builder
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode export document: %w", err)
	}
	return []byte(strings.TrimSuffix(b.String(), "\n")), nil
}
