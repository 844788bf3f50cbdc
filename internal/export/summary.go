package export

import (
	"strings"
	"text/template"

	"github.com/jonathan/jobmatch/internal/types"
)

const summaryTemplate = `求人条件分析結果:

【求人条件】
職種大: {{.Req.Major}}
職種中: {{.Req.Middle}}
職種小: {{.Req.Minor}}
時給: {{.Req.HourlyWage}}
都道府県: {{.Req.Prefecture}}
市区町村: {{.Req.Cities}}
スキル要件: {{.Req.Skills}}
勤務時間: {{.Req.WorkHours}}
勤務曜日: {{.Req.WorkDays}}
被扶養希望: {{.Req.DependentStatus}}

【候補者マッチング】
候補者数: {{.Match.Candidates}}
マッチ率: {{.Match.Rate}}

この条件では{{.Total}}人中{{.Count}}人（{{.Percentage}}%）の候補者がマッチします。`

var summaryTmpl = template.Must(template.New("summary").Parse(summaryTemplate))

type summaryData struct {
	Req        Requirements
	Match      Match
	Total      int
	Count      int
	Percentage string
}

// Summary renders the plain-text summary of a requirement and its match.
func Summary(r types.JobRequirement, m types.CandidateMatch) (string, error) {
	data := summaryData{
		Req:        FormatRequirements(r),
		Match:      FormatMatch(m),
		Total:      m.TotalCount,
		Count:      m.MatchCount,
		Percentage: FormatPercentage(m.MatchPercentage),
	}

	var b strings.Builder
	if err := summaryTmpl.Execute(&b, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute summary template",
			Cause:   err,
		}
	}
	return strings.TrimSpace(b.String()), nil
}
