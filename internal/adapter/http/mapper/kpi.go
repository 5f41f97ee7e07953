package mapper

import (
	"go.uber.org/zap"

	"workstream/internal/adapter/http/dto"
	"workstream/internal/core/kpi"
	"workstream/pkg/translator"
)

const (
	msgKPINoTasks      = "kpiNoTasks"
	msgKPIAllCompleted = "kpiAllCompleted"
	msgKPIProgress     = "kpiProgress"
)

func ToTeamKPI(stats kpi.Team, lang string) dto.TeamKPI {
	contributors := make([]dto.ContributorItem, 0, len(stats.TopContributors))
	for _, contributor := range stats.TopContributors {
		contributors = append(contributors, dto.ContributorItem{
			Member:    ToMemberItem(contributor.User),
			Completed: contributor.Completed,
		})
	}

	return dto.TeamKPI{
		Summary:         ToKPISummary(stats.Summary, lang),
		TopContributors: contributors,
	}
}

func ToPersonalKPI(stats kpi.Personal, lang string) dto.PersonalKPI {
	return dto.PersonalKPI{
		Summary: ToKPISummary(stats.Summary, lang),
		Teams:   stats.Teams,
	}
}

func ToKPISummary(summary kpi.Summary, lang string) dto.KPISummary {
	return dto.KPISummary{
		Completed:  summary.Completed,
		Remaining:  summary.Remaining,
		Total:      summary.Total(),
		Progress:   summary.Progress,
		Percentage: summary.Percentage,
		Display:    string(summary.Display),
		Message:    kpiMessage(summary, lang),
	}
}

func kpiMessage(summary kpi.Summary, lang string) string {
	var (
		key  string
		data map[string]interface{}
	)

	switch summary.Display {
	case kpi.DisplayNoTasks:
		key = msgKPINoTasks
	case kpi.DisplayAllCompleted:
		key = msgKPIAllCompleted
	default:
		key = msgKPIProgress
		data = map[string]interface{}{
			"Completed":  summary.Completed,
			"Total":      summary.Total(),
			"Percentage": summary.Percentage,
		}
	}

	msg, err := translator.Localize(lang, key, data)
	if err != nil {
		zap.L().Warn("translation not found", zap.String("lang", lang), zap.String("message_id", key), zap.Error(err))
		return key
	}
	return msg
}
