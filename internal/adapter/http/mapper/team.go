package mapper

import (
	"workstream/internal/adapter/http/dto"
	"workstream/internal/core/domain"
)

func ToTeamItems(teams []domain.Team) []dto.TeamItem {
	items := make([]dto.TeamItem, 0, len(teams))
	for _, team := range teams {
		items = append(items, ToTeamItem(team))
	}
	return items
}

func ToTeamItem(team domain.Team) dto.TeamItem {
	return dto.TeamItem{
		ID:       team.ID,
		Name:     team.Name,
		Admin:    team.Admin,
		Sections: nonNil(team.Sections),
		Members:  nonNil(team.Members),
		Photo:    team.Photo,
	}
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
