package dto

type KPISummary struct {
	Completed  int     `json:"completed"`
	Remaining  int     `json:"remaining"`
	Total      int     `json:"total"`
	Progress   float64 `json:"progress"`
	Percentage int     `json:"percentage"`
	Display    string  `json:"display"`
	Message    string  `json:"message"`
}

type ContributorItem struct {
	Member    MemberItem `json:"member"`
	Completed int        `json:"completed"`
}

type TeamKPI struct {
	Summary         KPISummary        `json:"summary"`
	TopContributors []ContributorItem `json:"top_contributors"`
}

type PersonalKPI struct {
	Summary KPISummary `json:"summary"`
	Teams   int        `json:"teams"`
}
