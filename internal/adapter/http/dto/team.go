package dto

type TeamItem struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Admin    string   `json:"admin"`
	Sections []string `json:"sections"`
	Members  []string `json:"members"`
	Photo    string   `json:"photo,omitempty"`
}

type CreateTeamRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Photo string `json:"photo" binding:"omitempty,max=2048"`
}

type SectionRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type InviteLink struct {
	TeamID string `json:"team_id"`
	Link   string `json:"link"`
}
