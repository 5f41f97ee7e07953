package dto

type UserItem struct {
	Email      string   `json:"email"`
	FirstName  string   `json:"first_name"`
	LastName   string   `json:"last_name"`
	FullName   string   `json:"full_name"`
	Location   *string  `json:"location,omitempty"`
	Photo      string   `json:"photo,omitempty"`
	Teams      []string `json:"teams"`
	ActiveTeam string   `json:"active_team"`
}

// MemberItem is the public view of a team member.
type MemberItem struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Photo    string `json:"photo,omitempty"`
}

type SignInRequest struct {
	FirstName string `json:"first_name" binding:"omitempty,max=100"`
	LastName  string `json:"last_name" binding:"omitempty,max=100"`
	Photo     string `json:"photo" binding:"omitempty,max=2048"`
}

type UpdateProfileRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Location  *string `json:"location" binding:"omitempty,max=255"`
	Photo     *string `json:"photo" binding:"omitempty,max=2048"`
}

type ActiveTeamRequest struct {
	TeamID string `json:"team_id" binding:"required"`
}
