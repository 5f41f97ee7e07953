package domain

import "slices"

const (
	DefaultSection = "General"
	// NoTeam is the active team of a user who belongs to no team.
	NoTeam = "no_team"
)

type Team struct {
	ID       string
	Name     string
	Admin    string
	Sections []string
	Members  []string
	Photo    string
}

func (t Team) HasMember(email string) bool {
	return slices.Contains(t.Members, email)
}

func (t Team) HasSection(name string) bool {
	return slices.Contains(t.Sections, name)
}

func (t Team) IsAdmin(email string) bool {
	return t.Admin != "" && t.Admin == email
}

// DefaultSection returns the first declared section.
func (t Team) DefaultSection() string {
	if len(t.Sections) == 0 {
		return DefaultSection
	}
	return t.Sections[0]
}

type CreateTeamInput struct {
	Name  string
	Photo string
}
