package domain

import "strings"

type User struct {
	Email      string
	FirstName  string
	LastName   string
	Location   *string
	Photo      string
	Teams      []string
	ActiveTeam string
}

func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// HasActiveTeam reports whether the user has selected a real team.
func (u User) HasActiveTeam() bool {
	return u.ActiveTeam != "" && u.ActiveTeam != NoTeam
}

type SignInInput struct {
	Email     string
	FirstName string
	LastName  string
	Photo     string
}

type UpdateProfileInput struct {
	FirstName *string
	LastName  *string
	Location  *string
	// LocationSet is true when the location was sent, even as null.
	LocationSet bool
	Photo       *string
}
