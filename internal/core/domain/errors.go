package domain

import "errors"

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrTeamNotFound      = errors.New("team not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrSectionNotFound   = errors.New("section not found")
	ErrSectionExists     = errors.New("section already exists")
	ErrLastSection       = errors.New("cannot remove the last section")
	ErrNotTeamMember     = errors.New("user is not a team member")
	ErrNotTeamAdmin      = errors.New("user is not the team admin")
	ErrAssigneeNotMember = errors.New("assignee is not a team member")
	ErrInvalidProfile    = errors.New("invalid profile")
	ErrInvalidMessage    = errors.New("invalid chat message")
	ErrInvalidRecipient  = errors.New("invalid chat recipient")
)
