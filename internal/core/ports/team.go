package ports

import (
	"context"

	"workstream/internal/core/domain"
	"workstream/internal/core/kpi"
)

type TeamRepository interface {
	GetTeam(ctx context.Context, teamID string) (domain.Team, error)
	ListMemberTeams(ctx context.Context, email string) ([]domain.Team, error)
	// CreateTeam also makes the team active for members that have none.
	CreateTeam(ctx context.Context, team domain.Team) error
	// DeleteTeam moves every user whose active team it was to their next team.
	DeleteTeam(ctx context.Context, teamID string) error
	AddMember(ctx context.Context, teamID, email string) error
	// RemoveMember atomically drops the member, hands the admin role over and
	// deletes the team when it becomes empty.
	RemoveMember(ctx context.Context, teamID, email string) error
	AddSection(ctx context.Context, teamID, section string) error
	RemoveSection(ctx context.Context, teamID, section string) error
}

type TeamService interface {
	CreateTeam(ctx context.Context, requester string, input domain.CreateTeamInput) (domain.Team, error)
	GetTeam(ctx context.Context, requester, teamID string) (domain.Team, error)
	ListUserTeams(ctx context.Context, requester string) ([]domain.Team, error)
	ListMembers(ctx context.Context, requester, teamID string) ([]domain.User, error)
	JoinTeam(ctx context.Context, requester, teamID string) (domain.Team, error)
	LeaveTeam(ctx context.Context, requester, teamID string) error
	RemoveMember(ctx context.Context, requester, teamID, email string) error
	DeleteTeam(ctx context.Context, requester, teamID string) error
	AddSection(ctx context.Context, requester, teamID, section string) (domain.Team, error)
	RemoveSection(ctx context.Context, requester, teamID, section string) (domain.Team, error)
	InviteLink(ctx context.Context, requester, teamID string) (string, error)
	TeamKPIs(ctx context.Context, requester, teamID string) (kpi.Team, error)
}
