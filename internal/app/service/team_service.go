package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workstream/internal/core/domain"
	"workstream/internal/core/kpi"
	"workstream/internal/core/ports"
)

type TeamService struct {
	teamRepository ports.TeamRepository
	userRepository ports.UserRepository
	taskRepository ports.TaskRepository
	inviteBaseURL  string
	newID          func() string
}

func NewTeamService(
	teamRepository ports.TeamRepository,
	userRepository ports.UserRepository,
	taskRepository ports.TaskRepository,
	inviteBaseURL string,
) *TeamService {
	return &TeamService{
		teamRepository: teamRepository,
		userRepository: userRepository,
		taskRepository: taskRepository,
		inviteBaseURL:  strings.TrimRight(inviteBaseURL, "/"),
		newID:          uuid.NewString,
	}
}

// CreateTeam creates a team with the default section whose admin and only
// member is requester. It becomes the active team of a requester without one.
func (s *TeamService) CreateTeam(ctx context.Context, requester string, input domain.CreateTeamInput) (domain.Team, error) {
	if _, err := s.userRepository.GetUser(ctx, requester); err != nil {
		return domain.Team{}, err
	}

	team := domain.Team{
		ID:       s.newID(),
		Name:     strings.TrimSpace(input.Name),
		Admin:    requester,
		Sections: []string{domain.DefaultSection},
		Members:  []string{requester},
		Photo:    input.Photo,
	}
	if err := s.teamRepository.CreateTeam(ctx, team); err != nil {
		return domain.Team{}, fmt.Errorf("create team: %w", err)
	}

	zap.L().Info("team created", zap.String("team_id", team.ID), zap.String("admin", requester))
	return team, nil
}

func (s *TeamService) GetTeam(ctx context.Context, requester, teamID string) (domain.Team, error) {
	return memberTeam(ctx, s.teamRepository, requester, teamID)
}

func (s *TeamService) ListUserTeams(ctx context.Context, requester string) ([]domain.Team, error) {
	return s.teamRepository.ListMemberTeams(ctx, requester)
}

func (s *TeamService) ListMembers(ctx context.Context, requester, teamID string) ([]domain.User, error) {
	team, err := memberTeam(ctx, s.teamRepository, requester, teamID)
	if err != nil {
		return nil, err
	}
	return s.userRepository.ListUsers(ctx, team.Members)
}

// JoinTeam adds requester to the team. Joining twice is a no-op.
func (s *TeamService) JoinTeam(ctx context.Context, requester, teamID string) (domain.Team, error) {
	team, err := s.teamRepository.GetTeam(ctx, teamID)
	if err != nil {
		return domain.Team{}, err
	}
	if team.HasMember(requester) {
		return team, nil
	}

	if _, err := s.userRepository.GetUser(ctx, requester); err != nil {
		return domain.Team{}, err
	}

	if err := s.teamRepository.AddMember(ctx, teamID, requester); err != nil {
		return domain.Team{}, fmt.Errorf("join team: %w", err)
	}

	team.Members = append(team.Members, requester)
	zap.L().Info("team joined", zap.String("team_id", teamID), zap.String("member", requester))
	return team, nil
}

func (s *TeamService) LeaveTeam(ctx context.Context, requester, teamID string) error {
	team, err := memberTeam(ctx, s.teamRepository, requester, teamID)
	if err != nil {
		return err
	}
	return s.removeMembership(ctx, team, requester)
}

func (s *TeamService) RemoveMember(ctx context.Context, requester, teamID, email string) error {
	team, err := s.adminTeam(ctx, requester, teamID)
	if err != nil {
		return err
	}
	if !team.HasMember(email) {
		return domain.ErrNotTeamMember
	}
	return s.removeMembership(ctx, team, email)
}

// removeMembership drops email from the team. The last member leaving
// deletes the team; an admin leaving hands the role to the next member.
func (s *TeamService) removeMembership(ctx context.Context, team domain.Team, email string) error {
	if err := s.teamRepository.RemoveMember(ctx, team.ID, email); err != nil {
		return fmt.Errorf("remove member: %w", err)
	}

	zap.L().Info("team left",
		zap.String("team_id", team.ID),
		zap.String("member", email),
		zap.Bool("team_deleted", len(team.Members) == 1),
	)
	return nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, requester, teamID string) error {
	team, err := s.adminTeam(ctx, requester, teamID)
	if err != nil {
		return err
	}

	if err := s.teamRepository.DeleteTeam(ctx, teamID); err != nil {
		return fmt.Errorf("delete team: %w", err)
	}

	zap.L().Info("team deleted",
		zap.String("team_id", teamID),
		zap.String("by", requester),
		zap.Int("members", len(team.Members)),
	)
	return nil
}

func (s *TeamService) AddSection(ctx context.Context, requester, teamID, section string) (domain.Team, error) {
	team, err := memberTeam(ctx, s.teamRepository, requester, teamID)
	if err != nil {
		return domain.Team{}, err
	}

	section = strings.TrimSpace(section)
	if team.HasSection(section) {
		return domain.Team{}, domain.ErrSectionExists
	}

	if err := s.teamRepository.AddSection(ctx, teamID, section); err != nil {
		return domain.Team{}, fmt.Errorf("add section: %w", err)
	}

	team.Sections = append(team.Sections, section)
	return team, nil
}

// RemoveSection deletes a section. Tasks filed under it keep the stale name.
func (s *TeamService) RemoveSection(ctx context.Context, requester, teamID, section string) (domain.Team, error) {
	team, err := memberTeam(ctx, s.teamRepository, requester, teamID)
	if err != nil {
		return domain.Team{}, err
	}

	if !team.HasSection(section) {
		return domain.Team{}, domain.ErrSectionNotFound
	}
	if len(team.Sections) == 1 {
		return domain.Team{}, domain.ErrLastSection
	}

	if err := s.teamRepository.RemoveSection(ctx, teamID, section); err != nil {
		return domain.Team{}, err
	}

	team.Sections = slices.DeleteFunc(team.Sections, func(name string) bool { return name == section })
	return team, nil
}

func (s *TeamService) InviteLink(ctx context.Context, requester, teamID string) (string, error) {
	if _, err := memberTeam(ctx, s.teamRepository, requester, teamID); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s", s.inviteBaseURL, teamID), nil
}

func (s *TeamService) TeamKPIs(ctx context.Context, requester, teamID string) (kpi.Team, error) {
	team, err := memberTeam(ctx, s.teamRepository, requester, teamID)
	if err != nil {
		return kpi.Team{}, err
	}

	tasks, err := s.taskRepository.ListTeamTasks(ctx, teamID)
	if err != nil {
		return kpi.Team{}, fmt.Errorf("list team tasks: %w", err)
	}

	members, err := s.userRepository.ListUsers(ctx, team.Members)
	if err != nil {
		return kpi.Team{}, fmt.Errorf("list team members: %w", err)
	}

	return kpi.Compute(tasks, members), nil
}

func (s *TeamService) adminTeam(ctx context.Context, requester, teamID string) (domain.Team, error) {
	team, err := memberTeam(ctx, s.teamRepository, requester, teamID)
	if err != nil {
		return domain.Team{}, err
	}
	if !team.IsAdmin(requester) {
		return domain.Team{}, domain.ErrNotTeamAdmin
	}
	return team, nil
}

var _ ports.TeamService = (*TeamService)(nil)
